// Package admin exposes the operational status endpoint.
package admin

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/ArbabsLab/GymBab/internal/database"
)

// StatusHandler reports process and host vitals alongside database health.
type StatusHandler struct {
	db        database.Service
	startTime time.Time
}

func NewStatusHandler(db database.Service) *StatusHandler {
	return &StatusHandler{db: db, startTime: time.Now()}
}

// SystemStatus gathers system metrics and a database health snapshot.
// Metric collection is best effort; a failed probe reports zero rather
// than failing the request.
func (h *StatusHandler) SystemStatus(c echo.Context) error {
	v, _ := mem.VirtualMemory()
	cpuPercent, _ := cpu.Percent(0, false)
	du, _ := disk.Usage("/")
	hostUptime, _ := host.Uptime()

	var cpuUsed float64
	if len(cpuPercent) > 0 {
		cpuUsed = cpuPercent[0]
	}

	status := map[string]any{
		"uptime_seconds":      int64(time.Since(h.startTime).Seconds()),
		"host_uptime_seconds": hostUptime,
		"cpu_percent":         cpuUsed,
		"database":            h.db.Health(),
	}

	if v != nil {
		status["memory_percent"] = v.UsedPercent
		status["memory_total_mb"] = v.Total / 1024 / 1024
	}
	if du != nil {
		status["disk_percent"] = du.UsedPercent
	}

	return c.JSON(http.StatusOK, status)
}
