package intake

import (
	"context"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/ArbabsLab/GymBab/internal/plan"
	"github.com/ArbabsLab/GymBab/internal/utility"
)

// Generator is invoked once the intake flow has collected every answer.
type Generator interface {
	GenerateRoutine(ctx context.Context, log *zerolog.Logger, attrs plan.UserAttributes) (*plan.GeneratedPlan, error)
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The chat widget is served from a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatMessage is one assistant frame of the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// resultEnvelope is the final frame, mirroring the /generate-routine
// response shape.
type resultEnvelope struct {
	Success bool                `json:"success"`
	Data    *plan.GeneratedPlan `json:"data,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// SocketHandler serves the intake conversation over a websocket.
type SocketHandler struct {
	generator Generator
}

func NewSocketHandler(generator Generator) *SocketHandler {
	return &SocketHandler{generator: generator}
}

// Chat upgrades the connection and walks the question sequence: the
// client sends plain-text answers, the server replies with chatMessage
// frames, and the final frame carries the generation result envelope.
func (h *SocketHandler) Chat(c echo.Context) error {
	userID := c.QueryParam("user_id")
	if userID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "user_id is required"})
	}

	log := utility.GetLogger(c)

	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	log.Info().Str("user_id", userID).Msg("Intake chat connected")

	session := NewSession(userID)

	if err := writeAssistant(ws, Greeting); err != nil {
		return nil
	}
	if err := writeAssistant(ws, session.FirstQuestion()); err != nil {
		return nil
	}

	for {
		_, msg, err := ws.ReadMessage()
		if err != nil {
			log.Info().Str("user_id", userID).Msg("Intake chat disconnected")
			return nil
		}

		reply, done := session.Submit(string(msg))
		if err := writeAssistant(ws, reply); err != nil {
			return nil
		}
		if !done {
			continue
		}

		result, err := h.generator.GenerateRoutine(c.Request().Context(), log, session.Request())
		if err != nil {
			log.Error().Err(err).Str("user_id", userID).Msg("Plan generation failed")
			_ = ws.WriteJSON(resultEnvelope{Success: false, Error: err.Error()})
			return nil
		}

		_ = ws.WriteJSON(resultEnvelope{Success: true, Data: result})
		return nil
	}
}

func writeAssistant(ws *websocket.Conn, content string) error {
	return ws.WriteJSON(chatMessage{Role: "assistant", Content: content})
}
