/*
Package identity consumes Clerk webhook deliveries and keeps the local
users table in sync with the identity provider.
*/
package identity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/labstack/echo/v4"

	"github.com/ArbabsLab/GymBab/internal/database"
	"github.com/ArbabsLab/GymBab/internal/utility"
)

// Verifier checks the svix signature over a raw delivery body. Satisfied
// by *svix.Webhook.
type Verifier interface {
	Verify(payload []byte, headers http.Header) error
}

// UserStore is the pair of writes the sync handler issues.
type UserStore interface {
	SyncUser(ctx context.Context, arg database.SyncUserParams) (database.User, error)
	UpdateUser(ctx context.Context, arg database.UpdateUserParams) (database.User, error)
}

// Event is the subset of a Clerk webhook payload this service reads.
type Event struct {
	Type string    `json:"type"`
	Data EventData `json:"data"`
}

type EventData struct {
	ID             string         `json:"id"`
	FirstName      string         `json:"first_name"`
	LastName       string         `json:"last_name"`
	ImageURL       string         `json:"image_url"`
	EmailAddresses []EmailAddress `json:"email_addresses"`
}

type EmailAddress struct {
	EmailAddress string `json:"email_address"`
}

// WebhookHandler maps verified Clerk lifecycle events onto user writes.
type WebhookHandler struct {
	verifier Verifier
	store    UserStore
}

func NewWebhookHandler(verifier Verifier, store UserStore) *WebhookHandler {
	return &WebhookHandler{verifier: verifier, store: store}
}

// Handle processes one webhook delivery. Missing svix headers or a bad
// signature are rejected with 400 before any payload field is trusted;
// unknown event types are acknowledged without action so Clerk does not
// redeliver them.
func (h *WebhookHandler) Handle(c echo.Context) error {
	ctx := c.Request().Context()
	log := utility.GetLogger(c)

	svixID := c.Request().Header.Get("svix-id")
	svixSignature := c.Request().Header.Get("svix-signature")
	svixTimestamp := c.Request().Header.Get("svix-timestamp")

	if svixID == "" || svixSignature == "" || svixTimestamp == "" {
		return c.String(http.StatusBadRequest, "No svix headers found")
	}

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		log.Error().Err(err).Msg("Failed to read webhook body")
		return c.String(http.StatusBadRequest, "Error occurred")
	}

	if err := h.verifier.Verify(body, c.Request().Header); err != nil {
		log.Error().Err(err).Msg("Verification of webhook failed")
		return c.String(http.StatusBadRequest, "Error occurred")
	}

	var evt Event
	if err := json.Unmarshal(body, &evt); err != nil {
		log.Error().Err(err).Msg("Failed to parse webhook event")
		return c.String(http.StatusBadRequest, "Error occurred")
	}

	switch evt.Type {
	case "user.created":
		_, err := h.store.SyncUser(ctx, database.SyncUserParams{
			ClerkID: evt.Data.ID,
			Email:   firstEmail(evt.Data.EmailAddresses),
			Name:    fullName(evt.Data.FirstName, evt.Data.LastName),
			Image:   pgtype.Text{String: evt.Data.ImageURL, Valid: evt.Data.ImageURL != ""},
		})
		if err != nil {
			log.Error().Err(err).Str("clerk_id", evt.Data.ID).Msg("Error creating user")
			return c.String(http.StatusInternalServerError, "Error occurred")
		}

	case "user.updated":
		_, err := h.store.UpdateUser(ctx, database.UpdateUserParams{
			ClerkID: evt.Data.ID,
			Email:   firstEmail(evt.Data.EmailAddresses),
			Name:    fullName(evt.Data.FirstName, evt.Data.LastName),
			Image:   pgtype.Text{String: evt.Data.ImageURL, Valid: evt.Data.ImageURL != ""},
		})
		if err != nil {
			log.Error().Err(err).Str("clerk_id", evt.Data.ID).Msg("Error updating user")
			return c.String(http.StatusInternalServerError, "Error updating user")
		}
	}

	return c.String(http.StatusOK, "Processed")
}

func fullName(first, last string) string {
	return strings.TrimSpace(first + " " + last)
}

func firstEmail(addrs []EmailAddress) string {
	if len(addrs) == 0 {
		return ""
	}
	return addrs[0].EmailAddress
}
