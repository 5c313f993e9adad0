package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
	"github.com/shaladi/reuse/internal/mailparse"
)

const maxRawMessageSize = 10 << 20

type IngestionHTTPHandler struct {
	ingestionService port.IngestionService
}

type IngestEmailResponse struct {
	Outcome   string     `json:"outcome"`
	Reason    string     `json:"reason,omitempty"`
	Delegated string     `json:"delegated,omitempty"`
	ThreadID  *uuid.UUID `json:"thread_id,omitempty"`
	ItemIDs   uuid.UUIDs `json:"item_ids,omitempty"`
	Location  string     `json:"location,omitempty"`
}

func NewIngestionHTTPHandler(ingestionService port.IngestionService) *IngestionHTTPHandler {
	return &IngestionHTTPHandler{
		ingestionService: ingestionService,
	}
}

// HandleJSON ingests an email posted as a JSON RawEmail.
func (h *IngestionHTTPHandler) HandleJSON() echo.HandlerFunc {
	return func(c echo.Context) error {
		var email domain.RawEmail

		if err := c.Bind(&email); err != nil {
			log.WithError(err).Error("Failed to bind request")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid request payload",
			})
		}

		return h.ingest(c, email)
	}
}

// HandleRaw ingests an RFC 5322 message posted as the request body.
func (h *IngestionHTTPHandler) HandleRaw() echo.HandlerFunc {
	return func(c echo.Context) error {
		body := http.MaxBytesReader(c.Response(), c.Request().Body, maxRawMessageSize)

		email, err := mailparse.Parse(body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{
					"error": "Message too large",
				})
			}
			log.WithError(err).Error("Failed to parse raw message")
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "Invalid message",
			})
		}
		// Drain what the parser left so the connection can be reused.
		_, _ = io.Copy(io.Discard, body)

		return h.ingest(c, email)
	}
}

func (h *IngestionHTTPHandler) ingest(c echo.Context, email domain.RawEmail) error {
	outcome, err := h.ingestionService.Ingest(c.Request().Context(), email)
	if err != nil {
		log.WithError(err).WithField("sender", email.Sender).Error("Ingestion failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "Ingestion failed",
		})
	}

	status := http.StatusOK
	if outcome.Kind == domain.OutcomeIgnore && outcome.Reason == domain.IgnoreMalformed {
		status = http.StatusUnprocessableEntity
	}
	return c.JSON(status, NewIngestEmailResponse(outcome))
}

func NewIngestEmailResponse(outcome *domain.Outcome) IngestEmailResponse {
	resp := IngestEmailResponse{
		Outcome: outcome.Kind.String(),
		Reason:  string(outcome.Reason),
	}

	effective := outcome.Effective()
	if outcome.Delegated != nil {
		resp.Delegated = effective.Kind.String()
	}
	if effective.Thread != nil {
		resp.ThreadID = &effective.Thread.ID
	}
	for _, item := range effective.Items {
		resp.ItemIDs = append(resp.ItemIDs, item.ID)
	}
	if effective.Kind == domain.OutcomeNewPost && len(effective.Items) > 0 {
		resp.Location = effective.Items[0].Location
	}
	return resp
}
