package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	log "github.com/sirupsen/logrus"

	"github.com/shaladi/reuse/internal/core/domain"
	"github.com/shaladi/reuse/internal/core/port"
)

type ItemsHTTPHandler struct {
	itemsStorage port.ItemsStorage
}

type ItemsResponse struct {
	Items []domain.Item `json:"items"`
	// Until is the value to pass as after on the next poll.
	Until time.Time `json:"until"`
}

func NewItemsHTTPHandler(itemsStorage port.ItemsStorage) *ItemsHTTPHandler {
	return &ItemsHTTPHandler{
		itemsStorage: itemsStorage,
	}
}

// Handle lists the items modified at or after the RFC 3339 "after" query parameter,
// or all items when it is absent.
func (h *ItemsHTTPHandler) Handle() echo.HandlerFunc {
	return func(c echo.Context) error {
		var after time.Time
		if raw := c.QueryParam("after"); raw != "" {
			parsed, err := time.Parse(time.RFC3339, raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, map[string]string{
					"error": "after must be an RFC 3339 timestamp",
				})
			}
			after = parsed
		}

		items, err := h.itemsStorage.ItemsModifiedSince(c.Request().Context(), after)
		if err != nil {
			log.WithError(err).Error("Failed to list items")
			return c.JSON(http.StatusInternalServerError, map[string]string{
				"error": "Failed to list items",
			})
		}

		resp := ItemsResponse{Items: items, Until: after}
		if resp.Items == nil {
			resp.Items = []domain.Item{}
		}
		for _, item := range items {
			if item.ModifiedAt.After(resp.Until) {
				resp.Until = item.ModifiedAt
			}
		}
		return c.JSON(http.StatusOK, resp)
	}
}
