// Package handler exposes the moderator-facing HTTP surface: token issuing,
// ticket listings and the live feed websocket.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"modflow/backend/internal/modhub"
	"modflow/backend/internal/storage"
)

type Handler struct {
	Assigner *modhub.AssignerService
	Storage  storage.Storage
	Secret   []byte
}

func NewHandler(assigner *modhub.AssignerService, s storage.Storage, secret string) *Handler {
	return &Handler{Assigner: assigner, Storage: s, Secret: []byte(secret)}
}

// ListTickets returns tickets newest first. ?status=open|resolved filters.
func (h *Handler) ListTickets(c *gin.Context) {
	status := c.Query("status")
	tickets, err := h.Storage.ListTickets(status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}
