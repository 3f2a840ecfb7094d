package handler

import (
	"net/http"

	"appremises/internal/dto"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
)

type UsageHandler struct{ svc service.UsageService }

func NewUsageHandler(svc service.UsageService) *UsageHandler { return &UsageHandler{svc: svc} }

// Track responds 202: the event is queued, not yet persisted.
func (h *UsageHandler) Track(c *gin.Context) {
	var req dto.TrackUsageRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	h.svc.Track(c.Request.Context(), principalID(c), claims.Email, req, requestMeta(c))
	c.JSON(http.StatusAccepted, gin.H{"success": true, "message": "Evento registrado"})
}

func (h *UsageHandler) Stats(c *gin.Context) {
	resp, err := h.svc.Stats(c.Request.Context(), c.Query("period"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}
