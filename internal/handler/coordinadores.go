package handler

import (
	"net/http"

	"appremises/internal/dto"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
)

type CoordinadoresHandler struct{ svc service.CoordinadorService }

func NewCoordinadoresHandler(svc service.CoordinadorService) *CoordinadoresHandler {
	return &CoordinadoresHandler{svc: svc}
}

func (h *CoordinadoresHandler) Listar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.Rol, principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *CoordinadoresHandler) ObtenerPorID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ObtenerPorID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *CoordinadoresHandler) Crear(c *gin.Context) {
	var req dto.CrearCoordinadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Crear(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

func (h *CoordinadoresHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarCoordinadorRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Actualizar(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *CoordinadoresHandler) ToggleActivo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ToggleActivo(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *CoordinadoresHandler) Baja(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Baja(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Coordinador dado de baja")
}
