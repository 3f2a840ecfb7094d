package handler

import (
	"net/http"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type VehiculosHandler struct{ svc service.VehiculoService }

func NewVehiculosHandler(svc service.VehiculoService) *VehiculosHandler {
	return &VehiculosHandler{svc: svc}
}

func (h *VehiculosHandler) Listar(c *gin.Context) {
	var remiseriaID *uuid.UUID
	if q := c.Query("remiseriaId"); q != "" {
		id, err := uuid.Parse(q)
		if err != nil {
			respondError(c, apierror.Validation("remiseriaId inválido"))
			return
		}
		remiseriaID = &id
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Listar(c.Request.Context(), claims.Rol, principalID(c), remiseriaID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *VehiculosHandler) ObtenerPorID(c *gin.Context) {
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

func (h *VehiculosHandler) Crear(c *gin.Context) {
	var req dto.CrearVehiculoRequest
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

func (h *VehiculosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarVehiculoRequest
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

func (h *VehiculosHandler) ToggleEstado(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.svc.ToggleEstado(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *VehiculosHandler) Baja(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.Baja(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, "Vehículo dado de baja")
}
