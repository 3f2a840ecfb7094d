package handler

import (
	"net/http"

	"appremises/internal/dto"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
)

// DashboardHandler serves the coordinator panel. All routes sit behind
// RequireRole(COORDINADOR); scoping to the coordinator's remisería happens
// in the services.
type DashboardHandler struct {
	dashSvc    service.DashboardService
	viajeSvc   service.ViajeService
	reservaSvc service.ReservaService
}

func NewDashboardHandler(
	dashSvc service.DashboardService,
	viajeSvc service.ViajeService,
	reservaSvc service.ReservaService,
) *DashboardHandler {
	return &DashboardHandler{dashSvc: dashSvc, viajeSvc: viajeSvc, reservaSvc: reservaSvc}
}

func (h *DashboardHandler) ViajesEnCurso(c *gin.Context) {
	resp, err := h.dashSvc.ViajesEnCurso(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) ViajesSinAsignar(c *gin.Context) {
	resp, err := h.dashSvc.ViajesSinAsignar(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) ReservasActivas(c *gin.Context) {
	resp, err := h.dashSvc.ReservasActivas(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	resp, err := h.dashSvc.Stats(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) VehiculosTiempoReal(c *gin.Context) {
	resp, err := h.dashSvc.VehiculosTiempoReal(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) ChoferesTiempoReal(c *gin.Context) {
	resp, err := h.dashSvc.ChoferesTiempoReal(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) CrearViaje(c *gin.Context) {
	var req dto.CrearViajeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.viajeSvc.CrearPorCoordinador(c.Request.Context(), principalID(c), claims.Email, req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

func (h *DashboardHandler) AsignarViaje(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.AsignarViajeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.viajeSvc.Asignar(c.Request.Context(), principalID(c), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) CompletarViaje(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.viajeSvc.Completar(c.Request.Context(), principalID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) CancelarViaje(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.viajeSvc.CancelarPorCoordinador(c.Request.Context(), principalID(c), claims.Email, id, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) CrearReserva(c *gin.Context) {
	var req dto.CrearReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.reservaSvc.CrearPorCoordinador(c.Request.Context(), principalID(c), claims.Email, req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

func (h *DashboardHandler) CancelarReserva(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.reservaSvc.CancelarPorCoordinador(c.Request.Context(), principalID(c), claims.Email, id, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DashboardHandler) CompletarReserva(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	resp, err := h.reservaSvc.Completar(c.Request.Context(), principalID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}
