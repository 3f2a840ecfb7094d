package handler

import (
	"net/http"
	"time"

	"appremises/internal/apierror"
	"appremises/internal/dto"
	"appremises/internal/middleware"
	"appremises/internal/service"

	"github.com/gin-gonic/gin"
)

type DueniosHandler struct {
	svc      service.DuenioService
	reportes service.ReporteService
}

func NewDueniosHandler(svc service.DuenioService, reportes service.ReporteService) *DueniosHandler {
	return &DueniosHandler{svc: svc, reportes: reportes}
}

func (h *DueniosHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DueniosHandler) ObtenerPorID(c *gin.Context) {
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

func (h *DueniosHandler) Crear(c *gin.Context) {
	var req dto.CrearDuenioRequest
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

func (h *DueniosHandler) Actualizar(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req dto.ActualizarDuenioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Actualizar(c.Request.Context(), id, claims.Rol, principalID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *DueniosHandler) ToggleActivo(c *gin.Context) {
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

// ReporteViajesPDF streams the trip report for the dueño's remiserías.
// Query params desde/hasta in YYYY-MM-DD; defaults to the last 30 days.
func (h *DueniosHandler) ReporteViajesPDF(c *gin.Context) {
	hasta := time.Now()
	desde := hasta.AddDate(0, 0, -30)

	if q := c.Query("desde"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			respondError(c, apierror.Validation("desde inválido: use YYYY-MM-DD"))
			return
		}
		desde = t
	}
	if q := c.Query("hasta"); q != "" {
		t, err := time.Parse("2006-01-02", q)
		if err != nil {
			respondError(c, apierror.Validation("hasta inválido: use YYYY-MM-DD"))
			return
		}
		// inclusive end of day
		hasta = t.Add(24*time.Hour - time.Second)
	}

	pdf, err := h.reportes.ViajesPDF(c.Request.Context(), principalID(c), desde, hasta)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte-viajes.pdf"`)
	c.Data(http.StatusOK, "application/pdf", pdf)
}
