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

// ClienteHandler serves the customer-facing booking app: registration,
// profile, trips, reservations and the simulated live tracking.
type ClienteHandler struct {
	authSvc    service.AuthService
	clienteSvc service.ClienteService
	viajeSvc   service.ViajeService
	reservaSvc service.ReservaService
	tarifaSvc  service.TarifaService
}

func NewClienteHandler(
	authSvc service.AuthService,
	clienteSvc service.ClienteService,
	viajeSvc service.ViajeService,
	reservaSvc service.ReservaService,
	tarifaSvc service.TarifaService,
) *ClienteHandler {
	return &ClienteHandler{
		authSvc:    authSvc,
		clienteSvc: clienteSvc,
		viajeSvc:   viajeSvc,
		reservaSvc: reservaSvc,
		tarifaSvc:  tarifaSvc,
	}
}

func (h *ClienteHandler) Register(c *gin.Context) {
	var req dto.RegisterClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.authSvc.RegisterCliente(c.Request.Context(), req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

// CalcularPrecio is public: the booking screen quotes before login.
func (h *ClienteHandler) CalcularPrecio(c *gin.Context) {
	var req dto.CalcularPrecioRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.tarifaSvc.Estimar(c.Request.Context(), req.Origen, req.Destino)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) Perfil(c *gin.Context) {
	resp, err := h.clienteSvc.ObtenerPerfil(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) ActualizarPerfil(c *gin.Context) {
	var req dto.ActualizarClienteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.clienteSvc.ActualizarPerfil(c.Request.Context(), principalID(c), req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) Viajes(c *gin.Context) {
	resp, err := h.viajeSvc.ListarDelCliente(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) SolicitarViaje(c *gin.Context) {
	var req dto.SolicitarViajeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.viajeSvc.Solicitar(c.Request.Context(), principalID(c), claims.Email, req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) CancelarViaje(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.viajeSvc.CancelarPorCliente(c.Request.Context(), principalID(c), claims.Email, id, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) Reservas(c *gin.Context) {
	resp, err := h.reservaSvc.ListarDelCliente(c.Request.Context(), principalID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

func (h *ClienteHandler) CrearReserva(c *gin.Context) {
	var req dto.CrearReservaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.reservaSvc.CrearPorCliente(c.Request.Context(), principalID(c), claims.Email, req, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, resp)
}

func (h *ClienteHandler) CancelarReserva(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	claims := middleware.GetClaims(c)
	resp, err := h.reservaSvc.CancelarPorCliente(c.Request.Context(), principalID(c), claims.Email, id, requestMeta(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}

// UbicacionActual expects ?viajeId= of one of the client's viajes EN_CURSO.
func (h *ClienteHandler) UbicacionActual(c *gin.Context) {
	viajeID, err := uuid.Parse(c.Query("viajeId"))
	if err != nil {
		respondError(c, apierror.Validation("viajeId inválido"))
		return
	}
	resp, err := h.clienteSvc.Ubicacion(c.Request.Context(), principalID(c), viajeID)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, resp)
}
