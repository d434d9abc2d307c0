package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/httpresp"
	ucBooking "github.com/EstudioRosa/nail-scheduler/internal/usecase/booking"
)

// Área do cliente: sem login, CPF + telefone identificam o titular
type ClientAreaHandler struct {
	searchUC *ucBooking.SearchClientBookings
	cancelUC *ucBooking.CancelByClient
}

func NewClientAreaHandler(
	searchUC *ucBooking.SearchClientBookings,
	cancelUC *ucBooking.CancelByClient,
) *ClientAreaHandler {
	return &ClientAreaHandler{
		searchUC: searchUC,
		cancelUC: cancelUC,
	}
}

type ClientIdentityRequest struct {
	CPF   string `json:"cpf" binding:"required"`
	Phone string `json:"phone" binding:"required"`
}

func (h *ClientAreaHandler) Search(c *gin.Context) {
	var req ClientIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	appointments, err := h.searchUC.Execute(c.Request.Context(), req.CPF, req.Phone)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_cpf":
			httperr.BadRequest(c, "invalid_cpf", "Informe um CPF válido.")
		case "invalid_phone":
			httperr.BadRequest(c, "invalid_phone", "Informe um telefone válido.")
		default:
			httperr.Internal(c, "search_failed", "Erro ao buscar agendamentos.")
		}
		return
	}

	httpresp.List(c, appointments)
}

func (h *ClientAreaHandler) Cancel(c *gin.Context) {
	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	var req ClientIdentityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), appointmentID, req.CPF, req.Phone)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "appointment_not_found":
			httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
		case "invalid_state":
			httperr.BadRequest(c, "invalid_state", "Agendamento não pode ser cancelado.")
		default:
			httperr.Internal(c, "cancel_failed", "Erro ao cancelar.")
		}
		return
	}

	c.JSON(http.StatusOK, ap)
}
