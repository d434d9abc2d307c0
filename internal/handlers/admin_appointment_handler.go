package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/httpresp"
	"github.com/EstudioRosa/nail-scheduler/internal/middleware"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
	ucBooking "github.com/EstudioRosa/nail-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminAppointmentHandler struct {
	listUC     *ucBooking.ListByPeriod
	cancelUC   *ucBooking.CancelAppointment
	completeUC *ucBooking.CompleteAppointment
	tz         string
}

func NewAdminAppointmentHandler(
	listUC *ucBooking.ListByPeriod,
	cancelUC *ucBooking.CancelAppointment,
	completeUC *ucBooking.CompleteAppointment,
	tz string,
) *AdminAppointmentHandler {
	return &AdminAppointmentHandler{
		listUC:     listUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		tz:         tz,
	}
}

// ======================================================
// LIST (painel: dia / semana / mês + filtro de status)
// ======================================================

func (h *AdminAppointmentHandler) List(c *gin.Context) {
	view := ucBooking.PeriodView(c.DefaultQuery("view", "day"))
	status := c.Query("status")

	ref := timezone.NowIn(h.tz)
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := parseDate(h.tz, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}
		ref = parsed
	}

	appointments, err := h.listUC.Execute(c.Request.Context(), view, ref, status)
	if err != nil {
		switch httperr.BusinessCode(err) {
		case "invalid_view":
			httperr.BadRequest(c, "invalid_view", "Período inválido (day, week ou month).")
		case "invalid_status":
			httperr.BadRequest(c, "invalid_status", "Status inválido.")
		default:
			httperr.Internal(c, "list_failed", "Erro ao listar agendamentos.")
		}
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AdminAppointmentHandler) Cancel(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.cancelUC.Execute(c.Request.Context(), adminID, appointmentID)
	if err != nil {
		mapStateChangeErrors(c, err, "Agendamento não pode ser cancelado.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func (h *AdminAppointmentHandler) Complete(c *gin.Context) {
	adminID := c.MustGet(middleware.ContextUserID).(uint)

	appointmentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.BadRequest(c, "invalid_appointment_id", "Agendamento inválido.")
		return
	}

	ap, err := h.completeUC.Execute(c.Request.Context(), adminID, appointmentID)
	if err != nil {
		mapStateChangeErrors(c, err, "Atendimento não pode ser concluído.")
		return
	}

	c.JSON(http.StatusOK, ap)
}

func mapStateChangeErrors(c *gin.Context, err error, invalidStateMsg string) {
	switch httperr.BusinessCode(err) {
	case "appointment_not_found":
		httperr.NotFound(c, "appointment_not_found", "Agendamento não encontrado.")
	case "invalid_state":
		httperr.BadRequest(c, "invalid_state", invalidStateMsg)
	default:
		httperr.Internal(c, "update_failed", "Erro ao atualizar agendamento.")
	}
}
