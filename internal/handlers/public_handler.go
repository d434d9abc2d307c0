package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/dto"
	"github.com/EstudioRosa/nail-scheduler/internal/format"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/httpresp"
	ucBooking "github.com/EstudioRosa/nail-scheduler/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	listServicesUC    *ucBooking.ListServices
	getAvailabilityUC *ucBooking.GetAvailability
	createBookingUC   *ucBooking.CreateBooking
	tz                string
}

func NewPublicHandler(
	listServicesUC *ucBooking.ListServices,
	getAvailabilityUC *ucBooking.GetAvailability,
	createBookingUC *ucBooking.CreateBooking,
	tz string,
) *PublicHandler {
	return &PublicHandler{
		listServicesUC:    listServicesUC,
		getAvailabilityUC: getAvailabilityUC,
		createBookingUC:   createBookingUC,
		tz:                tz,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type CreateBookingRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
	Date      string `json:"date" binding:"required"` // YYYY-MM-DD
	Time      string `json:"time" binding:"required"` // HH:mm

	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`
	ClientCPF   string `json:"client_cpf" binding:"required"`
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	services, err := h.listServicesUC.Execute(c.Request.Context())
	if err != nil {
		httperr.Internal(c, "failed_to_list_services", "Erro ao listar serviços.")
		return
	}

	out := make([]dto.ServiceDTO, 0, len(services))
	for _, s := range services {
		out = append(out, dto.ServiceDTO{
			ID:              s.PublicID,
			Name:            s.Name,
			Description:     s.Description,
			Price:           s.Price,
			PriceDisplay:    format.Price(s.Price),
			DurationMin:     s.DurationMin,
			DurationDisplay: format.Duration(s.DurationMin),
			PhotoURL:        s.PhotoURL,
		})
	}

	httpresp.List(c, out)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	date, err := parseDate(h.tz, dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
		return
	}

	slots, err := h.getAvailabilityUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.Internal(c, "availability_failed", "Erro ao calcular horários.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	serviceID, err := uuid.Parse(req.ServiceID)
	if err != nil {
		httperr.BadRequest(c, "invalid_service_id", "Serviço inválido.")
		return
	}

	ap, err := h.createBookingUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			ServiceID:   serviceID,
			Date:        req.Date,
			Time:        req.Time,
			ClientName:  req.ClientName,
			ClientPhone: req.ClientPhone,
			ClientCPF:   req.ClientCPF,
		},
	)
	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}

// mapCreateErrors traduz os códigos de negócio do fluxo de criação.
// slot_taken é o único 409: o slot parecia livre mas outro cliente
// confirmou primeiro (detectado pela constraint do banco).
func mapCreateErrors(c *gin.Context, err error) {
	switch httperr.BusinessCode(err) {
	case "invalid_name":
		httperr.BadRequest(c, "invalid_name", "Informe seu nome.")
	case "invalid_phone":
		httperr.BadRequest(c, "invalid_phone", "Telefone inválido.")
	case "invalid_cpf":
		httperr.BadRequest(c, "invalid_cpf", "CPF inválido.")
	case "invalid_date":
		httperr.BadRequest(c, "invalid_date", "Data inválida.")
	case "invalid_time":
		httperr.BadRequest(c, "invalid_time", "Horário inválido.")
	case "date_not_bookable":
		httperr.BadRequest(c, "date_not_bookable", "Esta data não aceita agendamentos.")
	case "slot_unavailable":
		httperr.BadRequest(c, "slot_unavailable", "Horário indisponível nesta data.")
	case "service_not_found":
		httperr.BadRequest(c, "service_not_found", "Serviço não encontrado.")
	case "slot_taken":
		httperr.Conflict(c, "slot_taken", "Este horário já está reservado.")
	default:
		httperr.Internal(c, "booking_failed", "Erro ao agendar. Tente novamente.")
	}
}
