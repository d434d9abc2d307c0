package booking

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/audit"
	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
	"github.com/EstudioRosa/nail-scheduler/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type CreateBookingInput struct {
	ServiceID uuid.UUID

	Date string // YYYY-MM-DD
	Time string // HH:mm

	ClientName  string
	ClientPhone string
	ClientCPF   string
}

// ======================================================
// USE CASE
// ======================================================

type CreateBooking struct {
	repo        domain.Repository
	audit       *audit.Dispatcher
	tz          string
	maxLeadDays int
}

func NewCreateBooking(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
	maxLeadDays int,
) *CreateBooking {
	return &CreateBooking{
		repo:        repo,
		audit:       audit,
		tz:          tz,
		maxLeadDays: maxLeadDays,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateBooking) Execute(
	ctx context.Context,
	in CreateBookingInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Dados do cliente
	// --------------------------------------------------
	name := strings.TrimSpace(in.ClientName)
	if name == "" {
		return nil, httperr.ErrBusiness("invalid_name")
	}
	if !validators.IsPhoneValid(in.ClientPhone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}
	if !validators.ValidateCPF(in.ClientCPF) {
		return nil, httperr.ErrBusiness("invalid_cpf")
	}

	phone := validators.NormalizePhone(in.ClientPhone)
	cpf := validators.NormalizeCPF(in.ClientCPF)

	// --------------------------------------------------
	// 2️⃣ Data e hora
	// --------------------------------------------------
	date, err := time.ParseInLocation(
		domain.DateLayout,
		in.Date,
		timezone.Location(uc.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	slot := domain.NormalizeTime(in.Time)
	if _, err := time.Parse(domain.TimeLayout, slot); err != nil {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 3️⃣ Data aceita agendamento?
	// --------------------------------------------------
	fullDays, err := uc.repo.ListFullDayBlocks(ctx)
	if err != nil {
		return nil, err
	}
	blockSet := make(map[string]bool, len(fullDays))
	for _, d := range fullDays {
		blockSet[d] = true
	}

	if !domain.IsDateBookable(date, timezone.NowIn(uc.tz), uc.maxLeadDays, blockSet) {
		return nil, httperr.ErrBusiness("date_not_bookable")
	}

	// --------------------------------------------------
	// 4️⃣ Horário livre na grade?
	// --------------------------------------------------
	booked, err := uc.repo.ListBookedTimes(ctx, in.Date)
	if err != nil {
		return nil, err
	}
	blocked, err := uc.repo.ListBlockedTimes(ctx, in.Date)
	if err != nil {
		return nil, err
	}

	free := false
	for _, t := range domain.AvailableSlots(domain.DefaultSlots, booked, blocked) {
		if t == slot {
			free = true
			break
		}
	}
	if !free {
		return nil, httperr.ErrBusiness("slot_unavailable")
	}

	// --------------------------------------------------
	// 5️⃣ Serviço
	// --------------------------------------------------
	service, err := uc.repo.GetServiceByPublicID(ctx, in.ServiceID)
	if err != nil || !service.Active {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	// --------------------------------------------------
	// 6️⃣ Cliente (upsert pelo CPF)
	// --------------------------------------------------
	client, err := uc.repo.UpsertClientByCPF(ctx, cpf, name, phone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 7️⃣ Criação (corrida de slot vira slot_taken aqui)
	// --------------------------------------------------
	ap := &models.Appointment{
		PublicID:        uuid.New(),
		ClientID:        client.ID,
		ServiceID:       service.ID,
		AppointmentDate: in.Date,
		AppointmentTime: slot,
		Status:          string(domain.InitialStatus()),
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 8️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]string{
			"date": in.Date,
			"time": slot,
		},
	})

	ap.Client = *client
	ap.Service = *service
	return ap, nil
}
