package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/audit"
	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
	"github.com/EstudioRosa/nail-scheduler/internal/validators"
)

type CancelByClient struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewCancelByClient(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *CancelByClient {
	return &CancelByClient{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

// Execute cancela um agendamento do próprio cliente. CPF + telefone fazem
// as vezes de credencial; agendamento de outro cliente responde como
// inexistente para não vazar informação.
func (uc *CancelByClient) Execute(
	ctx context.Context,
	appointmentID uuid.UUID,
	cpf string,
	phone string,
) (*models.Appointment, error) {

	cpf = validators.NormalizeCPF(cpf)
	phone = validators.NormalizePhone(phone)

	client, err := uc.repo.GetClientByCPFAndPhone(ctx, cpf, phone)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	ap, err := uc.repo.GetAppointmentByPublicID(ctx, appointmentID)
	if err != nil || ap.ClientID != client.ID {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	now := timezone.NowIn(uc.tz)
	if err := domain.Cancel(ap, now); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_cancelled_by_client",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
