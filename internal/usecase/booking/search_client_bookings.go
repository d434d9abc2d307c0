package booking

import (
	"context"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/dto"
	"github.com/EstudioRosa/nail-scheduler/internal/format"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/validators"
)

type SearchClientBookings struct {
	repo domain.Repository
}

func NewSearchClientBookings(repo domain.Repository) *SearchClientBookings {
	return &SearchClientBookings{repo: repo}
}

// Execute lista o histórico do cliente identificado por CPF + telefone.
// Par desconhecido devolve lista vazia, igual ao comportamento da busca
// na área do cliente (não revela se o CPF existe).
func (uc *SearchClientBookings) Execute(
	ctx context.Context,
	cpf string,
	phone string,
) ([]dto.AppointmentListDTO, error) {

	if !validators.ValidateCPF(cpf) {
		return nil, httperr.ErrBusiness("invalid_cpf")
	}
	if !validators.IsPhoneValid(phone) {
		return nil, httperr.ErrBusiness("invalid_phone")
	}

	client, err := uc.repo.GetClientByCPFAndPhone(
		ctx,
		validators.NormalizeCPF(cpf),
		validators.NormalizePhone(phone),
	)
	if err != nil {
		return []dto.AppointmentListDTO{}, nil
	}

	appointments, err := uc.repo.ListAppointmentsByClient(ctx, client.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.PublicID,
			AppointmentDate: ap.AppointmentDate,
			AppointmentTime: domain.NormalizeTime(ap.AppointmentTime),
			Status:          ap.Status,
			ServiceName:     ap.Service.Name,
			ServicePrice:    format.Price(ap.Service.Price),
			ServiceDuration: format.Duration(ap.Service.DurationMin),
		})
	}

	return out, nil
}
