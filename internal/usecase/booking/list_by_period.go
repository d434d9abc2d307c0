package booking

import (
	"context"
	"time"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/dto"
	"github.com/EstudioRosa/nail-scheduler/internal/format"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/validators"
)

type PeriodView string

const (
	ViewDay   PeriodView = "day"
	ViewWeek  PeriodView = "week"
	ViewMonth PeriodView = "month"
)

type ListByPeriod struct {
	repo domain.Repository
}

func NewListByPeriod(repo domain.Repository) *ListByPeriod {
	return &ListByPeriod{repo: repo}
}

// Execute lista os agendamentos do painel: dia, semana (segunda a domingo)
// ou mês contendo a data de referência, com filtro opcional de status.
func (uc *ListByPeriod) Execute(
	ctx context.Context,
	view PeriodView,
	ref time.Time,
	status string,
) ([]dto.AppointmentListDTO, error) {

	if status != "" && !domain.IsValidStatus(status) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	var start, end time.Time

	switch view {
	case ViewDay:
		start = domain.DateOnly(ref)
		end = start
	case ViewWeek:
		start = domain.DateOnly(ref)
		// recua até segunda-feira
		for start.Weekday() != time.Monday {
			start = start.AddDate(0, 0, -1)
		}
		end = start.AddDate(0, 0, 6)
	case ViewMonth:
		start = time.Date(ref.Year(), ref.Month(), 1, 0, 0, 0, 0, ref.Location())
		end = start.AddDate(0, 1, -1)
	default:
		return nil, httperr.ErrBusiness("invalid_view")
	}

	appointments, err := uc.repo.ListAppointmentsForPeriod(
		ctx,
		start.Format(domain.DateLayout),
		end.Format(domain.DateLayout),
		status,
	)
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
			ClientName:      ap.Client.Name,
			ClientPhone:     validators.FormatPhone(ap.Client.Phone),
			ClientCPF:       validators.FormatCPF(ap.Client.CPF),
			ServiceName:     ap.Service.Name,
			ServicePrice:    format.Price(ap.Service.Price),
			ServiceDuration: format.Duration(ap.Service.DurationMin),
		})
	}

	return out, nil
}
