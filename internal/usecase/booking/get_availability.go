package booking

import (
	"context"
	"time"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo        domain.Repository
	tz          string
	maxLeadDays int
}

func NewGetAvailability(repo domain.Repository, tz string, maxLeadDays int) *GetAvailability {
	return &GetAvailability{
		repo:        repo,
		tz:          tz,
		maxLeadDays: maxLeadDays,
	}
}

// Execute resolve os horários livres de uma data. Datas fora da janela,
// domingos e dias bloqueados voltam como lista vazia, não erro.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	date time.Time,
) ([]string, error) {

	fullDays, err := uc.repo.ListFullDayBlocks(ctx)
	if err != nil {
		return nil, err
	}

	blockSet := make(map[string]bool, len(fullDays))
	for _, d := range fullDays {
		blockSet[d] = true
	}

	today := timezone.NowIn(uc.tz)
	if !domain.IsDateBookable(date, today, uc.maxLeadDays, blockSet) {
		return []string{}, nil
	}

	dateStr := date.Format(domain.DateLayout)

	booked, err := uc.repo.ListBookedTimes(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	blocked, err := uc.repo.ListBlockedTimes(ctx, dateStr)
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(domain.DefaultSlots, booked, blocked), nil
}
