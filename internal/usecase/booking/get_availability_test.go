package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
)

func mustParseDate(t *testing.T, raw string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(domain.DateLayout, raw, timezone.Location(testTZ))
	require.NoError(t, err)
	return d
}

func TestGetAvailability(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, testTZ, domain.DefaultMaxLeadDays)

	date := nextBookableDate(t)
	repo.booked[date] = []string{"09:00:00"} // Postgres devolve com segundos
	repo.blocked[date] = []string{"14:00"}

	slots, err := uc.Execute(context.Background(), mustParseDate(t, date))
	require.NoError(t, err)

	assert.Equal(t, []string{
		"08:00", "10:00", "11:00", "13:00", "15:00", "16:00", "17:00",
	}, slots)
}

func TestGetAvailabilityNoExclusions(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailability(repo, testTZ, domain.DefaultMaxLeadDays)

	slots, err := uc.Execute(context.Background(), mustParseDate(t, nextBookableDate(t)))
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSlots, slots)
}

func TestGetAvailabilityUnbookableDates(t *testing.T) {
	repo := newFakeRepo()
	blockedDay := nextBookableDate(t)
	repo.fullDays = []string{blockedDay}
	// mesmo com a grade livre, o dia bloqueado não expõe horário nenhum
	uc := NewGetAvailability(repo, testTZ, domain.DefaultMaxLeadDays)

	past := timezone.NowIn(testTZ).AddDate(0, 0, -1).Format(domain.DateLayout)
	farAhead := timezone.NowIn(testTZ).AddDate(0, 0, domain.DefaultMaxLeadDays+1).Format(domain.DateLayout)

	tests := []struct {
		name string
		date string
	}{
		{"passado", past},
		{"fora da janela", farAhead},
		{"domingo", nextClosedWeekday(t)},
		{"dia bloqueado inteiro", blockedDay},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			slots, err := uc.Execute(context.Background(), mustParseDate(t, tc.date))
			require.NoError(t, err)
			assert.Empty(t, slots)
			assert.NotNil(t, slots, "lista vazia, não nula")
		})
	}
}
