package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
)

func TestListByPeriodRanges(t *testing.T) {
	// 2025-09-03 é uma quarta-feira
	ref := time.Date(2025, 9, 3, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name      string
		view      PeriodView
		wantStart string
		wantEnd   string
	}{
		{"dia", ViewDay, "2025-09-03", "2025-09-03"},
		{"semana de segunda a domingo", ViewWeek, "2025-09-01", "2025-09-07"},
		{"mês inteiro", ViewMonth, "2025-09-01", "2025-09-30"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := newFakeRepo()
			uc := NewListByPeriod(repo)

			_, err := uc.Execute(context.Background(), tc.view, ref, "")
			require.NoError(t, err)

			require.Len(t, repo.periodCalls, 1)
			assert.Equal(t, tc.wantStart, repo.periodCalls[0].start)
			assert.Equal(t, tc.wantEnd, repo.periodCalls[0].end)
			assert.Equal(t, "", repo.periodCalls[0].status)
		})
	}
}

func TestListByPeriodWeekOnMonday(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListByPeriod(repo)

	// a própria segunda-feira não deve recuar
	monday := time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)
	_, err := uc.Execute(context.Background(), ViewWeek, monday, "")
	require.NoError(t, err)

	require.Len(t, repo.periodCalls, 1)
	assert.Equal(t, "2025-09-01", repo.periodCalls[0].start)
	assert.Equal(t, "2025-09-07", repo.periodCalls[0].end)
}

func TestListByPeriodStatusFilter(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListByPeriod(repo)
	ref := time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), ViewDay, ref, "cancelled")
	require.NoError(t, err)
	require.Len(t, repo.periodCalls, 1)
	assert.Equal(t, "cancelled", repo.periodCalls[0].status)

	_, err = uc.Execute(context.Background(), ViewDay, ref, "agendado")
	require.Error(t, err)
	assert.Equal(t, "invalid_status", httperr.BusinessCode(err))
}

func TestListByPeriodInvalidView(t *testing.T) {
	repo := newFakeRepo()
	uc := NewListByPeriod(repo)

	_, err := uc.Execute(context.Background(), PeriodView("year"), time.Now(), "")
	require.Error(t, err)
	assert.Equal(t, "invalid_view", httperr.BusinessCode(err))
	assert.Empty(t, repo.periodCalls)
}

func TestListByPeriodFormatsDisplayFields(t *testing.T) {
	repo := newFakeRepo()
	repo.periodResult = []models.Appointment{
		{
			PublicID:        uuid.New(),
			AppointmentDate: "2025-09-03",
			AppointmentTime: "09:00:00",
			Status:          "confirmed",
			Client: models.Client{
				Name:  "Maria Souza",
				Phone: "11999998888",
				CPF:   "11144477735",
			},
			Service: models.Service{
				Name:        "Alongamento em Gel",
				Price:       120,
				DurationMin: 90,
			},
		},
	}

	uc := NewListByPeriod(repo)
	out, err := uc.Execute(context.Background(), ViewDay, time.Date(2025, 9, 3, 0, 0, 0, 0, time.UTC), "")
	require.NoError(t, err)
	require.Len(t, out, 1)

	got := out[0]
	assert.Equal(t, "09:00", got.AppointmentTime)
	assert.Equal(t, "(11) 99999-8888", got.ClientPhone)
	assert.Equal(t, "111.444.777-35", got.ClientCPF)
	assert.Equal(t, "R$ 120,00", got.ServicePrice)
	assert.Equal(t, "1h30min", got.ServiceDuration)
}
