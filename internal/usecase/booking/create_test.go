package booking

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/timezone"
)

const testTZ = timezone.DefaultTimezone

// nextBookableDate devolve o próximo dia útil de agenda (amanhã, pulando domingo)
func nextBookableDate(t *testing.T) string {
	t.Helper()
	d := timezone.NowIn(testTZ).AddDate(0, 0, 1)
	if d.Weekday() == domain.ClosedWeekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateLayout)
}

func nextClosedWeekday(t *testing.T) string {
	t.Helper()
	d := timezone.NowIn(testTZ).AddDate(0, 0, 1)
	for d.Weekday() != domain.ClosedWeekday {
		d = d.AddDate(0, 0, 1)
	}
	return d.Format(domain.DateLayout)
}

func validInput(serviceID uuid.UUID, date string) CreateBookingInput {
	return CreateBookingInput{
		ServiceID:   serviceID,
		Date:        date,
		Time:        "09:00",
		ClientName:  "Maria Souza",
		ClientPhone: "(11) 99999-8888",
		ClientCPF:   "111.444.777-35",
	}
}

func TestCreateBookingSuccess(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)

	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	date := nextBookableDate(t)
	ap, err := uc.Execute(context.Background(), validInput(svc.PublicID, date))
	require.NoError(t, err)
	require.NotNil(t, ap)

	assert.NotEqual(t, uuid.Nil, ap.PublicID)
	assert.Equal(t, date, ap.AppointmentDate)
	assert.Equal(t, "09:00", ap.AppointmentTime)
	assert.Equal(t, string(domain.StatusConfirmed), ap.Status)
	assert.Equal(t, svc.ID, ap.ServiceID)
	assert.Equal(t, "Manicure", ap.Service.Name)

	// cliente criado com dados normalizados
	client := repo.clients["11144477735"]
	require.NotNil(t, client)
	assert.Equal(t, "Maria Souza", client.Name)
	assert.Equal(t, "11999998888", client.Phone)
	assert.Equal(t, client.ID, ap.ClientID)

	require.Len(t, repo.created, 1)
}

func TestCreateBookingNormalizesSeconds(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)

	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	in := validInput(svc.PublicID, nextBookableDate(t))
	in.Time = "09:00:00"

	ap, err := uc.Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "09:00", ap.AppointmentTime)
}

func TestCreateBookingUpdatesExistingClient(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)

	_, err := repo.UpsertClientByCPF(context.Background(), "11144477735", "Nome Antigo", "1133334444")
	require.NoError(t, err)

	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	_, err = uc.Execute(context.Background(), validInput(svc.PublicID, nextBookableDate(t)))
	require.NoError(t, err)

	client := repo.clients["11144477735"]
	assert.Equal(t, "Maria Souza", client.Name)
	assert.Equal(t, "11999998888", client.Phone)
	assert.Equal(t, uint(1), client.ID, "mesmo registro, não um novo")
}

func TestCreateBookingIdentityValidation(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)
	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)
	date := nextBookableDate(t)

	tests := []struct {
		name   string
		mutate func(in *CreateBookingInput)
		code   string
	}{
		{"nome vazio", func(in *CreateBookingInput) { in.ClientName = "  " }, "invalid_name"},
		{"telefone curto", func(in *CreateBookingInput) { in.ClientPhone = "119999" }, "invalid_phone"},
		{"cpf inválido", func(in *CreateBookingInput) { in.ClientCPF = "111.444.777-36" }, "invalid_cpf"},
		{"data malformada", func(in *CreateBookingInput) { in.Date = "01/09/2026" }, "invalid_date"},
		{"hora malformada", func(in *CreateBookingInput) { in.Time = "9h" }, "invalid_time"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := validInput(svc.PublicID, date)
			tc.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			require.Error(t, err)
			assert.Equal(t, tc.code, httperr.BusinessCode(err))
		})
	}

	assert.Empty(t, repo.created)
}

func TestCreateBookingDateNotBookable(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)
	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	past := timezone.NowIn(testTZ).AddDate(0, 0, -1).Format(domain.DateLayout)
	farAhead := timezone.NowIn(testTZ).AddDate(0, 0, domain.DefaultMaxLeadDays+1).Format(domain.DateLayout)

	blockedDay := nextBookableDate(t)
	repoBlocked := newFakeRepo()
	svcBlocked := repoBlocked.addService("Manicure", 45, 45, true)
	repoBlocked.fullDays = []string{blockedDay}
	ucBlocked := NewCreateBooking(repoBlocked, nil, testTZ, domain.DefaultMaxLeadDays)

	tests := []struct {
		name string
		uc   *CreateBooking
		in   CreateBookingInput
	}{
		{"data no passado", uc, validInput(svc.PublicID, past)},
		{"fora da janela", uc, validInput(svc.PublicID, farAhead)},
		{"domingo", uc, validInput(svc.PublicID, nextClosedWeekday(t))},
		{"dia bloqueado inteiro", ucBlocked, validInput(svcBlocked.PublicID, blockedDay)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.uc.Execute(context.Background(), tc.in)
			require.Error(t, err)
			assert.Equal(t, "date_not_bookable", httperr.BusinessCode(err))
		})
	}
}

func TestCreateBookingSlotUnavailable(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)
	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	date := nextBookableDate(t)
	repo.booked[date] = []string{"09:00:00"}
	repo.blocked[date] = []string{"14:00"}

	for _, slot := range []string{"09:00", "14:00", "12:00"} {
		in := validInput(svc.PublicID, date)
		in.Time = slot

		_, err := uc.Execute(context.Background(), in)
		require.Error(t, err, "slot %s", slot)
		assert.Equal(t, "slot_unavailable", httperr.BusinessCode(err))
	}
}

func TestCreateBookingServiceNotFound(t *testing.T) {
	repo := newFakeRepo()
	inactive := repo.addService("Descontinuado", 30, 30, false)
	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)
	date := nextBookableDate(t)

	_, err := uc.Execute(context.Background(), validInput(uuid.New(), date))
	require.Error(t, err)
	assert.Equal(t, "service_not_found", httperr.BusinessCode(err))

	_, err = uc.Execute(context.Background(), validInput(inactive.PublicID, date))
	require.Error(t, err)
	assert.Equal(t, "service_not_found", httperr.BusinessCode(err))
}

func TestCreateBookingSlotTakenRace(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)
	repo.createErr = httperr.ErrBusiness("slot_taken")

	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	_, err := uc.Execute(context.Background(), validInput(svc.PublicID, nextBookableDate(t)))
	require.Error(t, err)
	assert.Equal(t, "slot_taken", httperr.BusinessCode(err))
}

func TestCreateBookingAcceptsWindowEdge(t *testing.T) {
	repo := newFakeRepo()
	svc := repo.addService("Manicure", 45, 45, true)
	uc := NewCreateBooking(repo, nil, testTZ, domain.DefaultMaxLeadDays)

	edge := timezone.NowIn(testTZ).AddDate(0, 0, domain.DefaultMaxLeadDays)
	if edge.Weekday() == domain.ClosedWeekday {
		t.Skip("último dia da janela cai num domingo")
	}

	_, err := uc.Execute(context.Background(), validInput(svc.PublicID, edge.Format(domain.DateLayout)))
	require.NoError(t, err)
}
