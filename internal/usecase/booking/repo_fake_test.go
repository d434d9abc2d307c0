package booking

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/EstudioRosa/nail-scheduler/internal/domain/booking"
	"github.com/EstudioRosa/nail-scheduler/internal/models"
)

type periodCall struct {
	start  string
	end    string
	status string
}

// fakeRepo implementa domain.Repository em memória para os testes de use case
type fakeRepo struct {
	services map[uuid.UUID]*models.Service

	booked   map[string][]string
	blocked  map[string][]string
	fullDays []string

	clients      map[string]*models.Client
	nextClientID uint

	created   []*models.Appointment
	createErr error

	appointments map[uuid.UUID]*models.Appointment
	byClient     map[uint][]models.Appointment

	periodCalls  []periodCall
	periodResult []models.Appointment
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		services:     map[uuid.UUID]*models.Service{},
		booked:       map[string][]string{},
		blocked:      map[string][]string{},
		clients:      map[string]*models.Client{},
		appointments: map[uuid.UUID]*models.Appointment{},
		byClient:     map[uint][]models.Appointment{},
	}
}

func (r *fakeRepo) addService(name string, price float64, durationMin int, active bool) *models.Service {
	svc := &models.Service{
		ID:          uint(len(r.services) + 1),
		PublicID:    uuid.New(),
		Name:        name,
		Price:       price,
		DurationMin: durationMin,
		Active:      active,
	}
	r.services[svc.PublicID] = svc
	return svc
}

func (r *fakeRepo) GetServiceByPublicID(_ context.Context, publicID uuid.UUID) (*models.Service, error) {
	if svc, ok := r.services[publicID]; ok {
		return svc, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) ListActiveServices(_ context.Context) ([]models.Service, error) {
	var out []models.Service
	for _, svc := range r.services {
		if svc.Active {
			out = append(out, *svc)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListBookedTimes(_ context.Context, date string) ([]string, error) {
	return r.booked[date], nil
}

func (r *fakeRepo) ListBlockedTimes(_ context.Context, date string) ([]string, error) {
	return r.blocked[date], nil
}

func (r *fakeRepo) ListFullDayBlocks(_ context.Context) ([]string, error) {
	return r.fullDays, nil
}

func (r *fakeRepo) UpsertClientByCPF(_ context.Context, cpf, name, phone string) (*models.Client, error) {
	if client, ok := r.clients[cpf]; ok {
		client.Name = name
		client.Phone = phone
		return client, nil
	}

	r.nextClientID++
	client := &models.Client{
		ID:    r.nextClientID,
		CPF:   cpf,
		Name:  name,
		Phone: phone,
	}
	r.clients[cpf] = client
	return client, nil
}

func (r *fakeRepo) GetClientByCPFAndPhone(_ context.Context, cpf, phone string) (*models.Client, error) {
	if client, ok := r.clients[cpf]; ok && client.Phone == phone {
		return client, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if r.createErr != nil {
		return r.createErr
	}
	ap.ID = uint(len(r.created) + 1)
	r.created = append(r.created, ap)
	r.appointments[ap.PublicID] = ap
	return nil
}

func (r *fakeRepo) GetAppointmentByPublicID(_ context.Context, publicID uuid.UUID) (*models.Appointment, error) {
	if ap, ok := r.appointments[publicID]; ok {
		return ap, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	if _, ok := r.appointments[ap.PublicID]; !ok {
		return errors.New("not found")
	}
	r.appointments[ap.PublicID] = ap
	return nil
}

func (r *fakeRepo) ListAppointmentsByClient(_ context.Context, clientID uint) ([]models.Appointment, error) {
	return r.byClient[clientID], nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, startDate, endDate, status string) ([]models.Appointment, error) {
	r.periodCalls = append(r.periodCalls, periodCall{start: startDate, end: endDate, status: status})
	return r.periodResult, nil
}

var _ domain.Repository = (*fakeRepo)(nil)
