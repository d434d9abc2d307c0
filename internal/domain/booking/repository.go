package booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/models"
)

type Repository interface {
	// -------- Service --------
	GetServiceByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Service, error)

	ListActiveServices(
		ctx context.Context,
	) ([]models.Service, error)

	// -------- Availability feed --------
	ListBookedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	ListBlockedTimes(
		ctx context.Context,
		date string,
	) ([]string, error)

	ListFullDayBlocks(
		ctx context.Context,
	) ([]string, error)

	// -------- Client --------
	UpsertClientByCPF(
		ctx context.Context,
		cpf string,
		name string,
		phone string,
	) (*models.Client, error)

	GetClientByCPFAndPhone(
		ctx context.Context,
		cpf string,
		phone string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (lookup / state change) --------
	GetAppointmentByPublicID(
		ctx context.Context,
		publicID uuid.UUID,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Listings --------
	ListAppointmentsByClient(
		ctx context.Context,
		clientID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		startDate string,
		endDate string,
		status string,
	) ([]models.Appointment, error)
}
