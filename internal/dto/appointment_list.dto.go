package dto

import "github.com/google/uuid"

type AppointmentListDTO struct {
	ID              uuid.UUID `json:"id"`
	AppointmentDate string    `json:"appointment_date"`
	AppointmentTime string    `json:"appointment_time"`
	Status          string    `json:"status"`

	ClientName  string `json:"client_name,omitempty"`
	ClientPhone string `json:"client_phone,omitempty"`
	ClientCPF   string `json:"client_cpf,omitempty"`

	ServiceName     string `json:"service_name"`
	ServicePrice    string `json:"service_price"`
	ServiceDuration string `json:"service_duration"`
}

type ServiceDTO struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	Price           float64   `json:"price"`
	PriceDisplay    string    `json:"price_display"`
	DurationMin     int       `json:"duration_minutes"`
	DurationDisplay string    `json:"duration_display"`
	PhotoURL        string    `json:"photo_url,omitempty"`
}
