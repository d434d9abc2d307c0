package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/EstudioRosa/nail-scheduler/internal/httperr"
	"github.com/EstudioRosa/nail-scheduler/internal/validators"
)

// ===============================
// Booking Draft (fluxo em etapas)
// ===============================

// Step é a etapa atual do fluxo de agendamento
type Step string

const (
	StepChoosingService  Step = "choosing_service"
	StepChoosingSlot     Step = "choosing_slot"
	StepEnteringIdentity Step = "entering_identity"
	StepReviewing        Step = "reviewing"
	StepConfirmed        Step = "confirmed"
)

// Draft acumula as escolhas do cliente etapa a etapa. É um valor
// serializável: o chamador guarda onde quiser (sessão, localStorage).
// As transições têm guardas explícitas; pular etapa é invalid_state.
type Draft struct {
	Step Step `json:"step"`

	ServiceID uuid.UUID `json:"service_id"`

	Date string `json:"date"`
	Time string `json:"time"`

	Name  string `json:"name"`
	Phone string `json:"phone"`
	CPF   string `json:"cpf"`
}

func NewDraft() *Draft {
	return &Draft{Step: StepChoosingService}
}

func (d *Draft) SelectService(serviceID uuid.UUID) error {
	if d.Step != StepChoosingService {
		return httperr.ErrBusiness("invalid_state")
	}
	if serviceID == uuid.Nil {
		return httperr.ErrBusiness("service_required")
	}

	d.ServiceID = serviceID
	d.Step = StepChoosingSlot
	return nil
}

func (d *Draft) SelectSlot(date, timeOfDay string) error {
	if d.Step != StepChoosingSlot {
		return httperr.ErrBusiness("invalid_state")
	}
	if _, err := time.Parse(DateLayout, date); err != nil {
		return httperr.ErrBusiness("invalid_date")
	}
	timeOfDay = NormalizeTime(timeOfDay)
	if _, err := time.Parse(TimeLayout, timeOfDay); err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	d.Date = date
	d.Time = timeOfDay
	d.Step = StepEnteringIdentity
	return nil
}

func (d *Draft) EnterIdentity(name, phone, cpf string) error {
	if d.Step != StepEnteringIdentity {
		return httperr.ErrBusiness("invalid_state")
	}
	if strings.TrimSpace(name) == "" {
		return httperr.ErrBusiness("invalid_name")
	}
	if !validators.IsPhoneValid(phone) {
		return httperr.ErrBusiness("invalid_phone")
	}
	if !validators.ValidateCPF(cpf) {
		return httperr.ErrBusiness("invalid_cpf")
	}

	d.Name = strings.TrimSpace(name)
	d.Phone = validators.NormalizePhone(phone)
	d.CPF = validators.NormalizeCPF(cpf)
	d.Step = StepReviewing
	return nil
}

func (d *Draft) Confirm() error {
	if d.Step != StepReviewing {
		return httperr.ErrBusiness("invalid_state")
	}
	d.Step = StepConfirmed
	return nil
}

// Back volta uma etapa. Não há volta depois de confirmado.
func (d *Draft) Back() error {
	switch d.Step {
	case StepChoosingSlot:
		d.Step = StepChoosingService
	case StepEnteringIdentity:
		d.Step = StepChoosingSlot
	case StepReviewing:
		d.Step = StepEnteringIdentity
	default:
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
