package booking

import "time"

const (
	// O salão não abre aos domingos
	ClosedWeekday = time.Sunday

	// Janela padrão de agendamento: até 30 dias à frente
	DefaultMaxLeadDays = 30
)

// DateOnly zera o componente de hora preservando o fuso
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsDateBookable decide se uma data aceita novos agendamentos:
// nada no passado, nada além da janela, domingos fechados e
// dias inteiramente bloqueados pela administração ficam de fora.
// fullDayBlocks indexa datas no formato DateLayout.
func IsDateBookable(date, today time.Time, maxLeadDays int, fullDayBlocks map[string]bool) bool {
	if maxLeadDays <= 0 {
		maxLeadDays = DefaultMaxLeadDays
	}

	d := DateOnly(date)
	t := DateOnly(today)

	if d.Before(t) {
		return false
	}
	if d.After(t.AddDate(0, 0, maxLeadDays)) {
		return false
	}
	if d.Weekday() == ClosedWeekday {
		return false
	}
	if fullDayBlocks[d.Format(DateLayout)] {
		return false
	}
	return true
}
