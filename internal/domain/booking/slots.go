package booking

const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// DefaultSlots é a grade fixa de horários do salão: de hora em hora,
// das 08:00 às 17:00, com pausa às 12:00. Vale para qualquer dia útil.
var DefaultSlots = []string{
	"08:00", "09:00", "10:00", "11:00",
	"13:00", "14:00", "15:00", "16:00", "17:00",
}

// NormalizeTime trunca segundos de um horário vindo do banco:
// "09:00:00" → "09:00". Valores já curtos passam intactos.
func NormalizeTime(t string) string {
	if len(t) > 5 {
		return t[:5]
	}
	return t
}

// AvailableSlots filtra a grade removendo horários ocupados ou bloqueados,
// preservando a ordem da grade. Os dois conjuntos de exclusão já devem
// estar restritos à data em questão; aqui não há aritmética de datas.
func AvailableSlots(template, booked, blocked []string) []string {
	taken := make(map[string]struct{}, len(booked)+len(blocked))
	for _, t := range booked {
		taken[NormalizeTime(t)] = struct{}{}
	}
	for _, t := range blocked {
		taken[NormalizeTime(t)] = struct{}{}
	}

	available := make([]string, 0, len(template))
	for _, t := range template {
		if _, ok := taken[NormalizeTime(t)]; !ok {
			available = append(available, t)
		}
	}
	return available
}
