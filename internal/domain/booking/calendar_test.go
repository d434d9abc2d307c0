package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// 2025-09-01 é segunda-feira
var today = time.Date(2025, 9, 1, 10, 30, 0, 0, time.UTC)

func TestIsDateBookable(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "tomorrow", date: today.AddDate(0, 0, 1), want: true},
		{name: "today itself", date: today, want: true},
		{name: "yesterday", date: today.AddDate(0, 0, -1), want: false},
		{name: "31 days ahead", date: today.AddDate(0, 0, 31), want: false},
		{name: "sunday", date: time.Date(2025, 9, 7, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IsDateBookable(tt.date, today, 30, nil)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestIsDateBookableWindowEdge(t *testing.T) {
	// exatamente hoje + 30 ainda vale; +31 não
	edge := today.AddDate(0, 0, 30) // 2025-10-01, quarta-feira
	assert.True(t, IsDateBookable(edge, today, 30, nil))
	assert.False(t, IsDateBookable(edge.AddDate(0, 0, 1), today, 30, nil))
}

func TestIsDateBookableFullDayBlock(t *testing.T) {
	blocked := map[string]bool{"2025-09-02": true}

	assert.False(t, IsDateBookable(today.AddDate(0, 0, 1), today, 30, blocked))
	assert.True(t, IsDateBookable(today.AddDate(0, 0, 2), today, 30, blocked))
}

func TestIsDateBookableDefaultWindow(t *testing.T) {
	// maxLeadDays <= 0 assume o padrão de 30 dias
	assert.True(t, IsDateBookable(today.AddDate(0, 0, 30), today, 0, nil))
	assert.False(t, IsDateBookable(today.AddDate(0, 0, 31), today, 0, nil))
}

func TestIsDateBookableIgnoresTimeOfDay(t *testing.T) {
	// mesma data com hora posterior à atual continua agendável
	lateToday := time.Date(2025, 9, 1, 23, 59, 0, 0, time.UTC)
	assert.True(t, IsDateBookable(lateToday, today, 30, nil))
}
