// Package format renderiza valores para exibição no padrão do salão
// (preço em reais, duração em horas e minutos).
package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Price formata um valor como moeda brasileira: 45 → "R$ 45,00"
func Price(value float64) string {
	return "R$ " + strings.Replace(strconv.FormatFloat(value, 'f', 2, 64), ".", ",", 1)
}

// Duration formata minutos como "45min", "1h" ou "1h30min"
func Duration(minutes int) string {
	h := minutes / 60
	m := minutes % 60

	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%02dmin", h, m)
	}
}
