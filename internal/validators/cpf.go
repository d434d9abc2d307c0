package validators

import "regexp"

var nonDigits = regexp.MustCompile(`\D`)

// NormalizeCPF remove tudo que não é dígito
func NormalizeCPF(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// ValidateCPF valida os dois dígitos verificadores do CPF.
// Aceita entrada com ou sem máscara; nunca gera pânico.
func ValidateCPF(raw string) bool {
	cpf := NormalizeCPF(raw)
	if len(cpf) != 11 {
		return false
	}

	// "000.000.000-00" e afins passam no checksum mas são inválidos
	allSame := true
	for i := 1; i < 11; i++ {
		if cpf[i] != cpf[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if checkDigit(cpf, 9) != int(cpf[9]-'0') {
		return false
	}
	return checkDigit(cpf, 10) == int(cpf[10]-'0')
}

// checkDigit calcula o dígito verificador na posição pos (9 ou 10)
// sobre os pos primeiros dígitos, com pesos decrescentes a partir de pos+1
func checkDigit(cpf string, pos int) int {
	sum := 0
	for i := 0; i < pos; i++ {
		sum += int(cpf[i]-'0') * (pos + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		rest = 0
	}
	return rest
}

// FormatCPF aplica a máscara 000.000.000-00 progressivamente,
// válida para qualquer prefixo (uso em digitação ao vivo)
func FormatCPF(raw string) string {
	cpf := NormalizeCPF(raw)
	if len(cpf) > 11 {
		cpf = cpf[:11]
	}

	switch {
	case len(cpf) <= 3:
		return cpf
	case len(cpf) <= 6:
		return cpf[:3] + "." + cpf[3:]
	case len(cpf) <= 9:
		return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:]
	default:
		return cpf[:3] + "." + cpf[3:6] + "." + cpf[6:9] + "-" + cpf[9:]
	}
}
