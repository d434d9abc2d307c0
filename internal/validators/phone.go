package validators

// MinPhoneDigits é o mínimo aceito: fixo com DDD (10) ou celular (11)
const MinPhoneDigits = 10

func NormalizePhone(raw string) string {
	return nonDigits.ReplaceAllString(raw, "")
}

// IsPhoneValid considera válido um telefone com DDD e ao menos 8 dígitos de número
func IsPhoneValid(raw string) bool {
	return len(NormalizePhone(raw)) >= MinPhoneDigits
}

// FormatPhone aplica a máscara (AA) NNNNN-NNNN progressivamente,
// estável para qualquer prefixo de 0 a 11 dígitos
func FormatPhone(raw string) string {
	phone := NormalizePhone(raw)
	if len(phone) > 11 {
		phone = phone[:11]
	}

	switch {
	case len(phone) <= 2:
		return phone
	case len(phone) <= 7:
		return "(" + phone[:2] + ") " + phone[2:]
	default:
		return "(" + phone[:2] + ") " + phone[2:7] + "-" + phone[7:]
	}
}
