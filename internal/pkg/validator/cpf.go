package validator

import "strings"

// NormalizeCPF strips everything but digits from a CPF string.
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF validates the Brazilian CPF check digits. Expects the normalized
// 11-digit form. Repdigit CPFs (e.g. 11111111111) pass the arithmetic but
// are invalid by definition.
func ValidCPF(cpf string) bool {
	if len(cpf) != 11 {
		return false
	}

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

	digits := make([]int, 11)
	for i := 0; i < 11; i++ {
		digits[i] = int(cpf[i] - '0')
	}

	return checkDigit(digits, 9) == digits[9] && checkDigit(digits, 10) == digits[10]
}

func checkDigit(digits []int, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += digits[i] * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
