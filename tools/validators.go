package tools

// ValidCPF confere tamanho e dígitos verificadores de um CPF (com ou sem máscara).
func ValidCPF(cpf string) bool {
	digits := OnlyDigits(cpf)
	if len(digits) != 11 {
		return false
	}

	// 000.000.000-00, 111.111.111-11 ... passam na conta mas não são válidos
	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	return checkDigit(digits[:9], 10) == int(digits[9]-'0') &&
		checkDigit(digits[:10], 11) == int(digits[10]-'0')
}

func checkDigit(digits string, weight int) int {
	sum := 0
	for _, d := range digits {
		sum += int(d-'0') * weight
		weight--
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
