package tools

import (
	"strings"
	"unicode"
)

// OnlyDigits remove tudo que não é dígito (telefone, CPF, CEP).
func OnlyDigits(raw string) string {
	raw = strings.TrimSpace(raw)
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// NormalizePhone deixa o telefone só com dígitos, sem zeros à esquerda.
//
// Heurística (Brasil):
// - 10/11 dígitos (DDD+numero) ficam como estão
// - com DDI 55 na frente (12/13 dígitos) o DDI é removido
func NormalizePhone(raw string) string {
	phone := strings.TrimLeft(OnlyDigits(raw), "0")
	if (len(phone) == 12 || len(phone) == 13) && strings.HasPrefix(phone, "55") {
		phone = phone[2:]
	}
	return phone
}
