package models

import "github.com/shopspring/decimal"

func init() {
	// valores monetários saem como número no JSON (99.9), não como string
	decimal.MarshalJSONWithoutQuotes = true
}

// All lista as tabelas na ordem de criação (pais antes dos filhos).
func All() []any {
	return []any{
		&User{},
		&Address{},
		&Category{},
		&Product{},
		&ServiceTag{},
		&Service{},
		&Cart{},
		&Order{},
		&OrderItem{},
		&Plan{},
		&UserPlan{},
		&ProductPayment{},
		&ServicePayment{},
		&PlanPayment{},
	}
}
