package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"marketplace/tools"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator monta um validador novo a cada chamada.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// mensagens usam o nome do campo no JSON
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})

	// decimal vira float64 para gt/gte/lte funcionarem
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("cpf", func(fl validator.FieldLevel) bool {
		return tools.ValidCPF(fl.Field().String())
	})

	return v
}

// Validate valida a entidade e devolve *ValidationError com todos os campos
// inválidos, ou nil.
func Validate(entity any) error {
	err := newValidator().Struct(entity)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := fields[fe.Field()]; seen {
			continue
		}
		fields[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: fields}
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "campo obrigatório"
	case "email":
		return "email inválido"
	case "cpf":
		return "CPF inválido"
	case "url":
		return "URL inválida"
	case "numeric":
		return "deve conter apenas dígitos"
	case "alpha":
		return "deve conter apenas letras"
	case "datetime":
		return "data inválida (use AAAA-MM-DD)"
	case "oneof":
		return "deve ser um de: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "len":
		return fmt.Sprintf("deve ter exatamente %s caracteres", fe.Param())
	case "min":
		if isText(fe) {
			return fmt.Sprintf("deve ter no mínimo %s caracteres", fe.Param())
		}
		return "deve ser no mínimo " + fe.Param()
	case "max":
		if isText(fe) {
			return fmt.Sprintf("deve ter no máximo %s caracteres", fe.Param())
		}
		return "deve ser no máximo " + fe.Param()
	case "gt":
		return "deve ser maior que " + fe.Param()
	case "gte":
		return "deve ser maior ou igual a " + fe.Param()
	case "lte":
		return "deve ser menor ou igual a " + fe.Param()
	}
	return "valor inválido"
}

func isText(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}
