package validator

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// GetValidator - получить валидатор для кастомной конфигурации
func GetValidator() *validator.Validate {
	return validate
}

// Describe превращает ошибки валидации в map поле -> правило для ответа клиенту
func Describe(err error) map[string]interface{} {
	details := make(map[string]interface{})

	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		details["error"] = err.Error()
		return details
	}

	for _, fe := range validationErrs {
		rule := fe.Tag()
		if fe.Param() != "" {
			rule = fmt.Sprintf("%s=%s", rule, fe.Param())
		}
		details[strings.ToLower(fe.Field())] = rule
	}
	return details
}
