package services

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate — общий валидатор форм. Ключи ошибок — имена полей формы
// (json-теги), сообщения — те, что видит клиент.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateForm возвращает nil, если форма валидна, иначе map поле→сообщения.
func validateForm(form interface{}) map[string][]string {
	err := validate.Struct(form)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string][]string{"form": {"Invalid input"}}
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], fieldMessage(fe))
	}
	return fields
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "email":
		return "Invalid email"
	case "min":
		return "Password must be at least " + fe.Param() + " characters"
	default:
		return "Invalid value"
	}
}
