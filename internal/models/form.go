package models

// FormResult — явный «меченый» результат формы: либо успех с редиректом,
// либо ошибки по полям. Сервисы никогда не кидают доменные ошибки наружу —
// всё ожидаемое попадает сюда.
type FormResult struct {
	OK         bool                `json:"success"`
	RedirectTo string              `json:"redirect_to,omitempty"`
	Fields     map[string][]string `json:"errors,omitempty"`
}

func FormSuccess(redirectTo string) *FormResult {
	return &FormResult{OK: true, RedirectTo: redirectTo}
}

func FormFail(fields map[string][]string) *FormResult {
	return &FormResult{OK: false, Fields: fields}
}

// FormFieldError — сокращение для ошибки одного поля.
func FormFieldError(field, message string) *FormResult {
	return &FormResult{OK: false, Fields: map[string][]string{field: {message}}}
}
