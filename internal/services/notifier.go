package services

import (
	"examly/internal/utils"
	helpers "examly/internal/utils/helpers"
)

// NotificationSender — транзакционные письма. Вызовы fire-and-forget:
// воркфлоу не ждёт результата и не проверяет его.
type NotificationSender interface {
	SendRegisterEmail(email, firstName string)
	SendResetPasswordEmail(email, code string)
}

type Notifier struct {
	resetTTLMin int
}

func NewNotifier(resetTTLMin int) *Notifier {
	return &Notifier{resetTTLMin: resetTTLMin}
}

func (n *Notifier) SendRegisterEmail(email, firstName string) {
	EmailQueue <- EmailJob{
		To:      []string{email},
		Subject: "Добро пожаловать в Examly",
		Body:    helpers.BuildWelcomeHTML(utils.Capitalize(firstName)),
		IsHTML:  true,
	}
}

func (n *Notifier) SendResetPasswordEmail(email, code string) {
	EmailQueue <- EmailJob{
		To:      []string{email},
		Subject: "Код восстановления пароля",
		Body:    helpers.BuildResetCodeHTML(code, n.resetTTLMin),
		IsHTML:  true,
	}
}
