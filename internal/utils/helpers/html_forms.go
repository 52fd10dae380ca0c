package helpers

import (
	"fmt"
)

func BuildSimpleHTML(title, body string) string {
	return fmt.Sprintf(`
<html>
  <body style="font-family:Arial,sans-serif; background:#f9f9f9;">
    <table width="100%%" cellpadding="0" cellspacing="0" bgcolor="#f9f9f9">
      <tr>
        <td align="center" style="padding:32px 0;">
          <table width="500" bgcolor="#fff" cellpadding="24" cellspacing="0" style="border-radius:8px; box-shadow:0 1px 6px #eee;">
            <tr>
              <td>
                <h2 style="color:#2d74da; margin-top:0;">%s</h2>
                %s
                <hr style="border:none;border-top:1px solid #eee;margin:32px 0 12px 0;">
                <p style="font-size:12px;color:#999;margin:0;">
                  Вы получили это письмо от Examly.<br>
                  <i>Если это были не вы — просто проигнорируйте письмо.</i>
                </p>
              </td>
            </tr>
          </table>
        </td>
      </tr>
    </table>
  </body>
</html>
`, title, body)
}

// BuildWelcomeHTML — письмо после регистрации.
func BuildWelcomeHTML(firstName string) string {
	body := fmt.Sprintf(`
      <p style="font-size:16px;color:#222;margin:0 0 16px 0;">Здравствуйте, <strong>%s</strong>!</p>
      <p style="font-size:14px;color:#333;">Аккаунт создан. Теперь вам доступны тренировочные вопросы и статистика ответов.</p>
    `, firstName)
	return BuildSimpleHTML("Добро пожаловать в Examly", body)
}

// BuildResetCodeHTML — письмо с кодом восстановления пароля.
func BuildResetCodeHTML(code string, ttlMinutes int) string {
	body := fmt.Sprintf(`
      <p style="font-size:14px;color:#333;margin:0 0 16px 0;">Код для восстановления пароля:</p>
      <p style="font-size:32px;letter-spacing:6px;font-weight:bold;color:#2d74da;margin:0 0 16px 0;">%s</p>
      <p style="font-size:12px;color:#999;">Код действует %d минут. Никому его не сообщайте.</p>
    `, code, ttlMinutes)
	return BuildSimpleHTML("Восстановление пароля", body)
}
