package main

import (
	"bytes"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

const welcomeMail = `{{define "subject"}}Welcome to Todo API{{end}}
{{define "plainBody"}}Hi {{.Name}},

Thanks for signing up. Your account is ready and you can start creating
tasks right away.
{{end}}
{{define "htmlBody"}}<html>
<body>
<p>Hi {{.Name}},</p>
<p>Thanks for signing up. Your account is ready and you can start creating
tasks right away.</p>
</body>
</html>{{end}}`

var welcomeTemplate = template.Must(template.New("welcome").Parse(welcomeMail))

type mailer struct {
	dialer *mail.Dialer
	sender string
}

func newMailer(host string, port int, username string, password string, sender string) *mailer {
	dialer := mail.NewDialer(host, port, username, password)
	return &mailer{
		dialer: dialer,
		sender: sender,
	}
}

func (m *mailer) sendWelcome(u *user) error {
	return m.send(u.Email, welcomeTemplate, u)
}

func (m *mailer) send(to string, tmpl *template.Template, data any) error {
	var subject bytes.Buffer
	err := tmpl.ExecuteTemplate(&subject, "subject", data)
	if err != nil {
		return err
	}
	var plainBody bytes.Buffer
	err = tmpl.ExecuteTemplate(&plainBody, "plainBody", data)
	if err != nil {
		return err
	}
	var htmlBody bytes.Buffer
	err = tmpl.ExecuteTemplate(&htmlBody, "htmlBody", data)
	if err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	return retry(3, 500*time.Millisecond, func() error {
		return m.dialer.DialAndSend(msg)
	})
}

// retry runs fn up to attempts times, sleeping delay before each re-attempt
// so transient failures get a chance to clear.
func retry(attempts int, delay time.Duration, fn func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(delay)
		}
		err = fn()
		if err == nil {
			return nil
		}
	}
	return err
}
