package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/wneessen/go-mail"
)

func newMailClient() (*mail.Client, error) {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587
	}
	return mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
}

// SendOTPEmail delivers a verification code to the given address.
func SendOTPEmail(emailTo, otp string) error {
	msg := mail.NewMsg()
	if err := msg.From(os.Getenv("FROM_EMAIL")); err != nil {
		return err
	}
	if err := msg.To(emailTo); err != nil {
		return err
	}
	msg.Subject("Your OTP Verification Code")
	msg.SetBodyString(mail.TypeTextPlain, fmt.Sprintf("Your OTP is: %s", otp))

	client, err := newMailClient()
	if err != nil {
		return err
	}
	return client.DialAndSend(msg)
}
