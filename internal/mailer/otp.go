package mailer

import (
	"fmt"
	"html"

	"github.com/pandey-i/note-taking-app/internal/model"
)

// Purpose tells the recipient why a code was sent.
type Purpose int

const (
	PurposeRegistration Purpose = iota
	PurposeLogin
)

const otpSubject = "Your OTP for Note Taking App"

// OTPMessage builds the email carrying a one-time code.
func OTPMessage(to, code string, purpose Purpose) model.Message {
	subject := otpSubject
	if purpose == PurposeLogin {
		subject += " (Login)"
	}

	return model.Message{
		To:      to,
		Subject: subject,
		Text:    fmt.Sprintf("Your OTP is: %s", code),
		HTML:    fmt.Sprintf("<p>Your OTP is: <b>%s</b></p>", html.EscapeString(code)),
	}
}
