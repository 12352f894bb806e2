package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

func TestSMTPMailerSend(t *testing.T) {
	t.Cleanup(restoreGlobals)

	mailer := &SMTPMailer{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "mailer",
		Password: "secret",
		From:     "noreply@example.com",
	}

	t.Run("builds the message and dials", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		dialAndSend = func(d *gomail.Dialer, msgs ...*gomail.Message) error {
			require.Equal(t, "smtp.example.com", d.Host)
			require.Equal(t, 587, d.Port)
			require.Len(t, msgs, 1)
			require.Equal(t, []string{"noreply@example.com"}, msgs[0].GetHeader("From"))
			require.Equal(t, []string{"user@example.com"}, msgs[0].GetHeader("To"))
			require.Equal(t, []string{"Password Reset"}, msgs[0].GetHeader("Subject"))
			return nil
		}
		require.NoError(t, mailer.Send("user@example.com", "Password Reset", "body"))
	})

	t.Run("propagates dial error", func(t *testing.T) {
		t.Cleanup(restoreGlobals)
		dialAndSend = func(*gomail.Dialer, ...*gomail.Message) error {
			return errors.New("dial tcp: connection refused")
		}
		require.Error(t, mailer.Send("user@example.com", "s", "b"))
	})
}

func TestFakeMailer(t *testing.T) {
	t.Run("panics without SendFn", func(t *testing.T) {
		require.Panics(t, func() { _ = (&FakeMailer{}).Send("a", "b", "c") })
	})

	t.Run("delegates to SendFn", func(t *testing.T) {
		f := &FakeMailer{SendFn: func(to, subject, body string) error {
			require.Equal(t, "a@b.c", to)
			return nil
		}}
		require.NoError(t, f.Send("a@b.c", "s", "b"))
	})
}
