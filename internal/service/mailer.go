// File: internal/service/mailer.go
package service

import (
	"gopkg.in/gomail.v2"
)

// Mailer 抽象外寄郵件傳送，失敗時回傳傳輸層錯誤
type Mailer interface {
	Send(to, subject, body string) error
}

// dialAndSend 實際撥接並送信，測試可覆寫此變數。
var dialAndSend = func(d *gomail.Dialer, m ...*gomail.Message) error {
	return d.DialAndSend(m...)
}

// SMTPMailer 透過 SMTP 寄送純文字郵件
type SMTPMailer struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func (s *SMTPMailer) Send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.Host, s.Port, s.Username, s.Password)
	return dialAndSend(d, m)
}

// FakeMailer 測試用假實作，未設定 SendFn 時會 panic
type FakeMailer struct {
	SendFn func(to, subject, body string) error
}

func (f *FakeMailer) Send(to, subject, body string) error {
	if f.SendFn != nil {
		return f.SendFn(to, subject, body)
	}
	panic("unexpected Send")
}
