package services

import (
	"fmt"
	"net/smtp"
	"net/url"
	"strings"

	"nutrikids/internal/config"
)

// MailService sends transactional mail. Callers treat failures as
// non-fatal; a lost welcome mail never blocks a signup.
type MailService interface {
	SendWelcome(to, name string) error
	SendPasswordReset(to, token string) error
}

type smtpMailService struct {
	host     string
	port     int
	username string
	password string
	from     string

	appName    string
	appBaseURL string
}

func NewSMTPMailService(cfg *config.Config) MailService {
	return &smtpMailService{
		host:       cfg.SMTPHost,
		port:       cfg.SMTPPort,
		username:   cfg.SMTPUsername,
		password:   cfg.SMTPPassword,
		from:       cfg.SMTPFrom,
		appName:    cfg.AppName,
		appBaseURL: cfg.AppBaseURL,
	}
}

func (s *smtpMailService) SendWelcome(to, name string) error {
	subject := fmt.Sprintf("Benvenuto su %s!", s.appName)
	body := fmt.Sprintf(
		"Ciao %s,\r\n\r\n"+
			"il tuo account %s e' pronto. Registra i pasti dei tuoi bambini, "+
			"scansiona i piatti e chiedi consigli a Coach Maya.\r\n\r\n"+
			"Buon appetito!\r\nIl team %s\r\n",
		name, s.appName, s.appName)
	return s.send(to, subject, body)
}

func (s *smtpMailService) SendPasswordReset(to, token string) error {
	link := fmt.Sprintf("%s/reset-password?token=%s",
		strings.TrimRight(s.appBaseURL, "/"), url.QueryEscape(token))
	subject := fmt.Sprintf("%s - reimposta la password", s.appName)
	body := fmt.Sprintf(
		"Abbiamo ricevuto una richiesta di reset della password.\r\n\r\n"+
			"Apri questo link per continuare:\r\n%s\r\n\r\n"+
			"Il link scade tra 15 minuti. Se non hai richiesto il reset, "+
			"ignora questa email.\r\n",
		link)
	return s.send(to, subject, body)
}

func (s *smtpMailService) send(to, subject, body string) error {
	if s.host == "" {
		return fmt.Errorf("smtp not configured")
	}

	msg := strings.Builder{}
	msg.WriteString(fmt.Sprintf("From: %s <%s>\r\n", s.appName, s.from))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\nContent-Type: text/plain; charset=UTF-8\r\n\r\n")
	msg.WriteString(body)

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	auth := smtp.PlainAuth("", s.username, s.password, s.host)
	return smtp.SendMail(addr, auth, s.from, []string{to}, []byte(msg.String()))
}
