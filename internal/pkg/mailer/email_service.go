package mailer

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

type IEmailService interface {
	SendTicketAcknowledgement(toEmail, name, category string, ticketId string) error
}

type emailService struct {
	dialer      *gomail.Dialer
	senderEmail string
}

func NewEmailService(host string, port int, username, password, senderEmail string) IEmailService {
	d := gomail.NewDialer(host, port, username, password)

	return &emailService{
		dialer:      d,
		senderEmail: senderEmail,
	}
}

func (s *emailService) SendTicketAcknowledgement(toEmail, name, category, ticketId string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.senderEmail)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "We received your support query")

	body := fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; padding: 20px; color: #333;">
			<h2>Hi %s,</h2>
			<p>Thanks for reaching out to NexTel support. Your query has been logged:</p>
			<p><strong>Ticket:</strong> %s<br/><strong>Category:</strong> %s</p>
			<p>Our team responds within 24 hours. For urgent issues, call 1-800-NEXTEL (24/7).</p>
		</div>
	`, name, ticketId, category)

	m.SetBody("text/html", body)

	if err := s.dialer.DialAndSend(m); err != nil {
		fmt.Printf("[MAILER ERROR] Failed to send ticket ack to %s: %v\n", toEmail, err)
		return err
	}

	fmt.Printf("[MAILER] Ticket acknowledgement sent to %s\n", toEmail)
	return nil
}
