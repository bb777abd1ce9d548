package service

import (
	"fmt"

	"gopkg.in/gomail.v2"

	"smart-box-service/internal/metrics"
)

// Servicio de mail para las notificaciones de caja abierta.
type MailService struct {
	dialer *gomail.Dialer
	from   string
}

func NewMailService(host string, port int, user, pass string) *MailService {
	return &MailService{
		dialer: gomail.NewDialer(host, port, user, pass),
		from:   user,
	}
}

// SendBoxOpened avisa al remitente que el receptor abrió su caja.
// El coordinador lo invoca fire-and-forget; el error solo se loguea.
func (m *MailService) SendBoxOpened(to, orderID string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("Smart Box using IoT <%s>", m.from))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", "Smart Box using IoT - Box Opened Notification")
	msg.SetBody("text/html", boxOpenedBody(orderID))

	if err := m.dialer.DialAndSend(msg); err != nil {
		metrics.NotificationsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.NotificationsTotal.WithLabelValues("ok").Inc()
	return nil
}

func boxOpenedBody(orderID string) string {
	return fmt.Sprintf(`
		<div style="font-family: Arial, sans-serif; max-width: 600px; margin: auto; padding: 20px; border: 1px solid #e0e0e0; border-radius: 10px;">
			<div style="background-color: #3B82F6; color: white; padding: 20px; text-align: center;">
				<h1 style="margin: 0; font-size: 24px;">Your Box Has Been Opened!</h1>
			</div>
			<p style="font-size: 16px; color: #333;">Dear Customer,</p>
			<p style="font-size: 16px; color: #333;">
				We are pleased to inform you that your ordered box with the ID <strong style="color: #555;">#%s</strong> has been successfully opened.
			</p>
			<p style="font-size: 16px; color: #333;">
				Thank you for using our service! If you have any questions or need further assistance, please feel free to reach out to us.
			</p>
			<p style="font-size: 16px; color: #333;">Best regards,<br>Smart Box using IoT Team</p>
		</div>
	`, orderID)
}
