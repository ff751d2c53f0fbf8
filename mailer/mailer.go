package mailer

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/gomail.v2"

	"github.com/Shalom-Shobowale/adunniTradingHub/config"
	"github.com/Shalom-Shobowale/adunniTradingHub/models"
)

// Mailer sends transactional email over SMTP. All callers treat sending as
// fire-and-forget: a failed send is logged and reported, it never rolls back
// the state change that triggered it. With no SMTP host configured the
// mailer logs and drops messages, which keeps local development and tests
// offline.
type Mailer struct {
	dialer     *gomail.Dialer
	from       string
	adminEmail string
	log        *logrus.Logger
}

func New(cfg config.Config, log *logrus.Logger) *Mailer {
	m := &Mailer{
		from:       cfg.EmailFrom,
		adminEmail: cfg.AdminEmail,
		log:        log,
	}
	if cfg.SMTPHost != "" {
		m.dialer = gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword)
	}
	return m
}

func (m *Mailer) send(to, subject, body string) error {
	if m.dialer == nil {
		m.log.WithFields(logrus.Fields{"to": to, "subject": subject}).
			Info("SMTP not configured, dropping email")
		return nil
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	return m.dialer.DialAndSend(msg)
}

// SendPaymentConfirmation mails the buyer when an order's payment is marked
// paid.
func (m *Mailer) SendPaymentConfirmation(to, name string, order models.Order) error {
	body := fmt.Sprintf(`
		<h2>Payment Received</h2>
		<p>Hi %s,</p>
		<p>We have received your payment for order <strong>%s</strong>
		totalling <strong>₦%.2f</strong>. Your ponmo is being prepared for
		dispatch.</p>
		<p>Best regards,<br/><strong>Adunni Trading Hub</strong></p>`,
		name, order.OrderNumber, order.Total,
	)
	return m.send(to, "Your payment for "+order.OrderNumber+" was received", body)
}

// SendQuoteNotification mails the admin about a new wholesale quote request.
func (m *Mailer) SendQuoteNotification(quote models.QuoteRequest) error {
	if m.adminEmail == "" {
		m.log.Warn("ADMIN_EMAIL not configured, skipping quote notification")
		return nil
	}
	body := fmt.Sprintf(`
		<h2>New Wholesale Quote Received</h2>
		<p>A new quote request has been submitted on your website:</p>
		<ul>
			<li><strong>Company:</strong> %s</li>
			<li><strong>Email:</strong> %s</li>
			<li><strong>Phone:</strong> %s</li>
			<li><strong>Estimated Quantity:</strong> %d</li>
			<li><strong>Message:</strong> %s</li>
		</ul>
		<p>Check your admin panel for more details.</p>`,
		quote.CompanyName, quote.Email, quote.Phone, quote.EstimatedQuantity, quote.Message,
	)
	return m.send(m.adminEmail, "New Wholesale Quote from "+quote.CompanyName, body)
}

// SendQuoteAcknowledgement confirms receipt to the requester.
func (m *Mailer) SendQuoteAcknowledgement(quote models.QuoteRequest) error {
	body := fmt.Sprintf(`
		<h2>Thank You for Your Quote Request!</h2>
		<p>Hi %s,</p>
		<p>We have received your quote request for an estimated quantity of
		<strong>%d</strong>. Our team will contact you shortly to confirm your
		order and pricing.</p>
		<p>Best regards,<br/><strong>Adunni Trading Hub</strong></p>`,
		quote.CompanyName, quote.EstimatedQuantity,
	)
	return m.send(quote.Email, "Your Quote Request Was Received", body)
}
