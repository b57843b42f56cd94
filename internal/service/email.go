package service

import (
	"context"
	"fmt"

	"fleetrent-backend/internal/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

type sendGridEmailService struct {
	apiKey    string
	fromEmail string
	fromName  string
}

func NewEmailService(cfg config.EmailConfig) EmailService {
	return &sendGridEmailService{
		apiKey:    cfg.APIKey,
		fromEmail: cfg.FromEmail,
		fromName:  cfg.FromName,
	}
}

func (s *sendGridEmailService) SendRentalApproved(ctx context.Context, email, name string, rentalID int32, returnDate string) error {
	subject := fmt.Sprintf("Rental #%d approved", rentalID)
	plainText := fmt.Sprintf("Hi %s, your rental #%d has been approved. Please return the vehicle by %s.", name, rentalID, returnDate)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Approved</h2>
				<p>Hi %s, your rental <strong>#%d</strong> has been approved.</p>
				<p>Please return the vehicle by <strong>%s</strong>.</p>
			</body>
		</html>
	`, name, rentalID, returnDate)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendExtensionDecision(ctx context.Context, email, name string, rentalID int32, approved bool, returnDate string) error {
	decision := "approved"
	if !approved {
		decision = "rejected"
	}
	subject := fmt.Sprintf("Extension request for rental #%d %s", rentalID, decision)
	plainText := fmt.Sprintf("Hi %s, your extension request for rental #%d has been %s. The return date is %s.", name, rentalID, decision, returnDate)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Extension Request %s</h2>
				<p>Hi %s, your extension request for rental <strong>#%d</strong> has been %s.</p>
				<p>The return date is <strong>%s</strong>.</p>
			</body>
		</html>
	`, decision, name, rentalID, decision, returnDate)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) SendOverdueReminder(ctx context.Context, email, name string, rentalID int32, dueDate string) error {
	subject := fmt.Sprintf("Rental #%d is overdue", rentalID)
	plainText := fmt.Sprintf("Hi %s, your rental #%d was due on %s. Please return the vehicle as soon as possible.", name, rentalID, dueDate)
	htmlContent := fmt.Sprintf(`
		<html>
			<body>
				<h2>Rental Overdue</h2>
				<p>Hi %s, your rental <strong>#%d</strong> was due on <strong>%s</strong>.</p>
				<p>Please return the vehicle as soon as possible.</p>
			</body>
		</html>
	`, name, rentalID, dueDate)
	return s.send(ctx, email, name, subject, plainText, htmlContent)
}

func (s *sendGridEmailService) send(ctx context.Context, to, toName, subject, plainText, htmlContent string) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	recipient := mail.NewEmail(toName, to)
	message := mail.NewSingleEmail(from, subject, recipient, plainText, htmlContent)

	client := sendgrid.NewSendClient(s.apiKey)
	response, err := client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid error: status %d, body: %s", response.StatusCode, response.Body)
	}
	return nil
}
