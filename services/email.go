package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"bjj_atlas_go/config"
	"bjj_atlas_go/models"

	"github.com/resend/resend-go/v2"
)

// Email represents an email message
type Email struct {
	To       []string
	Subject  string
	TextBody string
}

// SendEmail sends an email using the Resend API. In test mode the message is
// logged to the console instead of sent.
func SendEmail(cfg *config.Config, email *Email) error {
	if cfg.EmailTestMode {
		logEmailToConsole(email)
		return nil
	}

	if cfg.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY not configured")
	}
	if email.TextBody == "" {
		return fmt.Errorf("email must have a body")
	}

	client := resend.NewClient(cfg.ResendAPIKey)

	params := &resend.SendEmailRequest{
		From:    fmt.Sprintf("%s <%s>", cfg.EmailFromName, cfg.EmailFrom),
		To:      email.To,
		Subject: email.Subject,
		Text:    email.TextBody,
	}

	sent, err := client.Emails.Send(params)
	if err != nil {
		return fmt.Errorf("failed to send email via Resend: %v", err)
	}

	log.Printf("Email sent successfully via Resend (ID: %s) to: %v", sent.Id, email.To)
	return nil
}

// BuildScrapeRunSummaryEmail renders the run-summary report sent to the admin
// after each ingestion pass.
func BuildScrapeRunSummaryEmail(to string, run *models.ScrapeRun) *Email {
	var b strings.Builder
	fmt.Fprintf(&b, "Gym scrape run %s finished.\n\n", run.ID)
	fmt.Fprintf(&b, "Cities processed: %d\n", run.CitiesProcessed)
	fmt.Fprintf(&b, "Gyms created:     %d\n", run.GymsCreated)
	fmt.Fprintf(&b, "Gyms updated:     %d\n", run.GymsUpdated)
	fmt.Fprintf(&b, "Failed units:     %d\n", run.Failures)
	if run.FinishedAt != nil {
		fmt.Fprintf(&b, "Duration:         %s\n", run.FinishedAt.Sub(run.StartedAt).Round(time.Second))
	}

	return &Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("Gym scrape run: %d new, %d updated", run.GymsCreated, run.GymsUpdated),
		TextBody: b.String(),
	}
}

func logEmailToConsole(email *Email) {
	log.Printf("=== EMAIL (test mode, not sent) ===")
	log.Printf("To: %v", email.To)
	log.Printf("Subject: %s", email.Subject)
	log.Printf("%s", email.TextBody)
	log.Printf("===================================")
}
