// Copyright (c) 2025 NBLK Consulting.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package report

import (
	"encoding/base64"
	"fmt"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/nblk/stability-server/scoring"
)

// Delivery sends a finished evaluation report to a respondent. It reads
// the Results value and never mutates it.
type Delivery interface {
	Deliver(res scoring.Results, firstName, email string) error
}

// SendGridDelivery renders the PDF report and emails it through SendGrid.
type SendGridDelivery struct {
	APIKey string
	From   string
}

func NewSendGridDelivery(apiKey, from string) *SendGridDelivery {
	return &SendGridDelivery{APIKey: apiKey, From: from}
}

const emailSubject = "Your Full NBLK Stability Score Report"

// Deliver builds the PDF and transmits it. Rendering and transmission
// failures surface as one error; the operation is retriable as a whole.
func (d *SendGridDelivery) Deliver(res scoring.Results, firstName, email string) error {
	pdfBytes, err := Build(res, firstName)
	if err != nil {
		return fmt.Errorf("report delivery failed: %w", err)
	}

	m := mail.NewV3Mail()
	m.SetFrom(mail.NewEmail("NBLK Consulting", d.From))
	m.Subject = emailSubject

	p := mail.NewPersonalization()
	p.AddTos(mail.NewEmail(firstName, email))
	m.AddPersonalizations(p)

	m.AddContent(
		mail.NewContent("text/plain", plainBody(firstName)),
		mail.NewContent("text/html", htmlBody(firstName)),
	)

	a := mail.NewAttachment()
	a.SetContent(base64.StdEncoding.EncodeToString(pdfBytes))
	a.SetType("application/pdf")
	a.SetFilename("stability-score-report.pdf")
	a.SetDisposition("attachment")
	m.AddAttachment(a)

	client := sendgrid.NewSendClient(d.APIKey)
	resp, err := client.Send(m)
	if err != nil {
		return fmt.Errorf("report delivery failed: %w", err)
	}
	if resp.StatusCode >= 400 {
		return fmt.Errorf("report delivery failed: sendgrid returned %d: %s", resp.StatusCode, resp.Body)
	}
	return nil
}

func plainBody(firstName string) string {
	return fmt.Sprintf(`Hi %s,

Thanks for sharing your perspective in the Stability Score Calculator.
Based on your input, we've generated your full score summary, including:
- Your exact score and grade
- What it means for political stability
- How your view compares to others by age and region

Please find your detailed report attached to this email.

Stay informed,
The NBLK Team`, firstName)
}

func htmlBody(firstName string) string {
	return fmt.Sprintf(`<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #228B22;">Your Full NBLK Stability Score Report</h2>
  <p>Hi %s,</p>
  <p>Thanks for sharing your perspective in the Stability Score Calculator.</p>
  <p>Based on your input, we've generated your full score summary, including:</p>
  <ul>
    <li>Your exact score and grade</li>
    <li>What it means for political stability</li>
    <li>How your view compares to others by age and region</li>
  </ul>
  <p>Please find your detailed report attached to this email.</p>
  <p>Stay informed,<br>The NBLK Team</p>
</div>`, firstName)
}
