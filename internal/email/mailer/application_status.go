// internal/email/mailer/application_status.go
package mailer

import (
	"context"
	"fmt"
	"strings"

	"github.com/dangerclosesec/traininghub/internal/email"
	"github.com/dangerclosesec/traininghub/internal/model"
)

const applicationStatusTemplate = "application_status"

// Sender delivers a rendered template email.
type Sender interface {
	SendEmail(data email.EmailData) error
}

// ApplicationStatusTemplateData contains data for the application status template
type ApplicationStatusTemplateData struct {
	FirstName       string
	ApplicationType string
	Title           string
	Status          string
	ManagerApproval bool
	HRApproval      bool
	Comments        string
	Link            string
}

// ApplicationStatusMailer tells applicants that a reviewer changed their application.
type ApplicationStatusMailer struct {
	sender  Sender
	baseURL string
}

func NewApplicationStatusMailer(sender Sender, baseURL string) *ApplicationStatusMailer {
	return &ApplicationStatusMailer{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// NotifyStatusChange sends the status email for application to applicant.
func (m *ApplicationStatusMailer) NotifyStatusChange(ctx context.Context, application *model.TrainingApplication, applicant *model.User) error {
	if applicant == nil || applicant.Email == "" {
		return fmt.Errorf("application %s has no applicant email", application.ID)
	}

	templateData := ApplicationStatusTemplateData{
		FirstName:       applicant.FirstName,
		ApplicationType: humanize(string(application.ApplicationType)),
		Title:           application.Title,
		Status:          humanize(string(application.Status)),
		ManagerApproval: application.ManagerApproval,
		HRApproval:      application.HRApproval,
		Link:            fmt.Sprintf("%s/training/applications/%s", m.baseURL, application.ID),
	}
	if application.AdminComments != nil {
		templateData.Comments = *application.AdminComments
	}

	emailData := email.EmailData{
		To:           applicant.Email,
		FromName:     "TrainingHub",
		Subject:      fmt.Sprintf("Your training application is %s", templateData.Status),
		TemplateName: applicationStatusTemplate,
		TemplateData: templateData,
	}

	return m.sender.SendEmail(emailData)
}

// humanize turns UNDER_REVIEW into "under review".
func humanize(s string) string {
	return strings.ToLower(strings.ReplaceAll(s, "_", " "))
}
