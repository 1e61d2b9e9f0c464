// internal/model/training_application.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ApplicationType string

const (
	ApplicationTrainingRequest  ApplicationType = "TRAINING_REQUEST"
	ApplicationWorkshopProposal ApplicationType = "WORKSHOP_PROPOSAL"
)

type ApplicationStatus string

const (
	ApplicationPending     ApplicationStatus = "PENDING"
	ApplicationUnderReview ApplicationStatus = "UNDER_REVIEW"
	ApplicationApproved    ApplicationStatus = "APPROVED"
	ApplicationRejected    ApplicationStatus = "REJECTED"
	ApplicationCompleted   ApplicationStatus = "COMPLETED"
)

type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
	PriorityUrgent Priority = "URGENT"
)

// TrainingApplication is an employee request for external training or a workshop proposal.
// Status, approval flags and comments are independent fields; no transition ordering is stored.
type TrainingApplication struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	UserID          uuid.UUID         `gorm:"type:uuid;not null;index" json:"userId"`
	ApplicationType ApplicationType   `gorm:"type:varchar(32);not null;index" json:"applicationType"`
	Title           string            `gorm:"type:text;not null" json:"title"`
	Description     string            `gorm:"type:text;not null" json:"description"`
	Category        *string           `gorm:"type:text" json:"category"`
	Priority        Priority          `gorm:"type:varchar(16);not null;default:'MEDIUM';index" json:"priority"`
	Justification   string            `gorm:"type:text;not null" json:"justification"`
	ExpectedOutcome *string           `gorm:"type:text" json:"expectedOutcome"`
	PreferredDates  DateList          `json:"preferredDates"`
	Duration        *string           `gorm:"type:text" json:"duration"`
	Budget          *float64          `gorm:"type:numeric(12,2)" json:"budget"`
	Participants    *int              `json:"participants"`
	Location        *string           `gorm:"type:text" json:"location"`
	Provider        *string           `gorm:"type:text" json:"provider"`
	Status          ApplicationStatus `gorm:"type:varchar(16);not null;default:'PENDING';index" json:"status"`
	ManagerApproval bool              `gorm:"not null;default:false" json:"managerApproval"`
	HRApproval      bool              `gorm:"column:hr_approval;not null;default:false" json:"hrApproval"`
	AdminComments   *string           `gorm:"type:text" json:"adminComments"`
	SubmittedAt     time.Time         `gorm:"autoCreateTime;index" json:"submittedAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate hook for TrainingApplication
func (a *TrainingApplication) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Status == "" {
		a.Status = ApplicationPending
	}
	if a.Priority == "" {
		a.Priority = PriorityMedium
	}
	return nil
}
