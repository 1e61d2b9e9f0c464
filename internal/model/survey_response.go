// internal/model/survey_response.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ResponseStatus string

const (
	ResponseInProgress ResponseStatus = "IN_PROGRESS"
	ResponseCompleted  ResponseStatus = "COMPLETED"
)

// SurveyResponse is unique per (survey, user); the composite index enforces it in the store.
type SurveyResponse struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID  uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_survey_responses_survey_user" json:"surveyId"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex:idx_survey_responses_survey_user;index" json:"userId"`
	Status    ResponseStatus `gorm:"type:varchar(16);not null;default:'IN_PROGRESS'" json:"status"`
	CreatedAt time.Time      `gorm:"index" json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`

	Survey  *Survey  `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"-"`
	User    *User    `gorm:"foreignKey:UserID" json:"-"`
	Answers []Answer `gorm:"foreignKey:ResponseID;constraint:OnDelete:CASCADE" json:"answers"`
}

// BeforeCreate hook for SurveyResponse
func (r *SurveyResponse) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	if r.Status == "" {
		r.Status = ResponseInProgress
	}
	return nil
}

type Answer struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ResponseID uuid.UUID `gorm:"type:uuid;not null;index" json:"responseId"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"questionId"`
	Answer     string    `gorm:"type:text;not null" json:"answer"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`

	Question *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
}

// BeforeCreate hook for Answer
func (a *Answer) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
