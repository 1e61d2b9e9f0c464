// internal/model/survey.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SurveyStatus string

const (
	SurveyDraft     SurveyStatus = "DRAFT"
	SurveyActive    SurveyStatus = "ACTIVE"
	SurveyCompleted SurveyStatus = "COMPLETED"
	SurveyArchived  SurveyStatus = "ARCHIVED"
)

type QuestionType string

const (
	QuestionText           QuestionType = "TEXT"
	QuestionTextarea       QuestionType = "TEXTAREA"
	QuestionSingleChoice   QuestionType = "SINGLE_CHOICE"
	QuestionMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionRating         QuestionType = "RATING"
	QuestionDate           QuestionType = "DATE"
)

// IsChoice reports whether options are meaningful for the question type.
func (t QuestionType) IsChoice() bool {
	return t == QuestionSingleChoice || t == QuestionMultipleChoice
}

type Survey struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string       `gorm:"type:text;not null" json:"title"`
	Description *string      `gorm:"type:text" json:"description"`
	Status      SurveyStatus `gorm:"type:varchar(16);not null;default:'DRAFT';index" json:"status"`
	CreatedByID uuid.UUID    `gorm:"type:uuid;not null;index" json:"createdById"`
	CreatedAt   time.Time    `json:"createdAt"`
	UpdatedAt   time.Time    `json:"updatedAt"`

	CreatedBy *User      `gorm:"foreignKey:CreatedByID" json:"-"`
	Questions []Question `gorm:"foreignKey:SurveyID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// BeforeCreate hook for Survey
func (s *Survey) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.Status == "" {
		s.Status = SurveyDraft
	}
	return nil
}

type Question struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SurveyID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"surveyId"`
	Title     string         `gorm:"type:text;not null" json:"title"`
	Type      QuestionType   `gorm:"type:varchar(32);not null" json:"type"`
	Options   StringList     `json:"options,omitempty"`
	Required  bool           `gorm:"not null;default:false" json:"required"`
	Order     int            `gorm:"column:sort_order;not null;default:0" json:"order"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// BeforeCreate hook for Question
func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}
