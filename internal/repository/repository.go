// internal/repository/repository.go
package repository

import "gorm.io/gorm"

// Repositories bundles every store used by the API over one connection pool.
type Repositories struct {
	Users        *UserRepository
	Surveys      *SurveyRepository
	Responses    *SurveyResponseRepository
	Applications *TrainingApplicationRepository
	Analytics    *AnalyticsRepository
	AuditLogs    *AccessAuditLogRepository
}

func New(db *gorm.DB) *Repositories {
	return &Repositories{
		Users:        NewUserRepository(db),
		Surveys:      NewSurveyRepository(db),
		Responses:    NewSurveyResponseRepository(db),
		Applications: NewTrainingApplicationRepository(db),
		Analytics:    NewAnalyticsRepository(db),
		AuditLogs:    NewAccessAuditLogRepository(db),
	}
}

// applicantColumns are the user fields joined onto training applications.
func applicantColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name", "email", "department", "position")
}

func displayNameColumns(db *gorm.DB) *gorm.DB {
	return db.Select("id", "first_name", "last_name")
}
