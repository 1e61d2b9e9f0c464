// internal/repository/mock_gen.go
package repository

//go:generate mockgen -source=./user.go -destination=../mocks/mock_user_repository.go -package=mocks UserRepositoryIface
//go:generate mockgen -source=./survey.go -destination=../mocks/mock_survey_repository.go -package=mocks SurveyRepositoryIface
//go:generate mockgen -source=./survey_response.go -destination=../mocks/mock_survey_response_repository.go -package=mocks SurveyResponseRepositoryIface
//go:generate mockgen -source=./training_application.go -destination=../mocks/mock_training_application_repository.go -package=mocks TrainingApplicationRepositoryIface
//go:generate mockgen -source=./analytics.go -destination=../mocks/mock_analytics_repository.go -package=mocks AnalyticsRepositoryIface
