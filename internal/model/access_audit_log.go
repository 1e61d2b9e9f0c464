package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/schema"
)

// AccessAuditLog records one authorization decision taken by the API
type AccessAuditLog struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Timestamp    time.Time `json:"timestamp" gorm:"index"`
	Action       string    `json:"action" gorm:"type:varchar(32);index"`
	Result       *bool     `json:"result"`
	SubjectID    string    `json:"subjectId" gorm:"type:varchar(64);index"`
	SubjectRole  string    `json:"subjectRole" gorm:"type:varchar(16)"`
	Resource     string    `json:"resource" gorm:"type:text"`
	ResourceID   string    `json:"resourceId" gorm:"type:varchar(64)"`
	RequiredRole string    `json:"requiredRole" gorm:"type:varchar(16)"`
	Context      JSONMap   `json:"context"`
	RequestID    string    `json:"requestId" gorm:"type:text"`
	ClientIP     string    `json:"clientIp" gorm:"type:text"`
	UserAgent    string    `json:"userAgent" gorm:"type:text"`
	CreatedAt    time.Time `json:"createdAt"`
}

// TableName specifies the table name for AccessAuditLog
func (AccessAuditLog) TableName() string {
	return "access_audit_logs"
}

// BeforeCreate hook for AccessAuditLog
func (l *AccessAuditLog) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	if l.Timestamp.IsZero() {
		l.Timestamp = time.Now().UTC()
	}
	return nil
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (JSONMap) GormDataType() string {
	return "json"
}

func (JSONMap) GormDBDataType(db *gorm.DB, field *schema.Field) string {
	return jsonDataType(db)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Constants for AccessAuditLog actions
const (
	ActionRoleCheck      = "role_check"
	ActionOwnershipCheck = "ownership_check"
)
