package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EmployeeRecord is one entry of the embedded employee list. It is stored
// inside the corporate row's JSONB column, not in a separate table.
type EmployeeRecord struct {
	UserID  uuid.UUID `json:"user_id"`
	Email   string    `json:"email"`
	Name    string    `json:"name"`
	AddedAt time.Time `json:"added_at"`
}

// CorporateModel mirrors the 'corporates' table.
type CorporateModel struct {
	ID             uuid.UUID                           `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Name           string                              `gorm:"type:varchar(150);not null"`
	OwnerUserID    uuid.UUID                           `gorm:"type:uuid;not null;index"`
	OwnerEmail     string                              `gorm:"type:varchar(255);not null"`
	Seats          int                                 `gorm:"not null;default:0"`
	Employees      datatypes.JSONSlice[EmployeeRecord] `gorm:"type:jsonb"`
	SubscriptionID *uuid.UUID                          `gorm:"type:uuid"`
	PlanName       string                              `gorm:"type:varchar(100)"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName explicitly sets the table name for GORM.
func (CorporateModel) TableName() string {
	return "corporates"
}

// SubscriptionPlanModel mirrors the 'subscription_plans' lookup table.
type SubscriptionPlanModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primary_key"`
	Name string    `gorm:"type:varchar(100);not null"`
}

// TableName explicitly sets the table name for GORM.
func (SubscriptionPlanModel) TableName() string {
	return "subscription_plans"
}
