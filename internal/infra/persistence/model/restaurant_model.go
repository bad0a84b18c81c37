package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// RestaurantModel mirrors the 'restaurants' table. Menu is an opaque JSONB
// payload owned by the client. OwnerUserID back-references the users table
// for partner-scoped write access.
type RestaurantModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug        string     `gorm:"type:varchar(120);unique;not null"`
	Name        string     `gorm:"type:varchar(150);not null"`
	Description string     `gorm:"type:text"`
	OwnerUserID *uuid.UUID `gorm:"type:uuid;index"`
	City        string     `gorm:"type:varchar(100);index"`
	Area        string     `gorm:"type:varchar(100);index"`
	Address     string     `gorm:"type:text"`
	Phone       string     `gorm:"type:varchar(32)"`
	Latitude    float64
	Longitude   float64

	Menu datatypes.JSON `gorm:"type:jsonb"`

	// Pointer booleans so an explicit false reaches the insert despite the
	// column defaults.
	BookingEnabled     *bool `gorm:"not null;default:true"`
	AvgDurationMinutes int   `gorm:"not null;default:90"`
	IsActive           *bool `gorm:"not null;default:true;index"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
