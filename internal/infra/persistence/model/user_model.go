// Package model contains the GORM persistence models mirroring the database tables.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' registry table. PostgreSQL generates UUIDs
// via uuid_generate_v7(). AuthID is the external identity from the auth
// provider and is what session tokens reference.
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AuthID       string    `gorm:"type:varchar(255);unique;not null"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	Name         string    `gorm:"type:varchar(100)"`
	Phone        string    `gorm:"type:varchar(32)"`
	Role         string    `gorm:"type:varchar(32);not null;default:'user'"`
	PasswordHash string    `gorm:"type:varchar(255)"`
	LastLoginAt  *time.Time
	LastOpenedAt *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
