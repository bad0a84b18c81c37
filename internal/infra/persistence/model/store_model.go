package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// StoreModel mirrors the 'stores' table. Tags is a JSONB string set.
// Payment and CatalogueItems are cascade-deleted with the store row.
type StoreModel struct {
	ID          uuid.UUID                   `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Slug        string                      `gorm:"type:varchar(120);unique;not null"`
	Name        string                      `gorm:"type:varchar(150);not null"`
	Category    string                      `gorm:"type:varchar(100);index"`
	Subcategory string                      `gorm:"type:varchar(100)"`
	Tags        datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	OwnerUserID *uuid.UUID                  `gorm:"type:uuid;index"`
	IsActive    bool                        `gorm:"not null;default:true;index"`
	IsFeatured  bool                        `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Payment        *StorePaymentModel         `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
	CatalogueItems []*StoreCatalogueItemModel `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StoreModel) TableName() string {
	return "stores"
}

// StorePaymentModel mirrors the 'store_payments' table (1:1 with stores).
type StorePaymentModel struct {
	StoreID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	AccountHolder string    `gorm:"type:varchar(150)"`
	IBAN          string    `gorm:"type:varchar(42)"`
	BankName      string    `gorm:"type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (StorePaymentModel) TableName() string {
	return "store_payments"
}

// StoreCatalogueItemModel mirrors the 'store_catalogue_items' table (1:N with stores).
type StoreCatalogueItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	StoreID   uuid.UUID `gorm:"type:uuid;index;not null"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Price     float64
	ImageURL  string `gorm:"type:text"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (StoreCatalogueItemModel) TableName() string {
	return "store_catalogue_items"
}
