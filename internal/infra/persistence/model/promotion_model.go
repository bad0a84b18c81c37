package model

import "time"

// HomeHeroOfferModel mirrors the 'home_hero_offers' table. Offers use a
// plain serial id; clients delete by numeric id.
type HomeHeroOfferModel struct {
	ID       int64  `gorm:"primaryKey;autoIncrement"`
	Title    string `gorm:"type:varchar(200)"`
	MediaURL string `gorm:"type:text;not null"`
	Priority int    `gorm:"not null;default:0;index"`
	// Pointer boolean so an explicit false reaches the insert despite the
	// column default.
	IsActive  *bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (HomeHeroOfferModel) TableName() string {
	return "home_hero_offers"
}

// SpotlightItemModel mirrors the 'spotlight_items' table.
type SpotlightItemModel struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Title      string `gorm:"type:varchar(200)"`
	ModuleType string `gorm:"type:varchar(64);index"`
	MediaURL   string `gorm:"type:text"`
	OrderIndex int    `gorm:"not null;default:0;index"`
	// Pointer boolean so an explicit false reaches the insert despite the
	// column default.
	IsActive  *bool `gorm:"not null;default:true;index"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (SpotlightItemModel) TableName() string {
	return "spotlight_items"
}
