package entity

import "time"

// HomeHeroOffer is a promotional banner on the home page. Priority defines
// the display sequence (ascending); no density invariant is enforced.
type HomeHeroOffer struct {
	ID        int64
	Title     string
	MediaURL  string
	Priority  int
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SpotlightItem is a piece of spotlight media shown inside a client module.
// OrderIndex defines the display sequence within a module.
type SpotlightItem struct {
	ID         int64
	Title      string
	ModuleType string
	MediaURL   string
	OrderIndex int
	IsActive   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// SpotlightOrder is one entry of a bulk reorder request.
type SpotlightOrder struct {
	ID         int64
	OrderIndex int
}
