package model

import "time"

// Design-track categories accepted by the upload endpoints. The
// listing endpoints additionally accept "All" (or an empty string)
// to disable category filtering.
var DesignCategories = []string{"Branding", "UI/UX", "Print Design", "Web Design", "Illustration"}

// PortfolioItem represents one showcased design work as stored in
// the `portfolio_items` table. Images and Tags live in child tables
// (`portfolio_images`, `portfolio_tags`) and are loaded alongside
// the item by the repository.
//
// Fields:
//  ID          – primary key identifier.
//  OwnerID     – user who uploaded the item.
//  Title       – display title.
//  Category    – one of DesignCategories.
//  Description – free-form description text.
//  Tags        – ordered tag strings from portfolio_tags.
//  Images      – ordered public URLs from portfolio_images.
//  CreatedAt   – creation timestamp.
//  UpdatedAt   – last update timestamp.
type PortfolioItem struct {
	ID          uint64    `json:"id"`
	OwnerID     uint64    `json:"-"`
	Title       string    `json:"title"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Tags        []string  `json:"tags"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

// ValidDesignCategory reports whether s names a known design category.
func ValidDesignCategory(s string) bool {
	for _, c := range DesignCategories {
		if c == s {
			return true
		}
	}
	return false
}
