package model

import "time"

// Development-track enumerations. Categories drive listing filters,
// project types describe the kind of deliverable, statuses describe
// where the project currently lives.
var (
	DevCategories = []string{"Websites", "Web Apps", "Mobile Apps", "E-commerce", "Dashboard", "API", "Full-Stack"}
	DevTypes      = []string{"website", "webapp", "mobile", "api"}
	DevStatuses   = []string{"Live", "Demo", "Development", "Maintenance"}
)

// DevPortfolioItem represents one showcased development project as
// stored in the `dev_portfolio_items` table. It extends the design
// item with project metadata: type, status, live/preview URLs, the
// year it shipped and the technology stack. Images, Tags and
// Technologies live in child tables.
type DevPortfolioItem struct {
	ID           uint64    `json:"id"`
	OwnerID      uint64    `json:"-"`
	Title        string    `json:"title"`
	Category     string    `json:"category"`
	Type         string    `json:"type"`
	Status       string    `json:"status"`
	Description  string    `json:"description"`
	URL          string    `json:"url"`
	PreviewURL   string    `json:"previewUrl"`
	Year         string    `json:"year"`
	Tags         []string  `json:"tags"`
	Technologies []string  `json:"technologies"`
	Images       []string  `json:"images"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// ValidDevCategory reports whether s names a known dev category.
func ValidDevCategory(s string) bool {
	for _, c := range DevCategories {
		if c == s {
			return true
		}
	}
	return false
}

// ValidDevType reports whether s is one of the project type enums.
func ValidDevType(s string) bool {
	for _, t := range DevTypes {
		if t == s {
			return true
		}
	}
	return false
}

// ValidDevStatus reports whether s is one of the project status enums.
func ValidDevStatus(s string) bool {
	for _, st := range DevStatuses {
		if st == s {
			return true
		}
	}
	return false
}
