package domain

import "time"

// Site represents a bookable historical location
// Reference data: loaded once at startup and never mutated afterwards
type Site struct {
	ID           int64
	Name         string
	NameArabic   string // Localized (Arabic) name shown next to the English one
	Description  string
	Significance string
	Duration     string // Human-readable duration descriptor, e.g. "Flexible (1-10 hours)"
	Image        string
	Price        float64 // Base price, used by the flat per-person pricing strategy
	Rating       float64

	CreatedAt time.Time
}
