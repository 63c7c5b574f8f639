package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/thatcatcamp/themebuilder/internal/themes"
	"gorm.io/gorm"
)

// SavedTheme is a named slider setting kept in the theme library.
// Only the four inputs are stored; palettes are regenerated on read.
type SavedTheme struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	ShareID       string    `gorm:"uniqueIndex;size:36;not null" json:"share_id"`
	Name          string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Warmth        float64   `gorm:"not null" json:"warmth"`
	Saturation    float64   `gorm:"not null" json:"saturation"`
	Contrast      float64   `gorm:"not null" json:"contrast"`
	Accessibility float64   `gorm:"not null" json:"accessibility"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// TableName overrides for consistent naming
func (SavedTheme) TableName() string {
	return "saved_themes"
}

// BeforeCreate assigns a share ID when none was provided.
func (t *SavedTheme) BeforeCreate(tx *gorm.DB) error {
	if t.ShareID == "" {
		t.ShareID = uuid.NewString()
	}
	return nil
}

// Sliders returns the stored inputs.
func (t *SavedTheme) Sliders() themes.Sliders {
	return themes.Sliders{
		Warmth:        t.Warmth,
		Saturation:    t.Saturation,
		Contrast:      t.Contrast,
		Accessibility: t.Accessibility,
	}
}

// SetSliders copies the inputs onto the row.
func (t *SavedTheme) SetSliders(s themes.Sliders) {
	t.Warmth = s.Warmth
	t.Saturation = s.Saturation
	t.Contrast = s.Contrast
	t.Accessibility = s.Accessibility
}
