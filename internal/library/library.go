// SPDX-License-Identifier: MIT
package library

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/thatcatcamp/themebuilder/internal/models"
	"github.com/thatcatcamp/themebuilder/internal/themes"
	"gorm.io/gorm"
)

var (
	ErrNotFound    = errors.New("theme not found")
	ErrDuplicate   = errors.New("theme already exists")
	ErrInvalidName = errors.New("invalid theme name")
	ErrOutOfRange  = errors.New("slider out of range")
)

// MaxDescriptionLength bounds the stored description after sanitizing.
const MaxDescriptionLength = 280

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{0,63}$`)

var textPolicy = bluemonday.StrictPolicy()

// NormalizeName lowercases and trims a theme name and checks it is a slug.
func NormalizeName(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if !namePattern.MatchString(name) {
		return "", fmt.Errorf("%w: %q (use a-z, 0-9 and '-', max 64)", ErrInvalidName, name)
	}
	return name, nil
}

// SanitizeDescription strips markup and clips the text.
func SanitizeDescription(desc string) string {
	clean := strings.TrimSpace(textPolicy.Sanitize(desc))
	if r := []rune(clean); len(r) > MaxDescriptionLength {
		clean = string(r[:MaxDescriptionLength])
	}
	return clean
}

// checkSliders rejects anything a saved row should not hold. Stored themes
// are never clamped silently.
func checkSliders(s themes.Sliders) error {
	if err := s.Validate(); err != nil {
		return err
	}
	if !s.InRange() {
		return fmt.Errorf("%w: %+v", ErrOutOfRange, s)
	}
	return nil
}

// CreateTheme stores a new named theme.
func CreateTheme(db *gorm.DB, name, description string, s themes.Sliders) (*models.SavedTheme, error) {
	name, err := NormalizeName(name)
	if err != nil {
		return nil, err
	}
	if err := checkSliders(s); err != nil {
		return nil, err
	}

	// Check if name already exists
	var existing models.SavedTheme
	err = db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return nil, fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check theme %s: %w", name, err)
	}

	theme := &models.SavedTheme{
		Name:        name,
		Description: SanitizeDescription(description),
	}
	theme.SetSliders(s)

	if err := db.Create(theme).Error; err != nil {
		return nil, fmt.Errorf("failed to create theme: %w", err)
	}
	return theme, nil
}

// GetThemeByName retrieves a theme by name
func GetThemeByName(db *gorm.DB, name string) (*models.SavedTheme, error) {
	var theme models.SavedTheme
	result := db.Where("name = ?", strings.ToLower(strings.TrimSpace(name))).First(&theme)
	if result.Error != nil {
		return nil, notFound(result.Error, name)
	}
	return &theme, nil
}

// GetThemeByShareID retrieves a theme by its public share ID
func GetThemeByShareID(db *gorm.DB, shareID string) (*models.SavedTheme, error) {
	var theme models.SavedTheme
	result := db.Where("share_id = ?", shareID).First(&theme)
	if result.Error != nil {
		return nil, notFound(result.Error, shareID)
	}
	return &theme, nil
}

// ListThemes returns all saved themes ordered by name
func ListThemes(db *gorm.DB) ([]models.SavedTheme, error) {
	var list []models.SavedTheme
	if err := db.Order("name ASC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("failed to list themes: %w", err)
	}
	return list, nil
}

// UpdateTheme replaces the sliders and description of an existing theme.
func UpdateTheme(db *gorm.DB, name, description string, s themes.Sliders) (*models.SavedTheme, error) {
	if err := checkSliders(s); err != nil {
		return nil, err
	}
	theme, err := GetThemeByName(db, name)
	if err != nil {
		return nil, err
	}

	theme.Description = SanitizeDescription(description)
	theme.SetSliders(s)
	if err := db.Save(theme).Error; err != nil {
		return nil, fmt.Errorf("failed to update theme: %w", err)
	}
	return theme, nil
}

// DeleteTheme removes a theme by name
func DeleteTheme(db *gorm.DB, name string) error {
	result := db.Where("name = ?", strings.ToLower(strings.TrimSpace(name))).Delete(&models.SavedTheme{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete theme: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

func notFound(err error, key string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	return fmt.Errorf("failed to load theme %s: %w", key, err)
}
