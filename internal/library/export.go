package library

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/thatcatcamp/themebuilder/internal/models"
	"github.com/thatcatcamp/themebuilder/internal/themes"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

// ArchiveVersion is written into every export.
const ArchiveVersion = 1

// Format selects the archive encoding.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// ParseFormat accepts "yaml", "yml" or "json".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "yaml", "yml", "":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	}
	return "", fmt.Errorf("unknown archive format %q", s)
}

// Record is the portable form of a saved theme.
type Record struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	ShareID     string         `json:"share_id,omitempty" yaml:"share_id,omitempty"`
	Sliders     themes.Sliders `json:"sliders" yaml:"sliders"`
}

// Archive is the document written by Export and read by Import.
type Archive struct {
	Version int      `json:"version" yaml:"version"`
	Themes  []Record `json:"themes" yaml:"themes"`
}

// ImportResult counts what an import changed.
type ImportResult struct {
	Created int
	Updated int
}

// Export writes every saved theme to w.
func Export(db *gorm.DB, w io.Writer, format Format) error {
	list, err := ListThemes(db)
	if err != nil {
		return err
	}

	archive := Archive{Version: ArchiveVersion, Themes: make([]Record, 0, len(list))}
	for i := range list {
		archive.Themes = append(archive.Themes, Record{
			Name:        list[i].Name,
			Description: list[i].Description,
			ShareID:     list[i].ShareID,
			Sliders:     list[i].Sliders(),
		})
	}

	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(archive)
	default:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(archive); err != nil {
			return fmt.Errorf("failed to encode archive: %w", err)
		}
		return enc.Close()
	}
}

// Import upserts themes by name inside one transaction. Any invalid record
// aborts the whole import.
func Import(db *gorm.DB, r io.Reader, format Format) (ImportResult, error) {
	var archive Archive
	var err error
	switch format {
	case FormatJSON:
		err = json.NewDecoder(r).Decode(&archive)
	default:
		err = yaml.NewDecoder(r).Decode(&archive)
	}
	if err != nil {
		return ImportResult{}, fmt.Errorf("failed to decode archive: %w", err)
	}
	if archive.Version != ArchiveVersion {
		return ImportResult{}, fmt.Errorf("unsupported archive version %d", archive.Version)
	}

	var result ImportResult
	err = db.Transaction(func(tx *gorm.DB) error {
		for _, rec := range archive.Themes {
			created, err := upsert(tx, rec)
			if err != nil {
				return fmt.Errorf("theme %q: %w", rec.Name, err)
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return ImportResult{}, err
	}
	return result, nil
}

func upsert(tx *gorm.DB, rec Record) (bool, error) {
	name, err := NormalizeName(rec.Name)
	if err != nil {
		return false, err
	}
	if err := checkSliders(rec.Sliders); err != nil {
		return false, err
	}

	var existing models.SavedTheme
	err = tx.Where("name = ?", name).First(&existing).Error
	switch {
	case err == nil:
		existing.Description = SanitizeDescription(rec.Description)
		existing.SetSliders(rec.Sliders)
		return false, tx.Save(&existing).Error
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return false, fmt.Errorf("failed to look up theme: %w", err)
	}

	theme := &models.SavedTheme{
		Name:        name,
		Description: SanitizeDescription(rec.Description),
		ShareID:     rec.ShareID,
	}
	theme.SetSliders(rec.Sliders)

	// Keep the share link only if no other theme already owns it.
	if theme.ShareID != "" {
		var count int64
		if err := tx.Model(&models.SavedTheme{}).Where("share_id = ?", theme.ShareID).Count(&count).Error; err != nil {
			return false, fmt.Errorf("failed to check share id: %w", err)
		}
		if count > 0 {
			theme.ShareID = ""
		}
	}
	return true, tx.Create(theme).Error
}
