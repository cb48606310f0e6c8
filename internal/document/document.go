package document

import (
	"encoding/json"
	"strings"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/sections"
)

// The serializer owns the persisted blob format: a single JSON object with
// the section list, the global styles and a version tag. The blob is opaque
// to the storage layer.

// DefaultGlobalStyles returns the styles a new document starts with.
func DefaultGlobalStyles() models.GlobalStyles {
	return models.GlobalStyles{
		PrimaryColor:    "#2563eb",
		SecondaryColor:  "#7c3aed",
		BackgroundColor: "#ffffff",
		TextColor:       "#111827",
		FontFamily:      "Inter, sans-serif",
		ContainerWidth:  "1200px",
	}
}

// Serialize converts the in-memory section list and global styles into the
// persisted blob.
func Serialize(list []models.Section, styles models.GlobalStyles) (string, error) {
	if list == nil {
		list = []models.Section{}
	}

	raw, err := json.Marshal(models.Document{
		Sections:     list,
		GlobalStyles: styles,
		Version:      models.DocumentVersion,
	})
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// Deserialize parses a persisted blob back into sections and styles. Content
// written before the structured format existed is plain HTML; it is wrapped
// as a single synthetic html section rather than treated as an error, which
// is the documented migration path for legacy pages.
func Deserialize(raw string) ([]models.Section, models.GlobalStyles) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return []models.Section{}, DefaultGlobalStyles()
	}

	// GlobalStyles is a pointer here so a present-but-empty styles object
	// survives the round trip; only a missing key falls back to defaults.
	var doc struct {
		Sections     []models.Section     `json:"sections"`
		GlobalStyles *models.GlobalStyles `json:"globalStyles"`
	}
	if err := json.Unmarshal([]byte(trimmed), &doc); err != nil || !strings.HasPrefix(trimmed, "{") {
		return wrapLegacyContent(raw), DefaultGlobalStyles()
	}

	if doc.Sections == nil {
		doc.Sections = []models.Section{}
	}
	if doc.GlobalStyles == nil {
		return doc.Sections, DefaultGlobalStyles()
	}
	return doc.Sections, *doc.GlobalStyles
}

func wrapLegacyContent(raw string) []models.Section {
	section := sections.New(constants.SectionTypeHTML, "")
	section.Content["html"] = raw
	return []models.Section{section}
}
