package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// DocumentVersion tags every serialized document blob written by this build.
const DocumentVersion = "2.0"

// Section is one typed, styled content block of a document. Its id is stable
// across reorders; order is the position in the owning slice, never stored on
// the section itself.
type Section struct {
	ID      string                 `json:"id"`
	Type    string                 `json:"type"`
	Variant string                 `json:"variant,omitempty"`
	Content map[string]interface{} `json:"content"`
	Styles  map[string]interface{} `json:"styles"`
}

// GlobalStyles holds the document-wide presentation settings.
type GlobalStyles struct {
	PrimaryColor    string `json:"primaryColor"`
	SecondaryColor  string `json:"secondaryColor"`
	BackgroundColor string `json:"backgroundColor"`
	TextColor       string `json:"textColor"`
	FontFamily      string `json:"fontFamily"`
	ContainerWidth  string `json:"containerWidth"`
}

// Document is the deserialized form of a page or modal content blob.
type Document struct {
	Sections     []Section    `json:"sections"`
	GlobalStyles GlobalStyles `json:"globalStyles"`
	Version      string       `json:"version"`
}

// LandingPage owns one serialized document in its Content column. The blob is
// opaque to the database; internal/document owns its shape.
type LandingPage struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Title       string     `gorm:"not null" json:"title"`
	Slug        string     `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt     string     `json:"excerpt"`
	Published   bool       `gorm:"default:false" json:"published"`
	PublishAt   *time.Time `gorm:"index" json:"publish_at,omitempty"`
	PublishedAt *time.Time `gorm:"index" json:"published_at,omitempty"`
	Content     string     `gorm:"type:text" json:"content"`
}

// Modal is an embeddable overlay with its own section document plus the
// display rules deciding where and when it appears.
type Modal struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name         string       `gorm:"not null" json:"name"`
	TriggerType  string       `gorm:"type:varchar(16);default:'manual'" json:"trigger_type"`
	TriggerValue string       `json:"trigger_value"`
	DisplayRules DisplayRules `gorm:"type:jsonb" json:"display_rules"`
	Styling      ModalStyling `gorm:"type:jsonb" json:"styling"`
	Content      string       `gorm:"type:text" json:"content"`
	Active       bool         `gorm:"default:false" json:"active"`
}

// Form is the widget-registry entry shortcodes resolve against. Submission
// handling and field rendering belong to the form collaborator.
type Form struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Name   string  `gorm:"not null" json:"name"`
	Fields JSONMap `gorm:"type:jsonb" json:"fields,omitempty"`
}

// DisplayRules is the native JSON column configuring modal placement.
type DisplayRules struct {
	PageTargeting string   `json:"pageTargeting"`
	Pages         []string `json:"pages"`
	Devices       []string `json:"devices"`
	Frequency     string   `json:"frequency"`
}

func (r *DisplayRules) Scan(value interface{}) error {
	if value == nil {
		*r = DisplayRules{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan DisplayRules")
	}

	return json.Unmarshal(bytes, r)
}

func (r DisplayRules) Value() (driver.Value, error) {
	return json.Marshal(r)
}

// ModalStyling is the native JSON column holding modal presentation,
// including the position preset or custom pixel offsets.
type ModalStyling struct {
	Position        string          `json:"position"`
	Width           string          `json:"width,omitempty"`
	BackgroundColor string          `json:"backgroundColor,omitempty"`
	Overlay         bool            `json:"overlay,omitempty"`
	CustomPosition  *CustomPosition `json:"customPosition,omitempty"`
}

func (s *ModalStyling) Scan(value interface{}) error {
	if value == nil {
		*s = ModalStyling{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan ModalStyling")
	}

	return json.Unmarshal(bytes, s)
}

func (s ModalStyling) Value() (driver.Value, error) {
	return json.Marshal(s)
}

// CustomPosition holds per-breakpoint pixel offsets. Absent pointers inherit
// from the default tier per axis; unset everywhere resolves to "auto".
type CustomPosition struct {
	Top    *int `json:"top,omitempty"`
	Right  *int `json:"right,omitempty"`
	Bottom *int `json:"bottom,omitempty"`
	Left   *int `json:"left,omitempty"`

	TopTablet    *int `json:"topTablet,omitempty"`
	RightTablet  *int `json:"rightTablet,omitempty"`
	BottomTablet *int `json:"bottomTablet,omitempty"`
	LeftTablet   *int `json:"leftTablet,omitempty"`

	TopMobile    *int `json:"topMobile,omitempty"`
	RightMobile  *int `json:"rightMobile,omitempty"`
	BottomMobile *int `json:"bottomMobile,omitempty"`
	LeftMobile   *int `json:"leftMobile,omitempty"`
}

type JSONMap map[string]interface{}

func (m JSONMap) Value() (driver.Value, error) {
	if len(m) == 0 {
		return nil, nil
	}
	return json.Marshal(m)
}

func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = JSONMap{}
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("failed to scan JSONMap")
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(bytes, &decoded); err != nil {
		return err
	}

	*m = decoded
	return nil
}
