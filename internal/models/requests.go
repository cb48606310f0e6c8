package models

// CreatePageRequest creates a page from scratch or from a template key.
type CreatePageRequest struct {
	Title     string `json:"title" binding:"required"`
	Slug      string `json:"slug" binding:"omitempty,slug"`
	Excerpt   string `json:"excerpt"`
	Template  string `json:"template"`
	Published bool   `json:"published"`
}

type UpdatePageRequest struct {
	Title     *string `json:"title"`
	Slug      *string `json:"slug" binding:"omitempty,slug"`
	Excerpt   *string `json:"excerpt"`
	Published *bool   `json:"published"`
}

// AddSectionRequest appends a new section of the given type to a document.
type AddSectionRequest struct {
	Type    string `json:"type" binding:"required"`
	Variant string `json:"variant"`
}

// UpdateSectionRequest patches one section. The type is immutable: changing
// it requires delete and recreate because the content shape depends on it.
type UpdateSectionRequest struct {
	Type    *string                 `json:"type,omitempty"`
	Variant *string                 `json:"variant,omitempty"`
	Content *map[string]interface{} `json:"content,omitempty"`
	Styles  *map[string]interface{} `json:"styles,omitempty"`
}

// MoveSectionRequest nudges the section at Index one step up or down.
type MoveSectionRequest struct {
	Index     int    `json:"index"`
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

// ReorderSectionsRequest is the drag-and-drop contract: the UI reports the
// source and destination indexes of the drop.
type ReorderSectionsRequest struct {
	FromIndex int `json:"from_index"`
	ToIndex   int `json:"to_index"`
}

type CreateModalRequest struct {
	Name         string        `json:"name" binding:"required"`
	TriggerType  string        `json:"trigger_type"`
	TriggerValue string        `json:"trigger_value"`
	DisplayRules *DisplayRules `json:"display_rules"`
	Styling      *ModalStyling `json:"styling"`
	Content      string        `json:"content"`
	Active       bool          `json:"active"`
}

type UpdateModalRequest struct {
	Name         *string       `json:"name"`
	TriggerType  *string       `json:"trigger_type"`
	TriggerValue *string       `json:"trigger_value"`
	DisplayRules *DisplayRules `json:"display_rules"`
	Styling      *ModalStyling `json:"styling"`
	Content      *string       `json:"content"`
	Active       *bool         `json:"active"`
}

type CreateFormRequest struct {
	Name   string  `json:"name" binding:"required"`
	Fields JSONMap `json:"fields"`
}

// EvaluateDisplayRequest carries the runtime context for one display attempt.
// Visitor and session ids come from cookies owned by the embedding script.
type EvaluateDisplayRequest struct {
	ModalID   uint   `json:"modal_id" binding:"required"`
	Path      string `json:"path" binding:"required"`
	Device    string `json:"device" binding:"required"`
	VisitorID string `json:"visitor_id" binding:"required"`
	SessionID string `json:"session_id"`

	SecondsOnPage   float64 `json:"seconds_on_page"`
	ScrollPercent   float64 `json:"scroll_percent"`
	ExitIntent      bool    `json:"exit_intent"`
	ClickedSelector string  `json:"clicked_selector"`
	Manual          bool    `json:"manual"`
}

// RecordImpressionRequest marks a modal as shown for frequency capping.
type RecordImpressionRequest struct {
	ModalID   uint   `json:"modal_id" binding:"required"`
	VisitorID string `json:"visitor_id" binding:"required"`
	SessionID string `json:"session_id"`
}
