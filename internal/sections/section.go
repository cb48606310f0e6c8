package sections

import (
	"encoding/json"

	"github.com/google/uuid"

	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
)

// New creates a section of the given type with every content and style field
// a renderer reads present. Values are kept in JSON-native shapes (strings,
// []interface{}, map[string]interface{}) so a document survives a
// serialize/deserialize round trip structurally unchanged.
func New(sectionType, variant string) models.Section {
	sectionType = constants.NormaliseSectionType(sectionType)
	return models.Section{
		ID:      uuid.New().String(),
		Type:    sectionType,
		Variant: constants.NormaliseSectionVariant(sectionType, variant),
		Content: defaultContent(sectionType),
		Styles:  defaultStyles(sectionType),
	}
}

// Clone returns a deep copy of the section with a freshly generated id.
func Clone(section models.Section) models.Section {
	clone := section
	clone.ID = uuid.New().String()
	clone.Content = deepCopyMap(section.Content)
	clone.Styles = deepCopyMap(section.Styles)
	return clone
}

// deepCopyMap copies through JSON so nested slices and maps are not shared.
// The input already holds JSON-native values, so the round trip is lossless.
func deepCopyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return map[string]interface{}{}
	}

	raw, err := json.Marshal(in)
	if err != nil {
		return map[string]interface{}{}
	}

	out := make(map[string]interface{}, len(in))
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
