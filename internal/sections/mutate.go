package sections

import "launchkit-backend/internal/models"

// Structural edits over an ordered section list. Every operation returns a
// new slice and leaves the input untouched; an out-of-range index or unknown
// id is a no-op returning the input unchanged. Disabling invalid actions is
// the caller's job, so nothing here ever panics or errors.

const (
	DirectionUp   = "up"
	DirectionDown = "down"
)

// Add appends a freshly created section of the given type.
func Add(list []models.Section, sectionType, variant string) []models.Section {
	out := make([]models.Section, 0, len(list)+1)
	out = append(out, list...)
	return append(out, New(sectionType, variant))
}

// Move swaps the section at index with its neighbour. Moving the first
// section up or the last one down returns the list unchanged.
func Move(list []models.Section, index int, direction string) []models.Section {
	if index < 0 || index >= len(list) {
		return list
	}

	target := index
	switch direction {
	case DirectionUp:
		target = index - 1
	case DirectionDown:
		target = index + 1
	default:
		return list
	}

	if target < 0 || target >= len(list) {
		return list
	}

	out := make([]models.Section, len(list))
	copy(out, list)
	out[index], out[target] = out[target], out[index]
	return out
}

// Duplicate inserts a deep clone immediately after the source section.
func Duplicate(list []models.Section, id string) []models.Section {
	index := indexOf(list, id)
	if index < 0 {
		return list
	}

	clone := Clone(list[index])

	out := make([]models.Section, 0, len(list)+1)
	out = append(out, list[:index+1]...)
	out = append(out, clone)
	out = append(out, list[index+1:]...)
	return out
}

// Delete removes the section with the given id. Callers holding a selected
// section reference must clear it themselves when it pointed at the removed
// id.
func Delete(list []models.Section, id string) []models.Section {
	index := indexOf(list, id)
	if index < 0 {
		return list
	}

	out := make([]models.Section, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// Reorder moves the section at from to position to, shifting the rest. It is
// the drag-and-drop primitive: remove then reinsert, identity when from == to.
func Reorder(list []models.Section, from, to int) []models.Section {
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) {
		return list
	}
	if from == to {
		return list
	}

	out := make([]models.Section, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)

	moved := list[from]
	out = append(out[:to], append([]models.Section{moved}, out[to:]...)...)
	return out
}

func indexOf(list []models.Section, id string) int {
	for i := range list {
		if list[i].ID == id {
			return i
		}
	}
	return -1
}
