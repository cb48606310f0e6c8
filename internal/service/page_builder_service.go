package service

import (
	"launchkit-backend/internal/document"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/sections"
)

// Builder operations load the page's document, apply one pure edit from the
// sections engine and persist the result. Structural edits with an invalid
// index or id are no-ops by contract: the engine returns the list unchanged
// and the unmodified page is saved back as-is, never an error.

// AddSection appends a freshly created section to the page's document.
func (s *PageService) AddSection(pageID uint, req models.AddSectionRequest) (*models.LandingPage, error) {
	return s.mutate(pageID, func(list []models.Section) []models.Section {
		return sections.Add(list, req.Type, req.Variant)
	})
}

// MoveSection swaps a section with its neighbour; boundary moves no-op.
func (s *PageService) MoveSection(pageID uint, req models.MoveSectionRequest) (*models.LandingPage, error) {
	return s.mutate(pageID, func(list []models.Section) []models.Section {
		return sections.Move(list, req.Index, req.Direction)
	})
}

// DuplicateSection inserts a deep clone right after the source section.
func (s *PageService) DuplicateSection(pageID uint, sectionID string) (*models.LandingPage, error) {
	return s.mutate(pageID, func(list []models.Section) []models.Section {
		return sections.Duplicate(list, sectionID)
	})
}

// DeleteSection removes a section by id. The builder UI owns clearing its
// selected-section state when it pointed at the removed id.
func (s *PageService) DeleteSection(pageID uint, sectionID string) (*models.LandingPage, error) {
	return s.mutate(pageID, func(list []models.Section) []models.Section {
		return sections.Delete(list, sectionID)
	})
}

// ReorderSections applies a drag-and-drop move from one index to another.
func (s *PageService) ReorderSections(pageID uint, req models.ReorderSectionsRequest) (*models.LandingPage, error) {
	return s.mutate(pageID, func(list []models.Section) []models.Section {
		return sections.Reorder(list, req.FromIndex, req.ToIndex)
	})
}

// UpdateSection patches one section's variant, content or styles. Unlike the
// structural edits this surfaces an unknown id, and the type stays immutable.
func (s *PageService) UpdateSection(pageID uint, sectionID string, req models.UpdateSectionRequest) (*models.LandingPage, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	list, styles := document.Deserialize(page.Content)

	found := false
	for i := range list {
		if list[i].ID != sectionID {
			continue
		}
		if req.Type != nil && *req.Type != list[i].Type {
			return nil, ErrTypeImmutable
		}
		if req.Variant != nil {
			list[i].Variant = *req.Variant
		}
		if req.Content != nil {
			list[i].Content = *req.Content
		}
		if req.Styles != nil {
			list[i].Styles = *req.Styles
		}
		found = true
		break
	}

	if !found {
		return nil, ErrSectionNotFound
	}

	if err := s.saveDocument(page, list, styles); err != nil {
		return nil, err
	}
	return page, nil
}

// UpdateGlobalStyles replaces the document-wide styles without touching the
// section list.
func (s *PageService) UpdateGlobalStyles(pageID uint, styles models.GlobalStyles) (*models.LandingPage, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	list, _ := document.Deserialize(page.Content)
	if err := s.saveDocument(page, list, styles); err != nil {
		return nil, err
	}
	return page, nil
}

func (s *PageService) mutate(pageID uint, edit func([]models.Section) []models.Section) (*models.LandingPage, error) {
	page, err := s.GetByID(pageID)
	if err != nil {
		return nil, err
	}

	list, styles := document.Deserialize(page.Content)
	list = edit(list)

	if err := s.saveDocument(page, list, styles); err != nil {
		return nil, err
	}
	return page, nil
}
