package handlers

import (
	"launchkit-backend/internal/constants"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// BuilderHandler exposes the section editing operations the page builder UI
// drives. Every mutation returns the updated page so the client can replace
// its working copy in one round trip.
type BuilderHandler struct {
	pageService *service.PageService
}

func NewBuilderHandler(pageService *service.PageService) *BuilderHandler {
	return &BuilderHandler{pageService: pageService}
}

// AddSection appends a new section of the requested type.
// POST /api/admin/pages/:id/sections
func (h *BuilderHandler) AddSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.AddSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.AddSection(id, req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// UpdateSection patches a section's variant, content, or styles. The section
// type is fixed at creation.
// PUT /api/admin/pages/:id/sections/:sectionId
func (h *BuilderHandler) UpdateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.UpdateSection(id, c.Param("sectionId"), req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// MoveSection shifts the section at an index one step up or down.
// POST /api/admin/pages/:id/sections/move
func (h *BuilderHandler) MoveSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.MoveSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.MoveSection(id, req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// ReorderSections moves a section from one index to another.
// POST /api/admin/pages/:id/sections/reorder
func (h *BuilderHandler) ReorderSections(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.ReorderSectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.ReorderSections(id, req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// DuplicateSection inserts a copy of the section directly after the original.
// POST /api/admin/pages/:id/sections/:sectionId/duplicate
func (h *BuilderHandler) DuplicateSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.DuplicateSection(id, c.Param("sectionId"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// DeleteSection removes a section by id.
// DELETE /api/admin/pages/:id/sections/:sectionId
func (h *BuilderHandler) DeleteSection(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.DeleteSection(id, c.Param("sectionId"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// UpdateGlobalStyles replaces the page level style settings.
// PUT /api/admin/pages/:id/styles
func (h *BuilderHandler) UpdateGlobalStyles(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var styles models.GlobalStyles
	if err := c.ShouldBindJSON(&styles); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.UpdateGlobalStyles(id, styles)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

// GetSectionTypes lists the section types and variants the builder offers.
// GET /api/admin/sections/types
func (h *BuilderHandler) GetSectionTypes(c *gin.Context) {
	types := make([]gin.H, 0)
	for _, t := range constants.SectionTypes() {
		types = append(types, gin.H{
			"type":     t,
			"variants": constants.SectionVariants(t),
		})
	}
	c.JSON(http.StatusOK, gin.H{"types": types})
}
