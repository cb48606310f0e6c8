package handlers

import (
	"errors"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PageHandler struct {
	pageService   *service.PageService
	renderService *service.RenderService
}

func NewPageHandler(pageService *service.PageService, renderService *service.RenderService) *PageHandler {
	return &PageHandler{
		pageService:   pageService,
		renderService: renderService,
	}
}

// statusFromError maps service sentinel errors onto HTTP status codes.
// Anything unrecognised is a server fault.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrSectionNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrSlugTaken):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidPagePattern), errors.Is(err, service.ErrTypeImmutable):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func pageID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page id"})
		return 0, false
	}
	return uint(id), true
}

func (h *PageHandler) Create(c *gin.Context) {
	var req models.CreatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.Create(req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

func (h *PageHandler) GetAll(c *gin.Context) {
	pages, err := h.pageService.GetAllAdmin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"pages": pages})
}

func (h *PageHandler) GetByID(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.GetByID(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) Update(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	var req models.UpdatePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	page, err := h.pageService.Update(id, req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": page})
}

func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	if err := h.pageService.Delete(id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "page deleted successfully"})
}

func (h *PageHandler) Duplicate(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.Duplicate(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"page": page})
}

// GetTemplates lists the starter templates the builder can instantiate.
// GET /api/admin/pages/templates
func (h *PageHandler) GetTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"templates": h.pageService.Templates()})
}

// GetDocument returns the editable section document for the builder UI.
// GET /api/admin/pages/:id/document
func (h *PageHandler) GetDocument(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, doc, err := h.pageService.Document(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"page":     page,
		"document": doc,
	})
}

// Render serves the public render plan for a published page by slug.
// GET /api/pages/:slug
func (h *PageHandler) Render(c *gin.Context) {
	page, err := h.pageService.GetBySlug(c.Param("slug"))
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": h.renderService.RenderPage(page)})
}

// Preview renders a page regardless of publish state, for the admin preview
// pane.
// GET /api/admin/pages/:id/preview
func (h *PageHandler) Preview(c *gin.Context) {
	id, ok := pageID(c)
	if !ok {
		return
	}

	page, err := h.pageService.GetByID(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "page not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"page": h.renderService.RenderPage(page)})
}
