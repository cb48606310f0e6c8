package handlers

import (
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// DisplayHandler serves the public display endpoints the embed script calls.
// These are unauthenticated; visitor and session ids come from the caller's
// cookies.
type DisplayHandler struct {
	modalService *service.ModalService
}

func NewDisplayHandler(modalService *service.ModalService) *DisplayHandler {
	return &DisplayHandler{modalService: modalService}
}

// Evaluate decides whether one modal should display for the given visit
// context.
// POST /api/display/evaluate
func (h *DisplayHandler) Evaluate(c *gin.Context) {
	var req models.EvaluateDisplayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	decision, err := h.modalService.Evaluate(req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "modal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"decision": decision})
}

// RecordImpression marks a modal as shown so frequency caps apply to later
// visits.
// POST /api/display/impression
func (h *DisplayHandler) RecordImpression(c *gin.Context) {
	var req models.RecordImpressionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.modalService.RecordImpression(req); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "impression recorded"})
}

// Candidates lists the active modals whose page and device rules match the
// current visit, with positions resolved for the device. Trigger and
// frequency gates still run client side through Evaluate.
// GET /api/display/candidates?path=/pricing&device=mobile
func (h *DisplayHandler) Candidates(c *gin.Context) {
	path := c.Query("path")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "path is required"})
		return
	}
	device := c.DefaultQuery("device", "desktop")

	candidates, err := h.modalService.Candidates(path, device)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"candidates": candidates})
}
