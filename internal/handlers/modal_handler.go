package handlers

import (
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/service"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ModalHandler struct {
	modalService *service.ModalService
}

func NewModalHandler(modalService *service.ModalService) *ModalHandler {
	return &ModalHandler{modalService: modalService}
}

func modalID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid modal id"})
		return 0, false
	}
	return uint(id), true
}

func (h *ModalHandler) Create(c *gin.Context) {
	var req models.CreateModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modal, err := h.modalService.Create(req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"modal": modal})
}

func (h *ModalHandler) GetAll(c *gin.Context) {
	modals, err := h.modalService.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modals": modals})
}

func (h *ModalHandler) GetByID(c *gin.Context) {
	id, ok := modalID(c)
	if !ok {
		return
	}

	modal, err := h.modalService.GetByID(id)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": "modal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modal": modal})
}

func (h *ModalHandler) Update(c *gin.Context) {
	id, ok := modalID(c)
	if !ok {
		return
	}

	var req models.UpdateModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	modal, err := h.modalService.Update(id, req)
	if err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"modal": modal})
}

func (h *ModalHandler) Delete(c *gin.Context) {
	id, ok := modalID(c)
	if !ok {
		return
	}

	if err := h.modalService.Delete(id); err != nil {
		c.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "modal deleted successfully"})
}
