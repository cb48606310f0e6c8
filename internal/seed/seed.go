package seed

import (
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/internal/service"
	"launchkit-backend/pkg/logger"
)

// EnsureDefaultPage creates a published home page from the saas template on a
// fresh install. Existing data is never touched.
func EnsureDefaultPage(pageService *service.PageService, pageRepo repository.PageRepository) {
	if pageService == nil || pageRepo == nil {
		return
	}

	count, err := pageRepo.Count()
	if err != nil {
		logger.Error(err, "Failed to count pages during seed", nil)
		return
	}
	if count > 0 {
		return
	}

	page, err := pageService.Create(models.CreatePageRequest{
		Title:     "Home",
		Slug:      "home",
		Excerpt:   "Welcome to your new site",
		Template:  "saas",
		Published: true,
	})
	if err != nil {
		logger.Error(err, "Failed to seed default page", nil)
		return
	}

	logger.Info("Created default page", map[string]interface{}{
		"id":   page.ID,
		"slug": page.Slug,
	})
}

// EnsureStarterModal creates one inactive example modal on a fresh install so
// the admin UI has something to show.
func EnsureStarterModal(modalService *service.ModalService, modalRepo repository.ModalRepository) {
	if modalService == nil || modalRepo == nil {
		return
	}

	count, err := modalRepo.Count()
	if err != nil {
		logger.Error(err, "Failed to count modals during seed", nil)
		return
	}
	if count > 0 {
		return
	}

	modal, err := modalService.Create(models.CreateModalRequest{
		Name:         "Welcome offer",
		TriggerType:  "time",
		TriggerValue: "5",
		Content:      "<h2>Welcome!</h2><p>Sign up for launch updates.</p>",
		Active:       false,
	})
	if err != nil {
		logger.Error(err, "Failed to seed starter modal", nil)
		return
	}

	logger.Info("Created starter modal", map[string]interface{}{
		"id":   modal.ID,
		"name": modal.Name,
	})
}
