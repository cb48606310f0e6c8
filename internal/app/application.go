package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"launchkit-backend/internal/config"
	"launchkit-backend/internal/display"
	"launchkit-backend/internal/handlers"
	"launchkit-backend/internal/metrics"
	"launchkit-backend/internal/middleware"
	"launchkit-backend/internal/models"
	"launchkit-backend/internal/repository"
	"launchkit-backend/internal/seed"
	"launchkit-backend/internal/service"
	"launchkit-backend/pkg/cache"
	"launchkit-backend/pkg/logger"
)

type Application struct {
	cfg *config.Config

	db          *gorm.DB
	cache       *cache.Cache
	rateLimiter *middleware.RateLimitManager

	repositories repositoryContainer
	services     serviceContainer
	handlers     handlerContainer

	router *gin.Engine
	server *http.Server
}

type repositoryContainer struct {
	Page  repository.PageRepository
	Modal repository.ModalRepository
	Form  repository.FormRepository
}

type serviceContainer struct {
	Page   *service.PageService
	Modal  *service.ModalService
	Form   *service.FormService
	Render *service.RenderService
}

type handlerContainer struct {
	Page    *handlers.PageHandler
	Builder *handlers.BuilderHandler
	Modal   *handlers.ModalHandler
	Display *handlers.DisplayHandler
	Form    *handlers.FormHandler
}

func New(cfg *config.Config) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	app := &Application{cfg: cfg}

	if err := app.initDatabase(); err != nil {
		return nil, err
	}

	if err := app.runMigrations(); err != nil {
		return nil, err
	}

	if err := app.createIndexes(); err != nil {
		return nil, err
	}

	app.initCache()
	app.initRepositories()
	app.initServices()

	if cfg.EnableSeed {
		seed.EnsureDefaultPage(app.services.Page, app.repositories.Page)
		seed.EnsureStarterModal(app.services.Modal, app.repositories.Modal)
	}

	app.initHandlers()
	app.rateLimiter = middleware.NewRateLimitManager(context.Background())
	app.initRouter()

	app.server = &http.Server{
		Addr:           ":" + cfg.Port,
		Handler:        app.router,
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	return app, nil
}

func (a *Application) Run() error {
	logger.Info("Server starting", map[string]interface{}{
		"port":        a.cfg.Port,
		"environment": a.cfg.Environment,
	})

	return a.server.ListenAndServe()
}

func (a *Application) Shutdown(ctx context.Context) error {
	if a.server != nil {
		if err := a.server.Shutdown(ctx); err != nil {
			return err
		}
	}

	if a.rateLimiter != nil {
		a.rateLimiter.Shutdown()
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			logger.Error(err, "Failed to close cache connection", nil)
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			sqlDB.Close()
		}
	}

	return nil
}

func (a *Application) Router() *gin.Engine {
	return a.router
}

func (a *Application) initDatabase() error {
	logger.Info("Connecting to database", nil)

	db, err := gorm.Open(postgres.Open(a.cfg.DatabaseURL), &gorm.Config{
		Logger: logger.NewGormLogger(),
	})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	a.db = db
	return nil
}

func (a *Application) runMigrations() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Running database migrations", nil)

	if err := a.db.AutoMigrate(
		&models.LandingPage{},
		&models.Modal{},
		&models.Form{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database migration completed", nil)
	return nil
}

func (a *Application) createIndexes() error {
	if a.db == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	logger.Info("Creating database indexes", nil)

	statements := []string{
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_published ON landing_pages(published) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_slug ON landing_pages(slug) WHERE published = true",
		"CREATE INDEX IF NOT EXISTS idx_landing_pages_created_at ON landing_pages(created_at DESC)",
		"CREATE INDEX IF NOT EXISTS idx_modals_active ON modals(active) WHERE active = true",
		"CREATE INDEX IF NOT EXISTS idx_modals_display_rules ON modals USING GIN (display_rules)",
	}

	for _, stmt := range statements {
		if err := a.db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("failed to create index: %w", err)
		}
	}

	return nil
}

// initCache never aborts startup. A broken Redis degrades to a disabled cache
// and in-memory display history. ENABLE_REDIS switches the connection itself
// off; ENABLE_CACHE only gates the render cache layer on top of it.
func (a *Application) initCache() {
	if !a.cfg.EnableRedis {
		a.cache, _ = cache.NewCache("", false)
		return
	}

	c, err := cache.NewCache(a.cfg.RedisURL, true)
	if err != nil {
		logger.Error(err, "Redis unavailable, continuing without cache", map[string]interface{}{"redis_url": a.cfg.RedisURL})
		a.cache, _ = cache.NewCache("", false)
		return
	}
	a.cache = c
}

func (a *Application) initRepositories() {
	a.repositories = repositoryContainer{
		Page:  repository.NewPageRepository(a.db),
		Modal: repository.NewModalRepository(a.db),
		Form:  repository.NewFormRepository(a.db),
	}
}

func (a *Application) initServices() {
	var history display.HistoryStore
	if a.cache.Enabled() {
		history = cache.NewHistory(a.cache)
	} else {
		history = display.NewMemoryHistory()
	}

	renderCache := a.cache
	if !a.cfg.EnableCache {
		renderCache, _ = cache.NewCache("", false)
	}

	a.services = serviceContainer{
		Page:   service.NewPageService(a.repositories.Page, renderCache),
		Modal:  service.NewModalService(a.repositories.Modal, history),
		Form:   service.NewFormService(a.repositories.Form),
		Render: service.NewRenderService(a.repositories.Form, renderCache),
	}
}

func (a *Application) initHandlers() {
	a.handlers = handlerContainer{
		Page:    handlers.NewPageHandler(a.services.Page, a.services.Render),
		Builder: handlers.NewBuilderHandler(a.services.Page),
		Modal:   handlers.NewModalHandler(a.services.Modal),
		Display: handlers.NewDisplayHandler(a.services.Modal),
		Form:    handlers.NewFormHandler(a.services.Form),
	}
}

func (a *Application) initRouter() {
	if a.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(logger.GinLogger())
	if a.cfg.EnableMetrics {
		router.Use(metrics.Middleware())
	}
	router.Use(middleware.RateLimit(a.rateLimiter, a.cfg))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	if a.cfg.EnableMetrics {
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	v1 := router.Group("/api/v1")
	{
		public := v1.Group("")
		{
			public.GET("/pages/:slug", a.handlers.Page.Render)

			public.POST("/display/evaluate", a.handlers.Display.Evaluate)
			public.POST("/display/impression", a.handlers.Display.RecordImpression)
			public.GET("/display/candidates", a.handlers.Display.Candidates)
		}

		admin := v1.Group("/admin")
		admin.Use(middleware.AuthMiddleware(a.cfg.JWTSecret))
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/pages", a.handlers.Page.GetAll)
			admin.POST("/pages", a.handlers.Page.Create)
			admin.GET("/pages/templates", a.handlers.Page.GetTemplates)
			admin.GET("/pages/:id", a.handlers.Page.GetByID)
			admin.PUT("/pages/:id", a.handlers.Page.Update)
			admin.DELETE("/pages/:id", a.handlers.Page.Delete)
			admin.POST("/pages/:id/duplicate", a.handlers.Page.Duplicate)
			admin.GET("/pages/:id/document", a.handlers.Page.GetDocument)
			admin.GET("/pages/:id/preview", a.handlers.Page.Preview)

			admin.POST("/pages/:id/sections", a.handlers.Builder.AddSection)
			admin.POST("/pages/:id/sections/move", a.handlers.Builder.MoveSection)
			admin.POST("/pages/:id/sections/reorder", a.handlers.Builder.ReorderSections)
			admin.PUT("/pages/:id/sections/:sectionId", a.handlers.Builder.UpdateSection)
			admin.POST("/pages/:id/sections/:sectionId/duplicate", a.handlers.Builder.DuplicateSection)
			admin.DELETE("/pages/:id/sections/:sectionId", a.handlers.Builder.DeleteSection)
			admin.PUT("/pages/:id/styles", a.handlers.Builder.UpdateGlobalStyles)

			admin.GET("/sections/types", a.handlers.Builder.GetSectionTypes)

			admin.GET("/modals", a.handlers.Modal.GetAll)
			admin.POST("/modals", a.handlers.Modal.Create)
			admin.GET("/modals/:id", a.handlers.Modal.GetByID)
			admin.PUT("/modals/:id", a.handlers.Modal.Update)
			admin.DELETE("/modals/:id", a.handlers.Modal.Delete)

			admin.GET("/forms", a.handlers.Form.GetAll)
			admin.POST("/forms", a.handlers.Form.Create)
			admin.GET("/forms/:id", a.handlers.Form.GetByID)
			admin.DELETE("/forms/:id", a.handlers.Form.Delete)
		}
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "route not found",
			"path":  c.Request.URL.Path,
		})
	})

	a.router = router
}
