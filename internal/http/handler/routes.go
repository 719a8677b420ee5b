package handler

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	_ "salespage/docs"
	"salespage/internal/auth"
	"salespage/internal/http/middleware"
	"salespage/internal/service"
	"salespage/internal/storage"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	DB       *sql.DB
	Pages    service.PageService
	Images   service.ImageService
	Admin    service.AdminService
	Stats    service.StatsService
	Verifier auth.Verifier

	// Gatherer backs /metrics; nil leaves the endpoint out.
	Gatherer prometheus.Gatherer
	// RateLimiter guards the public routes; nil disables limiting.
	RateLimiter *middleware.RateLimiter
	Logger      *zap.Logger
}

// RegisterRoutes attaches HTTP routes to the provided Fiber app.
// The public GET /:slug route is registered last so every fixed path wins over it.
func RegisterRoutes(app *fiber.App, d Deps) {
	log := d.Logger
	if log == nil {
		log = zap.NewNop()
	}
	limit := func(c *fiber.Ctx) error { return c.Next() }
	if d.RateLimiter != nil {
		limit = d.RateLimiter.Handler()
	}
	requireAuth := middleware.Auth(d.Verifier)

	app.Get("/health", HealthCheck(d.DB))
	app.Get("/healthz", LivenessProbe())
	if d.Gatherer != nil {
		app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})))
	}
	app.Get(storage.MediaPath+"*", limit, ServeMedia(d.Images))
	// Host and schemes stay empty in the doc so the UI targets whatever origin served it.
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api", middleware.NoStore())
	api.Get("/stats/customers", limit, GetCustomersCount(d.Stats))
	api.Get("/sections", SectionCatalog())
	api.Get("/me", requireAuth, Me(d.Admin))
	api.Post("/images", requireAuth, UploadImage(d.Images))

	slugs := api.Group("/slugs", requireAuth)
	slugs.Get("/suggest", SuggestSlug(d.Pages))
	slugs.Get("/check", CheckSlug(d.Pages))

	pages := api.Group("/pages", requireAuth)
	pages.Get("/", ListMyPages(d.Pages))
	pages.Post("/", CreatePage(d.Pages))
	pages.Get("/defaults", PageDefaults(d.Pages))
	pages.Get("/:id", GetPage(d.Pages))
	pages.Put("/:id", UpdatePage(d.Pages))
	pages.Delete("/:id", DeletePage(d.Pages))
	pages.Patch("/:id/sections", UpdateSections(d.Pages))

	admin := api.Group("/admin", requireAuth, middleware.RequireAdmin(d.Admin.IsAdmin, log))
	admin.Get("/dashboard", AdminDashboard(d.Admin))
	admin.Put("/pages/:id/publish", SetPublished(d.Admin))
	admin.Delete("/pages/:id", AdminDeletePage(d.Admin))
	admin.Put("/stats/customers", SetCustomersCount(d.Stats))

	app.Get("/:slug", limit, PublicPage(d.Pages))
}
