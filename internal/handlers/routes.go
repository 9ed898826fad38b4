package handlers

import (
	"bytes"
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"alfredoptarigan/resumatch/internal/config"
	"alfredoptarigan/resumatch/internal/models"
	"alfredoptarigan/resumatch/internal/views"
)

// RegisterRoutes mounts the UI and API routes. analyzeMiddleware runs in
// front of every route that triggers a model call.
func RegisterRoutes(app *fiber.App, analyzeHandler *AnalyzeHandler, analyzeMiddleware ...fiber.Handler) {
	chain := func(handler fiber.Handler) []fiber.Handler {
		return append(append([]fiber.Handler{}, analyzeMiddleware...), handler)
	}

	app.Get("/", analyzeHandler.HandleIndex)
	app.Post("/analyze", chain(analyzeHandler.HandleAnalyzePage)...)

	api := app.Group("/api/v1")

	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	api.Post("/analyze", chain(analyzeHandler.HandleAnalyzeAPI)...)
	api.Post("/analyze/text", chain(analyzeHandler.HandleAnalyzeText)...)
}

// NewRateLimiter limits analyze requests per client IP.
func NewRateLimiter(cfg config.RateLimitConfig) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        cfg.Max,
		Expiration: cfg.Window,
		LimitReached: func(c *fiber.Ctx) error {
			return fiber.NewError(fiber.StatusTooManyRequests, "Too many analyses, please wait a moment and try again")
		},
	})
}

// ErrorHandler answers API routes with JSON and everything else with the page.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	if strings.HasPrefix(c.Path(), "/api/") {
		return c.Status(code).JSON(models.ErrorResponse{
			Error: err.Error(),
			Code:  code,
		})
	}

	data := views.PageData{}
	if code < fiber.StatusInternalServerError {
		data.Warning = err.Error()
	} else {
		data.Error = err.Error()
	}

	var buf bytes.Buffer
	if renderErr := views.RenderPage(&buf, data); renderErr != nil {
		return c.Status(code).SendString(err.Error())
	}

	c.Type("html", "utf-8")
	return c.Status(code).Send(buf.Bytes())
}
