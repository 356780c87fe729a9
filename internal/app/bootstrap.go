package app

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v3"

	"jobportal/internal/config"
	"jobportal/internal/delivery/http/handler"
	"jobportal/internal/delivery/http/middleware"
	"jobportal/internal/delivery/http/routes"
	"jobportal/internal/pkg/validation"
	"jobportal/internal/seeder"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

// Bootstrap builds the container, seeds the default admin account, and
// wires the HTTP layer. The returned cleanup closes mongo and redis.
func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	if logger == nil {
		logger = log.Default()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		closeCtx, closeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer closeCancel()
		return c.Close(closeCtx)
	}

	if err := seeder.EnsureDefaultAdmin(ctx, c.Admins, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword, logger); err != nil {
		_ = cleanup()
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName: cfg.App.AppName,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c)

	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	validate := validation.New()
	authMw := middleware.NewAuthMiddleware(c.Tokens)

	registry := routes.NewRegistry(
		handler.NewHealthHandler(),
		handler.NewAuthHandler(c.Auth, validate),
		handler.NewIdentityHandler(c.Resolver),
		handler.NewCandidateHandler(c.CandidateUC, validate),
		handler.NewCompanyHandler(c.CompanyUC, validate),
		handler.NewAdminHandler(c.AdminUC, validate),
		handler.NewJobHandler(c.JobUC, validate),
		handler.NewApplicationHandler(c.AppUC, validate),
		authMw,
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
