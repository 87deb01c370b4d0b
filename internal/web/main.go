// Package web assembles the fiber application serving the portfolio, its
// admin area and the JSON API.
package web

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/portfolio-admin/portfolio-admin/internal/auth"
	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/dataurl"
	fiberlog "github.com/portfolio-admin/portfolio-admin/internal/logger/adapter/fiber"
	"github.com/portfolio-admin/portfolio-admin/internal/mailer"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/admin/panel"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/admin/settings/email"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/api"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/contact"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/dashboard"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/login"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/logout"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler/site"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
)

const (
	// CheckAlivePath answers 200 while the service accepts traffic.
	CheckAlivePath = "/checkalive"

	// MetricsPath exposes the prometheus metrics.
	MetricsPath = "/metrics"
)

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	content      *content.Content
	stopContent  context.CancelFunc
	contentDone  sync.WaitGroup
}

// Start loads every admin panel, starts following the live hubs and
// serves until the app is shut down.
func (s *Service) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	s.stopContent = cancel

	s.content.Refresh(ctx)

	s.contentDone.Add(1)

	go func() {
		defer s.contentDone.Done()
		s.content.Run(ctx)
	}()

	s.alive.Store(true)

	addr := net.JoinHostPort(s.cfg.Webserver.Address, strconv.Itoa(s.cfg.Webserver.Port))
	log.Info().Str("addr", addr).Msg("starting http server")

	if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("fiber listen error: %w", err)
	}

	return nil
}

// WaitShutdown waits for SIGINT or SIGTERM and shuts the service down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown stops serving. Unless the service runs in dev mode /checkalive
// fails for the configured time first, so load balancers stop routing to it.
func (s *Service) Shutdown() {
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	log.Info().Msg("stopping http server ...")

	// open live streams end with their hub
	s.content.Close()

	if s.stopContent != nil {
		s.stopContent()
	}

	s.contentDone.Wait()

	if err := s.App.Shutdown(); err != nil {
		log.Error().Err(err).Msg("")
	}

	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether /checkalive answers 200.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

func newTemplateEngine(cfg *config.Config) *html.Engine {
	templateEngine := html.NewFileSystem(subFS(embeddedTemplates, "templates"), ".gohtml")

	// in debug mode, use local filesystem for templates
	if cfg.DevMode {
		templateEngine = html.New("./internal/web/templates", ".gohtml")
		templateEngine.Reload(true)

		log.Warn().Msg("debug mode enabled: using local filesystem for templates")
	}

	templateEngine.AddFunc("isDataURL", dataurl.Is)
	// image fields are only written by a logged in admin
	templateEngine.AddFunc("safeURL", func(s string) template.URL {
		return template.URL(s) //nolint:gosec
	})
	templateEngine.AddFunc("date", func(ms int64) string {
		return time.UnixMilli(ms).UTC().Format("January 2, 2006")
	})
	templateEngine.AddFunc("add", func(a, b int) int {
		return a + b
	})

	return templateEngine
}

// New creates the web service and registers every handler.
func New(cfg *config.Config, db *gorm.DB) (*Service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if db == nil {
		return nil, errors.New("db cannot be nil")
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize:        8192,
			AppName:               cfg.Title,
			CaseSensitive:         true,
			Prefork:               false,
			Immutable:             true,
			PassLocalsToViews:     true,
			BodyLimit:             cfg.Webserver.BodyLimit,
			DisableStartupMessage: !cfg.DevMode,
			Views:                 newTemplateEngine(cfg),
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlog.New(fiberlog.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	// serve embedded static files
	app.Use("/static",
		filesystem.New(
			filesystem.Config{
				Root:   subFS(embeddedStaticFiles, "static"),
				Browse: cfg.Webserver.BrowseStatic,
			},
		),
	)

	service := &Service{
		cfg:          cfg,
		App:          app,
		fastShutDown: cfg.DevMode,
		content:      content.New(db),
	}

	app.Get(CheckAlivePath, func(c *fiber.Ctx) error {
		if !service.alive.Load() {
			return c.SendStatus(fiber.StatusServiceUnavailable)
		}

		return c.SendString("OK")
	})
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	// session of the logged in admin, if any
	app.Use(authmw.Middleware)

	deps := &handler.Deps{
		DB:      db,
		Content: service.content,
		Mailer:  mailer.New(cfg.Email, db),
		Users:   auth.NewLocalProvider(db),
	}

	handlers := []handler.Service{
		&login.Handler,
		&logout.Handler,
		&dashboard.Handler,
		&panel.Handler,
		&email.Handler,
		&api.Handler,
		&contact.Handler,
		&site.Handler,
	}

	for _, h := range handlers {
		if err := h.Init(app, cfg, deps); err != nil {
			return nil, fmt.Errorf("init handler %T: %w", h, err)
		}
	}

	app.Get(handler.AdminPath, func(c *fiber.Ctx) error {
		return c.Redirect(dashboard.Path)
	})

	return service, nil
}
