// Package api exposes every collection as JSON under /api/<collection>.
//
// Reads are public. Mutations require an admin session. A live snapshot
// stream is served as server sent events on /api/<collection>/live.
package api

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/portfolio-admin/portfolio-admin/internal/config"
	"github.com/portfolio-admin/portfolio-admin/internal/content"
	"github.com/portfolio-admin/portfolio-admin/internal/db/models"
	"github.com/portfolio-admin/portfolio-admin/internal/mirror"
	"github.com/portfolio-admin/portfolio-admin/internal/web/handler"
	authmw "github.com/portfolio-admin/portfolio-admin/internal/web/middleware/auth"
)

const (
	// Path is the prefix of the JSON API.
	Path = handler.RootPath + "api"

	// LivePath is the snapshot stream of a collection, relative to the collection.
	LivePath = "/live"

	// SnapshotEvent is the server sent event name carrying a collection snapshot.
	SnapshotEvent = "snapshot"

	heartbeat = ": ping\n\n"
)

// heartbeatInterval is how often an idle live stream is pinged.
var heartbeatInterval = 15 * time.Second //nolint:gochecknoglobals

// Service is the JSON API handler service.
type Service struct {
	handler.Service
	cfg *config.Config
}

// Handler is the JSON API handler.
var Handler = Service{}

// Init registers the routes of every collection.
func (s *Service) Init(app *fiber.App, cfg *config.Config, deps *handler.Deps) error {
	if app == nil || cfg == nil || deps == nil || deps.Content == nil {
		return errors.New(handler.ErrNilACDFatalLogMsg)
	}

	s.cfg = cfg

	router := app.Group(Path)

	register(router, "/projects", deps.Content.Projects)
	register(router, "/blogs", deps.Content.Blogs)
	register(router, "/services", deps.Content.Services)
	register(router, "/heroImages", deps.Content.HeroImages)

	return nil
}

type resource[T models.Document[T], P models.Patch[T]] struct {
	*content.Resource[T, P]
}

func register[T models.Document[T], P models.Patch[T]](router fiber.Router, path string, res *content.Resource[T, P]) {
	r := resource[T, P]{res}

	router.Route(path, func(router fiber.Router) {
		router.Get(handler.RouterRootPath, r.list)
		router.Get(LivePath, r.live)
		router.Get("/:id", r.get)
		router.Post(handler.RouterRootPath, authmw.RequireAdminAPI, r.create)
		router.Patch("/:id", authmw.RequireAdminAPI, r.update)
		router.Delete("/:id", authmw.RequireAdminAPI, r.delete)
	})
}

func (r resource[T, P]) list(c *fiber.Ctx) error {
	records, err := r.Store.List(c.UserContext())
	if err != nil {
		return r.fail(c, "list", err)
	}

	return c.JSON(records)
}

func (r resource[T, P]) get(c *fiber.Ctx) error {
	record, err := r.Store.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return r.fail(c, "get", err)
	}

	if record == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": r.Panel.Label() + " not found"})
	}

	return c.JSON(record)
}

func (r resource[T, P]) create(c *fiber.Ctx) error {
	var fields T
	if err := c.BodyParser(&fields); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	created, err := r.Store.Create(c.UserContext(), fields)
	if err != nil {
		return r.fail(c, "create", err)
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

func (r resource[T, P]) update(c *fiber.Ctx) error {
	var patch P
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	updated, err := r.Store.Update(c.UserContext(), c.Params("id"), patch)
	if err != nil {
		return r.fail(c, "update", err)
	}

	return c.JSON(updated)
}

func (r resource[T, P]) delete(c *fiber.Ctx) error {
	deleted, err := r.Store.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return r.fail(c, "delete", err)
	}

	return c.JSON(deleted)
}

// live streams the current collection followed by every snapshot the hub
// publishes until the client goes away or the hub closes.
func (r resource[T, P]) live(c *fiber.Ctx) error {
	snapshots, cancel := r.Hub.Subscribe()

	initial, err := r.Store.List(c.UserContext())
	if err != nil {
		cancel()
		return r.fail(c, "list", err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	name, interval := r.Store.Name(), heartbeatInterval

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer cancel()

		if err := writeSnapshot(w, initial); err != nil {
			log.Debug().Err(err).Str("collection", name).Msg("live client gone")
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			var err error

			select {
			case snapshot, ok := <-snapshots:
				if !ok {
					return
				}

				err = writeSnapshot(w, snapshot)
			case <-ticker.C:
				err = writeHeartbeat(w)
			}

			if err != nil {
				log.Debug().Err(err).Str("collection", name).Msg("live client gone")
				return
			}
		}
	}))

	return nil
}

func writeSnapshot[T any](w *bufio.Writer, snapshot []T) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(w, "event: %s\ndata: %s\n\n", SnapshotEvent, data); err != nil {
		return err
	}

	return w.Flush()
}

// writeHeartbeat sends a comment line, a gone client fails the write.
func writeHeartbeat(w *bufio.Writer) error {
	if _, err := w.WriteString(heartbeat); err != nil {
		return err
	}

	return w.Flush()
}

func (r resource[T, P]) fail(c *fiber.Ctx, action string, err error) error {
	status := handler.ErrorStatus(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("collection", r.Store.Name()).Msgf("failed to %s", action)
	}

	return c.Status(status).JSON(fiber.Map{"error": mirror.Describe(err)})
}
