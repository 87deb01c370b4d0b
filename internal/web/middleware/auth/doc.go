// Package auth provides the fiber middlewares guarding the admin area.
//
// Middleware runs for every request and exposes the logged in admin through
// fiber.Locals. RequireAdmin protects server rendered pages, RequireAdminAPI
// protects mutating JSON endpoints.
package auth
