package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
)

const (
	SessionHeader     = "X-Session-ID"
	SessionQueryParam = "session_id"
	SessionLocalKey   = "session_id"
)

// SessionID returns the caller's session identity from the header, falling back to the
// query string for browsers that cannot set headers on a WebSocket handshake.
func SessionID(c *fiber.Ctx) string {
	if sid := c.Get(SessionHeader); sid != "" {
		return utils.CopyString(sid)
	}
	return utils.CopyString(c.Query(SessionQueryParam))
}
