package rayid

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// HeaderName is the header used to propagate the RayID.
const HeaderName = "X-Ray-Id"

// LocalsKey is the Fiber locals key under which the RayID is stored.
const LocalsKey = "ray_id"

// New returns a Fiber middleware that assigns a RayID to every request.
// An incoming RayID header is honored so upstream proxies can correlate.
func New() fiber.Handler {
	return func(c *fiber.Ctx) error {
		rid := c.Get(HeaderName)
		if rid == "" {
			rid = uuid.NewString()
		}

		c.Locals(LocalsKey, rid)
		c.Set(HeaderName, rid)

		return c.Next()
	}
}
