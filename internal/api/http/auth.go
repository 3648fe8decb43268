package httpapi

import (
	"crypto/sha256"
	"crypto/subtle"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/keyauth"
)

// newAuth returns a bearer-token guard. With no tokens it lets every
// request through.
func newAuth(tokens []string) fiber.Handler {
	if len(tokens) == 0 {
		log.Println("INFO: no API tokens configured; weather endpoints are unauthenticated")
		return func(c *fiber.Ctx) error { return c.Next() }
	}

	hashes := make([][32]byte, 0, len(tokens))
	for _, t := range tokens {
		if t != "" {
			hashes = append(hashes, sha256.Sum256([]byte(t)))
		}
	}

	return keyauth.New(keyauth.Config{
		KeyLookup:  "header:" + fiber.HeaderAuthorization,
		AuthScheme: "Bearer",
		Validator: func(_ *fiber.Ctx, key string) (bool, error) {
			got := sha256.Sum256([]byte(key))
			for _, want := range hashes {
				if subtle.ConstantTimeCompare(got[:], want[:]) == 1 {
					return true, nil
				}
			}
			return false, keyauth.ErrMissingOrMalformedAPIKey
		},
		ErrorHandler: func(c *fiber.Ctx, _ error) error {
			return sendError(c, fiber.StatusUnauthorized, "Authentication required.")
		},
	})
}
