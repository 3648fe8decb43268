package httpapi

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"

	"github.com/i474232898/weather-gateway/internal/weather"
)

// Options configures RegisterRoutes.
type Options struct {
	// Sessions stores caller preferences between requests.
	Sessions *session.Store
	// APITokens accepted as bearer tokens; empty disables auth.
	APITokens []string
}

type handler struct {
	service  *weather.Service
	sessions *session.Store
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, service *weather.Service, opts Options) {
	sessions := opts.Sessions
	if sessions == nil {
		sessions = session.New()
	}
	h := &handler{service: service, sessions: sessions}
	auth := newAuth(opts.APITokens)

	api := app.Group("/api")

	api.Get("/weather/help", help)
	api.Get("/help/weather", help)
	api.Post("/coffee/brew", brew)

	api.Get("/weather/current", auth, h.weather(weather.DaysCurrent))
	api.Get("/weather/today", auth, h.weather(weather.DaysToday))
	api.Get("/weather/three-day", auth, h.weather(weather.DaysThree))
	api.Get("/weather/seven-day", auth, h.weather(weather.DaysSeven))

	api.Post("/weather/set-location", auth, h.setLocation)
	api.Post("/weather/set-units", auth, h.setUnits)
}

func (h *handler) session(c *fiber.Ctx) (*sessionValues, error) {
	sess, err := h.sessions.Get(c)
	if err != nil {
		log.Printf("ERROR: load session: %v", err)
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Could not load session.")
	}
	return &sessionValues{sess: sess}, nil
}

func (h *handler) weather(days int) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := bindParams(c)
		if err != nil {
			return err
		}

		sess, err := h.session(c)
		if err != nil {
			return err
		}

		resp, err := h.service.Weather(c.UserContext(), weather.Request{
			Params:  params,
			Session: sess,
			Days:    days,
		})
		if err != nil {
			return weatherError(err)
		}

		return c.JSON(resp)
	}
}

func (h *handler) setLocation(c *fiber.Ctx) error {
	params, err := bindParams(c)
	if err != nil {
		return err
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := h.service.SetLocation(sess, params.Location); err != nil {
		return weatherError(err)
	}
	if err := sess.save(); err != nil {
		return err
	}

	return sendSuccess(c, "Location set: "+params.Location)
}

func (h *handler) setUnits(c *fiber.Ctx) error {
	params, err := bindParams(c)
	if err != nil {
		return err
	}

	sess, err := h.session(c)
	if err != nil {
		return err
	}

	if err := h.service.SetUnits(sess, params.Temp, params.Speed); err != nil {
		return weatherError(err)
	}
	if err := sess.save(); err != nil {
		return err
	}

	return sendSuccess(c, "Units set")
}
