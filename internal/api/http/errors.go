package httpapi

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-gateway/internal/weather"
)

// ErrorHandler renders every error in the {success:false, message} envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error."

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	} else {
		log.Printf("ERROR: %s %s: %v", c.Method(), c.Path(), err)
	}

	return sendError(c, code, message)
}

func sendError(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

func sendSuccess(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// weatherError maps a weather package error onto an HTTP error.
func weatherError(err error) error {
	var vErr *weather.ValidationError
	var code int
	switch {
	case errors.As(err, &vErr), errors.Is(err, weather.ErrMissingLocation):
		code = fiber.StatusBadRequest
	case errors.Is(err, weather.ErrAPIKeyMissing):
		code = fiber.StatusInternalServerError
	case errors.Is(err, weather.ErrMissingCurrent), errors.Is(err, weather.ErrFetchFailed):
		code = fiber.StatusBadGateway
	default:
		return err
	}
	return fiber.NewError(code, weather.Message(err))
}
