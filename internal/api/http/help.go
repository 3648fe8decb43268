package httpapi

import "github.com/gofiber/fiber/v2"

var helpTopics = fiber.Map{
	"weather":          `You can use the "current", "today", "three-day" and "seven-day" endpoints to get up-to-date weather information.`,
	"units":            `Default units are Celsius for temperature and miles for distance. These can be changed with the "set-units" endpoint. Appropriate values are "c" or "f" for "temp", and "mph" or "kph" for "speed".`,
	"location":         `Default location is "Manchester, UK". This can be changed with the "set-location" endpoint using the "location" parameter.`,
	"raw-data":         `Raw data can be requested by sending a value for raw with the GET request.`,
	"dynamic-settings": `Units and location can be changed for a particular call by setting values on the GET request. These will not be saved for future use.`,
}

func help(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"help": helpTopics})
}

func brew(c *fiber.Ctx) error {
	return sendError(c, fiber.StatusTeapot, "Coffee brewing unavailable at this time. Would you like some tea instead?")
}
