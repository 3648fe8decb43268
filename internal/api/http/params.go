package httpapi

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/i474232898/weather-gateway/internal/weather"
)

var paramNames = []string{"location", "temp", "speed", "raw"}

// bindParams merges body and query parameters. Body values win.
func bindParams(c *fiber.Ctx) (weather.Params, error) {
	values := make(map[string]string, len(paramNames))

	if len(c.Body()) > 0 {
		contentType := strings.ToLower(string(c.Request().Header.ContentType()))
		switch {
		case strings.HasPrefix(contentType, fiber.MIMEApplicationJSON):
			var body map[string]any
			if err := json.Unmarshal(c.Body(), &body); err != nil {
				return weather.Params{}, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body.")
			}
			for _, name := range paramNames {
				values[name] = stringify(body[name])
			}
		case strings.HasPrefix(contentType, fiber.MIMEApplicationForm):
			args := c.Request().PostArgs()
			for _, name := range paramNames {
				values[name] = string(args.Peek(name))
			}
		case strings.HasPrefix(contentType, fiber.MIMEMultipartForm):
			if form, err := c.MultipartForm(); err == nil {
				for _, name := range paramNames {
					if v := form.Value[name]; len(v) > 0 {
						values[name] = v[0]
					}
				}
			}
		}
	}

	for _, name := range paramNames {
		if values[name] == "" {
			values[name] = c.Query(name)
		}
		values[name] = strings.TrimSpace(values[name])
	}

	return weather.Params{
		Location: values["location"],
		Temp:     values["temp"],
		Speed:    values["speed"],
		Raw:      values["raw"] != "" && values["raw"] != "0",
	}, nil
}

func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case bool:
		if t {
			return "1"
		}
		return ""
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	default:
		return ""
	}
}
