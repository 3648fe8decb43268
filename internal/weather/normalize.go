package weather

import "time"

var locationFields = []string{"name", "region", "country"}

// Provider timestamps use these layouts for forecast days and hours.
const (
	dateLayout = "2006-01-02"
	hourLayout = "2006-01-02 15:00"
)

// Normalizer reduces provider documents to the public response schema.
type Normalizer struct {
	// Now returns the wall-clock time used to drop past forecast hours.
	Now func() time.Time
}

// NewNormalizer returns a Normalizer whose clock reads time.Now in loc.
// A nil loc means time.Local.
func NewNormalizer(loc *time.Location) *Normalizer {
	if loc == nil {
		loc = time.Local
	}
	return &Normalizer{
		Now: func() time.Time { return time.Now().In(loc) },
	}
}

// Normalize projects raw onto the reduced schema using prefs for unit-dependent fields.
func (n *Normalizer) Normalize(raw Document, prefs Preferences, includeRaw bool) (*Response, error) {
	location, ok := object(raw["location"])
	if !ok {
		return nil, ErrMissingLocation
	}
	current, ok := object(raw["current"])
	if !ok {
		return nil, ErrMissingCurrent
	}

	allowed := AllowedFields(prefs)

	resp := &Response{
		Success: true,
		Data: Data{
			Location: project(location, locationFields),
			Current:  reduce(current, allowed),
		},
	}

	if forecast, ok := object(raw["forecast"]); ok {
		if days, ok := forecast["forecastday"].([]any); ok && len(days) > 0 {
			resp.Data.Forecast = n.reduceForecast(days, allowed)
		}
	}

	if includeRaw {
		resp.RawData = raw
	}

	return resp, nil
}

func (n *Normalizer) reduceForecast(days []any, allowed []string) []DaySummary {
	now := n.Now()
	today := now.Format(dateLayout)
	currentHour := now.Format(hourLayout)

	out := make([]DaySummary, 0, len(days))
	for _, d := range days {
		day, _ := object(d)
		date, _ := day["date"].(string)

		summary := DaySummary{Date: date}
		if metrics, ok := object(day["day"]); ok {
			summary.Day = reduce(metrics, allowed)
		} else {
			summary.Day = Summary{}
		}

		hours, _ := day["hour"].([]any)
		for _, h := range hours {
			hour, _ := object(h)
			// Hour times share the "YYYY-MM-DD HH:MM" layout, so string order is time order.
			if date == today {
				if ts, _ := hour["time"].(string); ts < currentHour {
					continue
				}
			}
			summary.Hour = append(summary.Hour, reduce(hour, allowed))
		}

		out = append(out, summary)
	}
	return out
}

// reduce applies the metric allow-list and collapses condition to its text.
func reduce(metrics map[string]any, allowed []string) Summary {
	out := project(metrics, allowed)
	if cond, ok := out["condition"]; ok {
		switch c := cond.(type) {
		case string:
		case map[string]any:
			if text, ok := c["text"]; ok {
				out["condition"] = text
			} else {
				delete(out, "condition")
			}
		default:
			delete(out, "condition")
		}
	}
	return out
}

// project copies only the listed keys that are present in src.
func project(src map[string]any, keys []string) Summary {
	out := make(Summary, len(keys))
	for _, k := range keys {
		if v, ok := src[k]; ok {
			out[k] = v
		}
	}
	return out
}

// object reports whether v is a non-empty JSON object.
func object(v any) (map[string]any, bool) {
	var m map[string]any
	switch t := v.(type) {
	case map[string]any:
		m = t
	case Document:
		m = t
	}
	return m, len(m) > 0
}
