package movies

import (
	"strconv"
	"strings"
)

// requiredFields must all be present and non-blank when creating a movie.
var requiredFields = []string{"title", "genre", "rating", "imageUrl"}

// ValidatePayload checks a decoded JSON payload and returns a field->message
// map of validation errors. An empty map means the payload is valid. With
// partial set, absent fields are skipped (PUT semantics); present fields are
// always validated.
func ValidatePayload(data map[string]any, partial bool) map[string]string {
	errs := map[string]string{}

	if !partial {
		for _, f := range requiredFields {
			v, ok := data[f]
			if !ok || strings.TrimSpace(payloadString(v)) == "" {
				errs[f] = "Required"
			}
		}
	}

	if v, ok := data["title"]; ok {
		if strings.TrimSpace(payloadString(v)) == "" {
			errs["title"] = "Title cannot be empty"
		}
	}
	if v, ok := data["genre"]; ok {
		if strings.TrimSpace(payloadString(v)) == "" {
			errs["genre"] = "Genre cannot be empty"
		}
	}
	if v, ok := data["imageUrl"]; ok {
		if len(strings.TrimSpace(payloadString(v))) < 5 {
			errs["imageUrl"] = "Provide a valid image URL"
		}
	}
	if v, ok := data["rating"]; ok {
		if n, ok := payloadRating(v); !ok {
			errs["rating"] = "Rating must be a number"
		} else if n < 1 || n > 10 {
			errs["rating"] = "Rating must be 1-10"
		}
	}

	return errs
}

// payloadString coerces a JSON value to a string for validation and storage.
func payloadString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	}
	return ""
}

// payloadRating extracts an integer rating from a JSON number or a numeric
// string. Fractional values are truncated.
func payloadRating(v any) (int, bool) {
	switch t := v.(type) {
	case float64:
		return int(t), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(t))
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
