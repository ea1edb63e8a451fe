package orderstore

import (
	"bytes"
	"encoding/json"
	"errors"
	"time"
)

// The store is inconsistent about list shapes: the same logical list arrives
// as a bare JSON array, or wrapped under "data", "items" or "$values"
// depending on which serializer produced it. listPayload unwraps once, here at
// the boundary, so nothing past this package ever branches on response shape.
func listPayload(body []byte) ([]byte, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return nil, errors.New("empty list payload")
	}
	if trimmed[0] == '[' {
		return trimmed, nil
	}
	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &wrapper); err != nil {
		return nil, err
	}
	for _, key := range []string{"data", "items", "$values"} {
		raw, ok := wrapper[key]
		if !ok {
			continue
		}
		inner := bytes.TrimSpace(raw)
		if len(inner) == 0 {
			continue
		}
		if inner[0] == '[' {
			return inner, nil
		}
		if inner[0] == '{' {
			// one more level, e.g. {"data":{"$values":[...]}}
			return listPayload(inner)
		}
	}
	return nil, errors.New("unrecognized list payload shape")
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999", // store omits the zone on some fields
	"2006-01-02T15:04:05",
}

// parseStoreTime accepts the store's timestamp variants; zoneless values are
// taken as UTC.
func parseStoreTime(s string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, errors.New("unparseable timestamp: " + s)
}

func parseOptionalTime(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := parseStoreTime(s)
	if err != nil {
		return nil
	}
	return &t
}
