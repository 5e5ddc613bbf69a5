package upkeep

import (
	"bytes"
	"encoding/json"
	"strconv"
	"time"

	"go.trai.ch/wodl/internal/core/domain"
	"go.trai.ch/zerr"
)

// envelope is the response wrapper shared by all API v2 endpoints.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Result  json.RawMessage `json:"result"`
	Results []domain.Record `json:"results"`
}

type authResult struct {
	SessionToken string `json:"sessionToken"`
	ExpiresAt    any    `json:"expiresAt"`
}

// decode unmarshals data keeping numbers as json.Number, so identifiers keep their exact text.
func decode(data []byte, target any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(target); err != nil {
		return zerr.Wrap(err, domain.ErrAPIParseFailed.Error())
	}
	return nil
}

// parseExpiry accepts RFC 3339 timestamps and epoch milliseconds.
func parseExpiry(v any) time.Time {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339Nano, t); err == nil {
			return parsed
		}
		if ms, err := strconv.ParseInt(t, 10, 64); err == nil {
			return time.UnixMilli(ms).UTC()
		}
	case json.Number:
		if ms, err := t.Int64(); err == nil {
			return time.UnixMilli(ms).UTC()
		}
	}
	return time.Time{}
}
