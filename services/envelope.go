package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
)

// ClientInterface defines the methods services need from PulsewayClient
type ClientInterface interface {
	Get(ctx context.Context, path string, query url.Values) ([]byte, error)
}

// decodeList normalizes the two list envelope shapes the API returns: a bare
// JSON array, or an object wrapping the array under the named field. The
// object shape without the field decodes to an empty list. Both shapes must
// yield identical sequences; the tolerance guards against server-side API
// versioning drift and is load-bearing, not cosmetic.
func decodeList[T any](body []byte, field string) ([]T, error) {
	trimmed := bytes.TrimLeft(body, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("decoding %s list: %w", field, err)
		}
		return items, nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding %s envelope: %w", field, err)
	}
	raw, ok := envelope[field]
	if !ok || string(raw) == "null" {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("decoding %s list: %w", field, err)
	}
	return items, nil
}
