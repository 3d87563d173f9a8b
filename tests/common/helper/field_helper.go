//go:build unit || e2e

package helper

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// DtoMap converts a request DTO to its JSON map form and applies mutations,
// so tests can drop or corrupt single fields.
func DtoMap(t *testing.T, dto any, mutations ...func(m map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(dto)
	require.NoError(t, err, "Failed to encode DTO to JSON")

	var m map[string]any
	require.NoError(t, json.Unmarshal(raw, &m), "Failed to decode DTO JSON to map")

	for _, mutate := range mutations {
		mutate(m)
	}
	return m
}
