//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits the JSON object form of a request body.
type Mutation func(m map[string]any)

// DtoMap turns a request DTO into its JSON object form so tests can drop or overwrite
// individual fields.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, f := range muts {
		f(m)
	}
	return m
}

// Field sets key to value, or removes it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
