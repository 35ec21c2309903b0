package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/livecheck/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	a := domain.NewInternedString("wget")
	b := domain.NewInternedString("wget")

	assert.Equal(t, a, b)
	assert.Equal(t, "wget", a.String())
	assert.False(t, a.IsZero())

	var zero domain.InternedString
	assert.True(t, zero.IsZero())
	assert.Empty(t, zero.String())
}

func TestInternedStringJSON(t *testing.T) {
	type doc struct {
		Name domain.InternedString `json:"name"`
	}

	data, err := json.Marshal(doc{Name: domain.NewInternedString("curl")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"curl"}`, string(data))

	var decoded doc
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "curl", decoded.Name.String())
}
