package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/livecheck/internal/core/domain"
)

func TestParseURLAlias(t *testing.T) {
	tests := []struct {
		name     string
		expected domain.URLAlias
		ok       bool
	}{
		{name: "head", expected: domain.AliasHead, ok: true},
		{name: "stable", expected: domain.AliasStable, ok: true},
		{name: "devel", expected: domain.AliasDevel, ok: true},
		{name: "homepage", expected: domain.AliasHomepage, ok: true},
		{name: "url", ok: false},
		{name: "Stable", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alias, ok := domain.ParseURLAlias(tt.name)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.expected, alias)
				assert.Equal(t, tt.name, alias.String())
			}
		})
	}
}

func TestResolveURL(t *testing.T) {
	f := newFormula()
	f.Devel = &domain.SoftwareSpec{URL: "https://example.org/pkg-2.0-rc1.tar.gz"}

	got, err := domain.ResolveURL(domain.AliasDevel, f)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/pkg-2.0-rc1.tar.gz", got)

	got, err = domain.ResolveURL(domain.LiteralURL("https://example.org/releases"), nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/releases", got)
}

func TestFormula_VariantURL(t *testing.T) {
	f := newFormula()

	url, err := f.VariantURL(domain.VariantStable)
	require.NoError(t, err)
	assert.Equal(t, "https://example.org/pkg-1.2.tar.gz", url)

	_, err = f.VariantURL(domain.VariantDevel)
	require.ErrorIs(t, err, domain.ErrVariantNotDefined)

	assert.Equal(t, "https://example.org/pkg", f.HomepageURL())
}

func TestBuildVariant_String(t *testing.T) {
	assert.Equal(t, "stable", domain.VariantStable.String())
	assert.Equal(t, "head", domain.VariantHead.String())
	assert.Equal(t, "devel", domain.VariantDevel.String())
	assert.Equal(t, "unknown", domain.BuildVariant(0).String())
}
