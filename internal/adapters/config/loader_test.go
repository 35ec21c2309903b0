package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/livecheck/internal/adapters/config"
	"go.trai.ch/livecheck/internal/core/domain"
	"go.trai.ch/livecheck/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func writeDefinition(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) *config.FileLoader {
	t.Helper()
	ctrl := gomock.NewController(t)
	return config.NewLoader(mocks.NewMockLogger(ctrl))
}

func TestLoad_Success(t *testing.T) {
	path := writeDefinition(t, "foo.yaml", `
name: foo
homepage: https://example.org/foo
stable:
  url: https://example.org/foo-1.2.tar.gz
head:
  url: https://github.com/example/foo.git
livecheck:
  url: stable
  regex: 'foo-(\d+(?:\.\d+)+)\.t'
  strategy: page_match
`)

	f, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "foo", f.Name.String())
	assert.Equal(t, "https://example.org/foo", f.Homepage)
	require.NotNil(t, f.Stable)
	require.NotNil(t, f.Head)
	assert.Nil(t, f.Devel)

	require.True(t, f.HasLivecheck())
	lc := f.Livecheck()
	assert.True(t, lc.Finalized())

	url, ok := lc.URL()
	assert.True(t, ok)
	assert.Equal(t, "https://example.org/foo-1.2.tar.gz", url)

	s, ok := lc.Strategy()
	assert.True(t, ok)
	assert.Equal(t, domain.StrategyPageMatch, s)

	require.NotNil(t, lc.Regex())
	assert.Equal(t, `foo-(\d+(?:\.\d+)+)\.t`, lc.Regex().String())
	assert.False(t, lc.Skipped())
}

func TestLoad_NameFromFilename(t *testing.T) {
	path := writeDefinition(t, "wget.yml", "homepage: https://www.gnu.org/software/wget/\n")

	f, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "wget", f.Name.String())
	assert.False(t, f.HasLivecheck())
}

func TestLoad_URL(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected string
	}{
		{name: "homepage alias", value: "homepage", expected: "https://example.org/foo"},
		{name: "head alias", value: "head", expected: "https://github.com/example/foo.git"},
		{name: "literal", value: "https://example.org/downloads/", expected: "https://example.org/downloads/"},
		{name: "literal tag", value: "!literal stable", expected: "stable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, "foo.yaml", `
homepage: https://example.org/foo
head:
  url: https://github.com/example/foo.git
livecheck:
  url: `+tt.value+"\n")

			f, err := newLoader(t).Load(path)
			require.NoError(t, err)

			url, ok := f.Livecheck().URL()
			assert.True(t, ok)
			assert.Equal(t, tt.expected, url)
		})
	}
}

func TestLoad_Skip(t *testing.T) {
	tests := []struct {
		name       string
		value      string
		skipped    bool
		message    string
		hasMessage bool
	}{
		{name: "message", value: `"Not maintained"`, skipped: true, message: "Not maintained", hasMessage: true},
		{name: "true", value: "true", skipped: true},
		{name: "null", value: "~", skipped: true},
		{name: "empty string", value: `""`, skipped: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, "foo.yaml", "livecheck:\n  skip: "+tt.value+"\n")

			f, err := newLoader(t).Load(path)
			require.NoError(t, err)

			lc := f.Livecheck()
			assert.Equal(t, tt.skipped, lc.Skipped())

			msg, ok := lc.SkipMessage()
			assert.Equal(t, tt.hasMessage, ok)
			assert.Equal(t, tt.message, msg)
		})
	}
}

func TestLoad_SkipFalseWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	path := writeDefinition(t, "foo.yaml", "livecheck:\n  skip: false\n")

	f, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	assert.False(t, f.Livecheck().Skipped())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		field       string
	}{
		{
			name:        "skip with a number",
			content:     "livecheck:\n  skip: 42\n",
			expectedErr: domain.ErrTypeMismatch,
			field:       "skip",
		},
		{
			name:        "regex with a list",
			content:     "livecheck:\n  regex: [a]\n",
			expectedErr: domain.ErrTypeMismatch,
			field:       "regex",
		},
		{
			name:        "strategy with a mapping",
			content:     "livecheck:\n  strategy: {x: 1}\n",
			expectedErr: domain.ErrTypeMismatch,
			field:       "strategy",
		},
		{
			name:        "url with a number",
			content:     "livecheck:\n  url: 7\n",
			expectedErr: domain.ErrTypeMismatch,
			field:       "url",
		},
		{
			name:        "livecheck is a list",
			content:     "livecheck:\n  - url\n",
			expectedErr: domain.ErrTypeMismatch,
			field:       "livecheck",
		},
		{
			name:        "invalid regex",
			content:     "livecheck:\n  regex: 'foo-(\\d+'\n",
			expectedErr: domain.ErrInvalidRegex,
			field:       "regex",
		},
		{
			name:        "unknown strategy",
			content:     "livecheck:\n  strategy: carrier_pigeon\n",
			expectedErr: domain.ErrUnknownStrategy,
			field:       "strategy",
		},
		{
			name:        "undeclared variant",
			content:     "livecheck:\n  url: devel\n",
			expectedErr: domain.ErrVariantNotDefined,
		},
		{
			name:        "unknown key",
			content:     "livecheck:\n  sparkle_url: https://example.org/appcast.xml\n",
			expectedErr: domain.ErrUnknownField,
			field:       "sparkle_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeDefinition(t, "foo.yaml", tt.content)

			f, err := newLoader(t).Load(path)
			require.ErrorIs(t, err, tt.expectedErr)
			assert.Nil(t, f)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			meta := zErr.Metadata()
			assert.Equal(t, path, meta["path"])
			assert.Equal(t, "foo", meta["package"])
			if tt.field != "" {
				assert.Equal(t, tt.field, meta["field"])
			}
		})
	}
}

func TestLoad_Anchors(t *testing.T) {
	t.Run("aliased scalars", func(t *testing.T) {
		path := writeDefinition(t, "foo.yaml", `
homepage: &home https://example.org/foo
x-pattern: &pat 'foo-(\d+)'
x-reason: &reason Not maintained
livecheck:
  url: *home
  regex: *pat
  skip: *reason
`)

		f, err := newLoader(t).Load(path)
		require.NoError(t, err)

		lc := f.Livecheck()
		url, ok := lc.URL()
		assert.True(t, ok)
		assert.Equal(t, "https://example.org/foo", url)

		require.NotNil(t, lc.Regex())
		assert.Equal(t, `foo-(\d+)`, lc.Regex().String())

		msg, ok := lc.SkipMessage()
		assert.True(t, ok)
		assert.Equal(t, "Not maintained", msg)
	})

	t.Run("aliased block", func(t *testing.T) {
		path := writeDefinition(t, "foo.yaml", `
homepage: https://example.org/foo
x-livecheck: &lc
  url: homepage
  strategy: page_match
livecheck: *lc
`)

		f, err := newLoader(t).Load(path)
		require.NoError(t, err)

		url, ok := f.Livecheck().URL()
		assert.True(t, ok)
		assert.Equal(t, "https://example.org/foo", url)

		s, ok := f.Livecheck().Strategy()
		assert.True(t, ok)
		assert.Equal(t, domain.StrategyPageMatch, s)
	})

	t.Run("merged block with override", func(t *testing.T) {
		path := writeDefinition(t, "foo.yaml", `
homepage: https://example.org/foo
x-livecheck: &lc
  url: homepage
  strategy: page_match
livecheck:
  strategy: header_match
  <<: *lc
`)

		f, err := newLoader(t).Load(path)
		require.NoError(t, err)

		url, ok := f.Livecheck().URL()
		assert.True(t, ok)
		assert.Equal(t, "https://example.org/foo", url)

		s, ok := f.Livecheck().Strategy()
		assert.True(t, ok)
		assert.Equal(t, domain.StrategyHeaderMatch, s)
	})

	t.Run("aliased value of the wrong shape", func(t *testing.T) {
		path := writeDefinition(t, "foo.yaml", `
x-list: &list [a]
livecheck:
  skip: *list
`)

		_, err := newLoader(t).Load(path)
		require.ErrorIs(t, err, domain.ErrTypeMismatch)

		var zErr *zerr.Error
		require.ErrorAs(t, err, &zErr)
		assert.Equal(t, "skip", zErr.Metadata()["field"])
		assert.Equal(t, "!!seq", zErr.Metadata()["got"])
	})
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := newLoader(t).Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := writeDefinition(t, "foo.yaml", "name: [unterminated\n")

	_, err := newLoader(t).Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to parse package definition")
}
