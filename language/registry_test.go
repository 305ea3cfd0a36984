package language

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_ConfigurationIsCached(t *testing.T) {
	registry := NewRegistry()

	first, err := registry.Configuration(Go)
	require.NoError(t, err)
	require.NotNil(t, first.Query)
	require.NotNil(t, first.Grammar)

	second, err := registry.Configuration(Go)
	require.NoError(t, err)
	assert.Same(t, first, second, "configuration compiles once per language")
}

func TestRegistry_UnknownLanguage(t *testing.T) {
	registry := NewRegistry()

	_, err := registry.Configuration(Language("klingon"))
	assert.ErrorIs(t, err, ErrUnknownLanguage)
}

func TestRegistry_AllLanguagesCompile(t *testing.T) {
	registry := NewRegistry()

	for _, lang := range All() {
		cfg, err := registry.Configuration(lang)
		require.NoError(t, err, "language %s", lang)
		assert.Equal(t, lang, cfg.Language)
		assert.NotEmpty(t, cfg.TokenName(0))
	}
}

func TestRegistry_PreloadAll(t *testing.T) {
	registry := NewRegistry()
	registry.PreloadAll(context.Background())

	cfg, err := registry.Configuration(Go)
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestRegistry_FailureLoggedOnce(t *testing.T) {
	var buf bytes.Buffer
	registry := NewRegistry(WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))

	_, err := registry.Configuration(Language("klingon"))
	require.Error(t, err)
	_, err = registry.Configuration(Language("klingon"))
	require.Error(t, err)

	assert.Equal(t, 1, strings.Count(buf.String(), "failed to load highlight configuration"))
}
