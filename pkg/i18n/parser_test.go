package i18n_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roman/pkg/i18n"
)

func TestYAMLParser_Parse(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("nested keys", func(t *testing.T) {
		out, err := p.Parse(context.Background(), []byte("en:\n  shell:\n    bye: Goodbye\n"))
		require.NoError(t, err)
		shell, ok := out["en"]["shell"].(map[string]any)
		require.True(t, ok)
		assert.Equal(t, "Goodbye", shell["bye"])
	})

	t.Run("rejects scalar language value", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte("en: hello\n"))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("rejects empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), []byte(""))
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("honours cancellation", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Parse(ctx, []byte("en:\n  a: b\n"))
		assert.ErrorIs(t, err, i18n.ErrYAMLParsingCancelled)
	})
}

func TestYAMLParser_SupportsFileExtension(t *testing.T) {
	p := i18n.NewYAMLParser()
	assert.True(t, p.SupportsFileExtension(".yaml"))
	assert.True(t, p.SupportsFileExtension("YML"))
	assert.False(t, p.SupportsFileExtension(".json"))
	assert.False(t, p.SupportsFileExtension(""))
}
