package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("it should default to info", func(t *testing.T) {
		// GIVEN / WHEN
		level, err := ParseLevel("")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, level)
	})

	t.Run("it should ignore the case", func(t *testing.T) {
		// GIVEN / WHEN
		level, err := ParseLevel(" DEBUG ")

		// THEN
		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, level)
	})

	t.Run("it should reject unknown levels", func(t *testing.T) {
		// GIVEN / WHEN
		_, err := ParseLevel("chatty")

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level chatty")
	})
}

func TestNew(t *testing.T) {
	t.Run("it should write messages at or above the level", func(t *testing.T) {
		// GIVEN
		var buf bytes.Buffer
		logger := New(&buf, zerolog.InfoLevel)

		// WHEN
		logger.Debug().Msg("hidden")
		logger.Info().Str("greeting", "Hello World!").Msg("visible")

		// THEN
		out := buf.String()
		assert.NotContains(t, out, "hidden")
		assert.Contains(t, out, "visible")
		assert.Contains(t, out, "greeting=")
	})
}
