package main

import (
	"testing"

	"github.com/a-peyrard/helloworld/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	t.Run("it should apply defaults", func(t *testing.T) {
		// GIVEN / WHEN
		conf, err := config.Load[Config](config.WithEnvPrefix("HELLO"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, 1, conf.Repeat)
	})

	t.Run("it should read HELLO variables", func(t *testing.T) {
		// GIVEN
		t.Setenv("HELLO_LOG_LEVEL", "debug")
		t.Setenv("HELLO_REPEAT", "4")

		// WHEN
		conf, err := config.Load[Config](config.WithEnvPrefix("HELLO"))

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "debug", conf.LogLevel)
		assert.Equal(t, 4, conf.Repeat)
	})
}
