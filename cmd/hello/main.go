package main

import (
	"context"
	"errors"
	"os"

	"github.com/a-peyrard/helloworld/config"
	"github.com/a-peyrard/helloworld/hello"
	"github.com/a-peyrard/helloworld/logging"
	"github.com/a-peyrard/helloworld/runner"
	"github.com/rs/zerolog"
)

// Config is read from HELLO_* environment variables.
type Config struct {
	LogLevel string
	Repeat   int
}

func (c *Config) ApplyDefault() {
	if c.LogLevel == "" {
		c.LogLevel = zerolog.InfoLevel.String()
	}
	if c.Repeat <= 0 {
		c.Repeat = 1
	}
}

func main() {
	bootLogger := logging.New(os.Stderr, zerolog.InfoLevel)

	conf, err := config.Load[Config](config.WithEnvPrefix("HELLO"))
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("unable to load configuration")
	}

	level, err := logging.ParseLevel(conf.LogLevel)
	if err != nil {
		bootLogger.Fatal().Err(err).Msg("unable to configure logging")
	}
	logger := logging.New(os.Stderr, level)

	ctx := runner.WithSyscallKillableContext(context.Background())
	greeter := hello.NewRunner(logger, os.Stdout, hello.WithRepeat(conf.Repeat))

	if err := runner.RunAll(ctx, greeter); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("error running greeter")
	}
}
