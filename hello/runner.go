package hello

import (
	"context"
	"fmt"
	"io"

	"github.com/a-peyrard/helloworld/runner"
	"github.com/rs/zerolog"
)

type (
	runnerOptions struct {
		repeat int
	}

	// RunnerOption configures the runner built by NewRunner.
	RunnerOption func(opts *runnerOptions)
)

// WithRepeat sets how many times the greeting is written. Values below 1 are ignored.
func WithRepeat(repeat int) RunnerOption {
	return func(opts *runnerOptions) {
		if repeat > 0 {
			opts.repeat = repeat
		}
	}
}

// NewRunner creates a Runnable writing the greeting, one per line, to out.
func NewRunner(logger *zerolog.Logger, out io.Writer, opts ...RunnerOption) runner.Runnable {
	options := &runnerOptions{repeat: 1}
	for _, opt := range opts {
		opt(options)
	}

	return runner.RunnableFunc(func(ctx context.Context) error {
		logger.Debug().Int("repeat", options.repeat).Msg("greeting")
		for i := 0; i < options.repeat; i++ {
			select {
			case <-ctx.Done():
				logger.Debug().Int("written", i).Msg("context cancelled, exiting early")
				return ctx.Err()
			default:
			}
			if _, err := fmt.Fprintln(out, GetHelloWorld()); err != nil {
				return fmt.Errorf("unable to write greeting: %w", err)
			}
		}
		logger.Debug().Msg("done greeting")
		return nil
	})
}
