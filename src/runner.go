package src

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"

	"github.com/ironsmile/coverlookup/src/art"
	"github.com/ironsmile/coverlookup/src/config"
	"github.com/ironsmile/coverlookup/src/helpers"
)

// Runner holds the dependencies of the CLI commands and provides a method for
// each command action.
type Runner struct {
	fs        afero.Fs
	output    io.Writer
	logOutput io.Writer

	// Set by prepare, once the command line flags are known.
	cfg    *config.Config
	logger *log.Logger
	client *art.Client
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	// Fs is where the configuration is read from and images are written to.
	// Defaults to the OS file system.
	Fs afero.Fs

	// Output receives the results of the commands. Defaults to os.Stdout.
	Output io.Writer

	// LogOutput receives the logs. Defaults to os.Stderr.
	LogOutput io.Writer
}

// NewRunner creates a new Runner with the provided options.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.LogOutput == nil {
		opts.LogOutput = os.Stderr
	}

	return &Runner{
		fs:        opts.Fs,
		output:    opts.Output,
		logOutput: opts.LogOutput,
	}
}

// withSetup makes sure the configuration is loaded before running action.
func (r *Runner) withSetup(action cli.ActionFunc) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		if err := r.prepare(cmd); err != nil {
			return err
		}
		return action(ctx, cmd)
	}
}

// prepare loads the configuration, applies the global flags on top of it and
// creates the logger and the artwork client.
func (r *Runner) prepare(cmd *cli.Command) error {
	cfg, err := config.FindAndParse(r.fs, cmd.String("config"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if cmd.IsSet("log-level") {
		cfg.LogLevel = cmd.String("log-level")
	}
	if cmd.IsSet("timeout") {
		cfg.Timeout = cmd.Duration("timeout")
		if cfg.Timeout <= 0 {
			return fmt.Errorf("timeout must be positive, got %s", cfg.Timeout)
		}
	}

	logger, err := helpers.NewLogger(r.logOutput, cfg.LogLevel)
	if err != nil {
		return err
	}

	client := art.NewClient(cfg.UserAgent, cfg.Timeout)
	client.SetMusicBrainzAPIURL(cfg.MusicBrainz.URL)
	client.SetCoverArtAPIURL(cfg.CoverArtArchive.URL)
	client.SetObserver(art.NewLogObserver(logger))

	r.cfg = cfg
	r.logger = logger
	r.client = client

	return nil
}

func (r *Runner) writeln(format string, args ...any) error {
	if _, err := fmt.Fprintf(r.output, format+"\n", args...); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// resolveExit turns a failed resolving into the exit error of a command. The
// message includes the kind of the failure.
func resolveExit(err error) error {
	var resErr *art.ResolveError
	if errors.As(err, &resErr) {
		return cli.Exit(fmt.Sprintf("%s [%s]", err, resErr.Kind), 1)
	}
	return cli.Exit(err.Error(), 1)
}
