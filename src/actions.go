package src

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/afero"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/ironsmile/coverlookup/src/scaler"
	"github.com/ironsmile/coverlookup/src/version"
	"github.com/ironsmile/coverlookup/src/webserver"
)

// shutdownTimeout is how long serve waits for in-flight requests on exit.
const shutdownTimeout = 5 * time.Second

// Lookup prints the artwork URL of an album.
func (r *Runner) Lookup(ctx context.Context, cmd *cli.Command) error {
	artist, album := cmd.String("artist"), cmd.String("album")

	imageURL, ok := r.client.FindAlbumArt(ctx, artist, album)
	if !ok {
		r.logger.Warn("no artwork found", "artist", artist, "album", album)
		return cli.Exit("", 1)
	}

	return r.writeln("%s", imageURL)
}

// MBID prints the release group ID of an album.
func (r *Runner) MBID(ctx context.Context, cmd *cli.Command) error {
	mbid, err := r.client.ResolveMBID(ctx, cmd.String("artist"), cmd.String("album"))
	if err != nil {
		return resolveExit(err)
	}

	return r.writeln("%s", mbid)
}

// Artwork prints the artwork URL of a release group.
func (r *Runner) Artwork(ctx context.Context, cmd *cli.Command) error {
	mbid := cmd.StringArg("mbid")
	if mbid == "" {
		return cli.Exit("release group MBID argument is required", 1)
	}

	imageURL, err := r.client.ResolveArtworkURL(ctx, mbid)
	if err != nil {
		return resolveExit(err)
	}

	return r.writeln("%s", imageURL)
}

// Download saves the front cover of an album, optionally scaled down.
func (r *Runner) Download(ctx context.Context, cmd *cli.Command) error {
	img, err := r.client.GetFrontImage(ctx, cmd.String("artist"), cmd.String("album"))
	if err != nil {
		return resolveExit(err)
	}

	data, mimetype := img.Data, img.Mimetype
	if width := int(cmd.Int("width")); width > 0 {
		s := scaler.New(ctx)
		defer s.Cancel()

		res, err := s.Scale(ctx, data, width)
		if err != nil {
			return fmt.Errorf("scaling front image: %w", err)
		}
		if res.Scaled {
			mimetype = scaler.MimeJPEG
		}
		data = res.Data
	}

	output := cmd.String("output")
	if err := afero.WriteFile(r.fs, output, data, 0o644); err != nil {
		return fmt.Errorf("writing front image: %w", err)
	}

	r.logger.Info("front image saved",
		"path", output,
		"mimetype", mimetype,
		"bytes", len(data),
	)
	return nil
}

// Serve runs the HTTP lookup server until the process is interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	listen := r.cfg.Server.Listen
	if cmd.IsSet("listen") {
		listen = cmd.String("listen")
	}

	srv := webserver.NewServer(webserver.Config{
		Listen:       listen,
		ReadTimeout:  r.cfg.Server.ReadTimeout,
		WriteTimeout: r.cfg.Server.WriteTimeout,
		UserAgent:    r.cfg.UserAgent,
	}, r.client, r.logger)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Serve(); err != nil {
		return fmt.Errorf("starting webserver: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(srv.Wait)
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(
			context.Background(),
			shutdownTimeout,
		)
		defer cancel()

		r.logger.Info("shutting down webserver")
		return srv.Stop(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// Version prints version information.
func (r *Runner) Version(ctx context.Context, cmd *cli.Command) error {
	version.Print(r.output)
	return nil
}
