package src

import (
	"github.com/urfave/cli/v3"
)

// NewApp returns the coverlookup command line application with all of its
// commands bound to r.
func NewApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "coverlookup",
		Usage:    "Find album cover art through MusicBrainz and the Cover Art Archive",
		Writer:   r.output,
		Flags:    globalFlags(),
		Commands: r.register(),
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file. Defaults to the user config directory",
		},
		&cli.StringFlag{
			Name:  "log-level",
			Usage: "One of debug, info, warn, error. Overrides log_level from the config",
		},
		&cli.DurationFlag{
			Name:  "timeout",
			Usage: "Timeout for every request to the web services",
		},
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		lookupCommand, mbidCommand, artworkCommand, downloadCommand, serveCommand,
		versionCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func albumFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "artist",
			Aliases:  []string{"a"},
			Usage:    "Name of the album artist",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "album",
			Aliases:  []string{"b"},
			Usage:    "Title of the album",
			Required: true,
		},
	}
}

func lookupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "lookup",
		Usage:  "Print the URL of the album artwork",
		Flags:  albumFlags(),
		Action: r.withSetup(r.Lookup),
	}
}

func mbidCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "mbid",
		Usage:  "Print the MusicBrainz release group ID of an album",
		Flags:  albumFlags(),
		Action: r.withSetup(r.MBID),
	}
}

func artworkCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "artwork",
		Usage:     "Print the artwork URL of a MusicBrainz release group",
		ArgsUsage: "MBID",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "mbid",
			},
		},
		Action: r.withSetup(r.Artwork),
	}
}

func downloadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "Save the front cover of an album to a file",
		Flags: append(albumFlags(),
			&cli.StringFlag{
				Name:     "output",
				Aliases:  []string{"o"},
				Usage:    "Output file path",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "width",
				Usage: "Scale the image down to at most this many pixels wide",
			},
		),
		Action: r.withSetup(r.Download),
	}
}

func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP lookup server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "listen",
				Aliases: []string{"l"},
				Usage:   "Address to listen on. Overrides [server] listen from the config",
			},
		},
		Action: r.withSetup(r.Serve),
	}
}

func versionCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "version",
		Usage:  "Print version information",
		Action: r.Version,
	}
}
