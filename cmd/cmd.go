// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for configuration and the local database.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
		},
	}
}

// flickrCommand handles Flickr album operations
func flickrCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "flickr",
		Aliases: []string{"fl"},
		Usage:   "Flickr album operations",
		Commands: []*cli.Command{
			{
				Name:  "photos",
				Usage: "List photos in the configured album",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.FlickrPhotos,
			},
			{
				Name:  "album",
				Usage: "Show metadata for the configured album",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.FlickrAlbum,
			},
		},
	}
}

// miroCommand handles direct Miro board operations
func miroCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "miro",
		Usage: "Miro board operations",
		Commands: []*cli.Command{
			{
				Name:  "board",
				Usage: "Show the configured board, prints raw JSON",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.MiroBoard,
			},
			{
				Name:  "create-image",
				Usage: "Create a single image item on the board",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "url",
						Usage:    "Image URL to place",
						Required: true,
					},
					&cli.FloatFlag{
						Name:  "x",
						Usage: "Center x coordinate",
					},
					&cli.FloatFlag{
						Name:  "y",
						Usage: "Center y coordinate",
					},
					&cli.FloatFlag{
						Name:  "width",
						Usage: "Image width (0 keeps the source size)",
					},
				},
				Action: r.MiroCreateImage,
			},
			{
				Name:  "group",
				Usage: "Group existing board items by ID",
				Arguments: []cli.Argument{
					&cli.StringArgs{
						Name: "ids",
						Min:  2,
						Max:  -1,
					},
				},
				Action: r.MiroGroup,
			},
		},
	}
}

// syncCommand handles album-to-board copy operations
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "sync",
		Usage: "Copy the configured album onto the board",
		Commands: []*cli.Command{
			{
				Name:  "run",
				Usage: "Run the full album → board copy",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "cache",
						Usage: "Record placed photos in the local database",
					},
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SyncRun,
			},
			{
				Name:   "ui",
				Usage:  "Interactive TUI for the album copy",
				Action: r.TUI,
			},
		},
	}
}

// cacheCommand handles browsing locally cached album listings
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Cache album listings locally",
		Commands: []*cli.Command{
			{
				Name:   "photos",
				Usage:  "Fetch the album listing into the local database",
				Action: r.CachePhotos,
			},
			{
				Name:  "list",
				Usage: "List cached photos",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "media",
						Usage: "Filter by media type (photo or video)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
					},
				},
				Action: r.CacheList,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive album copy.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for the album copy",
		Action:  r.TUI,
	}
}
