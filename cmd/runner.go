package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/layout"
	"github.com/desertthunder/fmx/internal/services"
	"github.com/desertthunder/fmx/internal/shared"
	"github.com/desertthunder/fmx/internal/tasks"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	flickr     services.AlbumSource
	miro       *services.MiroService
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.BoardEngine
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Flickr     services.AlbumSource
	Miro       *services.MiroService
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	var board services.Board
	if opts.Miro != nil {
		board = opts.Miro
	}

	grid := layout.NewGrid(opts.Config.Layout)
	engine := tasks.NewBoardEngine(opts.Flickr, board, grid, opts.Config.Credentials.Flickr.UserID)

	return &Runner{
		config:     opts.Config,
		flickr:     opts.Flickr,
		miro:       opts.Miro,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
		engine:     engine,
	}
}

// SetLogger swaps the runner's logger, e.g. to redirect logs to a file while the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

const defaultConfigPath = "config.toml"

// applyConfigFlag reloads the runner's configuration from the command's
// --config flag. The default path is optional and silently skipped when
// absent; an explicitly given path must exist.
func (r *Runner) applyConfigFlag(cmd *cli.Command) error {
	path := cmd.String("config")
	if path == "" {
		path = defaultConfigPath
	}

	if _, err := os.Stat(path); err != nil {
		if path == defaultConfigPath {
			return nil
		}
		return fmt.Errorf("%w: %s", shared.ErrMissingConfig, path)
	}

	config, err := shared.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", path, err)
	}
	config.ApplyEnv()
	r.reconfigure(config)
	return nil
}

// reconfigure rebuilds the services and the engine around a new configuration.
func (r *Runner) reconfigure(config *shared.Config) {
	r.config = config

	r.flickr = nil
	if config.Credentials.Flickr.APIKey != "" {
		r.flickr = services.NewFlickrService(config.Credentials.Flickr, nil)
	}
	r.miro = nil
	if config.Credentials.Miro.Token != "" {
		r.miro = services.NewMiroService(config.Credentials.Miro, nil, r.logger)
	}

	var board services.Board
	if r.miro != nil {
		board = r.miro
	}
	grid := layout.NewGrid(config.Layout)
	r.engine = tasks.NewBoardEngine(r.flickr, board, grid, config.Credentials.Flickr.UserID)
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, flickrCommand, miroCommand, syncCommand, cacheCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
