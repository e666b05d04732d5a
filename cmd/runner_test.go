package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/desertthunder/fmx/internal/models"
	"github.com/desertthunder/fmx/internal/shared"
	tu "github.com/desertthunder/fmx/internal/testing"
)

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with all dependencies provided", func(t *testing.T) {
			config := shared.DefaultConfig()
			logger := shared.NewLogger(nil)
			output := &bytes.Buffer{}
			httpClient := &http.Client{}
			flickr := &tu.MockAlbumSource{}

			runner := NewRunner(RunnerOpts{
				Config:     config,
				Logger:     logger,
				Output:     output,
				HTTPClient: httpClient,
				Flickr:     flickr,
			})

			if runner.config != config {
				t.Error("expected config to be set")
			}
			if runner.logger != logger {
				t.Error("expected logger to be set")
			}
			if runner.output != output {
				t.Error("expected output to be set")
			}
			if runner.httpClient != httpClient {
				t.Error("expected httpClient to be set")
			}
			if runner.flickr != flickr {
				t.Error("expected flickr to be set")
			}
			if runner.engine == nil {
				t.Error("expected engine to be constructed")
			}
		})

		t.Run("with nil config uses defaults", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Config: nil,
			})

			if runner.config == nil {
				t.Error("expected default config to be set")
			}
		})

		t.Run("with nil logger uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Logger: nil,
			})

			if runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				Output: nil,
			})

			if runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{
				HTTPClient: nil,
			})

			if runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("register returns all top-level commands", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{})
		commands := runner.register()

		want := []string{"setup", "flickr", "miro", "sync", "cache", "tui"}
		if len(commands) != len(want) {
			t.Fatalf("expected %d commands, got %d", len(want), len(commands))
		}
		for i, name := range want {
			if commands[i].Name != name {
				t.Errorf("expected command %q at position %d, got %q", name, i, commands[i].Name)
			}
		}
	})

	t.Run("writeJSON", func(t *testing.T) {
		t.Run("writes compact JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"id": "42"}, false); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if output.String() != "{\"id\":\"42\"}\n" {
				t.Errorf("unexpected output %q", output.String())
			}
		})

		t.Run("writes pretty JSON", func(t *testing.T) {
			output := &bytes.Buffer{}
			runner := NewRunner(RunnerOpts{Output: output})

			if err := runner.writeJSON(map[string]string{"id": "42"}, true); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}

			if !strings.Contains(output.String(), "  \"id\": \"42\"") {
				t.Errorf("expected indented output, got %q", output.String())
			}
		})

		t.Run("propagates write failures", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &tu.FWriter{}})

			if err := runner.writeJSON(map[string]string{}, false); err == nil {
				t.Error("expected write error")
			}
		})

		t.Run("rejects unmarshalable data", func(t *testing.T) {
			runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

			if err := runner.writeJSON(make(chan int), false); err == nil {
				t.Error("expected marshal error")
			}
		})
	})

	t.Run("writePlain formats output", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		if err := runner.writePlain("placed %d/%d\n", 3, 5); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if output.String() != "placed 3/5\n" {
			t.Errorf("unexpected output %q", output.String())
		}
	})
}

func TestSetupDatabase(t *testing.T) {
	t.Run("creates config and database from scratch", func(t *testing.T) {
		dir := t.TempDir()
		wd := tu.MustGetwd(t)
		tu.MustChdir(t, dir)
		defer tu.MustChdir(t, wd)

		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output})

		cmd := &cli.Command{
			Name: "database",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "config", Value: "config.toml"},
			},
			Action: runner.SetupDatabase,
		}

		if err := cmd.Run(context.Background(), []string{"database"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		tu.AssertFileExists(t, filepath.Join(dir, "config.toml"))
		tu.AssertFileExists(t, filepath.Join(dir, "fmx.db"))
	})
}

func TestSyncRunValidation(t *testing.T) {
	t.Run("reports every missing credential before any network call", func(t *testing.T) {
		config := shared.DefaultConfig()
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Config: config, Output: output})

		cmd := &cli.Command{
			Name: "run",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "cache"},
				&cli.StringFlag{Name: "config", Value: "config.toml"},
			},
			Action: runner.SyncRun,
		}

		err := cmd.Run(context.Background(), []string{"run"})
		if err == nil {
			t.Fatal("expected validation error")
		}

		for _, name := range []string{"FLICKR_API_KEY", "FLICKR_USER_ID", "FLICKR_PHOTOSET_ID", "MIRO_TOKEN", "MIRO_BOARD_ID"} {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("expected %s in error, got %v", name, err)
			}
		}
	})
}

func TestApplyConfigFlag(t *testing.T) {
	configFlagCmd := func(runner *Runner) *cli.Command {
		return &cli.Command{
			Name: "run",
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "config", Value: "config.toml"},
			},
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return runner.applyConfigFlag(cmd)
			},
		}
	}

	t.Run("fails when an explicitly given path is missing", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		err := configFlagCmd(runner).Run(context.Background(), []string{"run", "--config", "nope.toml"})
		if !errors.Is(err, shared.ErrMissingConfig) {
			t.Errorf("expected ErrMissingConfig, got %v", err)
		}
	})

	t.Run("keeps injected services when the default path is absent", func(t *testing.T) {
		dir := t.TempDir()
		wd := tu.MustGetwd(t)
		tu.MustChdir(t, dir)
		defer tu.MustChdir(t, wd)

		flickr := &tu.MockAlbumSource{}
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}, Flickr: flickr})

		if err := configFlagCmd(runner).Run(context.Background(), []string{"run"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if runner.flickr != flickr {
			t.Error("expected injected service to survive a missing default config")
		}
	})

	t.Run("reloads credentials and rebuilds services from the given file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "alt.toml")
		contents := `[credentials.flickr]
api_key = "key-from-file"
user_id = "99999999@N00"
photoset_id = "7215"

[credentials.miro]
token = "miro-token"
board_id = "board-1"
`
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		if err := configFlagCmd(runner).Run(context.Background(), []string{"run", "--config", path}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if runner.config.Credentials.Flickr.APIKey != "key-from-file" {
			t.Errorf("expected reloaded api key, got %q", runner.config.Credentials.Flickr.APIKey)
		}
		if runner.flickr == nil || runner.miro == nil {
			t.Error("expected services rebuilt from reloaded credentials")
		}
		if runner.engine == nil {
			t.Error("expected engine rebuilt from reloaded credentials")
		}
	})
}

func TestCachePhotos(t *testing.T) {
	t.Run("fetches the listing into the local database", func(t *testing.T) {
		dir := t.TempDir()
		wd := tu.MustGetwd(t)
		tu.MustChdir(t, dir)
		defer tu.MustChdir(t, wd)

		output := &bytes.Buffer{}
		flickr := &tu.MockAlbumSource{Photos: []models.Photo{
			{ID: "1", Title: "Sunset", URLs: models.SizeURLs{Medium800: "https://live.staticflickr.com/1_c.jpg"}},
			{ID: "2", Title: "Harbor", URLs: models.SizeURLs{Large: "https://live.staticflickr.com/2_l.jpg"}},
		}}
		runner := NewRunner(RunnerOpts{Output: output, Flickr: flickr})

		cmd := &cli.Command{
			Name:   "photos",
			Action: runner.CachePhotos,
		}

		if err := cmd.Run(context.Background(), []string{"photos"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.Contains(output.String(), "Cached 2/2 photos") {
			t.Errorf("expected cache summary, got %q", output.String())
		}
		tu.AssertFileExists(t, filepath.Join(dir, "fmx.db"))
	})
}

func TestFlickrPhotos(t *testing.T) {
	t.Run("fails without a flickr service", func(t *testing.T) {
		runner := NewRunner(RunnerOpts{Output: &bytes.Buffer{}})

		cmd := &cli.Command{
			Name: "photos",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "json"},
				&cli.BoolFlag{Name: "pretty"},
			},
			Action: runner.FlickrPhotos,
		}

		if err := cmd.Run(context.Background(), []string{"photos"}); err == nil {
			t.Error("expected error for missing service")
		}
	})

	t.Run("prints listing with skip markers", func(t *testing.T) {
		output := &bytes.Buffer{}
		flickr := &tu.MockAlbumSource{Photos: []models.Photo{
			{ID: "1", Title: "Sunset", URLs: models.SizeURLs{Medium800: "https://live.staticflickr.com/1_c.jpg"}},
			{ID: "2", Title: "Clip", Media: models.MediaVideo},
		}}
		runner := NewRunner(RunnerOpts{Output: output, Flickr: flickr})

		cmd := &cli.Command{
			Name: "photos",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "json"},
				&cli.BoolFlag{Name: "pretty"},
			},
			Action: runner.FlickrPhotos,
		}

		if err := cmd.Run(context.Background(), []string{"photos"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := output.String()
		if !strings.Contains(got, "Sunset") {
			t.Errorf("expected photo title in output, got %q", got)
		}
		if !strings.Contains(got, "2 photos (1 usable, 1 will be skipped)") {
			t.Errorf("expected usable summary, got %q", got)
		}
	})
}
