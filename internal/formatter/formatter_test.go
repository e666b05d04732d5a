package formatter

import (
	"errors"
	"strings"
	"testing"
)

func TestProgressBar(t *testing.T) {
	t.Run("renders empty bar at zero", func(t *testing.T) {
		got := ProgressBar(0, 10, 10)
		want := "[----------] 0/10"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("renders full bar at completion", func(t *testing.T) {
		got := ProgressBar(10, 10, 10)
		want := "[##########] 10/10"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("renders partial bar", func(t *testing.T) {
		got := ProgressBar(5, 10, 10)
		want := "[#####-----] 5/10"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("handles zero total", func(t *testing.T) {
		got := ProgressBar(0, 0, 10)
		want := "[----------] 0/0"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("falls back to default width", func(t *testing.T) {
		got := ProgressBar(1, 2, 0)

		if !strings.Contains(got, strings.Repeat("#", DefaultProgressWidth/2)) {
			t.Errorf("expected default width bar, got %q", got)
		}
	})
}

func TestRenderProgress(t *testing.T) {
	t.Run("intermediate lines end with carriage return", func(t *testing.T) {
		var sb strings.Builder

		if err := RenderProgress(&sb, 1, 3, 6, "ok 100"); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := sb.String()

		if !strings.HasSuffix(got, "\r") {
			t.Errorf("expected carriage return suffix, got %q", got)
		}

		if !strings.Contains(got, "1/3 ok 100") {
			t.Errorf("expected fraction and suffix, got %q", got)
		}
	})

	t.Run("final line ends with newline", func(t *testing.T) {
		var sb strings.Builder

		if err := RenderProgress(&sb, 3, 3, 6, ""); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if !strings.HasSuffix(sb.String(), "\n") {
			t.Errorf("expected newline suffix, got %q", sb.String())
		}
	})
}

func TestSuffixes(t *testing.T) {
	t.Run("skip names the photo", func(t *testing.T) {
		got := SkipSuffix("52000000001")
		want := "skip 52000000001 (no usable image URL or video)"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("error includes stage and cause", func(t *testing.T) {
		got := ErrorSuffix("42", "image", errors.New("boom"))
		want := "ERR 42 (image) -> boom"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("warn includes stage and cause", func(t *testing.T) {
		got := WarnSuffix("42", "group", errors.New("bad payload"))
		want := "warn 42 (group) -> bad payload"

		if got != want {
			t.Errorf("expected %q, got %q", want, got)
		}
	})
}

func TestSummary(t *testing.T) {
	got := Summary(8, 10)
	want := "Done. Placed 8/10 grouped tiles."

	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
