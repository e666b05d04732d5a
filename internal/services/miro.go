// Miro REST API v2 implementation of [Board]
//
// Endpoint shapes based on https://developers.miro.com/reference/api-reference
package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fmx/internal/shared"
	"golang.org/x/oauth2"
)

const (
	defaultMiroBaseURL = "https://api.miro.com/v2"

	createTimeout = 60 * time.Second

	// maxPostAttempts bounds the rate-limit retry loop per request.
	maxPostAttempts = 2

	// rateLimitBackoff is the fixed sleep before retrying a 429 response.
	rateLimitBackoff = 2 * time.Second

	// errBodyLimit caps how much of an error response body gets logged.
	errBodyLimit = 400
)

// MiroService implements [Board] against the Miro REST API.
//
// The HTTP client carries the OAuth bearer token via [oauth2.Transport] and is
// shared by every request; it is never mutated after construction.
type MiroService struct {
	baseURL    string
	boardID    string
	httpClient *http.Client
	logger     *log.Logger

	// backoff is rateLimitBackoff in production; tests shorten it.
	backoff time.Duration
}

// NewMiroService creates a Miro client for the board named in cfg.
// A nil client gets an authorized default with the creation timeout applied.
func NewMiroService(cfg shared.MiroConfig, client *http.Client, logger *log.Logger) *MiroService {
	if client == nil {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: cfg.Token})
		client = oauth2.NewClient(context.Background(), src)
		client.Timeout = createTimeout
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}

	return &MiroService{
		baseURL:    defaultMiroBaseURL,
		boardID:    cfg.BoardID,
		httpClient: client,
		logger:     logger,
		backoff:    rateLimitBackoff,
	}
}

func (s *MiroService) Name() string {
	return "Miro"
}

// post sends a JSON payload with a bounded rate-limit retry.
//
// A 429 response sleeps the fixed backoff and retries up to maxPostAttempts
// total attempts, surfacing ErrRetriesExhausted when the last attempt is
// still rate limited; any other non-success status fails immediately after
// the (truncated) error body is logged for diagnostics.
func (s *MiroService) post(ctx context.Context, path string, payload any) (map[string]any, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %w", err)
	}

	for attempt := 0; attempt < maxPostAttempts; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL+path, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("failed to create request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := s.httpClient.Do(req)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
		}

		respBody, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read response: %w", err)
		}

		if resp.StatusCode == http.StatusTooManyRequests && attempt+1 < maxPostAttempts {
			s.logger.Warn("rate limited, backing off", "path", path, "backoff", s.backoff)
			select {
			case <-time.After(s.backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			s.logger.Error("miro error body", "status", resp.StatusCode, "body", shared.Truncate(string(respBody), errBodyLimit))
			if resp.StatusCode == http.StatusTooManyRequests {
				return nil, fmt.Errorf("%w: still rate limited after %d attempts", shared.ErrRetriesExhausted, maxPostAttempts)
			}
			return nil, fmt.Errorf("%w: miro status %d", shared.ErrAPIRequest, resp.StatusCode)
		}

		var parsed map[string]any
		if len(respBody) > 0 {
			if err := json.Unmarshal(respBody, &parsed); err != nil {
				return nil, fmt.Errorf("failed to decode response: %w", err)
			}
		}

		return parsed, nil
	}

	return nil, shared.ErrRetriesExhausted
}

// get fetches a board-level resource.
func (s *MiroService) get(ctx context.Context, path string) (map[string]any, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: miro status %d", shared.ErrAPIRequest, resp.StatusCode)
	}

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	return parsed, nil
}

// itemID extracts the created item identifier from a creation response.
func itemID(parsed map[string]any) string {
	switch id := parsed["id"].(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return ""
	}
}

// CreateImage places an image by URL (no base64 upload).
// Geometry is sent only when width or height is positive.
func (s *MiroService) CreateImage(ctx context.Context, imageURL string, x, y, width, height float64) (string, error) {
	payload := map[string]any{
		"data":     map[string]any{"url": imageURL},
		"position": map[string]any{"x": x, "y": y},
	}

	if width > 0 || height > 0 {
		geometry := map[string]any{}
		if width > 0 {
			geometry["width"] = width
		}
		if height > 0 {
			geometry["height"] = height
		}
		payload["geometry"] = geometry
	}

	parsed, err := s.post(ctx, fmt.Sprintf("/boards/%s/images", s.boardID), payload)
	if err != nil {
		return "", err
	}

	return itemID(parsed), nil
}

// CreateRectangle places a filled rectangle (the tile's overlay banner).
func (s *MiroService) CreateRectangle(ctx context.Context, x, y, width, height float64, fill string) (string, error) {
	payload := map[string]any{
		"data":     map[string]any{"shape": "rectangle"},
		"position": map[string]any{"x": x, "y": y},
		"geometry": map[string]any{"width": width, "height": height},
		"style":    map[string]any{"fillColor": fill},
	}

	parsed, err := s.post(ctx, fmt.Sprintf("/boards/%s/shapes", s.boardID), payload)
	if err != nil {
		return "", err
	}

	return itemID(parsed), nil
}

// CreateText places a text item. URLs auto-linkify in Miro.
// Text color is deliberately not set: the v2 API does not support it
// reliably, so readable contrast comes from the light overlay banner.
func (s *MiroService) CreateText(ctx context.Context, content string, x, y, width float64, fontSize int, align string) (string, error) {
	payload := map[string]any{
		"data":     map[string]any{"content": content},
		"position": map[string]any{"x": x, "y": y},
		"geometry": map[string]any{"width": width},
		"style": map[string]any{
			"textAlign": align,
			"fontSize":  fontSize,
		},
	}

	parsed, err := s.post(ctx, fmt.Sprintf("/boards/%s/texts", s.boardID), payload)
	if err != nil {
		return "", err
	}

	return itemID(parsed), nil
}

// isDigits reports whether s is non-empty and contains only ASCII digits.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// coerceIDs converts purely-digit string identifiers to integers, leaving
// other identifiers unchanged.
func coerceIDs(itemIDs []string) []any {
	out := make([]any, 0, len(itemIDs))
	for _, id := range itemIDs {
		if isDigits(id) {
			if n, err := strconv.ParseInt(id, 10, 64); err == nil {
				out = append(out, n)
				continue
			}
		}
		out = append(out, id)
	}
	return out
}

// groupPayloads is the ordered list of request shapes GroupItems attempts.
// The groups endpoint's schema has varied across API revisions, so each
// variant is tried until one succeeds.
var groupPayloads = []func([]string) map[string]any{
	func(ids []string) map[string]any {
		return map[string]any{"data": map[string]any{"items": coerceIDs(ids)}}
	},
	func(ids []string) map[string]any {
		return map[string]any{"data": map[string]any{"itemIds": ids}}
	},
	func(ids []string) map[string]any {
		return map[string]any{"itemIds": ids}
	},
}

// GroupItems binds items so they move together, trying each payload shape in
// order and propagating the last error when all of them fail.
func (s *MiroService) GroupItems(ctx context.Context, itemIDs []string) error {
	path := fmt.Sprintf("/boards/%s/groups", s.boardID)

	var lastErr error
	for _, build := range groupPayloads {
		if _, err := s.post(ctx, path, build(itemIDs)); err != nil {
			lastErr = err
			continue
		}
		return nil
	}

	return lastErr
}

// Board retrieves the target board's metadata.
func (s *MiroService) Board(ctx context.Context) (map[string]any, error) {
	return s.get(ctx, fmt.Sprintf("/boards/%s", s.boardID))
}
