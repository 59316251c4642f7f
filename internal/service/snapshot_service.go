package service

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"
)

// SnapshotUnavailable is served when no website fetch has ever succeeded.
const SnapshotUnavailable = "Unable to fetch latest website data."

// FetchFunc retrieves the current website text. Injected so the refresh
// policy can be tested apart from the network call.
type FetchFunc func(ctx context.Context) (string, error)

// SnapshotService is a single-slot TTL cache over the college website
// scrape. A previously successful snapshot is preferred over a failed
// refresh (stale-but-valid); the attempt time is recorded either way, so a
// failing origin is retried once per TTL instead of on every request.
type SnapshotService struct {
	fetch  FetchFunc
	ttl    time.Duration
	logger *zap.Logger

	mu        sync.Mutex
	text      string
	ok        bool
	fetchedAt time.Time
	now       func() time.Time
}

func NewSnapshotService(fetch FetchFunc, ttl time.Duration, logger *zap.Logger) *SnapshotService {
	return &SnapshotService{
		fetch:  fetch,
		ttl:    ttl,
		logger: logger,
		now:    time.Now,
	}
}

// Get returns the cached website text, refreshing it when the TTL has
// expired. It always returns a usable string; fetch failures never
// propagate to the caller. The lock spans the refresh, so concurrent
// callers cannot trigger duplicate fetches.
func (s *SnapshotService) Get(ctx context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.now().Sub(s.fetchedAt) <= s.ttl {
		return s.current()
	}

	text, err := s.fetch(ctx)
	s.fetchedAt = s.now()
	if err != nil {
		s.logger.Warn("Website fetch failed", zap.Error(err))
		return s.current()
	}

	s.text = text
	s.ok = true
	s.logger.Debug("Website snapshot refreshed", zap.Int("chars", len(text)))
	return s.text
}

func (s *SnapshotService) current() string {
	if !s.ok {
		return SnapshotUnavailable
	}
	return s.text
}

// NewWebsiteFetcher builds the production FetchFunc: an HTTP GET against
// the college website with a short timeout and a browser-like identity,
// followed by goquery text extraction. Script and style content is
// dropped, whitespace collapsed, and the result truncated to maxChars.
func NewWebsiteFetcher(siteURL string, timeout time.Duration, maxChars int) FetchFunc {
	client := &http.Client{Timeout: timeout}

	return func(ctx context.Context) (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, siteURL, nil)
		if err != nil {
			return "", fmt.Errorf("build website request: %w", err)
		}
		req.Header.Set("User-Agent", "Mozilla/5.0")

		resp, err := client.Do(req)
		if err != nil {
			return "", fmt.Errorf("fetch website: %w", err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("fetch website: unexpected status %d", resp.StatusCode)
		}

		doc, err := goquery.NewDocumentFromReader(resp.Body)
		if err != nil {
			return "", fmt.Errorf("parse website: %w", err)
		}
		doc.Find("script,style").Remove()

		text := strings.Join(strings.Fields(doc.Text()), " ")
		if runes := []rune(text); len(runes) > maxChars {
			text = string(runes[:maxChars])
		}
		return text, nil
	}
}
