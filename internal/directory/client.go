package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"
)

// Profile is the subset of an external user record the Review Router and
// the notification adapters need.
type Profile struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Client is the External Directory Client: an HTTP facade over the
// upstream user service, fronted by small TTL caches so hot lookups
// (a reviewer routed repeatedly, a recipient re-notified, a page of the
// completed-survey list re-walked) don't hammer the upstream on every
// call.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	cache        *ttlCache
	completedCache *ttlCache
}

func NewClient(baseURL string, ttl time.Duration) *Client {
	return &Client{
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		baseURL:      baseURL,
		cache:        newTTLCache(ttl),
		completedCache: newTTLCache(ttl),
	}
}

// GetUser fetches GET /user/{id}, serving from cache when fresh.
func (c *Client) GetUser(ctx context.Context, id string) (*Profile, error) {
	if v, ok := c.cache.get(id); ok {
		return v.(*Profile), nil
	}

	var p Profile
	if err := c.getJSON(ctx, fmt.Sprintf("/user/%s", id), &p); err != nil {
		return nil, fmt.Errorf("get user %s: %w", id, err)
	}

	c.cache.put(id, &p)
	return &p, nil
}

// ListCompletedSurveys fetches GET /api/users/completed?limit=&skip=,
// the paginated candidate universe the Review Router walks, serving from
// the completed-list cache when a page was fetched within its TTL.
func (c *Client) ListCompletedSurveys(ctx context.Context, limit, skip int) ([]string, error) {
	key := fmt.Sprintf("%d:%d", limit, skip)
	if v, ok := c.completedCache.get(key); ok {
		return v.([]string), nil
	}

	path := fmt.Sprintf("/api/users/completed?limit=%s&skip=%s", strconv.Itoa(limit), strconv.Itoa(skip))

	var ids []string
	if err := c.getJSON(ctx, path, &ids); err != nil {
		return nil, fmt.Errorf("list completed surveys: %w", err)
	}

	c.completedCache.put(key, ids)
	return ids, nil
}

// GetSurvey fetches GET /api/users/{id}/survey, the candidate's raw
// survey payload shown alongside a routed assignment.
func (c *Client) GetSurvey(ctx context.Context, id string) (json.RawMessage, error) {
	var raw json.RawMessage
	if err := c.getJSON(ctx, fmt.Sprintf("/api/users/%s/survey", id), &raw); err != nil {
		return nil, fmt.Errorf("get survey %s: %w", id, err)
	}
	return raw, nil
}

// InvalidateUser drops a cached profile, for callers who know it just
// changed upstream.
func (c *Client) InvalidateUser(id string) {
	c.cache.invalidate(id)
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// ttlCache is a minimal get/put/invalidate facade, deliberately not a
// general-purpose cache: it exists only to bound upstream call volume.
type ttlCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]cacheEntry
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

func newTTLCache(ttl time.Duration) *ttlCache {
	return &ttlCache{ttl: ttl, entries: make(map[string]cacheEntry)}
}

func (c *ttlCache) get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok || time.Now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

func (c *ttlCache) put(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = cacheEntry{value: value, expiresAt: time.Now().Add(c.ttl)}
}

func (c *ttlCache) invalidate(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
