package quran

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/tijeane/quran-learning/internal/logger"
)

const (
	// DefaultBaseURL is the public alquran.cloud API root.
	DefaultBaseURL = "https://api.alquran.cloud/v1"
	// audioCDN serves per-ayah recitations keyed by global ayah number.
	audioCDN = "https://cdn.islamic.network/quran/audio/128/ar.alafasy"

	// EditionEnglish is the English translation used for keyword search.
	EditionEnglish = "en.sahih"
	// EditionArabic is the Uthmani-script edition used for precise Arabic text.
	EditionArabic = "quran-uthmani"
)

type Client struct {
	httpClient    *http.Client
	baseURL       string
	searchTimeout time.Duration
	ayahTimeout   time.Duration
	log           *logger.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API root (used in tests).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTimeouts sets the per-call timeouts for search and ayah requests.
func WithTimeouts(search, ayah time.Duration) Option {
	return func(c *Client) {
		c.searchTimeout = search
		c.ayahTimeout = ayah
	}
}

func New(opts ...Option) *Client {
	c := &Client{
		httpClient:    &http.Client{},
		baseURL:       DefaultBaseURL,
		searchTimeout: 8 * time.Second,
		ayahTimeout:   5 * time.Second,
		log:           logger.Default().WithPrefix("quran"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type Surah struct {
	Number      int    `json:"number"`
	Name        string `json:"name"`
	EnglishName string `json:"englishName"`
}

type Match struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	Surah         Surah  `json:"surah"`
	NumberInSurah int    `json:"numberInSurah"`
}

type SearchResult struct {
	Count   int     `json:"count"`
	Matches []Match `json:"matches"`
}

type searchResp struct {
	Code int          `json:"code"`
	Data SearchResult `json:"data"`
}

type AyahData struct {
	Number        int    `json:"number"`
	Text          string `json:"text"`
	Surah         Surah  `json:"surah"`
	NumberInSurah int    `json:"numberInSurah"`
}

type ayahResp struct {
	Code int      `json:"code"`
	Data AyahData `json:"data"`
}

// Search queries the verse-search endpoint for a keyword. scope narrows
// the search ("2" for Al-Baqarah, "all" for the whole text); an empty
// scope omits the path segment, which some deployments accept as a
// shorthand. The call is bounded by the configured search timeout and is
// not retried.
func (c *Client) Search(ctx context.Context, keyword, scope, edition string) (*SearchResult, error) {
	log := logger.FromContext(ctx).WithPrefix("quran").WithField("keyword", keyword)

	path := fmt.Sprintf("%s/search/%s", c.baseURL, url.PathEscape(keyword))
	if scope != "" {
		path += "/" + scope
	}
	path += "/" + edition

	ctx, cancel := context.WithTimeout(ctx, c.searchTimeout)
	defer cancel()

	log.Debug("searching verses: %s", path)
	start := time.Now()

	var out searchResp
	if err := c.getJSON(ctx, path, &out); err != nil {
		log.Warn("search failed: %v", err)
		return nil, err
	}

	log.Debug("search completed in %v, count=%d", time.Since(start), out.Data.Count)
	return &out.Data, nil
}

// Ayah fetches a single verse in the given edition, addressed as
// surah:ayah. Bounded by the configured ayah timeout.
func (c *Client) Ayah(ctx context.Context, surah, ayah int, edition string) (*AyahData, error) {
	log := logger.FromContext(ctx).WithPrefix("quran")

	path := fmt.Sprintf("%s/ayah/%d:%d/%s", c.baseURL, surah, ayah, edition)

	ctx, cancel := context.WithTimeout(ctx, c.ayahTimeout)
	defer cancel()

	log.Debug("fetching ayah: %s", path)

	var out ayahResp
	if err := c.getJSON(ctx, path, &out); err != nil {
		log.Warn("ayah fetch failed: %v", err)
		return nil, err
	}
	if out.Code != http.StatusOK {
		return nil, fmt.Errorf("ayah response code %d", out.Code)
	}
	return &out.Data, nil
}

func (c *Client) getJSON(ctx context.Context, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("status %d: %s", resp.StatusCode, string(body))
	}
	return json.NewDecoder(resp.Body).Decode(v)
}

// AudioURL builds the recitation URL for a verse. The CDN keys audio by a
// global ayah number approximated as (surah-1)*1000 + ayah.
func AudioURL(surah, ayah int) string {
	return fmt.Sprintf("%s/%d.mp3", audioCDN, (surah-1)*1000+ayah)
}
