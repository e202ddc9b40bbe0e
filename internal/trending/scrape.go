// TagForge - Trending Hashtag Aggregation and Recommendation Engine
// Copyright 2026 Alex M. (tagforge)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tagforge/tagforge

package trending

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/time/rate"

	"github.com/tagforge/tagforge/internal/cache"
	"github.com/tagforge/tagforge/internal/logging"
	"github.com/tagforge/tagforge/internal/metrics"
)

const (
	providerWebScrape    = "web_scraping"
	webScrapeCachePrefix = "webscrape"
	sourceWebScrape      = "web_scraping_with_fallback"
	sourceWebScrapeCache = "webscrape_cache"

	hostTopHashtags      = "top-hashtags.com"
	hostAllHashtag       = "all-hashtag.com"
	hostHashtagsForLikes = "hashtagsforlikes.co"

	// Below this many scraped records the provider keeps trying cheaper
	// sources and finally supplements from the curated table.
	minScrapeRecords = 5

	// Cap on the cached result set per (category, platform).
	maxWebScrapeRecords = 20

	defaultFetchTimeout = 10 * time.Second

	// DefaultUserAgent is a browser-like User-Agent; the ranking pages
	// serve an empty shell or a block page to obvious bots.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"
)

// WebScrapeConfig configures the web scrape provider.
type WebScrapeConfig struct {
	// Client is the HTTP client for page fetches. Nil gets a default
	// client with a 10s timeout.
	Client *http.Client

	// UserAgent overrides DefaultUserAgent when non-empty.
	UserAgent string

	// RequestsPerSecond throttles outbound page fetches across all hosts.
	// Zero or negative disables throttling.
	RequestsPerSecond float64
}

// WebScrapeProvider pools candidate hashtags from public ranking pages.
//
// The three sites form one provider: their extracted records are pooled,
// supplemented from the curated table when thin, deduplicated keeping the
// highest engagement score, capped, and cached as a single result set.
type WebScrapeProvider struct {
	client    *http.Client
	cache     *cache.Cache
	blocklist *Blocklist
	limiter   *rate.Limiter
	userAgent string

	// Base URLs are fields so tests can point the provider at local
	// servers; the blocklist still keys on the canonical host names.
	topHashtagsURL      string
	allHashtagURL       string
	hashtagsForLikesURL string
}

// NewWebScrapeProvider creates the web scrape provider backed by the shared
// cache and blocklist.
func NewWebScrapeProvider(c *cache.Cache, bl *Blocklist, cfg WebScrapeConfig) *WebScrapeProvider {
	client := cfg.Client
	if client == nil {
		client = &http.Client{Timeout: defaultFetchTimeout}
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &WebScrapeProvider{
		client:              client,
		cache:               c,
		blocklist:           bl,
		limiter:             limiter,
		userAgent:           userAgent,
		topHashtagsURL:      "https://" + hostTopHashtags,
		allHashtagURL:       "https://" + hostAllHashtag,
		hashtagsForLikesURL: "https://" + hostHashtagsForLikes,
	}
}

// Name implements Provider.
func (p *WebScrapeProvider) Name() string { return providerWebScrape }

// Fetch implements Provider. It never returns an error for transport or
// access failures; a degraded scrape supplements from the curated table and
// still counts as success.
func (p *WebScrapeProvider) Fetch(ctx context.Context, category, platform string) (FetchOutcome, error) {
	key := cache.Key(webScrapeCachePrefix, category, platform)
	if v, ok := p.cache.Get(key); ok {
		metrics.RecordCacheHit(cacheTypeTrending)
		if records, ok := v.([]HashtagRecord); ok {
			logging.Ctx(ctx).Debug().
				Str("category", category).
				Str("platform", platform).
				Msg("using cached web scrape data")
			return FetchOutcome{
				Records:  records,
				Source:   sourceWebScrapeCache,
				Category: category,
				Platform: platform,
			}, nil
		}
	} else {
		metrics.RecordCacheMiss(cacheTypeTrending)
	}

	var records []HashtagRecord

	// top-hashtags.com only ranks Instagram tags.
	if strings.EqualFold(platform, platformInstagram) {
		records = append(records, p.scrapeTopHashtags(ctx, category)...)
	}

	records = append(records, p.scrapeAllHashtag(ctx, category, platform)...)

	if len(records) < minScrapeRecords {
		records = append(records, p.scrapeHashtagsForLikes(ctx, category, platform)...)
	}

	if len(records) < minScrapeRecords {
		logging.Ctx(ctx).Info().
			Str("category", category).
			Int("scraped", len(records)).
			Msg("limited scrape results, supplementing with curated hashtags")
		records = append(records, CuratedRecords(category, platform)...)
	}

	unique := dedupeByEngagement(records)
	if len(unique) > maxWebScrapeRecords {
		unique = unique[:maxWebScrapeRecords]
	}
	p.cache.Set(key, unique)

	return FetchOutcome{
		Records:  unique,
		Source:   sourceWebScrape,
		Category: category,
		Platform: platform,
	}, nil
}

// scrapeTopHashtags extracts up to 20 tags from top-hashtags.com. Only
// elements whose text already carries a # prefix are usable; scores decay
// from 1000 by 50 per position.
func (p *WebScrapeProvider) scrapeTopHashtags(ctx context.Context, category string) []HashtagRecord {
	if p.skipBlocked(ctx, hostTopHashtags) {
		return nil
	}

	target := fmt.Sprintf("%s/instagram/%s/", p.topHashtagsURL, url.QueryEscape(strings.ToLower(category)))
	doc := p.fetchDocument(ctx, hostTopHashtags, target)
	if doc == nil {
		return nil
	}

	now := time.Now()
	var records []HashtagRecord
	doc.Find(".entry-content .tag-box").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= 20 {
			return false
		}
		text := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(text, "#") {
			return true
		}
		records = append(records, HashtagRecord{
			Hashtag:         text,
			Platform:        platformInstagram,
			EngagementScore: 1000 - i*50,
			GrowthRate:      0.15 - float64(i)*0.005,
			Category:        category,
			FetchedAt:       now,
		})
		return true
	})
	return records
}

// scrapeAllHashtag extracts up to 15 tags from all-hashtag.com. The site
// renders all tags whitespace-joined inside .copy-hashtags boxes, so each
// field becomes one candidate; scores decay from 900.
func (p *WebScrapeProvider) scrapeAllHashtag(ctx context.Context, category, platform string) []HashtagRecord {
	if p.skipBlocked(ctx, hostAllHashtag) {
		return nil
	}

	target := fmt.Sprintf("%s/top-hashtags.php?keyword=%s", p.allHashtagURL, url.QueryEscape(strings.ToLower(category)))
	doc := p.fetchDocument(ctx, hostAllHashtag, target)
	if doc == nil {
		return nil
	}

	now := time.Now()
	var records []HashtagRecord
	count := 0
	doc.Find(".copy-hashtags").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		for _, field := range strings.Fields(sel.Text()) {
			if count >= 15 {
				return false
			}
			tag := field
			if !strings.HasPrefix(tag, "#") {
				tag = "#" + tag
			}
			records = append(records, HashtagRecord{
				Hashtag:         tag,
				Platform:        platform,
				EngagementScore: 900 - count*50,
				GrowthRate:      0.12 - float64(count)*0.005,
				Category:        category,
				FetchedAt:       now,
			})
			count++
		}
		return true
	})
	return records
}

// scrapeHashtagsForLikes extracts up to 10 tags from hashtagsforlikes.co,
// one per .hashtag-item element; scores decay from 800.
func (p *WebScrapeProvider) scrapeHashtagsForLikes(ctx context.Context, category, platform string) []HashtagRecord {
	if p.skipBlocked(ctx, hostHashtagsForLikes) {
		return nil
	}

	target := fmt.Sprintf("%s/hashtag/%s", p.hashtagsForLikesURL, url.QueryEscape(strings.ToLower(category)))
	doc := p.fetchDocument(ctx, hostHashtagsForLikes, target)
	if doc == nil {
		return nil
	}

	now := time.Now()
	var records []HashtagRecord
	doc.Find(".hashtag-item").EachWithBreak(func(i int, sel *goquery.Selection) bool {
		if i >= 10 {
			return false
		}
		tag := strings.TrimSpace(sel.Text())
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		records = append(records, HashtagRecord{
			Hashtag:         tag,
			Platform:        platform,
			EngagementScore: 800 - i*50,
			GrowthRate:      0.10 - float64(i)*0.005,
			Category:        category,
			FetchedAt:       now,
		})
		return true
	})
	return records
}

// skipBlocked reports whether a host is blocklisted, recording the skip.
func (p *WebScrapeProvider) skipBlocked(ctx context.Context, host string) bool {
	if !p.blocklist.IsBlocked(host) {
		return false
	}
	logging.Ctx(ctx).Debug().Str("host", host).Msg("skipping blocklisted scrape host")
	metrics.RecordScrapeRequest(host, "blocked")
	return true
}

// fetchDocument performs one throttled page fetch and parses the response.
// All failure modes return nil: a 403 blocklists the host for the process
// lifetime, anything else is logged and dropped. Callers treat nil as "no
// records from this site".
func (p *WebScrapeProvider) fetchDocument(ctx context.Context, host, target string) *goquery.Document {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			logging.Ctx(ctx).Debug().Err(err).Str("host", host).Msg("scrape throttle wait aborted")
			metrics.RecordScrapeRequest(host, "error")
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("host", host).Msg("building scrape request failed")
		metrics.RecordScrapeRequest(host, "error")
		return nil
	}
	req.Header.Set("User-Agent", p.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")
	req.Header.Set("Upgrade-Insecure-Requests", "1")

	resp, err := p.client.Do(req)
	if err != nil {
		logging.Ctx(ctx).Debug().Err(err).Str("host", host).Msg("scrape request failed")
		metrics.RecordScrapeRequest(host, "error")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
		logging.Ctx(ctx).Info().Str("host", host).Msg("scrape host refusing access, adding to blocklist")
		p.blocklist.Block(host)
		metrics.SetBlockedScrapeHosts(p.blocklist.Len())
		metrics.RecordScrapeRequest(host, "denied")
		return nil
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logging.Ctx(ctx).Warn().Int("status", resp.StatusCode).Str("host", host).Msg("unexpected scrape response status")
		metrics.RecordScrapeRequest(host, "error")
		return nil
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("host", host).Msg("parsing scrape response failed")
		metrics.RecordScrapeRequest(host, "error")
		return nil
	}

	metrics.RecordScrapeRequest(host, "ok")
	return doc
}
