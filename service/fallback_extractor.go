// ABOUTME: Fallback article extraction by fetching and parsing HTML directly
// ABOUTME: Used when the primary extraction worker is unavailable or fails
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	readability "codeberg.org/readeck/go-readability/v2"
	"github.com/PuerkitoBio/goquery"
	"github.com/araddon/dateparse"
	"github.com/microcosm-cc/bluemonday"
	"github.com/temoto/robotstxt"

	"credibility-checker/domain"
	"credibility-checker/utils/ratelimit"
)

// minParagraphLength filters boilerplate: navigation labels, captions and
// cookie banners rarely exceed this.
const minParagraphLength = 100

const defaultMaxBodyBytes = 10 << 20

// FallbackOptions configures the HTML fallback extractor.
type FallbackOptions struct {
	UserAgent     string
	Timeout       time.Duration
	MaxBodyBytes  int64
	RespectRobots bool
	Limiter       *ratelimit.DomainLimiter
}

type fallbackExtractor struct {
	client       *http.Client
	userAgent    string
	maxBodyBytes int64
	respectRobot bool
	limiter      *ratelimit.DomainLimiter
	logger       *slog.Logger

	robotsMu    sync.Mutex
	robotsCache map[string]*robotstxt.RobotsData
}

func NewFallbackExtractor(opts FallbackOptions, logger *slog.Logger) Extractor {
	maxBody := opts.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = defaultMaxBodyBytes
	}

	return &fallbackExtractor{
		client:       &http.Client{Timeout: opts.Timeout},
		userAgent:    opts.UserAgent,
		maxBodyBytes: maxBody,
		respectRobot: opts.RespectRobots,
		limiter:      opts.Limiter,
		logger:       logger,
		robotsCache:  make(map[string]*robotstxt.RobotsData),
	}
}

func (f *fallbackExtractor) Extract(ctx context.Context, rawURL string) (*domain.Article, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchParseFailure, rawURL, err)
	}

	if f.respectRobot {
		if allowed := f.robotsAllow(ctx, parsed); !allowed {
			return nil, domain.NewFetchError(domain.FetchHTTPError, rawURL, domain.ErrRobotsDisallowed)
		}
	}

	if err := f.limiter.Wait(ctx, parsed.Hostname()); err != nil {
		return nil, domain.NewFetchError(domain.FetchTimeout, rawURL, err)
	}

	body, err := f.fetchHTML(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return nil, domain.NewFetchError(domain.FetchParseFailure, rawURL, err)
	}

	article := &domain.Article{
		Title:    extractTitle(doc),
		Content:  extractContent(doc),
		Source:   parsed.Hostname(),
		URL:      rawURL,
		Author:   extractAuthor(doc),
		Images:   extractImages(doc, parsed),
		TopImage: extractTopImage(doc, parsed),
	}

	if ts := extractPublishDate(doc); ts != nil {
		article.PublishedAt = ts
	}

	if article.Content == "" {
		// Selector heuristics found nothing; let readability take the
		// whole document apart.
		article.Content = recoverContent(body)
	}

	if strings.TrimSpace(article.Content) == "" {
		return nil, domain.NewFetchError(domain.FetchParseFailure, rawURL,
			errors.New("no article content found in page"))
	}

	f.logger.Info("fallback extraction succeeded",
		slog.String("url", rawURL),
		slog.Int("content_length", len(article.Content)),
		slog.Int("image_count", len(article.Images)))

	return article, nil
}

func (f *fallbackExtractor) fetchHTML(ctx context.Context, rawURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", domain.NewFetchError(domain.FetchParseFailure, rawURL, err)
	}

	// Some sites serve a bot-wall to unknown clients.
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || isClientTimeout(err) {
			return "", domain.NewFetchError(domain.FetchTimeout, rawURL, err)
		}
		return "", domain.NewFetchError(domain.FetchHTTPError, rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", domain.NewFetchError(domain.FetchHTTPError, rawURL,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBodyBytes))
	if err != nil {
		return "", domain.NewFetchError(domain.FetchHTTPError, rawURL, err)
	}

	return string(data), nil
}

func isClientTimeout(err error) bool {
	var netErr interface{ Timeout() bool }
	return errors.As(err, &netErr) && netErr.Timeout()
}

// robotsAllow fetches and caches robots.txt per host. Hosts without a
// readable robots.txt allow everything.
func (f *fallbackExtractor) robotsAllow(ctx context.Context, u *url.URL) bool {
	host := u.Scheme + "://" + u.Host

	f.robotsMu.Lock()
	robots, ok := f.robotsCache[host]
	f.robotsMu.Unlock()

	if !ok {
		robots = f.fetchRobots(ctx, host)
		f.robotsMu.Lock()
		f.robotsCache[host] = robots
		f.robotsMu.Unlock()
	}

	if robots == nil {
		return true
	}

	return robots.FindGroup(f.userAgent).Test(u.Path)
}

func (f *fallbackExtractor) fetchRobots(ctx context.Context, host string) *robotstxt.RobotsData {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, host+"/robots.txt", nil)
	if err != nil {
		return nil
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()

	robots, err := robotstxt.FromResponse(resp)
	if err != nil {
		f.logger.Warn("unreadable robots.txt", slog.String("host", host))
		return nil
	}
	return robots
}

// extractTitle prefers the first h1; most article pages put the real
// headline there while <title> carries site branding.
func extractTitle(doc *goquery.Document) string {
	if h1 := strings.TrimSpace(doc.Find("h1").First().Text()); h1 != "" {
		return h1
	}
	return strings.TrimSpace(doc.Find("title").First().Text())
}

func extractContent(doc *goquery.Document) string {
	paragraphs := collectParagraphs(doc.Find("article p, .article p, .post p, .content p, .entry-content p"))
	if len(paragraphs) == 0 {
		paragraphs = collectParagraphs(doc.Find("p"))
	}
	return strings.Join(paragraphs, "\n\n")
}

func collectParagraphs(sel *goquery.Selection) []string {
	var paragraphs []string
	seen := make(map[string]struct{})
	sel.Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) <= minParagraphLength {
			return
		}
		if _, dup := seen[text]; dup {
			return
		}
		seen[text] = struct{}{}
		paragraphs = append(paragraphs, text)
	})
	return paragraphs
}

// recoverContent runs readability over the raw page and strips any HTML it
// leaves behind.
func recoverContent(body string) string {
	article, err := readability.FromReader(strings.NewReader(body), nil)
	if err != nil {
		return ""
	}

	var buf strings.Builder
	if err := article.RenderText(&buf); err != nil {
		return ""
	}

	text := bluemonday.StrictPolicy().Sanitize(buf.String())
	return strings.TrimSpace(text)
}

func extractPublishDate(doc *goquery.Document) *time.Time {
	var found *time.Time
	doc.Find("time, .date, .published, .post-date, .entry-date").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		candidate := strings.TrimSpace(s.AttrOr("datetime", ""))
		if candidate == "" {
			candidate = strings.TrimSpace(s.Text())
		}
		if candidate == "" {
			return true
		}
		if ts, err := dateparse.ParseAny(candidate); err == nil {
			found = &ts
			return false
		}
		return true
	})
	return found
}

func extractAuthor(doc *goquery.Document) string {
	var author string
	doc.Find(".author, .byline, .entry-author, [rel='author']").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if text := strings.TrimSpace(s.Text()); text != "" {
			author = text
			return false
		}
		return true
	})
	return author
}

func extractImages(doc *goquery.Document, base *url.URL) []domain.ArticleImage {
	var images []domain.ArticleImage
	seen := make(map[string]struct{})
	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src := strings.TrimSpace(s.AttrOr("src", ""))
		if src == "" || strings.HasPrefix(src, "data:") {
			return
		}
		abs := absoluteURL(base, src)
		if abs == "" {
			return
		}
		if _, dup := seen[abs]; dup {
			return
		}
		seen[abs] = struct{}{}
		images = append(images, domain.ArticleImage{
			URL: abs,
			Alt: strings.TrimSpace(s.AttrOr("alt", "")),
		})
	})
	return images
}

func extractTopImage(doc *goquery.Document, base *url.URL) string {
	if og, ok := doc.Find("meta[property='og:image']").First().Attr("content"); ok {
		if abs := absoluteURL(base, strings.TrimSpace(og)); abs != "" {
			return abs
		}
	}

	imgs := extractImages(doc, base)
	if len(imgs) > 0 {
		return imgs[0].URL
	}
	return ""
}

func absoluteURL(base *url.URL, raw string) string {
	ref, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
