// ABOUTME: Primary article extraction via an external worker process
// ABOUTME: Writes the URL to stdin, reads one JSON document from stdout
package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"credibility-checker/domain"
)

// workerPayload mirrors the JSON document the extraction worker prints.
type workerPayload struct {
	Success     bool     `json:"success"`
	Error       string   `json:"error"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Authors     []string `json:"authors"`
	PublishDate string   `json:"publish_date"`
	TopImage    string   `json:"top_image"`
	Images      []string `json:"images"`
	Source      string   `json:"source"`
	URL         string   `json:"url"`
}

type primaryExtractor struct {
	command string
	args    []string
	timeout time.Duration
	logger  *slog.Logger
}

// NewPrimaryExtractor wraps the external extraction worker. The worker is
// started per request, given the URL on stdin, and killed when the timeout
// elapses.
func NewPrimaryExtractor(command string, args []string, timeout time.Duration, logger *slog.Logger) Extractor {
	return &primaryExtractor{
		command: command,
		args:    args,
		timeout: timeout,
		logger:  logger,
	}
}

func (p *primaryExtractor) Extract(ctx context.Context, url string) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.command, p.args...) // #nosec G204 - command comes from operator config
	cmd.Stdin = strings.NewReader(url + "\n")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Without a wait delay a child that inherits the pipes can block Wait
	// past the kill.
	cmd.WaitDelay = time.Second

	start := time.Now()
	err := cmd.Run()
	elapsed := time.Since(start)

	if ctx.Err() == context.DeadlineExceeded {
		p.logger.Warn("extraction worker timed out",
			slog.String("url", url),
			slog.Duration("elapsed", elapsed))
		return nil, domain.NewFetchError(domain.FetchTimeout, url, context.DeadlineExceeded)
	}

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			p.logger.Warn("extraction worker exited nonzero",
				slog.String("url", url),
				slog.Int("exit_code", exitErr.ExitCode()),
				slog.String("stderr", truncateForLog(stderr.String())))
		} else {
			p.logger.Warn("extraction worker failed to start",
				slog.String("url", url),
				slog.String("error", err.Error()))
		}
		return nil, domain.NewFetchError(domain.FetchProcessFailure, url, err)
	}

	var payload workerPayload
	if err := json.Unmarshal(stdout.Bytes(), &payload); err != nil {
		return nil, domain.NewFetchError(domain.FetchParseFailure, url, err)
	}

	if !payload.Success {
		return nil, domain.NewFetchError(domain.FetchProcessFailure, url,
			errors.New(workerErrorMessage(payload.Error)))
	}

	if strings.TrimSpace(payload.Content) == "" {
		return nil, domain.NewFetchError(domain.FetchProcessFailure, url,
			errors.New("worker returned empty content"))
	}

	article := &domain.Article{
		Title:    payload.Title,
		Content:  payload.Content,
		Source:   payload.Source,
		URL:      payload.URL,
		Author:   strings.Join(payload.Authors, ", "),
		TopImage: payload.TopImage,
	}
	if article.URL == "" {
		article.URL = url
	}

	for _, img := range payload.Images {
		article.Images = append(article.Images, domain.ArticleImage{URL: img})
	}

	if payload.PublishDate != "" {
		if ts, err := dateparse.ParseAny(payload.PublishDate); err == nil {
			article.PublishedAt = &ts
		}
	}

	p.logger.Info("extraction worker succeeded",
		slog.String("url", url),
		slog.Duration("elapsed", elapsed),
		slog.Int("content_length", len(article.Content)))

	return article, nil
}

func workerErrorMessage(msg string) string {
	if msg == "" {
		return "worker reported failure without detail"
	}
	return msg
}

func truncateForLog(s string) string {
	const max = 512
	s = strings.TrimSpace(s)
	if len(s) > max {
		return s[:max] + "..."
	}
	return s
}
