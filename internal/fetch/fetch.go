// Package fetch downloads paper PDFs. It normalizes arxiv and OpenReview
// URLs to direct PDF links, validates the downloaded bytes carry a PDF
// signature, and retries transient failures with a bounded backoff.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/mwiater/paperchunk/internal/appconfig"
	"github.com/mwiater/paperchunk/internal/logging"
)

const pdfMagic = "%PDF"

// Some hosts reject the default Go user agent.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

var (
	arxivIDRe      = regexp.MustCompile(`arxiv\.org/(?:abs|pdf)/(\d+\.\d+(?:v\d+)?)`)
	openReviewIDRe = regexp.MustCompile(`openreview\.net/pdf\?id=(\w+)`)
)

// NormalizeURL rewrites known paper-repository URLs to direct PDF links.
// arxiv abs/pdf pages become arxiv.org/pdf/<id>.pdf; OpenReview pdf links
// and everything else pass through unchanged.
func NormalizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if m := arxivIDRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("https://arxiv.org/pdf/%s.pdf", m[1])
	}
	return raw
}

// FilenameFromURL derives a reasonable local filename for a paper URL.
func FilenameFromURL(raw string) string {
	if m := arxivIDRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("arxiv_%s.pdf", m[1])
	}
	if m := openReviewIDRe.FindStringSubmatch(raw); m != nil {
		return fmt.Sprintf("openreview_%s.pdf", m[1])
	}
	path := raw
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	if i := strings.LastIndexByte(path, '/'); i >= 0 {
		path = path[i+1:]
	}
	if path == "" {
		return "paper.pdf"
	}
	if !strings.HasSuffix(path, ".pdf") {
		path += ".pdf"
	}
	return path
}

// Download fetches rawURL into outputPath (a directory or a file path; an
// empty value means the current directory) and returns the written file
// path. Transient failures are retried up to cfg.Retries() times; 403 and
// 404 responses and non-PDF payloads fail immediately.
func Download(ctx context.Context, rawURL, outputPath string, cfg appconfig.Config) (string, error) {
	pdfURL := NormalizeURL(rawURL)

	outFile, err := resolveOutputPath(pdfURL, outputPath)
	if err != nil {
		return "", err
	}
	if dir := filepath.Dir(outFile); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("create output directory %s: %w", dir, err)
		}
	}

	client := &http.Client{Timeout: cfg.FetchTimeout()}

	var content []byte
	backoff := retry.WithMaxRetries(uint64(cfg.Retries()), retry.NewConstant(2*time.Second))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		logging.L().Info("downloading", "url", pdfURL)
		body, attemptErr := fetchOnce(ctx, client, pdfURL)
		if attemptErr != nil {
			return attemptErr
		}
		content = body
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("download %s: %w", pdfURL, err)
	}

	if !strings.HasPrefix(string(content[:min(len(content), len(pdfMagic))]), pdfMagic) {
		return "", fmt.Errorf("download %s: content is not a PDF", pdfURL)
	}

	if err := os.WriteFile(outFile, content, 0o644); err != nil {
		return "", fmt.Errorf("write %s: %w", outFile, err)
	}
	logging.L().Info("downloaded", "path", outFile, "bytes", len(content))
	return outFile, nil
}

// fetchOnce performs a single GET. Server-side and transport failures are
// marked retryable; client errors such as 403/404 are terminal.
func fetchOnce(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, retry.RetryableError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("paper not found (404): %s", url)
	case resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("access denied (403): %s", url)
	case resp.StatusCode >= 500:
		return nil, retry.RetryableError(fmt.Errorf("server error %d: %s", resp.StatusCode, url))
	default:
		return nil, fmt.Errorf("unexpected status %d: %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, retry.RetryableError(fmt.Errorf("read response: %w", err))
	}
	return body, nil
}

// resolveOutputPath turns the caller's output hint into a concrete file path.
func resolveOutputPath(pdfURL, outputPath string) (string, error) {
	if outputPath == "" {
		return FilenameFromURL(pdfURL), nil
	}
	info, err := os.Stat(outputPath)
	if err == nil && info.IsDir() {
		return filepath.Join(outputPath, FilenameFromURL(pdfURL)), nil
	}
	if strings.HasSuffix(outputPath, string(os.PathSeparator)) || strings.HasSuffix(outputPath, "/") {
		return filepath.Join(outputPath, FilenameFromURL(pdfURL)), nil
	}
	return outputPath, nil
}
