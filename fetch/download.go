package fetch

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
)

// DownloadFile streams the resource at url into the file at dest,
// creating parent directories as needed, and returns the number of
// bytes written. Non-2xx responses are an error.
func (c *Client) DownloadFile(ctx context.Context, url, dest string) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := c.Do(ctx, req)
	if err != nil {
		if resp != nil {
			drainResponseBody(resp)
		}
		return 0, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer drainResponseBody(resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return 0, fmt.Errorf("fetching %s: unexpected status %d", url, resp.StatusCode)
	}

	if dir := filepath.Dir(dest); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return 0, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	out, err := os.Create(dest)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", dest, err)
	}

	written, err := io.Copy(out, resp.Body)
	if closeErr := out.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return written, fmt.Errorf("writing %s: %w", dest, err)
	}

	c.logger.DebugContext(ctx, "file downloaded",
		slog.String("operation", "fetch.DownloadFile"),
		slog.String("url", url),
		slog.String("dest", dest),
		slog.Int64("bytes", written),
	)
	return written, nil
}
