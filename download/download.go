// Package download fetches remote videos through yt-dlp.
package download

import (
	"context"
	"fmt"
	"os"

	"github.com/lrstanley/go-ytdlp"
)

// FormatSelector prefers a combined mp4 video + m4a audio download and falls
// back through progressively looser quality selectors.
const FormatSelector = "bestvideo[ext=mp4]+bestaudio[ext=m4a]/best[ext=mp4]/best"

// Fetcher downloads a video to a target path via yt-dlp.
type Fetcher struct {
	// run performs the actual yt-dlp invocation; replaced in tests.
	run func(ctx context.Context, url, dest string) error
}

// New creates a Fetcher backed by the yt-dlp command.
func New() *Fetcher {
	return &Fetcher{run: runYtdlp}
}

// Fetch downloads url and muxes the best available streams into dest.
// It returns the path to the written file, or an empty path and an error when
// the download fails or the expected file is missing after the run. Partial
// files are left in place for inspection.
func (f *Fetcher) Fetch(ctx context.Context, url, dest string) (string, error) {
	if err := f.run(ctx, url, dest); err != nil {
		return "", fmt.Errorf("download failed: %w", err)
	}

	if _, err := os.Stat(dest); err != nil {
		return "", fmt.Errorf("download reported success but no file was created at %s", dest)
	}

	return dest, nil
}

func runYtdlp(ctx context.Context, url, dest string) error {
	dl := ytdlp.New().
		Format(FormatSelector).
		ForceOverwrites().
		NoPlaylist().
		Output(dest)

	result, err := dl.Run(ctx, url)
	if err != nil {
		return err
	}

	if info, infoErr := result.GetExtractedInfo(); infoErr == nil && len(info) > 0 && info[0].Title != nil {
		fmt.Printf("Downloaded video: %s\n", *info[0].Title)
	}

	return nil
}
