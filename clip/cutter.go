// Package clip extracts time-bounded clips from video files with ffmpeg.
package clip

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/user/ytclip-cli/pkg/timeutil"
)

// FFmpeg encoding settings for the re-encode tier
const (
	VideoCodec   = "libx264"
	VideoCRF     = "23"
	VideoPreset  = "medium"
	AudioCodec   = "aac"
	AudioBitrate = "128k"

	FFmpegCommand = "ffmpeg"
)

// Cutter extracts clips by running ffmpeg with a ladder of fallback command
// variants, from strictest to loosest.
type Cutter struct {
	// run executes one ffmpeg invocation and returns its combined output;
	// replaced in tests.
	run func(ctx context.Context, args []string) (string, error)
}

// New creates a Cutter backed by the ffmpeg binary on PATH.
func New() *Cutter {
	return &Cutter{run: runFFmpeg}
}

// TierArgs returns the ffmpeg argument lists for each fallback tier, in the
// order they are attempted:
//  1. re-encode with fixed codecs, quality and preset
//  2. stream copy (fast, but cut points may not land on keyframes)
//  3. time range only, ffmpeg defaults for everything else
func TierArgs(inputPath, outputPath string, startSec, durationSec int) [][]string {
	start := strconv.Itoa(startSec)
	duration := strconv.Itoa(durationSec)

	return [][]string{
		{
			"-y",
			"-ss", start,
			"-i", inputPath,
			"-t", duration,
			"-c:v", VideoCodec,
			"-crf", VideoCRF,
			"-preset", VideoPreset,
			"-c:a", AudioCodec,
			"-b:a", AudioBitrate,
			outputPath,
		},
		{
			"-y",
			"-ss", start,
			"-i", inputPath,
			"-t", duration,
			"-c", "copy",
			outputPath,
		},
		{
			"-y",
			"-ss", start,
			"-i", inputPath,
			"-t", duration,
			outputPath,
		},
	}
}

// Cut extracts the range [start, end) from inputPath into outputPath. Both
// timestamps must be strict HH:MM:SS. Tiers are attempted in fixed order and
// the first zero exit wins; each failing tier's error output is printed before
// the next attempt. An error is returned only when every tier fails.
func (c *Cutter) Cut(ctx context.Context, inputPath, outputPath, start, end string) error {
	startSec, err := timeutil.ParseTimestamp(start)
	if err != nil {
		return fmt.Errorf("invalid start time: %w", err)
	}

	duration, err := timeutil.Duration(start, end)
	if err != nil {
		return err
	}
	if duration <= 0 {
		return fmt.Errorf("invalid time range: start=%s, end=%s", start, end)
	}

	tiers := TierArgs(inputPath, outputPath, startSec, duration)
	for i, args := range tiers {
		fmt.Printf("Attempt %d: running ffmpeg...\n", i+1)

		output, err := c.run(ctx, args)
		if err == nil {
			fmt.Printf("Successfully cut video to %s\n", outputPath)
			return nil
		}

		fmt.Printf("Attempt %d failed: %v\n", i+1, err)
		if output != "" {
			fmt.Printf("ffmpeg error output: %s\n", output)
		}
	}

	return fmt.Errorf("all %d cutting attempts failed", len(tiers))
}

func runFFmpeg(ctx context.Context, args []string) (string, error) {
	cmd := exec.CommandContext(ctx, FFmpegCommand, args...)

	var out bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &out

	if err := cmd.Run(); err != nil {
		return out.String(), err
	}
	return out.String(), nil
}
