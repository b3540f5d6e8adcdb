package deps

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/lrstanley/go-ytdlp"
)

const (
	YtdlpInstallURL  = "https://github.com/yt-dlp/yt-dlp/wiki/Installation"
	FfmpegInstallURL = "https://ffmpeg.org/download.html"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// Status reports the availability of a single dependency.
type Status struct {
	Name       string
	Available  bool
	Detail     string
	InstallURL string
}

// Err returns a DependencyError when the dependency is unavailable, nil otherwise.
func (s Status) Err() error {
	if s.Available {
		return nil
	}
	return &DependencyError{Name: s.Name, InstallURL: s.InstallURL}
}

// CheckYtdlp checks whether yt-dlp is available. If it is not on PATH, a
// best-effort install is attempted through the go-ytdlp installer; an install
// failure is reported in Detail but is never fatal.
func CheckYtdlp(ctx context.Context) Status {
	status := Status{Name: "yt-dlp", InstallURL: YtdlpInstallURL}

	if path, err := exec.LookPath("yt-dlp"); err == nil {
		status.Available = true
		status.Detail = path
		return status
	}

	resolved, err := ytdlp.Install(ctx, nil)
	if err != nil {
		status.Detail = fmt.Sprintf("not installed, and install failed: %v", err)
		return status
	}

	status.Available = true
	status.Detail = "installed to " + resolved.Executable
	return status
}

// CheckFfmpeg checks whether ffmpeg is available by running it with -version
// and checking the exit code. A binary that is missing from PATH and a binary
// that errors are reported with distinct details; both count as unavailable.
func CheckFfmpeg() Status {
	status := Status{Name: "ffmpeg", InstallURL: FfmpegInstallURL}

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		status.Detail = "not found in PATH"
		return status
	}

	if err := exec.Command("ffmpeg", "-version").Run(); err != nil {
		status.Detail = "installed but returned an error"
		return status
	}

	status.Available = true
	return status
}

// CheckAll checks all dependencies and reports whether every one is available
// along with the per-dependency statuses.
func CheckAll(ctx context.Context) (bool, []Status) {
	statuses := []Status{
		CheckYtdlp(ctx),
		CheckFfmpeg(),
	}

	allAvailable := true
	for _, status := range statuses {
		if !status.Available {
			allAvailable = false
		}
	}

	return allAvailable, statuses
}
