package cmd

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/user/ytclip-cli/forms"
	"github.com/user/ytclip-cli/pkg/fileutil"
	"github.com/user/ytclip-cli/pkg/timeutil"
)

// Request holds the validated parameters for a single run.
// Immutable once built by collectRequest.
type Request struct {
	URL          string
	Name         string
	Start        string
	End          string
	SkipDownload bool
	SkipCut      bool
}

// rootFlags carries the raw values of the root command's flags.
type rootFlags struct {
	url          string
	name         string
	start        string
	end          string
	skipDownload bool
	skipCut      bool
}

// stdinIsTerminal reports whether interactive prompts can be shown.
func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// collectRequest builds a validated Request from the given flags, prompting
// for missing values when interactive. Prompted values re-validate until
// accepted; flag values are validated once and a malformed one fails the run
// instead of re-prompting.
//
// The URL is not required under --skip-download, and the time range is not
// required under --skip-cut.
func collectRequest(flags rootFlags, interactive bool) (*Request, error) {
	req := &Request{
		URL:          flags.url,
		SkipDownload: flags.skipDownload,
		SkipCut:      flags.skipCut,
	}

	if req.URL == "" && !req.SkipDownload {
		if !interactive {
			return nil, fmt.Errorf("--url is required")
		}
		if err := forms.NewURLForm(&req.URL).Run(); err != nil {
			return nil, err
		}
	}

	name := flags.name
	if name == "" {
		if !interactive {
			return nil, fmt.Errorf("--name is required")
		}
		if err := forms.NewNameForm(&name).Run(); err != nil {
			return nil, err
		}
	}
	req.Name = fileutil.NormalizeName(name)

	if req.SkipCut {
		return req, nil
	}

	req.Start = flags.start
	req.End = flags.end
	if req.Start == "" || req.End == "" {
		if !interactive {
			return nil, fmt.Errorf("--start and --end are required")
		}
		// Prompt for the whole range; provided values are pre-filled.
		if err := forms.NewRangeForm(&req.Start, &req.End).Run(); err != nil {
			return nil, err
		}
	}

	if err := timeutil.ValidateTimestamp(req.Start); err != nil {
		return nil, fmt.Errorf("invalid start time: %w", err)
	}
	if err := timeutil.ValidateTimestamp(req.End); err != nil {
		return nil, fmt.Errorf("invalid end time: %w", err)
	}
	duration, err := timeutil.Duration(req.Start, req.End)
	if err != nil {
		return nil, err
	}
	if duration <= 0 {
		return nil, fmt.Errorf("end time %s must be after start time %s", req.End, req.Start)
	}

	return req, nil
}
