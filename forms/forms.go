// Package forms provides huh-based prompts for collecting run parameters.
package forms

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/user/ytclip-cli/pkg/timeutil"
)

// NewURLForm creates a huh form prompting for the video URL.
// The result pointer is bound to the input value.
func NewURLForm(url *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Video URL").
				Description("Address of the video to download").
				Value(url).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("URL is required")
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}

// NewNameForm creates a huh form prompting for the output filename.
// ".mp4" is appended later if the name has no extension.
func NewNameForm(name *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output filename").
				Description("e.g. video.mp4").
				Value(name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("filename is required")
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}

// NewRangeForm creates a huh form prompting for the clip start and end times.
// Both fields re-validate until a strict HH:MM:SS timestamp is entered, and
// the end time must fall after the start time.
func NewRangeForm(start, end *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Start time").
				Description("HH:MM:SS format").
				Value(start).
				Validate(timeutil.ValidateTimestamp),

			huh.NewInput().
				Title("End time").
				Description("HH:MM:SS format, after the start time").
				Value(end).
				Validate(func(s string) error {
					if err := timeutil.ValidateTimestamp(s); err != nil {
						return err
					}
					if duration, err := timeutil.Duration(*start, s); err == nil && duration <= 0 {
						return fmt.Errorf("end time must be after start time %s", *start)
					}
					return nil
				}),
		),
	).WithTheme(Theme())
}

// NewProceedForm creates a huh confirm form asking whether to continue despite
// missing dependencies. The result pointer is bound to the confirm value.
func NewProceedForm(proceed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Some dependencies are missing").
				Description("The run may fail without them. Proceed anyway?").
				Affirmative("Yes, proceed").
				Negative("No, exit").
				Value(proceed),
		),
	).WithTheme(Theme())
}
