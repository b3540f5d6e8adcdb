package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/huh/spinner"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/user/ytclip-cli/clip"
	"github.com/user/ytclip-cli/deps"
	"github.com/user/ytclip-cli/download"
	"github.com/user/ytclip-cli/forms"
	"github.com/user/ytclip-cli/pkg/fileutil"
	"github.com/user/ytclip-cli/styles"
)

var Version = "0.1.0"

// OutputDir holds the downloaded source video and any cut clips.
const OutputDir = "data"

var flags rootFlags

var rootCmd = &cobra.Command{
	Use:   "ytclip-cli",
	Short: "Download a video and cut a clip from it",
	Long: `ytclip-cli downloads a remote video via yt-dlp and extracts a
time-bounded clip from it via ffmpeg.

Videos are written to the data/ directory; a cut clip is saved next to its
source as cut_<filename>. Missing flags are prompted for when running in a
terminal.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		interactive := stdinIsTerminal()

		fmt.Println(styles.Header.Render("Video Downloader and Cutter"))
		fmt.Println(styles.Header.Render("==========================="))

		// Missing dependencies are a warning here; the run only stops if the
		// user declines to continue.
		allAvailable, statuses := deps.CheckAll(ctx)
		if !allAvailable {
			fmt.Println(styles.Warn.Render("Warning: some dependencies are missing:"))
			printStatuses(statuses)
			if interactive {
				var proceed bool
				if err := forms.NewProceedForm(&proceed).Run(); err != nil {
					return err
				}
				if !proceed {
					return fmt.Errorf("missing dependencies")
				}
			}
		}

		req, err := collectRequest(flags, interactive)
		if err != nil {
			return err
		}

		if err := fileutil.EnsureDir(OutputDir); err != nil {
			return err
		}

		sourcePath := filepath.Join(OutputDir, req.Name)
		if req.SkipDownload {
			if !fileutil.Exists(sourcePath) {
				return fmt.Errorf("file %s does not exist for --skip-download", sourcePath)
			}
			fmt.Printf("Using existing video file: %s\n", sourcePath)
		} else {
			fmt.Println(styles.Info.Render("Downloading video from: " + req.URL))

			fetcher := download.New()
			var fetchErr error
			fetch := func() {
				_, fetchErr = fetcher.Fetch(ctx, req.URL, sourcePath)
			}
			if interactive {
				if err := spinner.New().Title("Downloading " + req.Name + "...").Action(fetch).Run(); err != nil {
					return err
				}
			} else {
				fetch()
			}
			if fetchErr != nil {
				return fetchErr
			}
			reportSize(sourcePath)
		}

		if req.SkipCut {
			fmt.Println(styles.Success.Render("Download complete. Skipping cutting as requested."))
			return nil
		}

		outputPath := filepath.Join(OutputDir, fileutil.CutName(req.Name))
		fmt.Printf("Cutting video from %s to %s\n", req.Start, req.End)

		cutter := clip.New()
		if err := cutter.Cut(ctx, sourcePath, outputPath, req.Start, req.End); err != nil {
			return err
		}
		if !fileutil.Exists(outputPath) {
			return fmt.Errorf("cut reported success but no file was created at %s", outputPath)
		}

		fmt.Println(styles.Success.Render("Video cut successfully. Output saved to: " + outputPath))
		reportSize(outputPath)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("ytclip-cli version %s\n", Version)
	},
}

// reportSize prints the on-disk size of path.
func reportSize(path string) {
	size, err := fileutil.FileSize(path)
	if err != nil {
		return
	}
	fmt.Println(styles.Dim.Render(fmt.Sprintf("File size: %s", humanize.IBytes(uint64(size)))))
}

func init() {
	rootCmd.Flags().StringVar(&flags.url, "url", "", "Video URL to download")
	rootCmd.Flags().StringVar(&flags.name, "name", "", "Output video filename (\".mp4\" appended if missing)")
	rootCmd.Flags().StringVar(&flags.start, "start", "", "Clip start time (HH:MM:SS)")
	rootCmd.Flags().StringVar(&flags.end, "end", "", "Clip end time (HH:MM:SS)")
	rootCmd.Flags().BoolVar(&flags.skipDownload, "skip-download", false, "Skip download and use an existing file in data/")
	rootCmd.Flags().BoolVar(&flags.skipCut, "skip-cut", false, "Skip cutting, download only")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(doctorCmd)
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
