package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

// setupRunEnv places stub yt-dlp and ffmpeg binaries on PATH and switches to
// a scratch working directory. The ffmpeg stub writes data to its final
// argument so cut output files exist and are nonzero.
func setupRunEnv(t *testing.T) {
	t.Helper()

	binDir := t.TempDir()
	ffmpeg := "#!/bin/sh\nif [ \"$1\" = \"-version\" ]; then exit 0; fi\nfor last; do :; done\necho clipdata > \"$last\"\nexit 0\n"
	if err := os.WriteFile(filepath.Join(binDir, "ffmpeg"), []byte(ffmpeg), 0o755); err != nil {
		t.Fatalf("write ffmpeg stub: %v", err)
	}
	ytdlp := "#!/bin/sh\nexit 0\n"
	if err := os.WriteFile(filepath.Join(binDir, "yt-dlp"), []byte(ytdlp), 0o755); err != nil {
		t.Fatalf("write yt-dlp stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	t.Chdir(t.TempDir())
	flags = rootFlags{}
}

func TestRunSkipDownloadWithExistingFile(t *testing.T) {
	setupRunEnv(t)

	if err := os.MkdirAll(OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir data: %v", err)
	}
	source := filepath.Join(OutputDir, "existing.mp4")
	if err := os.WriteFile(source, []byte("sourcedata"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	rootCmd.SetArgs([]string{
		"--skip-download",
		"--name", "existing.mp4",
		"--start", "00:00:05",
		"--end", "00:00:15",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	cut := filepath.Join(OutputDir, "cut_existing.mp4")
	info, err := os.Stat(cut)
	if err != nil {
		t.Fatalf("expected cut file at %s: %v", cut, err)
	}
	if info.Size() == 0 {
		t.Error("cut file is empty")
	}
}

func TestRunSkipDownloadWithMissingFile(t *testing.T) {
	setupRunEnv(t)

	rootCmd.SetArgs([]string{
		"--skip-download",
		"--name", "missing.mp4",
		"--start", "00:00:05",
		"--end", "00:00:15",
	})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("expected error for missing source file")
	}

	if _, err := os.Stat(filepath.Join(OutputDir, "cut_missing.mp4")); err == nil {
		t.Error("no cut file should be created when the source is missing")
	}
}

func TestRunSkipCutStopsAfterDownloadStage(t *testing.T) {
	setupRunEnv(t)

	if err := os.MkdirAll(OutputDir, 0o755); err != nil {
		t.Fatalf("mkdir data: %v", err)
	}
	source := filepath.Join(OutputDir, "existing.mp4")
	if err := os.WriteFile(source, []byte("sourcedata"), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}

	rootCmd.SetArgs([]string{
		"--skip-download",
		"--skip-cut",
		"--name", "existing.mp4",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if _, err := os.Stat(filepath.Join(OutputDir, "cut_existing.mp4")); err == nil {
		t.Error("no cut file should be created under --skip-cut")
	}
}
