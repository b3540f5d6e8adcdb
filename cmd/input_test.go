package cmd

import (
	"strings"
	"testing"
)

// All tests run with interactive=false so no prompts are attempted.

func TestCollectRequestFromFlags(t *testing.T) {
	req, err := collectRequest(rootFlags{
		url:   "https://example.com/watch?v=abc",
		name:  "clip",
		start: "00:00:05",
		end:   "00:00:15",
	}, false)
	if err != nil {
		t.Fatalf("collectRequest failed: %v", err)
	}

	if req.URL != "https://example.com/watch?v=abc" {
		t.Errorf("unexpected URL: %q", req.URL)
	}
	if req.Name != "clip.mp4" {
		t.Errorf("expected normalized name clip.mp4, got %q", req.Name)
	}
	if req.Start != "00:00:05" || req.End != "00:00:15" {
		t.Errorf("unexpected range: %q - %q", req.Start, req.End)
	}
}

func TestCollectRequestMissingURL(t *testing.T) {
	_, err := collectRequest(rootFlags{
		name:  "clip.mp4",
		start: "00:00:05",
		end:   "00:00:15",
	}, false)
	if err == nil {
		t.Fatal("expected error for missing URL")
	}
	if !strings.Contains(err.Error(), "--url") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCollectRequestSkipDownloadNeedsNoURL(t *testing.T) {
	req, err := collectRequest(rootFlags{
		name:         "existing.mp4",
		start:        "00:00:05",
		end:          "00:00:15",
		skipDownload: true,
	}, false)
	if err != nil {
		t.Fatalf("collectRequest failed: %v", err)
	}
	if req.URL != "" {
		t.Errorf("expected empty URL, got %q", req.URL)
	}
	if !req.SkipDownload {
		t.Error("SkipDownload flag not carried over")
	}
}

func TestCollectRequestSkipCutNeedsNoRange(t *testing.T) {
	req, err := collectRequest(rootFlags{
		url:     "https://example.com/v",
		name:    "video",
		skipCut: true,
	}, false)
	if err != nil {
		t.Fatalf("collectRequest failed: %v", err)
	}
	if req.Start != "" || req.End != "" {
		t.Errorf("expected empty range under skip-cut, got %q - %q", req.Start, req.End)
	}
}

func TestCollectRequestRejectsMalformedFlagTimes(t *testing.T) {
	cases := []rootFlags{
		{url: "u", name: "n", start: "0:00:05", end: "00:00:15"},
		{url: "u", name: "n", start: "00:00:05", end: "25:00:00"},
		{url: "u", name: "n", start: "five", end: "00:00:15"},
	}
	for _, flags := range cases {
		if _, err := collectRequest(flags, false); err == nil {
			t.Errorf("expected error for flags %+v", flags)
		}
	}
}

func TestCollectRequestRejectsInvertedRange(t *testing.T) {
	_, err := collectRequest(rootFlags{
		url:   "u",
		name:  "n",
		start: "00:00:15",
		end:   "00:00:05",
	}, false)
	if err == nil {
		t.Fatal("expected error for end before start")
	}
	if !strings.Contains(err.Error(), "after start") {
		t.Errorf("unexpected error: %v", err)
	}

	_, err = collectRequest(rootFlags{
		url:   "u",
		name:  "n",
		start: "00:00:05",
		end:   "00:00:05",
	}, false)
	if err == nil {
		t.Fatal("expected error for zero-length range")
	}
}

func TestCollectRequestMissingRange(t *testing.T) {
	_, err := collectRequest(rootFlags{url: "u", name: "n"}, false)
	if err == nil {
		t.Fatal("expected error for missing range")
	}
	if !strings.Contains(err.Error(), "--start and --end") {
		t.Errorf("unexpected error: %v", err)
	}
}
