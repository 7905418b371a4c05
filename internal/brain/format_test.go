package brain

import (
	"strings"
	"testing"

	"github.com/tidwall/gjson"
)

func TestFormatSearchResults_Empty(t *testing.T) {
	out := FormatSearchResults(gjson.Parse(`[]`), 20)
	if out != "No results found." {
		t.Fatalf("unexpected output %q", out)
	}
	out = FormatSearchResults(gjson.Result{}, 20)
	if out != "No results found." {
		t.Fatalf("null response should format as no results, got %q", out)
	}
}

func TestFormatSearchResults_SingleObjectNormalized(t *testing.T) {
	out := FormatSearchResults(gjson.Parse(`{"id":"abc","title":"One note"}`), 20)
	if !strings.Contains(out, "Found 1 result(s):") {
		t.Fatalf("single object not treated as one-element list: %q", out)
	}
	if !strings.Contains(out, "One note") || !strings.Contains(out, "ID: abc") {
		t.Fatalf("entry fields missing: %q", out)
	}
}

func TestFormatSearchResults_Placeholders(t *testing.T) {
	out := FormatSearchResults(gjson.Parse(`[{"id":"abc","type":null}]`), 20)
	for _, want := range []string{"Untitled", "Type: unknown", "Domain: uncategorized", "Created: unknown"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing placeholder %q in %q", want, out)
		}
	}
}

func TestFormatSearchResults_Truncation(t *testing.T) {
	out := FormatSearchResults(gjson.Parse(`[{"id":"1"},{"id":"2"},{"id":"3"}]`), 2)
	if !strings.Contains(out, "Found 3 result(s):") {
		t.Fatalf("header should count all matches: %q", out)
	}
	if strings.Contains(out, "ID: 3") {
		t.Fatalf("limit not applied: %q", out)
	}
}

func TestFormatEntryList(t *testing.T) {
	out := FormatEntryList(gjson.Parse(`[]`))
	if out != "No entries found." {
		t.Fatalf("unexpected output %q", out)
	}

	out = FormatEntryList(gjson.Parse(`[{"id":"x1","title":"T","status":"inbox"}]`))
	if !strings.Contains(out, "Recent entries (1):") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "Status: inbox") {
		t.Fatalf("list summaries should include status: %q", out)
	}
}

func TestFormatEntryDetail_NotFound(t *testing.T) {
	out := FormatEntryDetail(gjson.Result{}, "missing-id")
	if out != "Entry missing-id not found." {
		t.Fatalf("unexpected output %q", out)
	}
	out = FormatEntryDetail(gjson.Parse(`{}`), "missing-id")
	if out != "Entry missing-id not found." {
		t.Fatalf("empty object should read as not found, got %q", out)
	}
}

func TestFormatEntryDetail_Placeholders(t *testing.T) {
	out := FormatEntryDetail(gjson.Parse(`{"id":"abc-123"}`), "abc-123")
	for _, want := range []string{
		"Title: Untitled",
		"ID: abc-123",
		"Type: unknown",
		"Domain: uncategorized",
		"Status: unknown",
		"Source: unknown",
		"Created: unknown",
		"Updated: unknown",
		"Confidence: 0",
		"Content:\n(empty)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestFormatEntryDetail_FullEntry(t *testing.T) {
	entry := gjson.Parse(`{
		"id": "abc-123",
		"title": "Oil pressure",
		"type": "task",
		"domain": "aviation",
		"status": "triaged",
		"source": "mcp-client",
		"created": "2026-01-02T03:04:05Z",
		"updated": "2026-01-02T03:04:06Z",
		"confidence": 0.92,
		"raw_text": "Remember to check oil pressure"
	}`)
	out := FormatEntryDetail(entry, "abc-123")
	for _, want := range []string{
		"Title: Oil pressure",
		"Type: task",
		"Domain: aviation",
		"Confidence: 0.92",
		"Remember to check oil pressure",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}

func TestFormatCapture(t *testing.T) {
	out := FormatCapture(CaptureResult{ID: "abc-123", Status: "inbox"})
	if !strings.Contains(out, "ID: abc-123") || !strings.Contains(out, "Status: inbox") {
		t.Fatalf("unexpected output %q", out)
	}

	quick := FormatQuickCapture(CaptureResult{ID: "abc-123"})
	if !strings.Contains(quick, "Thought captured.") || !strings.Contains(quick, "ID: abc-123") {
		t.Fatalf("unexpected output %q", quick)
	}
	if strings.Contains(quick, "Status:") {
		t.Fatalf("quick capture should not report status: %q", quick)
	}
}
