package brain

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// Placeholders rendered for entry fields the service did not populate.
const (
	placeholderTitle  = "Untitled"
	placeholderType   = "unknown"
	placeholderDomain = "uncategorized"
	placeholderValue  = "unknown"
	placeholderText   = "(empty)"
)

func FormatCapture(res CaptureResult) string {
	return fmt.Sprintf("Thought saved to Brain.\nID: %s\nStatus: %s\n\nAuto-classification in progress...", res.ID, res.Status)
}

func FormatQuickCapture(res CaptureResult) string {
	return fmt.Sprintf("Thought captured.\nID: %s\n\nAuto-classification in progress...", res.ID)
}

// FormatSearchResults renders a search response as a bulleted list, truncated
// to limit. The search endpoint occasionally returns a bare object instead of
// a list; it is treated as a one-element result set.
func FormatSearchResults(res gjson.Result, limit int) string {
	entries := normalizeList(res)
	if len(entries) == 0 {
		return "No results found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d result(s):\n\n", len(entries))
	for i, entry := range entries {
		if limit > 0 && i >= limit {
			break
		}
		writeSummary(&b, entry, false)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatEntryList renders a recent-entries response as a bulleted list.
func FormatEntryList(res gjson.Result) string {
	entries := normalizeList(res)
	if len(entries) == 0 {
		return "No entries found."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recent entries (%d):\n\n", len(entries))
	for _, entry := range entries {
		writeSummary(&b, entry, true)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatEntryDetail renders the full detail view of a single entry. An empty
// response means the entry does not exist.
func FormatEntryDetail(res gjson.Result, id string) string {
	if !res.Exists() || res.Type == gjson.Null || (res.IsObject() && len(res.Map()) == 0) {
		return fmt.Sprintf("Entry %s not found.", id)
	}

	lines := []string{
		"Title: " + field(res, "title", placeholderTitle),
		"ID: " + res.Get("id").String(),
		"Type: " + field(res, "type", placeholderType),
		"Domain: " + field(res, "domain", placeholderDomain),
		"Status: " + field(res, "status", placeholderValue),
		"Source: " + field(res, "source", placeholderValue),
		"Created: " + field(res, "created", placeholderValue),
		"Updated: " + field(res, "updated", placeholderValue),
		fmt.Sprintf("Confidence: %v", confidence(res)),
		"",
		"Content:",
		field(res, "raw_text", placeholderText),
	}
	return strings.Join(lines, "\n")
}

// normalizeList coerces a response into a slice of entries. A single object
// becomes a one-element slice; null or empty input becomes nil.
func normalizeList(res gjson.Result) []gjson.Result {
	switch {
	case res.IsArray():
		return res.Array()
	case res.IsObject():
		if len(res.Map()) == 0 {
			return nil
		}
		return []gjson.Result{res}
	default:
		return nil
	}
}

func writeSummary(b *strings.Builder, entry gjson.Result, withStatus bool) {
	fmt.Fprintf(b, "• %s\n", field(entry, "title", placeholderTitle))
	fmt.Fprintf(b, "  ID: %s\n", entry.Get("id").String())
	meta := fmt.Sprintf("  Type: %s | Domain: %s",
		field(entry, "type", placeholderType),
		field(entry, "domain", placeholderDomain))
	if withStatus {
		meta += " | Status: " + field(entry, "status", placeholderValue)
	}
	fmt.Fprintln(b, meta)
	fmt.Fprintf(b, "  Created: %s\n\n", field(entry, "created", placeholderValue))
}

func confidence(entry gjson.Result) any {
	if v := entry.Get("confidence"); v.Exists() && v.Type != gjson.Null {
		return v.Value()
	}
	return 0
}

func field(entry gjson.Result, key, fallback string) string {
	if v := entry.Get(key); v.Exists() && v.Type != gjson.Null && v.String() != "" {
		return v.String()
	}
	return fallback
}
