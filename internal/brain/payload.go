package brain

// EntryPayload builds the JSON body for an entry creation. The Brain service
// auto-classifies captured text, so title/type/domain are only sent when the
// caller actually supplied them; a null would read as an explicit override
// downstream. The service owns IDs, timestamps, and initial status.
func EntryPayload(text, title, typ, domain, source string) map[string]any {
	if source == "" {
		source = DefaultSource
	}
	payload := map[string]any{
		"text":   text,
		"source": source,
	}
	if title != "" {
		payload["title"] = title
	}
	if typ != "" {
		payload["type"] = typ
	}
	if domain != "" {
		payload["domain"] = domain
	}
	return payload
}
