// Package render turns analyzed log events into compact single-line
// text: zoom fields first, the rest as compact JSON, with well-known
// noisy prefixes (ISO timestamps, GUIDs) trimmed away.
package render

import (
	"encoding/json"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/vivainio/loggoblin/internal/config"
)

var (
	// ISO-8601 date-time prefix: 2024-01-01T...
	isoPrefix = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T`)

	// Canonical GUID: 8-4-4-4-12 hex groups.
	guidPrefix = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`)
)

// A GUID literal is 36 characters; one separator follows it.
const guidTrimOffset = 37

// Line renders one event as a display line: a local-time HH:MM:SS
// prefix, then the zoomed or trimmed message text. Zoom keys consumed
// here are removed from the event's parsed map.
func Line(ev config.Event, zoom []string) string {
	text := ev.Message
	if len(zoom) > 0 && len(ev.Parsed) > 0 {
		text = zoomIn(ev, zoom)
	}
	stamp := time.UnixMilli(ev.Timestamp).Format("15:04:05")
	return stamp + " " + Trim(text)
}

// zoomIn pops each zoom key from the parsed map in order. String
// values are emitted raw, absent or null values are skipped, anything
// else is emitted as compact JSON. The remaining fields trail the line
// as one compact JSON object.
func zoomIn(ev config.Event, zoom []string) string {
	var parts []string
	for _, key := range zoom {
		value, ok := ev.Parsed[key]
		if !ok {
			continue
		}
		delete(ev.Parsed, key)
		if value == nil {
			continue
		}
		if s, isString := value.(string); isString {
			parts = append(parts, s)
			continue
		}
		parts = append(parts, compactJSON(value))
	}
	return strings.Join(parts, "\t") + "\t" + compactJSON(ev.Parsed)
}

// Trim strips a leading ISO-8601 timestamp token, or a leading GUID
// plus one separator character, from a line. Input without any
// whitespace is returned unchanged (modulo surrounding space); Trim
// never fails. It is idempotent on already-trimmed input.
func Trim(s string) string {
	trimmed := strings.TrimSpace(s)

	cut := strings.IndexFunc(trimmed, unicode.IsSpace)
	if cut < 0 {
		return trimmed
	}

	head := trimmed[:cut]
	if isoPrefix.MatchString(head) {
		return strings.TrimLeftFunc(trimmed[cut:], unicode.IsSpace)
	}

	if guidPrefix.MatchString(trimmed) {
		if len(trimmed) <= guidTrimOffset {
			return ""
		}
		return trimmed[guidTrimOffset:]
	}

	return trimmed
}

func compactJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(b)
}
