// Package config provides configuration types and helpers for loggoblin.
package config

// Config holds the application-wide configuration.
type Config struct {
	Profile string `mapstructure:"profile"`
	Zoom    string `mapstructure:"zoom"`
	Verbose bool   `mapstructure:"verbose"`
	SyncDir string `mapstructure:"sync_dir"`
}

// RawEvent is one log record as delivered by the source:
// message text plus its timestamp in epoch milliseconds.
type RawEvent struct {
	Message   string `json:"message"`
	Timestamp int64  `json:"timestamp"`
}

// Event is a RawEvent after classification. Parsed is nil when the
// message was never treated as JSON; it is a non-nil empty map when the
// message was JSON-classified but failed to parse.
type Event struct {
	Message   string
	Timestamp int64
	Parsed    map[string]any
}

// IsJSON reports whether the message is JSON-classified: it starts
// with '{'. This is a syntactic prefilter, not a parse.
func (e Event) IsJSON() bool {
	return len(e.Message) > 0 && e.Message[0] == '{'
}
