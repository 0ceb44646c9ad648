// Package analyzer extracts the common structure from a batch of log
// events: it classifies messages as JSON or plain text, guesses which
// fields are worth surfacing first, and factors out fields whose value
// is identical across the whole batch.
package analyzer

import (
	"encoding/json"
	"reflect"

	"github.com/vivainio/loggoblin/internal/config"
)

// zoomPriority lists the keys worth surfacing first on a line, in
// priority order. Only keys present in the sampled message survive.
var zoomPriority = []string{"level", "logLevel", "log_level", "message", "scope", "text", "exception"}

// Result is the outcome of analyzing one batch.
type Result struct {
	// Events holds every event in retrieval order. JSON-classified
	// events carry a parsed map; others have Parsed == nil.
	Events []config.Event

	// ZoomGuess is the guessed zoom field order, empty when the batch
	// has no usable JSON structure.
	ZoomGuess []string

	// Shared maps each field present with an identical value in every
	// parsed event to that value.
	Shared map[string]any
}

// Analyzer computes shared structure over batches of log events.
type Analyzer struct{}

// New creates a new Analyzer.
func New() *Analyzer {
	return &Analyzer{}
}

// Analyze classifies and parses a batch. When the batch has no
// JSON-classified messages, or the longest one does not parse to a
// non-empty object, the batch degenerates to plain rendering: no zoom
// guess, no shared fields, no parsed maps.
func (a *Analyzer) Analyze(raw []config.RawEvent) Result {
	events := make([]config.Event, len(raw))
	for i, r := range raw {
		events[i] = config.Event{Message: r.Message, Timestamp: r.Timestamp}
	}

	// Sample the longest JSON-classified message; ties keep the first.
	longest := -1
	for i, ev := range events {
		if !ev.IsJSON() {
			continue
		}
		if longest < 0 || len(ev.Message) > len(events[longest].Message) {
			longest = i
		}
	}
	if longest < 0 {
		return Result{Events: events}
	}

	representative := safeParse(events[longest].Message)
	if len(representative) == 0 {
		return Result{Events: events}
	}

	var guess []string
	for _, key := range zoomPriority {
		if _, ok := representative[key]; ok {
			guess = append(guess, key)
		}
	}

	acc := newSharedAccumulator()
	for i := range events {
		if !events[i].IsJSON() {
			continue
		}
		events[i].Parsed = safeParse(events[i].Message)
		acc.observe(events[i].Parsed)
	}

	return Result{Events: events, ZoomGuess: guess, Shared: acc.shared()}
}

// RemoveShared deletes every shared key from every event's parsed map.
// Events without a parsed map, or whose map lacks a key, are left
// alone. Calling it twice with the same keys is a no-op the second
// time.
func (a *Analyzer) RemoveShared(events []config.Event, shared map[string]any) {
	if len(shared) == 0 {
		return
	}
	for i := range events {
		if events[i].Parsed == nil {
			continue
		}
		for key := range shared {
			delete(events[i].Parsed, key)
		}
	}
}

// safeParse parses a message into a JSON object, returning a non-nil
// empty map on failure so a malformed message never aborts the batch.
func safeParse(message string) map[string]any {
	var fields map[string]any
	if err := json.Unmarshal([]byte(message), &fields); err != nil || fields == nil {
		return map[string]any{}
	}
	return fields
}

// fieldState tracks one key across the batch. Transitions only move
// forward: unseen to agreed on first sight, agreed to disagreed on the
// first differing value. Disagreed is absorbing.
type fieldState int

const (
	stateUnseen fieldState = iota
	stateAgreed
	stateDisagreed
)

// sharedAccumulator folds parsed maps into per-key agreement state.
// A key is shared only when it was seen, with the same value, in every
// observed map.
type sharedAccumulator struct {
	states   map[string]fieldState
	values   map[string]any
	counts   map[string]int
	observed int
}

func newSharedAccumulator() *sharedAccumulator {
	return &sharedAccumulator{
		states: make(map[string]fieldState),
		values: make(map[string]any),
		counts: make(map[string]int),
	}
}

// observe folds one event's fields into the accumulator. Events with
// empty maps contribute nothing and do not veto agreement.
func (c *sharedAccumulator) observe(fields map[string]any) {
	if len(fields) == 0 {
		return
	}
	c.observed++
	for key, value := range fields {
		c.counts[key]++
		switch c.states[key] {
		case stateUnseen:
			c.states[key] = stateAgreed
			c.values[key] = value
		case stateAgreed:
			if !reflect.DeepEqual(c.values[key], value) {
				c.states[key] = stateDisagreed
				delete(c.values, key)
			}
		}
	}
}

// shared returns the keys that stayed agreed and appeared in every
// observed map.
func (c *sharedAccumulator) shared() map[string]any {
	out := make(map[string]any, len(c.values))
	for key, value := range c.values {
		if c.counts[key] == c.observed {
			out[key] = value
		}
	}
	return out
}
