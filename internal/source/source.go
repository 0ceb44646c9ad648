// Package source defines the log retrieval interface.
//
// The Source interface abstracts where log events come from so the
// commands can be tested with canned stubs. The real implementation
// lives in the cloudwatch subpackage.
package source

import (
	"context"

	"github.com/vivainio/loggoblin/internal/config"
)

// Stream identifies one log stream within a group.
type Stream struct {
	Name           string
	CreationMillis int64
}

// Source supplies log groups, streams, and raw events. Calls may fail
// with transport or auth errors; the context cancels in-flight
// requests.
type Source interface {
	// ListGroups returns every log group name.
	ListGroups(ctx context.Context) ([]string, error)

	// ListStreams returns the streams of a group, most recent event
	// first.
	ListStreams(ctx context.Context, group string) ([]Stream, error)

	// FetchEvents returns one batch of events for a stream, in the
	// store's order.
	FetchEvents(ctx context.Context, group, stream string) ([]config.RawEvent, error)
}
