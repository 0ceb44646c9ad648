package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vivainio/loggoblin/internal/config"
	"github.com/vivainio/loggoblin/internal/picker"
	"github.com/vivainio/loggoblin/internal/source"
)

// stubSource serves canned groups, streams, and events.
type stubSource struct {
	groups     []string
	streams    map[string][]source.Stream
	events     map[string][]config.RawEvent
	failGroups map[string]error
}

func (s *stubSource) ListGroups(ctx context.Context) ([]string, error) {
	return s.groups, nil
}

func (s *stubSource) ListStreams(ctx context.Context, group string) ([]source.Stream, error) {
	if err := s.failGroups[group]; err != nil {
		return nil, err
	}
	return s.streams[group], nil
}

func (s *stubSource) FetchEvents(ctx context.Context, group, stream string) ([]config.RawEvent, error) {
	return s.events[group+"/"+stream], nil
}

// stubPicker returns a fixed selection without any interaction.
type stubPicker struct {
	picks []string
	err   error
}

func (p stubPicker) PickMulti(header string, items []string) ([]string, error) {
	return p.picks, p.err
}

// withStubs swaps the collaborator constructors for the duration of a
// test.
func withStubs(t *testing.T, src source.Source, pick picker.Picker) {
	t.Helper()

	origSource, origPicker := newSource, newPicker
	t.Cleanup(func() {
		newSource, newPicker = origSource, origPicker
	})

	newSource = func(ctx context.Context, profile string) (source.Source, error) {
		if src == nil {
			return nil, fmt.Errorf("no source in this test")
		}
		return src, nil
	}
	newPicker = func() picker.Picker {
		return pick
	}
}

// chdir mirrors t.Chdir (Go 1.24+), which is unavailable on this
// toolchain: change into dir and restore the old working directory on
// cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()

	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

func newTestCmd(out *bytes.Buffer) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.SetOut(out)
	return cmd
}
