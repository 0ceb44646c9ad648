package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteBatchWithSharedHeader(t *testing.T) {
	var buf bytes.Buffer

	err := New(&buf).WriteBatch(
		map[string]any{"env": "prod"},
		[]string{"10:00:01 info\t{}", "10:00:02 error\t{}"},
	)
	if err != nil {
		t.Fatalf("WriteBatch() error = %v", err)
	}

	got := buf.String()
	want := "<SHARED> {\n  \"env\": \"prod\"\n}\n\n10:00:01 info\t{}\n10:00:02 error\t{}\n"
	if got != want {
		t.Errorf("WriteBatch() = %q, want %q", got, want)
	}
}

func TestWriteBatchWithoutSharedHeader(t *testing.T) {
	var buf bytes.Buffer

	err := New(&buf).WriteBatch(nil, []string{"10:00:01 plain line"})
	if err != nil {
		t.Fatalf("WriteBatch() error = %v", err)
	}

	got := buf.String()
	if strings.Contains(got, "<SHARED>") {
		t.Errorf("empty shared fields must not emit a header: %q", got)
	}
	if got != "10:00:01 plain line\n" {
		t.Errorf("WriteBatch() = %q", got)
	}
}

func TestWriteBatchPreservesLineOrder(t *testing.T) {
	var buf bytes.Buffer

	lines := []string{"c", "a", "b"}
	if err := New(&buf).WriteBatch(nil, lines); err != nil {
		t.Fatalf("WriteBatch() error = %v", err)
	}

	if buf.String() != "c\na\nb\n" {
		t.Errorf("batch order not preserved: %q", buf.String())
	}
}
