package config

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestNewPaths(t *testing.T) {
	tests := []struct {
		name    string
		profile string
		want    Paths
	}{
		{
			name:    "default profile",
			profile: "",
			want:    Paths{GroupsFile: "gob_groups.txt", SubsFile: "gob_subs.txt", SyncDir: "gobs"},
		},
		{
			name:    "named profile prefixes everything",
			profile: "staging",
			want:    Paths{GroupsFile: "staging_gob_groups.txt", SubsFile: "staging_gob_subs.txt", SyncDir: "staging_gobs"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewPaths(tt.profile); got != tt.want {
				t.Errorf("NewPaths(%q) = %+v, want %+v", tt.profile, got, tt.want)
			}
		})
	}
}

func TestSafeGroupName(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"/aws/lambda/my-func", "my-func"},
		{"/ecs/my-service", "_ecs_my-service"},
		{`strange\windows\name`, "strange_windows_name"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := SafeGroupName(tt.input); got != tt.want {
			t.Errorf("SafeGroupName(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestStreamLogPath(t *testing.T) {
	p := NewPaths("")

	creation := int64(1704103200000)
	got := p.StreamLogPath("/aws/lambda/my-func", 3, creation)

	stamp := time.UnixMilli(creation).Format("2006-01-02T15")
	want := filepath.Join("gobs", "my-func", fmt.Sprintf("3__%s.log", stamp))
	if got != want {
		t.Errorf("StreamLogPath() = %q, want %q", got, want)
	}
}
