package cmd

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/spf13/viper"

	"github.com/vivainio/loggoblin/internal/store"
)

func TestGroupsWritesGroupFile(t *testing.T) {
	viper.Reset()
	chdir(t, t.TempDir())

	withStubs(t, &stubSource{groups: []string{"/aws/lambda/foo", "/ecs/bar"}}, stubPicker{})

	var out bytes.Buffer
	if err := runGroups(newTestCmd(&out), nil); err != nil {
		t.Fatalf("runGroups() error = %v", err)
	}

	groups, err := store.ReadList("gob_groups.txt")
	if err != nil {
		t.Fatalf("reading group file: %v", err)
	}
	want := []string{"/aws/lambda/foo", "/ecs/bar"}
	if !reflect.DeepEqual(groups, want) {
		t.Errorf("group file = %v, want %v", groups, want)
	}

	if !strings.Contains(out.String(), "2 groups") {
		t.Errorf("expected a written-groups message, got %q", out.String())
	}
}

func TestGroupsUsesProfilePrefixedFile(t *testing.T) {
	viper.Reset()
	viper.Set("profile", "staging")
	chdir(t, t.TempDir())

	withStubs(t, &stubSource{groups: []string{"/ecs/bar"}}, stubPicker{})

	var out bytes.Buffer
	if err := runGroups(newTestCmd(&out), nil); err != nil {
		t.Fatalf("runGroups() error = %v", err)
	}

	if _, err := store.ReadList("staging_gob_groups.txt"); err != nil {
		t.Errorf("profile-prefixed group file missing: %v", err)
	}
}
