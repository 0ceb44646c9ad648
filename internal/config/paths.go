package config

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// Paths locates the flat files the tool reads and writes. A non-empty
// profile prefixes every name so different AWS profiles keep separate
// state side by side.
type Paths struct {
	GroupsFile string
	SubsFile   string
	SyncDir    string
}

// NewPaths builds the file locations for a profile. An empty profile
// uses the unprefixed defaults.
func NewPaths(profile string) Paths {
	if profile == "" {
		return Paths{
			GroupsFile: "gob_groups.txt",
			SubsFile:   "gob_subs.txt",
			SyncDir:    "gobs",
		}
	}
	return Paths{
		GroupsFile: profile + "_gob_groups.txt",
		SubsFile:   profile + "_gob_subs.txt",
		SyncDir:    profile + "_gobs",
	}
}

// StreamLogPath returns the output file for one stream: the sanitized
// group name as a directory, then the stream's position and creation
// hour as the file name.
func (p Paths) StreamLogPath(group string, index int, creationMillis int64) string {
	stamp := time.UnixMilli(creationMillis).Format("2006-01-02T15")
	name := fmt.Sprintf("%d__%s.log", index, stamp)
	return filepath.Join(p.SyncDir, SafeGroupName(group), name)
}

// SafeGroupName turns a log group name into a filesystem-safe path
// segment. Lambda groups lose their "/aws/lambda/" prefix entirely.
func SafeGroupName(group string) string {
	s := strings.ReplaceAll(group, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	return strings.ReplaceAll(s, "_aws_lambda_", "")
}
