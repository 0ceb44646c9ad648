package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vivainio/loggoblin/internal/analyzer"
	"github.com/vivainio/loggoblin/internal/config"
	"github.com/vivainio/loggoblin/internal/logger"
	"github.com/vivainio/loggoblin/internal/output"
	"github.com/vivainio/loggoblin/internal/render"
	"github.com/vivainio/loggoblin/internal/source"
	"github.com/vivainio/loggoblin/internal/store"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Sync logs to disk",
	Long: `Pick subscribed log groups with a fuzzy multi-select and write their
recent streams to disk, one rendered file per stream. Each file gets a
<SHARED> header for fields identical across the whole batch, and each
line surfaces the zoom fields first.

A failure syncing one group is reported and does not stop the others.

Examples:
  loggoblin sync
  loggoblin --zoom level,tenant,message sync
  loggoblin -p staging sync`,
	Args: cobra.NoArgs,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	profile := viper.GetString("profile")
	log := logger.Get(viper.GetBool("verbose"))

	paths := config.NewPaths(profile)
	if dir := viper.GetString("sync_dir"); dir != "" {
		paths.SyncDir = dir
	}

	subs, err := store.ReadList(paths.SubsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no subscriptions at %s, run 'loggoblin sub' first", paths.SubsFile)
		}
		return err
	}

	groups, err := newPicker().PickMulti("Select log groups to sync", subs)
	if err != nil {
		return err
	}

	src, err := newSource(ctx, profile)
	if err != nil {
		return err
	}

	// A non-empty --zoom overrides the per-batch guess.
	var zoomOverride []string
	if z := viper.GetString("zoom"); z != "" {
		zoomOverride = strings.Split(z, ",")
	}

	for _, group := range groups {
		if err := syncGroup(ctx, src, paths, group, zoomOverride, log); err != nil {
			log.Errorf("Failed to sync %s: %v", group, err)
		}
	}

	return nil
}

// syncGroup writes one rendered file per stream of the group. Streams
// arrive newest first, so the first stream without events ends the
// group.
func syncGroup(ctx context.Context, src source.Source, paths config.Paths, group string, zoomOverride []string, log *logger.Logger) error {
	streams, err := src.ListStreams(ctx, group)
	if err != nil {
		return err
	}

	anlz := analyzer.New()
	for i, stream := range streams {
		raw, err := src.FetchEvents(ctx, group, stream.Name)
		if err != nil {
			return err
		}
		if len(raw) == 0 {
			break
		}

		path := paths.StreamLogPath(group, i+1, stream.CreationMillis)
		log.Infof("Syncing %s, %d events", path, len(raw))

		res := anlz.Analyze(raw)
		anlz.RemoveShared(res.Events, res.Shared)

		zoom := zoomOverride
		if zoom == nil {
			zoom = res.ZoomGuess
		}

		lines := make([]string, 0, len(res.Events))
		for _, ev := range res.Events {
			lines = append(lines, render.Line(ev, zoom))
		}

		f, err := store.CreateFile(path)
		if err != nil {
			return err
		}
		if err := output.New(f).WriteBatch(res.Shared, lines); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
	}

	return nil
}
