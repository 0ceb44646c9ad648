package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vivainio/loggoblin/internal/config"
	"github.com/vivainio/loggoblin/internal/store"
)

var groupsCmd = &cobra.Command{
	Use:     "groups",
	Aliases: []string{"ls"},
	Short:   "List all log groups",
	Long: `Fetch every log group name from CloudWatch Logs and write them to
the group list file, one per line. Run this before 'sub' so there is
something to pick from.

Examples:
  loggoblin groups
  loggoblin -p staging groups`,
	Args: cobra.NoArgs,
	RunE: runGroups,
}

func init() {
	rootCmd.AddCommand(groupsCmd)
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	profile := viper.GetString("profile")

	src, err := newSource(ctx, profile)
	if err != nil {
		return err
	}

	groups, err := src.ListGroups(ctx)
	if err != nil {
		return err
	}

	paths := config.NewPaths(profile)
	if err := store.WriteList(paths.GroupsFile, groups); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Written %d groups to %s\n", len(groups), paths.GroupsFile)
	return nil
}
