package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vivainio/loggoblin/internal/config"
	"github.com/vivainio/loggoblin/internal/store"
)

var subCmd = &cobra.Command{
	Use:   "sub",
	Short: "Subscribe to log groups",
	Long: `Pick log groups from the group list with a fuzzy multi-select and
add them to the subscription file. The subscription file is kept
sorted and free of duplicates; 'sync' works off this file.

Examples:
  loggoblin sub
  loggoblin -p staging sub`,
	Args: cobra.NoArgs,
	RunE: runSub,
}

func init() {
	rootCmd.AddCommand(subCmd)
}

func runSub(cmd *cobra.Command, args []string) error {
	profile := viper.GetString("profile")
	paths := config.NewPaths(profile)

	groups, err := store.ReadList(paths.GroupsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("no group list at %s, run 'loggoblin groups' first", paths.GroupsFile)
		}
		return err
	}

	selected, err := newPicker().PickMulti("Select log groups to subscribe", groups)
	if err != nil {
		return err
	}

	merged, err := store.MergeList(paths.SubsFile, selected)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Subscribed to %d groups (%d total) in %s\n",
		len(selected), len(merged), paths.SubsFile)
	return nil
}
