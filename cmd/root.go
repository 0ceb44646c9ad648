package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/vivainio/loggoblin/internal/picker"
	"github.com/vivainio/loggoblin/internal/source"
	"github.com/vivainio/loggoblin/internal/source/cloudwatch"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "loggoblin",
	Short: "A CloudWatch Logs sync and rendering helper",
	Long: `Loggoblin pulls log events from CloudWatch Logs and writes them to
disk in a compact, human-scannable form.

Fields carrying the same value on every line of a batch are factored
out into a single <SHARED> header, chosen "zoom" fields are surfaced
first on each line, and noisy timestamp/GUID prefixes are trimmed.

Examples:
  loggoblin groups
  loggoblin sub
  loggoblin sync
  loggoblin --zoom level,tenant,message sync`,
}

// Execute is called by main.main(). It runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// Constructors for the external collaborators. Tests swap these for
// stubs.
var (
	newSource = func(ctx context.Context, profile string) (source.Source, error) {
		return cloudwatch.New(ctx, profile)
	}
	newPicker = func() picker.Picker {
		return picker.Fuzzy{}
	}
)

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.loggoblin.yaml)")
	rootCmd.PersistentFlags().String("zoom", "", "zoom in on json keys, e.g. --zoom level,tenant,message")
	rootCmd.PersistentFlags().StringP("profile", "p", "", "AWS profile to use")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	_ = viper.BindPFlag("zoom", rootCmd.PersistentFlags().Lookup("zoom"))
	_ = viper.BindPFlag("profile", rootCmd.PersistentFlags().Lookup("profile"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error finding home directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigName(".loggoblin")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("LOGGOBLIN")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("zoom", "")
	viper.SetDefault("profile", "")
	viper.SetDefault("verbose", false)
	viper.SetDefault("sync_dir", "")

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}
