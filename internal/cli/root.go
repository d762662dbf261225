// Package cli provides the command-line interface for drapely.
package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drapely/drapely/internal/version"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "drapely",
	Short: "Seasonal colour analysis for your wardrobe",
	Long: `Drapely tells you which seasonal colour palette a garment colour belongs
to, using perceptual colour science (CIE Lab and the CIEDE2000 metric)
against a curated twelve-season reference dataset.

Classify a garment colour, resolve your own micro-season from a coarse
colour profile, and browse the reference palettes.`,
	Version:      version.Short(),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(seasonCmd)
	rootCmd.AddCommand(paletteCmd)
}

// initConfig reads an optional config file supplying default profile values
// (season, depth, clarity, undertone) for the season command.
func initConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if home, err := homedir.Dir(); err == nil {
		viper.AddConfigPath(filepath.Join(home, ".config", "drapely"))
	}
	viper.AddConfigPath(".")
	viper.SetEnvPrefix("drapely")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults then come from flags alone.
	_ = viper.ReadInConfig()
}

// newLogger returns a logger honouring the verbose flag: debug output to
// stderr when verbose, silent otherwise. Results always go to stdout.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "drapely",
			Output: os.Stderr,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "drapely",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

// versionCmd represents the version command.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long:  `Print detailed version information including build date, commit hash, and Go version.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}
