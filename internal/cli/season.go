package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/drapely/drapely/pkg/palette"
	"github.com/drapely/drapely/pkg/season"
)

var (
	// Season command flags
	seasonParent    string
	seasonDepth     string
	seasonClarity   string
	seasonUndertone string
	seasonShow      bool
)

// seasonCmd represents the season command.
var seasonCmd = &cobra.Command{
	Use:   "season",
	Short: "Resolve a colour profile to a micro-season",
	Long: `Resolve a coarse colour profile (parent season, depth, clarity, undertone)
to one of the twelve micro-seasons.

Flag values fall back to the config file (~/.config/drapely/config.yaml with
keys season, depth, clarity and undertone), so a saved profile only needs
"drapely season".

Examples:
  # Resolve explicitly
  drapely season --season winter --depth deep --clarity vivid --undertone cool

  # Use the saved profile and show its palette
  drapely season --show`,
	RunE: runSeason,
}

func init() {
	seasonCmd.Flags().StringVar(&seasonParent, "season", "", "parent season (spring, summer, autumn, winter)")
	seasonCmd.Flags().StringVar(&seasonDepth, "depth", "", "overall depth (light, medium, deep)")
	seasonCmd.Flags().StringVar(&seasonClarity, "clarity", "", "overall clarity (clear, medium, muted; vivid is accepted for clear)")
	seasonCmd.Flags().StringVar(&seasonUndertone, "undertone", "", "skin undertone (warm, cool, neutral)")
	seasonCmd.Flags().BoolVar(&seasonShow, "show", false, "also print the resolved season's palette")
}

// profileValue returns a flag value, falling back to the config file.
func profileValue(flagValue, configKey string) string {
	if flagValue != "" {
		return flagValue
	}
	return viper.GetString(configKey)
}

// runSeason executes the season command.
func runSeason(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)

	parent := season.ParentSeason(profileValue(seasonParent, "season"))
	if parent == "" {
		return fmt.Errorf("no parent season given: pass --season or set it in the config file")
	}
	if !parent.Valid() {
		return fmt.Errorf("invalid parent season: %s (valid: spring, summer, autumn, winter)", parent)
	}

	depth := season.Depth(profileValue(seasonDepth, "depth"))
	clarity := season.Clarity(profileValue(seasonClarity, "clarity"))
	undertone := season.Undertone(profileValue(seasonUndertone, "undertone"))
	logger.Debug("resolving profile",
		"season", parent, "depth", depth, "clarity", clarity, "undertone", undertone)

	micro := season.Resolve(parent, depth, clarity, undertone)
	fmt.Println(micro)

	if seasonShow {
		sp, ok := palette.Default().Palette(micro)
		if !ok {
			return fmt.Errorf("no palette for %s", micro)
		}
		fmt.Println()
		fmt.Print(formatSeasonPalette(sp, stdoutIsTerminal()))
	}

	return nil
}
