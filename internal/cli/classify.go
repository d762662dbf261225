package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drapely/drapely/pkg/classify"
	"github.com/drapely/drapely/pkg/colour"
	"github.com/drapely/drapely/pkg/palette"
)

var (
	// Classify command flags
	classifyFormat  string
	classifyPreview bool
)

// classifyCmd represents the classify command.
var classifyCmd = &cobra.Command{
	Use:   "classify <hex>",
	Short: "Classify a garment colour into a seasonal palette",
	Long: `Classify a garment colour against the twelve-season reference palettes.

The colour is converted to CIE Lab and compared against every reference
colour using the CIEDE2000 perceptual difference metric. The nearest match
decides the season; a close runner-up from a different seasonal family is
reported as a crossover.

Examples:
  # Classify a navy blue
  drapely classify "#1E3A8A"

  # Shorthand hex works too
  drapely classify f00

  # Machine-readable output
  drapely classify --format json "#B7410E"

  # Show a colour swatch alongside the result
  drapely classify --preview "#C98E9C"`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	classifyCmd.Flags().StringVarP(&classifyFormat, "format", "f", "text", "output format (text, json)")
	classifyCmd.Flags().BoolVar(&classifyPreview, "preview", false, "show colour swatches in terminal")
}

// runClassify executes the classify command.
func runClassify(cmd *cobra.Command, args []string) error {
	hex := args[0]
	logger := newLogger(cmd)

	registry := palette.Default()
	logger.Debug("registry loaded", "colours", registry.Len(), "seasons", len(registry.MicroSeasons()))

	result := classify.New(registry).Garment(hex)
	logger.Debug("classified", "hex", hex, "status", result.Status, "min_delta_e", result.MinDeltaE)

	switch classifyFormat {
	case "json":
		out, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		return nil
	case "text":
		quiet, _ := cmd.Flags().GetBool("quiet")
		fmt.Print(formatResult(result, quiet, classifyPreview && stdoutIsTerminal()))
		return nil
	default:
		return fmt.Errorf("invalid format: %s (valid: text, json)", classifyFormat)
	}
}

// formatResult renders a classification result as human-readable text.
func formatResult(result classify.Result, quiet, preview bool) string {
	if quiet {
		if result.Primary == nil {
			return "unclassified\n"
		}
		return string(result.Primary.MicroSeason) + "\n"
	}

	var b strings.Builder

	if preview {
		if rgb, ok := colour.HexToRGB(result.DominantHex); ok {
			fmt.Fprintf(&b, "%s  %s\n", colour.Preview(rgb, 6), result.DominantHex)
		}
	} else {
		fmt.Fprintf(&b, "Colour: %s\n", result.DominantHex)
	}

	fmt.Fprintf(&b, "Status: %s\n", result.Status)

	if result.Primary == nil {
		if result.Nearest != nil {
			fmt.Fprintf(&b, "Nearest (no confident match): %s %s (dE %.2f)\n",
				result.Nearest.Name, result.Nearest.Hex, result.MinDeltaE)
		}
		return b.String()
	}

	p := result.Primary
	fmt.Fprintf(&b, "Season: %s (%s)\n", p.MicroSeason, p.Season)
	fmt.Fprintf(&b, "Group:  %s\n", p.Group)
	if preview {
		if rgb, ok := colour.HexToRGB(p.Colour.Hex); ok {
			fmt.Fprintf(&b, "Match:  %s  %s %s (dE %.2f)\n",
				colour.Preview(rgb, 6), p.Colour.Name, p.Colour.Hex, p.DeltaE)
		}
	} else {
		fmt.Fprintf(&b, "Match:  %s %s (dE %.2f)\n", p.Colour.Name, p.Colour.Hex, p.DeltaE)
	}

	if s := result.Secondary; s != nil {
		fmt.Fprintf(&b, "Also suits: %s (%s), %s %s (dE %.2f)\n",
			s.MicroSeason, s.Season, s.Colour.Name, s.Colour.Hex, s.DeltaE)
	}

	return b.String()
}

// stdoutIsTerminal reports whether stdout is attached to a terminal, so
// swatch previews degrade gracefully when output is piped.
func stdoutIsTerminal() bool {
	return isTerminal(os.Stdout)
}
