package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/drapely/drapely/pkg/colour"
	"github.com/drapely/drapely/pkg/palette"
	"github.com/drapely/drapely/pkg/season"
)

// paletteCmd represents the palette command group.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Browse the twelve-season reference palettes",
}

// paletteListCmd lists every micro-season.
var paletteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all micro-seasons",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, m := range palette.Default().MicroSeasons() {
			fmt.Printf("%-15s %s\n", m, m.Parent())
		}
		return nil
	},
}

// paletteShowCmd prints one micro-season's colour groups.
var paletteShowCmd = &cobra.Command{
	Use:   "show <micro-season>",
	Short: "Show one micro-season's palette",
	Long: `Show a micro-season's four colour groups: neutrals, accents, brights
and softs. Swatches are rendered when stdout is a terminal.

Example:
  drapely palette show soft_autumn`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		micro := season.MicroSeason(args[0])
		sp, ok := palette.Default().Palette(micro)
		if !ok {
			return fmt.Errorf("unknown micro-season: %s (see \"drapely palette list\")", args[0])
		}
		fmt.Print(formatSeasonPalette(sp, stdoutIsTerminal()))
		return nil
	},
}

func init() {
	paletteCmd.AddCommand(paletteListCmd)
	paletteCmd.AddCommand(paletteShowCmd)
}

// formatSeasonPalette renders a season palette group by group, with ANSI
// swatches when preview is set.
func formatSeasonPalette(sp palette.SeasonPalette, preview bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s (%s)\n", sp.Season, sp.Season.Parent())
	for _, g := range palette.Groups() {
		fmt.Fprintf(&b, "\n%s:\n", g)
		for _, c := range sp.Group(g) {
			if preview {
				if rgb, ok := colour.HexToRGB(c.Hex); ok {
					fmt.Fprintf(&b, "  %s  %-16s %s\n", colour.Preview(rgb, 6), c.Name, c.Hex)
					continue
				}
			}
			fmt.Fprintf(&b, "  %-16s %s\n", c.Name, c.Hex)
		}
	}

	return b.String()
}
