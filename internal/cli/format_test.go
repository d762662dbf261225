package cli

import (
	"strings"
	"testing"

	"github.com/drapely/drapely/pkg/classify"
	"github.com/drapely/drapely/pkg/palette"
	"github.com/drapely/drapely/pkg/season"
)

func TestFormatResult(t *testing.T) {
	result := classify.Garment("#FFFFFF")

	tests := []struct {
		name  string
		quiet bool
		want  []string
	}{
		{
			name: "full text output",
			want: []string{"Colour: #FFFFFF", "Status:", "Season: bright_winter (winter)", "Group:  neutrals", "True White"},
		},
		{
			name:  "quiet prints only the micro-season",
			quiet: true,
			want:  []string{"bright_winter"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := formatResult(result, tt.quiet, false)
			for _, want := range tt.want {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q:\n%s", want, out)
				}
			}
			if tt.quiet && strings.Count(out, "\n") != 1 {
				t.Errorf("quiet output should be a single line:\n%s", out)
			}
		})
	}
}

func TestFormatResult_Unclassified(t *testing.T) {
	result := classify.Garment("not a colour")
	out := formatResult(result, false, false)
	if !strings.Contains(out, "Status: unclassified") {
		t.Errorf("expected unclassified status in output:\n%s", out)
	}

	out = formatResult(result, true, false)
	if out != "unclassified\n" {
		t.Errorf("quiet unclassified output = %q", out)
	}
}

func TestFormatSeasonPalette(t *testing.T) {
	sp, ok := palette.Default().Palette(season.SoftAutumn)
	if !ok {
		t.Fatal("soft autumn palette missing")
	}

	out := formatSeasonPalette(sp, false)

	for _, want := range []string{"soft_autumn (autumn)", "neutrals:", "accents:", "brights:", "softs:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// No ANSI escapes without preview.
	if strings.Contains(out, "\033[") {
		t.Errorf("unexpected ANSI escapes in plain output:\n%s", out)
	}
}
