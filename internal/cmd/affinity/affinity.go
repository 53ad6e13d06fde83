// Package affinity prints the Nen efficiency table to a terminal.
package affinity

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	entrypoint "github.com/louisbranch/hunter-sheet/internal/platform/cmd"
	platformi18n "github.com/louisbranch/hunter-sheet/internal/platform/i18n"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/meter"
	"github.com/louisbranch/hunter-sheet/internal/services/sheet/domain/nen"
)

// Config holds affinity command configuration.
type Config struct {
	// Type limits the table to one active type; empty prints all six.
	Type   string `env:"AFFINITY_TYPE"`
	Lang   string `env:"AFFINITY_LANG"  envDefault:"en-US"`
	Colors bool   `env:"AFFINITY_COLOR" envDefault:"true"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Type, "type", cfg.Type, "Active Nen type (empty for all)")
	fs.StringVar(&cfg.Lang, "lang", cfg.Lang, "Label language: en-US or pt-BR")
	fs.BoolVar(&cfg.Colors, "color", cfg.Colors, "Color cells by efficiency")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run writes the table for cfg to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceAffinity, func(context.Context) error {
		actives, err := activeTypes(cfg.Type)
		if err != nil {
			return err
		}
		tag, _ := platformi18n.ParseTag(cfg.Lang)
		return WriteTable(out, actives, platformi18n.NewLocalizer(tag), cfg.Colors)
	})
}

func activeTypes(value string) ([]nen.Type, error) {
	if strings.TrimSpace(value) == "" {
		return nen.Types(), nil
	}
	active, ok := nen.Parse(value)
	if !ok {
		return nil, fmt.Errorf("nen type %q is not supported", value)
	}
	return []nen.Type{active}, nil
}

// WriteTable renders one row per active type and one column per target
// type in hexagon order.
func WriteTable(w io.Writer, actives []nen.Type, loc platformi18n.Localizer, useColors bool) error {
	table := tablewriter.NewWriter(w)

	headers := []string{loc.T("sheet.nen.active")}
	for _, target := range nen.Types() {
		headers = append(headers, typeLabel(loc, target))
	}
	table.Header(headers)

	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	paint := newPainter(useColors)
	var data [][]string
	for _, active := range actives {
		row := []string{typeLabel(loc, active)}
		for _, affinity := range nen.Efficiencies(active) {
			row = append(row, paint(affinity))
		}
		data = append(data, row)
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

func typeLabel(loc platformi18n.Localizer, t nen.Type) string {
	return loc.T("sheet.nen." + string(t))
}

// newPainter colors an efficiency cell: full strength bold green, 80%
// green, 60% yellow, and anything weaker red.
func newPainter(useColors bool) func(nen.Affinity) string {
	if !useColors {
		return func(a nen.Affinity) string { return meter.FormatPercent(a.Efficiency) }
	}
	full := color.New(color.FgGreen, color.Bold)
	strong := color.New(color.FgGreen)
	medium := color.New(color.FgYellow)
	weak := color.New(color.FgRed)
	for _, c := range []*color.Color{full, strong, medium, weak} {
		c.EnableColor()
	}
	return func(a nen.Affinity) string {
		text := meter.FormatPercent(a.Efficiency)
		switch {
		case a.Efficiency >= 1:
			return full.Sprint(text)
		case a.Efficiency >= 0.8:
			return strong.Sprint(text)
		case a.Efficiency >= 0.6:
			return medium.Sprint(text)
		default:
			return weak.Sprint(text)
		}
	}
}
