package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/connections/pkg/core/sheet"
	"github.com/matzehuels/connections/pkg/errors"
	connio "github.com/matzehuels/connections/pkg/io"
	"github.com/matzehuels/connections/pkg/render/legend"
	"github.com/matzehuels/connections/pkg/render/sink"
)

// legendOpts holds the command-line flags for the legend command.
type legendOpts struct {
	manifest string // run manifest; empty computes the pairing from the fixed config
	output   string // output file
	format   string // svg or pdf
	detailed bool   // include cell position and anchor in labels
}

// legendCommand creates the legend command.
func (c *CLI) legendCommand() *cobra.Command {
	opts := legendOpts{
		output: "legend.svg",
		format: sink.FormatSVG,
	}

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Render the pairing as a Graphviz diagram",
		Long: `Render the pairing of a run as a Graphviz diagram.

Without --manifest the pairing is computed from the built-in sheet
configuration, which is what generate uses.`,
		Example: `  # Diagram of the built-in pairing
  connections legend

  # Diagram of a previous run, as PDF
  connections legend --manifest out/connections.toml -f pdf -o legend.pdf`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return runLegend(ctx, printer{w: cmd.OutOrStdout()}, opts)
		},
	}

	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "run manifest (connections.toml) to read the pairing from")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output file")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg or pdf")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show cell position and anchor in box labels")

	return cmd
}

func runLegend(ctx context.Context, out printer, opts legendOpts) error {
	logger := loggerFromContext(ctx)

	m, err := loadPairing(opts.manifest)
	if err != nil {
		return err
	}
	logger.Debug("Loaded pairing", "seed", m.Seed, "pairs", len(m.Pairs))

	data, err := legend.Render(legend.ToDOT(m, legend.Options{Detailed: opts.detailed}), opts.format)
	if err != nil {
		return fmt.Errorf("legend: %w", err)
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeOutput, err, "write %s", opts.output)
	}

	out.success("Rendered legend for seed %d", m.Seed)
	for i, p := range m.Pairs {
		out.pair(i, p.A, p.B)
	}
	out.file(opts.output)
	return nil
}

// loadPairing reads the manifest at path, or describes the default sheet
// when path is empty.
func loadPairing(path string) (*connio.Manifest, error) {
	if path != "" {
		return connio.ImportManifest(path)
	}
	sh, err := sheet.New(sheet.DefaultConfig())
	if err != nil {
		return nil, err
	}
	return connio.NewManifest(sh), nil
}
