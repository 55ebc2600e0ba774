package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/connections/pkg/buildinfo"
	"github.com/matzehuels/connections/pkg/pipeline"
	"github.com/matzehuels/connections/pkg/render/sink"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	puzzles string // root folder with one subfolder per puzzle
	output  string // output directory
	formats string // comma-separated output formats
}

// generateCommand creates the generate command.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		puzzles: pipeline.DefaultPuzzlesDir,
		output:  pipeline.DefaultOutputDir,
		formats: sink.FormatPDF,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render the index page and one puzzle page per folder",
		Long: `Render the index page and one puzzle page per puzzle folder.

Every subfolder of the puzzles directory is one puzzle. Each file named
<stem>_fst.png in it is paired with <stem>_snd.png. The index page shows
which boxes belong together and serves as the answer key for every puzzle.`,
		Example: `  # Render PDFs from ./puzzles into the current directory
  connections generate

  # Render SVG and PNG into out/
  connections generate --puzzles ~/pictures/puzzles -o out -f svg,png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := withLogger(cmd.Context(), c.Logger)
			return c.runGenerate(ctx, printer{w: cmd.OutOrStdout()}, opts)
		},
	}

	cmd.Flags().StringVar(&opts.puzzles, "puzzles", opts.puzzles, "folder with one subfolder of image pairs per puzzle")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", opts.formats, "output formats: pdf, svg, png (comma-separated)")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, out printer, opts generateOpts) error {
	logger := loggerFromContext(ctx)
	logger.Debug("Build", buildinfo.Fields()...)

	formats, err := sink.ParseFormats(opts.formats)
	if err != nil {
		return err
	}

	prog := newProgress(logger)
	result, err := c.newRunner().Execute(ctx, pipeline.Options{
		PuzzlesDir: opts.puzzles,
		OutputDir:  opts.output,
		Formats:    formats,
		Logger:     logger,
	})
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	prog.done(fmt.Sprintf("Generated %d documents", result.Stats.Documents))

	out.success("Generated %d documents", result.Stats.Documents)
	out.keyValue("seed", StyleHighlight.Render(strconv.FormatUint(result.Sheet.Config().Seed, 10)))
	out.keyValue("pairs", strconv.Itoa(result.Sheet.NumPairs()))
	for _, doc := range result.Documents {
		for _, f := range doc.Files {
			out.file(filepath.Join(opts.output, f))
		}
	}
	if result.Manifest != "" {
		out.file(result.Manifest)
	}
	return nil
}
