package cmd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rail44/drills/internal/config"
	"github.com/rail44/drills/internal/formatter"
	"github.com/rail44/drills/internal/log"
	"github.com/rail44/drills/internal/report"
	"github.com/rail44/drills/internal/shapefile"
)

var perimeterCmd = &cobra.Command{
	Use:   "perimeter <file.yaml>...",
	Short: "Compute perimeters of the shapes in YAML files",
	Long: `Compute the perimeter of every polygon and circle in the given shape
files. Polygons are closed: the last vertex connects back to the first.

  shapes:
    - name: triangle
      polygon: [[12, 13], [17, 11], [16, 16]]
    - name: wheel
      circle: {center: [10, 20], radius: 5}`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := mustLoadConfig()

		err := runPerimeter(cmd.Context(), cmd.OutOrStdout(), args, cfg, report.ColorEnabled(cfg.Color, os.Stdout))
		if err != nil {
			log.Error("perimeter failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(perimeterCmd)
}

func runPerimeter(ctx context.Context, out io.Writer, paths []string, cfg *config.Config, styled bool) error {
	if ctx == nil {
		ctx = context.Background()
	}

	docs, err := loadDocuments(ctx, paths)
	if err != nil {
		return err
	}

	var results []report.PerimeterResult
	for i, doc := range docs {
		if len(doc.Shapes) == 0 {
			log.Warn("no shapes found", slog.String("file", paths[i]))
		}
		results = append(results, report.Measure(paths[i], doc)...)
	}

	var output string
	if cfg.Format == config.FormatMarkdown {
		output = formatter.PerimetersMarkdown(results, cfg.Precision)
	} else {
		output = report.Renderer{Styled: styled, Precision: cfg.Precision}.Perimeters(results)
	}
	if _, err := io.WriteString(out, output); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}
	return nil
}

// loadDocuments decodes every file concurrently, keeping argument order
func loadDocuments(ctx context.Context, paths []string) ([]*shapefile.Document, error) {
	docs := make([]*shapefile.Document, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			doc, err := shapefile.Load(path)
			if err != nil {
				return err
			}
			log.Debug("loaded shape file", slog.String("file", path), slog.Int("shapes", len(doc.Shapes)))
			docs[i] = doc
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return docs, nil
}
