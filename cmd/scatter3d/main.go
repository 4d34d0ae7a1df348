package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/smasonuk/scatter3d"
	"github.com/spf13/cobra"
)

type options struct {
	skipMalformed bool
	out           string
	width, height int
	title         string
	verbose       bool
}

func newRootCmd() *cobra.Command {
	opts := options{}
	def := scatter3d.DefaultWindowConfig()

	cmd := &cobra.Command{
		Use:   "scatter3d",
		Short: "Plot 3D points read from standard input",
		Long: `scatter3d reads one "x y z" triple per line from standard input until an
empty line, then shows the points, plus the origin, as a 3D scatter plot.
Fields are separated by single spaces; fields after the third are ignored.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(io.Discard, "", 0)
			if opts.verbose {
				logger = log.New(cmd.ErrOrStderr(), "", log.LstdFlags)
			}
			return run(cmd.InOrStdin(), newRenderer(opts, logger), opts.skipMalformed, logger)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.skipMalformed, "skip-malformed", false, "log and skip malformed lines instead of failing")
	f.StringVarP(&opts.out, "out", "o", "", "write the plot to an image file (png, svg, pdf, ...) instead of opening a window")
	f.IntVar(&opts.width, "width", def.Width, "output width in pixels")
	f.IntVar(&opts.height, "height", def.Height, "output height in pixels")
	f.StringVar(&opts.title, "title", def.Title, "window or plot title")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")

	return cmd
}

func newRenderer(opts options, logger *log.Logger) scatter3d.Renderer {
	if opts.out != "" {
		logger.Printf("Rendering %s output to %s", scatter3d.ImageFormat(opts.out), opts.out)
		return scatter3d.NewImageRenderer(scatter3d.ImageConfig{
			Path:   opts.out,
			Title:  opts.title,
			Width:  opts.width,
			Height: opts.height,
			Logger: logger,
		})
	}
	return scatter3d.NewWindowRenderer(scatter3d.WindowConfig{
		Title:  opts.title,
		Width:  opts.width,
		Height: opts.height,
		Logger: logger,
	})
}

func run(in io.Reader, r scatter3d.Renderer, skipMalformed bool, logger *log.Logger) error {
	var readOpts []scatter3d.ReadOption
	if skipMalformed {
		readOpts = append(readOpts, scatter3d.SkipMalformed(logger))
	}

	seq, err := scatter3d.ReadCoordinates(in, readOpts...)
	if err != nil {
		return err
	}
	logger.Printf("Read %d points", seq.Len())

	return r.Render(seq.Points())
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
