package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/rubytype/engine"
	"github.com/iw2rmb/rubytype/htmlview"
	"github.com/iw2rmb/rubytype/layout"
)

// RenderOptions holds flags for the render command.
type RenderOptions struct {
	Format        string
	Placeholder   string
	NoPlaceholder bool
	Width         int
	Gap           int
}

// NewRenderCommand creates the render command.
func NewRenderCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RenderOptions{}

	cmd := &cobra.Command{
		Use:   "render [text...]",
		Short: "Print text with codes above each character",
		Long: `Render text non-interactively, with each character's code above it.

Text comes from the arguments, or from stdin when none are given.
Characters without a code show a placeholder unless --no-placeholder is set.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Format, "format", "f", "", "output format (text|html)")
	cmd.Flags().StringVar(&opts.Placeholder, "placeholder", "", "code shown for characters without one")
	cmd.Flags().BoolVar(&opts.NoPlaceholder, "no-placeholder", false, "show nothing above characters without a code")
	cmd.Flags().IntVarP(&opts.Width, "width", "w", 0, "wrap text output at this many cells")
	cmd.Flags().IntVar(&opts.Gap, "gap", 0, "blank cells after each coded character")

	return cmd
}

func runRender(rootOpts *RootOptions, opts *RenderOptions, args []string, cmd *cobra.Command) error {
	rc := rootOpts.Config.Render
	flags := cmd.Flags()
	if flags.Changed("format") {
		rc.Format = opts.Format
	}
	if flags.Changed("placeholder") {
		rc.Placeholder = opts.Placeholder
	}
	if opts.NoPlaceholder {
		rc.Placeholder = ""
	}
	if flags.Changed("width") {
		rc.Width = opts.Width
	}
	if flags.Changed("gap") {
		rc.Gap = opts.Gap
	}
	if rc.Format != "text" && rc.Format != "html" {
		return fmt.Errorf("invalid format %q: must be text or html", rc.Format)
	}

	logger, err := rootOpts.newLogger(false)
	if err != nil {
		return err
	}
	defer logger.Close()

	text, err := renderInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	table, _ := rootOpts.loadTable(logger.Logger)

	sync := engine.New(table, engine.Options{Logger: logger.Logger})
	sync.Seed(text)

	out := cmd.OutOrStdout()
	switch rc.Format {
	case "html":
		if err := htmlview.Render(out, sync.Root(), htmlview.Options{Placeholder: rc.Placeholder}); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
		_, err = fmt.Fprintln(out)
	default:
		lay := layout.Build(sync.Root(), layout.Options{
			Width:       rc.Width,
			Placeholder: rc.Placeholder,
			Gap:         rc.Gap,
		})
		_, err = fmt.Fprintln(out, lay.String())
	}
	return err
}

func renderInput(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
