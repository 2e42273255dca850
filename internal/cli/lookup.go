package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/rubytype/internal/grapheme"
)

// LookupOptions holds flags for the lookup command.
type LookupOptions struct {
	Code  string
	Stats bool
}

// NewLookupCommand creates the lookup command.
func NewLookupCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LookupOptions{}

	cmd := &cobra.Command{
		Use:   "lookup [characters...]",
		Short: "Look up codes for characters, or characters for a code",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLookup(rootOpts, opts, args, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Code, "code", "", "list the characters whose code is this")
	cmd.Flags().BoolVar(&opts.Stats, "stats", false, "print table statistics")

	return cmd
}

func runLookup(rootOpts *RootOptions, opts *LookupOptions, args []string, cmd *cobra.Command) error {
	logger, err := rootOpts.newLogger(false)
	if err != nil {
		return err
	}
	defer logger.Close()

	table, err := rootOpts.loadTable(logger.Logger)
	if err != nil && table.Len() == 0 {
		return err
	}

	out := cmd.OutOrStdout()

	if opts.Stats {
		fmt.Fprintf(out, "table: %s\nentries: %d\n", rootOpts.Config.Table.Path, table.Len())
	}

	if opts.Code != "" {
		chars := table.Chars(opts.Code)
		if len(chars) == 0 {
			return fmt.Errorf("no characters for code %q", opts.Code)
		}
		fmt.Fprintln(out, strings.Join(chars, " "))
	}

	for _, ch := range grapheme.Split(strings.Join(args, "")) {
		if grapheme.IsSpace(ch) {
			continue
		}
		code, ok := table.Lookup(ch)
		if !ok {
			code = "-"
		}
		fmt.Fprintf(out, "%s\t%s\n", ch, code)
	}
	return nil
}
