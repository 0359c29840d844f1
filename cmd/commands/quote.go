package commands

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/typecard/typecard-cli/internal/cli"
	"github.com/typecard/typecard-cli/pkg/models"
)

// writeClipboard is swapped out in tests
var writeClipboard = clipboard.WriteAll

// NewQuoteCommand creates the quote command
func NewQuoteCommand() *cobra.Command {
	var (
		copyQuote bool
		list      bool
		format    string
	)

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print a random quote",
		Long: `Print a random quote from the built-in corpus and the quotes file
named in settings, formatted the way the card inserts it.

Examples:
  # Print a quote
  typecard quote

  # Print a quote and copy it to the clipboard
  typecard quote --copy

  # List every available quote as YAML
  typecard quote --list --format yaml`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(configPath(cmd))
			if err != nil {
				return err
			}
			corpus := ctx.LoadQuotes()
			if len(corpus) == 0 {
				return fmt.Errorf("no quotes available")
			}

			if list {
				if format == string(cli.FormatText) {
					outputQuoteList(cmd.OutOrStdout(), corpus)
					return nil
				}
				return cli.OutputResults(cmd.OutOrStdout(), format, corpus)
			}

			text := corpus[rand.Intn(len(corpus))].Format()
			fmt.Fprintln(cmd.OutOrStdout(), text)

			if copyQuote {
				if err := writeClipboard(text); err != nil {
					return fmt.Errorf("failed to copy to clipboard: %w", err)
				}
				cli.PrintSuccess("Quote copied to clipboard")
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&copyQuote, "copy", "c", false, "Also copy the quote to the clipboard")
	cmd.Flags().BoolVar(&list, "list", false, "List every available quote")
	cmd.Flags().StringVar(&format, "format", "text", "Output format for --list (text, json, yaml)")

	return cmd
}

func outputQuoteList(w io.Writer, corpus []models.Quote) {
	table := cli.NewTableFormatter(w)
	table.Header("AUTHOR", "QUOTE")
	for _, q := range corpus {
		table.Row(q.Author, cli.TruncateString(q.Text, 60))
	}
	table.Flush()

	fmt.Fprintf(w, "\nTotal: %d quotes\n", len(corpus))
}

// configPath returns the --config value when the command tree defines it
func configPath(cmd *cobra.Command) string {
	if f := cmd.Flags().Lookup("config"); f != nil {
		return f.Value.String()
	}
	return ""
}
