package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/typecard/typecard-cli/internal/cli"
	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/files"
	"github.com/typecard/typecard-cli/pkg/models"
	"github.com/typecard/typecard-cli/pkg/utils"
)

// SplitResult represents the output structure for the split command
type SplitResult struct {
	Length    int                  `json:"length" yaml:"length"`
	BlockSize int                  `json:"block_size" yaml:"block_size"`
	Count     int                  `json:"count" yaml:"count"`
	Blocks    []models.BlockExport `json:"blocks" yaml:"blocks"`
}

// ErrNoText is returned when no input source provided any text
var ErrNoText = errors.New("no text given: pass it as an argument, with --file, or on standard input")

// NewSplitCommand creates the split command
func NewSplitCommand() *cobra.Command {
	var (
		file   string
		format string
		raw    bool
	)

	cmd := &cobra.Command{
		Use:   "split [text]",
		Short: "Split text into fixed-size blocks",
		Long: `Split text into blocks of 300 characters, the same way the card does.

Examples:
  # Split an argument
  typecard split "some long text..."

  # Split a file and print JSON
  typecard split --file notes.txt --format json

  # Split piped text
  cat notes.txt | typecard split`,
		Args: cobra.ArbitraryArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return cli.ValidateOutputFormat(format)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := ReadText(cmd, args, file)
			if err != nil {
				return err
			}
			if !card.Splittable(text) {
				return fmt.Errorf("nothing to split: text is blank")
			}

			result := splitText(text)
			if format == string(cli.FormatText) {
				if raw {
					outputSplitRaw(cmd.OutOrStdout(), result)
					return nil
				}
				outputSplitText(cmd.OutOrStdout(), result)
				return nil
			}
			return cli.OutputResults(cmd.OutOrStdout(), format, result)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Read text from a file (- for standard input)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, yaml)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Print block contents only, separated by blank lines")

	return cmd
}

func splitText(text string) SplitResult {
	segments := card.Segment(text, card.BlockSize)
	result := SplitResult{
		Length:    utils.CountChars(text),
		BlockSize: card.BlockSize,
		Count:     len(segments),
		Blocks:    make([]models.BlockExport, len(segments)),
	}
	for i, s := range segments {
		result.Blocks[i] = models.BlockExport{
			Index:  i + 1,
			Length: utils.CountChars(s),
			Text:   s,
		}
	}
	return result
}

// ReadText resolves command input: arguments first, then --file, then
// piped standard input. One trailing newline is dropped from file input.
func ReadText(cmd *cobra.Command, args []string, file string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}

	in := cmd.InOrStdin()
	switch {
	case file != "":
	case in != os.Stdin || stdinPiped():
		file = "-"
	default:
		return "", ErrNoText
	}

	text, err := files.ReadInput(file, in)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r"), nil
}

func stdinPiped() bool {
	info, err := os.Stdin.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

func outputSplitText(w io.Writer, result SplitResult) {
	table := cli.NewTableFormatter(w)
	table.Header("BLOCK", "CHARS", "PREVIEW")
	for _, b := range result.Blocks {
		table.Row(
			fmt.Sprintf("%d/%d", b.Index, result.Count),
			strconv.Itoa(b.Length),
			cli.TruncateString(b.Text, 60),
		)
	}
	table.Flush()

	fmt.Fprintf(w, "\nTotal: %d blocks, %d characters\n", result.Count, result.Length)
}

func outputSplitRaw(w io.Writer, result SplitResult) {
	for i, b := range result.Blocks {
		if i > 0 {
			fmt.Fprintln(w)
		}
		fmt.Fprintln(w, b.Text)
	}
}
