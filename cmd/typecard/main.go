package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/typecard/typecard-cli/cmd/commands"
	"github.com/typecard/typecard-cli/internal/cli"
	"github.com/typecard/typecard-cli/pkg/card"
	"github.com/typecard/typecard-cli/pkg/tui"
)

// Version is set during build with -ldflags
var version = "dev"

const debugEnv = "TYPECARD_DEBUG"

var (
	initialText string
	inputFile   string
	printTitle  bool
	configFile  string
	quiet       bool
	noColor     bool
	assumeYes   bool
)

var rootCmd = &cobra.Command{
	Use:   "typecard",
	Short: "Terminal text styling card",
	Long: `Typecard is a terminal card for styling a piece of text. Type or paste
text, tune font family, size, weight, letter spacing and line height, and
split long text into 300 character blocks you can edit and copy one by one.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetGlobalFlags(quiet, noColor, assumeYes)
	},
	RunE: runCard,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of Typecard",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "Typecard version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Settings file (default <user config dir>/typecard/settings.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress success messages")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Plain text status markers")
	rootCmd.PersistentFlags().BoolVarP(&assumeYes, "yes", "y", false, "Answer yes to confirmations")

	rootCmd.Flags().StringVarP(&initialText, "text", "t", "", "Initial text for the card")
	rootCmd.Flags().StringVarP(&inputFile, "file", "f", "", "Read the initial text from a file (- for standard input)")
	rootCmd.Flags().BoolVarP(&printTitle, "print", "p", false, "Print the final text on exit")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewSplitCommand())
	rootCmd.AddCommand(commands.NewQuoteCommand())
}

func newLogger() (*log.Logger, func(), error) {
	path := os.Getenv(debugEnv)
	if path == "" {
		return log.New(io.Discard, "", 0), func() {}, nil
	}
	f, err := tea.LogToFile(path, "typecard")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return log.Default(), func() { f.Close() }, nil
}

func runCard(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContext(configFile)
	if err != nil {
		return err
	}
	settings := ctx.LoadSettingsWithDefault()
	corpus := ctx.LoadQuotes()

	text := initialText
	piped := false
	if !cmd.Flags().Changed("text") {
		text, err = commands.ReadText(cmd, nil, inputFile)
		switch {
		case errors.Is(err, commands.ErrNoText):
			text = ""
		case err != nil:
			return err
		default:
			piped = inputFile == "" || inputFile == "-"
		}
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	// The host keeps its own copy of the text, like a page title.
	title := text
	app := tui.NewApp(tui.Config{
		InitialText: text,
		Settings:    settings,
		Quotes:      corpus,
		Logger:      logger,
		Observer: card.ObserverFuncs{
			OnTextChange: func(s string) { title = s },
			OnReset:      func() { logger.Printf("card reset") },
		},
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if settings.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if piped {
		opts = append(opts, tea.WithInputTTY())
	}

	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}

	if printTitle {
		fmt.Fprintln(cmd.OutOrStdout(), title)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		cli.PrintError("%v", err)
		os.Exit(1)
	}
}
