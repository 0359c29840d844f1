package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/typecard/typecard-cli/internal/cli"
	"github.com/typecard/typecard-cli/pkg/files"
	"github.com/typecard/typecard-cli/pkg/models"
)

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default settings file",
		Long: `Write the default settings file to the user config directory, or to
the path given with --config. An existing file is kept unless --force is set.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, err := cli.NewCommandContext(configPath(cmd))
			if err != nil {
				return err
			}
			path := ctx.SettingsPath

			created, err := files.InitSettings(path)
			if err != nil {
				return err
			}
			if created {
				cli.PrintSuccess("Created %s", path)
				return nil
			}

			if !force {
				cli.PrintInfo("Settings already exist at %s (use --force to overwrite)", path)
				return nil
			}

			ok, err := cli.ConfirmFrom(cmd.InOrStdin(), fmt.Sprintf("Overwrite %s with defaults?", path), false)
			if err != nil {
				return fmt.Errorf("failed to read confirmation: %w", err)
			}
			if !ok {
				cli.PrintInfo("Kept existing settings")
				return nil
			}

			if err := files.WriteSettings(path, models.DefaultSettings()); err != nil {
				return err
			}
			cli.PrintSuccess("Reset %s to defaults", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing settings file")

	return cmd
}
