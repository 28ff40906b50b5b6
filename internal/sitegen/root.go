// Package sitegen implements the sitegen command line: render the landing
// page to stdout, export it as a static site, or check the branding config.
package sitegen

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoliathBritton/flyfox-ai-platform/internal/config"
	"github.com/GoliathBritton/flyfox-ai-platform/internal/version"
	"github.com/GoliathBritton/flyfox-ai-platform/pkg/branding"
)

// NewRootCommand builds a fresh command tree. Each call is independent so
// tests can run commands side by side.
func NewRootCommand() *cobra.Command {
	var dotenvDir string

	root := &cobra.Command{
		Use:   "sitegen",
		Short: "Render the FLYFOX AI landing page",
		Long: `Render the landing page from the branding configuration.

Branding is read from BRAND_* and THEME_* environment variables, .env files
in --dotenv, and the optional YAML file named by BRANDING_FILE.`,
		Version:       version.Info().String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadDotEnv(dotenvDir)
		},
	}

	root.PersistentFlags().StringVar(&dotenvDir, "dotenv", ".", "directory holding .env and .env.local")

	root.AddCommand(
		newRenderCommand(),
		newExportCommand(),
		newValidateCommand(),
		newVersionCommand(),
	)
	return root
}

// loadBrand reads the configuration and returns the validated brand.
func loadBrand() (branding.Brand, error) {
	cfg, err := config.Load()
	if err != nil {
		return branding.Brand{}, err
	}
	return cfg.Brand()
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "sitegen %s\n", version.Info())
			return err
		},
	}
}
