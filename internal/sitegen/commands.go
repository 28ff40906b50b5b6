package sitegen

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GoliathBritton/flyfox-ai-platform/domain/landing"
)

func newRenderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "render",
		Short: "Write the page HTML to stdout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := loadBrand()
			if err != nil {
				return err
			}
			return landing.Render(cmd.OutOrStdout(), brand)
		},
	}
}

func newExportCommand() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write index.html, the stylesheet and a README into a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := loadBrand()
			if err != nil {
				return err
			}

			page, err := landing.NewPage(cmd.Context(), brand)
			if err != nil {
				return err
			}

			paths, err := landing.Export(outDir, page)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}

func newValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the branding configuration and print it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			brand, err := loadBrand()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:      %s\n", brand.Info.Name)
			fmt.Fprintf(out, "Company:   %s\n", brand.Info.Company)
			fmt.Fprintf(out, "Mission:   %s\n", brand.Info.Mission)
			fmt.Fprintf(out, "Contact:   %s\n", brand.Info.Contact)
			fmt.Fprintf(out, "Primary:   %s\n", brand.Palette.Primary)
			fmt.Fprintf(out, "Secondary: %s\n", brand.Palette.Secondary)
			fmt.Fprintf(out, "Accent:    %s\n", brand.Palette.Accent)
			fmt.Fprintln(out, "ok")
			return nil
		},
	}
}
