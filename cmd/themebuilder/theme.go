// SPDX-License-Identifier: MIT
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/themebuilder/internal/backup"
	"github.com/thatcatcamp/themebuilder/internal/config"
	"github.com/thatcatcamp/themebuilder/internal/db"
	"github.com/thatcatcamp/themebuilder/internal/library"
)

var themeCmd = &cobra.Command{
	Use:   "theme",
	Short: "Manage saved themes",
	Long:  "Save, list, share, export and import named themes",
}

var themeSaveCmd = &cobra.Command{
	Use:   "save <name>",
	Short: "Save slider values under a name",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		sliders, err := slidersFromFlags(cmd)
		if err != nil {
			exitWithError(err)
		}
		description, _ := cmd.Flags().GetString("description")
		overwrite, _ := cmd.Flags().GetBool("overwrite")

		theme, err := library.CreateTheme(db.GetDB(), args[0], description, sliders)
		op := "created"
		if errors.Is(err, library.ErrDuplicate) && overwrite {
			theme, err = library.UpdateTheme(db.GetDB(), args[0], description, sliders)
			op = "updated"
		}
		if err != nil {
			if errors.Is(err, library.ErrDuplicate) {
				err = fmt.Errorf("%w (use --overwrite to replace it)", err)
			}
			exitWithError(err)
		}

		success("Theme %s: %s\n", op, theme.Name)
		fmt.Printf("Share link: /t/%s\n", theme.ShareID)
	},
}

var themeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved themes",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		list, err := library.ListThemes(db.GetDB())
		if err != nil {
			exitWithError(err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tWARMTH\tSATURATION\tCONTRAST\tACCESSIBILITY\tSHARE ID\tUPDATED")
		for _, t := range list {
			fmt.Fprintf(w, "%s\t%.0f\t%.0f\t%.0f\t%.0f\t%s\t%s\n",
				t.Name, t.Warmth, t.Saturation, t.Contrast, t.Accessibility, t.ShareID, t.UpdatedAt.Format("2006-01-02"))
		}
		w.Flush()
	},
}

var themeShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved theme's palette",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		theme, err := library.GetThemeByName(db.GetDB(), args[0])
		if err != nil {
			exitWithError(err)
		}

		gen, err := newGenerator()
		if err != nil {
			exitWithError(err)
		}
		p, err := gen.Generate(theme.Sliders())
		if err != nil {
			exitWithError(err)
		}

		format, _ := cmd.Flags().GetString("format")
		if format == FormatSwatch && theme.Description != "" {
			fmt.Println(theme.Description)
		}
		if err := renderPalette(os.Stdout, p, format); err != nil {
			exitWithError(err)
		}
	},
}

var themeDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved theme",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		if err := library.DeleteTheme(db.GetDB(), args[0]); err != nil {
			exitWithError(err)
		}

		success("Theme deleted: %s\n", args[0])
	},
}

var themeExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export saved themes as YAML or JSON",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		path, _ := cmd.Flags().GetString("file")
		format, err := archiveFormat(cmd, path)
		if err != nil {
			exitWithError(err)
		}

		var out io.Writer = os.Stdout
		if path != "" && path != "-" {
			f, err := os.Create(path)
			if err != nil {
				exitWithError(fmt.Errorf("failed to create %s: %w", path, err))
			}
			defer f.Close()
			out = f
		}

		if err := library.Export(db.GetDB(), out, format); err != nil {
			exitWithError(err)
		}
		if out != os.Stdout {
			success("Exported themes to %s\n", path)
		}
	},
}

var themeImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import themes from a YAML or JSON export",
	Long:  "Import themes, updating any that already exist by name. Use - to read stdin.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		path := args[0]
		format, err := archiveFormat(cmd, path)
		if err != nil {
			exitWithError(err)
		}

		var in io.Reader = os.Stdin
		if path != "-" {
			f, err := os.Open(path)
			if err != nil {
				exitWithError(fmt.Errorf("failed to open %s: %w", path, err))
			}
			defer f.Close()
			in = f
		}

		result, err := library.Import(db.GetDB(), in, format)
		if err != nil {
			exitWithError(err)
		}

		success("Imported %d new, updated %d\n", result.Created, result.Updated)
	},
}

var themeBackupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Write a library snapshot to the backups directory now",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			exitWithError(err)
		}

		manager := backup.NewBackupManager(db.GetDB(), config.GetString("backups.path"), config.GetInt("backups.keep"))
		path, err := manager.CreateSnapshot()
		if err != nil {
			exitWithError(err)
		}

		success("Snapshot written: %s\n", path)
	},
}

// archiveFormat uses --format when given, otherwise the file extension.
func archiveFormat(cmd *cobra.Command, path string) (library.Format, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = strings.TrimPrefix(filepath.Ext(path), ".")
	}
	return library.ParseFormat(format)
}

func init() {
	addSliderFlags(themeSaveCmd)
	themeSaveCmd.Flags().StringP("description", "d", "", "Short description")
	themeSaveCmd.Flags().Bool("overwrite", false, "Replace an existing theme with the same name")

	themeShowCmd.Flags().StringP("format", "f", FormatSwatch, "Output format: swatch, json, css, vars, oklch, hex")

	themeExportCmd.Flags().StringP("file", "o", "", "Write to file instead of stdout")
	themeExportCmd.Flags().String("format", "", "Archive format: yaml or json (default from extension, else yaml)")
	themeImportCmd.Flags().String("format", "", "Archive format: yaml or json (default from extension, else yaml)")

	themeCmd.AddCommand(themeSaveCmd)
	themeCmd.AddCommand(themeListCmd)
	themeCmd.AddCommand(themeShowCmd)
	themeCmd.AddCommand(themeDeleteCmd)
	themeCmd.AddCommand(themeExportCmd)
	themeCmd.AddCommand(themeImportCmd)
	themeCmd.AddCommand(themeBackupCmd)
	rootCmd.AddCommand(themeCmd)
}
