package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"gameforge/internal/generator"
	"gameforge/internal/model"
	"gameforge/internal/projectmanager"
	"gameforge/pkg/fsutils"
)

func (c *cli) generateCmd() *cobra.Command {
	var (
		req     projectmanager.GenerateRequest
		outDir  string
		force   bool
		asJSON  bool
		openOut bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a game from a template",
		Example: `  gameforge generate --template snake --theme neon --mechanic obstacles
  gameforge generate -t platformer --difficulty hard --var GAME_TITLE="Sky Run" --save --open`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.open(cmd.Context())
			if err != nil {
				return err
			}

			result, genErr := m.Generate(cmd.Context(), req)
			if errors.Is(genErr, projectmanager.ErrTemplateNotFound) {
				return fmt.Errorf("%w (see 'gameforge templates list')", genErr)
			}
			// A failed save still leaves a usable project to export.
			if result == nil || result.Project == nil {
				if result != nil {
					printWarnings(cmd.ErrOrStderr(), result.Warnings)
				}
				return fmt.Errorf("generation failed: %w", genErr)
			}
			if genErr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", genErr)
			}

			if outDir == "" {
				outDir = filepath.Join(c.cfg.Generation.OutputDir, fsutils.SanitizeFilename(result.Project.Title))
			}
			if !force && fsutils.FileExists(filepath.Join(outDir, model.FileHTML)) {
				return fmt.Errorf("%s already contains a game; use --force to overwrite or --out to pick another directory", outDir)
			}
			paths, err := projectmanager.ExportProject(result.Project, outDir)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(result); err != nil {
					return err
				}
			} else {
				printResult(cmd.OutOrStdout(), result, outDir, paths, req.Save && genErr == nil)
				printWarnings(cmd.ErrOrStderr(), result.Warnings)
			}

			if openOut {
				index, err := filepath.Abs(filepath.Join(outDir, model.FileHTML))
				if err != nil {
					return err
				}
				if err := openBrowser("file://" + filepath.ToSlash(index)); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Could not open browser: %v\n", err)
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.TemplateID, "template", "t", "", "Template id (required)")
	f.StringVar(&req.Customizations.Theme, "theme", "", "Theme option id")
	f.StringVar(&req.Customizations.Difficulty, "difficulty", "", "Difficulty option id")
	f.StringSliceVar(&req.Customizations.Mechanics, "mechanic", nil, "Mechanic option ids (repeatable)")
	f.StringSliceVar(&req.Customizations.Visuals, "visual", nil, "Visual option ids (repeatable)")
	f.StringToStringVar(&req.Customizations.Variables, "var", nil, "Template variable override KEY=VALUE (repeatable)")
	f.StringVarP(&req.Prompt, "prompt", "p", "", "Free-text idea passed to the enricher")
	f.StringVar(&req.Title, "title", "", "Project title")
	f.StringVar(&req.Genre, "genre", "", "Genre hint for the enricher")
	f.BoolVar(&req.Save, "save", false, "Also save the project to the project store")
	f.StringVarP(&outDir, "out", "o", "", "Output directory (default <generation.output_dir>/<title>)")
	f.BoolVarP(&force, "force", "f", false, "Overwrite an existing game in the output directory")
	f.BoolVar(&asJSON, "json", false, "Print the full result as JSON")
	f.BoolVar(&openOut, "open", false, "Open the generated game in a browser")
	_ = cmd.MarkFlagRequired("template")
	return cmd
}

func printResult(w io.Writer, result *generator.Result, dir string, paths []string, saved bool) {
	p := result.Project
	fmt.Fprintf(w, "Generated %q from template %s (%s)\n", p.Title, p.TemplateID, result.Status)
	fmt.Fprintf(w, "  Project ID: %s\n", p.ID)
	fmt.Fprintf(w, "  Genre: %s  Difficulty: %s\n", p.Genre, p.Gameplay.Difficulty)
	if p.QA.Passed {
		fmt.Fprintln(w, "  QA: passed")
	} else {
		fmt.Fprintln(w, "  QA: failed")
		for _, check := range p.QA.Checks {
			if !check.Passed {
				fmt.Fprintf(w, "    - %s: %s\n", check.Name, check.Detail)
			}
		}
	}
	fmt.Fprintf(w, "  Wrote %d files to %s\n", len(paths), dir)
	if saved {
		fmt.Fprintln(w, "  Saved to project store")
	}
}

func printWarnings(w io.Writer, warnings []generator.Warning) {
	for _, warning := range warnings {
		fmt.Fprintf(w, "Warning: %s\n", warning)
	}
}
