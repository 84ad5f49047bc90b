package main

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"gameforge/internal/model"
	"gameforge/internal/storage"
	"gameforge/pkg/fsutils"
)

func (c *cli) projectsCmd() *cobra.Command {
	projectsCmd := &cobra.Command{
		Use:     "projects",
		Aliases: []string{"p"},
		Short:   "Manage saved projects",
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List saved projects, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			projects, err := m.List(cmd.Context())
			if err != nil {
				return err
			}
			if len(projects) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved projects.")
				return nil
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tTITLE\tTEMPLATE\tGENRE\tQA\tFILES\tCREATED")
			for _, p := range projects {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%d\t%s\n",
					p.ID, p.Title, p.TemplateID, p.Genre, qaLabel(p.QAPassed), p.FileCount,
					p.CreatedAt.Local().Format("2006-01-02 15:04"))
			}
			return tw.Flush()
		},
	}

	var asJSON bool
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a saved project",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			p, err := m.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(w)
				enc.SetIndent("", "  ")
				return enc.Encode(p)
			}
			fmt.Fprintf(w, "%s (%s)\n", p.Title, p.ID)
			fmt.Fprintf(w, "  Template: %s v%s  Genre: %s\n", p.TemplateID, p.TemplateVersion, p.Genre)
			fmt.Fprintf(w, "  Created: %s\n", p.CreatedAt.Local().Format("2006-01-02 15:04:05"))
			fmt.Fprintf(w, "  QA: %s\n", qaLabel(p.QA.Passed))
			if p.Story.Plot != "" {
				fmt.Fprintf(w, "\nStory: %s\n", p.Story.Plot)
			}
			for _, ch := range p.Story.Characters {
				fmt.Fprintf(w, "  - %s (%s): %s\n", ch.Name, ch.Role, ch.Description)
			}
			fmt.Fprintf(w, "\nGameplay: difficulty %s, mechanics %s\n",
				p.Gameplay.Difficulty, strings.Join(p.Gameplay.Mechanics, ", "))
			fmt.Fprintln(w, "\nFiles:")
			names := lo.Keys(p.Files)
			sort.Strings(names)
			for _, name := range names {
				fmt.Fprintf(w, "  %-16s %6d bytes\n", name, len(p.Files[name]))
			}
			return nil
		},
	}
	showCmd.Flags().BoolVar(&asJSON, "json", false, "Print the full project as JSON")

	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete saved projects",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			ids := lo.Uniq(args)
			if !yes {
				prompt := fmt.Sprintf("Delete %d project(s): %s?", len(ids), strings.Join(ids, ", "))
				if !askForConfirmation(bufio.NewReader(cmd.InOrStdin()), cmd.OutOrStdout(), prompt) {
					fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
					return nil
				}
			}
			var failed []string
			for _, id := range ids {
				if err := m.Delete(cmd.Context(), id); err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "Error deleting %s: %v\n", id, err)
					failed = append(failed, id)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", id)
			}
			if len(failed) > 0 {
				return fmt.Errorf("failed to delete %d project(s): %s", len(failed), strings.Join(failed, ", "))
			}
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")

	var (
		outDir  string
		openOut bool
	)
	exportCmd := &cobra.Command{
		Use:   "export <id>",
		Short: "Write a saved project's files to a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := c.open(cmd.Context())
			if err != nil {
				return err
			}
			p, err := m.Get(cmd.Context(), args[0])
			if errors.Is(err, storage.ErrProjectNotFound) {
				return fmt.Errorf("%w (see 'gameforge projects list')", err)
			} else if err != nil {
				return err
			}
			dir := outDir
			if dir == "" {
				dir = filepath.Join(c.cfg.Generation.OutputDir, fsutils.SanitizeFilename(p.Title))
			}
			paths, err := m.Export(cmd.Context(), p.ID, dir)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d files to %s\n", len(paths), dir)
			if openOut {
				index, err := filepath.Abs(filepath.Join(dir, model.FileHTML))
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
	exportCmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default <generation.output_dir>/<title>)")
	exportCmd.Flags().BoolVar(&openOut, "open", false, "Open the exported game in a browser")

	projectsCmd.AddCommand(listCmd, showCmd, deleteCmd, exportCmd)
	return projectsCmd
}

func qaLabel(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}
