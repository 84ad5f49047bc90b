package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"gameforge/internal/catalog"
	"gameforge/internal/model"
)

func (c *cli) templatesCmd() *cobra.Command {
	templatesCmd := &cobra.Command{
		Use:     "templates",
		Aliases: []string{"t"},
		Short:   "Browse the template catalog",
	}

	var filters catalog.Filters
	addFilterFlags := func(cmd *cobra.Command) {
		cmd.Flags().StringVar(&filters.Category, "category", "", "Only templates in this category")
		cmd.Flags().StringVar(&filters.Complexity, "complexity", "", "Only templates of this complexity")
		cmd.Flags().StringSliceVar(&filters.Tags, "tag", nil, "Only templates carrying every given tag")
		cmd.Flags().StringVar(&filters.Framework, "framework", "", "Only templates built on this framework")
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			return printTemplates(cmd.OutOrStdout(), cat.Search("", filters))
		},
	}
	addFilterFlags(listCmd)

	searchCmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search template names, descriptions and tags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			found := cat.Search(args[0], filters)
			if len(found) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No templates match %q.\n", args[0])
				return nil
			}
			return printTemplates(cmd.OutOrStdout(), found)
		},
	}
	addFilterFlags(searchCmd)

	var asYAML bool
	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a template's details and customization options",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := c.catalog()
			if err != nil {
				return err
			}
			t, ok := cat.ByID(args[0])
			if !ok {
				return fmt.Errorf("template %q not found (see 'gameforge templates list')", args[0])
			}
			if asYAML {
				enc := yaml.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent(2)
				defer enc.Close()
				return enc.Encode(t)
			}
			printTemplate(cmd.OutOrStdout(), t)
			return nil
		},
	}
	showCmd.Flags().BoolVar(&asYAML, "yaml", false, "Print the full template as YAML (loadable from generation.catalog_dir)")

	templatesCmd.AddCommand(listCmd, searchCmd, showCmd)
	return templatesCmd
}

func printTemplates(w io.Writer, templates []model.Template) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tCOMPLEXITY\tFRAMEWORK\tTAGS")
	for _, t := range templates {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Name, t.Category, t.Complexity, t.Structure.Framework, strings.Join(t.Tags, ","))
	}
	return tw.Flush()
}

func printTemplate(w io.Writer, t model.Template) {
	fmt.Fprintf(w, "%s (%s) v%s\n", t.Name, t.ID, t.Version)
	fmt.Fprintf(w, "  %s\n", t.Description)
	fmt.Fprintf(w, "  Category: %s  Complexity: %s  Framework: %s  Time: %s\n",
		t.Category, t.Complexity, t.Structure.Framework, t.EstimatedTime)
	fmt.Fprintf(w, "  Tags: %s\n", strings.Join(t.Tags, ", "))

	fmt.Fprintln(w, "\nThemes:")
	for _, o := range t.Options.Themes {
		fmt.Fprintf(w, "  %-18s %s\n", o.ID, o.Description)
	}
	fmt.Fprintln(w, "Difficulties:")
	for _, o := range t.Options.Difficulties {
		fmt.Fprintf(w, "  %-18s %s\n", o.ID, o.Description)
	}
	fmt.Fprintln(w, "Mechanics:")
	for _, o := range t.Options.Mechanics {
		fmt.Fprintf(w, "  %-18s %s\n", o.ID, o.Description)
	}
	fmt.Fprintln(w, "Visuals:")
	for _, o := range t.Options.Visuals {
		fmt.Fprintf(w, "  %-18s %s\n", o.ID, o.Description)
	}
}
