package main

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todosync/internal/colors"
	"todosync/internal/command"
	"todosync/internal/devserver"
	"todosync/internal/resource"
	"todosync/internal/response"
)

func commandsCmd() *cobra.Command {
	var family string
	cmd := &cobra.Command{
		Use:   "commands",
		Short: "List known command types",
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				Type      command.Type   `json:"type"`
				Family    command.Family `json:"family"`
				Variants  []string       `json:"variants,omitempty"`
				Creates   bool           `json:"creates"`
				DevServer bool           `json:"dev_server"`
			}
			var rows []row
			for _, d := range command.Definitions() {
				if family != "" && string(d.Family) != family {
					continue
				}
				rows = append(rows, row{d.Type, d.Family, d.Variants, d.Creates, devserver.Supported(d.Type)})
			}
			if viper.GetBool("json") {
				return printJSON(rows)
			}
			tw := newTable("Type", "Family", "Variants", "Creates", "Dev server")
			for _, r := range rows {
				tw.AppendRow([]any{r.Type, r.Family, strings.Join(r.Variants, ","), r.Creates, r.DevServer})
			}
			tw.Render()
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", "", "only this family, e.g. items")
	return cmd
}

func resourcesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List resource type selectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			type row struct {
				Type      resource.Type `json:"type"`
				Validated bool          `json:"validated"`
			}
			var rows []row
			for _, t := range resource.Known() {
				rows = append(rows, row{t, response.HasShape(t)})
			}
			if viper.GetBool("json") {
				return printJSON(rows)
			}
			tw := newTable("Selector", "Validated")
			for _, r := range rows {
				tw.AppendRow([]any{r.Type, r.Validated})
			}
			tw.Render()
			return nil
		},
	}
}

func colorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "colors",
		Short: "List the color palette",
		RunE: func(cmd *cobra.Command, args []string) error {
			all := colors.All()
			if viper.GetBool("json") {
				return printJSON(all)
			}
			tw := newTable("ID", "Name", "Hex")
			for _, c := range all {
				tw.AppendRow([]any{c.ID, c.Name, c.Hex})
			}
			tw.Render()
			return nil
		},
	}
}
