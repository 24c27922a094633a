package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todosync/internal/app"
	"todosync/internal/command"
	"todosync/internal/domain"
	"todosync/internal/engine"
	"todosync/internal/repo"
	"todosync/internal/resource"
	"todosync/internal/textfmt"
)

func syncCmd() *cobra.Command {
	var reset bool
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync round-trip",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				if reset {
					if err := env.Engine.Reset(ctx); err != nil {
						return err
					}
				}
				res, err := env.Engine.Sync(ctx)
				if err != nil {
					return err
				}
				return printResult(res)
			})
		},
	}
	cmd.Flags().BoolVar(&reset, "reset", false, "forget the sync token and cache first")
	return cmd
}

type resultView struct {
	SyncToken     string            `json:"sync_token"`
	FullSync      bool              `json:"full_sync"`
	Resources     []string          `json:"resources"`
	Unchecked     []string          `json:"unchecked,omitempty"`
	TempIDMapping map[string]string `json:"temp_id_mapping,omitempty"`
	Failed        []string          `json:"failed,omitempty"`
}

func printResult(res engine.Result) error {
	v := resultView{
		SyncToken:     res.Response.SyncToken,
		FullSync:      res.Response.FullSync,
		Resources:     resource.Strings(res.Response.ResourceTypes()),
		Unchecked:     resource.Strings(res.Unchecked),
		TempIDMapping: res.Response.TempIDMapping,
	}
	for _, err := range res.Failed {
		v.Failed = append(v.Failed, err.Error())
	}
	if viper.GetBool("json") {
		return printJSON(v)
	}
	kind := "incremental"
	if v.FullSync {
		kind = "full"
	}
	fmt.Println(textfmt.Format("{0} sync, token {1}", kind, v.SyncToken))
	if len(v.Resources) > 0 {
		fmt.Println("resources:", strings.Join(v.Resources, ", "))
	}
	for tempID, real := range v.TempIDMapping {
		fmt.Println(textfmt.Format("  {0} -> {1}", tempID, real))
	}
	for _, f := range v.Failed {
		fmt.Println("failed:", f)
	}
	return nil
}

// submit sends one command and fails when the server rejected it.
func submit(ctx context.Context, env *app.Env, c command.Command) (engine.Result, error) {
	res, err := env.Engine.Sync(ctx, c)
	if err != nil {
		return res, err
	}
	if len(res.Failed) > 0 {
		return res, res.Failed[0]
	}
	return res, nil
}

func journalCmd() *cobra.Command {
	var (
		n       int
		evtType string
	)
	cmd := &cobra.Command{
		Use:   "journal",
		Short: "Show recorded sync round-trips",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				events, err := env.Engine.Repo.LatestEvents(ctx, n, 0, evtType)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(events)
				}
				tw := newTable("ID", "Time", "Type", "Full", "Commands", "Failed", "Resources")
				for _, e := range events {
					tw.AppendRow([]any{e.ID, e.TS, e.Type, e.FullSync, e.Commands, e.Failed, textfmt.Truncate(e.Resources, 40)})
				}
				tw.Render()
				return nil
			})
		},
	}
	cmd.Flags().IntVarP(&n, "limit", "n", 20, "number of entries")
	cmd.Flags().StringVar(&evtType, "type", "", "event type filter")
	return cmd
}

func snapshotCmd() *cobra.Command {
	var deleted bool
	cmd := &cobra.Command{
		Use:   "snapshot <resource>",
		Short: "Show cached resources",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := resource.Parse(args[0])
			if err != nil {
				return err
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				if deleted {
					rows, err := env.Engine.Repo.ListSnapshots(ctx, repo.SnapshotFilters{Resource: string(t), IncludeDeleted: true})
					if err != nil {
						return err
					}
					return printJSONOrTable(rows)
				}
				v, err := env.Engine.Cached(ctx, t)
				if err != nil {
					return err
				}
				if viper.GetBool("json") {
					return printJSON(v)
				}
				return printCached(v)
			})
		},
	}
	cmd.Flags().BoolVar(&deleted, "deleted", false, "include deleted rows, unvalidated")
	return cmd
}

func printCached(v any) error {
	switch rows := v.(type) {
	case []domain.Task:
		tw := newTable("ID", "Content", "Project", "Priority", "Done")
		for _, t := range rows {
			tw.AppendRow([]any{t.ID, textfmt.Truncate(t.Content, 48), t.ProjectID, t.Priority, t.Checked})
		}
		tw.Render()
	case []domain.Project:
		tw := newTable("ID", "Name", "Color", "View")
		for _, p := range rows {
			tw.AppendRow([]any{p.ID, textfmt.Truncate(p.Name, 40), p.Color.Resolve().Name, p.ViewStyle})
		}
		tw.Render()
	case []domain.Section:
		tw := newTable("ID", "Name", "Project", "Order")
		for _, s := range rows {
			tw.AppendRow([]any{s.ID, textfmt.Truncate(s.Name, 40), s.ProjectID, s.SectionOrder})
		}
		tw.Render()
	case []domain.Label:
		tw := newTable("ID", "Name", "Color", "Favorite")
		for _, l := range rows {
			tw.AppendRow([]any{l.ID, l.Name, l.Color.Resolve().Name, l.IsFavorite})
		}
		tw.Render()
	default:
		return printJSONOrTable(v)
	}
	return nil
}
