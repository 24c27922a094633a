package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todosync/internal/app"
	"todosync/internal/command"
	"todosync/internal/textfmt"
)

func taskCmd() *cobra.Command {
	task := &cobra.Command{Use: "task", Short: "Change tasks"}
	task.AddCommand(taskAddCmd())
	task.AddCommand(taskCompleteCmd())
	task.AddCommand(taskMoveCmd())
	task.AddCommand(taskDeleteCmd())
	return task
}

// create sends a creating command under a temp id and reports the
// permanent id the server assigned.
func create(ctx context.Context, env *app.Env, kind, tempID string, args command.Args) error {
	if tempID == "" {
		tempID = uuid.NewString()
	}
	c, err := env.Engine.Build(args.Command(), args, command.WithTempID(tempID))
	if err != nil {
		return err
	}
	res, err := submit(ctx, env, c)
	if err != nil {
		return err
	}
	id := res.Response.TempIDMapping.Resolve(tempID)
	if viper.GetBool("json") {
		return printJSON(map[string]string{"id": id, "temp_id": tempID, "sync_token": res.Response.SyncToken})
	}
	fmt.Println(textfmt.Format("Created {0} {1}", kind, id))
	return nil
}

// mutate resolves id through earlier temp ids and sends one command.
func mutate(ctx context.Context, env *app.Env, id string, build func(id string) command.Args) error {
	real, err := env.Engine.ResolveID(ctx, id)
	if err != nil {
		return err
	}
	args := build(real)
	c, err := env.Engine.Build(args.Command(), args)
	if err != nil {
		return err
	}
	res, err := submit(ctx, env, c)
	if err != nil {
		return err
	}
	if viper.GetBool("json") {
		return printJSON(map[string]string{"id": real, "command": string(c.Type()), "sync_token": res.Response.SyncToken})
	}
	fmt.Println(textfmt.Format("{0} {1}", c.Type(), real))
	return nil
}

func taskAddCmd() *cobra.Command {
	var (
		a        command.ItemAddArgs
		priority int
		due      string
		tempID   string
	)
	cmd := &cobra.Command{
		Use:   "add <content>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Content = strings.Join(args, " ")
			if cmd.Flags().Changed("priority") {
				a.Priority = &priority
			}
			if due != "" {
				a.Due = &command.Due{String: due}
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				for _, ref := range []*string{&a.ProjectID, &a.SectionID, &a.ParentID} {
					if *ref == "" {
						continue
					}
					real, err := env.Engine.ResolveID(ctx, *ref)
					if err != nil {
						return err
					}
					*ref = real
				}
				return create(ctx, env, "task", tempID, a)
			})
		},
	}
	cmd.Flags().StringVar(&a.Description, "description", "", "description")
	cmd.Flags().StringVar(&a.ProjectID, "project", "", "project id")
	cmd.Flags().StringVar(&a.SectionID, "section", "", "section id")
	cmd.Flags().StringVar(&a.ParentID, "parent", "", "parent task id")
	cmd.Flags().StringSliceVar(&a.Labels, "label", nil, "label name (repeatable)")
	cmd.Flags().IntVar(&priority, "priority", 1, "priority 1-4")
	cmd.Flags().StringVar(&due, "due", "", "due date in natural language")
	cmd.Flags().StringVar(&tempID, "temp-id", "", "temp id to refer to the task later")
	return cmd
}

func taskCompleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "complete <id>",
		Short: "Complete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				return mutate(ctx, env, args[0], func(id string) command.Args {
					return command.ItemCloseArgs{ID: id}
				})
			})
		},
	}
}

func taskMoveCmd() *cobra.Command {
	var project, section, parent string
	cmd := &cobra.Command{
		Use:   "move <id>",
		Short: "Move a task to a project, section or parent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set := 0
			for _, v := range []string{project, section, parent} {
				if v != "" {
					set++
				}
			}
			if set != 1 {
				return fmt.Errorf("exactly one of --project, --section, --parent is required")
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				target := project + section + parent
				real, err := env.Engine.ResolveID(ctx, target)
				if err != nil {
					return err
				}
				return mutate(ctx, env, args[0], func(id string) command.Args {
					switch {
					case project != "":
						return command.ItemMoveToProjectArgs{ID: id, ProjectID: real}
					case section != "":
						return command.ItemMoveToSectionArgs{ID: id, SectionID: real}
					}
					return command.ItemMoveToParentArgs{ID: id, ParentID: real}
				})
			})
		},
	}
	cmd.Flags().StringVar(&project, "project", "", "target project id")
	cmd.Flags().StringVar(&section, "section", "", "target section id")
	cmd.Flags().StringVar(&parent, "parent", "", "target parent task id")
	return cmd
}

func taskDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task and its subtasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				return mutate(ctx, env, args[0], func(id string) command.Args {
					return command.ItemDeleteArgs{ID: id}
				})
			})
		},
	}
}

func projectCmd() *cobra.Command {
	prj := &cobra.Command{Use: "project", Short: "Change projects"}
	prj.AddCommand(projectAddCmd())
	return prj
}

func projectAddCmd() *cobra.Command {
	var (
		a         command.ProjectAddArgs
		color     string
		viewStyle string
		favorite  bool
		tempID    string
	)
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a.Name = strings.Join(args, " ")
			c, err := parseColor(color)
			if err != nil {
				return err
			}
			a.Color = c
			if viewStyle != "" {
				a.ViewStyle = &viewStyle
			}
			if cmd.Flags().Changed("favorite") {
				a.IsFavorite = &favorite
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				if a.ParentID != "" {
					real, err := env.Engine.ResolveID(ctx, a.ParentID)
					if err != nil {
						return err
					}
					a.ParentID = real
				}
				return create(ctx, env, "project", tempID, a)
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "color name or id (see todosync colors)")
	cmd.Flags().StringVar(&a.ParentID, "parent", "", "parent project id")
	cmd.Flags().StringVar(&viewStyle, "view-style", "", "list, board or calendar")
	cmd.Flags().BoolVar(&favorite, "favorite", false, "mark as favorite")
	cmd.Flags().StringVar(&tempID, "temp-id", "", "temp id to refer to the project later")
	return cmd
}

func labelCmd() *cobra.Command {
	lbl := &cobra.Command{Use: "label", Short: "Change labels"}
	lbl.AddCommand(labelAddCmd())
	return lbl
}

func labelAddCmd() *cobra.Command {
	var color, tempID string
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a personal label",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColor(color)
			if err != nil {
				return err
			}
			return withEnv(cmd.Context(), func(ctx context.Context, env *app.Env) error {
				return create(ctx, env, "label", tempID, command.LabelAddArgs{Name: args[0], Color: c})
			})
		},
	}
	cmd.Flags().StringVar(&color, "color", "", "color name or id")
	cmd.Flags().StringVar(&tempID, "temp-id", "", "temp id to refer to the label later")
	return cmd
}
