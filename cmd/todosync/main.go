package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todosync/internal/app"
	"todosync/internal/db"
)

var rootCmd = &cobra.Command{
	Use:   "todosync",
	Short: "Todo sync client",
	Long: `todosync batches task-list mutations into sync round-trips and keeps a validated local copy.
- Commands: every mutation is a typed command with a unique uuid; creating commands may carry a temp id.
- Sync: one round-trip sends pending commands with the last sync token and returns changed resources.
- Snapshots: returned resources are checked against their expected shape before they are cached in .todosync.
- Journal: each round-trip is recorded, view it with 'todosync journal'.
- Dev server: 'todosync serve' runs an in-memory sync endpoint for local work.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	addPersistentFlags()
	registerCommands()
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("TODOSYNC")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().StringP("workspace", "w", ".", "workspace directory")
	rootCmd.PersistentFlags().Bool("json", false, "output JSON")
	rootCmd.PersistentFlags().String("base-url", "", "sync endpoint (overrides todosync.yml)")
	rootCmd.PersistentFlags().String("token", "", "API token (env TODOSYNC_TOKEN)")
	rootCmd.PersistentFlags().Duration("timeout", 0, "request timeout (overrides todosync.yml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log each round-trip")
	for _, name := range []string{"workspace", "json", "base-url", "token", "timeout", "verbose"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

func registerCommands() {
	rootCmd.AddCommand(syncCmd())
	rootCmd.AddCommand(journalCmd())
	rootCmd.AddCommand(snapshotCmd())
	rootCmd.AddCommand(taskCmd())
	rootCmd.AddCommand(projectCmd())
	rootCmd.AddCommand(labelCmd())
	rootCmd.AddCommand(commandsCmd())
	rootCmd.AddCommand(resourcesCmd())
	rootCmd.AddCommand(colorsCmd())
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(devTokenCmd())
	rootCmd.AddCommand(configCmd())
}

func newLogger() *slog.Logger {
	level := slog.LevelWarn
	if viper.GetBool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func options() app.Options {
	return app.Options{
		Workspace: viper.GetString("workspace"),
		BaseURL:   viper.GetString("base-url"),
		Token:     viper.GetString("token"),
		Timeout:   viper.GetDuration("timeout"),
		Logger:    newLogger(),
	}
}

func withEnv(ctx context.Context, fn func(context.Context, *app.Env) error) error {
	if _, err := db.EnsureWorkspace(viper.GetString("workspace")); err != nil {
		return err
	}
	env, err := app.Open(ctx, options())
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(ctx, env)
}
