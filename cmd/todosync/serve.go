package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"todosync/internal/devserver"
)

func serveCmd() *cobra.Command {
	var addr, token, jwtSecret string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the in-memory dev sync server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if jwtSecret == "" {
				jwtSecret = os.Getenv("TODOSYNC_JWT_SECRET")
			}
			logger := newLogger()
			handler, err := devserver.New(devserver.Config{
				Auth:   devserver.AuthConfig{Token: token, JWTSecret: jwtSecret},
				State:  devserver.NewState(),
				Logger: logger,
			})
			if err != nil {
				return err
			}
			srv := &http.Server{Addr: addr, Handler: handler}
			go func() {
				<-cmd.Context().Done()
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				srv.Shutdown(ctx)
			}()
			auth := "no auth"
			if token != "" || jwtSecret != "" {
				auth = "bearer auth"
			}
			fmt.Printf("Serving dev sync endpoint on http://%s/sync (%s, OpenAPI at /openapi.json)\n", addr, auth)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "127.0.0.1:8787", "listen address")
	cmd.Flags().StringVar(&token, "token", "", "static bearer token clients must send")
	cmd.Flags().StringVar(&jwtSecret, "jwt-secret", "", "accept HS256 bearer JWTs signed with this secret (env TODOSYNC_JWT_SECRET)")
	return cmd
}

func devTokenCmd() *cobra.Command {
	var secret, subject string
	var ttl time.Duration
	cmd := &cobra.Command{
		Use:   "dev-token",
		Short: "Mint a bearer JWT for the dev server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if secret == "" {
				secret = os.Getenv("TODOSYNC_JWT_SECRET")
			}
			tok, err := devserver.MintToken(secret, subject, ttl, time.Now())
			if err != nil {
				return err
			}
			if viper.GetBool("json") {
				return printJSON(map[string]string{"token": tok, "subject": subject})
			}
			fmt.Println(tok)
			return nil
		},
	}
	cmd.Flags().StringVar(&secret, "jwt-secret", "", "signing secret (env TODOSYNC_JWT_SECRET)")
	cmd.Flags().StringVar(&subject, "subject", "dev", "token subject")
	cmd.Flags().DurationVar(&ttl, "ttl", 24*time.Hour, "lifetime, 0 for none")
	return cmd
}
