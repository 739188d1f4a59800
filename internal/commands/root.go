package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Kenyi45/task-manager/config"
	"github.com/Kenyi45/task-manager/internal/client/authclient"
	"github.com/Kenyi45/task-manager/internal/client/httpclient"
	"github.com/Kenyi45/task-manager/internal/client/taskrepo"
	"github.com/Kenyi45/task-manager/internal/client/taskservice"
	"github.com/Kenyi45/task-manager/internal/client/tokenstore"
	"github.com/Kenyi45/task-manager/pkg/log"
)

var rootCmd = &cobra.Command{
	Use:   "taskcli",
	Short: "A CLI client for the task manager API",
	Long: `taskcli talks to the task manager REST API: log in, then create,
list, search, edit and delete your tasks from the terminal.`,
	SilenceUsage: true,
}

// app bundles the explicitly wired client dependencies. Everything is
// constructed here and passed down; no global registry.
type app struct {
	cfg   *config.Config
	store *tokenstore.Store
	repo  taskrepo.Repository
	svc   *taskservice.Service
	auth  *authclient.Client
}

// newApp wires the client stack from config.
func newApp() (*app, error) {
	cfg, err := config.LoadClient()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := log.Init(log.ZapConfig{
		Level:    "warn",
		Mode:     cfg.Logger.Mode,
		Encoding: "console",
	})

	path, err := tokenstore.DefaultPath()
	if err != nil {
		return nil, err
	}
	store := tokenstore.New(path, cfg.Client.AccessTokenKey, cfg.Client.RefreshTokenKey)

	httpClient := httpclient.New(store, httpclient.Options{
		Timeout: cfg.Client.Timeout,
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "session expired, please run `taskcli login` again")
		},
	})

	repo := taskrepo.New(cfg.Client.BaseURL, httpClient, logger)

	return &app{
		cfg:   cfg,
		store: store,
		repo:  repo,
		svc:   taskservice.New(logger, repo),
		auth:  authclient.New(cfg.Client.BaseURL, httpClient, store, logger),
	}, nil
}

// withApp wraps a command function, wiring the client stack first.
func withApp(fn func(a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		return fn(a, cmd, args)
	}
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(rmCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statsCmd)
}
