// RealScroll CLI
//
// Exercises the SDK end to end: authentication, the feed, posting,
// comments, notifications, search and follows, against either the real
// backend or the in-memory mock gateways (USE_MOCKS=true).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/swan07222/RealScroll-app/internal/config"
	"github.com/swan07222/RealScroll-app/internal/logging"
	"github.com/swan07222/RealScroll-app/pkg/api"
	"github.com/swan07222/RealScroll-app/pkg/gateway"
	"github.com/swan07222/RealScroll-app/pkg/mock"
	"github.com/swan07222/RealScroll-app/pkg/session"
	"github.com/swan07222/RealScroll-app/pkg/store"
)

// app is the composition root: one config, one client, one gateway
// set, one session.
type app struct {
	cfg    *config.Config
	client *api.Client
	gw     gateway.Set
	sess   *session.Session
	st     store.Store
}

func newApp() (*app, error) {
	cfg := config.Load()

	if err := logging.Init(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	}); err != nil {
		return nil, fmt.Errorf("logging init: %w", err)
	}

	st, err := store.NewFileStore(cfg.StatePath)
	if err != nil {
		return nil, err
	}

	client := api.New(api.Config{BaseURL: cfg.APIBaseURL, Timeout: cfg.APITimeout})

	var gw gateway.Set
	if cfg.UseMocks {
		gw = mock.NewSet(mock.NewData())
	} else {
		gw = gateway.NewRemote(client)
	}

	sess := session.New(gw.Auth, st)
	// The session supplies the bearer token for every request the
	// remote gateways make from here on.
	client.SetTokenSource(sess)

	return &app{cfg: cfg, client: client, gw: gw, sess: sess, st: st}, nil
}

// restore brings the persisted session back before a command that
// talks to protected endpoints.
func (a *app) restore(cmd *cobra.Command) error {
	if err := a.sess.Restore(cmd.Context()); err != nil {
		return err
	}
	if a.sess.State() != session.StateAuthenticated {
		return fmt.Errorf("not logged in, run `realscroll login` first")
	}
	return nil
}

func main() {
	a, err := newApp()
	if err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
	defer logging.Sync()

	root := &cobra.Command{
		Use:           "realscroll",
		Short:         "RealScroll client",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		a.loginCmd(),
		a.logoutCmd(),
		a.whoamiCmd(),
		a.feedCmd(),
		a.likeCmd(),
		a.postCmd(),
		a.commentsCmd(),
		a.notificationsCmd(),
		a.searchCmd(),
		a.followCmd(),
		a.prefsCmd(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
