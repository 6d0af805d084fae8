package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/learncheck/learncheck/internal/app"
	"github.com/learncheck/learncheck/internal/controller"
	"github.com/learncheck/learncheck/internal/gateway"
	"github.com/learncheck/learncheck/internal/hints"
	"github.com/learncheck/learncheck/internal/llm"
	"github.com/learncheck/learncheck/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	identity, err := resolveIdentity(cmd)
	if err != nil {
		return err
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()
	events := st.Events()

	var gw gateway.Gateway = gateway.NewHTTPClient(resolveBackendURL(cmd), nil)

	provider, err := llm.NewProviderFromEnv(ctx, events)
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Hints will come from the backend only.")
	case provider != nil:
		gw = gateway.WithLLMHints(gw, hints.New(provider, hints.DefaultConfig()))
	}

	ctrl := controller.New(gw, st.Sessions(), events, controller.DefaultPacing())
	if err := ctrl.SetIdentity(identity); err != nil {
		return err
	}

	return app.Run(app.Options{
		Controller: ctrl,
		Events:     events,
		Identity:   identity,
	})
}
