package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learncheck/learncheck/internal/store"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the saved quiz session for a learner and tutorial",
	RunE: func(cmd *cobra.Command, args []string) error {
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

		if err := st.Sessions().Clear(cmd.Context(), identity); err != nil {
			return fmt.Errorf("clear session: %w", err)
		}
		fmt.Printf("Cleared saved session for %s / %s\n", identity.UserID, identity.TutorialID)
		return nil
	},
}
