package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/learncheck/learncheck/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show past completed attempts for a learner and tutorial",
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

		attempts, err := st.Events().ListAttempts(cmd.Context(), identity, 0)
		if err != nil {
			return fmt.Errorf("list attempts: %w", err)
		}
		if len(attempts) == 0 {
			fmt.Println("No completed attempts yet.")
			return nil
		}

		fmt.Printf("Attempts for %s / %s:\n\n", identity.UserID, identity.TutorialID)
		for _, a := range attempts {
			fmt.Printf("  %s  %3d%%  %d/%d correct\n",
				a.CompletedAt.Local().Format("2006-01-02 15:04"),
				a.Score, a.CorrectCount, a.TotalQuestions)
		}
		return nil
	},
}
