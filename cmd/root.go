package cmd

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/learncheck/learncheck/internal/quiz"
	"github.com/learncheck/learncheck/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "learncheck",
	Short: "Self-check quizzes for tutorials, in your terminal",
	Long:  "LearnCheck runs the self-assessment quiz for a tutorial, with AI-generated hints when you get stuck.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	// A .env in the working directory may carry API keys for local dev.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides LEARNCHECK_DB env var)")
	rootCmd.PersistentFlags().String("user", "", "Learner ID (overrides LEARNCHECK_USER env var)")
	rootCmd.PersistentFlags().String("tutorial", "", "Tutorial ID (overrides LEARNCHECK_TUTORIAL env var)")
	rootCmd.PersistentFlags().String("backend", "", "Backend base URL (overrides LEARNCHECK_BACKEND_URL env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(stubCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then LEARNCHECK_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveIdentity returns who is taking which quiz. The user ID falls
// back to "local" for single-machine use; the tutorial ID is required.
func resolveIdentity(cmd *cobra.Command) (quiz.Identity, error) {
	user, _ := cmd.Flags().GetString("user")
	if user == "" {
		user = os.Getenv("LEARNCHECK_USER")
	}
	if user == "" {
		user = "local"
	}

	tutorial, _ := cmd.Flags().GetString("tutorial")
	if tutorial == "" {
		tutorial = os.Getenv("LEARNCHECK_TUTORIAL")
	}
	if tutorial == "" {
		return quiz.Identity{}, errors.New("no tutorial selected: pass --tutorial or set LEARNCHECK_TUTORIAL")
	}

	return quiz.Identity{UserID: user, TutorialID: tutorial}, nil
}

func resolveBackendURL(cmd *cobra.Command) string {
	if u, _ := cmd.Flags().GetString("backend"); u != "" {
		return u
	}
	return os.Getenv("LEARNCHECK_BACKEND_URL")
}
