package cmd

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/learncheck/learncheck/internal/stubapi"
)

var stubAddr string

var stubCmd = &cobra.Command{
	Use:   "stub",
	Short: "Run a local stub backend with sample quiz data",
	Long:  "Serves the quiz backend API with deterministic sample questions, for development without a real backend.",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv := stubapi.NewServer()
		fmt.Printf("Stub backend listening on %s\n", stubAddr)
		return http.ListenAndServe(stubAddr, srv.Handler())
	},
}

func init() {
	stubCmd.Flags().StringVar(&stubAddr, "addr", "127.0.0.1:8077", "Address to listen on")
}
