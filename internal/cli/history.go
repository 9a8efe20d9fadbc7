package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"quizmaster/internal/domain"
)

// NewHistoryCmd prints the best-known score per player and difficulty.
func NewHistoryCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show player score history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			service, closeFn, err := newService(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer closeFn()
			printHistory(cmd.OutOrStdout(), service.ListPlayerHistory())
			return nil
		},
	}
}

func printHistory(out io.Writer, players []domain.PlayerRecord) {
	if len(players) == 0 {
		fmt.Fprintln(out, "No players yet.")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprint(w, "PLAYER")
	for _, d := range domain.Difficulties {
		fmt.Fprintf(w, "\t%s", d)
	}
	fmt.Fprintln(w)
	for _, p := range players {
		fmt.Fprint(w, p.Name)
		for _, d := range domain.Difficulties {
			if p.Attempted(d) {
				fmt.Fprintf(w, "\t%d", p.Scores[d])
			} else {
				fmt.Fprint(w, "\t-")
			}
		}
		fmt.Fprintln(w)
	}
	_ = w.Flush()
}
