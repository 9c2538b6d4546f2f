package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/runner/history"
)

func addHistory(topLevel *cobra.Command) {
	h := history.History{}
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse past reflections, newest first",
		Example: `
reflect history
reflect history --limit 7
reflect history --full
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(&printers.PrettyPrint{})
			if err != nil {
				return err
			}
			h.Service = svc
			return h.Do(context.Background())
		},
	}

	cmd.Flags().IntVar(&h.Limit, "limit", 0, "Show at most this many entries (0 for all).")
	cmd.Flags().BoolVar(&h.Full, "full", false, "Print every entry in full instead of the table.")
	cmd.Flags().BoolVar(&h.ShowID, "show-id", false, "Print entry ids.")

	topLevel.AddCommand(cmd)
}
