package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/runner/today"
)

func addToday(topLevel *cobra.Command) {
	showID := false
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show today's reflection, or the three questions still waiting",
		Example: `
reflect today
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(&printers.PrettyPrint{})
			if err != nil {
				return err
			}
			t := today.Today{ShowID: showID, Service: svc}
			return t.Do(context.Background())
		},
	}

	cmd.Flags().BoolVar(&showID, "show-id", false, "Print the entry id.")

	topLevel.AddCommand(cmd)
}
