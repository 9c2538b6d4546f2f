package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/runner/ui"
	"tableflip.dev/reflect/pkg/store"
)

func addUI(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
reflect ui
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := store.Open(nil)
			if err != nil {
				return err
			}
			q := notify.NewQueue(0)
			i := ui.UI{Service: app.New(p, q), Queue: q}
			return i.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
