package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	a := add.Add{}
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record today's reflection",
		Long: "Record today's reflection by answering the three daily questions.\n" +
			"With no flags the questions are asked interactively.",
		Example: `
reflect add
reflect add --went-well "shipped the release" --anxious "review backlog" --improve "start earlier"
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := newService(&printers.PrettyPrint{})
			if err != nil {
				return err
			}
			a.Service = svc
			a.Interactive = a.Achievements == "" && a.Anxieties == "" && a.Improvements == ""
			return a.Do(context.Background())
		},
	}

	cmd.Flags().StringVar(&a.Achievements, "went-well", "", "What went well today.")
	cmd.Flags().StringVar(&a.Anxieties, "anxious", "", "What made you anxious today.")
	cmd.Flags().StringVar(&a.Improvements, "improve", "", "What you could improve tomorrow.")

	topLevel.AddCommand(cmd)
}
