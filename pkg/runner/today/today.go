package today

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/printers"
	"tableflip.dev/reflect/pkg/timeutil"
)

type Today struct {
	ShowID  bool
	Service *app.Service
}

func (n *Today) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show today, no service")
	}
	if err := n.Service.Initialize(ctx); err != nil && !errors.Is(err, app.ErrInitialized) {
		return err
	}

	st := n.Service.Snapshot()
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	if st.HasSubmittedToday {
		pp.Entry(st.Today)
		pp.NewLine()
		fmt.Println("Today's reflection is complete. Come back tomorrow.")
		return nil
	}

	pp.Title(timeutil.DisplayDate(timeutil.Today()))
	fmt.Println("")
	fmt.Println("You haven't reflected today. Three questions are waiting:")
	fmt.Println("")
	fmt.Println("  1. What went well today?")
	fmt.Println("  2. What made you anxious today?")
	fmt.Println("  3. What could you improve tomorrow?")
	fmt.Println("")
	fmt.Println("Answer them with: reflect add")
	return nil
}
