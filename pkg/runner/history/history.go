package history

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/printers"
)

type History struct {
	ShowID bool
	Full   bool
	Limit  int

	Service *app.Service
}

func (n *History) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show history, no service")
	}
	if err := n.Service.Initialize(ctx); err != nil && !errors.Is(err, app.ErrInitialized) {
		return err
	}

	n.Service.SwitchView(app.ViewHistory)
	st := n.Service.Snapshot()

	entries := st.Reflections
	if n.Limit > 0 && n.Limit < len(entries) {
		entries = entries[:n.Limit]
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	switch len(st.Reflections) {
	case 1:
		pp.Title("Reflection History - 1 entry")
	default:
		pp.Title(fmt.Sprintf("Reflection History - %d entries", len(st.Reflections)))
	}
	fmt.Println("")

	if n.Full {
		for _, e := range entries {
			pp.Entry(e)
			pp.NewLine()
		}
		return nil
	}

	pp.History(entries...)
	return nil
}
