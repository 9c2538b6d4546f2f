package ui

import (
	"context"
	"errors"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/tui"
)

type UI struct {
	Service *app.Service
	Queue   *notify.Queue
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open ui, no service")
	}
	if n.Queue == nil {
		n.Queue = notify.NewQueue(0)
	}
	defer n.Queue.Close()
	return tui.Run(ctx, n.Service, n.Queue)
}
