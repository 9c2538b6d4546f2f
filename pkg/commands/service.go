package commands

import (
	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/store"
)

// newService opens the configured store and wires the state machine to the
// given notifier. One-shot verbs pass a printing notifier; the TUI passes
// its toast queue.
func newService(n notify.Notifier) (*app.Service, error) {
	p, err := store.Open(nil)
	if err != nil {
		return nil, err
	}
	return app.New(p, n), nil
}
