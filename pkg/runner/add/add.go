package add

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/manifoldco/promptui"

	"tableflip.dev/reflect/pkg/app"
	"tableflip.dev/reflect/pkg/entry"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/printers"
)

type Add struct {
	Achievements string
	Anxieties    string
	Improvements string
	Interactive  bool

	Service *app.Service
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no service")
	}
	if err := n.Service.Initialize(ctx); err != nil && !errors.Is(err, app.ErrInitialized) {
		return err
	}

	pp := printers.PrettyPrint{}

	if n.Interactive && !n.Service.Snapshot().HasSubmittedToday {
		if err := n.prompt(); err != nil {
			return err
		}
	}

	f := entry.Form{
		Achievements: n.Achievements,
		Anxieties:    n.Anxieties,
		Improvements: n.Improvements,
	}
	if errs := f.Validate(); len(errs) > 0 {
		for _, msg := range errs {
			pp.Notification(msg, notify.KindError)
		}
		return errors.New("add: reflection is incomplete")
	}

	e, err := n.Service.Submit(ctx, f)
	if err != nil {
		return err
	}

	fmt.Println("")
	pp.Entry(e)
	return nil
}

// prompt collects the three answers interactively, validating each one
// inline so mistakes are caught before submission.
func (n *Add) prompt() error {
	questions := []struct {
		label  string
		target *string
	}{
		{"What went well today?", &n.Achievements},
		{"What made you anxious today?", &n.Anxieties},
		{"What could you improve tomorrow?", &n.Improvements},
	}
	for _, q := range questions {
		p := promptui.Prompt{
			Label:   q.label,
			Default: *q.target,
			Validate: func(s string) error {
				if strings.TrimSpace(s) == "" {
					return errors.New("an answer is required")
				}
				if utf8.RuneCountInString(s) > entry.MaxFieldLen {
					return fmt.Errorf("keep it under %d characters", entry.MaxFieldLen)
				}
				return nil
			},
		}
		v, err := p.Run()
		if err != nil {
			return err
		}
		*q.target = v
	}
	return nil
}
