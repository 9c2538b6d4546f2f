package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/reflect/pkg/entry"
	"tableflip.dev/reflect/pkg/notify"
	"tableflip.dev/reflect/pkg/timeutil"
)

const (
	wrapWidth    = 72
	previewWidth = 40
)

var nowFn = time.Now

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Entry prints one reflection in full: the display date, the time it was
// written, and the three answers under their questions.
func (pp *PrettyPrint) Entry(e *entry.Entry) {
	if e == nil {
		return
	}

	heading := timeutil.DisplayDate(e.Date)
	if !e.Created.IsZero() {
		heading += color.New(color.Faint).Sprintf("  ·  %s", e.Created.Local().Format("3:04 PM"))
	}
	pp.Title(heading)
	if pp.ShowID {
		_, _ = color.New(color.FgHiYellow, color.Faint, color.Italic).Println(e.ID)
	}

	pp.section("What went well today?", e.Achievements)
	pp.section("What made you anxious today?", e.Anxieties)
	pp.section("What could you improve tomorrow?", e.Improvements)
}

func (pp *PrettyPrint) section(question, answer string) {
	q := color.New(color.Bold)
	_, _ = q.Printf("\n%s\n", question)
	for _, line := range strings.Split(wordwrap.String(answer, wrapWidth), "\n") {
		fmt.Printf("  %s\n", line)
	}
}

// History prints the reverse-chronological entry table.
func (pp *PrettyPrint) History(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	table := uitable.New()
	table.MaxColWidth = previewWidth
	table.Wrap = true
	if pp.ShowID {
		table.AddRow("ID", "DATE", "WHEN", "WENT WELL")
	} else {
		table.AddRow("DATE", "WHEN", "WENT WELL")
	}
	for _, e := range entries {
		if e == nil {
			continue
		}
		when := timeutil.TimeAgo(e.Date, nowFn())
		if pp.ShowID {
			table.AddRow(e.ID, e.Date, when, preview(e.Achievements))
		} else {
			table.AddRow(e.Date, when, preview(e.Achievements))
		}
	}
	fmt.Println(table)
	fmt.Println("")
}

// Notification prints a single queued message with a kind marker, the
// CLI rendering of the notification surface.
func (pp *PrettyPrint) Notification(message string, kind notify.Kind) {
	switch kind {
	case notify.KindSuccess:
		_, _ = color.New(color.FgGreen).Printf("✔ %s\n", message)
	case notify.KindError:
		_, _ = color.New(color.FgRed).Printf("✘ %s\n", message)
	default:
		_, _ = color.New(color.FgBlue).Printf("ℹ %s\n", message)
	}
}

// Notify implements the app's notifier contract so one-shot CLI verbs can
// surface outcomes inline instead of through a timed queue.
func (pp *PrettyPrint) Notify(message string, kind notify.Kind) {
	pp.Notification(message, kind)
}

func preview(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	runes := []rune(s)
	if len(runes) > previewWidth {
		return string(runes[:previewWidth-1]) + "…"
	}
	return s
}
