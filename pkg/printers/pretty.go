package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/oneiro/pkg/dream"
)

type PrettyPrint struct {
	ShowID bool
}

const monthLayout = "January 2006"

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Notice prints an informational user-facing message. Notices never abort
// the broader flow.
func (pp *PrettyPrint) Notice(message string) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Println(message)
}

// Dreams prints records most-recent-first, grouped under month/year
// headings. The input is expected ascending by date, the way the store hands
// it out.
func (pp *PrettyPrint) Dreams(records ...*dream.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	h := color.New(color.Bold, color.Underline)

	var tbl *uitable.Table
	var current time.Time
	flush := func() {
		if tbl != nil {
			_, _ = fmt.Fprintln(color.Output, tbl)
			fmt.Println("")
		}
	}

	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		if tbl == nil || !r.Date.SameMonth(current) {
			flush()
			current = r.Date.Time
			_, _ = h.Println(r.Date.Local().Format(monthLayout))
			tbl = uitable.New()
			tbl.MaxColWidth = 60
			tbl.Separator = "  "
		}
		tbl.AddRow(pp.row(r)...)
	}
	flush()
}

func (pp *PrettyPrint) row(r *dream.Record) []interface{} {
	cells := make([]interface{}, 0, 5)
	if pp.ShowID {
		cells = append(cells, color.New(color.FgHiYellow, color.Faint).Sprint(r.ID))
	}
	cells = append(cells,
		fmt.Sprintf("(%d)", r.Vividness),
		r.Title,
		r.Date.Day().Format("Mon Jan 02 2006"),
		strings.Join(r.Tags, ", "),
	)
	return cells
}

// Backup prints the append-only log in append order, every saved version
// included.
func (pp *PrettyPrint) Backup(records ...*dream.Record) {
	if len(records) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	tbl := uitable.New()
	tbl.MaxColWidth = 60
	tbl.Separator = "  "
	for _, r := range records {
		tbl.AddRow(pp.row(r)...)
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Tags prints a flat tag listing.
func (pp *PrettyPrint) Tags(tags ...string) {
	if len(tags) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	t := color.New()
	for _, tag := range tags {
		_, _ = t.Println(tag)
	}
}
