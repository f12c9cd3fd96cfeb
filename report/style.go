// Package report renders analysis results as plain-text tables and ASCII
// histograms.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const ruleWidth = 70

var (
	colorSuccess = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorTitle   = lipgloss.Color("#20B9B4")
)

// Printer writes report sections to w. Colors are only emitted when w is a
// terminal.
type Printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	ok       lipgloss.Style
	warn     lipgloss.Style
}

// NewPrinter returns a Printer bound to w.
func NewPrinter(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:        w,
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(colorTitle),
		ok:       r.NewStyle().Foreground(colorSuccess),
		warn:     r.NewStyle().Foreground(colorWarning),
	}
}

// Writer returns the underlying writer.
func (p *Printer) Writer() io.Writer { return p.w }

// Banner prints a title framed by double rules.
func (p *Printer) Banner(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(p.w, "\n%s\n%s\n%s\n", rule, p.title.Render(title), rule)
}

// Section prints a numbered heading followed by a single rule.
func (p *Printer) Section(title string) {
	fmt.Fprintf(p.w, "\n%s\n%s\n", p.title.Render(title), strings.Repeat("-", ruleWidth))
}

// Rule prints a double rule on its own line.
func (p *Printer) Rule() {
	fmt.Fprintf(p.w, "%s\n", strings.Repeat("=", ruleWidth))
}

// OK prints a success line.
func (p *Printer) OK(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.ok.Render("✓"), fmt.Sprintf(format, args...))
}

// Warn prints a warning line.
func (p *Printer) Warn(format string, args ...any) {
	fmt.Fprintf(p.w, "%s %s\n", p.warn.Render("⚠"), fmt.Sprintf(format, args...))
}

// Printf writes unstyled text.
func (p *Printer) Printf(format string, args ...any) {
	fmt.Fprintf(p.w, format, args...)
}
