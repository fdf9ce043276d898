package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/paddyterm/internal/catalog"
	"github.com/muurk/paddyterm/internal/content"
)

// Printer provides methods for printing UI components to a writer.
// This is how the non-interactive commands write styled output.
type Printer struct {
	out   io.Writer
	width int
}

// NewPrinter creates a new Printer that writes to the given writer.
// If w is nil, os.Stdout is used.
func NewPrinter(w io.Writer) *Printer {
	if w == nil {
		w = os.Stdout
	}
	return &Printer{
		out:   w,
		width: GetTerminalWidth(),
	}
}

// SetWidth overrides the detected terminal width.
func (p *Printer) SetWidth(width int) *Printer {
	p.width = width
	return p
}

// Println writes content with a newline
func (p *Printer) Println(content string) {
	_, _ = fmt.Fprintln(p.out, content)
}

// PrintHeader prints a banner box
func (p *Printer) PrintHeader(title string, params map[string]string) {
	p.Println(RenderHeader(title, params, p.width))
}

// PrintSuccess prints a success box
func (p *Printer) PrintSuccess(title string, details ...string) {
	p.Println(RenderSuccessBox(title, details, p.width))
}

// PrintError prints an error box with troubleshooting tips
func (p *Printer) PrintError(title string, err error, tips []string) {
	p.Println(RenderErrorBox(title, err, tips, p.width))
}

// PrintCatalog prints the navigation menu with the page each entry loads.
func (p *Printer) PrintCatalog(cat *catalog.Catalog) {
	p.Println(RenderCatalog(cat))
}

// PrintPage prints every tab of a page with its flattened content.
func (p *Printer) PrintPage(page *content.Page, flatten func(content.Tab) []string) {
	p.Println(RenderPage(page, flatten))
}

// RenderCatalog renders the menu as aligned label/page columns, keeping the
// separator row.
func RenderCatalog(cat *catalog.Catalog) string {
	var lines []string
	row := 0
	for _, e := range cat.Entries() {
		for ; row < e.Row; row++ {
			lines = append(lines, "")
		}
		label := lipgloss.NewStyle().Width(cat.Longest() + 2).Render(e.Label)
		lines = append(lines, CardStyle.Render(label)+CouponStyle.Render(e.PageID))
		row++
	}
	return strings.Join(lines, "\n")
}

// RenderPage renders a page tab by tab. The default tab is starred.
func RenderPage(page *content.Page, flatten func(content.Tab) []string) string {
	if len(page.Tabs) == 0 {
		return CouponStyle.Render("(no tabs)")
	}
	initial, _ := page.InitialTab()
	var lines []string
	for i, tab := range page.Tabs {
		if i > 0 {
			lines = append(lines, "")
		}
		marker := " "
		if tab.ID == initial {
			marker = DefaultMarker
		}
		lines = append(lines, TabStyle.Render(fmt.Sprintf("%s %s [%d]", marker, tab.Title, tab.ID)))
		body := flatten(tab)
		if len(body) == 0 {
			lines = append(lines, CouponStyle.Render("  (empty)"))
		}
		for _, l := range body {
			style := CouponStyle
			if !strings.HasPrefix(l, "    ") {
				style = CardStyle
			}
			lines = append(lines, style.Render(l))
		}
	}
	return strings.Join(lines, "\n")
}
