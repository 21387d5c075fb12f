package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"pdsutils/internal/adapters/tui/styles"
	"pdsutils/internal/domain"
)

// RenderKeyHelp formats a key binding as help text (key + description)
func RenderKeyHelp(b key.Binding) string {
	help := b.Help()
	return fmt.Sprintf("%s %s",
		styles.HelpKey.Render(help.Key),
		styles.HelpDesc.Render(help.Desc),
	)
}

// RenderHelpLine renders multiple key bindings as a help line separated by bullets
func RenderHelpLine(bindings ...key.Binding) string {
	var parts []string
	for _, b := range bindings {
		parts = append(parts, RenderKeyHelp(b))
	}
	return strings.Join(parts, styles.HelpSeparator.String())
}

// RenderMessage renders a message with appropriate styling based on isError
func RenderMessage(message string, isError bool) string {
	if message == "" {
		return ""
	}
	if isError {
		return styles.ErrorMsg.Render(message)
	}
	return styles.Success.Render(message)
}

// RenderLabelValue renders a label: value pair
func RenderLabelValue(label, value string) string {
	return fmt.Sprintf("%s %s", styles.Label.Render(label+":"), value)
}

// RenderRunParams describes the inputs of a recorded scan
func RenderRunParams(run *domain.ScanRun) string {
	p := run.Params
	lines := []string{
		RenderLabelValue("Root", p.Root),
		RenderLabelValue("Cases", joinInts(p.Cases)),
		RenderLabelValue("Realizations", joinInts(p.Realizations)),
		RenderLabelValue("Bodies", chainSummary(p.Chain)),
		RenderLabelValue("Start time", fmt.Sprintf("%gs (every %gs)", p.StartTime, p.SampleInterval)),
		RenderLabelValue("Recorded", run.CreatedAt.Format("2006-01-02 15:04:05")+" in "+run.Duration.Round(time.Millisecond).String()),
	}
	return strings.Join(lines, "\n")
}

// reportColumns are the headers of the per-axis table
var reportColumns = []string{"Axis", "Max", "Time", "Index", "Realization"}

// RenderStatsTable renders one row per axis, highlighting the selected row
func RenderStatsTable(stats *domain.MotionStats, selected int) string {
	rows := make([][]string, 0, len(stats.Axes))
	for _, axis := range stats.Axes {
		st, _ := stats.Get(axis)
		if !st.Found {
			rows = append(rows, []string{string(axis), "-", "-", "-", "no relative motion"})
			continue
		}
		rows = append(rows, []string{
			string(axis),
			fmt.Sprintf("%.4g %s", st.Max, axis.Unit()),
			fmt.Sprintf("%gs", st.Time),
			fmt.Sprintf("%d", st.Index),
			st.Which,
		})
	}

	widths := make([]int, len(reportColumns))
	for i, h := range reportColumns {
		widths[i] = lipgloss.Width(h)
	}
	for _, r := range rows {
		for i, c := range r {
			widths[i] = max(widths[i], lipgloss.Width(c))
		}
	}

	var b strings.Builder
	header := make([]string, len(reportColumns))
	for i, h := range reportColumns {
		header[i] = styles.Cell.Width(widths[i] + 2).Render(h)
	}
	b.WriteString(styles.TableHeader.Render(lipgloss.JoinHorizontal(lipgloss.Top, header...)))
	b.WriteString("\n")

	for i, r := range rows {
		axis := stats.Axes[i]
		st, _ := stats.Get(axis)
		cells := make([]string, len(r))
		for j, c := range r {
			style := styles.Cell.Width(widths[j] + 2)
			switch {
			case j == 0:
				style = style.Foreground(styles.AxisColor(axis.Unit())).Bold(true)
			case !st.Found:
				style = style.Inherit(styles.NoMotion)
			case j == 1:
				style = style.Inherit(styles.PeakValue)
			}
			cells[j] = style.Render(c)
		}
		line := lipgloss.JoinHorizontal(lipgloss.Top, cells...)
		if i == selected {
			line = styles.RowSelected.Render(stripStyles(r, widths))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	return b.String()
}

// stripStyles lays out a row as plain padded text for the selection highlight
func stripStyles(row []string, widths []int) string {
	var b strings.Builder
	for i, c := range row {
		b.WriteString(c)
		b.WriteString(strings.Repeat(" ", widths[i]+2-lipgloss.Width(c)))
	}
	return b.String()
}

func joinInts(nums []int) string {
	parts := make([]string, len(nums))
	for i, n := range nums {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// chainSummary shortens long chains to their ends
func chainSummary(chain []string) string {
	if len(chain) <= 4 {
		return strings.Join(chain, ", ")
	}
	return fmt.Sprintf("%s, %s ... %s (%d bodies)", chain[0], chain[1], chain[len(chain)-1], len(chain))
}

// ViewBuilder helps construct view output with consistent formatting
type ViewBuilder struct {
	b strings.Builder
}

// NewViewBuilder creates a new view builder
func NewViewBuilder() *ViewBuilder {
	return &ViewBuilder{}
}

// Title adds a title section
func (v *ViewBuilder) Title(title string) *ViewBuilder {
	v.b.WriteString(styles.Title.Render(title))
	v.b.WriteString("\n\n")
	return v
}

// Line adds a line of text
func (v *ViewBuilder) Line(text string) *ViewBuilder {
	v.b.WriteString(text)
	v.b.WriteString("\n")
	return v
}

// BlankLine adds a blank line
func (v *ViewBuilder) BlankLine() *ViewBuilder {
	v.b.WriteString("\n")
	return v
}

// Muted adds muted text followed by a newline
func (v *ViewBuilder) Muted(text string) *ViewBuilder {
	v.b.WriteString(styles.MutedText.Render(text))
	v.b.WriteString("\n")
	return v
}

// Message adds a message if non-empty, with appropriate error/success styling
func (v *ViewBuilder) Message(message string, isError bool) *ViewBuilder {
	if message == "" {
		return v
	}
	v.b.WriteString(RenderMessage(message, isError))
	v.b.WriteString("\n\n")
	return v
}

// Help adds a help line with key bindings
func (v *ViewBuilder) Help(bindings ...key.Binding) *ViewBuilder {
	v.b.WriteString(RenderHelpLine(bindings...))
	return v
}

// Raw adds raw text without any formatting
func (v *ViewBuilder) Raw(text string) *ViewBuilder {
	v.b.WriteString(text)
	return v
}

// String returns the built view string wrapped in the app style
func (v *ViewBuilder) String() string {
	return styles.App.Render(v.b.String())
}
