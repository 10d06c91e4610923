package viz

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/algoviz/internal/metrics"
	"github.com/san-kum/algoviz/internal/playback"
	"github.com/san-kum/algoviz/internal/step"
)

const (
	chartHeight = 10
	columnWidth = 4
)

func (a *App) View() string {
	switch a.screen {
	case screenInput:
		return a.viewInput()
	case screenVisualize:
		return a.viewVisualize()
	}
	return a.viewMenu()
}

func (a *App) header(sub string) string {
	var b strings.Builder
	b.WriteString("\n    " + GradientText("ALGOVIZ", a.theme.Primary, a.theme.Accent))
	if sub != "" {
		b.WriteString(a.st.muted.Render("  ›  ") + a.st.text.Render(sub))
	}
	b.WriteString("\n    " + Separator(36, a.theme.Muted) + "\n\n")
	return b.String()
}

func (a *App) viewMenu() string {
	var b strings.Builder
	b.WriteString(a.header(""))

	for i, info := range a.infos {
		name := fmt.Sprintf("%-16s", info.Name)
		meta := fmt.Sprintf("%-10s %-7s %s", info.Category, info.Difficulty, info.Time.Average)
		if !info.Implemented {
			meta += "  (coming soon)"
		}
		if i == a.cursor {
			b.WriteString("    " + a.st.selected.Render("▸ "+name) + " " + a.st.text.Render(meta) + "\n")
			b.WriteString("      " + a.st.muted.Render(info.Description) + "\n")
		} else {
			b.WriteString("      " + a.st.muted.Render(name) + " " + a.st.muted.Render(meta) + "\n")
		}
	}

	if a.notice != "" {
		b.WriteString("\n    " + a.st.selected.Render(a.notice) + "\n")
	}
	b.WriteString("\n    " + a.help.View(a.keys) + "\n")
	return b.String()
}

func (a *App) viewInput() string {
	var b strings.Builder
	b.WriteString(a.header(a.info.Name))

	lim := a.info.Limits
	hint := fmt.Sprintf("up to %d numbers, separated by commas or spaces", lim.MaxLen)
	if lim.RequiresSorted {
		hint += "; sorted before searching"
	}

	b.WriteString(a.renderField("values", a.values, a.field == fieldValues) + "\n")
	b.WriteString("      " + a.st.muted.Render(hint) + "\n")
	if lim.NeedsTarget {
		b.WriteString("\n" + a.renderField("target", a.target, a.field == fieldTarget) + "\n")
	}
	if a.inputErr != nil {
		b.WriteString("\n    " + a.st.err.Render(a.inputErr.Error()) + "\n")
	}
	b.WriteString("\n    " + a.help.View(inputHelp{a.keys}) + "\n")
	return b.String()
}

func (a *App) renderField(label, value string, focused bool) string {
	if focused {
		return "    " + a.st.selected.Render("▸ "+fmt.Sprintf("%-7s", label)) + " " + a.st.text.Render(value+"_")
	}
	return "      " + a.st.muted.Render(fmt.Sprintf("%-7s", label)) + " " + a.st.muted.Render(value)
}

func (a *App) viewVisualize() string {
	v := a.view
	var b strings.Builder
	b.WriteString(a.header(a.info.Name))
	b.WriteString("    " + a.st.muted.Render(fmt.Sprintf("%s · %s · time %s / %s / %s · space %s",
		a.info.Category, a.info.Difficulty,
		a.info.Time.Best, a.info.Time.Average, a.info.Time.Worst, a.info.Space)) + "\n\n")

	if v.Len == 0 {
		b.WriteString("    " + a.st.text.Render("Ready to start") + "\n")
		return b.String()
	}
	if v.Step.Data == nil {
		b.WriteString("    " + a.st.err.Render("step has no snapshot") + "\n")
		return b.String()
	}

	left := lipgloss.JoinVertical(lipgloss.Left,
		a.renderBars(v.Step),
		"",
		a.renderStatus(v),
		"",
		a.renderControls(v),
		a.renderLegend(v.Step.Data),
	)
	side := a.renderMetrics(v)

	b.WriteString(indent(lipgloss.JoinHorizontal(lipgloss.Top, left, "   ", side), 4))
	if a.notice != "" {
		b.WriteString("\n    " + a.st.err.Render(a.notice))
	}
	return b.String() + "\n"
}

// renderBars draws one vertical column per element, colored by its role in
// the current snapshot, with values and pointer labels underneath.
func (a *App) renderBars(s step.Step) string {
	snap := s.Data
	values := snap.Array()
	maxVal := 1
	for _, x := range values {
		if x > maxVal {
			maxVal = x
		}
	}

	heights := make([]int, len(values))
	colors := make([]lipgloss.Style, len(values))
	for i, x := range values {
		if x > 0 {
			heights[i] = max(1, x*chartHeight/maxVal)
		}
		colors[i] = lipgloss.NewStyle().Foreground(a.theme.MarkColor(step.MarkOf(snap, i)))
	}

	var rows []string
	for r := chartHeight; r >= 1; r-- {
		var row strings.Builder
		for i := range values {
			if heights[i] >= r {
				row.WriteString(colors[i].Render(strings.Repeat("█", columnWidth-1)) + " ")
			} else {
				row.WriteString(strings.Repeat(" ", columnWidth))
			}
		}
		rows = append(rows, row.String())
	}

	var nums, labels strings.Builder
	search, isSearch := snap.(step.SearchSnapshot)
	for i, x := range values {
		nums.WriteString(colors[i].Render(fmt.Sprintf("%-*d", columnWidth, x)))
		label := strconv.Itoa(i)
		if isSearch {
			if p := search.PointerLabel(i); p != "" {
				label = p
			}
		}
		labels.WriteString(a.st.muted.Render(fmt.Sprintf("%-*s", columnWidth, label)))
	}
	rows = append(rows, nums.String(), labels.String())

	if isSearch {
		rows = append(rows, "", a.st.text.Render(fmt.Sprintf("target %d", search.Target)))
	}
	return strings.Join(rows, "\n")
}

func (a *App) renderStatus(v playback.View) string {
	width := max(20, len(v.Step.Data.Array())*columnWidth)
	progress := 0.0
	if v.Len > 1 {
		progress = float64(v.Index) / float64(v.Len-1)
	}

	status := a.st.muted.Render(v.Status().String())
	switch v.Status() {
	case playback.StatusPlaying:
		status = lipgloss.NewStyle().Bold(true).Foreground(a.theme.Sorted).Render("▶ playing")
	case playback.StatusFinished:
		status = lipgloss.NewStyle().Bold(true).Foreground(a.theme.Primary).Render("■ finished")
	}

	return strings.Join([]string{
		a.st.text.Render(fmt.Sprintf("Step %d of %d", v.Index+1, v.Len)) + "  " + status,
		ProgressBar(progress, width, a.theme.Primary, a.theme.Outside),
		a.st.selected.Render(v.Step.Description),
	}, "\n")
}

// renderControls draws the control bar. Disabled controls are greyed out.
func (a *App) renderControls(v playback.View) string {
	item := func(b key.Binding) string {
		h := b.Help()
		if !b.Enabled() {
			return a.st.keyOff.Render(h.Key + " " + h.Desc)
		}
		return a.st.key.Render(h.Key) + " " + a.st.text.Render(h.Desc)
	}

	var speeds []string
	current := v.Speed()
	for _, sp := range playback.Speeds() {
		b := speedKeys[sp](a.keys)
		label := b.Help().Key + " " + string(sp)
		if sp == current {
			speeds = append(speeds, a.st.selected.Render("["+label+"]"))
		} else {
			speeds = append(speeds, a.st.muted.Render(label))
		}
	}

	return strings.Join([]string{
		strings.Join([]string{item(a.keys.Play), item(a.keys.Step), item(a.keys.Reset)}, "   "),
		a.st.muted.Render("speed ") + strings.Join(speeds, " "),
		strings.Join([]string{item(a.keys.Random), item(a.keys.Edit), item(a.keys.Theme), item(a.keys.Back), item(a.keys.Quit)}, "   "),
	}, "\n")
}

func (a *App) renderLegend(snap step.Snapshot) string {
	var marks []step.Mark
	switch snap.(type) {
	case step.SortSnapshot:
		marks = []step.Mark{step.MarkNone, step.MarkCompare, step.MarkSwap, step.MarkSorted}
		if a.run != nil && a.run.Steps.Count(step.ActionSplit) > 0 {
			marks = append(marks, step.MarkSplit, step.MarkMerge)
		}
	case step.SearchSnapshot:
		marks = []step.Mark{step.MarkNone, step.MarkMid, step.MarkFound, step.MarkOutside}
	}

	parts := make([]string, 0, len(marks))
	for _, m := range marks {
		name := m.String()
		if m == step.MarkNone {
			name = "idle"
		}
		sw := lipgloss.NewStyle().Foreground(a.theme.MarkColor(m)).Render("■")
		parts = append(parts, sw+" "+a.st.muted.Render(name))
	}
	return "\n" + strings.Join(parts, "  ")
}

// renderMetrics draws counters up to the current step and the inversion
// chart for sorting runs.
func (a *App) renderMetrics(v playback.View) string {
	if a.run == nil {
		return ""
	}
	values := metrics.Upto(a.run.Steps, v.Index)

	_, isSort := v.Step.Data.(step.SortSnapshot)
	names := []string{"comparisons", "swaps", "writes", "inversions"}
	if !isSort {
		names = []string{"probes"}
	}

	var lines []string
	for _, name := range names {
		lines = append(lines, fmt.Sprintf("%s %s",
			a.st.label.Render(fmt.Sprintf("%-12s", name)),
			a.st.metric.Render(strconv.Itoa(int(values[name])))))
	}

	if isSort && len(a.series) > 0 {
		data := a.series[:min(v.Index+1, len(a.series))]
		if len(data) == 1 {
			data = []float64{data[0], data[0]}
		}
		graph := asciigraph.Plot(data,
			asciigraph.Height(6),
			asciigraph.Width(28),
			asciigraph.Caption("inversions"),
		)
		lines = append(lines, "", graph)
	}
	return a.st.panel.Render(strings.Join(lines, "\n"))
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}
