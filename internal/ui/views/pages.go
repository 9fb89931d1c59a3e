package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"campaigndash/internal/domain"
	"campaigndash/internal/routes"
)

var sparkLevels = []rune("▁▂▃▄▅▆▇█")

func (r *Renderer) renderPage(p PageView, width int) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(p.Route.Title))
	if p.Route.Description != "" {
		b.WriteString("\n")
		b.WriteString(r.styles.Subtitle.Render(p.Route.Description))
	}
	b.WriteString("\n\n")

	switch {
	case p.Route.ComingSoon:
		b.WriteString(r.renderComingSoon(p))
	case p.Route.Template == routes.Dashboard:
		b.WriteString(r.renderOverview(p, width))
	case p.Route.Template == routes.Analytics:
		b.WriteString(r.renderAnalytics(p, width))
	case p.Route.Template == routes.ContactDetail:
		b.WriteString(r.renderContact(p))
	case p.Route.Template == routes.Notifications:
		b.WriteString(r.renderNotifications(p, width))
	}
	return b.String()
}

func (r *Renderer) renderRangeLine(p PageView) string {
	return r.styles.Dim.Render(fmt.Sprintf("Last %s  (t to change)", p.TimeRange.Label()))
}

func (r *Renderer) renderOverview(p PageView, width int) string {
	if p.Loading {
		return r.styles.StatusLoading.Render("Loading metrics...")
	}
	parts := []string{
		r.renderRangeLine(p),
		r.renderMetricCards(p.Metrics, width),
		r.styles.Section.Render("Messages sent"),
		r.renderSparkline("Total  ", totals(p.Chart), width),
	}
	return strings.Join(parts, "\n")
}

func (r *Renderer) renderAnalytics(p PageView, width int) string {
	if p.Loading {
		return r.styles.StatusLoading.Render("Loading analytics...")
	}

	desktop := make([]int, len(p.Chart))
	mobile := make([]int, len(p.Chart))
	var sumDesktop, sumMobile int
	for i, pt := range p.Chart {
		desktop[i], mobile[i] = pt.Desktop, pt.Mobile
		sumDesktop += pt.Desktop
		sumMobile += pt.Mobile
	}

	parts := []string{
		r.renderRangeLine(p),
		r.renderMetricCards(p.Metrics, width),
		r.styles.Section.Render("Delivery by channel"),
		r.renderSparkline("Desktop", desktop, width),
		r.renderSparkline("Mobile ", mobile, width),
		r.styles.Dim.Render(fmt.Sprintf("Desktop %d · Mobile %d · %s", sumDesktop, sumMobile, chartSpan(p.Chart))),
	}
	return strings.Join(parts, "\n")
}

// renderMetricCards lays the cards out in as many columns as fit
func (r *Renderer) renderMetricCards(metrics []domain.Metric, width int) string {
	const cardWidth = 26
	perRow := max(width/(cardWidth+2), 1)

	var rows []string
	var row []string
	for _, m := range metrics {
		trend := lipgloss.NewStyle().Foreground(lipgloss.Color(TrendColor(m.Trend)))
		arrow := "↑"
		if m.Trend == domain.TrendDown {
			arrow = "↓"
		}
		body := strings.Join([]string{
			r.styles.Subtitle.Render(m.Label),
			r.styles.CardValue.Render(m.Value) + "  " + trend.Render(arrow+" "+m.Change),
			r.styles.Dim.Render(m.Footer),
		}, "\n")
		row = append(row, r.styles.Card.Width(cardWidth).Render(body))
		if len(row) == perRow {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// renderSparkline draws the most recent values that fit the width
func (r *Renderer) renderSparkline(label string, values []int, width int) string {
	room := max(width-len(label)-2, 1)
	if len(values) > room {
		values = values[len(values)-room:]
	}
	peak := 0
	for _, v := range values {
		peak = max(peak, v)
	}

	var b strings.Builder
	for _, v := range values {
		level := 0
		if peak > 0 {
			level = v * (len(sparkLevels) - 1) / peak
		}
		b.WriteRune(sparkLevels[level])
	}
	return r.styles.Label.Render(label) + "  " + r.styles.StatusInfo.Render(b.String())
}

func totals(points []domain.ChartPoint) []int {
	out := make([]int, len(points))
	for i, p := range points {
		out[i] = p.Desktop + p.Mobile
	}
	return out
}

func chartSpan(points []domain.ChartPoint) string {
	if len(points) == 0 {
		return "no data"
	}
	const layout = "Jan 2"
	return points[0].Date.Format(layout) + " to " + points[len(points)-1].Date.Format(layout)
}

func (r *Renderer) renderComingSoon(p PageView) string {
	lines := []string{
		r.styles.Highlight.Render("Coming soon"),
		"",
		r.styles.Label.Render("We're working hard to bring you this feature."),
		"",
	}
	if p.Notified {
		lines = append(lines, r.styles.StatusSuccess.Render("✓ We'll let you know when it launches."))
	} else {
		lines = append(lines, r.styles.Dim.Render("Press n to get notified when it's ready."))
	}
	return r.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderContact(p PageView) string {
	if p.Contact == nil {
		return r.styles.StatusWarning.Render("Contact not found")
	}
	c := p.Contact
	rows := [][2]string{
		{"Name", c.Name},
		{"Phone", c.Phone},
		{"Email", c.Email},
		{"Company", c.Company},
	}
	if len(c.Tags) > 0 {
		rows = append(rows, [2]string{"Tags", strings.Join(c.Tags, ", ")})
	}

	var lines []string
	for _, row := range rows {
		lines = append(lines, r.styles.Subtitle.Render(fmt.Sprintf("%-8s", row[0]))+"  "+r.styles.Label.Render(row[1]))
	}
	return r.styles.Panel.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderNotifications(p PageView, width int) string {
	if len(p.Notifications) == 0 {
		return r.styles.Dim.Render("You're all caught up.")
	}

	height := max(p.NotificationHeight, 1)
	end := min(p.NotificationOffset+height, len(p.Notifications))
	var lines []string
	if p.NotificationOffset > 0 {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↑ %d more above ↑", p.NotificationOffset)))
	}
	for i := p.NotificationOffset; i < end; i++ {
		n := p.Notifications[i]
		icon := lipgloss.NewStyle().Foreground(lipgloss.Color(NotificationColor(n.Type))).Render(NotificationIcon(n.Type))
		title := n.Title
		if !n.Read {
			title = "● " + title
		}
		line := fmt.Sprintf("%s %s  %s", icon, title, r.styles.Dim.Render(relativeTime(n.Timestamp)))
		if n.Description != "" {
			line += "\n    " + r.styles.Subtitle.Render(n.Description)
		}
		if i == p.NotificationCursor && p.ContentFocused {
			line = r.styles.HighlightBg.Width(width).Render(line)
		}
		lines = append(lines, line)
	}
	if end < len(p.Notifications) {
		lines = append(lines, r.styles.Scroll.Render(fmt.Sprintf("↓ %d more below ↓", len(p.Notifications)-end)))
	}

	hint := "tab to select · r read · R read all · x remove · C clear"
	if p.ContentFocused {
		hint = "tab back to sidebar · r read · R read all · x remove · C clear"
	}
	lines = append(lines, "", r.styles.Dim.Render(hint))
	return strings.Join(lines, "\n")
}

func relativeTime(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
