package tui

import (
	"fmt"
	"strings"

	"github.com/abdidvp/stockroom/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// ── warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2)

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	goodTagStyle  = lipgloss.NewStyle().Foreground(success)
	cargoTagStyle = lipgloss.NewStyle().Foreground(accent)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// ProductLine is the plain listing line for one product.
func ProductLine(p domain.Product) string {
	return fmt.Sprintf("ID: %s, Name: %s, Quantity: %d, Price: %s, Type: %s",
		p.ID, p.Name, p.Quantity, p.Price.StringFixed(2), p.Type.Label())
}

// RenderProducts formats the product list.
func RenderProducts(products []domain.Product, threshold int) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Product List") + "  " +
		dimStyle.Render(fmt.Sprintf("(%d)", len(products))) + "\n")
	b.WriteString("  " + separatorLine + "\n")

	if len(products) == 0 {
		b.WriteString("  " + dimStyle.Render("No products in catalog.") + "\n")
		return b.String()
	}

	for _, p := range products {
		icon := passStyle.Render("●")
		switch {
		case p.Quantity == 0:
			icon = failStyle.Render("●")
		case p.Quantity < threshold:
			icon = warnStyle.Render("●")
		}
		fmt.Fprintf(&b, "  %s %s\n", icon, typeStyle(p.Type).Render(ProductLine(p)))
	}
	return b.String()
}

func typeStyle(t domain.ProductType) lipgloss.Style {
	if t == domain.ProductTypeCargo {
		return cargoTagStyle
	}
	return goodTagStyle
}

// RenderStatistics frames the statistics text in a box.
func RenderStatistics(s domain.Statistics) string {
	title := titleStyle.Render("Statistics")
	return boxStyle.Render(title+"\n\n"+s.String()) + "\n"
}

// RenderProcurement shows a successful order confirmation.
func RenderProcurement(p domain.Procurement) string {
	var b strings.Builder
	for _, line := range strings.Split(p.Message(), "\n") {
		b.WriteString("  " + passStyle.Render(line) + "\n")
	}
	b.WriteString("  " + faintStyle.Render("order "+p.OrderID) + "\n")
	return b.String()
}

// RenderLowStock lists the low-stock notifications.
func RenderLowStock(notifications []string) string {
	if len(notifications) == 0 {
		return "  " + dimStyle.Render("No low stock notifications.") + "\n"
	}

	var b strings.Builder
	b.WriteString("  " + titleStyle.Render("Low Stock Notifications") + "\n")
	for _, n := range notifications {
		b.WriteString("    " + warnStyle.Render("●") + " " + n + "\n")
	}
	return b.String()
}

// RenderNotice formats an informational confirmation.
func RenderNotice(msg string) string {
	return "  " + passStyle.Render(msg) + "\n"
}

// RenderWarning formats a non-fatal warning.
func RenderWarning(msg string) string {
	return "  " + warnStyle.Render(msg) + "\n"
}

// RenderError formats a rejected operation.
func RenderError(err error) string {
	return "  " + failStyle.Render(err.Error()) + "\n"
}
