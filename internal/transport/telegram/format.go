package telegram

import (
	"fmt"
	"html"
	"strings"
	"time"
	"unicode/utf8"

	jobDomain "github.com/apstld/freelance-alert-bot/internal/modules/job/domain"
)

const descriptionLimit = 400

// FormatJobCard renders the HTML message body for a delivered job
func FormatJobCard(job *jobDomain.Job, matchedKeyword string, now time.Time) string {
	currency := strings.ToUpper(job.Currency)
	if currency == "" {
		currency = "USD"
	}

	budget := "N/A " + currency
	switch {
	case job.BudgetMin != nil && job.BudgetMax != nil:
		budget = fmt.Sprintf("%s–%s %s", formatAmount(*job.BudgetMin), formatAmount(*job.BudgetMax), currency)
	case job.BudgetMin != nil:
		budget = fmt.Sprintf("from %s %s", formatAmount(*job.BudgetMin), currency)
	case job.BudgetMax != nil:
		budget = fmt.Sprintf("up to %s %s", formatAmount(*job.BudgetMax), currency)
	}

	usdLine := ""
	if currency != "USD" {
		switch {
		case job.BudgetMinUSD != nil && job.BudgetMaxUSD != nil:
			usdLine = fmt.Sprintf("   ~ $%s–$%s USD", formatAmount(*job.BudgetMinUSD), formatAmount(*job.BudgetMaxUSD))
		case job.BudgetMinUSD != nil:
			usdLine = fmt.Sprintf("   ~ $%s USD", formatAmount(*job.BudgetMinUSD))
		}
	}

	lines := []string{
		"💼 " + html.EscapeString(job.Title),
		"💰 Budget: " + budget + usdLine,
		"🌍 Source: " + html.EscapeString(job.Source),
		"🔑 Match: " + html.EscapeString(matchedKeyword),
		"🕒 Posted: " + timeAgo(job.CreatedAt, now),
	}

	if desc := shorten(job.Description, descriptionLimit); desc != "" {
		lines = append(lines, "", "📝 "+html.EscapeString(desc))
	}
	return strings.Join(lines, "\n")
}

func formatAmount(v float64) string {
	if v == float64(int64(v)) {
		return fmt.Sprintf("%d", int64(v))
	}
	return fmt.Sprintf("%.2f", v)
}

func shorten(text string, limit int) string {
	text = strings.TrimSpace(text)
	if len(text) <= limit {
		return text
	}
	// Back up to a rune boundary so multi-byte characters are not cut.
	for limit > 0 && !utf8.RuneStart(text[limit]) {
		limit--
	}
	return text[:limit] + "..."
}

func timeAgo(t time.Time, now time.Time) string {
	if t.IsZero() {
		return "unknown"
	}
	delta := now.Sub(t)
	mins := int(delta.Minutes())
	switch {
	case mins < 1:
		return "just now"
	case mins < 60:
		return fmt.Sprintf("%d minutes ago", mins)
	case mins < 24*60:
		return fmt.Sprintf("%d hours ago", mins/60)
	default:
		return fmt.Sprintf("%d days ago", mins/(24*60))
	}
}
