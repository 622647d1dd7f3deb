package progress

import (
	"fmt"
	"strings"
	"time"

	"github.com/johns/thoughtbuddy/internal/journey"
)

// Format renders Progress as aligned terminal output for `tb progress`.
func Format(p Progress) string {
	if p.TotalJourneys == 0 {
		return "tb progress\n\n  No journeys yet. Run `tb chat` and save your first one!\n"
	}

	var b strings.Builder
	b.WriteString("tb progress\n")

	b.WriteString("\nOverview\n")
	fmt.Fprintf(&b, "  %-20s %d\n", "journeys", p.TotalJourneys)
	fmt.Fprintf(&b, "  %-20s %d\n", "completed", p.CompletedJourneys)
	if p.TotalJourneys > 0 {
		pct := float64(p.CompletedJourneys) / float64(p.TotalJourneys) * 100
		fmt.Fprintf(&b, "  %-20s %d%%\n", "completion rate", int(pct))
	}
	fmt.Fprintf(&b, "  %-20s %s\n", "last activity", p.LastActivity.Format("2006-01-02 15:04"))

	if len(p.FavoriteStrategies) > 0 {
		b.WriteString("\nFavorite Strategies\n")
		for i, s := range p.FavoriteStrategies {
			fmt.Fprintf(&b, "  %d. %s\n", i+1, s)
		}
	}

	return b.String()
}

// FormatJourneys renders the journey list for `tb journeys`.
func FormatJourneys(journeys []journey.Journey) string {
	if len(journeys) == 0 {
		return "tb journeys\n\n  No journeys yet. Run `tb chat` and save your first one!\n"
	}

	var b strings.Builder
	b.WriteString("tb journeys\n\n")
	for _, j := range journeys {
		status := " "
		if j.Completed {
			status = "*"
		}
		fmt.Fprintf(&b, "  %s %-40s %-16s %s\n",
			status, j.ID, j.Timestamp.Format("2006-01-02 15:04"), truncate(j.Problem, 32))
	}
	fmt.Fprintf(&b, "\n  %d total, * = completed\n", len(journeys))
	return b.String()
}

// FormatJourney renders one journey in full for `tb journeys show`.
func FormatJourney(j journey.Journey) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", j.ID)
	fmt.Fprintf(&b, "  %-12s %s\n", "when", j.Timestamp.Format(time.RFC1123))
	fmt.Fprintf(&b, "  %-12s %s\n", "problem", j.Problem)
	fmt.Fprintf(&b, "  %-12s %s\n", "thought", j.Thought)
	fmt.Fprintf(&b, "  %-12s %s\n", "feeling", j.Feeling)
	fmt.Fprintf(&b, "  %-12s %s\n", "behavior", j.Behavior)
	fmt.Fprintf(&b, "  %-12s %s\n", "plan", j.Plan)
	fmt.Fprintf(&b, "  %-12s %t\n", "completed", j.Completed)
	return b.String()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
