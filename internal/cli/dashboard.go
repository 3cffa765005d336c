package cli

import (
	"context"
	"flag"
	"fmt"

	"lifedash/internal/core"
)

func (a *App) runDashboard(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	date := fs.String("date", string(core.DateOf(a.Now())), "date to show (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	today := core.Date(*date)

	summary := core.Summarize(doc)
	fmt.Fprintf(a.Out, "Balance: %s\n", summary.Balance.StringFixed(2))

	agenda := core.AgendaFor(doc, today)
	fmt.Fprintf(a.Out, "Tasks today: %d (%d done)\n", len(agenda), core.CompletedCount(agenda))

	if latest, ok := core.LatestExam(doc); ok {
		fmt.Fprintf(a.Out, "Latest exam: %s %.1f/%.1f\n", latest.Subject, latest.Score, latest.MaxScore)
	} else {
		fmt.Fprintln(a.Out, "Latest exam: none yet")
	}

	fmt.Fprintf(a.Out, "Journal entries: %d\n", len(doc.JournalEntries))

	if len(agenda) > 0 {
		fmt.Fprintf(a.Out, "\nSchedule for %s:\n", today)
		for _, t := range agenda {
			mark := " "
			if t.Completed {
				mark = "x"
			}
			fmt.Fprintf(a.Out, "  [%s] %s  %s (%d min)\n", mark, t.Time, t.Title, t.Duration)
		}
	}

	goals := core.GoalsForWeek(doc, core.WeekOfDate(today))
	if len(goals) > 0 {
		fmt.Fprintf(a.Out, "\nGoals this week (%d done of %d):\n", core.CompletedGoals(goals), len(goals))
		for _, g := range goals {
			mark := " "
			if g.Completed {
				mark = "x"
			}
			fmt.Fprintf(a.Out, "  [%s] %s\n", mark, g.Title)
		}
	}

	fmt.Fprintln(a.Out, "\nSkill progress:")
	for _, s := range doc.Skills {
		fmt.Fprintf(a.Out, "  %-20s %3d%%\n", s.Name, s.Progress)
	}
	return nil
}
