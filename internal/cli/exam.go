package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"lifedash/internal/core"
)

func (a *App) runExam(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("exam: missing subcommand (add, list, stats, delete)")
	}

	switch args[0] {
	case "add":
		return a.examAdd(ctx, args[1:])
	case "list":
		return a.examList(args[1:])
	case "stats":
		return a.examStats()
	case "delete":
		return a.examDelete(ctx, args[1:])
	default:
		return fmt.Errorf("exam: unknown subcommand %q", args[0])
	}
}

func (a *App) examAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exam add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	subject := fs.String("subject", "", "exam subject")
	score := fs.Float64("score", 0, "points scored")
	maxScore := fs.Float64("max", 100, "maximum points")
	notes := fs.String("notes", "", "optional notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	e, err := core.NewExamRecord(core.Date(*date), *subject, *score, *maxScore, *notes)
	if err != nil {
		return fmt.Errorf("exam add: %w", err)
	}
	if _, err := a.Store.Update(ctx, core.AddExamRecord(e)); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Recorded %s: %.1f/%.1f (%.1f%%) [%s]\n", e.Subject, e.Score, e.MaxScore, e.Percentage(), e.ID)
	return nil
}

func (a *App) examList(args []string) error {
	fs := flag.NewFlagSet("exam list", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	records := append([]core.ExamRecord(nil), doc.ExamRecords...)
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Date > records[j].Date
	})
	if len(records) == 0 {
		fmt.Fprintln(a.Out, "No exam records.")
		return nil
	}
	for _, e := range records {
		fmt.Fprintf(a.Out, "%s  %-20s %.1f/%.1f (%.1f%%)  %s  %s\n",
			e.Date, e.Subject, e.Score, e.MaxScore, e.Percentage(), e.Notes, e.ID)
	}
	return nil
}

func (a *App) examStats() error {
	doc, _ := a.Store.Snapshot()
	stats := core.SummarizeExams(doc)

	fmt.Fprintf(a.Out, "Exams:   %d\n", stats.Count)
	fmt.Fprintf(a.Out, "Average: %.1f%%\n", stats.Average)
	if stats.TrendValid {
		fmt.Fprintf(a.Out, "Trend:   %+.1f%%\n", stats.Trend)
	} else {
		fmt.Fprintln(a.Out, "Trend:   N/A")
	}

	chart := core.ExamChart(doc)
	if len(chart) == 0 {
		return nil
	}
	fmt.Fprintln(a.Out, "\nProgress:")
	for _, p := range chart {
		fmt.Fprintf(a.Out, "  %s  %-20s %.1f%%\n", p.Date, p.Subject, p.Percentage)
	}
	return nil
}

func (a *App) examDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("exam delete", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "exam record id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("exam delete: -id is required")
	}

	doc, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(doc.ExamRecords, *id); !ok {
		return fmt.Errorf("exam delete: no exam record with id %q", *id)
	}
	if !a.confirm("Delete this exam record?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}
	if _, err := a.Store.Update(ctx, core.DeleteExamRecord(*id)); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Deleted.")
	return nil
}

func (a *App) runSkill(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("skill: missing subcommand (list, set, adjust)")
	}

	switch args[0] {
	case "list":
		return a.skillList()
	case "set":
		return a.skillSet(ctx, args[1:])
	case "adjust":
		return a.skillAdjust(ctx, args[1:])
	default:
		return fmt.Errorf("skill: unknown subcommand %q", args[0])
	}
}

func (a *App) skillList() error {
	doc, _ := a.Store.Snapshot()
	for _, s := range doc.Skills {
		fmt.Fprintf(a.Out, "%s  %-20s %3d%%\n", s.ID, s.Name, s.Progress)
	}
	return nil
}

func (a *App) skillSet(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("skill set", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "skill id")
	progress := fs.Int("progress", 0, "progress percentage")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.applySkill(ctx, *id, core.SetSkillProgress(*id, *progress))
}

func (a *App) skillAdjust(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("skill adjust", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "skill id")
	delta := fs.Int("delta", 0, "progress change, may be negative")
	if err := fs.Parse(args); err != nil {
		return err
	}
	return a.applySkill(ctx, *id, core.AdjustSkillProgress(*id, *delta))
}

func (a *App) applySkill(ctx context.Context, id string, transform core.Transform) error {
	if id == "" {
		return fmt.Errorf("skill: -id is required")
	}
	snapshot, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(snapshot.Skills, id); !ok {
		return fmt.Errorf("skill: no skill with id %q", id)
	}
	doc, err := a.Store.Update(ctx, transform)
	if err != nil {
		return err
	}
	s, _ := core.FindByID(doc.Skills, id)
	fmt.Fprintf(a.Out, "%s is now at %d%%\n", s.Name, s.Progress)
	return nil
}
