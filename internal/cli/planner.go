package cli

import (
	"context"
	"flag"
	"fmt"

	"lifedash/internal/core"
)

func (a *App) runTask(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("task: missing subcommand (add, list, toggle, delete)")
	}

	switch args[0] {
	case "add":
		return a.taskAdd(ctx, args[1:])
	case "list":
		return a.taskList(args[1:])
	case "toggle":
		return a.taskToggle(ctx, args[1:])
	case "delete":
		return a.taskDelete(ctx, args[1:])
	default:
		return fmt.Errorf("task: unknown subcommand %q", args[0])
	}
}

func (a *App) taskAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("task add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	title := fs.String("title", "", "task title")
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	timeOfDay := fs.String("time", "09:00", "time of day (HH:MM)")
	duration := fs.Int("duration", 60, "duration in minutes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	t, err := core.NewTask(*title, core.Date(*date), core.TimeOfDay(*timeOfDay), *duration)
	if err != nil {
		return fmt.Errorf("task add: %w", err)
	}
	if _, err := a.Store.Update(ctx, core.AddTask(t)); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Added task %q at %s %s [%s]\n", t.Title, t.Date, t.Time, t.ID)
	return nil
}

func (a *App) taskList(args []string) error {
	fs := flag.NewFlagSet("task list", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	agenda := core.AgendaFor(doc, core.Date(*date))
	if len(agenda) == 0 {
		fmt.Fprintf(a.Out, "No tasks on %s.\n", *date)
		return nil
	}
	fmt.Fprintf(a.Out, "Tasks on %s (%d done of %d):\n", *date, core.CompletedCount(agenda), len(agenda))
	for _, t := range agenda {
		mark := " "
		if t.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.Out, "  [%s] %s  %-24s %d min  %s\n", mark, t.Time, t.Title, t.Duration, t.ID)
	}
	return nil
}

func (a *App) taskToggle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("task toggle", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "task id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("task toggle: -id is required")
	}

	snapshot, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(snapshot.Tasks, *id); !ok {
		return fmt.Errorf("task toggle: no task with id %q", *id)
	}
	doc, err := a.Store.Update(ctx, core.ToggleTask(*id))
	if err != nil {
		return err
	}
	t, _ := core.FindByID(doc.Tasks, *id)
	fmt.Fprintf(a.Out, "Task %q completed: %v\n", t.Title, t.Completed)
	return nil
}

func (a *App) taskDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("task delete", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "task id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("task delete: -id is required")
	}

	doc, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(doc.Tasks, *id); !ok {
		return fmt.Errorf("task delete: no task with id %q", *id)
	}
	if !a.confirm("Delete this task?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}
	if _, err := a.Store.Update(ctx, core.DeleteTask(*id)); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Deleted.")
	return nil
}

func (a *App) runGoal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("goal: missing subcommand (add, list, toggle, delete)")
	}

	switch args[0] {
	case "add":
		return a.goalAdd(ctx, args[1:])
	case "list":
		return a.goalList(args[1:])
	case "toggle":
		return a.goalToggle(ctx, args[1:])
	case "delete":
		return a.goalDelete(ctx, args[1:])
	default:
		return fmt.Errorf("goal: unknown subcommand %q", args[0])
	}
}

func (a *App) goalAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("goal add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	title := fs.String("title", "", "goal title")
	description := fs.String("desc", "", "optional description")
	week := fs.String("week", core.WeekOf(a.Now()), "week identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g, err := core.NewWeeklyGoal(*title, *description, *week)
	if err != nil {
		return fmt.Errorf("goal add: %w", err)
	}
	if _, err := a.Store.Update(ctx, core.AddWeeklyGoal(g)); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Added goal %q for %s [%s]\n", g.Title, g.Week, g.ID)
	return nil
}

func (a *App) goalList(args []string) error {
	fs := flag.NewFlagSet("goal list", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	week := fs.String("week", core.WeekOf(a.Now()), "week identifier")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	goals := core.GoalsForWeek(doc, *week)
	if len(goals) == 0 {
		fmt.Fprintf(a.Out, "No goals for week %s.\n", *week)
		return nil
	}
	fmt.Fprintf(a.Out, "Goals for %s (%d done of %d):\n", *week, core.CompletedGoals(goals), len(goals))
	for _, g := range goals {
		mark := " "
		if g.Completed {
			mark = "x"
		}
		fmt.Fprintf(a.Out, "  [%s] %-24s %s  %s\n", mark, g.Title, g.Description, g.ID)
	}
	return nil
}

func (a *App) goalToggle(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("goal toggle", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "goal id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("goal toggle: -id is required")
	}

	snapshot, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(snapshot.WeeklyGoals, *id); !ok {
		return fmt.Errorf("goal toggle: no goal with id %q", *id)
	}
	doc, err := a.Store.Update(ctx, core.ToggleWeeklyGoal(*id))
	if err != nil {
		return err
	}
	g, _ := core.FindByID(doc.WeeklyGoals, *id)
	fmt.Fprintf(a.Out, "Goal %q completed: %v\n", g.Title, g.Completed)
	return nil
}

func (a *App) goalDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("goal delete", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "goal id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("goal delete: -id is required")
	}

	doc, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(doc.WeeklyGoals, *id); !ok {
		return fmt.Errorf("goal delete: no goal with id %q", *id)
	}
	if !a.confirm("Delete this goal?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}
	if _, err := a.Store.Update(ctx, core.DeleteWeeklyGoal(*id)); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Deleted.")
	return nil
}
