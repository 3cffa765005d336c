package cli

import (
	"context"
	"flag"
	"fmt"

	"lifedash/internal/core"
)

func (a *App) runJournal(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("journal: missing subcommand (write, show, recent)")
	}

	switch args[0] {
	case "write":
		return a.journalWrite(ctx, args[1:])
	case "show":
		return a.journalShow(args[1:])
	case "recent":
		return a.journalRecent(args[1:])
	default:
		return fmt.Errorf("journal: unknown subcommand %q", args[0])
	}
}

func (a *App) journalWrite(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("journal write", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	content := fs.String("content", "", "entry text")
	if err := fs.Parse(args); err != nil {
		return err
	}

	day := core.Date(*date)
	if err := day.Validate(); err != nil {
		return fmt.Errorf("journal write: %w", err)
	}

	if _, err := a.Store.Update(ctx, core.UpsertJournalEntry(day, *content)); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Saved entry for %s.\n", day)
	return nil
}

func (a *App) journalShow(args []string) error {
	fs := flag.NewFlagSet("journal show", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	entry, ok := core.JournalEntryOn(doc, core.Date(*date))
	if !ok {
		fmt.Fprintf(a.Out, "No entry for %s.\n", *date)
		return nil
	}
	fmt.Fprintf(a.Out, "%s\n\n%s\n", entry.Date, entry.Content)
	return nil
}

func (a *App) journalRecent(args []string) error {
	fs := flag.NewFlagSet("journal recent", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	limit := fs.Int("n", 5, "number of entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	entries := core.RecentJournalEntries(doc, *limit)
	if len(entries) == 0 {
		fmt.Fprintln(a.Out, "No journal entries.")
		return nil
	}
	month := core.JournalEntriesInMonth(doc, core.DateOf(a.Now()))
	fmt.Fprintf(a.Out, "%d entries total, %d this month.\n\n", len(doc.JournalEntries), month)
	for _, e := range entries {
		preview := e.Content
		if len(preview) > 60 {
			preview = preview[:57] + "..."
		}
		fmt.Fprintf(a.Out, "%s  %s\n", e.Date, preview)
	}
	return nil
}
