package cli

import (
	"context"
	"flag"
	"fmt"

	"lifedash/internal/backup"
	"lifedash/internal/core"
)

func (a *App) runExport(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("export", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	dir := fs.String("dir", ".", "directory to write the backup into")
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	path, err := backup.Export(doc, *dir, core.DateOf(a.Now()))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	fmt.Fprintf(a.Out, "Exported to %s\n", path)
	return nil
}

func (a *App) runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	file := fs.String("file", "", "backup file to import")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("import: -file is required")
	}

	doc, err := backup.Import(*file)
	if err != nil {
		return fmt.Errorf("import: %w", err)
	}

	overview := core.Overview(doc)
	fmt.Fprintf(a.Out, "Import contains %d records.\n", overview.Total())
	if !a.confirm("Replace all current data with this document?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}

	if err := a.Store.Replace(ctx, doc); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Import complete.")
	return nil
}

func (a *App) runReset(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("reset", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	// Resetting is destructive and irreversible, hence the double ask.
	if !a.confirm("Delete ALL data? Consider exporting a backup first") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}
	if !a.confirm("Really delete everything?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}

	if err := a.Store.Reset(ctx); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "All data cleared.")
	return nil
}

func (a *App) runOverview(_ context.Context, args []string) error {
	fs := flag.NewFlagSet("overview", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	o := core.Overview(doc)
	fmt.Fprintf(a.Out, "Transactions:    %d\n", o.Transactions)
	fmt.Fprintf(a.Out, "Tasks:           %d\n", o.Tasks)
	fmt.Fprintf(a.Out, "Weekly goals:    %d\n", o.WeeklyGoals)
	fmt.Fprintf(a.Out, "Exam records:    %d\n", o.ExamRecords)
	fmt.Fprintf(a.Out, "Skills:          %d\n", o.Skills)
	fmt.Fprintf(a.Out, "Journal entries: %d\n", o.JournalEntries)
	fmt.Fprintf(a.Out, "Total items:     %d\n", o.Total())
	return nil
}
