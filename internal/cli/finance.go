package cli

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"lifedash/internal/core"
)

func (a *App) runFinance(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("finance: missing subcommand (add, list, summary, delete)")
	}

	switch args[0] {
	case "add":
		return a.financeAdd(ctx, args[1:])
	case "list":
		return a.financeList(args[1:])
	case "summary":
		return a.financeSummary()
	case "delete":
		return a.financeDelete(ctx, args[1:])
	default:
		return fmt.Errorf("finance: unknown subcommand %q", args[0])
	}
}

func (a *App) financeAdd(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("finance add", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	kind := fs.String("type", "expense", "income or expense")
	amount := fs.String("amount", "", "amount, e.g. 12.50")
	category := fs.String("category", "", "free-text category")
	date := fs.String("date", string(core.DateOf(a.Now())), "date (YYYY-MM-DD)")
	note := fs.String("note", "", "optional note")
	if err := fs.Parse(args); err != nil {
		return err
	}

	value, err := decimal.NewFromString(*amount)
	if err != nil {
		return fmt.Errorf("finance add: %w", core.ErrInvalidAmount)
	}

	t, err := core.NewTransaction(core.TransactionKind(*kind), value, *category, core.Date(*date), *note)
	if err != nil {
		return fmt.Errorf("finance add: %w", err)
	}

	if _, err := a.Store.Update(ctx, core.AddTransaction(t)); err != nil {
		return err
	}
	fmt.Fprintf(a.Out, "Added %s %s (%s) on %s [%s]\n", t.Kind, t.Amount.StringFixed(2), t.Category, t.Date, t.ID)
	return nil
}

func (a *App) financeList(args []string) error {
	fs := flag.NewFlagSet("finance list", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	if err := fs.Parse(args); err != nil {
		return err
	}

	doc, _ := a.Store.Snapshot()
	transactions := append([]core.Transaction(nil), doc.Transactions...)
	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date > transactions[j].Date
	})

	if len(transactions) == 0 {
		fmt.Fprintln(a.Out, "No transactions recorded.")
		return nil
	}
	for _, t := range transactions {
		sign := "+"
		if t.Kind == core.Expense {
			sign = "-"
		}
		fmt.Fprintf(a.Out, "%s  %s%9s  %-16s %s  %s\n", t.Date, sign, t.Amount.StringFixed(2), t.Category, t.Note, t.ID)
	}
	return nil
}

func (a *App) financeSummary() error {
	doc, _ := a.Store.Snapshot()
	summary := core.Summarize(doc)

	fmt.Fprintf(a.Out, "Income:  %s\n", summary.Income.StringFixed(2))
	fmt.Fprintf(a.Out, "Expense: %s\n", summary.Expense.StringFixed(2))
	fmt.Fprintf(a.Out, "Balance: %s\n", summary.Balance.StringFixed(2))

	breakdown := core.ExpenseByCategory(doc)
	if len(breakdown) == 0 {
		return nil
	}
	fmt.Fprintln(a.Out, "\nExpenses by category:")
	for _, c := range breakdown {
		fmt.Fprintf(a.Out, "  %-16s %s\n", c.Name, c.Amount.StringFixed(2))
	}
	return nil
}

func (a *App) financeDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("finance delete", flag.ContinueOnError)
	fs.SetOutput(a.Out)
	id := fs.String("id", "", "transaction id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *id == "" {
		return fmt.Errorf("finance delete: -id is required")
	}

	doc, _ := a.Store.Snapshot()
	if _, ok := core.FindByID(doc.Transactions, *id); !ok {
		return fmt.Errorf("finance delete: no transaction with id %q", *id)
	}
	if !a.confirm("Delete this transaction?") {
		fmt.Fprintln(a.Out, "Cancelled.")
		return nil
	}

	if _, err := a.Store.Update(ctx, core.DeleteTransaction(*id)); err != nil {
		return err
	}
	fmt.Fprintln(a.Out, "Deleted.")
	return nil
}
