package core

import (
	"sort"

	"github.com/shopspring/decimal"
)

// Everything in this file is a pure function of a document snapshot.
// Results are recomputed from scratch on every call; input sizes are
// bounded by personal-use record counts.

// CategoryAmount is an expense total aggregated by category name.
type CategoryAmount struct {
	Name   string
	Amount decimal.Decimal
}

// FinanceSummary is the whole-collection money overview. No date
// filtering is applied.
type FinanceSummary struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Balance decimal.Decimal
}

// ExamStats summarizes the exam record collection. Trend is the change in
// percentage points between the chronologically last two records and is
// only meaningful when TrendValid is set.
type ExamStats struct {
	Count      int
	Average    float64
	Trend      float64
	TrendValid bool
}

// ExamPoint is one chart sample: a record's percentage at its date.
type ExamPoint struct {
	Date       Date
	Subject    string
	Percentage float64
}

// DataOverview holds the per-collection record counts shown on the
// settings screen.
type DataOverview struct {
	Transactions   int
	Tasks          int
	WeeklyGoals    int
	ExamRecords    int
	Skills         int
	JournalEntries int
}

// Summarize computes income, expense and balance over all transactions.
func Summarize(d AppData) FinanceSummary {
	var s FinanceSummary
	for _, t := range d.Transactions {
		switch t.Kind {
		case Income:
			s.Income = s.Income.Add(t.Amount)
		case Expense:
			s.Expense = s.Expense.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expense)
	return s
}

// ExpenseByCategory groups expense transactions by category and sums the
// amounts. Categories without expenses are omitted. The result is ordered
// by descending amount (name ascending on ties) so proportion charts and
// tests see a deterministic sequence.
func ExpenseByCategory(d AppData) []CategoryAmount {
	totals := make(map[string]decimal.Decimal)
	for _, t := range d.Transactions {
		if t.Kind != Expense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
	}
	out := make([]CategoryAmount, 0, len(totals))
	for name, amount := range totals {
		out = append(out, CategoryAmount{Name: name, Amount: amount})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Amount.Equal(out[j].Amount) {
			return out[i].Amount.GreaterThan(out[j].Amount)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// AgendaFor returns the tasks scheduled on the given date, ascending by
// time of day. The caller supplies "today" so the computation stays
// testable. HH:MM is fixed-width, so plain string comparison orders
// correctly.
func AgendaFor(d AppData, date Date) []Task {
	var out []Task
	for _, t := range d.Tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Time < out[j].Time
	})
	return out
}

// CompletedCount reports how many of the given tasks are done.
func CompletedCount(tasks []Task) int {
	n := 0
	for _, t := range tasks {
		if t.Completed {
			n++
		}
	}
	return n
}

// GoalsForWeek returns the weekly goals scoped to the given week
// identifier, in insertion order.
func GoalsForWeek(d AppData, week string) []WeeklyGoal {
	var out []WeeklyGoal
	for _, g := range d.WeeklyGoals {
		if g.Week == week {
			out = append(out, g)
		}
	}
	return out
}

// CompletedGoals reports how many of the given goals are done.
func CompletedGoals(goals []WeeklyGoal) int {
	n := 0
	for _, g := range goals {
		if g.Completed {
			n++
		}
	}
	return n
}

// SummarizeExams computes the average percentage over all records and the
// trend between the two most recent records by date. Below two records
// the trend is not applicable.
func SummarizeExams(d AppData) ExamStats {
	stats := ExamStats{Count: len(d.ExamRecords)}
	if stats.Count == 0 {
		return stats
	}
	sum := 0.0
	for _, e := range d.ExamRecords {
		sum += e.Percentage()
	}
	stats.Average = sum / float64(stats.Count)

	if stats.Count >= 2 {
		ordered := examsByDate(d)
		last := ordered[len(ordered)-1]
		prev := ordered[len(ordered)-2]
		stats.Trend = last.Percentage() - prev.Percentage()
		stats.TrendValid = true
	}
	return stats
}

// ExamChart returns one point per exam record, sorted by date ascending.
// Records sharing a date keep their insertion order.
func ExamChart(d AppData) []ExamPoint {
	ordered := examsByDate(d)
	out := make([]ExamPoint, len(ordered))
	for i, e := range ordered {
		out[i] = ExamPoint{Date: e.Date, Subject: e.Subject, Percentage: e.Percentage()}
	}
	return out
}

// LatestExam returns the most recently recorded exam, in insertion order.
func LatestExam(d AppData) (ExamRecord, bool) {
	if len(d.ExamRecords) == 0 {
		return ExamRecord{}, false
	}
	return d.ExamRecords[len(d.ExamRecords)-1], true
}

func examsByDate(d AppData) []ExamRecord {
	ordered := append([]ExamRecord(nil), d.ExamRecords...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date < ordered[j].Date
	})
	return ordered
}

// JournalEntryOn finds the entry for a calendar date. At most one exists
// by invariant; with a duplicated date the earliest inserted entry wins.
func JournalEntryOn(d AppData, date Date) (JournalEntry, bool) {
	for _, e := range d.JournalEntries {
		if e.Date == date {
			return e, true
		}
	}
	return JournalEntry{}, false
}

// RecentJournalEntries returns up to limit entries, newest date first.
func RecentJournalEntries(d AppData, limit int) []JournalEntry {
	ordered := append([]JournalEntry(nil), d.JournalEntries...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Date > ordered[j].Date
	})
	if limit >= 0 && len(ordered) > limit {
		ordered = ordered[:limit]
	}
	return ordered
}

// JournalEntriesInMonth counts entries whose date falls in the month of
// the given date (year and month both compared).
func JournalEntriesInMonth(d AppData, date Date) int {
	if len(date) < 7 {
		return 0
	}
	prefix := date[:7]
	n := 0
	for _, e := range d.JournalEntries {
		if len(e.Date) >= 7 && e.Date[:7] == prefix {
			n++
		}
	}
	return n
}

// Overview counts the records in every collection.
func Overview(d AppData) DataOverview {
	return DataOverview{
		Transactions:   len(d.Transactions),
		Tasks:          len(d.Tasks),
		WeeklyGoals:    len(d.WeeklyGoals),
		ExamRecords:    len(d.ExamRecords),
		Skills:         len(d.Skills),
		JournalEntries: len(d.JournalEntries),
	}
}

// Total sums the countable user records. The fixed skill set is not a
// user collection and is excluded.
func (o DataOverview) Total() int {
	return o.Transactions + o.Tasks + o.WeeklyGoals + o.ExamRecords + o.JournalEntries
}
