package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestSummarize(t *testing.T) {
	doc := Seed()
	doc.Transactions = []Transaction{
		{ID: "t1", Kind: Income, Amount: decimal.NewFromInt(500), Category: "Salary", Date: "2024-01-01"},
		{ID: "t2", Kind: Expense, Amount: decimal.NewFromInt(300), Category: "Rent", Date: "2024-01-02"},
		{ID: "t3", Kind: Expense, Amount: decimal.RequireFromString("12.50"), Category: "Food", Date: "2024-01-03"},
	}

	s := Summarize(doc)
	if !s.Income.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("income: got %s", s.Income)
	}
	if !s.Expense.Equal(decimal.RequireFromString("312.50")) {
		t.Fatalf("expense: got %s", s.Expense)
	}
	if !s.Balance.Equal(s.Income.Sub(s.Expense)) {
		t.Fatalf("balance must equal income minus expense: %s", s.Balance)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(Seed())
	if !s.Income.IsZero() || !s.Expense.IsZero() || !s.Balance.IsZero() {
		t.Fatalf("expected all-zero summary, got %+v", s)
	}
}

func TestExpenseByCategory(t *testing.T) {
	doc := Seed()
	doc.Transactions = []Transaction{
		{ID: "t1", Kind: Expense, Amount: decimal.NewFromInt(30), Category: "Food", Date: "2024-01-01"},
		{ID: "t2", Kind: Expense, Amount: decimal.NewFromInt(70), Category: "Rent", Date: "2024-01-01"},
		{ID: "t3", Kind: Expense, Amount: decimal.NewFromInt(20), Category: "Food", Date: "2024-01-02"},
		{ID: "t4", Kind: Income, Amount: decimal.NewFromInt(999), Category: "Salary", Date: "2024-01-02"},
	}

	got := ExpenseByCategory(doc)
	if len(got) != 2 {
		t.Fatalf("expected 2 categories, got %+v", got)
	}
	if got[0].Name != "Rent" || !got[0].Amount.Equal(decimal.NewFromInt(70)) {
		t.Fatalf("unexpected first category: %+v", got[0])
	}
	if got[1].Name != "Food" || !got[1].Amount.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("unexpected second category: %+v", got[1])
	}
}

func TestExpenseByCategoryTieBreaksByName(t *testing.T) {
	doc := Seed()
	doc.Transactions = []Transaction{
		{ID: "t1", Kind: Expense, Amount: decimal.NewFromInt(10), Category: "Zoo", Date: "2024-01-01"},
		{ID: "t2", Kind: Expense, Amount: decimal.NewFromInt(10), Category: "Apples", Date: "2024-01-01"},
	}
	got := ExpenseByCategory(doc)
	if got[0].Name != "Apples" || got[1].Name != "Zoo" {
		t.Fatalf("ties must order by name: %+v", got)
	}
}

func TestAgendaFor(t *testing.T) {
	doc := Seed()
	doc.Tasks = []Task{
		{ID: "k1", Title: "Late", Date: "2024-01-01", Time: "21:00", Duration: 30},
		{ID: "k2", Title: "Other day", Date: "2024-01-02", Time: "08:00", Duration: 30},
		{ID: "k3", Title: "Early", Date: "2024-01-01", Time: "06:30", Duration: 45, Completed: true},
		{ID: "k4", Title: "Noon", Date: "2024-01-01", Time: "12:00", Duration: 60},
	}

	got := AgendaFor(doc, "2024-01-01")
	if len(got) != 3 {
		t.Fatalf("expected 3 tasks, got %+v", got)
	}
	if got[0].ID != "k3" || got[1].ID != "k4" || got[2].ID != "k1" {
		t.Fatalf("agenda not ordered by time: %+v", got)
	}
	if CompletedCount(got) != 1 {
		t.Fatalf("expected 1 completed, got %d", CompletedCount(got))
	}

	if out := AgendaFor(doc, "2024-06-01"); len(out) != 0 {
		t.Fatalf("expected empty agenda, got %+v", out)
	}
}

func TestGoalsForWeek(t *testing.T) {
	doc := Seed()
	doc.WeeklyGoals = []WeeklyGoal{
		{ID: "g1", Title: "Read", Week: "2024-W01", Completed: true},
		{ID: "g2", Title: "Run", Week: "2024-W02"},
		{ID: "g3", Title: "Write", Week: "2024-W01"},
	}

	got := GoalsForWeek(doc, "2024-W01")
	if len(got) != 2 || got[0].ID != "g1" || got[1].ID != "g3" {
		t.Fatalf("unexpected goals: %+v", got)
	}
	if CompletedGoals(got) != 1 {
		t.Fatalf("expected 1 completed goal")
	}
}

func TestSummarizeExams(t *testing.T) {
	doc := Seed()
	doc.ExamRecords = []ExamRecord{
		{ID: "e1", Date: "2024-01-10", Subject: "Law", Score: 60, MaxScore: 100},
		{ID: "e2", Date: "2024-02-10", Subject: "Law", Score: 75, MaxScore: 100},
	}

	stats := SummarizeExams(doc)
	if stats.Count != 2 {
		t.Fatalf("count: got %d", stats.Count)
	}
	if stats.Average != 67.5 {
		t.Fatalf("average: got %v", stats.Average)
	}
	if !stats.TrendValid || stats.Trend != 15 {
		t.Fatalf("trend: got %v valid=%v", stats.Trend, stats.TrendValid)
	}
}

func TestSummarizeExamsTrendUsesDateOrder(t *testing.T) {
	// Inserted out of chronological order; the trend still compares the
	// two latest dates.
	doc := Seed()
	doc.ExamRecords = []ExamRecord{
		{ID: "e2", Date: "2024-02-10", Subject: "Law", Score: 75, MaxScore: 100},
		{ID: "e1", Date: "2024-01-10", Subject: "Law", Score: 60, MaxScore: 100},
		{ID: "e0", Date: "2023-12-01", Subject: "Law", Score: 90, MaxScore: 100},
	}
	stats := SummarizeExams(doc)
	if !stats.TrendValid || stats.Trend != 15 {
		t.Fatalf("trend: got %v valid=%v", stats.Trend, stats.TrendValid)
	}
}

func TestSummarizeExamsSingleRecord(t *testing.T) {
	doc := Seed()
	doc.ExamRecords = []ExamRecord{
		{ID: "e1", Date: "2024-01-10", Subject: "Law", Score: 60, MaxScore: 100},
	}
	stats := SummarizeExams(doc)
	if stats.TrendValid {
		t.Fatalf("trend must be invalid with a single record")
	}
	if stats.Average != 60 {
		t.Fatalf("average: got %v", stats.Average)
	}

	if s := SummarizeExams(Seed()); s.Count != 0 || s.Average != 0 || s.TrendValid {
		t.Fatalf("unexpected empty stats: %+v", s)
	}
}

func TestExamChart(t *testing.T) {
	doc := Seed()
	doc.ExamRecords = []ExamRecord{
		{ID: "e2", Date: "2024-02-10", Subject: "Law", Score: 75, MaxScore: 100},
		{ID: "e1", Date: "2024-01-10", Subject: "English", Score: 30, MaxScore: 40},
	}
	points := ExamChart(doc)
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %+v", points)
	}
	if points[0].Subject != "English" || points[0].Percentage != 75 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Date != "2024-02-10" {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestLatestExam(t *testing.T) {
	doc := Seed()
	if _, ok := LatestExam(doc); ok {
		t.Fatalf("expected no latest exam on empty collection")
	}
	doc.ExamRecords = []ExamRecord{
		{ID: "e1", Date: "2024-02-10", Subject: "Law", Score: 75, MaxScore: 100},
		{ID: "e2", Date: "2024-01-10", Subject: "English", Score: 30, MaxScore: 40},
	}
	// Insertion order wins, not date order.
	got, ok := LatestExam(doc)
	if !ok || got.ID != "e2" {
		t.Fatalf("unexpected latest exam: %+v ok=%v", got, ok)
	}
}

func TestJournalLookups(t *testing.T) {
	doc := Seed()
	doc.JournalEntries = []JournalEntry{
		{ID: "j1", Date: "2024-01-01", Content: "first"},
		{ID: "j2", Date: "2024-01-15", Content: "second"},
		{ID: "j3", Date: "2023-12-31", Content: "old year"},
	}

	e, ok := JournalEntryOn(doc, "2024-01-15")
	if !ok || e.ID != "j2" {
		t.Fatalf("unexpected entry: %+v ok=%v", e, ok)
	}
	if _, ok := JournalEntryOn(doc, "2024-02-01"); ok {
		t.Fatalf("expected miss")
	}

	recent := RecentJournalEntries(doc, 2)
	if len(recent) != 2 || recent[0].ID != "j2" || recent[1].ID != "j1" {
		t.Fatalf("unexpected recent entries: %+v", recent)
	}

	if n := JournalEntriesInMonth(doc, "2024-01-20"); n != 2 {
		t.Fatalf("expected 2 entries in month, got %d", n)
	}
	// December 2023 must not match January 2024 even though the month
	// number alone would differ anyway; check the year is compared too.
	if n := JournalEntriesInMonth(doc, "2023-01-01"); n != 0 {
		t.Fatalf("expected 0 entries for 2023-01, got %d", n)
	}
}

func TestOverview(t *testing.T) {
	doc := sampleDocument()
	o := Overview(doc)
	if o.Transactions != 2 || o.Tasks != 1 || o.WeeklyGoals != 1 || o.ExamRecords != 1 || o.Skills != 5 || o.JournalEntries != 1 {
		t.Fatalf("unexpected overview: %+v", o)
	}
	if o.Total() != 6 {
		t.Fatalf("total must exclude skills, got %d", o.Total())
	}
}
