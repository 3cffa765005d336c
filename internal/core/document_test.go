package core

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func sampleDocument() AppData {
	doc := Seed()
	doc.Transactions = []Transaction{
		{ID: "t1", Kind: Income, Amount: decimal.RequireFromString("500"), Category: "Salary", Date: "2024-01-01", Note: ""},
		{ID: "t2", Kind: Expense, Amount: decimal.RequireFromString("12.50"), Category: "Food", Date: "2024-01-02", Note: "lunch"},
	}
	doc.Tasks = []Task{
		{ID: "k1", Title: "Run", Date: "2024-01-01", Time: "06:30", Duration: 45, Completed: true},
	}
	doc.WeeklyGoals = []WeeklyGoal{
		{ID: "g1", Title: "Read a book", Description: "", Completed: false, Week: "2024-W01"},
	}
	doc.ExamRecords = []ExamRecord{
		{ID: "e1", Date: "2024-01-05", Subject: "Law", Score: 60, MaxScore: 100, Notes: ""},
	}
	doc.JournalEntries = []JournalEntry{
		{ID: "j1", Date: "2024-01-01", Content: "First day."},
	}
	return doc
}

func TestSeedDocument(t *testing.T) {
	doc := Seed()
	if len(doc.Skills) != 5 {
		t.Fatalf("expected 5 seeded skills, got %d", len(doc.Skills))
	}
	for _, s := range doc.Skills {
		if s.Progress != 0 {
			t.Fatalf("seed skill %s has non-zero progress", s.ID)
		}
	}
	if len(doc.Transactions)+len(doc.Tasks)+len(doc.WeeklyGoals)+len(doc.ExamRecords)+len(doc.JournalEntries) != 0 {
		t.Fatalf("seed document is not empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	doc := sampleDocument()
	clone := doc.Clone()

	clone.Tasks[0].Completed = false
	clone.Transactions = AppendRecord(clone.Transactions, Transaction{ID: "t3", Kind: Income, Amount: decimal.NewFromInt(1), Category: "x", Date: "2024-01-03"})

	if !doc.Tasks[0].Completed {
		t.Fatalf("clone mutation leaked into original")
	}
	if len(doc.Transactions) != 2 {
		t.Fatalf("clone append leaked into original")
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	doc := sampleDocument()
	body, err := Encode(doc)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	// Amounts must travel as plain numbers, not quoted strings.
	if strings.Contains(string(body), `"500"`) {
		t.Fatalf("amount serialized as string: %s", body)
	}

	got, err := Decode(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if len(got.Transactions) != 2 || got.Transactions[0].ID != "t1" {
		t.Fatalf("transactions did not round-trip: %+v", got.Transactions)
	}
	for i := range doc.Transactions {
		if !got.Transactions[i].Amount.Equal(doc.Transactions[i].Amount) {
			t.Fatalf("amount %d did not round-trip: %s vs %s", i, got.Transactions[i].Amount, doc.Transactions[i].Amount)
		}
		if got.Transactions[i].Kind != doc.Transactions[i].Kind {
			t.Fatalf("kind %d did not round-trip", i)
		}
	}
	if got.Tasks[0] != doc.Tasks[0] {
		t.Fatalf("task did not round-trip: %+v", got.Tasks[0])
	}
	if got.WeeklyGoals[0] != doc.WeeklyGoals[0] {
		t.Fatalf("goal did not round-trip: %+v", got.WeeklyGoals[0])
	}
	if got.ExamRecords[0] != doc.ExamRecords[0] {
		t.Fatalf("exam did not round-trip: %+v", got.ExamRecords[0])
	}
	if len(got.Skills) != 5 || got.Skills[0] != doc.Skills[0] {
		t.Fatalf("skills did not round-trip: %+v", got.Skills)
	}
	if got.JournalEntries[0] != doc.JournalEntries[0] {
		t.Fatalf("journal did not round-trip: %+v", got.JournalEntries[0])
	}
}

func TestDecodeRejectsMissingCollection(t *testing.T) {
	body := []byte(`{
		"transactions": [], "tasks": [], "weeklyGoals": [],
		"examRecords": [], "journalEntries": []
	}`)
	if _, err := Decode(body); err == nil {
		t.Fatalf("expected rejection for missing skills key")
	} else if !strings.Contains(err.Error(), "skills") {
		t.Fatalf("error should name the missing key, got %v", err)
	}
}

func TestDecodeRejectsNonSequence(t *testing.T) {
	cases := []string{
		`{"transactions": {}, "tasks": [], "weeklyGoals": [], "examRecords": [], "skills": [], "journalEntries": []}`,
		`{"transactions": null, "tasks": [], "weeklyGoals": [], "examRecords": [], "skills": [], "journalEntries": []}`,
		`{"transactions": "x", "tasks": [], "weeklyGoals": [], "examRecords": [], "skills": [], "journalEntries": []}`,
	}
	for i, body := range cases {
		if _, err := Decode([]byte(body)); err == nil {
			t.Fatalf("case %d expected rejection", i)
		}
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	for i, body := range []string{"", "{", "[]", "42", "not json"} {
		if _, err := Decode([]byte(body)); err == nil {
			t.Fatalf("case %d expected rejection", i)
		}
	}
}

func TestDecodeAcceptsEmptyCollections(t *testing.T) {
	body, err := Encode(Seed())
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	doc, err := Decode(body)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(doc.Skills) != 5 {
		t.Fatalf("expected seeded skills, got %d", len(doc.Skills))
	}
}
