package core

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Amounts travel as plain JSON numbers on the wire, matching the
	// persisted document layout and older exports.
	decimal.MarshalJSONWithoutQuotes = true
}

// AppData is the single aggregate document. All six collections are
// independent ordered sequences; insertion order is preserved for display
// but carries no other meaning.
type AppData struct {
	Transactions   []Transaction  `json:"transactions"`
	Tasks          []Task         `json:"tasks"`
	WeeklyGoals    []WeeklyGoal   `json:"weeklyGoals"`
	ExamRecords    []ExamRecord   `json:"examRecords"`
	Skills         []Skill        `json:"skills"`
	JournalEntries []JournalEntry `json:"journalEntries"`
}

// documentKeys lists the mandatory top-level keys of the persisted
// document, in wire order.
var documentKeys = []string{
	"transactions",
	"tasks",
	"weeklyGoals",
	"examRecords",
	"skills",
	"journalEntries",
}

// Seed returns the first-run document: empty collections and the fixed
// default skill set.
func Seed() AppData {
	return AppData{
		Transactions: []Transaction{},
		Tasks:        []Task{},
		WeeklyGoals:  []WeeklyGoal{},
		ExamRecords:  []ExamRecord{},
		Skills: []Skill{
			{ID: "1", Name: "Physical Fitness", Progress: 0},
			{ID: "2", Name: "Law", Progress: 0},
			{ID: "3", Name: "English", Progress: 0},
			{ID: "4", Name: "Mathematics", Progress: 0},
			{ID: "5", Name: "General Knowledge", Progress: 0},
		},
		JournalEntries: []JournalEntry{},
	}
}

// Clone returns a deep copy of the document. Records are value types, so
// copying the backing arrays is enough.
func (d AppData) Clone() AppData {
	return AppData{
		Transactions:   append([]Transaction(nil), d.Transactions...),
		Tasks:          append([]Task(nil), d.Tasks...),
		WeeklyGoals:    append([]WeeklyGoal(nil), d.WeeklyGoals...),
		ExamRecords:    append([]ExamRecord(nil), d.ExamRecords...),
		Skills:         append([]Skill(nil), d.Skills...),
		JournalEntries: append([]JournalEntry(nil), d.JournalEntries...),
	}
}

// Encode serializes the whole document for the persistent medium.
func Encode(d AppData) ([]byte, error) {
	body, err := json.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return body, nil
}

// EncodeIndent serializes the document for human-facing exports.
func EncodeIndent(d AppData) ([]byte, error) {
	body, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	return body, nil
}

// Decode parses a persisted or imported document, enforcing the six-key
// shape: every collection key must be present and must be a sequence.
// Field contents beyond that are accepted as-is; records are not
// individually validated on read.
func Decode(data []byte) (AppData, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return AppData{}, fmt.Errorf("parse document: %w", err)
	}
	for _, key := range documentKeys {
		body, ok := raw[key]
		if !ok {
			return AppData{}, fmt.Errorf("invalid document: missing %q collection", key)
		}
		trimmed := bytes.TrimLeft(body, " \t\r\n")
		var seq []json.RawMessage
		if len(trimmed) == 0 || trimmed[0] != '[' || json.Unmarshal(body, &seq) != nil {
			return AppData{}, fmt.Errorf("invalid document: %q is not a sequence", key)
		}
	}
	var doc AppData
	if err := json.Unmarshal(data, &doc); err != nil {
		return AppData{}, fmt.Errorf("parse document: %w", err)
	}
	return doc, nil
}
