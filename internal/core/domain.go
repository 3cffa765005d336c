package core

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Income  TransactionKind = "income"
	Expense TransactionKind = "expense"
)

type (
	TransactionKind string

	// Date is a calendar date in YYYY-MM-DD form. The fixed zero-padded
	// layout keeps lexicographic order equal to chronological order.
	Date string

	// TimeOfDay is a 24-hour HH:MM clock value, zero-padded.
	TimeOfDay string

	Transaction struct {
		ID       string          `json:"id"`
		Kind     TransactionKind `json:"type"`
		Amount   decimal.Decimal `json:"amount"`
		Category string          `json:"category"`
		Date     Date            `json:"date"`
		Note     string          `json:"note"`
	}

	Task struct {
		ID        string    `json:"id"`
		Title     string    `json:"title"`
		Date      Date      `json:"date"`
		Time      TimeOfDay `json:"time"`
		Duration  int       `json:"duration"` // minutes
		Completed bool      `json:"completed"`
	}

	WeeklyGoal struct {
		ID          string `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		Completed   bool   `json:"completed"`
		Week        string `json:"week"`
	}

	ExamRecord struct {
		ID       string  `json:"id"`
		Date     Date    `json:"date"`
		Subject  string  `json:"subject"`
		Score    float64 `json:"score"`
		MaxScore float64 `json:"maxScore"`
		Notes    string  `json:"notes"`
	}

	Skill struct {
		ID       string `json:"id"`
		Name     string `json:"name"`
		Progress int    `json:"progress"` // always within [0,100]
	}

	JournalEntry struct {
		ID      string `json:"id"`
		Date    Date   `json:"date"`
		Content string `json:"content"`
	}
)

var (
	ErrInvalidKind     = errors.New("invalid transaction kind")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidDate     = errors.New("invalid date")
	ErrInvalidTime     = errors.New("invalid time of day")
	ErrInvalidDuration = errors.New("invalid duration")
	ErrInvalidMaxScore = errors.New("invalid max score")
	ErrNegativeScore   = errors.New("negative score")
	ErrEmptyCategory   = errors.New("empty category")
	ErrEmptyTitle      = errors.New("empty title")
	ErrEmptySubject    = errors.New("empty subject")
	ErrEmptyWeek       = errors.New("empty week")
)

const dateLayout = "2006-01-02"

func (k TransactionKind) Valid() bool {
	return k == Income || k == Expense
}

// NewDate formats year, month and day into the canonical wire form.
func NewDate(year, month, day int) Date {
	return Date(time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(dateLayout))
}

// DateOf truncates a point in time to its calendar date.
func DateOf(t time.Time) Date {
	return Date(t.Format(dateLayout))
}

func (d Date) Validate() error {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return ErrInvalidDate
	}
	// time.Parse normalizes out-of-range components; reject anything
	// that does not survive a round-trip unchanged.
	if parsed.Format(dateLayout) != string(d) {
		return ErrInvalidDate
	}
	return nil
}

// Time returns the date as a UTC midnight instant. Validate first; a
// malformed date yields the zero time.
func (d Date) Time() time.Time {
	parsed, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}
	}
	return parsed
}

func (t TimeOfDay) Validate() error {
	parsed, err := time.Parse("15:04", string(t))
	if err != nil {
		return ErrInvalidTime
	}
	if parsed.Format("15:04") != string(t) {
		return ErrInvalidTime
	}
	return nil
}

func (t Transaction) Validate() error {
	if !t.Kind.Valid() {
		return ErrInvalidKind
	}
	if !t.Amount.IsPositive() {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(t.Category) == "" {
		return ErrEmptyCategory
	}
	return t.Date.Validate()
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTitle
	}
	if err := t.Date.Validate(); err != nil {
		return err
	}
	if err := t.Time.Validate(); err != nil {
		return err
	}
	if t.Duration <= 0 {
		return ErrInvalidDuration
	}
	return nil
}

func (g WeeklyGoal) Validate() error {
	if strings.TrimSpace(g.Title) == "" {
		return ErrEmptyTitle
	}
	if strings.TrimSpace(g.Week) == "" {
		return ErrEmptyWeek
	}
	return nil
}

func (e ExamRecord) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if strings.TrimSpace(e.Subject) == "" {
		return ErrEmptySubject
	}
	if e.Score < 0 {
		return ErrNegativeScore
	}
	// Score above MaxScore is allowed (bonus points); only the divisor
	// must be positive.
	if e.MaxScore <= 0 {
		return ErrInvalidMaxScore
	}
	return nil
}

func (j JournalEntry) Validate() error {
	return j.Date.Validate()
}

// Percentage returns the score as a share of the maximum, in percentage
// points. May exceed 100. A non-positive maximum yields 0 so that
// documents imported from older exports cannot divide by zero.
func (e ExamRecord) Percentage() float64 {
	if e.MaxScore <= 0 {
		return 0
	}
	return e.Score / e.MaxScore * 100
}

func (t Transaction) RecordID() string  { return t.ID }
func (t Task) RecordID() string         { return t.ID }
func (g WeeklyGoal) RecordID() string   { return g.ID }
func (e ExamRecord) RecordID() string   { return e.ID }
func (s Skill) RecordID() string        { return s.ID }
func (j JournalEntry) RecordID() string { return j.ID }
