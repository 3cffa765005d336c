package core

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// A Transform describes one domain event as a pure function from the
// current document to the next one. Transforms must not mutate their
// input; the store hands them a private clone and persists the result.
type Transform func(AppData) AppData

// NewTransaction builds a validated transaction with a fresh ID. The
// amount is always stored positive; the sign is derived from the kind.
func NewTransaction(kind TransactionKind, amount decimal.Decimal, category string, date Date, note string) (Transaction, error) {
	t := Transaction{
		ID:       uuid.NewString(),
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Date:     date,
		Note:     note,
	}
	if err := t.Validate(); err != nil {
		return Transaction{}, err
	}
	return t, nil
}

func NewTask(title string, date Date, timeOfDay TimeOfDay, duration int) (Task, error) {
	t := Task{
		ID:       uuid.NewString(),
		Title:    title,
		Date:     date,
		Time:     timeOfDay,
		Duration: duration,
	}
	if err := t.Validate(); err != nil {
		return Task{}, err
	}
	return t, nil
}

func NewWeeklyGoal(title, description, week string) (WeeklyGoal, error) {
	g := WeeklyGoal{
		ID:          uuid.NewString(),
		Title:       title,
		Description: description,
		Week:        week,
	}
	if err := g.Validate(); err != nil {
		return WeeklyGoal{}, err
	}
	return g, nil
}

func NewExamRecord(date Date, subject string, score, maxScore float64, notes string) (ExamRecord, error) {
	e := ExamRecord{
		ID:       uuid.NewString(),
		Date:     date,
		Subject:  subject,
		Score:    score,
		MaxScore: maxScore,
		Notes:    notes,
	}
	if err := e.Validate(); err != nil {
		return ExamRecord{}, err
	}
	return e, nil
}

func AddTransaction(t Transaction) Transform {
	return func(d AppData) AppData {
		d.Transactions = AppendRecord(d.Transactions, t)
		return d
	}
}

func DeleteTransaction(id string) Transform {
	return func(d AppData) AppData {
		d.Transactions = RemoveByID(d.Transactions, id)
		return d
	}
}

func AddTask(t Task) Transform {
	return func(d AppData) AppData {
		d.Tasks = AppendRecord(d.Tasks, t)
		return d
	}
}

func ToggleTask(id string) Transform {
	return func(d AppData) AppData {
		d.Tasks = UpdateByID(d.Tasks, id, func(t Task) Task {
			t.Completed = !t.Completed
			return t
		})
		return d
	}
}

func DeleteTask(id string) Transform {
	return func(d AppData) AppData {
		d.Tasks = RemoveByID(d.Tasks, id)
		return d
	}
}

func AddWeeklyGoal(g WeeklyGoal) Transform {
	return func(d AppData) AppData {
		d.WeeklyGoals = AppendRecord(d.WeeklyGoals, g)
		return d
	}
}

func ToggleWeeklyGoal(id string) Transform {
	return func(d AppData) AppData {
		d.WeeklyGoals = UpdateByID(d.WeeklyGoals, id, func(g WeeklyGoal) WeeklyGoal {
			g.Completed = !g.Completed
			return g
		})
		return d
	}
}

func DeleteWeeklyGoal(id string) Transform {
	return func(d AppData) AppData {
		d.WeeklyGoals = RemoveByID(d.WeeklyGoals, id)
		return d
	}
}

func AddExamRecord(e ExamRecord) Transform {
	return func(d AppData) AppData {
		d.ExamRecords = AppendRecord(d.ExamRecords, e)
		return d
	}
}

func DeleteExamRecord(id string) Transform {
	return func(d AppData) AppData {
		d.ExamRecords = RemoveByID(d.ExamRecords, id)
		return d
	}
}

// SetSkillProgress pins a skill to the given progress, clamped to [0,100].
// Unknown ids are a no-op: the skill set is fixed at seeding time.
func SetSkillProgress(id string, progress int) Transform {
	return func(d AppData) AppData {
		d.Skills = UpdateByID(d.Skills, id, func(s Skill) Skill {
			s.Progress = clampProgress(progress)
			return s
		})
		return d
	}
}

// AdjustSkillProgress moves a skill's progress by delta, clamped to [0,100].
func AdjustSkillProgress(id string, delta int) Transform {
	return func(d AppData) AppData {
		d.Skills = UpdateByID(d.Skills, id, func(s Skill) Skill {
			s.Progress = clampProgress(s.Progress + delta)
			return s
		})
		return d
	}
}

// UpsertJournalEntry writes the journal entry for a date. At most one
// entry exists per date: an existing entry has its content replaced,
// otherwise a new entry is appended.
func UpsertJournalEntry(date Date, content string) Transform {
	return func(d AppData) AppData {
		for _, e := range d.JournalEntries {
			if e.Date == date {
				d.JournalEntries = UpdateByID(d.JournalEntries, e.ID, func(e JournalEntry) JournalEntry {
					e.Content = content
					return e
				})
				return d
			}
		}
		d.JournalEntries = AppendRecord(d.JournalEntries, JournalEntry{
			ID:      uuid.NewString(),
			Date:    date,
			Content: content,
		})
		return d
	}
}

func clampProgress(p int) int {
	if p < 0 {
		return 0
	}
	if p > 100 {
		return 100
	}
	return p
}
