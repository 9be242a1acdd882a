package polls

import (
	"context"
	"time"
)

// Store is what the public pages need.
type Store interface {
	// ListPublished returns up to limit questions with PubDate <= now,
	// newest first. Choices are not loaded.
	ListPublished(ctx context.Context, now time.Time, limit int) ([]Question, error)
	// GetPublished returns the question with its choices, or ErrNotFound when
	// it is missing or PubDate is after now.
	GetPublished(ctx context.Context, id uint, now time.Time) (Question, error)
	// Get returns the question with its choices regardless of PubDate.
	Get(ctx context.Context, id uint) (Question, error)
	// IncrementVote adds one vote to choiceID as a single atomic step. It
	// returns ErrChoiceNotFound unless the choice belongs to questionID.
	IncrementVote(ctx context.Context, questionID, choiceID uint) error
}

// AdminStore adds the data-entry operations behind the admin screens.
// Every mutation appends an Event to the question's change log.
type AdminStore interface {
	Store
	ListQuestions(ctx context.Context, filter QuestionFilter) ([]Question, int64, error)
	CreateQuestion(ctx context.Context, in QuestionInput) (Question, error)
	// UpdateQuestion rewrites text and PubDate and appends in.NewChoices.
	// Existing choices are never edited.
	UpdateQuestion(ctx context.Context, id uint, in QuestionInput) (Question, error)
	// DeleteQuestion removes the question and, by cascade, its choices. It
	// returns what was deleted.
	DeleteQuestion(ctx context.Context, id uint) (Question, error)
	ListEvents(ctx context.Context, questionID uint) ([]Event, error)
}

type QuestionInput struct {
	QuestionText string
	PubDate      time.Time
	NewChoices   []string
}

// QuestionFilter drives the admin change list. Zero From/To mean unbounded;
// To is exclusive. Limit <= 0 means no limit.
type QuestionFilter struct {
	From   time.Time
	To     time.Time
	Order  Order
	Offset int
	Limit  int
}

type Order string

const (
	OrderDefault          Order = ""
	OrderPubDate          Order = "pub_date"
	OrderPubDateDesc      Order = "-pub_date"
	OrderQuestionText     Order = "question_text"
	OrderQuestionTextDesc Order = "-question_text"
)

// ParseOrder accepts the admin "o" query value; anything unknown is OrderDefault.
func ParseOrder(raw string) Order {
	switch Order(raw) {
	case OrderPubDate, OrderPubDateDesc, OrderQuestionText, OrderQuestionTextDesc:
		return Order(raw)
	default:
		return OrderDefault
	}
}

// DateFilter is one entry of the admin "By date published" sidebar.
type DateFilter string

const (
	DateAny       DateFilter = ""
	DateToday     DateFilter = "today"
	DatePast7Days DateFilter = "past_7_days"
	DateThisMonth DateFilter = "this_month"
	DateThisYear  DateFilter = "this_year"
)

var DateFilters = []DateFilter{DateAny, DateToday, DatePast7Days, DateThisMonth, DateThisYear}

func ParseDateFilter(raw string) DateFilter {
	for _, f := range DateFilters {
		if string(f) == raw {
			return f
		}
	}
	return DateAny
}

func (f DateFilter) Label() string {
	switch f {
	case DateToday:
		return "Today"
	case DatePast7Days:
		return "Past 7 days"
	case DateThisMonth:
		return "This month"
	case DateThisYear:
		return "This year"
	default:
		return "Any date"
	}
}

// Bounds returns the [from, to) range for the filter, computed on calendar
// days of now's location. DateAny returns zero times.
func (f DateFilter) Bounds(now time.Time) (time.Time, time.Time) {
	loc := now.Location()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	tomorrow := today.AddDate(0, 0, 1)
	switch f {
	case DateToday:
		return today, tomorrow
	case DatePast7Days:
		return today.AddDate(0, 0, -7), tomorrow
	case DateThisMonth:
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(0, 1, 0)
	case DateThisYear:
		first := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, loc)
		return first, first.AddDate(1, 0, 0)
	default:
		return time.Time{}, time.Time{}
	}
}
