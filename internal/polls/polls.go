// Package polls holds the question/choice model, the rules deciding which
// questions visitors can see, and the vote operation.
package polls

import (
	"strconv"
	"time"
)

const (
	// LatestLimit caps the public question list.
	LatestLimit = 5
	// RecentWindow is how far back a question still counts as recently published.
	RecentWindow = 24 * time.Hour
	// MaxTextLength bounds question and choice text, counted in characters.
	MaxTextLength = 200
)

type Question struct {
	ID           uint
	QuestionText string
	PubDate      time.Time
	Choices      []Choice
}

type Choice struct {
	ID         uint
	QuestionID uint
	ChoiceText string
	Votes      int
}

func (q Question) String() string {
	return q.QuestionText
}

func (c Choice) String() string {
	return c.ChoiceText
}

// WasPublishedRecently reports whether PubDate lies in [now-RecentWindow, now].
// It is a display badge only; visibility is decided by IsPublished.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// IsPublished reports whether visitors may see the question at now.
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

func (q Question) TotalVotes() int {
	total := 0
	for _, choice := range q.Choices {
		total += choice.Votes
	}
	return total
}

// FindChoice looks a choice up among the question's own choices.
func (q Question) FindChoice(id uint) (Choice, bool) {
	for _, choice := range q.Choices {
		if choice.ID == id {
			return choice, true
		}
	}
	return Choice{}, false
}

func parseID(raw string) (uint, bool) {
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, false
	}
	return uint(value), true
}

func cloneQuestion(q Question) Question {
	out := q
	if q.Choices != nil {
		out.Choices = make([]Choice, len(q.Choices))
		copy(out.Choices, q.Choices)
	}
	return out
}
