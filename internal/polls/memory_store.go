package polls

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryStore keeps everything in process. It backs the server when no
// database is configured and stands in for the database in tests.
type MemoryStore struct {
	mu             sync.Mutex
	nextQuestionID uint
	nextChoiceID   uint
	nextEventID    uint
	questions      map[uint]*Question
	events         []Event
	now            func() time.Time
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		nextQuestionID: 1,
		nextChoiceID:   1,
		nextEventID:    1,
		questions:      make(map[uint]*Question),
		now:            time.Now,
	}
}

func (s *MemoryStore) ListPublished(_ context.Context, now time.Time, limit int) ([]Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Question
	for _, q := range s.questions {
		if !q.IsPublished(now) {
			continue
		}
		item := *q
		item.Choices = nil
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].PubDate.Equal(out[j].PubDate) {
			return out[i].PubDate.After(out[j].PubDate)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *MemoryStore) GetPublished(_ context.Context, id uint, now time.Time) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok || !q.IsPublished(now) {
		return Question{}, ErrNotFound
	}
	return cloneQuestion(*q), nil
}

func (s *MemoryStore) Get(_ context.Context, id uint) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	return cloneQuestion(*q), nil
}

func (s *MemoryStore) IncrementVote(_ context.Context, questionID, choiceID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.questions[questionID]
	if !ok {
		return ErrChoiceNotFound
	}
	for i := range q.Choices {
		if q.Choices[i].ID == choiceID {
			q.Choices[i].Votes++
			return nil
		}
	}
	return ErrChoiceNotFound
}

func (s *MemoryStore) ListQuestions(_ context.Context, filter QuestionFilter) ([]Question, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Question
	for _, q := range s.questions {
		if !filter.From.IsZero() && q.PubDate.Before(filter.From) {
			continue
		}
		if !filter.To.IsZero() && !q.PubDate.Before(filter.To) {
			continue
		}
		item := *q
		item.Choices = nil
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return lessQuestion(out[i], out[j], filter.Order)
	})
	total := int64(len(out))
	if filter.Offset > 0 {
		if filter.Offset >= len(out) {
			return nil, total, nil
		}
		out = out[filter.Offset:]
	}
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, total, nil
}

func lessQuestion(a, b Question, order Order) bool {
	switch order {
	case OrderPubDate:
		if !a.PubDate.Equal(b.PubDate) {
			return a.PubDate.Before(b.PubDate)
		}
	case OrderPubDateDesc:
		if !a.PubDate.Equal(b.PubDate) {
			return a.PubDate.After(b.PubDate)
		}
	case OrderQuestionText:
		if c := strings.Compare(a.QuestionText, b.QuestionText); c != 0 {
			return c < 0
		}
	case OrderQuestionTextDesc:
		if c := strings.Compare(a.QuestionText, b.QuestionText); c != 0 {
			return c > 0
		}
	}
	return a.ID > b.ID
}

func (s *MemoryStore) CreateQuestion(_ context.Context, in QuestionInput) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := &Question{
		ID:           s.nextQuestionID,
		QuestionText: in.QuestionText,
		PubDate:      in.PubDate,
	}
	s.nextQuestionID++
	q.Choices = s.newChoicesLocked(q.ID, in.NewChoices)
	s.questions[q.ID] = q
	s.appendEventLocked(additionEvent(*q))
	return cloneQuestion(*q), nil
}

func (s *MemoryStore) UpdateQuestion(_ context.Context, id uint, in QuestionInput) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	before := cloneQuestion(*q)
	q.QuestionText = in.QuestionText
	q.PubDate = in.PubDate
	added := s.newChoicesLocked(q.ID, in.NewChoices)
	q.Choices = append(q.Choices, added...)
	s.appendEventLocked(changeEvent(before, *q, added))
	return cloneQuestion(*q), nil
}

func (s *MemoryStore) DeleteQuestion(_ context.Context, id uint) (Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	q, ok := s.questions[id]
	if !ok {
		return Question{}, ErrNotFound
	}
	delete(s.questions, id)
	s.appendEventLocked(deletionEvent(*q))
	return cloneQuestion(*q), nil
}

func (s *MemoryStore) ListEvents(_ context.Context, questionID uint) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []Event
	for i := len(s.events) - 1; i >= 0; i-- {
		if s.events[i].QuestionID == questionID {
			out = append(out, s.events[i])
		}
	}
	return out, nil
}

func (s *MemoryStore) newChoicesLocked(questionID uint, texts []string) []Choice {
	var out []Choice
	for _, text := range texts {
		out = append(out, Choice{
			ID:         s.nextChoiceID,
			QuestionID: questionID,
			ChoiceText: text,
		})
		s.nextChoiceID++
	}
	return out
}

func (s *MemoryStore) appendEventLocked(event Event) {
	event.ID = s.nextEventID
	s.nextEventID++
	event.CreatedAt = s.now()
	s.events = append(s.events, event)
}
