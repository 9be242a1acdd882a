package polls

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"
)

// runStoreContract checks the behaviour every AdminStore must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) AdminStore) {
	t.Run("ListPublishedEmpty", func(t *testing.T) {
		store := newStore(t)
		got, err := store.ListPublished(context.Background(), time.Now(), LatestLimit)
		if err != nil {
			t.Fatalf("list published: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no questions, got %d", len(got))
		}
	})

	t.Run("ListPublishedSkipsFutureAndOrders", func(t *testing.T) {
		store := newStore(t)
		now := time.Now()
		old := createQuestion(t, store, "Past question 1.", now.AddDate(0, 0, -30))
		recent := createQuestion(t, store, "Past question 2.", now.AddDate(0, 0, -5))
		createQuestion(t, store, "Future question.", now.AddDate(0, 0, 30))

		got, err := store.ListPublished(context.Background(), now, LatestLimit)
		if err != nil {
			t.Fatalf("list published: %v", err)
		}
		assertIDs(t, got, recent.ID, old.ID)
	})

	t.Run("ListPublishedCapsAtLimit", func(t *testing.T) {
		store := newStore(t)
		now := time.Now()
		var ids []uint
		for i := 1; i <= 7; i++ {
			q := createQuestion(t, store, "Question", now.AddDate(0, 0, -i))
			ids = append(ids, q.ID)
		}
		for i := 0; i < 3; i++ {
			createQuestion(t, store, "Future", now.AddDate(0, 0, i+1))
		}
		got, err := store.ListPublished(context.Background(), now, LatestLimit)
		if err != nil {
			t.Fatalf("list published: %v", err)
		}
		assertIDs(t, got, ids[:5]...)
	})

	t.Run("GetPublishedHidesFuture", func(t *testing.T) {
		store := newStore(t)
		now := time.Now()
		future := createQuestion(t, store, "Future question.", now.AddDate(0, 0, 5), "a")
		past := createQuestion(t, store, "Past Question.", now.AddDate(0, 0, -5), "a", "b")

		if _, err := store.GetPublished(context.Background(), future.ID, now); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found for future question, got %v", err)
		}
		if _, err := store.GetPublished(context.Background(), 99999, now); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found for missing question, got %v", err)
		}
		got, err := store.GetPublished(context.Background(), past.ID, now)
		if err != nil {
			t.Fatalf("get published: %v", err)
		}
		if got.QuestionText != "Past Question." || len(got.Choices) != 2 {
			t.Fatalf("unexpected question %#v", got)
		}
		if got.Choices[0].ChoiceText != "a" || got.Choices[1].ChoiceText != "b" {
			t.Fatalf("expected choices in creation order, got %#v", got.Choices)
		}
	})

	t.Run("GetIgnoresPublication", func(t *testing.T) {
		store := newStore(t)
		future := createQuestion(t, store, "Future question.", time.Now().AddDate(0, 0, 5), "a")
		got, err := store.Get(context.Background(), future.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.ID != future.ID || len(got.Choices) != 1 {
			t.Fatalf("unexpected question %#v", got)
		}
	})

	t.Run("IncrementVoteChecksOwnership", func(t *testing.T) {
		store := newStore(t)
		now := time.Now()
		first := createQuestion(t, store, "First", now.Add(-time.Hour), "a", "b")
		second := createQuestion(t, store, "Second", now.Add(-time.Hour), "c")

		if err := store.IncrementVote(context.Background(), first.ID, second.Choices[0].ID); !errors.Is(err, ErrChoiceNotFound) {
			t.Fatalf("expected choice not found, got %v", err)
		}
		if err := store.IncrementVote(context.Background(), first.ID, first.Choices[1].ID); err != nil {
			t.Fatalf("increment vote: %v", err)
		}
		got, err := store.Get(context.Background(), first.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Choices[0].Votes != 0 || got.Choices[1].Votes != 1 {
			t.Fatalf("unexpected votes %#v", got.Choices)
		}
		other, _ := store.Get(context.Background(), second.ID)
		if other.Choices[0].Votes != 0 {
			t.Fatalf("expected other question untouched, got %#v", other.Choices)
		}
	})

	t.Run("ConcurrentVotesAreNotLost", func(t *testing.T) {
		store := newStore(t)
		q := createQuestion(t, store, "Race", time.Now().Add(-time.Hour), "only")
		const voters = 50
		var wg sync.WaitGroup
		errs := make(chan error, voters)
		for i := 0; i < voters; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if err := store.IncrementVote(context.Background(), q.ID, q.Choices[0].ID); err != nil {
					errs <- err
				}
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Fatalf("increment vote: %v", err)
		}
		got, err := store.Get(context.Background(), q.ID)
		if err != nil {
			t.Fatalf("get: %v", err)
		}
		if got.Choices[0].Votes != voters {
			t.Fatalf("expected %d votes, got %d", voters, got.Choices[0].Votes)
		}
	})

	t.Run("UpdateAppendsChoicesAndLogs", func(t *testing.T) {
		store := newStore(t)
		now := time.Now().UTC().Truncate(time.Second)
		q := createQuestion(t, store, "What's new?", now.Add(-time.Hour), "Not much")

		updated, err := store.UpdateQuestion(context.Background(), q.ID, QuestionInput{
			QuestionText: "What's up?",
			PubDate:      now.Add(-2 * time.Hour),
			NewChoices:   []string{"The sky"},
		})
		if err != nil {
			t.Fatalf("update question: %v", err)
		}
		if updated.QuestionText != "What's up?" || len(updated.Choices) != 2 {
			t.Fatalf("unexpected update result %#v", updated)
		}
		if !updated.PubDate.Equal(now.Add(-2 * time.Hour)) {
			t.Fatalf("expected pub date to change, got %s", updated.PubDate)
		}

		events, err := store.ListEvents(context.Background(), q.ID)
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(events) != 2 {
			t.Fatalf("expected 2 events, got %d", len(events))
		}
		if events[0].Action != ActionChange {
			t.Fatalf("expected newest event to be a change, got %s", events[0].Action)
		}
		want := "Changed Question text and Date published. Added choice “The sky”."
		if events[0].Message != want {
			t.Fatalf("expected message %q, got %q", want, events[0].Message)
		}
		var payload map[string]any
		if err := json.Unmarshal(events[0].Payload, &payload); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		if payload["question_text"] != "What's up?" {
			t.Fatalf("unexpected payload %#v", payload)
		}
		if events[1].Action != ActionAddition {
			t.Fatalf("expected oldest event to be an addition, got %s", events[1].Action)
		}

		if _, err := store.UpdateQuestion(context.Background(), 99999, QuestionInput{QuestionText: "x", PubDate: now}); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	t.Run("DeleteCascadesToChoices", func(t *testing.T) {
		store := newStore(t)
		q := createQuestion(t, store, "Doomed", time.Now().Add(-time.Hour), "a", "b")
		deleted, err := store.DeleteQuestion(context.Background(), q.ID)
		if err != nil {
			t.Fatalf("delete question: %v", err)
		}
		if len(deleted.Choices) != 2 {
			t.Fatalf("expected deleted question to report its choices, got %#v", deleted.Choices)
		}
		if _, err := store.Get(context.Background(), q.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected question gone, got %v", err)
		}
		if err := store.IncrementVote(context.Background(), q.ID, q.Choices[0].ID); !errors.Is(err, ErrChoiceNotFound) {
			t.Fatalf("expected choices gone with question, got %v", err)
		}
		events, err := store.ListEvents(context.Background(), q.ID)
		if err != nil {
			t.Fatalf("list events: %v", err)
		}
		if len(events) == 0 || events[0].Action != ActionDeletion {
			t.Fatalf("expected deletion to be logged, got %#v", events)
		}
		if _, err := store.DeleteQuestion(context.Background(), q.ID); !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected second delete to report not found, got %v", err)
		}
	})

	t.Run("ListQuestionsFiltersAndPages", func(t *testing.T) {
		store := newStore(t)
		now := time.Now()
		a := createQuestion(t, store, "Alpha", now.AddDate(0, 0, -40))
		b := createQuestion(t, store, "Bravo", now.AddDate(0, 0, -3))
		c := createQuestion(t, store, "Charlie", now.AddDate(0, 0, 2))

		all, total, err := store.ListQuestions(context.Background(), QuestionFilter{})
		if err != nil {
			t.Fatalf("list questions: %v", err)
		}
		if total != 3 {
			t.Fatalf("expected total 3, got %d", total)
		}
		assertIDs(t, all, c.ID, b.ID, a.ID)

		byDate, _, err := store.ListQuestions(context.Background(), QuestionFilter{Order: OrderPubDate})
		if err != nil {
			t.Fatalf("list questions: %v", err)
		}
		assertIDs(t, byDate, a.ID, b.ID, c.ID)

		byText, _, err := store.ListQuestions(context.Background(), QuestionFilter{Order: OrderQuestionTextDesc})
		if err != nil {
			t.Fatalf("list questions: %v", err)
		}
		assertIDs(t, byText, c.ID, b.ID, a.ID)

		windowed, total, err := store.ListQuestions(context.Background(), QuestionFilter{
			From: now.AddDate(0, 0, -7),
			To:   now,
		})
		if err != nil {
			t.Fatalf("list questions: %v", err)
		}
		if total != 1 {
			t.Fatalf("expected 1 question in window, got %d", total)
		}
		assertIDs(t, windowed, b.ID)

		page, total, err := store.ListQuestions(context.Background(), QuestionFilter{
			Order:  OrderPubDate,
			Offset: 1,
			Limit:  1,
		})
		if err != nil {
			t.Fatalf("list questions: %v", err)
		}
		if total != 3 {
			t.Fatalf("expected total 3 on paged query, got %d", total)
		}
		assertIDs(t, page, b.ID)
	})
}

func createQuestion(t *testing.T, store AdminStore, text string, pubDate time.Time, choices ...string) Question {
	t.Helper()
	q, err := store.CreateQuestion(context.Background(), QuestionInput{
		QuestionText: text,
		PubDate:      pubDate,
		NewChoices:   choices,
	})
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	return q
}

func assertIDs(t *testing.T, got []Question, want ...uint) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d questions, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i] {
			t.Fatalf("position %d: expected question %d, got %d", i, want[i], got[i].ID)
		}
	}
}
