package polls

import (
	"context"
	"errors"
	"strings"
)

// Vote records one vote for the choice named by rawChoice on question
// questionID. The question is looked up without a publication gate.
//
// It returns ErrNotFound when the question does not exist and a
// *ValidationError when rawChoice is empty, malformed or names a choice of
// another question. The returned Question is set whenever it was found so the
// caller can re-render it next to the validation message.
func Vote(ctx context.Context, store Store, questionID uint, rawChoice string) (Question, error) {
	question, err := store.Get(ctx, questionID)
	if err != nil {
		return Question{}, err
	}
	choiceID, ok := parseID(strings.TrimSpace(rawChoice))
	if !ok {
		return question, errNoChoice()
	}
	if err := store.IncrementVote(ctx, question.ID, choiceID); err != nil {
		if errors.Is(err, ErrChoiceNotFound) {
			return question, errNoChoice()
		}
		return question, err
	}
	return question, nil
}
