package polls

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	ActionAddition = "addition"
	ActionChange   = "change"
	ActionDeletion = "deletion"
)

// Event is one admin change-log entry. Payload holds JSON.
type Event struct {
	ID         uint
	QuestionID uint
	Action     string
	Label      string
	Message    string
	Payload    []byte
	CreatedAt  time.Time
}

type eventPayload struct {
	QuestionText  string          `json:"question_text"`
	PubDate       time.Time       `json:"pub_date"`
	Changed       []string        `json:"changed,omitempty"`
	ChoicesAdded  []string        `json:"choices_added,omitempty"`
	ChoiceResults []choiceOutcome `json:"choices,omitempty"`
}

type choiceOutcome struct {
	ChoiceText string `json:"choice_text"`
	Votes      int    `json:"votes"`
}

func additionEvent(q Question) Event {
	payload := eventPayload{
		QuestionText: q.QuestionText,
		PubDate:      q.PubDate.UTC(),
		ChoicesAdded: choiceTexts(q.Choices),
	}
	parts := []string{"Added."}
	parts = append(parts, addedChoiceMessages(payload.ChoicesAdded)...)
	return newEvent(q, ActionAddition, strings.Join(parts, " "), payload)
}

func changeEvent(before Question, after Question, added []Choice) Event {
	payload := eventPayload{
		QuestionText: after.QuestionText,
		PubDate:      after.PubDate.UTC(),
		ChoicesAdded: choiceTexts(added),
	}
	var labels []string
	if before.QuestionText != after.QuestionText {
		payload.Changed = append(payload.Changed, "question_text")
		labels = append(labels, "Question text")
	}
	if !before.PubDate.Equal(after.PubDate) {
		payload.Changed = append(payload.Changed, "pub_date")
		labels = append(labels, "Date published")
	}
	var parts []string
	if len(labels) > 0 {
		parts = append(parts, fmt.Sprintf("Changed %s.", strings.Join(labels, " and ")))
	}
	parts = append(parts, addedChoiceMessages(payload.ChoicesAdded)...)
	if len(parts) == 0 {
		parts = append(parts, "No fields changed.")
	}
	return newEvent(after, ActionChange, strings.Join(parts, " "), payload)
}

func deletionEvent(q Question) Event {
	payload := eventPayload{
		QuestionText: q.QuestionText,
		PubDate:      q.PubDate.UTC(),
	}
	for _, choice := range q.Choices {
		payload.ChoiceResults = append(payload.ChoiceResults, choiceOutcome{
			ChoiceText: choice.ChoiceText,
			Votes:      choice.Votes,
		})
	}
	return newEvent(q, ActionDeletion, "Deleted.", payload)
}

func newEvent(q Question, action, message string, payload eventPayload) Event {
	data, err := json.Marshal(payload)
	if err != nil {
		data = []byte("{}")
	}
	return Event{
		QuestionID: q.ID,
		Action:     action,
		Label:      q.QuestionText,
		Message:    message,
		Payload:    data,
	}
}

func addedChoiceMessages(texts []string) []string {
	out := make([]string, 0, len(texts))
	for _, text := range texts {
		out = append(out, fmt.Sprintf("Added choice “%s”.", text))
	}
	return out
}

func choiceTexts(choices []Choice) []string {
	if len(choices) == 0 {
		return nil
	}
	out := make([]string, 0, len(choices))
	for _, choice := range choices {
		out = append(out, choice.ChoiceText)
	}
	return out
}
