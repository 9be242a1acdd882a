package server

import (
	"strings"
	"time"

	"polls/internal/polls"
	"polls/internal/web"
)

type questionForm struct {
	QuestionText string   `form:"question_text" binding:"required,notblank,polltext"`
	PubDateDate  string   `form:"pub_date_date" binding:"required,notblank"`
	PubDateTime  string   `form:"pub_date_time" binding:"required,notblank"`
	ChoiceTexts  []string `form:"choice_text" binding:"max=3,dive,polltext"`
	Continue     string   `form:"_continue"`
	AddAnother   string   `form:"_addanother"`
}

var questionFormMessages = bindMessages{
	"QuestionText": {"required": requiredMessage, "notblank": requiredMessage, "polltext": tooLongMessage},
	"PubDateDate":  {"required": requiredMessage, "notblank": requiredMessage},
	"PubDateTime":  {"required": requiredMessage, "notblank": requiredMessage},
	"ChoiceTexts":  {"max": "Too many choices submitted at once.", "polltext": tooLongMessage},
}

// questionFormKeys maps struct fields to the error slots of the form template.
var questionFormKeys = map[string]string{
	"QuestionText": "question_text",
	"PubDateDate":  "pub_date",
	"PubDateTime":  "pub_date",
	"ChoiceTexts":  "choices",
}

var (
	dateLayouts = []string{"2006-01-02"}
	timeLayouts = []string{"15:04:05", "15:04"}
)

// parsePubDate combines the split date and time inputs in loc.
func parsePubDate(date, clock string, loc *time.Location) (time.Time, string) {
	day, ok := parseFirst(strings.TrimSpace(date), dateLayouts, loc)
	if !ok {
		return time.Time{}, "Enter a valid date."
	}
	at, ok := parseFirst(strings.TrimSpace(clock), timeLayouts, loc)
	if !ok {
		return time.Time{}, "Enter a valid time."
	}
	return time.Date(day.Year(), day.Month(), day.Day(), at.Hour(), at.Minute(), at.Second(), 0, loc), ""
}

func parseFirst(value string, layouts []string, loc *time.Location) (time.Time, bool) {
	for _, layout := range layouts {
		if parsed, err := time.ParseInLocation(layout, value, loc); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// formData fills the template fields from a stored question.
func formData(q polls.Question, loc *time.Location) web.AdminQuestionFormData {
	local := q.PubDate.In(loc)
	return web.AdminQuestionFormData{
		QuestionID:   q.ID,
		QuestionText: q.QuestionText,
		PubDateDate:  local.Format("2006-01-02"),
		PubDateTime:  local.Format("15:04:05"),
		Choices:      q.Choices,
	}
}
