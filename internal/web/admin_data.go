package web

import (
	"time"

	"polls/internal/polls"
)

type PaginationData struct {
	BasePath   string
	Page       int
	PerPage    int
	Total      int
	TotalPages int
	HasPrev    bool
	HasNext    bool
	PrevPage   int
	NextPage   int
}

type AdminIndexData struct {
	Flash         string
	QuestionCount int64
}

type AdminQuestionRow struct {
	ID           uint
	QuestionText string
	PubDate      time.Time
	Recent       bool
}

type AdminFilterLink struct {
	Label    string
	URL      string
	Selected bool
}

// AdminColumn is a sortable change-list header. Sorted is "asc", "desc" or "".
type AdminColumn struct {
	Label  string
	URL    string
	Sorted string
}

type AdminQuestionListData struct {
	Flash      string
	Rows       []AdminQuestionRow
	Columns    []AdminColumn
	Filters    []AdminFilterLink
	Pagination PaginationData
}

// NewChoiceRows is how many blank inline choice rows the question form offers.
const NewChoiceRows = 3

type AdminQuestionFormData struct {
	Flash        string
	QuestionID   uint
	QuestionText string
	PubDateDate  string
	PubDateTime  string
	Choices      []polls.Choice
	NewChoices   []string
	Errors       map[string]string
}

type AdminQuestionDeleteData struct {
	Question polls.Question
}

type AdminEventRow struct {
	When    time.Time
	Action  string
	Message string
	Payload string
}

type AdminQuestionHistoryData struct {
	QuestionID uint
	Label      string
	Exists     bool
	Events     []AdminEventRow
}
