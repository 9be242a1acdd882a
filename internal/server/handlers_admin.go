package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"polls/internal/polls"
	"polls/internal/web"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleAdminIndex(c *gin.Context) {
	_, total, err := s.store.ListQuestions(c.Request.Context(), polls.QuestionFilter{Limit: 1})
	if err != nil {
		renderServerError(c, "count questions", err)
		return
	}
	render(c, http.StatusOK, web.AdminIndex(web.AdminIndexData{
		Flash:         s.sessions.PopFlash(c),
		QuestionCount: total,
	}))
}

func (s *Server) handleAdminQuestionList(c *gin.Context) {
	ctx := c.Request.Context()
	now := s.clock()
	dateFilter := polls.ParseDateFilter(c.Query("pub_date"))
	order := polls.ParseOrder(c.Query("o"))
	perPage := s.cfg.AdminPerPage
	page := parsePage(c)

	filter := polls.QuestionFilter{Order: order, Limit: perPage, Offset: pageOffset(page, perPage)}
	filter.From, filter.To = dateFilter.Bounds(now)
	questions, total, err := s.store.ListQuestions(ctx, filter)
	if err != nil {
		renderServerError(c, "list questions", err)
		return
	}
	base := web.AdminListURL(string(dateFilter), string(order))
	pagination := buildPaginationData(base, page, perPage, total)
	if pagination.Page != page {
		filter.Offset = pageOffset(pagination.Page, perPage)
		if questions, _, err = s.store.ListQuestions(ctx, filter); err != nil {
			renderServerError(c, "list questions", err)
			return
		}
	}

	data := web.AdminQuestionListData{
		Flash:      s.sessions.PopFlash(c),
		Columns:    listColumns(dateFilter, order),
		Pagination: pagination,
	}
	for _, f := range polls.DateFilters {
		data.Filters = append(data.Filters, web.AdminFilterLink{
			Label:    f.Label(),
			URL:      web.AdminListURL(string(f), string(order)),
			Selected: f == dateFilter,
		})
	}
	for _, q := range questions {
		data.Rows = append(data.Rows, web.AdminQuestionRow{
			ID:           q.ID,
			QuestionText: q.QuestionText,
			PubDate:      q.PubDate.In(s.loc),
			Recent:       q.WasPublishedRecently(now),
		})
	}
	render(c, http.StatusOK, web.AdminQuestionList(data))
}

// listColumns builds the change-list headers. "Published recently?" sorts by
// pub_date like the date column.
func listColumns(dateFilter polls.DateFilter, current polls.Order) []web.AdminColumn {
	column := func(label string, asc, desc polls.Order) web.AdminColumn {
		col := web.AdminColumn{Label: label}
		next := asc
		switch current {
		case asc:
			col.Sorted = "asc"
			next = desc
		case desc:
			col.Sorted = "desc"
		}
		col.URL = web.AdminListURL(string(dateFilter), string(next))
		return col
	}
	return []web.AdminColumn{
		column("Question text", polls.OrderQuestionText, polls.OrderQuestionTextDesc),
		column("Date published", polls.OrderPubDate, polls.OrderPubDateDesc),
		column("Published recently?", polls.OrderPubDate, polls.OrderPubDateDesc),
	}
}

func (s *Server) handleAdminQuestionAddView(c *gin.Context) {
	data := web.AdminQuestionFormData{Flash: s.sessions.PopFlash(c)}
	render(c, http.StatusOK, web.AdminQuestionForm(data))
}

func (s *Server) handleAdminQuestionCreate(c *gin.Context) {
	form, input, ok := s.bindQuestionForm(c, web.AdminQuestionFormData{})
	if !ok {
		return
	}
	question, err := s.store.CreateQuestion(c.Request.Context(), input)
	if err != nil {
		renderServerError(c, "create question", err)
		return
	}
	log.Printf("question created question_id=%d choices=%d", question.ID, len(question.Choices))
	s.redirectAfterSave(c, form, question, "added")
}

func (s *Server) handleAdminQuestionChangeView(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.adminLookupFailed(c, id, "load question", err)
		return
	}
	data := formData(question, s.loc)
	data.Flash = s.sessions.PopFlash(c)
	render(c, http.StatusOK, web.AdminQuestionForm(data))
}

func (s *Server) handleAdminQuestionUpdate(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	current, err := s.store.Get(ctx, id)
	if err != nil {
		s.adminLookupFailed(c, id, "load question", err)
		return
	}
	form, input, ok := s.bindQuestionForm(c, web.AdminQuestionFormData{QuestionID: id, Choices: current.Choices})
	if !ok {
		return
	}
	question, err := s.store.UpdateQuestion(ctx, id, input)
	if err != nil {
		s.adminLookupFailed(c, id, "update question", err)
		return
	}
	log.Printf("question updated question_id=%d choices_added=%d", question.ID, len(input.NewChoices))
	s.redirectAfterSave(c, form, question, "changed")
}

func (s *Server) handleAdminQuestionDeleteView(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.adminLookupFailed(c, id, "load question", err)
		return
	}
	render(c, http.StatusOK, web.AdminQuestionDelete(web.AdminQuestionDeleteData{Question: question}))
}

func (s *Server) handleAdminQuestionDelete(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := s.store.DeleteQuestion(c.Request.Context(), id)
	if err != nil {
		s.adminLookupFailed(c, id, "delete question", err)
		return
	}
	log.Printf("question deleted question_id=%d choices=%d", question.ID, len(question.Choices))
	s.sessions.SetFlash(c, fmt.Sprintf("The question “%s” was deleted successfully.", question.QuestionText))
	c.Redirect(http.StatusFound, web.AdminQuestionsPath)
}

// handleAdminQuestionHistory still answers for deleted questions as long as
// their change log has entries.
func (s *Server) handleAdminQuestionHistory(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	events, err := s.store.ListEvents(ctx, id)
	if err != nil {
		renderServerError(c, "list events", err)
		return
	}
	data := web.AdminQuestionHistoryData{QuestionID: id}
	question, err := s.store.Get(ctx, id)
	switch {
	case err == nil:
		data.Exists = true
		data.Label = question.QuestionText
	case errors.Is(err, polls.ErrNotFound) && len(events) > 0:
		data.Label = events[0].Label
	default:
		s.adminLookupFailed(c, id, "load question", err)
		return
	}
	for _, event := range events {
		data.Events = append(data.Events, web.AdminEventRow{
			When:    event.CreatedAt.In(s.loc),
			Action:  event.Action,
			Message: event.Message,
			Payload: string(event.Payload),
		})
	}
	render(c, http.StatusOK, web.AdminQuestionHistory(data))
}

// bindQuestionForm validates the add/change form. On failure it re-renders
// base with the submitted values and errors and returns false.
func (s *Server) bindQuestionForm(c *gin.Context, base web.AdminQuestionFormData) (questionForm, polls.QuestionInput, bool) {
	var form questionForm
	bindErr := c.ShouldBind(&form)
	fieldErrs, ok := resolveFieldErrors(bindErr, questionFormMessages, "Enter a valid value.")
	if bindErr != nil && !ok {
		c.String(http.StatusBadRequest, "invalid form submission")
		return form, polls.QuestionInput{}, false
	}
	errs := make(map[string]string)
	for field, msg := range fieldErrs {
		key := questionFormKeys[field]
		if _, seen := errs[key]; !seen {
			errs[key] = msg
		}
	}

	var pubDate time.Time
	if errs["pub_date"] == "" {
		var msg string
		if pubDate, msg = parsePubDate(form.PubDateDate, form.PubDateTime, s.loc); msg != "" {
			errs["pub_date"] = msg
		}
	}
	input := polls.QuestionInput{
		QuestionText: normalizeText(form.QuestionText),
		PubDate:      pubDate,
		NewChoices:   nonBlank(form.ChoiceTexts),
	}
	if len(errs) == 0 {
		return form, input, true
	}

	base.QuestionText = form.QuestionText
	base.PubDateDate = form.PubDateDate
	base.PubDateTime = form.PubDateTime
	base.NewChoices = form.ChoiceTexts
	base.Errors = errs
	render(c, http.StatusOK, web.AdminQuestionForm(base))
	return form, polls.QuestionInput{}, false
}

func (s *Server) redirectAfterSave(c *gin.Context, form questionForm, q polls.Question, verb string) {
	message := fmt.Sprintf("The question “%s” was %s successfully.", q.QuestionText, verb)
	switch {
	case form.Continue != "":
		s.sessions.SetFlash(c, message+" You may edit it again below.")
		c.Redirect(http.StatusFound, web.AdminChangePath(q.ID))
	case form.AddAnother != "":
		s.sessions.SetFlash(c, message+" You may add another question below.")
		c.Redirect(http.StatusFound, web.AdminAddPath)
	default:
		s.sessions.SetFlash(c, message)
		c.Redirect(http.StatusFound, web.AdminQuestionsPath)
	}
}

// adminLookupFailed sends missing questions back to the admin index with a
// message, and anything else to the 500 page.
func (s *Server) adminLookupFailed(c *gin.Context, id uint, action string, err error) {
	if !errors.Is(err, polls.ErrNotFound) {
		renderServerError(c, action, err)
		return
	}
	s.sessions.SetFlash(c, fmt.Sprintf("Question with ID “%d” doesn’t exist. Perhaps it was deleted?", id))
	c.Redirect(http.StatusFound, web.AdminRoot)
}
