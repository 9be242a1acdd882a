package server

import (
	"errors"
	"log"
	"net/http"

	"polls/internal/polls"
	"polls/internal/web"

	"github.com/gin-gonic/gin"
)

func (s *Server) handleIndex(c *gin.Context) {
	questions, err := s.store.ListPublished(c.Request.Context(), s.clock(), polls.LatestLimit)
	if err != nil {
		renderServerError(c, "list questions", err)
		return
	}
	render(c, http.StatusOK, web.Index(web.IndexData{
		BasePath:  s.cfg.BasePath,
		Questions: questions,
	}))
}

func (s *Server) handleDetail(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := s.store.GetPublished(c.Request.Context(), id, s.clock())
	if err != nil {
		s.renderLookupError(c, "load question", err)
		return
	}
	render(c, http.StatusOK, web.Detail(web.DetailData{
		BasePath: s.cfg.BasePath,
		Question: question,
	}))
}

func (s *Server) handleResults(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := s.store.Get(c.Request.Context(), id)
	if err != nil {
		s.renderLookupError(c, "load results", err)
		return
	}
	render(c, http.StatusOK, web.Results(web.ResultsData{
		BasePath: s.cfg.BasePath,
		Question: question,
	}))
}

func (s *Server) handleVote(c *gin.Context) {
	id, ok := bindQuestionID(c)
	if !ok {
		return
	}
	question, err := polls.Vote(c.Request.Context(), s.store, id, c.PostForm("choice"))
	var verr *polls.ValidationError
	switch {
	case err == nil:
		log.Printf("vote recorded question_id=%d choice=%q", id, c.PostForm("choice"))
		c.Redirect(http.StatusFound, web.ResultsPath(s.cfg.BasePath, id))
	case errors.As(err, &verr):
		render(c, http.StatusOK, web.Detail(web.DetailData{
			BasePath:     s.cfg.BasePath,
			Question:     question,
			ErrorMessage: verr.Message,
		}))
	default:
		s.renderLookupError(c, "vote", err)
	}
}

func (s *Server) renderLookupError(c *gin.Context, action string, err error) {
	if errors.Is(err, polls.ErrNotFound) {
		renderNotFound(c)
		return
	}
	renderServerError(c, action, err)
}
