package server

import (
	"net/http"
	"time"

	"polls/internal/config"
	"polls/internal/polls"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Server struct {
	store    polls.AdminStore
	cfg      config.Config
	loc      *time.Location
	sessions *sessionStore
	now      func() time.Time
}

// New wires the handlers to store. conn may be nil, in which case flash
// sessions are kept in memory.
func New(conn *gorm.DB, store polls.AdminStore, cfg config.Config) *Server {
	return &Server{
		store:    store,
		cfg:      cfg,
		loc:      cfg.Location(),
		sessions: newSessionStore(conn),
		now:      time.Now,
	}
}

func (s *Server) Handler() http.Handler {
	registerValidators()

	router := gin.New()
	router.Use(requestLogger(), gin.Recovery())
	router.RedirectTrailingSlash = true
	router.NoRoute(func(c *gin.Context) {
		renderNotFound(c)
	})

	router.GET("/healthz", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	router.Static("/static", "static")

	public := router.Group(s.cfg.BasePath)
	public.GET("/", s.handleIndex)
	public.GET("/:id/", s.handleDetail)
	public.GET("/:id/results/", s.handleResults)
	public.POST("/:id/vote/", s.handleVote)
	if s.cfg.BasePath != "" {
		router.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusFound, s.cfg.BasePath+"/")
		})
	}

	admin := router.Group("/admin")
	admin.GET("/", s.handleAdminIndex)
	questions := admin.Group("/polls/question")
	questions.GET("/", s.handleAdminQuestionList)
	questions.GET("/add/", s.handleAdminQuestionAddView)
	questions.POST("/add/", s.handleAdminQuestionCreate)
	questions.GET("/:id/change/", s.handleAdminQuestionChangeView)
	questions.POST("/:id/change/", s.handleAdminQuestionUpdate)
	questions.GET("/:id/delete/", s.handleAdminQuestionDeleteView)
	questions.POST("/:id/delete/", s.handleAdminQuestionDelete)
	questions.GET("/:id/history/", s.handleAdminQuestionHistory)
	return router
}

// clock returns the current time in the configured zone.
func (s *Server) clock() time.Time {
	return s.now().In(s.loc)
}
