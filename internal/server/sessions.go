package server

import (
	"log"
	"net/http"
	"sync"

	"polls/internal/db"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const sessionCookie = "polls_session"

// sessionStore keeps one flash message per browser session, in the sessions
// table when a database is configured and in memory otherwise.
type sessionStore struct {
	db     *gorm.DB
	mu     sync.Mutex
	flashes map[string]string
}

func newSessionStore(conn *gorm.DB) *sessionStore {
	return &sessionStore{
		db:     conn,
		flashes: make(map[string]string),
	}
}

func (s *sessionStore) SetFlash(c *gin.Context, message string) {
	if message == "" {
		return
	}
	id := s.ensureSessionID(c)
	if s.db == nil {
		s.mu.Lock()
		s.flashes[id] = message
		s.mu.Unlock()
		return
	}
	record := db.Session{
		ID:    id,
		Flash: message,
	}
	if err := s.db.WithContext(c.Request.Context()).Save(&record).Error; err != nil {
		log.Printf("session save failed session_id=%s err=%v", id, err)
	}
}

// PopFlash returns the pending message and clears it.
func (s *sessionStore) PopFlash(c *gin.Context) string {
	cookie, err := c.Cookie(sessionCookie)
	if err != nil || cookie == "" {
		return ""
	}
	if s.db == nil {
		s.mu.Lock()
		defer s.mu.Unlock()
		message := s.flashes[cookie]
		delete(s.flashes, cookie)
		return message
	}
	var record db.Session
	conn := s.db.WithContext(c.Request.Context())
	if err := conn.Where("id = ?", cookie).First(&record).Error; err != nil {
		return ""
	}
	if record.Flash == "" {
		return ""
	}
	message := record.Flash
	if err := conn.Model(&record).Update("flash", "").Error; err != nil {
		log.Printf("session clear failed session_id=%s err=%v", cookie, err)
	}
	return message
}

func (s *sessionStore) ensureSessionID(c *gin.Context) string {
	if cookie, err := c.Cookie(sessionCookie); err == nil && cookie != "" {
		return cookie
	}
	id := uuid.NewString()
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
