package server

import (
	"log"
	"net/http"

	"polls/internal/web"

	"github.com/a-h/templ"
	"github.com/gin-gonic/gin"
)

func render(c *gin.Context, status int, component templ.Component) {
	templ.Handler(component, templ.WithStatus(status)).ServeHTTP(c.Writer, c.Request)
}

func renderNotFound(c *gin.Context) {
	render(c, http.StatusNotFound, web.NotFound())
}

func renderServerError(c *gin.Context, action string, err error) {
	log.Printf("%s failed path=%s err=%v", action, c.Request.URL.Path, err)
	render(c, http.StatusInternalServerError, web.ServerError())
}
