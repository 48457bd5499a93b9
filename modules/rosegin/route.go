// Package rosegin serves roseredis pipelines as gin handlers.
package rosegin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/isaymatato/roseredis"
)

// BuildFunc queues the commands for one request.
type BuildFunc func(c *gin.Context, p *roseredis.Pipeline) error

type Route struct {
	HttpMethod   string
	RelativePath string
	Client       *roseredis.Client
	Build        BuildFunc
}

func AddRoute(engine *gin.Engine, route *Route) {
	engine.Handle(route.HttpMethod, route.RelativePath, route.Handler())
}

func (r *Route) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		r.Run(c)
	}
}

// Run builds a pipeline for the request, executes it and responds with the merged result
// as JSON.
func (r *Route) Run(c *gin.Context) {

	p := r.Client.Multi()
	if err := r.Build(c, p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := p.Exec(c.Request.Context())
	if err != nil {
		c.JSON(StatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, res)
}

// StatusCode maps a pipeline error to the HTTP status returned for it.
func StatusCode(err error) int {

	var unknown roseredis.UnknownOperationError
	if errors.As(err, &unknown) {
		return http.StatusNotFound
	}

	var execErr roseredis.ExecutorError
	if errors.As(err, &execErr) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
