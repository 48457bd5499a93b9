package rosegin

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/isaymatato/roseredis"
)

// Arg reads one operation argument from the request.
type Arg func(c *gin.Context) (any, error)

func URLParam(key string) Arg {
	return func(c *gin.Context) (any, error) {
		return c.Param(key), nil
	}
}

// QueryParam reads a query value. A missing value is an error.
func QueryParam(key string) Arg {
	return func(c *gin.Context) (any, error) {
		v, ok := c.GetQuery(key)
		if !ok {
			return nil, errors.New("missing query parameter " + key)
		}
		return v, nil
	}
}

// Bind decodes the JSON body into a fresh value from newObj.
func Bind(newObj func() any) Arg {
	return func(c *gin.Context) (any, error) {
		obj := newObj()
		if err := c.ShouldBindJSON(obj); err != nil {
			return nil, errors.New("invalid request: " + err.Error())
		}
		return obj, nil
	}
}

func Value(v any) Arg {
	return func(c *gin.Context) (any, error) {
		return v, nil
	}
}

// Call queues the operation registered under name with args read from the request.
func Call(name string, args ...Arg) BuildFunc {
	return func(c *gin.Context, p *roseredis.Pipeline) error {

		vals := make([]any, len(args))
		for i, arg := range args {
			v, err := arg(c)
			if err != nil {
				return err
			}
			vals[i] = v
		}

		p.Call(name, vals...)
		return nil
	}
}

// All runs builds in order and stops at the first error.
func All(builds ...BuildFunc) BuildFunc {
	return func(c *gin.Context, p *roseredis.Pipeline) error {
		for _, b := range builds {
			if err := b(c, p); err != nil {
				return err
			}
		}
		return nil
	}
}
