package roseredis

import (
	"context"
	"sort"
	"sync"
)

// Registry maps operation names to the OpFuncs that build them. It is safe for concurrent
// use.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]OpFunc
}

func NewRegistry() *Registry {
	return &Registry{ops: map[string]OpFunc{}}
}

// Register adds fn under name, replacing any earlier registration.
func (r *Registry) Register(name string, fn OpFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[name] = fn
}

func (r *Registry) Lookup(name string) (OpFunc, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.ops[name]
	return fn, ok
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) clone() *Registry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c := NewRegistry()
	for name, fn := range r.ops {
		c.ops[name] = fn
	}
	return c
}

// Client holds an executor and the operations registered for it. Every Multi call starts
// a new Pipeline over the same executor.
type Client struct {
	exec Executor
	lgr  Logger
	ops  *Registry
}

type ClientOption func(*Client)

// WithLogger sets the Logger handed to every pipeline. The default is DefaultLogger; pass
// nil to disable logging.
func WithLogger(lgr Logger) ClientOption {
	return func(c *Client) {
		c.lgr = lgr
	}
}

func NewClient(exec Executor, opts ...ClientOption) *Client {
	c := &Client{
		exec: exec,
		lgr:  DefaultLogger{},
		ops:  NewRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Register(name string, fn OpFunc) *Client {
	c.ops.Register(name, fn)
	return c
}

func (c *Client) RegisterAll(ops map[string]OpFunc) *Client {
	for name, fn := range ops {
		c.ops.Register(name, fn)
	}
	return c
}

func (c *Client) Registry() *Registry {
	return c.ops
}

// Derive returns a client over the same executor that starts with every operation
// registered on c so far. Later registrations on either client do not affect the other.
func (c *Client) Derive() *Client {
	return &Client{
		exec: c.exec,
		lgr:  c.lgr,
		ops:  c.ops.clone(),
	}
}

func (c *Client) Multi() *Pipeline {
	p := NewPipeline(c.exec, c.lgr)
	p.ops = c.ops
	return p
}

// Do runs the single operation registered under name as its own batch.
func (c *Client) Do(ctx context.Context, name string, args ...any) (*Map, error) {
	return c.Multi().Call(name, args...).Exec(ctx)
}
