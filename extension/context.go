// context.go defines the Context handed to extensions at initialisation.
//
// Design: Context is an interface so extensions can be tested with a fake
// service. Extensions receive it in Init, not at construction, because they
// register before the index path is known.

package extension

import (
	"github.com/jpl-au/juris/internal/config"
	"github.com/jpl-au/juris/internal/service"
)

// Context provides extensions controlled access to shared resources.
type Context interface {
	// Service returns the search service. The index behind it is opened on
	// first use.
	Service() service.Service

	// Config returns the loaded user configuration.
	Config() *config.Config
}

type extContext struct {
	svc service.Service
	cfg *config.Config
}

// NewContext creates a new extension context.
func NewContext(svc service.Service, cfg *config.Config) Context {
	return &extContext{svc: svc, cfg: cfg}
}

func (c *extContext) Service() service.Service { return c.svc }

func (c *extContext) Config() *config.Config { return c.cfg }
