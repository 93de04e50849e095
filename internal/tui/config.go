// Package tui implements the interactive registration dashboard.
package tui

import (
	"context"
	"fmt"

	"github.com/pranavpatil70/Registeration-hub-admin/internal/service"
	"github.com/pranavpatil70/Registeration-hub-admin/internal/tui/themes"
)

// Config carries everything the dashboard needs to run.
type Config struct {
	Ctx      context.Context
	Store    service.Store
	Theme    themes.Theme
	PageSize int
}

func (c *Config) validate() error {
	if c.Store == nil {
		return fmt.Errorf("store is required")
	}
	if c.Ctx == nil {
		c.Ctx = context.Background()
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	return nil
}
