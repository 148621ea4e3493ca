package main

import (
	"context"
	"os"
	"strings"
	"sync"

	"github.com/JonMunkholm/vinyl/internal/config"
	"github.com/JonMunkholm/vinyl/internal/core"
	"github.com/JonMunkholm/vinyl/internal/logging"
	"github.com/JonMunkholm/vinyl/internal/render"
)

type globalFlags struct {
	source    string
	sheet     string
	coversDir string
	logLevel  string
}

type commandContext struct {
	flags *globalFlags

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(flags *globalFlags) *commandContext {
	return &commandContext{flags: flags}
}

// ensureConfig loads the environment configuration once and applies the
// flag overrides on top of it.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load()
		if err != nil {
			c.configErr = err
			return
		}
		if src := strings.TrimSpace(c.flags.source); src != "" {
			cfg.Catalog.Source = src
		}
		if c.flags.sheet != "" {
			cfg.Catalog.Sheet = c.flags.sheet
		}
		if c.flags.coversDir != "" {
			cfg.Covers.Dir = c.flags.coversDir
		}
		logging.SetupWriter(os.Stderr, c.flags.logLevel, cfg.Logging.Format)
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) loadCollection(ctx context.Context) (*core.Collection, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	coll, err := core.Load(ctx, cfg.Catalog.Source, core.LoadOptions{Sheet: cfg.Catalog.Sheet})
	if err != nil {
		return nil, &userError{err: err}
	}
	return coll, nil
}

// covers resolves references against the covers directory, or the remote
// store when one is configured.
func (c *commandContext) covers() render.CoverResolver {
	cfg, _ := c.ensureConfig()
	if cfg == nil {
		return render.CoverResolver{}
	}
	return render.CoverResolver{
		BaseURL:        cfg.Covers.BaseURL,
		LocalBase:      cfg.Covers.Dir,
		Dir:            cfg.Covers.Dir,
		Ext:            cfg.Covers.Ext,
		Fallbacks:      cfg.Covers.FallbackExts,
		FoldDiacritics: cfg.Covers.FoldDiacritics,
	}
}

// userError prints the catalogue message for err followed by its cause.
type userError struct {
	err error
}

func (e *userError) Error() string {
	return core.FormatUserError(e.err) + "\n  cause: " + core.Cause(e.err)
}

func (e *userError) Unwrap() error { return e.err }
