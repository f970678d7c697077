package app

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/deploymenttheory/go-apfs-format/internal/config"
	fso "github.com/deploymenttheory/go-apfs-format/internal/parsers/file_system_objects"
)

// Context holds application-wide configuration and state
type Context struct {
	context.Context

	Config *config.Config
	Logger *logrus.Logger

	// Output preferences
	OutputFormat string
	Verbose      bool
	Quiet        bool
}

// NewContext creates a new application context from cfg.
// Log output goes to stderr.
func NewContext(cfg *config.Config) *Context {
	return NewContextWithLogOutput(cfg, os.Stderr)
}

// NewContextWithLogOutput is NewContext with log output sent to w
func NewContextWithLogOutput(cfg *config.Config, w io.Writer) *Context {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(cfg.Level())

	return &Context{
		Context:      context.Background(),
		Config:       cfg,
		Logger:       logger,
		OutputFormat: cfg.OutputFormat,
	}
}

// SetVerbosity adjusts the log level for --verbose and --quiet.
// Quiet wins when both are set.
func (c *Context) SetVerbosity(verbose, quiet bool) {
	c.Verbose = verbose
	c.Quiet = quiet
	switch {
	case quiet:
		c.Logger.SetLevel(logrus.ErrorLevel)
	case verbose:
		c.Logger.SetLevel(logrus.DebugLevel)
	}
}

// InodeFlagValidator builds a validator with the configured reader policy
func (c *Context) InodeFlagValidator() *fso.InodeFlagValidator {
	return fso.NewInodeFlagValidator(fso.InodeFlagValidatorOptions{
		Lenient:               !c.Config.StrictFlags,
		EnforcePinExclusivity: c.Config.EnforcePinExclusivity,
	}, c.Logger)
}

// Log outputs a message based on verbosity settings
func (c *Context) Log(message string) {
	c.Logger.Debug(message)
}

// Error outputs an error message unless quiet
func (c *Context) Error(message string) {
	c.Logger.Error(message)
}
