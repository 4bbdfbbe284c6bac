// Package container wires the logging sink, the facade and the command
// line's own diagnostic logger from a Config.
package container

import (
	"fmt"
	"io"

	"alshakib/logcompat/internal/config"
	"alshakib/logcompat/internal/facade"
	"alshakib/logcompat/internal/logging"

	"github.com/sirupsen/logrus"
)

// Container holds the application dependencies. It is immutable after
// creation; use the getters to reach its parts.
type Container struct {
	config *config.Config
	sink   *logging.LogrusAdapter
	facade *facade.Facade
	logger *logrus.Logger
}

// NewContainer creates and wires all application dependencies.
//
// Parameters:
//   - cfg: Application configuration
//   - stdout, stderr: Streams the configured log.output selects from
//
// Returns:
//   - *Container: Fully wired container
//   - error: When cfg is nil
func NewContainer(cfg *config.Config, stdout, stderr io.Writer) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	out := cfg.Writer(stdout, stderr)

	sink := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format, out)
	f := facade.New(sink, facade.WithDefaultTag(cfg.Log.DefaultTag))

	return &Container{
		config: cfg,
		sink:   sink,
		facade: f,
		logger: config.ConfigureLoggingFromConfig(cfg, stderr),
	}, nil
}

// GetConfig returns the application configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetSink returns the logrus-backed sink.
func (c *Container) GetSink() *logging.LogrusAdapter {
	return c.sink
}

// GetFacade returns the logging facade.
func (c *Container) GetFacade() *facade.Facade {
	return c.facade
}

// GetLogger returns the logger for the command line's own diagnostics.
func (c *Container) GetLogger() *logrus.Logger {
	return c.logger
}
