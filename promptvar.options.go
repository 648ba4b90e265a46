package promptvar

import (
	"go.uber.org/zap"
)

// Option is a functional option for configuring the Engine.
type Option func(*engineConfig)

// engineConfig holds the internal configuration for an Engine.
type engineConfig struct {
	logger     *zap.Logger
	serializer Serializer
	storage    TemplateStorage
}

// defaultEngineConfig returns the default engine configuration.
func defaultEngineConfig() *engineConfig {
	return &engineConfig{
		logger:     nil,
		serializer: DefaultSerializer{},
		storage:    nil,
	}
}

// WithLogger sets the logger for the engine.
// Default: nil (no logging)
func WithLogger(logger *zap.Logger) Option {
	return func(c *engineConfig) {
		c.logger = logger
	}
}

// WithEngineSerializer sets the serializer used for templates the engine
// constructs. Default: DefaultSerializer
func WithEngineSerializer(s Serializer) Option {
	return func(c *engineConfig) {
		if s != nil {
			c.serializer = s
		}
	}
}

// WithStorage attaches a storage backend for Load and Store.
// Default: none
func WithStorage(storage TemplateStorage) Option {
	return func(c *engineConfig) {
		c.storage = storage
	}
}
