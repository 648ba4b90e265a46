package promptvar

import (
	"context"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Engine is a registry of named templates with optional persistent storage.
// It is safe for concurrent use.
type Engine struct {
	templates map[string]*Template
	tmplMu    sync.RWMutex
	config    *engineConfig
	logger    *zap.Logger
}

// NewEngine creates a new Engine with the given options.
func NewEngine(opts ...Option) (*Engine, error) {
	config := defaultEngineConfig()
	for _, opt := range opts {
		opt(config)
	}

	logger := config.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	engine := &Engine{
		templates: make(map[string]*Template),
		config:    config,
		logger:    logger,
	}

	logger.Debug(LogMsgEngineCreated)
	return engine, nil
}

// MustNewEngine creates a new Engine and panics if there's an error.
func MustNewEngine(opts ...Option) *Engine {
	engine, err := NewEngine(opts...)
	if err != nil {
		panic(err)
	}
	return engine
}

// RegisterTemplate parses source and registers it under name.
// Returns an error if the name is empty, the source is malformed, or a
// template with the same name already exists.
func (e *Engine) RegisterTemplate(name string, source string) error {
	if name == "" {
		return NewEmptyTemplateNameError()
	}

	tmpl, err := New(source, WithName(name), WithSerializer(e.config.serializer))
	if err != nil {
		return err
	}

	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		return NewTemplateExistsError(name)
	}

	e.templates[name] = tmpl
	e.logger.Debug(LogMsgTemplateRegistered,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldPlaceholders, len(tmpl.placeholders)))
	return nil
}

// MustRegisterTemplate registers a template and panics on error.
func (e *Engine) MustRegisterTemplate(name string, source string) {
	if err := e.RegisterTemplate(name, source); err != nil {
		panic(err)
	}
}

// GetTemplate retrieves a registered template by name.
func (e *Engine) GetTemplate(name string) (*Template, bool) {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	tmpl, ok := e.templates[name]
	return tmpl, ok
}

// HasTemplate checks if a template is registered with the given name.
func (e *Engine) HasTemplate(name string) bool {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	_, ok := e.templates[name]
	return ok
}

// UnregisterTemplate removes a registered template by name.
// Returns true if the template existed and was removed.
func (e *Engine) UnregisterTemplate(name string) bool {
	e.tmplMu.Lock()
	defer e.tmplMu.Unlock()

	if _, exists := e.templates[name]; exists {
		delete(e.templates, name)
		e.logger.Debug(LogMsgTemplateUnregistered, zap.String(LogFieldTemplateName, name))
		return true
	}
	return false
}

// ListTemplates returns all registered template names in sorted order.
func (e *Engine) ListTemplates() []string {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	names := make([]string, 0, len(e.templates))
	for name := range e.templates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// TemplateCount returns the number of registered templates.
func (e *Engine) TemplateCount() int {
	e.tmplMu.RLock()
	defer e.tmplMu.RUnlock()

	return len(e.templates)
}

// Render looks up a registered template and renders it to a string with the
// given values merged over the template's defaults.
func (e *Engine) Render(ctx context.Context, name string, values map[string]any) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	tmpl, ok := e.GetTemplate(name)
	if !ok {
		return "", NewTemplateNotFoundError(name)
	}

	out, err := tmpl.ToString(values)
	if err != nil {
		return "", err
	}

	e.logger.Debug(LogMsgTemplateRendered, zap.String(LogFieldTemplateName, name))
	return out, nil
}

// Load fetches the latest version of a template from the storage backend,
// parses it, applies its stored defaults, and registers it (replacing any
// template already registered under the same name).
func (e *Engine) Load(ctx context.Context, name string) (*Template, error) {
	if e.config.storage == nil {
		return nil, NewNoStorageError()
	}

	stored, err := e.config.storage.Get(ctx, name)
	if err != nil {
		return nil, err
	}

	tmpl, err := New(stored.Source, WithName(stored.Name), WithSerializer(e.config.serializer))
	if err != nil {
		return nil, err
	}
	if len(stored.Defaults) > 0 {
		tmpl.SetDefault(stored.Defaults)
	}

	e.tmplMu.Lock()
	e.templates[name] = tmpl
	e.tmplMu.Unlock()

	e.logger.Debug(LogMsgTemplateLoaded,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldVersion, stored.Version))
	return tmpl, nil
}

// Store persists a registered template to the storage backend. A new version
// is created if the template already exists in storage.
func (e *Engine) Store(ctx context.Context, name string) (*StoredTemplate, error) {
	if e.config.storage == nil {
		return nil, NewNoStorageError()
	}

	tmpl, ok := e.GetTemplate(name)
	if !ok {
		return nil, NewTemplateNotFoundError(name)
	}

	stored := &StoredTemplate{
		Name:     name,
		Source:   tmpl.Source(),
		Defaults: tmpl.Defaults(),
	}
	if err := e.config.storage.Save(ctx, stored); err != nil {
		return nil, err
	}

	e.logger.Debug(LogMsgTemplateStored,
		zap.String(LogFieldTemplateName, name),
		zap.Int(LogFieldVersion, stored.Version))
	return stored, nil
}
