package language

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"
)

//go:embed queries/*/highlights.scm
var queries embed.FS

var (
	// ErrUnknownLanguage is returned when a configuration is requested for a
	// language this package does not define.
	ErrUnknownLanguage = errors.New("unknown language")

	// ErrQueryNotAvailable is returned when a language's grammar is present
	// but no highlight query is bundled for it. Callers should treat the
	// file as plain text.
	ErrQueryNotAvailable = errors.New("no highlight query for language")
)

// Configuration holds the compiled grammar handle and highlight query for one
// language. It is created once on first use, cached for the process lifetime,
// and never mutated afterwards.
type Configuration struct {
	Language Language
	Grammar  *tree_sitter.Language
	Query    *tree_sitter.Query

	captureNames []string
}

// TokenName returns the semantic token name for a query capture index.
func (c *Configuration) TokenName(index uint) string {
	if int(index) >= len(c.captureNames) {
		return ""
	}
	return c.captureNames[index]
}

// Registry compiles and caches one [Configuration] per language.
//
// Lookups are guarded by a mutex so that background pre-warming may race
// with on-demand loads: when two loads of the same language finish, the
// first stored configuration wins and the duplicate is discarded.
type Registry struct {
	logger *slog.Logger

	mu      sync.Mutex
	configs map[Language]*Configuration
	logged  map[Language]bool
}

// RegistryOption configures a [Registry].
type RegistryOption func(*Registry)

// WithLogger sets the logger used for pre-warm and load failures.
func WithLogger(logger *slog.Logger) RegistryOption {
	return func(r *Registry) {
		r.logger = logger
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger:  slog.Default(),
		configs: make(map[Language]*Configuration),
		logged:  make(map[Language]bool),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Configuration returns the cached configuration for lang, compiling and
// storing it on first use. A missing or malformed query asset fails the call;
// the failure is not cached, so a later call retries.
func (r *Registry) Configuration(lang Language) (*Configuration, error) {
	r.mu.Lock()
	cfg, ok := r.configs[lang]
	r.mu.Unlock()
	if ok {
		return cfg, nil
	}

	cfg, err := compile(lang)
	if err != nil {
		r.logFailure(lang, err)
		return nil, err
	}

	// Insert-if-absent: a concurrent load may have won the race.
	r.mu.Lock()
	if existing, ok := r.configs[lang]; ok {
		r.mu.Unlock()
		cfg.Query.Close()
		return existing, nil
	}
	r.configs[lang] = cfg
	r.mu.Unlock()
	return cfg, nil
}

// PreloadAll eagerly warms every known language's configuration. It is purely
// a latency optimization: failures are logged and swallowed since each
// language is retried lazily on first real use. Safe to run off the caller's
// context, typically as `go registry.PreloadAll(ctx)`.
func (r *Registry) PreloadAll(ctx context.Context) {
	for _, lang := range All() {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if _, err := r.Configuration(lang); err != nil {
			continue
		}
	}
}

// logFailure logs one compile failure per language per process, so a hot
// retry path cannot flood the log.
func (r *Registry) logFailure(lang Language, err error) {
	r.mu.Lock()
	seen := r.logged[lang]
	r.logged[lang] = true
	r.mu.Unlock()
	if !seen {
		r.logger.Warn("failed to load highlight configuration",
			"language", lang.String(), "error", err)
	}
}

func compile(lang Language) (*Configuration, error) {
	def, ok := definitions[lang]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, string(lang))
	}

	source, err := queries.ReadFile("queries/" + string(lang) + "/highlights.scm")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrQueryNotAvailable, lang)
	}

	grammar := def.grammar()
	query, queryErr := tree_sitter.NewQuery(grammar, string(source))
	if queryErr != nil {
		return nil, fmt.Errorf("compiling highlight query for %s: %w", lang, queryErr)
	}

	return &Configuration{
		Language:     lang,
		Grammar:      grammar,
		Query:        query,
		captureNames: query.CaptureNames(),
	}, nil
}
