package highlight

import (
	"log/slog"

	"github.com/repoview/highlight/internal/lru"
	"github.com/repoview/highlight/language"
	"github.com/repoview/highlight/theme"
)

// DefaultCapacity is the default bound on the cache of released sessions.
const DefaultCapacity = 10

// Option configures a [SessionManager].
type Option func(*SessionManager)

// WithCapacity bounds the released-session cache. Values below one are
// clamped to one.
func WithCapacity(capacity int) Option {
	return func(m *SessionManager) {
		m.capacity = capacity
	}
}

// WithLogger sets the manager's logger. Defaults to [slog.Default].
func WithLogger(logger *slog.Logger) Option {
	return func(m *SessionManager) {
		m.logger = logger
	}
}

// WithTheme sets the theme sessions resolve token styles against.
func WithTheme(t *theme.Theme) Option {
	return func(m *SessionManager) {
		m.theme = t
	}
}

// WithScheduler sets the function that runs asynchronous highlight passes.
// The default runs each pass on its own goroutine; hosts with a UI loop
// should pin passes to it here.
func WithScheduler(schedule func(func())) Option {
	return func(m *SessionManager) {
		m.schedule = schedule
	}
}

// SessionManager creates, tracks, and recycles highlighting sessions. It
// enforces one session per file and keeps a bounded cache of released
// sessions so reopening a recently closed file skips recompilation and
// reparsing.
//
// All public methods must be called from a single goroutine, typically the
// host's UI loop. The underlying parser is not safe for concurrent mutation,
// so the contract is confinement rather than locking. The only work that may
// run elsewhere is registry pre-warming and the scheduled highlight passes,
// both of which are safe against that contract.
type SessionManager struct {
	registry *language.Registry
	pool     *ClientPool
	theme    *theme.Theme
	logger   *slog.Logger
	schedule func(func())
	capacity int

	active   map[string]*Session
	released *lru.Cache[string, *Session]
}

// NewSessionManager creates a manager backed by the given registry.
func NewSessionManager(registry *language.Registry, opts ...Option) *SessionManager {
	m := &SessionManager{
		registry: registry,
		theme:    theme.Default(),
		logger:   slog.Default(),
		capacity: DefaultCapacity,
		active:   make(map[string]*Session),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.schedule == nil {
		m.schedule = func(fn func()) { go fn() }
	}
	m.pool = NewClientPool(registry)
	m.released = lru.New(m.capacity, func(file string, s *Session) {
		m.logger.Debug("evicting released session", "file", file)
		s.discard()
	})
	return m
}

// CreateSession returns a session highlighting content of the given language
// into target.
//
// Reopening a recently released file promotes the cached session back to
// active as-is, skipping all recompilation and reparse work. Otherwise the
// pool and registry are resolved, the content is parsed in full on the
// language's shared client, and an initial highlight pass is scheduled.
// Failures are wrapped in a [*SessionError]; callers should fall back to
// plain-text rendering.
func (m *SessionManager) CreateSession(target RenderTarget, file string, lang language.Language, content []byte) (*Session, error) {
	if s, ok := m.active[file]; ok {
		m.logger.Warn("session already active", "file", file)
		return s, nil
	}

	if s, ok := m.released.Remove(file); ok {
		s.reactivate(target)
		m.active[file] = s
		m.logger.Debug("reactivated cached session", "file", file)
		s.Invalidate()
		return s, nil
	}

	client, err := m.pool.ClientFor(lang)
	if err != nil {
		return nil, &SessionError{File: file, Err: err}
	}
	cfg, err := m.registry.Configuration(lang)
	if err != nil {
		return nil, &SessionError{File: file, Err: err}
	}

	s := &Session{
		file:     file,
		lang:     lang,
		client:   client,
		config:   cfg,
		theme:    m.theme,
		schedule: m.schedule,
		state:    SessionCreated,
		target:   target,
	}
	s.setContent(content)
	s.reactivate(nil)
	m.active[file] = s
	s.Invalidate()
	return s, nil
}

// UpdateContent forwards new content to file's active session and schedules
// a re-highlight. An update for a file without an active session is dropped
// with a warning; the file may have just been closed in a race and the
// mismatch is not fatal.
func (m *SessionManager) UpdateContent(file string, newContent []byte, previousLength uint) {
	s, ok := m.active[file]
	if !ok {
		m.logger.Warn("content update for file without active session", "file", file)
		return
	}
	s.UpdateContent(newContent, previousLength)
	s.Invalidate()
}

// ReleaseSession moves file's session from the active set to the released
// cache. When the cache is over capacity the oldest released session is
// evicted and its resources dropped; the shared parser client stays in the
// pool. Releasing a file without an active session is a no-op.
func (m *SessionManager) ReleaseSession(file string) {
	s, ok := m.active[file]
	if !ok {
		return
	}
	delete(m.active, file)
	s.release()
	m.released.Add(file, s)
}

// ClearAllCaches empties the active set, the released cache, and the client
// pool together. Sessions are discarded first, so any reference a view still
// holds goes inert instead of dangling.
func (m *SessionManager) ClearAllCaches() {
	for file, s := range m.active {
		s.discard()
		delete(m.active, file)
	}
	m.released.Purge()
	m.pool.ClearAll()
}

// Stats reports cache occupancy for the host's debug surfaces.
type Stats struct {
	Active   int
	Released int
	Clients  int
}

// Stats returns current cache occupancy.
func (m *SessionManager) Stats() Stats {
	return Stats{
		Active:   len(m.active),
		Released: m.released.Len(),
		Clients:  m.pool.Len(),
	}
}
