package highlight

import (
	"bytes"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/repoview/highlight/language"
	"github.com/repoview/highlight/theme"
)

// SessionState describes a session's position in its lifecycle.
// Sessions move Created → Active → Released. A released session is either
// discarded on eviction or reactivated on reopen; reactivation restores the
// Active state on the same object so the file keeps its parse state.
type SessionState int32

const (
	SessionCreated SessionState = iota
	SessionActive
	SessionReleased
)

// Session binds one open file to its language's shared parser client, the
// compiled highlight query, and a render target. Sessions are created and
// driven through a [SessionManager].
//
// The mutex guards the fields touched by asynchronous highlight passes; a
// pass scheduled before release completes harmlessly because it re-checks
// the state before touching the tree.
type Session struct {
	file     string
	lang     language.Language
	client   *Client // pool-owned, shared with other files of the same language
	config   *language.Configuration
	theme    *theme.Theme
	schedule func(func())

	mu     sync.Mutex
	state  SessionState
	target RenderTarget
	tree   *tree_sitter.Tree
	source []byte
	queued bool
}

// File returns the file this session highlights.
func (s *Session) File() string { return s.file }

// Language returns the session's language.
func (s *Session) Language() language.Language { return s.lang }

// State returns the session's lifecycle state.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// setContent pushes full content into the shared client, replacing any prior
// parse state with a fresh full parse of this file.
func (s *Session) setContent(content []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree := s.client.Parse(content, nil)
	if s.tree != nil {
		s.tree.Close()
	}
	s.tree = tree
	s.source = content
}

// UpdateContent replaces the session's content with newContent.
// previousLength is the byte length of the content the caller last pushed;
// the whole document is marked edited, which still lets the parser reuse
// structure shared with the previous tree. Updates for a single file must be
// issued in order. A non-active session ignores the update.
func (s *Session) UpdateContent(newContent []byte, previousLength uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != SessionActive {
		return
	}

	if s.tree != nil {
		old := s.source
		if uint(len(old)) > previousLength {
			old = old[:previousLength]
		}
		s.tree.Edit(&tree_sitter.InputEdit{
			StartByte:      0,
			OldEndByte:     previousLength,
			NewEndByte:     uint(len(newContent)),
			StartPosition:  tree_sitter.Point{Row: 0, Column: 0},
			OldEndPosition: endPoint(old),
			NewEndPosition: endPoint(newContent),
		})
	}

	tree := s.client.Parse(newContent, s.tree)
	if tree == nil {
		// Client was cleared out from under us; keep the old state inert.
		return
	}
	if s.tree != nil {
		s.tree.Close()
	}
	s.tree = tree
	s.source = newContent
}

// Invalidate marks the whole content as needing re-highlight and schedules a
// pass. It is idempotent, never blocks, and is legal in any state; passes
// already queued are coalesced.
func (s *Session) Invalidate() {
	s.mu.Lock()
	if s.state != SessionActive || s.queued {
		s.mu.Unlock()
		return
	}
	s.queued = true
	s.mu.Unlock()
	s.schedule(s.Refresh)
}

// VisibleContentDidChange hints that the viewport moved. The next highlight
// pass re-reads the target's visible range, so this simply schedules one.
// Dropping the hint only delays visible-range freshness.
func (s *Session) VisibleContentDidChange() {
	s.Invalidate()
}

// Refresh runs one highlight pass synchronously: visible range first, then
// the whole document. [Session.Invalidate] schedules this on the manager's
// scheduler; tests and one-shot tools may call it directly. A pass on a
// non-active session is a no-op.
func (s *Session) Refresh() {
	s.mu.Lock()
	s.queued = false
	if s.state != SessionActive || s.tree == nil {
		s.mu.Unlock()
		return
	}
	target := s.target

	var batches [][]StyledSpan
	visStart, visEnd := target.VisibleRange()
	if visEnd > visStart {
		if spans := s.collectSpans(visStart, visEnd); len(spans) > 0 {
			batches = append(batches, spans)
		}
	}
	batches = append(batches, s.collectSpans(0, 0))
	s.mu.Unlock()

	// Emit outside the lock so a target may call back into the session.
	for _, spans := range batches {
		target.ApplyStyles(spans)
	}
}

// collectSpans resolves every token in the byte range to a styled span.
// Callers must hold s.mu.
func (s *Session) collectSpans(start, end uint) []StyledSpan {
	var spans []StyledSpan
	for tok := range tokens(s.config, s.tree, s.source, start, end) {
		spans = append(spans, StyledSpan{
			Start: tok.Range.StartByte,
			End:   tok.Range.EndByte,
			Style: s.theme.Style(tok.Name),
		})
	}
	return spans
}

// release parks the session. Parse state is kept so a reopen is cheap.
func (s *Session) release() {
	s.mu.Lock()
	s.state = SessionReleased
	s.mu.Unlock()
}

// reactivate restores a released session for a new render target.
func (s *Session) reactivate(target RenderTarget) {
	s.mu.Lock()
	s.state = SessionActive
	if target != nil {
		s.target = target
	}
	s.mu.Unlock()
}

// discard releases the resources the session exclusively owns. The shared
// client is pool-owned and untouched. After discard the session is inert:
// every method is a no-op.
func (s *Session) discard() {
	s.mu.Lock()
	s.state = SessionReleased
	if s.tree != nil {
		s.tree.Close()
		s.tree = nil
	}
	s.source = nil
	s.mu.Unlock()
}

// endPoint returns the row/column position of the end of text.
func endPoint(text []byte) tree_sitter.Point {
	rows := uint(bytes.Count(text, []byte("\n")))
	lastLine := text
	if i := bytes.LastIndexByte(text, '\n'); i != -1 {
		lastLine = text[i+1:]
	}
	return tree_sitter.Point{Row: rows, Column: uint(len(lastLine))}
}
