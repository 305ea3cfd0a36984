package highlight

import "github.com/charmbracelet/lipgloss"

// StyledSpan assigns a display style to a byte range of the source.
type StyledSpan struct {
	Start uint
	End   uint
	Style lipgloss.Style
}

// RenderTarget is the host view a session paints into. Implementations
// receive batches of styled spans and report the visible viewport so
// re-highlighting can serve it first.
//
// ApplyStyles may be called from the scheduler goroutine; implementations
// that mutate UI state are responsible for hopping to their own context.
type RenderTarget interface {
	// ApplyStyles replaces the styling for the ranges covered by spans.
	// Spans arrive in document order and may be delivered in more than one
	// batch per highlight pass, visible ranges first.
	ApplyStyles(spans []StyledSpan)

	// VisibleRange reports the byte range currently on screen. Returning
	// (0, 0) means the viewport is unknown and the whole document is
	// highlighted in one pass.
	VisibleRange() (start, end uint)
}
