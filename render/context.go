// Package render defines the drawing context sprites draw through, with
// two implementations: a tcell-backed terminal surface and a call
// recorder for tests.
//
// The context model is a transform stack. Save pushes the current
// transform and fill style, Restore pops; Translate and Rotate compose
// onto the current transform; FillRect draws in the transformed frame.
package render

// Context is the drawing collaborator. Implementations are not safe for
// concurrent use; the frame loop goroutine owns them.
type Context interface {
	// Save pushes the current transform and fill style
	Save()
	// Restore pops to the last saved state; a no-op on an empty stack
	Restore()
	// Translate composes a translation onto the current transform
	Translate(x, y float64)
	// Rotate composes a counterclockwise rotation, in radians
	Rotate(rad float64)
	// SetFill sets the fill style, a color name or #rrggbb string
	SetFill(color string)
	// FillRect fills a w by h rect with origin x,y in the current frame
	FillRect(x, y, w, h float64)
	// Size reports the drawable surface size in world units
	Size() (w, h float64)
}

var defaultContext Context

// SetDefault installs the context sprites fall back to when they carry
// none of their own. Pass nil to clear it.
func SetDefault(ctx Context) {
	defaultContext = ctx
}

// Default returns the fallback context, nil if none was installed
func Default() Context {
	return defaultContext
}
