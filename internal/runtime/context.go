// Package runtime provides the context type commands pass to actions.
package runtime

import (
	"io"

	"pullsafe.dev/pullsafe/internal/tui"
)

// Context provides access to output for commands
type Context struct {
	Splog *tui.Splog
}

// NewContext creates a new context writing to stdout
func NewContext() *Context {
	return &Context{
		Splog: tui.NewSplog(),
	}
}

// NewContextWithWriter creates a new context writing to w
func NewContextWithWriter(w io.Writer) *Context {
	return &Context{
		Splog: tui.NewSplogWithWriter(w),
	}
}
