// Package render defines the pluggable renderer contract over a panel
// session and a small registry for wiring renderers by name.
package render

import (
	"context"

	"github.com/goliatone/go-nodepanel/pkg/panel"
)

// Renderer serialises or drives a panel session. Read-only renderers snapshot
// the session through RenderNode; interactive ones may apply edits through
// the session's operations before producing output.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, session *panel.Session, options Options) ([]byte, error)
}

// Options carries per-render knobs shared across renderers.
type Options struct {
	// Validate runs Submit before rendering so inline messages appear in
	// the output.
	Validate bool
}
