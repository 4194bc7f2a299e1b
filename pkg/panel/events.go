package panel

// EventKind enumerates the diagnostics the session emits. There is no
// default output; callers opt in through WithObserver.
type EventKind string

const (
	// EventCommit fires after every committed edit, once the new tree has
	// been produced and before the change callback runs.
	EventCommit EventKind = "commit"
	// EventEditorOpened fires when a modal editing session begins.
	EventEditorOpened EventKind = "editorOpened"
	// EventEditorSaved fires when a modal save commits a parsed value.
	EventEditorSaved EventKind = "editorSaved"
	// EventEditorFallback fires when a modal save could not parse the text
	// and the raw string was stored instead.
	EventEditorFallback EventKind = "editorFallback"
	// EventEditorCanceled fires when a modal session closes without saving.
	EventEditorCanceled EventKind = "editorCanceled"
	// EventValidated fires after Submit runs the required-field validator.
	EventValidated EventKind = "validated"
	// EventExpandedToggled fires when the panel chrome is expanded or
	// collapsed.
	EventExpandedToggled EventKind = "expandedToggled"
)

// Event is one diagnostics entry. Path uses the dotted boundary form and is
// empty for node-level events.
type Event struct {
	Kind   EventKind
	Path   string
	Value  any
	Issues map[string]string
}

// Observer receives session diagnostics synchronously.
type Observer func(Event)
