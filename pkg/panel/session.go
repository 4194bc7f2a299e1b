package panel

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goliatone/go-nodepanel/pkg/graph"
	"github.com/goliatone/go-nodepanel/pkg/schema"
	"github.com/goliatone/go-nodepanel/pkg/validation"
	"github.com/goliatone/go-nodepanel/pkg/values"
)

// ErrEditorOpen is returned when a second modal session is requested while
// one is already staged. At most one editor may be open per node.
var ErrEditorOpen = errors.New("panel: editor already open")

// ErrNoEditor is returned by save/cancel when no modal session is staged.
var ErrNoEditor = errors.New("panel: no editor open")

// ChangeFunc receives the complete new value tree after every committed
// edit. Calls are synchronous and never batched; the receiver is the durable
// owner of the canonical copy.
type ChangeFunc func(map[string]any)

// Config carries the per-node data the surrounding editor owns and passes in
// read-only. The session copies nothing: schemas and connections are treated
// as immutable for the session's lifetime.
type Config struct {
	NodeID       string
	InputSchema  schema.Schema
	OutputSchema schema.Schema
	Values       map[string]any
	Connections  []graph.Connection
	Status       string
	Output       any
	Expanded     bool
	OnChange     ChangeFunc
}

// Session owns one node's transient panel state: the working value tree,
// validation messages, the staged modal editor and the results latch. All
// operations are synchronous; re-rendering never mutates state.
type Session struct {
	nodeID       string
	inputSchema  schema.Schema
	outputSchema schema.Schema
	tree         map[string]any
	connections  []graph.Connection
	status       string
	output       any
	resultsSeen  bool
	expanded     bool

	messages map[string]string
	editor   *editorState

	onChange ChangeFunc
	observer Observer
	labeler  func(string) string
}

type editorState struct {
	path  schema.Path
	draft string
}

// NewSession builds a session for one node.
func NewSession(cfg Config, options ...Option) (*Session, error) {
	if strings.TrimSpace(cfg.NodeID) == "" {
		return nil, errors.New("panel: node id is required")
	}

	s := &Session{
		nodeID:       cfg.NodeID,
		inputSchema:  cfg.InputSchema,
		outputSchema: cfg.OutputSchema,
		tree:         cfg.Values,
		connections:  cfg.Connections,
		expanded:     cfg.Expanded,
		onChange:     cfg.OnChange,
		labeler:      defaultLabeler,
	}
	if s.tree == nil {
		s.tree = map[string]any{}
	}
	s.UpdateResults(cfg.Status, cfg.Output)

	for _, opt := range options {
		if opt != nil {
			opt(s)
		}
	}
	return s, nil
}

// NodeID returns the identifier of the node this session edits.
func (s *Session) NodeID() string { return s.nodeID }

// Values returns the current tree. Callers must treat it as immutable; new
// trees replace it wholesale on every commit.
func (s *Session) Values() map[string]any { return s.tree }

// Messages returns the validation messages recorded by the last Submit,
// keyed by dotted path.
func (s *Session) Messages() map[string]string { return s.messages }

// Expanded reports the panel's expanded/collapsed chrome state.
func (s *Session) Expanded() bool { return s.expanded }

// ToggleExpanded flips the chrome state and returns the new value.
func (s *Session) ToggleExpanded() bool {
	s.expanded = !s.expanded
	s.emit(Event{Kind: EventExpandedToggled, Value: s.expanded})
	return s.expanded
}

// UpdateResults records the node's latest status and output payload. Once
// either has ever been present the results summary stays visible for the
// rest of the session, even if both later become absent.
func (s *Session) UpdateResults(status string, output any) {
	s.status = status
	s.output = output
	if status != "" || output != nil {
		s.resultsSeen = true
	}
}

// SetField commits an arbitrary value at path.
func (s *Session) SetField(path schema.Path, value any) {
	s.commit(path, value)
}

// SetText commits free text at path.
func (s *Session) SetText(path schema.Path, text string) {
	s.commit(path, text)
}

// SetNumber parses raw according to the numeric kind and commits the result.
// Non-numeric input commits NaN rather than being rejected; the value tree
// keeps whatever the user typed their way into.
func (s *Session) SetNumber(path schema.Path, raw string, kind schema.Kind) {
	trimmed := strings.TrimSpace(raw)
	if kind == schema.KindInteger {
		if parsed, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
			s.commit(path, parsed)
			return
		}
	} else if parsed, err := strconv.ParseFloat(trimmed, 64); err == nil {
		s.commit(path, parsed)
		return
	}
	s.commit(path, math.NaN())
}

// SetBool commits a tri-state boolean choice. The empty choice stores the
// unset sentinel, never false.
func (s *Session) SetBool(path schema.Path, choice string) error {
	switch choice {
	case "":
		s.commit(path, values.Unset)
	case "true":
		s.commit(path, true)
	case "false":
		s.commit(path, false)
	default:
		return fmt.Errorf("panel: invalid boolean choice %q", choice)
	}
	return nil
}

// SetSelect commits an enum choice. The empty choice stores the unset
// sentinel, which is distinguishable from every enum member.
func (s *Session) SetSelect(path schema.Path, choice string) {
	s.commit(path, choice)
}

// AppendElement appends one empty string to the list at path.
func (s *Session) AppendElement(path schema.Path) {
	rows := values.Strings(s.tree, path)
	s.commit(path, append(rows, ""))
}

// EditElement replaces the list element at index in place.
func (s *Session) EditElement(path schema.Path, index int, text string) error {
	rows := values.Strings(s.tree, path)
	if index < 0 || index >= len(rows) {
		return fmt.Errorf("panel: index %d out of range for %q", index, path.String())
	}
	rows[index] = text
	s.commit(path, rows)
	return nil
}

// ClearElement blanks the list element at index. The list keeps its length;
// clearing is not removal.
func (s *Session) ClearElement(path schema.Path, index int) error {
	return s.EditElement(path, index, "")
}

// OpenEditor begins a modal editing session for path and returns the staged
// initial text: string values verbatim, anything else pretty-printed.
func (s *Session) OpenEditor(path schema.Path) (string, error) {
	if s.editor != nil {
		return "", ErrEditorOpen
	}
	current := values.Get(s.tree, path)
	initial := displayText(current)
	s.editor = &editorState{path: path, draft: initial}
	s.emit(Event{Kind: EventEditorOpened, Path: path.String(), Value: initial})
	return initial, nil
}

// Draft returns the staged editor text and whether an editor is open.
func (s *Session) Draft() (string, bool) {
	if s.editor == nil {
		return "", false
	}
	return s.editor.draft, true
}

// UpdateDraft replaces the staged text without committing it.
func (s *Session) UpdateDraft(text string) error {
	if s.editor == nil {
		return ErrNoEditor
	}
	s.editor.draft = text
	return nil
}

// SaveEditor closes the modal session and commits its final text. The text
// is parsed as JSON when possible; otherwise the raw string is stored as-is.
// The editor always closes, even on a failed parse.
func (s *Session) SaveEditor(text string) error {
	if s.editor == nil {
		return ErrNoEditor
	}
	path := s.editor.path
	s.editor = nil

	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		s.emit(Event{Kind: EventEditorFallback, Path: path.String(), Value: text})
		s.commit(path, text)
		return nil
	}
	s.emit(Event{Kind: EventEditorSaved, Path: path.String(), Value: parsed})
	s.commit(path, parsed)
	return nil
}

// CancelEditor closes the modal session and discards its staged text.
func (s *Session) CancelEditor() error {
	if s.editor == nil {
		return ErrNoEditor
	}
	path := s.editor.path
	s.editor = nil
	s.emit(Event{Kind: EventEditorCanceled, Path: path.String()})
	return nil
}

// Submit runs the required-field validator against the current tree and
// records the resulting messages for the next render. It never gates edits:
// every edit has already committed through the store.
func (s *Session) Submit() map[string]string {
	s.messages = validation.Validate(s.inputSchema, s.tree)
	s.emit(Event{Kind: EventValidated, Issues: s.messages})
	return s.messages
}

func (s *Session) commit(path schema.Path, value any) {
	s.tree = values.Set(s.tree, path, value)
	s.emit(Event{Kind: EventCommit, Path: path.String(), Value: value})
	if s.onChange != nil {
		s.onChange(s.tree)
	}
}

func (s *Session) emit(event Event) {
	if s.observer != nil {
		s.observer(event)
	}
}
