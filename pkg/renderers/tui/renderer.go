// Package tui drives a panel session interactively from the terminal using
// survey prompts. The multi-line prompt plays the modal editor role: opening
// it suspends the field, and exactly one of save or cancel closes it.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"

	"github.com/goliatone/go-nodepanel/pkg/panel"
	"github.com/goliatone/go-nodepanel/pkg/render"
	"github.com/goliatone/go-nodepanel/pkg/schema"
)

const unsetOption = "(unset)"

// Renderer implements render.Renderer for terminal-driven sessions.
type Renderer struct {
	driver PromptDriver
}

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver, mainly for tests.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// New constructs a TUI renderer with the survey driver by default.
func New(options ...Option) *Renderer {
	r := &Renderer{driver: newSurveyDriver()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render walks the panel's fields prompting for each editable control,
// committing every answer through the session, then serialises the final
// value tree. With options.Validate set the required-field messages are
// reported after the walk.
func (r *Renderer) Render(ctx context.Context, session *panel.Session, options render.Options) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if session == nil {
		return nil, errors.New("tui: session is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	node := session.RenderNode()
	for _, field := range node.Fields {
		if err := r.editElement(ctx, session, field); err != nil {
			return nil, err
		}
	}

	if options.Validate {
		for path, message := range session.Submit() {
			_ = r.driver.Info(ctx, fmt.Sprintf("%s: %s", path, message))
		}
	}

	return json.MarshalIndent(jsonSafe(session.Values()), "", "  ")
}

// jsonSafe rewrites values the JSON encoder rejects. The permissive numeric
// policy stores NaN for unparseable input; at this boundary it becomes null.
func jsonSafe(value any) any {
	switch typed := value.(type) {
	case float64:
		if math.IsNaN(typed) || math.IsInf(typed, 0) {
			return nil
		}
		return typed
	case map[string]any:
		out := make(map[string]any, len(typed))
		for key, nested := range typed {
			out[key] = jsonSafe(nested)
		}
		return out
	case []any:
		out := make([]any, len(typed))
		for i, nested := range typed {
			out[i] = jsonSafe(nested)
		}
		return out
	default:
		return typed
	}
}

func (r *Renderer) editElement(ctx context.Context, session *panel.Session, element panel.Element) error {
	switch element.Kind {
	case panel.ElementGroup:
		if err := r.driver.Info(ctx, element.Label); err != nil {
			return err
		}
		for _, child := range element.Children {
			if err := r.editElement(ctx, session, child); err != nil {
				return err
			}
		}
		return nil
	case panel.ElementConnected:
		return r.driver.Info(ctx, fmt.Sprintf("%s is driven by a connection; skipping", element.Label))
	case panel.ElementSelect:
		return r.editSelect(ctx, session, element)
	case panel.ElementTriState:
		return r.editTriState(ctx, session, element)
	case panel.ElementNumber:
		return r.editNumber(ctx, session, element)
	case panel.ElementOptionalText:
		text, err := r.driver.Input(ctx, InputConfig{
			Message:     element.Label,
			Default:     element.Value,
			Help:        element.Description,
			Placeholder: element.Placeholder,
		})
		if err != nil {
			return err
		}
		session.SetText(element.Path, text)
		return nil
	case panel.ElementStringList:
		return r.editStringList(ctx, session, element)
	case panel.ElementText, panel.ElementComplex:
		return r.editModal(ctx, session, element)
	default:
		return nil
	}
}

func (r *Renderer) editSelect(ctx context.Context, session *panel.Session, element panel.Element) error {
	options := append([]string{unsetOption}, element.Options...)
	defaultIndex := 0
	if idx := indexOf(element.Options, element.Value); idx >= 0 && element.Value != "" {
		defaultIndex = idx + 1
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      element.Label,
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         element.Description,
	})
	if err != nil {
		return err
	}
	if idx <= 0 {
		session.SetSelect(element.Path, "")
		return nil
	}
	session.SetSelect(element.Path, element.Options[idx-1])
	return nil
}

func (r *Renderer) editTriState(ctx context.Context, session *panel.Session, element panel.Element) error {
	options := []string{unsetOption, "true", "false"}
	defaultIndex := 0
	switch element.Value {
	case "true":
		defaultIndex = 1
	case "false":
		defaultIndex = 2
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      element.Label,
		Options:      options,
		DefaultIndex: defaultIndex,
		Help:         element.Description,
	})
	if err != nil {
		return err
	}
	choice := ""
	if idx == 1 || idx == 2 {
		choice = options[idx]
	}
	return session.SetBool(element.Path, choice)
}

func (r *Renderer) editNumber(ctx context.Context, session *panel.Session, element panel.Element) error {
	text, err := r.driver.Input(ctx, InputConfig{
		Message: element.Label,
		Default: element.Value,
		Help:    element.Description,
	})
	if err != nil {
		return err
	}
	kind := schema.KindNumber
	if element.Integer {
		kind = schema.KindInteger
	}
	session.SetNumber(element.Path, text, kind)
	return nil
}

func (r *Renderer) editStringList(ctx context.Context, session *panel.Session, element panel.Element) error {
	for index, row := range element.Rows {
		text, err := r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s[%d]", element.Label, index),
			Default: row,
			Help:    "leave empty to clear the element",
		})
		if err != nil {
			return err
		}
		if err := session.EditElement(element.Path, index, text); err != nil {
			return err
		}
	}

	for index := len(element.Rows); ; index++ {
		more, err := r.driver.Confirm(ctx, ConfirmConfig{
			Message: fmt.Sprintf("Add an element to %s?", element.Label),
		})
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
		session.AppendElement(element.Path)
		text, err := r.driver.Input(ctx, InputConfig{
			Message: fmt.Sprintf("%s[%d]", element.Label, index),
		})
		if err != nil {
			return err
		}
		if err := session.EditElement(element.Path, index, text); err != nil {
			return err
		}
	}
}

// editModal runs one scoped modal session over the multi-line prompt. The
// session closes on every exit path: save on success, cancel when the prompt
// fails or is aborted.
func (r *Renderer) editModal(ctx context.Context, session *panel.Session, element panel.Element) error {
	initial, err := session.OpenEditor(element.Path)
	if err != nil {
		return err
	}
	text, err := r.driver.TextArea(ctx, TextAreaConfig{
		Message: element.Label,
		Default: initial,
		Help:    element.Description,
	})
	if err != nil {
		_ = session.CancelEditor()
		return err
	}
	return session.SaveEditor(text)
}
