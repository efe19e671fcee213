package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/jobboss2"
	"github.com/ZCAD-Products/mcp-jobboss2-server/internal/logging"
)

// Content is one block of a tool result.
type Content struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// Result is the outcome of a tool call. Failures are results too: IsError is
// set and the text starts with "Error: ".
type Result struct {
	Content []Content `json:"content"`
	IsError bool      `json:"isError,omitempty"`

	// Err is the failure behind an error result.
	Err error `json:"-"`
}

// Text returns the concatenated text content.
func (r *Result) Text() string {
	var sb strings.Builder
	for _, c := range r.Content {
		sb.WriteString(c.Text)
	}
	return sb.String()
}

func textResult(text string) *Result {
	return &Result{Content: []Content{{Type: "text", Text: text}}}
}

func errorResult(err error) *Result {
	return &Result{
		Content: []Content{{Type: "text", Text: "Error: " + err.Error()}},
		IsError: true,
		Err:     err,
	}
}

// Dispatcher runs tool calls. It is safe for concurrent use.
type Dispatcher struct {
	registry *Registry
	caller   Caller
	logger   logging.Logger
}

// NewDispatcher creates a Dispatcher sending requests through caller. A nil
// logger means logging.Default().
func NewDispatcher(registry *Registry, caller Caller, logger logging.Logger) *Dispatcher {
	if logger == nil {
		logger = logging.Default()
	}
	return &Dispatcher{registry: registry, caller: caller, logger: logger}
}

// Registry returns the dispatcher's tool registry.
func (d *Dispatcher) Registry() *Registry {
	return d.registry
}

// CallTool looks up, validates and runs one tool call. It never returns nil
// and never panics; every failure becomes an error result.
func (d *Dispatcher) CallTool(ctx context.Context, name string, raw json.RawMessage) (res *Result) {
	callID := uuid.NewString()
	log := d.logger.With("tool", name, "call_id", callID)
	ctx = jobboss2.WithRequestID(ctx, callID)
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			log.Error("tool handler panicked", "panic", r)
			res = errorResult(fmt.Errorf("internal error in %s: %v", name, r))
		}
	}()

	desc, ok := d.registry.Lookup(Name(name))
	if !ok {
		err := &ToolNotFoundError{Name: name, Suggestions: d.registry.suggest(name, 3)}
		log.Debug("tool call rejected", "state", "lookup", "error", "unknown tool")
		return errorResult(err)
	}

	log.Debug("validating arguments", "state", "validating")
	if err := desc.validate(raw); err != nil {
		log.Debug("tool call rejected", "state", "validating", "error", err)
		return errorResult(err)
	}
	args, err := ParseArgs(raw)
	if err != nil {
		return errorResult(&InvalidArgumentsError{Tool: name, Details: []string{err.Error()}})
	}

	log.Debug("executing", "state", "executing")
	payload, err := desc.Handler(ctx, args, d.caller)
	if err != nil {
		log.Warn("tool call failed", "state", "failed", "error", err, "duration", time.Since(start))
		return errorResult(err)
	}

	var text string
	if desc.SuccessMessage != nil {
		text = desc.SuccessMessage(args)
	} else if text, err = render(payload); err != nil {
		log.Warn("rendering result failed", "state", "failed", "error", err)
		return errorResult(fmt.Errorf("render result: %w", err))
	}

	log.Debug("tool call succeeded", "state", "succeeded", "duration", time.Since(start))
	return textResult(text)
}

// render formats a payload as JSON indented by two spaces. A nil payload
// means the API returned no body.
func render(payload any) (string, error) {
	if payload == nil {
		payload = map[string]any{"success": true}
	}
	if raw, ok := payload.(json.RawMessage); ok {
		var buf bytes.Buffer
		if err := json.Indent(&buf, raw, "", "  "); err != nil {
			return "", err
		}
		return buf.String(), nil
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return "", err
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// IsInvalidArguments reports whether r failed argument validation.
func (r *Result) IsInvalidArguments() bool {
	var target *InvalidArgumentsError
	return r.IsError && errors.As(r.Err, &target)
}
