package rendering

import (
	"errors"
	"fmt"
)

// ErrNilProfile is returned when Render is called without a profile.
var ErrNilProfile = errors.New("rendering: profile is required")

// TemplateError reports an unknown template ID or a template that failed at some stage.
type TemplateError struct {
	TemplateID string
	Op         string // lookup, read, parse or execute
	Cause      error
}

func (e *TemplateError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("template %q: %s failed", e.TemplateID, e.Op)
	}
	return fmt.Sprintf("template %q: %s: %v", e.TemplateID, e.Op, e.Cause)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// errUnknownTemplate is the cause attached to lookup failures.
var errUnknownTemplate = errors.New("unknown template")
