package wizard

import (
	"errors"
	"fmt"
)

// ErrInvalidStep is returned by GoTo for anything that is not an editable section.
var ErrInvalidStep = errors.New("invalid wizard step")

// Controller owns the active step. The zero value starts at step 0.
//
// States are 0..NumSections. Next and Back move between sections; the
// terminal StepResult is entered only through Finish, which the session
// calls after a successful generation from the last section.
type Controller struct {
	active int
}

// NewController returns a controller positioned at the first section.
func NewController() *Controller {
	return &Controller{}
}

// Active returns the current step index.
func (c *Controller) Active() int {
	return c.active
}

// Next advances one section and reports whether the step changed. It never
// enters the result step: on the last section the caller offers generation
// instead.
func (c *Controller) Next() bool {
	if c.active >= NumSections-1 {
		return false
	}
	c.active++
	return true
}

// Back moves to the previous step, stopping at 0.
func (c *Controller) Back() bool {
	if c.active <= 0 {
		c.active = 0
		return false
	}
	c.active--
	return true
}

// GoTo jumps to a section, as the review view's edit actions do.
func (c *Controller) GoTo(step int) error {
	if step < 0 || step >= NumSections {
		return fmt.Errorf("%w: %d (sections are 0..%d)", ErrInvalidStep, step, NumSections-1)
	}
	c.active = step
	return nil
}

// Finish enters the result step. It is a no-op unless the controller is on
// the last section or already finished, and reports whether the controller
// is now on the result step.
func (c *Controller) Finish() bool {
	if c.active == NumSections-1 {
		c.active = StepResult
	}
	return c.active == StepResult
}

// Reset returns to the first section.
func (c *Controller) Reset() {
	c.active = 0
}

// IsLastSection reports whether the active step is the final editable section.
func (c *Controller) IsLastSection() bool {
	return c.active == NumSections-1
}

// IsTerminal reports whether the result step has been reached.
func (c *Controller) IsTerminal() bool {
	return c.active == StepResult
}
