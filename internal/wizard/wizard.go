package wizard

import (
	"context"
	"errors"
	"fmt"

	"culturehub/internal/models"

	"github.com/go-playground/validator/v10"
)

type Step int

const (
	StepBasicInfo Step = iota + 1
	StepVenue
	StepMedia
	StepTicketing
	StepSubmitted
)

var stepNames = map[Step]string{
	StepBasicInfo: "basic_info",
	StepVenue:     "venue",
	StepMedia:     "media",
	StepTicketing: "ticketing",
	StepSubmitted: "submitted",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

func (s Step) MarshalText() ([]byte, error) {
	if _, ok := stepNames[s]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, int(s))
	}
	return []byte(s.String()), nil
}

func (s *Step) UnmarshalText(text []byte) error {
	for step, name := range stepNames {
		if name == string(text) {
			*s = step
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrUnknownStep, string(text))
}

var (
	ErrUnknownStep = errors.New("unknown wizard step")
	ErrLastStep    = errors.New("ticketing is the last step, submit the form instead")
	ErrNotLastStep = errors.New("the form can only be submitted from the ticketing step")
	ErrSubmitted   = errors.New("the form has already been submitted")
	ErrNoOrganizer = errors.New("organizer is required")
)

var (
	validate      = validator.New()
	editableSteps = []Step{StepBasicInfo, StepVenue, StepMedia, StepTicketing}
)

// RuleError reports a cross-field rule the struct tags cannot express.
type RuleError struct {
	Field   string
	Message string
}

func (e *RuleError) Error() string {
	return fmt.Sprintf("field %s %s", e.Field, e.Message)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventInserter
type EventInserter interface {
	CreateEvent(ctx context.Context, event *models.Event, artistIDs []int) (int, error)
}

// ValidateStep reports whether the section of form belonging to step is
// complete. It has no side effects.
func ValidateStep(step Step, form *Form) error {
	switch step {
	case StepBasicInfo:
		if err := validate.Struct(form.BasicInfo); err != nil {
			return err
		}
		if !form.BasicInfo.EndAt.After(form.BasicInfo.StartAt) {
			return &RuleError{Field: "EndAt", Message: "must be after StartAt"}
		}
	case StepVenue:
		if err := validate.Struct(form.Venue); err != nil {
			return err
		}
		if (form.Venue.Latitude == nil) != (form.Venue.Longitude == nil) {
			return &RuleError{Field: "Latitude", Message: "and Longitude must be set together"}
		}
	case StepMedia:
		if err := validate.Struct(form.Media); err != nil {
			return err
		}
	case StepTicketing:
		if err := validate.Struct(form.Ticketing); err != nil {
			return err
		}
		if !form.Ticketing.IsFree {
			if form.Ticketing.PriceCents() < 1 {
				return &RuleError{Field: "Price", Message: "must be at least 0.01 for paid events"}
			}
			if form.Ticketing.Currency == "" {
				return &RuleError{Field: "Currency", Message: "is required for paid events"}
			}
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownStep, step)
	}

	return nil
}

// Wizard walks a form through its steps. The zero value is not usable, use New
// or Resume.
type Wizard struct {
	step Step
}

func New() *Wizard {
	return &Wizard{step: StepBasicInfo}
}

// Resume continues a wizard at a step restored from a draft.
func Resume(step Step) (*Wizard, error) {
	if _, ok := stepNames[step]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownStep, int(step))
	}
	return &Wizard{step: step}, nil
}

func (w *Wizard) Step() Step {
	return w.step
}

// Next advances one step if the current step of form is valid. On error the
// wizard stays where it is.
func (w *Wizard) Next(form *Form) error {
	switch w.step {
	case StepSubmitted:
		return ErrSubmitted
	case StepTicketing:
		return ErrLastStep
	}

	if err := ValidateStep(w.step, form); err != nil {
		return err
	}

	w.step++

	return nil
}

// Back moves one step back without validation. It stays on the first step.
func (w *Wizard) Back() error {
	if w.step == StepSubmitted {
		return ErrSubmitted
	}
	if w.step > StepBasicInfo {
		w.step--
	}
	return nil
}

// Submit validates every step, inserts the event with its artists and ends the
// wizard. If any step fails or the insert fails the wizard stays on the current
// step and nothing is stored.
func (w *Wizard) Submit(ctx context.Context, form *Form, organizerID string, inserter EventInserter) (int, error) {
	switch w.step {
	case StepSubmitted:
		return 0, ErrSubmitted
	case StepTicketing:
	default:
		return 0, ErrNotLastStep
	}

	if organizerID == "" {
		return 0, ErrNoOrganizer
	}

	for _, step := range editableSteps {
		if err := ValidateStep(step, form); err != nil {
			return 0, fmt.Errorf("%s: %w", step, err)
		}
	}

	eventID, err := inserter.CreateEvent(ctx, ToPayload(form, organizerID), form.BasicInfo.ArtistIDs)
	if err != nil {
		return 0, err
	}

	w.step = StepSubmitted

	return eventID, nil
}
