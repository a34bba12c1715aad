package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Label identifies one of the four answer options of a question.
type Label string

const (
	LabelA Label = "A"
	LabelB Label = "B"
	LabelC Label = "C"
	LabelD Label = "D"
)

// Labels lists all valid option labels in display order.
var Labels = []Label{LabelA, LabelB, LabelC, LabelD}

var ErrInvalidLabel = errors.New("invalid option label")

// ParseLabel converts user input into a Label. Input outside A-D
// (case-insensitive) is rejected with ErrInvalidLabel.
func ParseLabel(s string) (Label, error) {
	switch Label(strings.ToUpper(strings.TrimSpace(s))) {
	case LabelA:
		return LabelA, nil
	case LabelB:
		return LabelB, nil
	case LabelC:
		return LabelC, nil
	case LabelD:
		return LabelD, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidLabel, s)
	}
}

// Valid reports whether l is one of the four fixed labels.
func (l Label) Valid() bool {
	switch l {
	case LabelA, LabelB, LabelC, LabelD:
		return true
	default:
		return false
	}
}

// Question represents a single multiple-choice question with exactly
// four labeled options and one correct label.
type Question struct {
	Text         string           `json:"question"`       // question text
	Options      map[Label]string `json:"options"`        // option text by label, all four labels present
	CorrectLabel Label            `json:"correct_answer"` // the single correct label
}

// Validate checks the structural invariants of a question: non-empty
// text, all four options present and non-empty, and a correct label
// from the fixed set.
func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("missing question text")
	}

	if len(q.Options) != len(Labels) {
		return fmt.Errorf("expected %d options, got %d", len(Labels), len(q.Options))
	}

	for _, l := range Labels {
		text, ok := q.Options[l]
		if !ok {
			return fmt.Errorf("missing option %s", l)
		}
		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("empty option %s", l)
		}
	}

	if !q.CorrectLabel.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidLabel, string(q.CorrectLabel))
	}

	return nil
}
