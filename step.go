package filecopy

import (
	"fmt"
	"github.com/infobaleen/errors"
)

// Step identifies one fallible stage of a copy.
type Step int

const (
	StepOpenSource Step = iota + 1
	StepOpenDestination
	StepCopyData
	StepSourceMetadata
	StepSetPermissions
)

func (s Step) String() string {
	switch s {
	case StepOpenSource:
		return "open source"
	case StepOpenDestination:
		return "open destination"
	case StepCopyData:
		return "copy data"
	case StepSourceMetadata:
		return "source metadata"
	case StepSetPermissions:
		return "set permissions"
	}
	return fmt.Sprintf("Step(%d)", int(s))
}

// StepError reports which step of a copy failed. Path is set for the open steps only.
type StepError struct {
	Step Step
	Path string
	Err  error
}

func (e *StepError) Error() string {
	var cause = errors.Cause(e.Err)
	switch e.Step {
	case StepOpenSource:
		return fmt.Sprintf("Unable to open src path %s: %v", e.Path, cause)
	case StepOpenDestination:
		return fmt.Sprintf("Unable to open dst path %s: %v", e.Path, cause)
	case StepCopyData:
		return fmt.Sprintf("Error copying data to dest: %v", cause)
	case StepSourceMetadata:
		return fmt.Sprintf("Unable to get src metadata: %v", cause)
	case StepSetPermissions:
		return fmt.Sprintf("Unable to set dest permissions: %v", cause)
	}
	return fmt.Sprintf("%v: %v", e.Step, cause)
}

// Unwrap returns the underlying OS error.
func (e *StepError) Unwrap() error {
	return errors.Cause(e.Err)
}
