package publish

import "fmt"

// Step names one remote call of the edit-transaction sequence.
type Step string

const (
	StepCreateEdit   Step = "create edit"
	StepUploadBundle Step = "upload bundle"
	StepAssignTrack  Step = "assign track"
	StepCommitEdit   Step = "commit edit"
	StepListTracks   Step = "list tracks"
	StepDeleteEdit   Step = "delete edit"
)

// StepError is a remote-call failure during the publish sequence. It keeps
// the failing step so "upload failed" and "commit failed" stay
// distinguishable in error output.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

func stepErr(step Step, err error) error {
	return &StepError{Step: step, Err: err}
}
