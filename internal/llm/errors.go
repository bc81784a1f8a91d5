package llm

import "errors"

var ErrCompletion = errors.New("completion failed")

// CompletionError reports a failed call to the completion service, including
// model output that did not match the result schema.
type CompletionError struct {
	Provider string
	Err      error
}

func (e *CompletionError) Error() string {
	return "Error generating the cover letter: " + e.Err.Error()
}

func (e *CompletionError) Unwrap() error {
	return e.Err
}

func (e *CompletionError) Is(target error) bool {
	return target == ErrCompletion
}

// Fail wraps err as a CompletionError for provider unless it already is one.
func Fail(provider string, err error) error {
	if err == nil {
		return nil
	}
	var ce *CompletionError
	if errors.As(err, &ce) {
		return err
	}
	return &CompletionError{Provider: provider, Err: err}
}
