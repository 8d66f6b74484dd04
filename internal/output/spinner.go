package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// RunWithSpinner runs action while a spinner with title animates. Without a
// terminal the action runs directly. The spinner only animates; action's
// result is returned unchanged.
func RunWithSpinner(ctx context.Context, title string, action func(context.Context) error) error {
	if !IsTTY() {
		return action(ctx)
	}

	var result error
	done := make(chan struct{})
	go func() {
		result = action(ctx)
		close(done)
	}()

	spinnerErr := spinner.New().
		Title(title).
		Action(func() {
			select {
			case <-done:
			case <-ctx.Done():
			}
		}).
		Run()

	// action observes ctx, so this returns once it is cancelled.
	<-done

	if result == nil && spinnerErr != nil {
		return fmt.Errorf("spinner error: %w", spinnerErr)
	}
	return result
}
