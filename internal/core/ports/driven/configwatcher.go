package driven

import "context"

// ConfigWatcher observes the configuration store for external edits.
type ConfigWatcher interface {
	// Watch calls onChange after the configuration has been modified on
	// storage. It blocks until ctx is cancelled.
	Watch(ctx context.Context, onChange func()) error
}
