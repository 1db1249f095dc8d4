package shell

import (
	"context"
	"sync"
)

// Recorder is a Runner that records commands instead of executing them.
type Recorder struct {
	mu       sync.Mutex
	commands []Command

	// ExitCodes maps a command's String() to the exit code it reports. Unlisted commands exit 0.
	ExitCodes map[string]int

	// Err, when set, is returned for every command.
	Err error
}

// Run implements Runner.
func (r *Recorder) Run(_ context.Context, c Command) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.commands = append(r.commands, c)
	if r.Err != nil {
		return -1, r.Err
	}
	return r.ExitCodes[c.String()], nil
}

// Commands returns the recorded commands in call order.
func (r *Recorder) Commands() []Command {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}
