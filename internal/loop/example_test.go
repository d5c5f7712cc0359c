package loop_test

import (
	"os"

	"github.com/tickloop/tickloop/internal/loop"
	"github.com/tickloop/tickloop/internal/loop/event"
)

// ExampleLoop registers a handler, dispatches a synchronous event, and
// advances the loop one tick. Synchronous output appears within the same
// tick.
func ExampleLoop() {
	l := loop.New(loop.WithOutput(os.Stdout))

	l.On("greet-0", func(payload string) (string, error) {
		return "Hello! " + payload, nil
	})
	l.Dispatch(event.New("greet-0", "world", false))

	l.Tick()

	// Output:
	// received event: greet-0
	// output for greet-0: Hello! world
	// event loop was blocked for 0 ms
}
