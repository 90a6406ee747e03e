package driver

import "fmt"

// State represents a driver's state
type State string

const (
	// StateClosed means there is no session with the camera. Nothing is
	// known about it beyond its Info.
	StateClosed State = "closed"
	// StateOpened means a session is established; the camera can be
	// queried, configured and asked to capture.
	StateOpened State = "opened"
	// StateStreaming means liveview is running. The session stays usable,
	// but a second preview stream cannot be started.
	StateStreaming State = "streaming"
)

// Update moves s to next if the transition is legal and f succeeds. On
// failure s is left unchanged.
func (s *State) Update(next State, f func() error) error {
	var guard func() error
	switch next {
	case StateClosed:
		guard = s.toClosed
	case StateOpened:
		guard = s.toOpened
	case StateStreaming:
		guard = s.toStreaming
	default:
		return fmt.Errorf("invalid state: unknown state %q", next)
	}

	if err := guard(); err != nil {
		return err
	}

	err := f()
	if err == nil {
		*s = next
	}
	return err
}

// toOpened admits both Open (from closed) and StopPreview (from
// streaming); re-opening an opened driver is the one illegal move.
func (s *State) toOpened() error {
	if *s == StateOpened {
		return fmt.Errorf("invalid state: driver is already opened")
	}
	return nil
}

func (s *State) toClosed() error {
	return nil
}

func (s *State) toStreaming() error {
	if *s == StateClosed {
		return fmt.Errorf("invalid state: driver is closed")
	}
	if *s == StateStreaming {
		return fmt.Errorf("invalid state: preview is already streaming")
	}
	return nil
}
