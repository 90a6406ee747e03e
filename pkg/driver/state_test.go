package driver

import (
	"errors"
	"testing"
)

var noop = func() error { return nil }

func TestUpdateLifecycle(t *testing.T) {
	s := StateClosed

	if err := s.Update(StateOpened, noop); err != nil {
		t.Fatal(err)
	}
	if s != StateOpened {
		t.Fatalf("expected %s, got %s", StateOpened, s)
	}

	if err := s.Update(StateStreaming, noop); err != nil {
		t.Fatal(err)
	}
	if s != StateStreaming {
		t.Fatalf("expected %s, got %s", StateStreaming, s)
	}

	if err := s.Update(StateOpened, noop); err != nil {
		t.Fatal(err)
	}
	if err := s.Update(StateClosed, noop); err != nil {
		t.Fatal(err)
	}
	if s != StateClosed {
		t.Fatalf("expected %s, got %s", StateClosed, s)
	}
}

func TestUpdateIllegalTransitions(t *testing.T) {
	s := StateClosed
	if err := s.Update(StateStreaming, noop); err == nil {
		t.Fatal("closed -> streaming must fail")
	}
	if s != StateClosed {
		t.Fatalf("state changed on failed transition: %s", s)
	}

	s = StateStreaming
	if err := s.Update(StateStreaming, noop); err == nil {
		t.Fatal("streaming -> streaming must fail")
	}

	s = StateOpened
	if err := s.Update(StateOpened, noop); err == nil {
		t.Fatal("opened -> opened must fail")
	}
}

func TestUpdateKeepsStateOnFailure(t *testing.T) {
	s := StateClosed
	boom := errors.New("boom")

	err := s.Update(StateOpened, func() error { return boom })
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}
	if s != StateClosed {
		t.Fatalf("state must stay %s on failure, got %s", StateClosed, s)
	}
}
