package lookahead

import "testing"

func TestCheckpointReportsCancellation(t *testing.T) {
	cancel := make(chan struct{})
	close(cancel)
	e := newTestEngine(1)
	e.SetLimits(Limits{Cancel: cancel})
	if err := e.checkpoint(); err != ErrCancelled {
		t.Errorf("expected ErrCancelled once Cancel is closed, got %v", err)
	}
}

func TestCheckpointOKWithNoLimits(t *testing.T) {
	e := newTestEngine(1)
	if err := e.checkpoint(); err != nil {
		t.Errorf("checkpoint with zero-value Limits should never error, got %v", err)
	}
}

func TestSearchPropagatesCancellation(t *testing.T) {
	cancel := make(chan struct{})
	close(cancel)
	e := newTestEngine(2, []int{1, 2})
	e.SetLimits(Limits{Cancel: cancel})
	status, err := e.Search()
	if err != ErrCancelled {
		t.Errorf("expected ErrCancelled from Search, got %v", err)
	}
	if status != Undef {
		t.Errorf("a cancelled Search should report Undef, got %v", status)
	}
}
