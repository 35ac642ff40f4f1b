package cascade

import (
	"context"
	"errors"
	"testing"
)

func TestExecutor_Run_Consumed(t *testing.T) {
	var e executor

	res := e.run(context.Background(), pingEvent{}, HandlerFunc(func(ctx context.Context, event any) (bool, error) {
		return true, nil
	}))

	if !res.consumed {
		t.Error("expected consumed result")
	}
	if res.err != nil || res.panicked {
		t.Errorf("expected clean result, got err=%v panicked=%v", res.err, res.panicked)
	}
	if res.duration < 0 {
		t.Error("expected non-negative duration")
	}
}

func TestExecutor_Run_Error(t *testing.T) {
	var e executor
	errBoom := errors.New("boom")

	res := e.run(context.Background(), pingEvent{}, HandlerFunc(func(ctx context.Context, event any) (bool, error) {
		return false, errBoom
	}))

	if res.consumed {
		t.Error("expected unconsumed result")
	}
	if res.err != errBoom {
		t.Errorf("expected boom, got %v", res.err)
	}
}

func TestExecutor_Run_PanicRecovered(t *testing.T) {
	var observedEvent any
	var observedValue any
	e := executor{onPanic: func(event, recovered any, stack []byte) {
		observedEvent = event
		observedValue = recovered
	}}

	res := e.run(context.Background(), pingEvent{n: 7}, HandlerFunc(func(ctx context.Context, event any) (bool, error) {
		panic("kaboom")
	}))

	if !res.panicked {
		t.Fatal("expected panicked result")
	}
	if res.panicValue != "kaboom" {
		t.Errorf("expected panic value kaboom, got %v", res.panicValue)
	}
	if len(res.panicStack) == 0 {
		t.Error("expected captured stack trace")
	}
	if observedValue != "kaboom" {
		t.Errorf("expected observer to see kaboom, got %v", observedValue)
	}
	if ev, ok := observedEvent.(pingEvent); !ok || ev.n != 7 {
		t.Errorf("expected observer to see the event, got %v", observedEvent)
	}
}

func TestExecutor_Run_PanickingObserverIsContained(t *testing.T) {
	e := executor{onPanic: func(event, recovered any, stack []byte) {
		panic("observer gone wrong")
	}}

	res := e.run(context.Background(), pingEvent{}, HandlerFunc(func(ctx context.Context, event any) (bool, error) {
		panic("original")
	}))

	if !res.panicked {
		t.Fatal("expected panicked result")
	}
	if res.panicValue != "original" {
		t.Errorf("expected the original panic value, got %v", res.panicValue)
	}
}
