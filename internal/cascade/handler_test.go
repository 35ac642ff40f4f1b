package cascade

import (
	"context"
	"testing"
)

func TestOn_TypedHandler(t *testing.T) {
	r := newTestRegistry()

	var got pingEvent
	s := r.Register(nil)
	On(r, s, func(ctx context.Context, ev pingEvent) (bool, error) {
		got = ev
		return true, nil
	})

	consumed, err := r.Dispatch(context.Background(), pingEvent{n: 42})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if !consumed {
		t.Error("expected typed handler to consume the event")
	}
	if got.n != 42 {
		t.Errorf("expected payload 42, got %d", got.n)
	}
}

func TestOn_ReplacesPriorBinding(t *testing.T) {
	r := newTestRegistry()

	var log []string
	s := r.Register(nil)
	On(r, s, func(ctx context.Context, ev pingEvent) (bool, error) {
		log = append(log, "old")
		return true, nil
	})
	On(r, s, func(ctx context.Context, ev pingEvent) (bool, error) {
		log = append(log, "new")
		return true, nil
	})

	if _, err := r.Dispatch(context.Background(), pingEvent{}); err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if len(log) != 1 || log[0] != "new" {
		t.Errorf("expected only the replacement handler, got %v", log)
	}
}

func TestOff_RemovesBinding(t *testing.T) {
	r := newTestRegistry()

	s := r.Register(nil)
	On(r, s, func(ctx context.Context, ev pingEvent) (bool, error) {
		return true, nil
	})
	Off[pingEvent](r, s)

	consumed, err := r.Dispatch(context.Background(), pingEvent{})
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if consumed {
		t.Error("expected no consumption after Off")
	}
	if r.Bindings(KindOf[pingEvent]()) != 0 {
		t.Errorf("expected 0 bindings, got %d", r.Bindings(KindOf[pingEvent]()))
	}
}

func TestKindOf_DistinguishesPointerAndValue(t *testing.T) {
	if KindOf[pingEvent]() == KindOf[*pingEvent]() {
		t.Error("expected pointer and value kinds to differ")
	}
}

func TestKindOf_MatchesDynamicType(t *testing.T) {
	if KindOf[pingEvent]() != kindOfValue(pingEvent{}) {
		t.Error("expected KindOf to match the dynamic type of a value")
	}
	if KindOf[*pingEvent]() != kindOfValue(&pingEvent{}) {
		t.Error("expected KindOf to match the dynamic type of a pointer")
	}
}

func TestKindOfValue_Nil(t *testing.T) {
	if kindOfValue(nil) != nil {
		t.Error("expected nil kind for nil event")
	}
}
