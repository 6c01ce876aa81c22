package loadz

import (
	"errors"
	"testing"
)

func TestErrorRing_NilSafe(t *testing.T) {
	var r *errorRing

	r.push(errors.New("test"))
	r.clear()

	if r.all() != nil {
		t.Error("expected nil from nil ring")
	}
}

func TestErrorRing_NonPositiveSize(t *testing.T) {
	if newErrorRing(0) != nil {
		t.Error("expected nil ring for size 0")
	}
	if newErrorRing(-1) != nil {
		t.Error("expected nil ring for negative size")
	}
}

func TestErrorRing_IgnoresNil(t *testing.T) {
	r := newErrorRing(2)
	r.push(nil)
	if r.all() != nil {
		t.Error("expected nil errors to be ignored")
	}
}

func TestErrorRing_PartiallyFilled(t *testing.T) {
	r := newErrorRing(3)
	err1 := errors.New("error1")
	err2 := errors.New("error2")
	r.push(err1)
	r.push(err2)

	errs := r.all()
	if len(errs) != 2 {
		t.Fatalf("expected 2 errors, got %d", len(errs))
	}
	if errs[0] != err1 || errs[1] != err2 {
		t.Errorf("expected [error1 error2], got %v", errs)
	}
}

func TestErrorRing_WrapsOldestFirst(t *testing.T) {
	r := newErrorRing(3)
	for _, msg := range []string{"e1", "e2", "e3", "e4", "e5"} {
		r.push(errors.New(msg))
	}

	errs := r.all()
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d", len(errs))
	}
	for i, want := range []string{"e3", "e4", "e5"} {
		if errs[i].Error() != want {
			t.Errorf("errs[%d] = %q, want %q", i, errs[i], want)
		}
	}
}

func TestErrorRing_Clear(t *testing.T) {
	r := newErrorRing(2)
	r.push(errors.New("e1"))
	r.clear()
	if r.all() != nil {
		t.Error("expected empty ring after clear")
	}

	r.push(errors.New("e2"))
	errs := r.all()
	if len(errs) != 1 || errs[0].Error() != "e2" {
		t.Errorf("expected [e2] after clear, got %v", errs)
	}
}
