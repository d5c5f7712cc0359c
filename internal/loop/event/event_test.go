package event

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	evt := New("greet-0", "world", true)

	if evt.Key != "greet-0" {
		t.Errorf("Key = %q, want %q", evt.Key, "greet-0")
	}
	if evt.Payload != "world" {
		t.Errorf("Payload = %q, want %q", evt.Payload, "world")
	}
	if !evt.Async {
		t.Error("Async = false, want true")
	}
	if evt.Metadata.ID == "" {
		t.Error("Metadata.ID is empty, want generated ID")
	}
	if evt.Metadata.Timestamp.IsZero() {
		t.Error("Metadata.Timestamp is zero, want creation time")
	}
}

func TestNew_UniqueIDs(t *testing.T) {
	a := New("k", "", false)
	b := New("k", "", false)

	if a.Metadata.ID == b.Metadata.ID {
		t.Errorf("two events share ID %q", a.Metadata.ID)
	}
}

func TestResult(t *testing.T) {
	ok := NewResult("k", "v")
	if ok.Failed() {
		t.Error("Failed() = true for successful result")
	}
	if ok.Key != "k" || ok.Value != "v" {
		t.Errorf("result = %+v", ok)
	}

	err := errors.New("boom")
	bad := NewErrorResult("k", err)
	if !bad.Failed() {
		t.Error("Failed() = false for error result")
	}
	if !errors.Is(bad.Err, err) {
		t.Errorf("Err = %v, want %v", bad.Err, err)
	}
}
