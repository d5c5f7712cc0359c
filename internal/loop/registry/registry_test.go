package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndLookup(t *testing.T) {
	r := New()

	if err := r.Register("greet", func(p string) (string, error) {
		return "Hello! " + p, nil
	}); err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	h, ok := r.Lookup("greet")
	if !ok {
		t.Fatal("Lookup() = false, want handler")
	}

	got, err := h("world")
	if err != nil {
		t.Fatalf("handler error = %v", err)
	}
	if got != "Hello! world" {
		t.Errorf("handler = %q, want %q", got, "Hello! world")
	}
}

func TestRegistry_LookupAbsent(t *testing.T) {
	r := New()

	h, ok := r.Lookup("missing")
	if ok {
		t.Error("Lookup() = true for unregistered key")
	}
	if h != nil {
		t.Error("Lookup() returned non-nil handler for unregistered key")
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	r := New()

	r.Register("key", func(string) (string, error) { return "first", nil })
	r.Register("key", func(string) (string, error) { return "second", nil })

	h, ok := r.Lookup("key")
	if !ok {
		t.Fatal("Lookup() = false")
	}
	got, _ := h("")
	if got != "second" {
		t.Errorf("handler = %q, want re-registered handler %q", got, "second")
	}
	if r.Count() != 1 {
		t.Errorf("Count() = %d, want 1", r.Count())
	}
}

func TestRegistry_RegisterNil(t *testing.T) {
	r := New()

	err := r.Register("key", nil)
	if !errors.Is(err, ErrNilHandler) {
		t.Errorf("Register(nil) error = %v, want ErrNilHandler", err)
	}
	if r.Count() != 0 {
		t.Errorf("Count() = %d after rejected registration, want 0", r.Count())
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := New()
	r.Register("key", func(string) (string, error) { return "", nil })

	if !r.Remove("key") {
		t.Error("Remove() = false, want true")
	}
	if r.Remove("key") {
		t.Error("Remove() = true for already removed key")
	}
	if _, ok := r.Lookup("key"); ok {
		t.Error("Lookup() = true after Remove")
	}
}

func TestRegistry_KeysAndClear(t *testing.T) {
	r := New()
	r.Register("a", func(string) (string, error) { return "", nil })
	r.Register("b", func(string) (string, error) { return "", nil })

	keys := r.Keys()
	if len(keys) != 2 {
		t.Errorf("Keys() returned %d keys, want 2", len(keys))
	}

	r.Clear()
	if r.Count() != 0 {
		t.Errorf("Count() after Clear = %d, want 0", r.Count())
	}
	if r.Keys() != nil {
		t.Error("Keys() after Clear should be nil")
	}
}

func TestRegistry_ConcurrentLookup(t *testing.T) {
	r := New()
	r.Register("shared", func(p string) (string, error) { return p, nil })

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if _, ok := r.Lookup("shared"); !ok {
					t.Error("Lookup() = false during concurrent reads")
					return
				}
			}
		}()
	}
	wg.Wait()
}
