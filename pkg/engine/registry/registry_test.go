package registry

import (
	"strings"
	"testing"

	"wasteland/pkg/engine/debug"
)

type thing struct {
	Name string
}

func newThings() *Registry[thing] {
	return New("thing", "x_null", func() thing { return thing{Name: "nothing"} })
}

func TestRegistry_NullSentinel(t *testing.T) {
	r := newThings()
	if r.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", r.Len())
	}
	if got := r.Get(0).Name; got != "nothing" {
		t.Errorf("Get(0).Name = %q, want %q", got, "nothing")
	}
	if i, ok := r.Find("x_null"); !ok || i != 0 {
		t.Errorf("Find(x_null) = %d, %v, want 0, true", i, ok)
	}
}

func TestRegistry_InsertAndReplace(t *testing.T) {
	r := newThings()
	a, err := r.Insert("x_a", thing{Name: "a"})
	if err != nil || a != 1 {
		t.Fatalf("Insert(x_a) = %d, %v, want 1, nil", a, err)
	}
	stop := debug.Capture()
	again, _ := r.Insert("x_a", thing{Name: "a2"})
	msgs := stop()
	if len(msgs) != 1 || !strings.Contains(msgs[0], `duplicate thing id "x_a"`) {
		t.Errorf("diagnostics = %v, want one duplicate report", msgs)
	}
	if again != a {
		t.Errorf("re-Insert index = %d, want %d", again, a)
	}
	if r.Get(a).Name != "a2" {
		t.Errorf("Get(%d).Name = %q, want a2", a, r.Get(a).Name)
	}
	if r.ID(a) != "x_a" {
		t.Errorf("ID(%d) = %q, want x_a", a, r.ID(a))
	}
}

func TestRegistry_LookupUnknownReportsAndReturnsNull(t *testing.T) {
	r := newThings()
	stop := debug.Capture()
	i := r.Lookup("x_missing")
	msgs := stop()
	if i != 0 {
		t.Errorf("Lookup(x_missing) = %d, want 0", i)
	}
	if len(msgs) != 1 {
		t.Errorf("diagnostics = %v, want one", msgs)
	}
}

func TestRegistry_GetOutOfRange(t *testing.T) {
	r := newThings()
	stop := debug.Capture()
	got := r.Get(99)
	stop()
	if got != r.Get(0) {
		t.Error("Get(99) did not return the null sentinel")
	}
}

func TestRegistry_FinalizeRejectsInsert(t *testing.T) {
	r := newThings()
	r.Finalize()
	if _, err := r.Insert("x_b", thing{}); err == nil {
		t.Error("Insert after Finalize error = nil, want error")
	}
	r.Reset()
	if r.Frozen() {
		t.Error("Frozen() = true after Reset")
	}
	if _, err := r.Insert("x_b", thing{}); err != nil {
		t.Errorf("Insert after Reset error = %v", err)
	}
}
