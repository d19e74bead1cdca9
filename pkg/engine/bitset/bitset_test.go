package bitset

import "testing"

type flag uint16

func TestSet_SetTestClear(t *testing.T) {
	var s Set[flag]
	if !s.Empty() {
		t.Fatal("zero Set is not empty")
	}
	for _, f := range []flag{0, 63, 64, 200, 255} {
		s.Set(f)
		if !s.Test(f) {
			t.Errorf("Test(%d) = false after Set", f)
		}
	}
	if s.Count() != 5 {
		t.Errorf("Count() = %d, want 5", s.Count())
	}
	s.Clear(64)
	if s.Test(64) {
		t.Error("Test(64) = true after Clear")
	}
	if s.Test(65) {
		t.Error("Test(65) = true, never set")
	}
}

func TestSet_EachAscending(t *testing.T) {
	var s Set[flag]
	for _, f := range []flag{130, 2, 70} {
		s.Set(f)
	}
	var got []flag
	s.Each(func(f flag) { got = append(got, f) })
	want := []flag{2, 70, 130}
	if len(got) != len(want) {
		t.Fatalf("Each visited %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Each visited %v, want %v", got, want)
			break
		}
	}
}

func TestSet_Union(t *testing.T) {
	var a, b Set[flag]
	a.Set(1)
	b.Set(100)
	u := a.Union(b)
	if !u.Test(1) || !u.Test(100) {
		t.Errorf("Union missing bits: %v", u)
	}
	if a.Test(100) {
		t.Error("Union mutated receiver")
	}
}

func TestSet_OutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Set(Capacity) did not panic")
		}
	}()
	var s Set[flag]
	s.Set(Capacity)
}
