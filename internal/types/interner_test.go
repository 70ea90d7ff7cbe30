package types

import (
	"sync"
	"testing"
)

func TestInternerSeedsPredefined(t *testing.T) {
	in := NewInterner()
	if got, want := in.Len(), 2*len(Predefined); got != want {
		t.Fatalf("expected %d seeded descriptors, got %d", want, got)
	}
	for _, w := range Predefined {
		for _, d := range []Descriptor{MakeInt(w), MakeUint(w)} {
			id, ok := in.Find(d)
			if !ok || id == NoTypeID {
				t.Fatalf("%s not seeded", d)
			}
		}
	}
}

func TestInternerDeduplicatesDescriptors(t *testing.T) {
	in := NewInterner()
	a, created := in.Intern(MakeUint(24))
	if !created {
		t.Fatalf("first intern of uint24 should create")
	}
	b, created := in.Intern(MakeUint(24))
	if created || a != b {
		t.Fatalf("uint24 should be deduplicated, got %d and %d", a, b)
	}
	if c, _ := in.Intern(MakeInt(24)); c == a {
		t.Fatalf("signedness must affect identity")
	}
	if got, ok := in.Find(MakeUint(24)); !ok || got != a {
		t.Fatalf("find returned %v, %v", got, ok)
	}
}

func TestInternerRejectsInvalid(t *testing.T) {
	in := NewInterner()
	if id, _ := in.Intern(MakeInt(0)); id != NoTypeID {
		t.Fatalf("zero width must not intern, got %d", id)
	}
	if id, _ := in.Intern(Descriptor{Width: 8}); id != NoTypeID {
		t.Fatalf("invalid kind must not intern, got %d", id)
	}
	if _, ok := in.Find(MakeInt(0)); ok {
		t.Fatalf("rejected descriptor must not be found")
	}
}

func TestInternerConcurrentIntern(t *testing.T) {
	in := NewInterner()
	const workers = 16
	ids := make([]TypeID, workers)
	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids[i], _ = in.Intern(MakeInt(12))
		}()
	}
	wg.Wait()
	for _, id := range ids[1:] {
		if id != ids[0] {
			t.Fatalf("concurrent interning produced distinct ids %v", ids)
		}
	}
}

func TestParseName(t *testing.T) {
	cases := []struct {
		in   string
		want Descriptor
		ok   bool
	}{
		{"int8", MakeInt(8), true},
		{"uint256", MakeUint(256), true},
		{" UINT24 ", MakeUint(24), true},
		{"int0", Descriptor{}, false},
		{"int-8", Descriptor{}, false},
		{"int", Descriptor{}, false},
		{"byte", Descriptor{}, false},
	}
	for _, tc := range cases {
		got, ok := ParseName(tc.in)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseName(%q) = %v, %v; want %v, %v", tc.in, got, ok, tc.want, tc.ok)
		}
	}
}
