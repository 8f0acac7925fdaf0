package source

import (
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestInternerBasic(t *testing.T) {
	in := NewInterner()

	// NoStringID зарезервирован за пустой строкой.
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Errorf("Lookup(NoStringID) = %q, ok=%v", s, ok)
	}
	if id := in.Intern(""); id != NoStringID {
		t.Errorf("Intern(\"\") = %d", id)
	}

	id1 := in.Intern("hello")
	if id1 == NoStringID {
		t.Error("non-empty string got NoStringID")
	}
	if id2 := in.Intern("hello"); id2 != id1 {
		t.Errorf("same string got two IDs: %d, %d", id1, id2)
	}
	if s, ok := in.Lookup(id1); !ok || s != "hello" {
		t.Errorf("Lookup = %q, ok=%v", s, ok)
	}
	if id3 := in.Intern("world"); id3 == id1 {
		t.Error("different strings share an ID")
	}
	if in.Len() != 3 { // "", "hello", "world"
		t.Errorf("Len = %d", in.Len())
	}
}

func TestInternerBytes(t *testing.T) {
	in := NewInterner()
	id1 := in.InternBytes([]byte("test"))
	id2 := in.Intern("test")
	if id1 != id2 {
		t.Errorf("InternBytes and Intern disagree: %d != %d", id1, id2)
	}

	// Изменение исходного буфера не должно влиять на интернированную копию.
	buf := []byte("original")
	id := in.InternBytes(buf)
	buf[0] = 'X'
	if s := in.MustLookup(id); s != "original" {
		t.Errorf("stored string mutated: %q", s)
	}
}

func TestInternerContains(t *testing.T) {
	in := NewInterner()
	if in.Contains("ghost") {
		t.Error("Contains reported an uninterned string")
	}
	in.Intern("ghost")
	if !in.Contains("ghost") {
		t.Error("Contains missed an interned string")
	}
	if in.Len() != 2 {
		t.Errorf("Contains must not intern, Len = %d", in.Len())
	}
}

func TestInternerMustLookupPanics(t *testing.T) {
	in := NewInterner()
	defer func() {
		if recover() == nil {
			t.Error("MustLookup must panic on an invalid ID")
		}
	}()
	in.MustLookup(StringID(9999))
}

func TestInternerStats(t *testing.T) {
	in := NewInterner()
	in.Intern("alpha")
	in.Intern("alpha")
	in.Intern("beta")

	s := in.Stats()
	if s.Misses != 2 {
		t.Errorf("Misses = %d", s.Misses)
	}
	if s.Hits != 1 {
		t.Errorf("Hits = %d", s.Hits)
	}
	if s.Count != 3 {
		t.Errorf("Count = %d", s.Count)
	}
	if s.Bytes != uint64(len("alpha")+1+len("beta")+1) {
		t.Errorf("Bytes = %d", s.Bytes)
	}
	// Средняя длина считается по двум вставленным строкам: (5+4)/2.
	if s.AvgLength != 4.5 {
		t.Errorf("AvgLength = %g", s.AvgLength)
	}
	if s.Collisions != 0 {
		t.Errorf("Collisions = %d, однопоточный прогон гонок не создаёт", s.Collisions)
	}

	in.Clear()
	s = in.Stats()
	if s.AvgLength != 0 || s.Bytes != 0 || s.Count != 1 {
		t.Errorf("stats after Clear = %+v", s)
	}
}

func TestInternerClear(t *testing.T) {
	in := NewInterner()
	in.Intern("gone")
	in.Clear()
	if in.Len() != 1 {
		t.Errorf("Len after Clear = %d", in.Len())
	}
	if in.Contains("gone") {
		t.Error("Clear kept a string")
	}
	// Повторная вставка после Clear работает с нуля.
	if id := in.Intern("fresh"); id != StringID(1) {
		t.Errorf("first ID after Clear = %d", id)
	}
}

func TestInternerHugeString(t *testing.T) {
	in := NewInterner()
	huge := strings.Repeat("x", 600*1024)
	id := in.Intern(huge)
	if s := in.MustLookup(id); s != huge {
		t.Error("huge string did not round-trip")
	}
}

func TestInternerConcurrentIntern(t *testing.T) {
	in := NewInterner()
	const numGoroutines = 50
	const numStrings = 500

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	// Все горутины интернируют один и тот же набор строк.
	for range numGoroutines {
		go func() {
			defer wg.Done()
			for i := range numStrings {
				in.Intern(fmt.Sprintf("string_%d", i))
			}
		}()
	}
	wg.Wait()

	if in.Len() != numStrings+1 {
		t.Errorf("Len = %d, want %d", in.Len(), numStrings+1)
	}
	seen := make(map[StringID]bool)
	for i := range numStrings {
		s := fmt.Sprintf("string_%d", i)
		id := in.Intern(s)
		if seen[id] {
			t.Fatalf("duplicate ID %d for %q", id, s)
		}
		seen[id] = true
		if got := in.MustLookup(id); got != s {
			t.Fatalf("Lookup(%d) = %q, want %q", id, got, s)
		}
	}
}

func TestInternerConcurrentMixed(t *testing.T) {
	in := NewInterner()
	const numGoroutines = 40

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for g := range numGoroutines {
		go func() {
			defer wg.Done()
			if g%2 == 0 {
				for i := range 500 {
					in.Intern(fmt.Sprintf("str_%d", i%100))
				}
			} else {
				for i := range 500 {
					id := StringID(i % 50)
					if in.Has(id) {
						in.Lookup(id)
					}
					in.Len()
				}
			}
		}()
	}
	wg.Wait()
}

func BenchmarkInternerIntern(b *testing.B) {
	in := NewInterner()
	strs := make([]string, 1000)
	for i := range strs {
		strs[i] = fmt.Sprintf("benchmark_string_%d", i)
	}
	b.ResetTimer()
	for i := range b.N {
		in.Intern(strs[i%len(strs)])
	}
}

func BenchmarkInternerConcurrentLookupHeavy(b *testing.B) {
	in := NewInterner()
	strs := make([]string, 100)
	for i := range strs {
		strs[i] = fmt.Sprintf("string_%d", i)
		in.Intern(strs[i])
	}
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			in.Intern(strs[i%len(strs)])
			i++
		}
	})
}
