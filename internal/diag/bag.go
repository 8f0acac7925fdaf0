package diag

import (
	"fmt"
	"sort"
)

// Bag collects diagnostics up to a limit.
type Bag struct {
	items []*Diagnostic
	max   int
}

// NewBag creates a bag that holds at most max diagnostics; max <= 0 means
// unlimited.
func NewBag(max int) *Bag {
	capHint := max
	if capHint <= 0 || capHint > 64 {
		capHint = 64
	}
	return &Bag{
		items: make([]*Diagnostic, 0, capHint),
		max:   max,
	}
}

// Add добавляет диагностику, учитывая лимит.
// Возвращает false, если диагностика не добавлена (достигнут лимит).
func (b *Bag) Add(d *Diagnostic) bool {
	if b.Full() {
		return false
	}
	b.items = append(b.items, d)
	return true
}

// Full reports whether the bag reached its limit.
func (b *Bag) Full() bool {
	return b.max > 0 && len(b.items) >= b.max
}

// HasErrors возвращает true, если есть хотя бы одна диагностика уровня
// Error или выше.
func (b *Bag) HasErrors() bool {
	for _, d := range b.items {
		if d.Level() >= Error {
			return true
		}
	}
	return false
}

// HasWarnings возвращает true, если есть хотя бы одна диагностика уровня
// Warning или выше.
func (b *Bag) HasWarnings() bool {
	for _, d := range b.items {
		if d.Level() >= Warning {
			return true
		}
	}
	return false
}

func (b *Bag) Len() int {
	return len(b.items)
}

// Items возвращает read-only slice диагностик.
// ВАЖНО: не модифицируйте возвращаемый срез.
func (b *Bag) Items() []*Diagnostic {
	return b.items
}

// Merge объединяет диагностики из другого Bag.
// Увеличивает лимит, если нужно вместить все элементы.
func (b *Bag) Merge(other *Bag) {
	newTotal := len(b.items) + len(other.items)
	if b.max > 0 && newTotal > b.max {
		b.max = newTotal
	}
	b.items = append(b.items, other.items...)
}

// Sort сортирует диагностики по: location, severity (desc), id (asc)
// для стабильного и детерминированного порядка вывода.
func (b *Bag) Sort() {
	sort.SliceStable(b.items, func(i, j int) bool {
		di, dj := b.items[i], b.items[j]
		if di.Loc != dj.Loc {
			return di.Loc < dj.Loc
		}
		if di.Level() != dj.Level() {
			return di.Level() > dj.Level()
		}
		return di.ID < dj.ID
	})
}

// Dedup удаляет повторы по ID+Loc+Args.
func (b *Bag) Dedup() {
	seen := make(map[string]bool, len(b.items))
	kept := b.items[:0]
	for _, d := range b.items {
		key := fmt.Sprintf("%d:%d:%v", d.ID, d.Loc, d.Args)
		if seen[key] {
			continue
		}
		seen[key] = true
		kept = append(kept, d)
	}
	b.items = kept
}
