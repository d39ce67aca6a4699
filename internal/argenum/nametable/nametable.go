// Package nametable builds the spelling table of one enum: for every member
// an ordered list of accepted spellings whose position 0 is the canonical
// (rendered) spelling, plus a declaration-ordered lookup from every accepted
// spelling to its owning member. Matching is ASCII case-insensitive, so the
// lookup is keyed by folded spellings.
package nametable

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"
)

// Table records accepted spellings for the members of one enum in
// declaration order.
type Table[T comparable] struct {
	members   []T
	spellings map[T][]string
	lookup    *linkedhashmap.Map // folded spelling -> T
}

// New creates an empty [Table].
func New[T comparable]() *Table[T] {
	return &Table[T]{
		spellings: make(map[T][]string),
		lookup:    linkedhashmap.New(),
	}
}

// Add appends a new member with its canonical spelling. If the spelling is
// already taken under case folding, it reports the owning member and true.
func (t *Table[T]) Add(m T, canonical string) (T, bool) {
	if owner, collided := t.claim(m, canonical); collided {
		return owner, true
	}

	t.members = append(t.members, m)
	t.spellings[m] = []string{canonical}

	var zero T
	return zero, false
}

// AddAlias appends an extra accepted spelling for the member. Aliases are
// recognized for parsing only, never for rendering. If the spelling is
// already taken under case folding, it reports the owning member and true.
func (t *Table[T]) AddAlias(m T, alias string) (T, bool) {
	if owner, collided := t.claim(m, alias); collided {
		return owner, true
	}

	t.spellings[m] = append(t.spellings[m], alias)

	var zero T
	return zero, false
}

// Rename replaces the member's canonical spelling. The previous canonical
// spelling is dropped entirely: it is no longer accepted for parsing unless
// re-added as an alias. Renaming twice keeps the last name. If the new
// spelling is already taken under case folding, it reports the owning
// member and true.
func (t *Table[T]) Rename(m T, name string) (T, bool) {
	old := t.spellings[m][0]
	t.lookup.Remove(fold(old))

	if owner, collided := t.claim(m, name); collided {
		// Keep the table consistent even though the caller aborts.
		t.lookup.Put(fold(old), m)
		return owner, true
	}

	t.spellings[m][0] = name

	var zero T
	return zero, false
}

// claim records the spelling as owned by the member. It fails when another
// spelling folds to the same key.
func (t *Table[T]) claim(m T, spelling string) (T, bool) {
	key := fold(spelling)
	if owner, ok := t.lookup.Get(key); ok {
		return owner.(T), true
	}

	t.lookup.Put(key, m)

	var zero T
	return zero, false
}

// Members returns the members in declaration order.
func (t *Table[T]) Members() []T { return t.members }

// Len returns the member count.
func (t *Table[T]) Len() int { return len(t.members) }

// Spellings returns the member's accepted spellings: the canonical spelling
// first, then its aliases in attachment order.
func (t *Table[T]) Spellings(m T) []string { return t.spellings[m] }

// Canonical returns the member's canonical spelling.
func (t *Table[T]) Canonical(m T) string { return t.spellings[m][0] }

// All returns every accepted spelling in declaration order: member order,
// and within one member the canonical spelling before its aliases. Its
// length is the member count plus the alias count.
func (t *Table[T]) All() []string {
	var all []string
	for _, m := range t.members {
		all = append(all, t.spellings[m]...)
	}
	return all
}

// Owners returns the owning member of every accepted spelling, parallel to
// [All].
func (t *Table[T]) Owners() []T {
	var owners []T
	for _, m := range t.members {
		for range t.spellings[m] {
			owners = append(owners, m)
		}
	}
	return owners
}

// Lookup finds the member owning the spelling under ASCII case folding.
func (t *Table[T]) Lookup(spelling string) (T, bool) {
	owner, ok := t.lookup.Get(fold(spelling))
	if !ok {
		var zero T
		return zero, false
	}
	return owner.(T), true
}

// fold lowercases ASCII letters only. Non-ASCII runes are kept verbatim so
// that two spellings differing in a non-ASCII rune stay distinct, matching
// the generated matcher.
func fold(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'A' <= c && c <= 'Z' {
			b[i] = c + 'a' - 'A'
		}
	}
	return string(b)
}
