package diff

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ChangeKind classifies a Change.
type ChangeKind int

const (
	Unchanged ChangeKind = iota
	Added
	Removed
	Modified
)

// String returns the lower-case kind name.
func (k ChangeKind) String() string {
	switch k {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	case Modified:
		return "modified"
	default:
		return fmt.Sprintf("ChangeKind(%d)", int(k))
	}
}

// MarshalText encodes the kind by name.
func (k ChangeKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Change is the comparison result at one path. Values are rendered as
// compact JSON. Old is empty for Added, New is empty for Removed, and both
// hold the same value for Unchanged.
type Change struct {
	Kind ChangeKind `json:"kind" yaml:"kind"`
	Path string     `json:"path" yaml:"path"`
	Old  string     `json:"old,omitempty" yaml:"old,omitempty"`
	New  string     `json:"new,omitempty" yaml:"new,omitempty"`
}

func (c Change) String() string {
	switch c.Kind {
	case Added:
		return fmt.Sprintf("+ %s %s", c.Path, c.New)
	case Removed:
		return fmt.Sprintf("- %s %s", c.Path, c.Old)
	case Modified:
		return fmt.Sprintf("~ %s %s -> %s", c.Path, c.Old, c.New)
	default:
		return fmt.Sprintf("  %s %s", c.Path, c.Old)
	}
}

// Diff compares before with after.
func Diff(before, after Value) []Change {
	var changes []Change
	walk(nil, before, after, &changes)
	return changes
}

// DiffAsCreate compares a placeholder before with after, reporting every
// modification as an addition of the new value.
func DiffAsCreate(before, after Value) []Change {
	changes := Diff(before, after)
	for i, c := range changes {
		if c.Kind == Modified {
			changes[i] = Change{Kind: Added, Path: c.Path, New: c.New}
		}
	}
	return changes
}

// HasChanges reports whether any change is not Unchanged.
func HasChanges(changes []Change) bool {
	for _, c := range changes {
		if c.Kind != Unchanged {
			return true
		}
	}
	return false
}

// Records converts before and after through their JSON encoding and diffs
// them. When asCreate is set the result is that of DiffAsCreate.
func Records(before, after interface{}, asCreate bool) ([]Change, error) {
	b, err := FromRecord(before)
	if err != nil {
		return nil, err
	}
	a, err := FromRecord(after)
	if err != nil {
		return nil, err
	}
	if asCreate {
		return DiffAsCreate(b, a), nil
	}
	return Diff(b, a), nil
}

func walk(path []string, before, after Value, changes *[]Change) {
	switch {
	case before.kind == KindObject && after.kind == KindObject:
		if before.Len() == 0 && after.Len() == 0 {
			emitUnchanged(path, before, changes)
			return
		}
		for _, key := range unionKeys(before, after) {
			b, inBefore := before.fields[key]
			a, inAfter := after.fields[key]
			child := append(path[:len(path):len(path)], key)
			switch {
			case inBefore && inAfter:
				walk(child, b, a, changes)
			case inBefore:
				*changes = append(*changes, Change{Kind: Removed, Path: joinPath(child), Old: b.String()})
			default:
				*changes = append(*changes, Change{Kind: Added, Path: joinPath(child), New: a.String()})
			}
		}

	case before.kind == KindArray && after.kind == KindArray:
		if before.Len() == 0 && after.Len() == 0 {
			emitUnchanged(path, before, changes)
			return
		}
		n := max(len(before.items), len(after.items))
		for i := 0; i < n; i++ {
			child := append(path[:len(path):len(path)], strconv.Itoa(i))
			switch {
			case i < len(before.items) && i < len(after.items):
				walk(child, before.items[i], after.items[i], changes)
			case i < len(before.items):
				*changes = append(*changes, Change{Kind: Removed, Path: joinPath(child), Old: before.items[i].String()})
			default:
				*changes = append(*changes, Change{Kind: Added, Path: joinPath(child), New: after.items[i].String()})
			}
		}

	case before.Equal(after):
		emitUnchanged(path, before, changes)

	case before.IsNull():
		*changes = append(*changes, Change{Kind: Added, Path: joinPath(path), New: after.String()})

	default:
		*changes = append(*changes, Change{
			Kind: Modified,
			Path: joinPath(path),
			Old:  before.String(),
			New:  after.String(),
		})
	}
}

func emitUnchanged(path []string, v Value, changes *[]Change) {
	s := v.String()
	*changes = append(*changes, Change{Kind: Unchanged, Path: joinPath(path), Old: s, New: s})
}

func unionKeys(a, b Value) []string {
	keys := a.Keys()
	for _, k := range b.Keys() {
		if _, ok := a.fields[k]; !ok {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys
}

func joinPath(path []string) string {
	return strings.Join(path, ".")
}
