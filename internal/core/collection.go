package core

// Record is any entry stored in one of the document's collections.
type Record interface {
	RecordID() string
}

// The collection helpers below are copy-on-write: they never touch the
// input slice, so a snapshot held by a rendering pass stays valid across
// mutations of the document.

// AppendRecord returns a new slice with r appended.
func AppendRecord[T Record](records []T, r T) []T {
	out := make([]T, len(records), len(records)+1)
	copy(out, records)
	return append(out, r)
}

// RemoveByID returns a new slice without the record carrying id. Removing
// an unknown id is a no-op that still returns a fresh slice.
func RemoveByID[T Record](records []T, id string) []T {
	out := make([]T, 0, len(records))
	for _, r := range records {
		if r.RecordID() == id {
			continue
		}
		out = append(out, r)
	}
	return out
}

// UpdateByID returns a new slice where the record carrying id has been
// replaced with fn applied to it. Other records are carried over as-is.
func UpdateByID[T Record](records []T, id string, fn func(T) T) []T {
	out := make([]T, len(records))
	for i, r := range records {
		if r.RecordID() == id {
			r = fn(r)
		}
		out[i] = r
	}
	return out
}

// FindByID returns the record carrying id, if present.
func FindByID[T Record](records []T, id string) (T, bool) {
	for _, r := range records {
		if r.RecordID() == id {
			return r, true
		}
	}
	var zero T
	return zero, false
}
