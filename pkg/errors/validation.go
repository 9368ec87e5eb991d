package errors

// CheckIndex validates a positional index against a collection of length n.
// Negative indexes count from the end. It returns the normalized index.
func CheckIndex(owner string, i, n int) (int, error) {
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, New(ErrCodeOutOfBounds, "index %d out of bounds on %s containing %d objects", i, owner, n)
	}
	return i, nil
}

// CheckSlice validates a bounded slice [start:stop) against a collection of
// length n and the number of replacement values supplied for it.
func CheckSlice(owner string, start, stop, n, supplied int) error {
	if start < 0 || stop > n || start > stop {
		return New(ErrCodeOutOfBounds, "slice [%d:%d] out of bounds on %s containing %d objects", start, stop, owner, n)
	}
	if expected := stop - start; supplied != expected {
		return New(ErrCodeShapeMismatch, "expected a list of %d objects to set on the %s to match the supplied slice, got %d", expected, owner, supplied)
	}
	return nil
}
