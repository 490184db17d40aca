package gpio

// FakeWriter is a test double that records every write.
type FakeWriter struct {
	// Writes contains the level of every successful Set call, in order.
	Writes []bool

	// CloseCount counts Close calls.
	CloseCount int

	// SetError, if set, will be returned by Set.
	SetError error

	// High is the current line level.
	High bool
}

// NewFakeWriter creates a FakeWriter with the line low, as after initialization.
func NewFakeWriter() *FakeWriter {
	return &FakeWriter{}
}

// Set records the write.
func (f *FakeWriter) Set(high bool) error {
	if f.SetError != nil {
		return f.SetError
	}
	f.Writes = append(f.Writes, high)
	f.High = high
	return nil
}

// Close records the release.
func (f *FakeWriter) Close() error {
	f.CloseCount++
	return nil
}

// Closed reports whether Close was called at least once.
func (f *FakeWriter) Closed() bool {
	return f.CloseCount > 0
}

// Count returns the number of writes at the given level.
func (f *FakeWriter) Count(high bool) int {
	n := 0
	for _, w := range f.Writes {
		if w == high {
			n++
		}
	}
	return n
}

// Reset clears recorded writes.
func (f *FakeWriter) Reset() {
	f.Writes = nil
	f.CloseCount = 0
	f.SetError = nil
	f.High = false
}
