package input

// FakeDevice is a test double that returns scripted event batches.
type FakeDevice struct {
	DeviceName string
	DevicePath string
	Caps       Capabilities

	// Batches contains scripted results. Each ReadEvents call consumes the
	// next batch; once exhausted, ReadEvents returns no events.
	Batches [][]Event

	index int

	// ReadError, if set, will be returned by ReadEvents.
	ReadError error

	// Reads counts ReadEvents calls.
	Reads int

	// Closed tracks if Close was called.
	Closed bool
}

// NewFakeDevice creates a FakeDevice with the given identity.
func NewFakeDevice(name, path string, caps Capabilities) *FakeDevice {
	return &FakeDevice{DeviceName: name, DevicePath: path, Caps: caps}
}

func (f *FakeDevice) Name() string {
	return f.DeviceName
}

func (f *FakeDevice) Path() string {
	return f.DevicePath
}

func (f *FakeDevice) Capabilities() Capabilities {
	return f.Caps
}

// ReadEvents returns the next scripted batch.
func (f *FakeDevice) ReadEvents() ([]Event, error) {
	f.Reads++
	if f.ReadError != nil {
		return nil, f.ReadError
	}
	if f.index >= len(f.Batches) {
		return nil, nil
	}
	batch := f.Batches[f.index]
	f.index++
	return batch, nil
}

// Close marks the device as closed.
func (f *FakeDevice) Close() error {
	f.Closed = true
	return nil
}

// Touch returns a typical single-finger report: position, pressure and SYN_REPORT.
func Touch(x, y int32) []Event {
	return []Event{
		{Type: EvAbs, Code: AbsMtPositionX, Value: x},
		{Type: EvAbs, Code: AbsMtPositionY, Value: y},
		{Type: EvAbs, Code: AbsX, Value: x},
		{Type: EvAbs, Code: AbsY, Value: y},
		{Type: EvSyn},
	}
}
