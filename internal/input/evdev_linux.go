//go:build linux

package input

import (
	"fmt"
	"time"
	"unsafe"

	"golang.org/x/sys/unix"
)

// rawEvent mirrors struct input_event for the running architecture.
type rawEvent struct {
	Time  unix.Timeval
	Type  uint16
	Code  uint16
	Value int32
}

const rawEventSize = int(unsafe.Sizeof(rawEvent{}))

// readBatch is the number of events fetched per read(2).
const readBatch = 64

// EvdevDevice is an input device node opened in non-blocking mode.
type EvdevDevice struct {
	fd   int
	path string
	name string
	caps Capabilities
	buf  []rawEvent
}

// OpenDevice opens path non-blocking and queries its name and capabilities.
func OpenDevice(path string) (Device, error) {
	fd, err := unix.Open(path, unix.O_RDONLY|unix.O_NONBLOCK|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	name, err := ioctlGetName(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("read name of %s: %w", path, err)
	}

	caps, err := ioctlGetCapabilities(fd)
	if err != nil {
		unix.Close(fd)
		return nil, fmt.Errorf("read capabilities of %s: %w", path, err)
	}

	return &EvdevDevice{
		fd:   fd,
		path: path,
		name: name,
		caps: caps,
		buf:  make([]rawEvent, readBatch),
	}, nil
}

func (d *EvdevDevice) Name() string {
	return d.name
}

func (d *EvdevDevice) Path() string {
	return d.path
}

func (d *EvdevDevice) Capabilities() Capabilities {
	return d.caps
}

// ReadEvents reads until the kernel reports EAGAIN.
func (d *EvdevDevice) ReadEvents() ([]Event, error) {
	if d.fd < 0 {
		return nil, fmt.Errorf("read %s: device closed", d.path)
	}

	raw := unsafe.Slice((*byte)(unsafe.Pointer(&d.buf[0])), len(d.buf)*rawEventSize)

	var events []Event
	for {
		n, err := unix.Read(d.fd, raw)
		if err == unix.EAGAIN || err == unix.EWOULDBLOCK {
			return events, nil
		}
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			return events, fmt.Errorf("read %s: %w", d.path, err)
		}
		if n < rawEventSize {
			return events, nil
		}
		for _, ev := range d.buf[:n/rawEventSize] {
			events = append(events, Event{
				Time:  time.Unix(int64(ev.Time.Sec), int64(ev.Time.Usec)*1000),
				Type:  ev.Type,
				Code:  ev.Code,
				Value: ev.Value,
			})
		}
	}
}

// Close releases the file descriptor.
func (d *EvdevDevice) Close() error {
	if d.fd < 0 {
		return nil
	}
	err := unix.Close(d.fd)
	d.fd = -1
	return err
}

// ioctl encoding from linux/ioctl.h.
func ioc(dir, typ, nr, size uintptr) uintptr {
	const (
		iocNRBits   = 8
		iocTypeBits = 8
		iocSizeBits = 14

		iocNRShift   = 0
		iocTypeShift = iocNRShift + iocNRBits
		iocSizeShift = iocTypeShift + iocTypeBits
		iocDirShift  = iocSizeShift + iocSizeBits
	)
	return (dir << iocDirShift) | (typ << iocTypeShift) | (nr << iocNRShift) | (size << iocSizeShift)
}

const iocRead = 2

func evioCGName(size int) uintptr { return ioc(iocRead, 'E', 0x06, uintptr(size)) }
func evioCGBit(ev, size int) uintptr {
	return ioc(iocRead, 'E', 0x20+uintptr(ev), uintptr(size))
}

func ioctl(fd int, req uintptr, buf []byte) error {
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, uintptr(fd), req, uintptr(unsafe.Pointer(&buf[0])))
	if errno != 0 {
		return errno
	}
	return nil
}

func ioctlGetName(fd int) (string, error) {
	buf := make([]byte, 256)
	if err := ioctl(fd, evioCGName(len(buf)), buf); err != nil {
		return "", err
	}
	return unix.ByteSliceToString(buf), nil
}

// ioctlGetCapabilities reads the event type bitmap, then the code bitmap of
// every advertised type except EV_SYN.
func ioctlGetCapabilities(fd int) (Capabilities, error) {
	// KEY_MAX is 0x2ff, the largest code space.
	const codeBytes = 0x300 / 8

	typeBits := make([]byte, EvMax/8+1)
	if err := ioctl(fd, evioCGBit(0, len(typeBits)), typeBits); err != nil {
		return nil, err
	}

	caps := make(Capabilities)
	for _, typ := range bitsSet(typeBits) {
		if typ == EvSyn {
			continue
		}
		codeBits := make([]byte, codeBytes)
		if err := ioctl(fd, evioCGBit(int(typ), len(codeBits)), codeBits); err != nil {
			return nil, fmt.Errorf("type %#x: %w", typ, err)
		}
		caps[typ] = bitsSet(codeBits)
	}
	return caps, nil
}
