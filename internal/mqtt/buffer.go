package mqtt

import "github.com/rs/zerolog/log"

// bufferedMsg is a serialized message waiting for the broker.
type bufferedMsg struct {
	topic    string
	payload  []byte
	qos      byte
	retained bool
}

// ringBuffer keeps the most recent messages produced while disconnected.
// Not safe for concurrent use; RealPublisher holds its mutex around every call.
type ringBuffer struct {
	msgs     []bufferedMsg
	capacity int
	dropped  int // messages lost since the last drain
}

func newRingBuffer(capacity int) *ringBuffer {
	return &ringBuffer{
		msgs:     make([]bufferedMsg, 0, capacity),
		capacity: capacity,
	}
}

// push appends msg, evicting the oldest message when full.
func (r *ringBuffer) push(msg bufferedMsg) {
	if len(r.msgs) == r.capacity {
		if r.dropped == 0 {
			log.Warn().Msgf("mqtt: buffer full (%d messages), dropping oldest", r.capacity)
		}
		r.dropped++
		copy(r.msgs, r.msgs[1:])
		r.msgs = r.msgs[:len(r.msgs)-1]
	}
	r.msgs = append(r.msgs, msg)
}

// drainAll returns buffered messages oldest first and empties the buffer.
func (r *ringBuffer) drainAll() []bufferedMsg {
	if len(r.msgs) == 0 {
		return nil
	}
	out := make([]bufferedMsg, len(r.msgs))
	copy(out, r.msgs)
	r.msgs = r.msgs[:0]
	r.dropped = 0
	return out
}

func (r *ringBuffer) len() int {
	return len(r.msgs)
}
