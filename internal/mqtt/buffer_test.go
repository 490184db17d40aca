package mqtt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func payloads(msgs []bufferedMsg) []byte {
	out := make([]byte, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, m.payload[0])
	}
	return out
}

func TestRingBufferEmptyDrain(t *testing.T) {
	rb := newRingBuffer(10)
	assert.Nil(t, rb.drainAll())
}

func TestRingBufferPushAndDrain(t *testing.T) {
	rb := newRingBuffer(10)
	for i := 0; i < 5; i++ {
		rb.push(bufferedMsg{topic: Topic, payload: []byte{byte(i)}})
	}

	assert.Equal(t, []byte{0, 1, 2, 3, 4}, payloads(rb.drainAll()))
	assert.Nil(t, rb.drainAll(), "second drain is empty")
}

func TestRingBufferOverflowKeepsNewest(t *testing.T) {
	rb := newRingBuffer(5)
	for i := 0; i < 8; i++ {
		rb.push(bufferedMsg{topic: Topic, payload: []byte{byte(i)}})
	}

	assert.Equal(t, 5, rb.len())
	assert.Equal(t, 3, rb.dropped)
	assert.Equal(t, []byte{3, 4, 5, 6, 7}, payloads(rb.drainAll()))
	assert.Equal(t, 0, rb.dropped, "drop count resets on drain")
}

func TestRingBufferMultipleCycles(t *testing.T) {
	rb := newRingBuffer(5)

	for i := 0; i < 3; i++ {
		rb.push(bufferedMsg{topic: Topic, payload: []byte{byte(i)}})
	}
	require.Len(t, rb.drainAll(), 3)

	for i := 10; i < 14; i++ {
		rb.push(bufferedMsg{topic: Topic, payload: []byte{byte(i)}})
	}
	assert.Equal(t, []byte{10, 11, 12, 13}, payloads(rb.drainAll()))
}

func TestRingBufferDrainIsACopy(t *testing.T) {
	rb := newRingBuffer(2)
	rb.push(bufferedMsg{topic: Topic, payload: []byte{1}})
	got := rb.drainAll()

	rb.push(bufferedMsg{topic: Topic, payload: []byte{2}})

	assert.Equal(t, []byte{1}, payloads(got))
}

func TestRingBufferPreservesFields(t *testing.T) {
	rb := newRingBuffer(10)
	rb.push(bufferedMsg{
		topic:    TopicSystem,
		payload:  []byte(`{"test":true}`),
		qos:      1,
		retained: true,
	})

	got := rb.drainAll()
	require.Len(t, got, 1)
	assert.Equal(t, TopicSystem, got[0].topic)
	assert.Equal(t, `{"test":true}`, string(got[0].payload))
	assert.Equal(t, byte(1), got[0].qos)
	assert.True(t, got[0].retained)
}
