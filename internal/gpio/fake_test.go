package gpio

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Writer = (*FakeWriter)(nil)
var _ Writer = (*RealWriter)(nil)
var _ Writer = (*RPIOWriter)(nil)

func TestFakeWriterSet(t *testing.T) {
	f := NewFakeWriter()
	assert.False(t, f.High, "line starts low")

	require.NoError(t, f.Set(true))
	require.NoError(t, f.Set(true))
	require.NoError(t, f.Set(false))

	assert.Equal(t, []bool{true, true, false}, f.Writes)
	assert.False(t, f.High)
	assert.Equal(t, 2, f.Count(true))
	assert.Equal(t, 1, f.Count(false))
}

func TestFakeWriterError(t *testing.T) {
	f := NewFakeWriter()
	f.SetError = errors.New("simulated error")

	err := f.Set(true)
	require.EqualError(t, err, "simulated error")
	assert.Empty(t, f.Writes, "failed writes are not recorded")
	assert.False(t, f.High)
}

func TestFakeWriterClose(t *testing.T) {
	f := NewFakeWriter()
	assert.False(t, f.Closed())

	require.NoError(t, f.Close())
	require.NoError(t, f.Close())

	assert.True(t, f.Closed())
	assert.Equal(t, 2, f.CloseCount)
}

func TestFakeWriterReset(t *testing.T) {
	f := NewFakeWriter()
	f.Set(true)
	f.Close()
	f.SetError = errors.New("x")

	f.Reset()

	assert.Nil(t, f.Writes)
	assert.False(t, f.Closed())
	assert.NoError(t, f.Set(false))
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "HIGH", levelString(true))
	assert.Equal(t, "LOW", levelString(false))
}

func TestDefaultPin(t *testing.T) {
	assert.Equal(t, 24, DefaultPin)
}
