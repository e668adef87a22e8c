package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Source(t *testing.T) {
	t.Run("only one source per wire", func(t *testing.T) {
		w := NewBit()
		_, err := w.Source()
		require.NoError(t, err)

		_, err = w.Source()
		assert.ErrorIs(t, err, ErrSourceClaimed)
	})

	t.Run("set updates the retained value", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)

		src.Set(0x42)
		assert.Equal(t, uint8(0x42), w.Value())
	})
}

func Test_Subscribe(t *testing.T) {
	t.Run("sink immediately observes the current value", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)
		src.Set(0xAB)

		var got []uint8
		w.Subscribe(func(v uint8) { got = append(got, v) })
		assert.Equal(t, []uint8{0xAB}, got)
	})

	t.Run("delivery in registration order", func(t *testing.T) {
		w := NewBit()
		src, err := w.Source()
		require.NoError(t, err)

		var order []int
		w.Subscribe(func(bool) { order = append(order, 1) })
		w.Subscribe(func(bool) { order = append(order, 2) })
		w.Subscribe(func(bool) { order = append(order, 3) })
		order = order[:0]

		src.Set(true)
		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("idempotent writes still deliver", func(t *testing.T) {
		w := NewBit()
		src, err := w.Source()
		require.NoError(t, err)

		count := 0
		w.Subscribe(func(bool) { count++ })
		src.Set(false)
		src.Set(false)
		assert.Equal(t, 3, count) // initial delivery + two writes
	})

	t.Run("cancelled sink stops receiving", func(t *testing.T) {
		w := NewBit()
		src, err := w.Source()
		require.NoError(t, err)

		count := 0
		sub := w.Subscribe(func(bool) { count++ })
		sub.Cancel()
		src.Set(true)
		assert.Equal(t, 1, count)
	})
}

func Test_ConnectTo(t *testing.T) {
	w := NewBit()
	src, err := w.Source()
	require.NoError(t, err)

	var got bool
	src.ConnectTo(func(v bool) { got = v })
	src.Set(true)
	assert.True(t, got)
}

func Test_Port(t *testing.T) {
	t.Run("zero buffer rejected", func(t *testing.T) {
		w := NewByte()
		_, err := w.Port(0)
		assert.ErrorIs(t, err, ErrZeroBuffer)
	})

	t.Run("fifo delivery", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)

		port, err := w.Port(8)
		require.NoError(t, err)
		<-port.C() // initial value

		src.Set(1)
		src.Set(2)
		src.Set(3)
		assert.Equal(t, uint8(1), <-port.C())
		assert.Equal(t, uint8(2), <-port.C())
		assert.Equal(t, uint8(3), <-port.C())
	})

	t.Run("full buffer drops the oldest", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)

		port, err := w.Port(2)
		require.NoError(t, err)
		<-port.C()

		src.Set(1)
		src.Set(2)
		src.Set(3) // pushes 1 out
		assert.Equal(t, uint8(2), <-port.C())
		assert.Equal(t, uint8(3), <-port.C())
	})

	t.Run("drain keeps the newest value", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)

		port, err := w.Port(8)
		require.NoError(t, err)

		src.Set(7)
		src.Set(9)
		v, ok := port.Drain()
		require.True(t, ok)
		assert.Equal(t, uint8(9), v)
		assert.Equal(t, uint8(9), port.Value())

		_, ok = port.Drain()
		assert.False(t, ok)
	})

	t.Run("closed port stops receiving", func(t *testing.T) {
		w := NewByte()
		src, err := w.Source()
		require.NoError(t, err)

		port, err := w.Port(8)
		require.NoError(t, err)
		port.Drain()
		port.Close()

		src.Set(5)
		_, ok := port.Drain()
		assert.False(t, ok)
	})
}
