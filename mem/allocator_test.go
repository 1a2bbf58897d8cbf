package mem

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLimitAllocatorDenies(t *testing.T) {
	a := Limited(100)
	require.NoError(t, a.Reserve(60))
	require.NoError(t, a.Reserve(40))
	err := a.Reserve(1)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrOutOfMemory))
	require.Equal(t, 100, a.Used())
}

func TestLimitAllocatorPeak(t *testing.T) {
	a := Limited(100)
	require.NoError(t, a.Reserve(80))
	a.Free(80)
	require.NoError(t, a.Reserve(30))
	require.Equal(t, 30, a.Used())
	require.Equal(t, 80, a.Peak(), "peak must survive frees")
}

func TestLimitAllocatorDenialLeavesNoTrace(t *testing.T) {
	a := Limited(64)
	require.NoError(t, a.Reserve(64))
	require.Error(t, a.Reserve(64))
	require.Equal(t, 64, a.Used(), "denied reservation must not count")
	a.Free(64)
	require.Equal(t, 0, a.Used())
}

func TestLimitedBufferAllocation(t *testing.T) {
	a := Limited(4 * elemSize[int]())
	buf, err := Alloc[int](a, 4)
	require.NoError(t, err)
	_, err = Alloc[int](a, 1)
	require.True(t, errors.Is(err, ErrOutOfMemory))
	buf.Release()
	require.Equal(t, 0, a.Used())
	require.Equal(t, 4*elemSize[int](), a.Peak())
}
