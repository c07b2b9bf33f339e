package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGoCVDetector_Defaults(t *testing.T) {
	d := NewGoCVDetector(0, 15)
	require.Equal(t, 40, d.KernelDivisor)
	require.Equal(t, 15.0, d.MinSegmentLength)
	require.Equal(t, 1, d.BlurSize%2)
}

func TestKernelSizes(t *testing.T) {
	d := NewGoCVDetector(40, 0)

	h, v := d.kernelSizes(2000, 1200)
	require.Equal(t, 50, h)
	require.Equal(t, 30, v)

	h, v = d.kernelSizes(100, 80)
	require.Equal(t, d.MinKernel, h)
	require.Equal(t, d.MinKernel, v)
}
