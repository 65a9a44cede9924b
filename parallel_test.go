package qregister

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func collect(run func(record parallelFunc)) []uint64 {
	var mu sync.Mutex
	var got []uint64
	run(func(lcv uint64) {
		mu.Lock()
		got = append(got, lcv)
		mu.Unlock()
	})
	return got
}

func TestParForCoversRange(t *testing.T) {
	d := &dispatcher{workers: 4}

	seen := make([]int32, 64)
	var mu sync.Mutex
	d.parFor(0, 64, func(lcv uint64) {
		mu.Lock()
		seen[lcv]++
		mu.Unlock()
	})

	for i, n := range seen {
		assert.Equal(t, int32(1), n, "index %d", i)
	}
}

func TestParForSkipHoldsBitsAtZero(t *testing.T) {
	d := &dispatcher{workers: 4}

	got := collect(func(record parallelFunc) {
		d.parForSkip(0, 64, 1<<2, 1, record)
	})

	// Half the space, bit 2 always clear.
	assert.Len(t, got, 32)
	for _, i := range got {
		assert.Zero(t, i&(1<<2), "index %b has the skipped bit set", i)
	}
}

func TestParForSkipWideWindow(t *testing.T) {
	d := &dispatcher{workers: 4}

	got := collect(func(record parallelFunc) {
		d.parForSkip(0, 256, 1<<3, 4, record)
	})

	assert.Len(t, got, 16)
	for _, i := range got {
		assert.Zero(t, i&(0xF<<3), "index %b intrudes on the window", i)
	}
}

func TestParForMaskEnumeratesPreImages(t *testing.T) {
	d := &dispatcher{workers: 4}

	got := collect(func(record parallelFunc) {
		err := d.parForMask(0, 64, []uint64{1 << 1, 1 << 4}, 6, record)
		require.NoError(t, err)
	})

	assert.Len(t, got, 16)
	unique := map[uint64]bool{}
	for _, i := range got {
		assert.Zero(t, i&(1<<1))
		assert.Zero(t, i&(1<<4))
		unique[i] = true
	}
	assert.Len(t, unique, 16)
}

func TestParForMaskRejectsBadMasks(t *testing.T) {
	d := &dispatcher{workers: 2}

	none := func(uint64) {}
	assert.Error(t, d.parForMask(0, 16, []uint64{1 << 2, 1 << 1}, 4, none))
	assert.Error(t, d.parForMask(0, 16, []uint64{1 << 1, 1 << 1}, 4, none))
	assert.Error(t, d.parForMask(0, 16, []uint64{1, 2, 4, 8, 16}, 4, none))
}

func TestParNormMatchesSerialSum(t *testing.T) {
	d := &dispatcher{workers: 3}

	vec := make([]complex128, 128)
	serial := 0.0
	for i := range vec {
		re := float64(i%7) / 10.0
		im := float64(i%3) / 10.0
		vec[i] = complex(re, im)
		serial += re*re + im*im
	}

	assert.InDelta(t, math.Sqrt(serial), d.parNorm(128, vec), 1e-12)
}

func TestParProbSumsMaskedIndices(t *testing.T) {
	d := &dispatcher{workers: 3}

	vec := make([]complex128, 16)
	serial := 0.0
	for i := range vec {
		vec[i] = complex(float64(i)/16.0, 0)
		if i&0b101 == 0b101 {
			serial += norm(vec[i])
		}
	}

	assert.InDelta(t, serial, d.parProb(16, vec, 0b101), 1e-12)
}
