package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestFixedStepPacesTicks(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(20)
	fs.now = clock.now
	require.Equal(t, 20, fs.TPS())

	assert.True(t, fs.ShouldStep(), "first call should fire immediately")
	assert.False(t, fs.ShouldStep(), "no time has elapsed")

	clock.advance(20 * time.Millisecond)
	assert.False(t, fs.ShouldStep(), "20ms is below the 50ms step")

	clock.advance(30 * time.Millisecond)
	assert.True(t, fs.ShouldStep(), "accumulated 50ms should fire")
	assert.False(t, fs.ShouldStep())
}

func TestFixedStepCapsBacklog(t *testing.T) {
	clock := &fakeClock{t: time.Unix(1000, 0)}
	fs := NewFixedStep(10)
	fs.now = clock.now
	require.True(t, fs.ShouldStep())

	clock.advance(time.Second)
	fired := 0
	for i := 0; i < 10; i++ {
		if fs.ShouldStep() {
			fired++
		}
	}
	assert.Equal(t, 2, fired, "a long stall should only release one extra tick")
}

func TestFixedStepDefaultsInvalidTPS(t *testing.T) {
	fs := NewFixedStep(0)
	assert.Equal(t, 60, fs.TPS())
	fs.SetTPS(-5)
	assert.Equal(t, 60, fs.TPS())
}
