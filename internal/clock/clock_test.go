package clock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/braingym/internal/clock"
)

func TestReal_Fires(t *testing.T) {
	done := make(chan struct{})
	clock.Real{}.AfterFunc(time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("callback did not fire")
	}
}

func TestReal_Stop(t *testing.T) {
	fired := make(chan struct{}, 1)
	timer := clock.Real{}.AfterFunc(time.Hour, func() { fired <- struct{}{} })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop(), "second stop reports the timer was already stopped")
	assert.Empty(t, fired)
}

func TestStop_NilSafe(t *testing.T) {
	assert.NotPanics(t, func() { clock.Stop(nil) })
}

func TestSchedulerFunc(t *testing.T) {
	var got time.Duration
	s := clock.SchedulerFunc(func(d time.Duration, fn func()) clock.Timer {
		got = d
		fn()
		return nil
	})

	ran := false
	s.AfterFunc(3*time.Second, func() { ran = true })
	assert.Equal(t, 3*time.Second, got)
	assert.True(t, ran)
}
