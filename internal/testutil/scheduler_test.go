package testutil_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vytor/braingym/internal/testutil"
)

func TestFakeScheduler_FiresInOrder(t *testing.T) {
	s := testutil.NewFakeScheduler()
	var order []string
	s.AfterFunc(2*time.Second, func() { order = append(order, "b") })
	s.AfterFunc(time.Second, func() { order = append(order, "a") })
	s.AfterFunc(2*time.Second, func() { order = append(order, "c") })

	s.Advance(1500 * time.Millisecond)
	assert.Equal(t, []string{"a"}, order)
	assert.Equal(t, 2, s.Pending())

	s.Advance(time.Second)
	assert.Equal(t, []string{"a", "b", "c"}, order)
	assert.Zero(t, s.Pending())
}

func TestFakeScheduler_RescheduleDuringAdvance(t *testing.T) {
	s := testutil.NewFakeScheduler()
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		s.AfterFunc(time.Second, tick)
	}
	s.AfterFunc(time.Second, tick)

	s.Advance(5 * time.Second)
	assert.Equal(t, 5, ticks)
	assert.Equal(t, 1, s.Pending())
}

func TestFakeScheduler_Stop(t *testing.T) {
	s := testutil.NewFakeScheduler()
	fired := false
	timer := s.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	s.Advance(time.Minute)
	assert.False(t, fired)
}
