package scheduler

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestScheduler_FiresRepeatedly(t *testing.T) {
	var count atomic.Int64
	s := New(func() { count.Add(1) })
	defer s.Stop()

	s.Start(10 * time.Millisecond)
	assert.True(t, s.Running())

	assert.Eventually(t, func() bool {
		return count.Load() >= 2
	}, time.Second, 5*time.Millisecond)
}

func TestScheduler_StopHaltsSweeps(t *testing.T) {
	var count atomic.Int64
	s := New(func() { count.Add(1) })

	s.Start(10 * time.Millisecond)
	assert.Eventually(t, func() bool {
		return count.Load() >= 1
	}, time.Second, 5*time.Millisecond)

	s.Stop()
	assert.False(t, s.Running())

	after := count.Load()
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, after, count.Load(), "no sweeps after Stop")
}

func TestScheduler_RescheduleLeavesOneTimer(t *testing.T) {
	var count atomic.Int64
	s := New(func() { count.Add(1) })
	defer s.Stop()

	// A long interval that would never fire inside this test
	s.Start(time.Hour)

	// Replacing it several times must leave exactly one active timer
	s.Reschedule(time.Hour)
	s.Reschedule(10 * time.Millisecond)

	time.Sleep(105 * time.Millisecond)
	s.Stop()

	fired := count.Load()
	assert.GreaterOrEqual(t, fired, int64(5), "rescheduled timer fires at the new interval")
	assert.LessOrEqual(t, fired, int64(13), "duplicate timers would roughly double the fire count")
}

func TestScheduler_StopWithoutStartIsSafe(t *testing.T) {
	s := New(func() {})
	s.Stop()
	s.Stop()
	assert.False(t, s.Running())
}

func TestScheduler_NonPositiveIntervalDoesNotStart(t *testing.T) {
	s := New(func() {})
	s.Start(0)
	assert.False(t, s.Running())
}
