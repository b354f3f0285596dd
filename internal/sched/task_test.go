package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewTaskClampsNice(t *testing.T) {
	low := NewTask(1, -99, 0, 10)
	assert.Equal(t, MinNice, low.Nice)
	assert.Equal(t, NiceToWeight(MinNice), low.Weight)

	high := NewTask(2, 99, 0, 10)
	assert.Equal(t, MaxNice, high.Nice)
	assert.Equal(t, NiceToWeight(MaxNice), high.Weight)
}

func TestNewTaskZeroesAccounting(t *testing.T) {
	task := NewTask(7, 0, 123, 456)

	assert.Equal(t, TaskID(7), task.PID)
	assert.Equal(t, uint64(123), task.Metrics.Arrival)
	assert.Equal(t, uint64(456), task.Duration)
	assert.Equal(t, uint64(456), task.Remaining)
	assert.Zero(t, task.VRuntime)
	assert.Zero(t, task.Metrics.Consumed)
	assert.Zero(t, task.Metrics.Bursts)
	assert.False(t, task.Metrics.Started)
}

func TestStepConsumesAndFinishes(t *testing.T) {
	task := NewTask(1, 0, 0, 10)

	assert.False(t, task.Step(4))
	assert.Equal(t, uint64(6), task.Remaining)
	assert.False(t, task.Step(4))
	assert.Equal(t, uint64(2), task.Remaining)

	// final tick clamps at the remaining duration
	assert.True(t, task.Step(4))
	assert.Zero(t, task.Remaining)
	assert.Equal(t, uint64(10), task.Metrics.Consumed)
}

func TestStepExactMultiple(t *testing.T) {
	task := NewTask(1, 0, 0, 8)

	assert.False(t, task.Step(4))
	assert.True(t, task.Step(4))
	assert.Equal(t, task.Duration, task.Metrics.Consumed)
}
