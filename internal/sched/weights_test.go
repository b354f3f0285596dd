package sched

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNiceToWeight(t *testing.T) {
	assert.Equal(t, uint64(88761), NiceToWeight(-20))
	assert.Equal(t, uint64(9548), NiceToWeight(-10))
	assert.Equal(t, uint64(1024), NiceToWeight(0))
	assert.Equal(t, uint64(335), NiceToWeight(5))
	assert.Equal(t, uint64(15), NiceToWeight(19))
}

func TestNice0MatchesTable(t *testing.T) {
	assert.Equal(t, uint64(Nice0), NiceToWeight(0))
}

func TestWeightsStrictlyDecreasing(t *testing.T) {
	for nice := MinNice; nice < MaxNice; nice++ {
		assert.Greater(t, NiceToWeight(nice), NiceToWeight(nice+1),
			"weight must strictly decrease from nice %d to %d", nice, nice+1)
	}
}
