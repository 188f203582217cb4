package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIDGeneratorStrictlyIncreasing(t *testing.T) {
	var g IDGenerator
	now := at(2024, 5, 1, 12, 0)

	first := g.Next(now)
	second := g.Next(now)
	assert.Equal(t, now.UnixMilli(), first)
	assert.Equal(t, first+1, second)

	g.Observe(second + 100)
	assert.Equal(t, second+101, g.Next(now))

	g.Observe(1)
	assert.Equal(t, second+102, g.Next(now))
}
