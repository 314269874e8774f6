package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPointsFor(t *testing.T) {
	assert.Equal(t, 3.0, PointsFor(10))
	assert.Equal(t, 2.0, PointsFor(9))
	assert.Equal(t, 1.0, PointsFor(8))
	assert.Equal(t, 0.0, PointsFor(7))
	assert.Equal(t, 0.0, PointsFor(3))
	assert.Equal(t, 0.0, PointsFor(0))
	assert.Equal(t, 0.0, PointsFor(11))
}

func TestAwardForMean(t *testing.T) {
	assert.Equal(t, 1.0, AwardForMean(10))
	assert.Equal(t, 1.0, AwardForMean(9))
	assert.Equal(t, 0.5, AwardForMean(8.99))
	assert.Equal(t, 0.5, AwardForMean(8))
	assert.Equal(t, 0.0, AwardForMean(7.99))
	assert.Equal(t, 0.0, AwardForMean(0))
}
