package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistributeSumsToTarget(t *testing.T) {
	for w := 0; w <= 80; w++ {
		widths := Distribute(w,
			Constraint{14, 0},
			Constraint{15, 2},
			Constraint{16, 3},
			Constraint{8, 0},
		)
		total := 0
		for _, width := range widths {
			assert.GreaterOrEqual(t, width, 0)
			total += width
		}
		assert.Equal(t, w, total, "width %d", w)
	}
}

func TestDistributeCentersFixedSlots(t *testing.T) {
	widths := Distribute(40, Flex(1), Fixed(6), Fixed(1), Fixed(6), Flex(1))
	assert.Equal(t, []int{14, 6, 1, 6, 13}, widths)
	assert.Equal(t, []int{0, 14, 20, 21, 27}, Offsets(0, widths))
}

func TestDistributeWithoutFlex(t *testing.T) {
	assert.Equal(t, []int{6, 1, 6}, Distribute(80, Fixed(6), Fixed(1), Fixed(6)))
	assert.Equal(t, []int{4, 1, 5}, Distribute(10, Fixed(6), Fixed(1), Fixed(6)))
	assert.Empty(t, Distribute(10))
}

func TestShrinkWidestFirst(t *testing.T) {
	assert.Equal(t, []int{3, 3, 3}, Distribute(9, Fixed(5), Fixed(3), Fixed(4)))
	assert.Equal(t, []int{2, 2, 1}, Distribute(5, Fixed(5), Fixed(3), Fixed(1)))
	assert.Equal(t, []int{0, 0}, Distribute(-3, Fixed(2), Flex(1)))
}
