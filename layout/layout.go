package layout

import (
	"math"
)

// Constraint is the preferred size of a slot and its share of any spare room.
type Constraint struct {
	Size int
	Flex int
}

func Fixed(size int) Constraint { return Constraint{Size: size} }
func Flex(flex int) Constraint  { return Constraint{Flex: flex} }

// Distribute splits target cells between the slots. Oversized layouts shrink
// the largest slots first; spare room goes to flexible slots in proportion to
// their flex. The result always sums to target when any slot is flexible.
func Distribute(target int, constraints ...Constraint) []int {
	result := make([]int, len(constraints))
	if len(constraints) == 0 {
		return result
	}
	totalSize, totalFlex := 0, 0
	for i, c := range constraints {
		result[i] = c.Size
		totalSize += c.Size
		totalFlex += c.Flex
	}
	totalSize = shrink(result, totalSize, target)

	if totalFlex == 0 || totalSize >= target {
		return result
	}

	diff := target - totalSize
	for i, c := range constraints {
		rate := float64(diff*c.Flex) / float64(totalFlex)
		result[i] += int(math.Floor(rate))
	}
	totalSize = 0
	for _, size := range result {
		totalSize += size
	}
	for i := range result {
		if totalSize == target {
			break
		}
		if constraints[i].Flex > 0 {
			result[i]++
			totalSize++
		}
	}
	return result
}

// shrink takes one cell at a time from the widest slot until the sizes fit
// target, so slots converge towards equal width instead of the last ones
// vanishing. Ties go to the leftmost slot. It stops early once every slot is
// empty and returns the new total.
func shrink(sizes []int, total, target int) int {
	for total > target {
		widest := 0
		for i, size := range sizes {
			if size > sizes[widest] {
				widest = i
			}
		}
		if sizes[widest] == 0 {
			break
		}
		sizes[widest]--
		total--
	}
	return total
}

// Offsets returns the start position of every slot given their sizes.
func Offsets(start int, sizes []int) []int {
	result := make([]int, len(sizes))
	pos := start
	for i, size := range sizes {
		result[i] = pos
		pos += size
	}
	return result
}
