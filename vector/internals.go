package vector

import "fmt"

// grownCapacity is the growth policy for a full vector: first growth
// yields a single slot, every later one doubles.
func grownCapacity(size int) int {
	if size == 0 {
		return 1
	}
	return size * 2
}

// --- Helpers ---------------------------------------------------------------

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("vector: "+msg, msgargs...)
		panic(msg)
	}
}
