// FILE: lixenwraith/commander/iterator.go
package commander

import "iter"

// Arguments returns the matched options in the order they appeared on the
// command line. Each call iterates the result current at call time, and the
// sequence can be ranged over any number of times.
func (c *Commander) Arguments() iter.Seq[Argument] {
	arguments := c.current().arguments

	return func(yield func(Argument) bool) {
		for _, arg := range arguments {
			if !yield(arg) {
				return
			}
		}
	}
}
