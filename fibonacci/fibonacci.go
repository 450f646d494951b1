// Package fibonacci computes terms of the Fibonacci sequence.
package fibonacci

import (
	"errors"
	"fmt"
	"strings"
)

// Func maps a sequence index to its Fibonacci value.
type Func func(n int) uint64

// Default is the algorithm used when none is configured.
const Default = "recursive"

var ErrUnknownAlgorithm = errors.New("unknown algorithm")

var algorithms = map[string]Func{
	"recursive": Recursive,
	"iterative": Iterative,
}

// Recursive calculates the nth Fibonacci number using plain recursion.
// Nothing is cached, so the cost grows exponentially with n.
// It panics if n is negative.
func Recursive(n int) uint64 {
	if n < 0 {
		panic(fmt.Sprintf("fibonacci: negative index %d", n))
	}
	if n <= 1 {
		return uint64(n)
	}
	return Recursive(n-1) + Recursive(n-2)
}

// Iterative calculates the nth Fibonacci number in linear time.
// It panics if n is negative.
func Iterative(n int) uint64 {
	if n < 0 {
		panic(fmt.Sprintf("fibonacci: negative index %d", n))
	}
	if n <= 1 {
		return uint64(n)
	}

	var prev, curr uint64 = 0, 1
	for i := 2; i <= n; i++ {
		prev, curr = curr, prev+curr
	}
	return curr
}

// Lookup returns the algorithm registered under name.
func Lookup(name string) (Func, error) {
	f, ok := algorithms[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownAlgorithm, name)
	}
	return f, nil
}
