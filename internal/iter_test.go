package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConcat(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]string{"uia", "uib"}), slices.Values([]string{}), slices.Values([]string{"proc"}))
	assert.Equal([]string{"uia", "uib", "proc"}, slices.Collect(seq))

	// Early stop.
	var first []string
	for name := range seq {
		first = append(first, name)
		break
	}
	assert.Equal([]string{"uia"}, first)
}

func TestConcat2(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"x", "y"})
	b := slices.All([]string{"z"})

	var keys []int
	var vals []string
	for k, v := range Concat2(a, b) {
		keys = append(keys, k)
		vals = append(vals, v)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"x", "y", "z"}, vals)

	m := maps.Collect(Concat2(maps.All(map[string]int{"a": 1}), maps.All(map[string]int{"b": 2})))
	assert.Equal(map[string]int{"a": 1, "b": 2}, m)
}
