package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	h := NewHasher()
	// sha256("abc")
	assert.Equal(t, "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad", h.Hash([]byte("abc")))
}

func TestHashJSONDeterministic(t *testing.T) {
	h := NewHasher()

	a, err := h.HashJSON(map[string]int{"b": 2, "a": 1, "c": 3})
	require.NoError(t, err)
	b, err := h.HashJSON(map[string]int{"c": 3, "a": 1, "b": 2})
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := h.HashJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	_, err = h.HashJSON(make(chan int))
	assert.Error(t, err)
}

func TestShort(t *testing.T) {
	assert.Equal(t, "abc", Short("abc"))
	assert.Equal(t, "0123456789abcdef", Short("0123456789abcdef0123"))
}
