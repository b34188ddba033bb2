package linenoise

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComplete(t *testing.T) {
	words := []string{"HGET", "HGETALL", "HSET", "GET"}

	assert.Equal(t, []string{"HGET", "HGETALL"}, Complete(words, "hge"))
	assert.Equal(t, []string{"GET"}, Complete(words, "G"))
	assert.Nil(t, Complete(words, ""))
	assert.Nil(t, Complete(words, "HGET k"), "only the command word is completed")
	assert.Nil(t, Complete(words, "x"))
}

func TestClearScreen(t *testing.T) {
	var buf bytes.Buffer
	assert.NoError(t, ClearScreen(&buf))
	assert.Equal(t, clearSeq, buf.String())
}
