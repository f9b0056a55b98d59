package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRealMain(t *testing.T) {
	var out, errout bytes.Buffer
	rc := -1
	exit := func(code int) {
		rc = code
	}

	realMain([]string{"piv-tool", "name", "parse", "/CN=test"}, &out, &errout, exit)
	assert.Equal(t, -1, rc, "exit should not be called")
	assert.Contains(t, out.String(), "test")
}

func TestRealMainHelp(t *testing.T) {
	var out, errout bytes.Buffer
	exited := false
	exit := func(code int) {
		exited = true
	}

	realMain([]string{"piv-tool", "--help"}, &out, &errout, exit)
	require.True(t, exited)
	assert.Contains(t, out.String(), "piv-tool")
}
