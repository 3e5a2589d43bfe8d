package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetIn(strings.NewReader("# Title\n\nSome **bold** and [a link](http://x) here"))
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"preview", "--max", "20"})

	require.NoError(t, cmd.ExecuteContext(context.Background()))
	assert.Equal(t, "Title  Some bold and...\n", out.String())
}

func TestRootListsCommands(t *testing.T) {
	cmd := newRootCmd()
	names := []string{}
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.Contains(t, names, "serve")
	assert.Contains(t, names, "preview")
}
