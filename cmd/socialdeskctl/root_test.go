package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(args ...string) (string, error) {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), err
}

func TestRootCommand_RejectsUnknownFormat(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := executeCommand("--format", "xml", "migrate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid format "xml"`)
}

func TestMigrateCommand_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := executeCommand("migrate")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "DATABASE_URL is required")
}

func TestStockCommand_ListsSubcommands(t *testing.T) {
	out, err := executeCommand("stock", "--help")

	require.NoError(t, err)
	for _, sub := range []string{"arrival", "history", "verify"} {
		assert.Contains(t, out, sub)
	}
}
