package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmdRegistersSubcommands(t *testing.T) {
	cmd := NewRootCmd()

	serve, _, err := cmd.Find([]string{"serve"})
	require.NoError(t, err)
	assert.Equal(t, "serve", serve.Name())

	up, _, err := cmd.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())

	down, _, err := cmd.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "down", down.Name())
}

func TestMigrateDownRejectsInvalidSteps(t *testing.T) {
	for _, steps := range []string{"0", "1.5", "abc"} {
		t.Run(steps, func(t *testing.T) {
			cmd := NewRootCmd()
			cmd.SetArgs([]string{"migrate", "down", steps})
			cmd.SilenceErrors = true

			err := cmd.Execute()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "steps must be a positive integer")
		})
	}
}
