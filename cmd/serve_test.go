package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetServeCmd_Exists verifies getServeCmd returns
// a valid command.
func TestGetServeCmd_Exists(t *testing.T) {
	cmd := getServeCmd()
	require.NotNil(t, cmd, "Serve command should exist")
	assert.Equal(t, "serve", cmd.Use,
		"Command name should be serve")
}

// TestGetServeCmd_HasRunE verifies run function is set.
func TestGetServeCmd_HasRunE(t *testing.T) {
	cmd := getServeCmd()

	assert.NotNil(t, cmd.RunE,
		"RunE should be set")
}

// TestGetServeCmd_Flags verifies --host and --port flags.
func TestGetServeCmd_Flags(t *testing.T) {
	cmd := getServeCmd()

	hostFlag := cmd.Flags().Lookup("host")
	require.NotNil(t, hostFlag, "--host flag should exist")
	assert.Equal(t, "H", hostFlag.Shorthand,
		"Short form should be -H")

	portFlag := cmd.Flags().Lookup("port")
	require.NotNil(t, portFlag, "--port flag should exist")
	assert.Equal(t, "p", portFlag.Shorthand,
		"Short form should be -p")
}

// TestGetServeCmd_HelpText verifies help text content.
func TestGetServeCmd_HelpText(t *testing.T) {
	cmd := getServeCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "web interface",
		"Help should mention the web interface")
	assert.Contains(t, helpText, "Examples:",
		"Help should include examples")
	assert.Contains(t, helpText, "emodeldb serve --port 8080",
		"Should show port example")
}

// TestGetServeCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetServeCmd_IndependentInstances(t *testing.T) {
	cmd1 := getServeCmd()
	cmd2 := getServeCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")
}
