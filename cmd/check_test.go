package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetCheckCmd_Exists verifies getCheckCmd returns
// a valid command.
func TestGetCheckCmd_Exists(t *testing.T) {
	cmd := getCheckCmd()
	require.NotNil(t, cmd, "Check command should exist")
	assert.Equal(t, "check", cmd.Use,
		"Command name should be check")
}

// TestGetCheckCmd_ShortDescription verifies short
// description.
func TestGetCheckCmd_ShortDescription(t *testing.T) {
	cmd := getCheckCmd()

	assert.NotEmpty(t, cmd.Short,
		"Short description should not be empty")
	assert.Contains(t, cmd.Short, "integrity",
		"Short description should mention integrity")
}

// TestGetCheckCmd_ReportFlag verifies --report flag exists.
func TestGetCheckCmd_ReportFlag(t *testing.T) {
	cmd := getCheckCmd()

	reportFlag := cmd.Flags().Lookup("report")
	require.NotNil(t, reportFlag,
		"--report flag should exist")

	assert.Equal(t, "r", reportFlag.Shorthand,
		"Short form should be -r")
	assert.Contains(t, reportFlag.Usage, "YAML",
		"Usage should mention YAML")
}

// TestGetCheckCmd_HelpText verifies help text content.
func TestGetCheckCmd_HelpText(t *testing.T) {
	cmd := getCheckCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"--help"})

	err := cmd.Execute()
	require.NoError(t, err)

	helpText := buf.String()
	assert.Contains(t, helpText, "matrix file",
		"Help should mention matrix files")
	assert.Contains(t, helpText, "emodeldb check --report report.yaml",
		"Should show report example")
}

// TestGetCheckCmd_IndependentInstances verifies each
// call returns independent instance.
func TestGetCheckCmd_IndependentInstances(t *testing.T) {
	cmd1 := getCheckCmd()
	cmd2 := getCheckCmd()

	assert.NotSame(t, cmd1, cmd2,
		"Each call should return new instance")
}
