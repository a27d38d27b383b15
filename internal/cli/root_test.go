package cli

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Structure(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cursorlog", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
	assert.NotEmpty(t, rootCmd.Example)
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		flagName string
		shortcut string
	}{
		"config flag exists": {flagName: "config", shortcut: "c"},
		"plain flag exists":  {flagName: "plain", shortcut: ""},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			flag := rootCmd.PersistentFlags().Lookup(tt.flagName)
			require.NotNil(t, flag, "Flag %s should exist", tt.flagName)
			assert.Equal(t, tt.shortcut, flag.Shorthand)
		})
	}
}

func TestRootCmd_SubcommandGroups(t *testing.T) {
	t.Parallel()

	groups := rootCmd.Groups()
	assert.Greater(t, len(groups), 0, "Root command should have groups defined")

	groupIDs := make(map[string]bool)
	for _, g := range groups {
		groupIDs[g.ID] = true
	}

	assert.True(t, groupIDs[GroupTracking], "Should have tracking group")
	assert.True(t, groupIDs[GroupQuery], "Should have query group")
	assert.True(t, groupIDs[GroupConfiguration], "Should have configuration group")
}

func TestRootCmd_Subcommands(t *testing.T) {
	t.Parallel()

	commandNames := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		commandNames[cmd.Name()] = true
	}

	assert.True(t, commandNames["update"], "Should have update command")
	assert.True(t, commandNames["list"], "Should have list command")
	assert.True(t, commandNames["latest"], "Should have latest command")
	assert.True(t, commandNames["export"], "Should have export command")
	assert.True(t, commandNames["watch"], "Should have watch command")
	assert.True(t, commandNames["config"], "Should have config command")
}

func TestRootCmd_CanShowHelp(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:   "cursorlog",
		Short: "Test command",
	}
	cmd.SetArgs([]string{"--help"})
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	err := cmd.Execute()
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Test command")
}

func TestGroupConstants(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		constant  string
		wantValue string
	}{
		"tracking":      {constant: GroupTracking, wantValue: "tracking"},
		"query":         {constant: GroupQuery, wantValue: "query"},
		"configuration": {constant: GroupConfiguration, wantValue: "configuration"},
	}

	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.wantValue, tt.constant)
		})
	}
}

func TestRootCmd_Description(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rootCmd.Long, "cursorlog")
	assert.Contains(t, rootCmd.Long, "changelog")
	assert.Contains(t, rootCmd.Long, "github.com")
}

func TestRootCmd_Example(t *testing.T) {
	t.Parallel()

	assert.Contains(t, rootCmd.Example, "cursorlog update")
	assert.Contains(t, rootCmd.Example, "cursorlog list")
	assert.Contains(t, rootCmd.Example, "cursorlog latest")
	assert.Contains(t, rootCmd.Example, "cursorlog export")
	assert.Contains(t, rootCmd.Example, "cursorlog watch")
}
