package cmd

import (
	"testing"
)

// TestCommandStructure verifies that all commands are properly registered
func TestCommandStructure(t *testing.T) {
	commands := []string{
		"seed", "verify", "catalog", "url", "browse", "doctor", "version",
	}

	for _, cmdName := range commands {
		t.Run(cmdName, func(t *testing.T) {
			cmd, _, err := rootCmd.Find([]string{cmdName})
			if err != nil {
				t.Errorf("Command '%s' not found: %v", cmdName, err)
			}
			if cmd == nil {
				t.Fatalf("Command '%s' is nil", cmdName)
			}
			if cmd.Use == "" {
				t.Errorf("Command '%s' has no Use field", cmdName)
			}
		})
	}
}

// TestRootCommandExists verifies the root command is properly configured
func TestRootCommandExists(t *testing.T) {
	if rootCmd == nil {
		t.Fatal("Root command is nil")
	}
	if rootCmd.Use != "mediaseed" {
		t.Errorf("Root command Use = %q, want mediaseed", rootCmd.Use)
	}
}

// TestVerifyFlags verifies the verify command exposes its flags
func TestVerifyFlags(t *testing.T) {
	for _, flag := range []string{"watch", "report"} {
		if verifyCmd.Flags().Lookup(flag) == nil {
			t.Errorf("verify command missing --%s flag", flag)
		}
	}
}

// TestURLFlags verifies the url command exposes its flags
func TestURLFlags(t *testing.T) {
	if urlCmd.Flags().Lookup("copy") == nil {
		t.Error("url command missing --copy flag")
	}
}
