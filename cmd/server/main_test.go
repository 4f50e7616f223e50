package main

import (
	"os"
	"testing"

	"github.com/cloudlearn-droid/CloudVault/internal/configuration"
)

func TestMain(m *testing.M) {
	// Setup code here (runs once before all tests in this package)
	println("Setting up tests for main package...")

	exitCode := m.Run()

	println("Tearing down tests for main package...")

	os.Exit(exitCode)
}

func TestConfigLoadsForStartup(t *testing.T) {
	cfg := configuration.Load()
	if cfg.Server.Port == "" {
		t.Error("server port must have a default")
	}
	if cfg.Database.ConnectionString() == "" {
		t.Error("database connection string must build from defaults")
	}
}
