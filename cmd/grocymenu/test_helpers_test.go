package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"grocymenu/internal/testsupport"
)

type cliTestEnv struct {
	fake       *testsupport.FakeGrocy
	dir        string
	configPath string
	outputPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()
	t.Setenv("GROCY_URL", "")
	t.Setenv("GROCY_API_KEY", "")

	fake := testsupport.NewFakeGrocy(t)
	dir := t.TempDir()
	env := &cliTestEnv{
		fake:       fake,
		dir:        dir,
		configPath: filepath.Join(dir, "config.toml"),
		outputPath: filepath.Join(dir, "site", "_data", "menu_auto.yml"),
	}
	content := fmt.Sprintf(`[grocy]
url = %q
api_key = %q
location_workers = 2

[menu]
output_path = %q

[logging]
format = "json"
level = "warn"
`, fake.URL(), fake.APIKey, env.outputPath)
	testsupport.WriteFile(t, env.configPath, content)
	return env
}

func (e *cliTestEnv) seedDrinks() {
	e.fake.AddGroup(1, "Frisdranken")
	e.fake.AddGroup(2, "Bieren")
	e.fake.AddLocation(10, "Fridge")
	e.fake.AddLocation(11, "Pantry")
	e.fake.AddProduct(1, "Cola", 1, 2, 10)
	e.fake.AddProduct(2, "Beer", 2, 6, 11)
	e.fake.AddProduct(3, "Fanta", 1, 0)
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{"--env-file", filepath.Join(t.TempDir(), "missing.env")}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}
