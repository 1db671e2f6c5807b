package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("DATABASE_URL", "sqlite:"+filepath.Join(t.TempDir(), "cli.db"))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		outputJSON = false
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestPathCommand(t *testing.T) {
	out, err := execute(t, "path", "--mat-type", "3d", "--cell-structure", "romby", "--material", "czarny", "--border", "bordowy")
	require.NoError(t, err)
	assert.Equal(t, "/konfigurator/dywaniki/3d/romby/bordowe/5os-3d-diamonds-black-maroon.webp\n", out)
}

func TestPathCommand_FromForm(t *testing.T) {
	out, err := execute(t, "path", "--form", "--mat-type", "with-rims", "--cell-structure", "rhombus", "--material", "blue", "--border", "darkblue")
	require.NoError(t, err)
	assert.Equal(t, "/konfigurator/dywaniki/3d/romby/granatowe/5os-3d-diamonds-blue-navy.webp\n", out)
}

func TestSeedThenResolve(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "seeded.db")

	run := func(args ...string) (string, error) {
		var out bytes.Buffer
		t.Setenv("DATABASE_URL", "sqlite:"+dbPath)
		rootCmd.SetOut(&out)
		rootCmd.SetErr(&out)
		rootCmd.SetArgs(args)
		err := rootCmd.Execute()
		return out.String(), err
	}
	t.Cleanup(func() { outputJSON = false })

	_, err := run("seed", "--full", "--json")
	require.NoError(t, err)

	out, err := run("resolve", "--json", "--mat-type", "without-rims", "--cell-structure", "honeycomb", "--material", "graphite", "--border", "grey")
	require.NoError(t, err)

	var result struct {
		Status string `json:"status"`
		Record struct {
			ImagePath string `json:"image_path"`
		} `json:"record"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "found", result.Status)
	assert.Equal(t, "/konfigurator/dywaniki/klasyczne/plaster/szary/5os-classic-honey-gray-gray.webp", result.Record.ImagePath)

	_, err = run("resolve", "--json", "--mat-type", "without-rims", "--cell-structure", "honeycomb", "--material", "turquoise", "--border", "grey")
	assert.ErrorIs(t, err, errNotFound)
}

func TestResolveCommand_RequiresAllAxes(t *testing.T) {
	_, err := execute(t, "resolve", "--mat-type", "with-rims", "--cell-structure", "", "--material", "", "--border", "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, errNotFound)
	assert.Contains(t, err.Error(), "cell_structure")
}
