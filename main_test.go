package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"znkr.io/distle/config"
)

func TestExplain(t *testing.T) {
	var out bytes.Buffer
	explainCmd.SetOut(&out)
	defer explainCmd.SetOut(nil)

	require.NoError(t, explainCmd.RunE(explainCmd, []string{"cat", "cats"}))
	want := "distance  1\nsequence  I\n\ncat \ncats\n===+\n"
	if diff := cmp.Diff(want, out.String()); diff != "" {
		t.Errorf("explain output is different (-want, +got):\n%s", diff)
	}

	out.Reset()
	require.NoError(t, explainCmd.RunE(explainCmd, []string{"same", "same"}))
	require.True(t, strings.HasPrefix(out.String(), "distance  0\nsequence  -\n"), out.String())
}

func TestApplyFlags(t *testing.T) {
	cmd := &cobra.Command{}
	fs := cmd.Flags()
	fs.String("dict", "", "")
	fs.String("secret", "", "")
	fs.Int("games", 0, "")
	fs.Int("workers", 0, "")
	fs.Bool("human", false, "")
	fs.Bool("quiet", false, "")
	require.NoError(t, fs.Set("games", "7"))
	require.NoError(t, fs.Set("human", "true"))
	require.NoError(t, fs.Set("dict", "words.txt"))

	cfg := config.Default()
	require.NoError(t, applyFlags(cmd, cfg))

	// Flags that were not set leave the configuration alone.
	want := config.Default()
	want.Games = 7
	want.AIPlayer = false
	want.Dictionary = "words.txt"
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config is different (-want, +got):\n%s", diff)
	}
}

func TestPlay(t *testing.T) {
	dir := t.TempDir()
	dict := filepath.Join(dir, "words.txt")
	require.NoError(t, os.WriteFile(dict, []byte("slater\nskater\ncrater\nslated\n"), 0644))
	reportPath := filepath.Join(dir, "report.html")

	fs := playCmd.Flags()
	for name, value := range map[string]string{
		"dict":      dict,
		"secret":    "crater",
		"games":     "2",
		"seed":      "42",
		"report":    reportPath,
		"stats-dir": filepath.Join(dir, "stats"),
	} {
		require.NoError(t, fs.Set(name, value))
	}

	var out bytes.Buffer
	playCmd.SetOut(&out)
	playCmd.SetContext(context.Background())
	require.NoError(t, playCmd.RunE(playCmd, nil))
	require.Contains(t, out.String(), "= Won: 2 / 2")

	for _, name := range []string{"report-1.html", "report-2.html"} {
		b, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		require.Contains(t, string(b), "<table>")
		require.Contains(t, string(b), "crater")
	}

	out.Reset()
	require.NoError(t, statsCmd.Flags().Set("stats-dir", filepath.Join(dir, "stats")))
	statsCmd.SetOut(&out)
	require.NoError(t, statsCmd.RunE(statsCmd, nil))
	require.Contains(t, out.String(), "games    2\n")
	require.Contains(t, out.String(), "won      2\n")
}
