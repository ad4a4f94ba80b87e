package main

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunWritesSite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "site")

	require.NoError(t, run(context.Background(), out))

	index, err := os.ReadFile(filepath.Join(out, "index.html"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(index), "<!DOCTYPE html>"))
	require.Contains(t, string(index), `href="static/app.css"`)

	for _, name := range []string{"app.css", "pending.js"} {
		_, err := os.Stat(filepath.Join(out, "static", name))
		require.NoError(t, err, "%s should be exported", name)
	}

	// A second export over the same directory replaces the assets
	require.NoError(t, run(context.Background(), out))
}
