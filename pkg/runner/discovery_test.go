package runner_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/gocsfix/pkg/runner"
)

func discoverRel(t *testing.T, dir string, opts runner.Options) []string {
	t.Helper()
	opts.WorkingDir = dir
	files, err := runner.Discover(context.Background(), opts)
	require.NoError(t, err)

	rel := make([]string, len(files))
	for i, f := range files {
		r, err := filepath.Rel(dir, f)
		require.NoError(t, err)
		rel[i] = filepath.ToSlash(r)
	}
	return rel
}

func TestDiscover_Extensions(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"index.php":          cleanPHP,
		"views/page.phtml":   cleanPHP,
		"lib/legacy.inc":     cleanPHP,
		"lib/Upper.PHP":      cleanPHP,
		"README.md":          "# readme",
		"script":             "echo hi",
		".hidden.php":        cleanPHP,
		".git/hooks/pre.php": cleanPHP,
	})

	assert.Equal(t,
		[]string{"index.php", "lib/Upper.PHP", "lib/legacy.inc", "views/page.phtml"},
		discoverRel(t, dir, runner.Options{}))

	assert.Equal(t,
		[]string{"index.php", "lib/Upper.PHP"},
		discoverRel(t, dir, runner.Options{Extensions: []string{".php"}}))
}

func TestDiscover_Globs(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"src/a.php":            cleanPHP,
		"src/gen/b.php":        cleanPHP,
		"vendor/pkg/c.php":     cleanPHP,
		"tests/ATest.php":      cleanPHP,
		"tests/fixtures/x.php": cleanPHP,
	})

	tests := []struct {
		name string
		opts runner.Options
		want []string
	}{
		{
			name: "exclude directory",
			opts: runner.Options{ExcludeGlobs: []string{"vendor/**"}},
			want: []string{"src/a.php", "src/gen/b.php", "tests/ATest.php", "tests/fixtures/x.php"},
		},
		{
			name: "exclude nested directory and base name",
			opts: runner.Options{ExcludeGlobs: []string{"**/fixtures/**", "b.php", "vendor"}},
			want: []string{"src/a.php", "tests/ATest.php"},
		},
		{
			name: "include",
			opts: runner.Options{IncludeGlobs: []string{"src/**"}},
			want: []string{"src/a.php", "src/gen/b.php"},
		},
		{
			name: "include by base name pattern",
			opts: runner.Options{IncludeGlobs: []string{"*Test.php"}},
			want: []string{"tests/ATest.php"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, discoverRel(t, dir, tt.opts))
		})
	}
}

func TestDiscover_InvalidGlob(t *testing.T) {
	t.Parallel()

	_, err := runner.Discover(context.Background(), runner.Options{
		WorkingDir:   t.TempDir(),
		ExcludeGlobs: []string{"[unclosed"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid glob")
}

func TestDiscover_ExplicitFilesAndDedup(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"a.php":     cleanPHP,
		"bin/tool":  cleanPHP,
		"notes.txt": "x",
	})

	got := discoverRel(t, dir, runner.Options{Paths: []string{"a.php", ".", "bin/tool", "a.php"}})
	assert.Equal(t, []string{"a.php", "bin/tool"}, got)
}

func TestDiscover_ExtensionlessScripts(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{
		"bin/console": "#!/usr/bin/env php\n<?php\necho 1;\n",
		"bin/deploy":  "#!/bin/sh\necho deploy\n",
		"bin/data":    "just some text\n",
	})

	assert.Empty(t, discoverRel(t, dir, runner.Options{}))
	assert.Equal(t, []string{"bin/console"}, discoverRel(t, dir, runner.Options{DetectExtensionless: true}))
}

func TestDiscover_Symlinks(t *testing.T) {
	t.Parallel()

	dir := writeTree(t, map[string]string{"real/a.php": cleanPHP})
	if err := os.Symlink(filepath.Join(dir, "real"), filepath.Join(dir, "link")); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	assert.Equal(t, []string{"real/a.php"}, discoverRel(t, dir, runner.Options{}))
	assert.Equal(t, []string{"real/a.php"}, discoverRel(t, dir, runner.Options{Paths: []string{"link"}, FollowSymlinks: true}))
}

func TestDiscover_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := runner.Discover(context.Background(), runner.Options{WorkingDir: dir, Paths: []string{"missing"}})
	require.ErrorIs(t, err, os.ErrNotExist)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = runner.Discover(ctx, runner.Options{WorkingDir: dir})
	require.ErrorIs(t, err, context.Canceled)
}

func TestDefaultExtensions(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{".php", ".phtml", ".inc"}, runner.DefaultExtensions())
}
