package main

import (
	"bytes"
	"io"
	"log/slog"
	"testing"

	"github.com/scott-cotton/cli"
	"github.com/signadot/confmerge/format"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T, files map[string]string) *MergeConfig {
	t.Helper()
	fs := afero.NewMemMapFs()
	for p, s := range files {
		require.NoError(t, afero.WriteFile(fs, p, []byte(s), 0644))
	}
	return &MergeConfig{
		MainConfig: &MainConfig{
			Tabs: 2,
			Fs:   fs,
			Log:  slog.New(slog.DiscardHandler),
		},
		Context: 3,
	}
}

func readFile(t *testing.T, fs afero.Fs, p string) string {
	t.Helper()
	d, err := afero.ReadFile(fs, p)
	require.NoError(t, err)
	return string(d)
}

func TestMergeFiles(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "image: app:1\nreplicas: 3\nport: 80\n",
		"/tmpl.yaml": "image: <image>\nreplicas: 1 # [MERGE IGNORE]\nport: <port> # [MERGE PREFIX :]\n",
		"/ann.json":  `{".replicas": "[MERGE FROM .replicas]"}`,
	})
	out := &bytes.Buffer{}
	res, err := cfg.mergeFiles(out, out, "/old.yaml", "/tmpl.yaml", "/new.yaml", "/ann.json")
	require.NoError(t, err)
	require.False(t, res.Failed())
	require.Empty(t, res.Warnings)
	require.Equal(t, "image: app:1\nreplicas: 3\nport: :80\n", readFile(t, cfg.Fs, "/new.yaml"))
	require.Equal(t, "image: app:1\nreplicas: 3\nport: 80\n", readFile(t, cfg.Fs, "/new.yaml.backup"))
	require.Empty(t, out.String())
}

func TestMergeFilesErrors(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 1\n",
		"/tmpl.yaml": "a: <a>\nb: <b>\nc: 3\n",
	})
	cfg.NoBackup = true
	res, err := cfg.mergeFiles(io.Discard, io.Discard, "/old.yaml", "/tmpl.yaml", "/new.yaml", "")
	require.NoError(t, err)
	require.True(t, res.Failed())
	require.Len(t, res.Errors, 1)
	require.Equal(t, ".b", res.Errors[0].Address)
	require.Len(t, res.Warnings, 1)
	require.Equal(t, ".c", res.Warnings[0].Address)
	// written regardless of errors
	require.Equal(t, "a: 1\nb: <b> # [MERGE FAIL]\nc: 3 # [MERGE CHECK]\n", readFile(t, cfg.Fs, "/new.yaml"))
	ok, err := afero.Exists(cfg.Fs, "/new.yaml.backup")
	require.NoError(t, err)
	require.False(t, ok)

	buf := &bytes.Buffer{}
	require.NoError(t, report(buf, res, false))
	require.Equal(t, "WARNINGS:\n  .c: .c not found in source, keeping template value\n"+
		"ERRORS:\n  .b: .b not found in source and template value <b> is a placeholder\n", buf.String())
}

func TestMergeFilesStdoutDiff(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 2\n",
		"/tmpl.yaml": "a: 1\nb: x # [MERGE IGNORE]\n",
	})
	cfg.Diff = true
	out, msgs := &bytes.Buffer{}, &bytes.Buffer{}
	_, err := cfg.mergeFiles(out, msgs, "/old.yaml", "/tmpl.yaml", "-", "")
	require.NoError(t, err)
	require.Equal(t, "a: 2\nb: x\n", out.String())
	require.Equal(t, "@@ 1,1 @@\n-a: 1\n-b: x # [MERGE IGNORE]\n+a: 2\n+b: x\n \n", msgs.String())
	ok, err := afero.Exists(cfg.Fs, "-")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestMergeFilesAnnotationFormat(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 2\nb: 3\n",
		"/tmpl.yaml": "a: 1\nb: 1\n",
		"/ann":       "\".a\" = \"[MERGE IGNORE]\"\n",
	})
	_, err := cfg.mergeFiles(io.Discard, io.Discard, "/old.yaml", "/tmpl.yaml", "/new.yaml", "/ann")
	require.ErrorIs(t, err, format.ErrBadFormat)

	f := format.TOMLFormat
	cfg.Annotations = &f
	_, err = cfg.mergeFiles(io.Discard, io.Discard, "/old.yaml", "/tmpl.yaml", "/new.yaml", "/ann")
	require.NoError(t, err)
	require.Equal(t, "a: 1\nb: 3\n", readFile(t, cfg.Fs, "/new.yaml"))
}

func TestMergeFilesParseError(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 1\n",
		"/tmpl.yaml": "a: 1\n  b: 2\n",
	})
	_, err := cfg.mergeFiles(io.Discard, io.Discard, "/old.yaml", "/tmpl.yaml", "/new.yaml", "")
	require.Error(t, err)
	ok, err := afero.Exists(cfg.Fs, "/new.yaml")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunStdoutHoldsOnlyDocument(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 2\n",
		"/tmpl.yaml": "a: 1\nb: <b>\n",
	})
	cfg.Diff = true
	stderr := &bytes.Buffer{}
	cfg.Stderr = stderr
	out := &bytes.Buffer{}
	err := cfg.run(out, []string{"/old.yaml", "/tmpl.yaml", "-"})
	require.Error(t, err)
	require.Equal(t, "a: 2\nb: <b> # [MERGE FAIL]\n", out.String())
	require.Contains(t, stderr.String(), "ERRORS:\n  .b: ")
	require.Contains(t, stderr.String(), "+a: 2\n")
	ok, err := afero.Exists(cfg.Fs, "-.backup")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRunReportWithOutputFile(t *testing.T) {
	cfg := testConfig(t, map[string]string{
		"/old.yaml":  "a: 2\n",
		"/tmpl.yaml": "a: 1\n",
	})
	stderr := &bytes.Buffer{}
	cfg.Stderr = stderr
	out := &bytes.Buffer{}
	require.NoError(t, cfg.run(out, []string{"/old.yaml", "/tmpl.yaml", "/new.yaml"}))
	require.Empty(t, out.String())
	require.Empty(t, stderr.String())
	require.Equal(t, "a: 2\n", readFile(t, cfg.Fs, "/new.yaml"))
}

func TestRunUsage(t *testing.T) {
	cfg := testConfig(t, nil)
	err := cfg.run(io.Discard, []string{"/old.yaml"})
	require.ErrorIs(t, err, cli.ErrUsage)
}
