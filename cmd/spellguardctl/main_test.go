package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeDict(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "dict.tsv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func pipeOutput(t *testing.T) (*os.File, func() string) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	ch := make(chan string, 1)
	go func() {
		buf := make([]byte, 0, 4096)
		tmp := make([]byte, 256)
		for {
			n, err := r.Read(tmp)
			if n > 0 {
				buf = append(buf, tmp[:n]...)
			}
			if err != nil {
				break
			}
		}
		ch <- string(buf)
	}()
	return w, func() string {
		w.Close()
		return <-ch
	}
}

func TestRunCorrectsPositionalWords(t *testing.T) {
	dict := writeDict(t, "hello\t10000\n")
	out, collect := pipeOutput(t)

	code := run([]string{"--dictionary", dict, "helo"}, os.Stdin, out, os.Stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, collect(), "helo\t-> hello")
}

func TestRunStatsFlag(t *testing.T) {
	dict := writeDict(t, "hello\t10000\nworld\t5000\n")
	out, collect := pipeOutput(t)

	code := run([]string{"--dictionary", dict, "--stats"}, os.Stdin, out, os.Stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, collect(), "dictionary_size: 2")
}

func TestRunRequiresDictionaryFlag(t *testing.T) {
	out, _ := pipeOutput(t)
	errOut, collectErr := pipeOutput(t)

	code := run([]string{}, os.Stdin, out, errOut)
	assert.Equal(t, 2, code)
	assert.Contains(t, collectErr(), "dictionary")
}

func TestRunReadsStdinWhenNoPositionalWords(t *testing.T) {
	dict := writeDict(t, "hello\t10000\n")
	out, collect := pipeOutput(t)

	stdinR, stdinW, err := os.Pipe()
	require.NoError(t, err)
	_, err = stdinW.WriteString("helo\n")
	require.NoError(t, err)
	stdinW.Close()

	code := run([]string{"--dictionary", dict}, stdinR, out, os.Stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, collect(), "hello")
}

func TestRunNoGuardFlag(t *testing.T) {
	dict := writeDict(t, "hello\t10000\n")
	out, collect := pipeOutput(t)

	code := run([]string{"--dictionary", dict, "--no-guard", "helo"}, os.Stdin, out, os.Stderr)
	assert.Equal(t, 0, code)
	assert.Contains(t, collect(), "hello")
}
