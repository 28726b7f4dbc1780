package cli

import (
	"bytes"
	"path/filepath"
	"strings"
	"syscall"
	"testing"

	"github.com/aretw0/catena/internal/config"
	"github.com/aretw0/catena/internal/testutils"
	"github.com/stretchr/testify/assert"
)

type result struct {
	code   int
	stdout string
	stderr string
}

func invoke(flags Flags, stdin string, paths ...string) result {
	var out, errOut bytes.Buffer
	code := Run(RunOptions{
		Flags:  flags,
		Paths:  paths,
		Stdin:  strings.NewReader(stdin),
		Stdout: &out,
		Stderr: &errOut,
	})
	return result{code: code, stdout: out.String(), stderr: errOut.String()}
}

func TestRun(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	dir := testutils.WriteFixtures(t, map[string]string{
		"squeeze.txt": "a\n\n\nb\n",
		"x.txt":       "x\n",
		"y.txt":       "y\n",
		"tabs.txt":    "a\tb\x01\n",
	})
	p := func(names ...string) []string { return testutils.Paths(dir, names...) }

	t.Run("Stdin by default", func(t *testing.T) {
		r := invoke(Flags{}, "piped\n")
		assert.Equal(t, 0, r.code)
		assert.Equal(t, "piped\n", r.stdout)
		assert.Empty(t, r.stderr)
	})

	t.Run("Squeeze then number", func(t *testing.T) {
		r := invoke(Flags{SqueezeBlank: true, Number: true}, "", p("squeeze.txt")...)
		assert.Equal(t, 0, r.code)
		assert.Equal(t, "     1\ta\n     2\t\n     3\tb\n", r.stdout)
	})

	t.Run("Numbering continues across files", func(t *testing.T) {
		r := invoke(Flags{Number: true}, "", p("x.txt", "y.txt")...)
		assert.Equal(t, "     1\tx\n     2\ty\n", r.stdout)
	})

	t.Run("Dash between files", func(t *testing.T) {
		paths := append(p("x.txt"), "-")
		paths = append(paths, p("y.txt")...)
		r := invoke(Flags{}, "middle\n", paths...)
		assert.Equal(t, "x\nmiddle\ny\n", r.stdout)
	})

	t.Run("Show all", func(t *testing.T) {
		r := invoke(Flags{ShowAll: true}, "", p("tabs.txt")...)
		assert.Equal(t, "a^Ib^A$\n", r.stdout)
	})

	t.Run("Show tabs alone", func(t *testing.T) {
		r := invoke(Flags{ShowTabs: true}, "", p("tabs.txt")...)
		assert.Equal(t, "a\tb\x01\n", r.stdout)
	})

	t.Run("Missing file", func(t *testing.T) {
		missing := filepath.Join(dir, "missing.txt")
		r := invoke(Flags{}, "", append(p("x.txt"), missing)...)
		assert.Equal(t, int(syscall.ENOENT), r.code)
		assert.Equal(t, "x\n", r.stdout)
		assert.Equal(t, missing+": "+syscall.ENOENT.Error()+"\n", r.stderr)
	})

	t.Run("Directory stops the run", func(t *testing.T) {
		r := invoke(Flags{Number: true}, "", dir, filepath.Join(dir, "x.txt"))
		assert.Equal(t, int(syscall.EISDIR), r.code)
		assert.Empty(t, r.stdout)
		assert.Equal(t, dir+": "+syscall.EISDIR.Error()+"\n", r.stderr)
	})

	t.Run("Stats are logged to stderr", func(t *testing.T) {
		r := invoke(Flags{Stats: true, SqueezeBlank: true}, "", p("squeeze.txt")...)
		assert.Equal(t, 0, r.code)
		assert.Equal(t, "a\n\nb\n", r.stdout)
		assert.Contains(t, r.stderr, "catena_lines_squeezed_total")
	})

	t.Run("Debug logs go to stderr only", func(t *testing.T) {
		r := invoke(Flags{Debug: true, Number: true}, "", p("x.txt")...)
		assert.Equal(t, "     1\tx\n", r.stdout)
		assert.Contains(t, r.stderr, "source open")
	})
}

func TestRun_ConfigFile(t *testing.T) {
	dir := testutils.WriteFixtures(t, map[string]string{
		"catena.yaml": "end_marker: \"<|\"\nsqueeze_blank: true\n",
		"bad.yaml":    "number: sometimes\n",
		"in.txt":      "a\n\n\n",
	})
	in := filepath.Join(dir, "in.txt")

	t.Run("From flag", func(t *testing.T) {
		t.Setenv(config.EnvVar, "")
		r := invoke(Flags{ConfigPath: filepath.Join(dir, "catena.yaml"), ShowEnds: true}, "", in)
		assert.Equal(t, 0, r.code)
		assert.Equal(t, "a<|\n<|\n", r.stdout)
	})

	t.Run("From environment", func(t *testing.T) {
		t.Setenv(config.EnvVar, filepath.Join(dir, "catena.yaml"))
		r := invoke(Flags{}, "", in)
		assert.Equal(t, "a\n\n", r.stdout)
	})

	t.Run("Invalid file fails before I/O", func(t *testing.T) {
		t.Setenv(config.EnvVar, "")
		r := invoke(Flags{ConfigPath: filepath.Join(dir, "bad.yaml")}, "", in)
		assert.Equal(t, 1, r.code)
		assert.Empty(t, r.stdout)
		assert.Contains(t, r.stderr, "unknown numbering mode")
	})

	t.Run("Missing file", func(t *testing.T) {
		t.Setenv(config.EnvVar, "")
		r := invoke(Flags{ConfigPath: filepath.Join(dir, "nope.yaml")}, "", in)
		assert.Equal(t, 1, r.code)
		assert.Contains(t, r.stderr, "failed to read config")
	})
}
