// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> search service -> index manager -> store -> SQLite.
//
// The binary is built once and run against fixture indexes written into
// t.TempDir() with storetest. HOME points at a temporary directory so the
// developer's global config never leaks into a test.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"

	"github.com/jpl-au/juris/internal/store"
	"github.com/jpl-au/juris/internal/store/storetest"
	"github.com/stretchr/testify/assert"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the juris binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		tmpDir, err := os.MkdirTemp("", "juris-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "juris"
		if os.PathSeparator == '\\' {
			binaryName = "juris.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string // working directory
	home   string
	index  string // fixture index path, empty when none was built
	binary string
	env    []string
}

// newTestEnv creates an empty working directory with no index.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	home := t.TempDir()
	return &testEnv{
		t:      t,
		dir:    t.TempDir(),
		home:   home,
		binary: buildBinary(t),
		env:    []string{"HOME=" + home, "USERPROFILE=" + home},
	}
}

// newIndexEnv creates a test environment with a fixture index holding
// rulings, passed to every command through JURIS_INDEX.
func newIndexEnv(t *testing.T, rulings ...store.Ruling) *testEnv {
	t.Helper()

	e := newTestEnv(t)
	e.index = storetest.Build(t, rulings...)
	e.env = append(e.env, "JURIS_INDEX="+e.index)
	return e
}

// fixtureRulings is the default index used by most command tests.
func fixtureRulings() []store.Ruling {
	return []store.Ruling{
		storetest.Ruling(1, 2019, "Conselho Pleno", "Recurso sobre cassação da inscrição estadual do contribuinte."),
		storetest.Ruling(2, 2020, "1ª Câmara", "Auto de infração de ICMS com multa por substituição tributária."),
		storetest.Ruling(3, 2021, "2ª Câmara", "Cassação de benefício fiscal e multa moratória."),
		storetest.Ruling(4, 2021, "1ª Câmara", "ICMS sobre importação, inscrição em dívida ativa."),
	}
}

// run executes juris with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("juris %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes juris and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), e.env...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// stdout executes juris and returns stdout only, failing on error.
func (e *testEnv) stdout(args ...string) string {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(), e.env...)
	out, err := cmd.Output()
	if err != nil {
		e.t.Fatalf("juris %v failed: %v\noutput: %s", args, err, out)
	}
	return string(out)
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// notContains checks that output does not contain s.
func (e *testEnv) notContains(output, s string) {
	e.t.Helper()
	assert.NotContains(e.t, output, s)
}
