package main

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"testing"

	"github.com/haormj/version"
	"github.com/stretchr/testify/require"
)

func execute(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestRunPrintsCount(t *testing.T) {
	if testing.Short() {
		t.Skip("full range takes seconds")
	}

	out, err := execute()
	require.NoError(t, err)
	require.Regexp(t, `^Found 3975 primes in \d+\.\d{3} seconds\n$`, out)
}

func TestRejectsArguments(t *testing.T) {
	out, err := execute("extra")
	require.Error(t, err)
	require.Empty(t, out)
}

func TestRejectsBadFlags(t *testing.T) {
	_, err := execute("--clock", "sundial")
	require.Error(t, err)

	_, err = execute("--log-level", "loud")
	require.Error(t, err)
}

func TestVersionFlag(t *testing.T) {
	out, err := execute("--version")
	require.NoError(t, err)
	require.Contains(t, out, version.Version)
}

// TestHelperProcess stands in for the primes binary when re-executed by
// TestMainExitsOnError.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	os.Args = []string{"primes", "--log-level", "debug", "--clock", "sundial"}
	main()
	os.Exit(0)
}

func TestMainExitsOnError(t *testing.T) {
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(), "GO_WANT_HELPER_PROCESS=1")

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 1, exitErr.ExitCode())
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), `"msg":"primes failed"`)
	require.Contains(t, stderr.String(), "sundial")
}
