package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/haormj/cpubench/sched"
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

// TestHelperBenchmark stands in for the matmul binary in TestWritesCSV.
func TestHelperBenchmark(t *testing.T) {
	if os.Getenv("GO_WANT_HELPER_PROCESS") != "1" {
		return
	}

	fmt.Println("Elapsed time: 0.5000")
	os.Exit(0)
}

func TestWritesCSV(t *testing.T) {
	t.Setenv("GO_WANT_HELPER_PROCESS", "1")
	path := filepath.Join(t.TempDir(), "results.csv")

	out, err := execute("--tasks", "2", "--policy", "cfs", "--out", path,
		"--", os.Args[0], "-test.run=^TestHelperBenchmark$")
	require.NoError(t, err)
	require.Equal(t, "Results saved to "+path+"\n", out)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, sched.Header, rows[0])

	for _, row := range rows[1:] {
		require.Equal(t, "CFS", row[0])
		require.Equal(t, "0.5", row[6])
		require.Equal(t, sched.SourceOutput, row[7])
		require.Equal(t, "0", row[8])
	}
}

func TestRequiresCommand(t *testing.T) {
	_, err := execute("--tasks", "1")
	require.Error(t, err)
}

func TestRejectsUnknownPolicy(t *testing.T) {
	_, err := execute("--policy", "deadline", "--out", filepath.Join(t.TempDir(), "x.csv"), "--", "true")
	require.Error(t, err)
}
