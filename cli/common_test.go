package cli

import (
	"bytes"
	"context"
	"testing"
)

type testResult struct {
	out    string
	errOut string
	err    error
}

func execute(t *testing.T, args []string) testResult {
	return executeContext(t, context.Background(), args)
}

func executeContext(t *testing.T, ctx context.Context, args []string) testResult {
	var out, errOut bytes.Buffer

	cli := &Cli{version: "test-version"}

	rootCmd := newRootCmd(cli)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.ExecuteContext(ctx)

	return testResult{out: out.String(), errOut: errOut.String(), err: err}
}

func mustExecute(t *testing.T, args []string) testResult {
	result := execute(t, args)
	if result.err != nil {
		t.Fatalf("failed to execute %v: %v\n%s", args, result.err, result.errOut)
	}
	return result
}
