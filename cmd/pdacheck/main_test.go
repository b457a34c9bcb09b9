package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRun_Expressions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantOut  string
	}{
		{
			name:     "accepted infix",
			args:     []string{"-infix", "(a+b)*c"},
			wantCode: exitOK,
			wantOut:  "Converted postfix: a b + c *",
		},
		{
			name:     "rejected infix",
			args:     []string{"-infix", "a+"},
			wantCode: exitRejected,
			wantOut:  "REJECTED: infix expression \"a+\" is invalid (not enough operands)",
		},
		{
			name:     "unbalanced infix",
			args:     []string{"-infix", "(a"},
			wantCode: exitRejected,
			wantOut:  "mismatched parentheses",
		},
		{
			name:     "convert",
			args:     []string{"-convert", "-infix", "a^b^c"},
			wantCode: exitOK,
			wantOut:  "Postfix: a b c ^ ^",
		},
		{
			name:     "convert error",
			args:     []string{"-convert", "-infix", "a)"},
			wantCode: exitRejected,
			wantOut:  "Error converting infix to postfix",
		},
		{
			name:     "accepted postfix",
			args:     []string{"-postfix", "3 4 + 2 *"},
			wantCode: exitOK,
			wantOut:  "ACCEPTED: postfix expression",
		},
		{
			name:     "rejected postfix",
			args:     []string{"-postfix", "1 2"},
			wantCode: exitRejected,
			wantOut:  "leftover operands",
		},
		{
			name:     "trace",
			args:     []string{"-trace", "-postfix", "x sin"},
			wantCode: exitOK,
			wantOut:  "POP 1, PUSH 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, out, _ := runCLI(t, tt.args...)
			assert.Equal(t, tt.wantCode, code, out)
			assert.Contains(t, out, tt.wantOut)
		})
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := [][]string{
		{},
		{"-convert"},
		{"-infix", "a", "-postfix", "a"},
		{"-convert", "-postfix", "a b +"},
		{"-output", "out.json", "-infix", "a"},
		{"-unknown"},
		{"-infix", "a", "extra"},
	}

	for _, args := range tests {
		code, _, _ := runCLI(t, args...)
		assert.Equal(t, exitUsage, code, "%v", args)
	}
}

func TestRun_Suite(t *testing.T) {
	out := filepath.Join(t.TempDir(), "report.json")
	suitePath := filepath.Join("..", "..", "internal", "suite", "testdata", "arithmetic.yaml")

	code, stdout, _ := runCLI(t, "-suite", suitePath, "-output", out)
	require.Equal(t, exitOK, code, stdout)
	assert.Contains(t, stdout, "Expression Suite: arithmetic")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Contains(t, got, "result")
}

func TestRun_SuiteWithFailures(t *testing.T) {
	path := filepath.Join(t.TempDir(), "suite.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: failing
cases:
  - id: wrong
    kind: infix
    expression: "a +"
    expect: { accepted: true }
`), 0o600))

	code, stdout, _ := runCLI(t, "-suite", path)
	assert.Equal(t, exitRejected, code)
	assert.Contains(t, stdout, "FAIL wrong")
}

func TestRun_RecordInMemory(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORAGE_TYPE", "in_mem")

	code, out, _ := runCLI(t, "-record", "-infix", "a*b")
	assert.Equal(t, exitOK, code, out)
}

func TestRun_RecordInvalidStore(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("STORAGE_TYPE", "redis")

	code, _, _ := runCLI(t, "-record", "-infix", "a*b")
	assert.Equal(t, exitRejected, code)
}
