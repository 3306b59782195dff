package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/roman/internal/cli"
)

func TestRun_Shell(t *testing.T) {
	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	in := strings.NewReader("XIV\nMMMM\nmcmxciv\nq\n")

	err := run(context.Background(), []string{"-lang", "en"}, in, stdout, stderr)
	require.NoError(t, err)

	out := stdout.String()
	assert.Contains(t, out, "Enter 'q' to quit the application")
	assert.Contains(t, out, "\n14\n")
	assert.Contains(t, out, "Invalid input")
	assert.Contains(t, out, "\n1994\n")
	assert.True(t, strings.HasSuffix(out, "Goodbye\n"))
}

func TestRun_ShellEOF(t *testing.T) {
	stdout := &bytes.Buffer{}
	err := run(context.Background(), []string{"shell", "-quit", "exit"}, strings.NewReader("iv"), stdout, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "Enter 'exit' to quit")
	assert.Contains(t, stdout.String(), "\n4\n")
}

func TestRun_Help(t *testing.T) {
	stdout := &bytes.Buffer{}
	require.NoError(t, run(context.Background(), []string{"help"}, strings.NewReader(""), stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), "Usage:")
}

func TestRun_UsageError(t *testing.T) {
	err := run(context.Background(), []string{"frobnicate"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_InvalidConfig(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")

	err := run(context.Background(), nil, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
	assert.Contains(t, exitErr.Message, "chatty")
}

func TestRun_MalformedEnv(t *testing.T) {
	t.Setenv("HTTP_WRITE_TIMEOUT", "later")

	err := run(context.Background(), []string{"serve"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 2, exitErr.Code)
}

func TestRun_Serve(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	stderr := &bytes.Buffer{}
	err := run(ctx, []string{"serve", "-addr", "127.0.0.1:0", "-log-format", "json"}, strings.NewReader(""), &bytes.Buffer{}, stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), `"msg":"HTTP server started"`)
}
