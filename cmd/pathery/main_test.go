package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const lineMap = "3.1.0.line:,s1.1,f1."

func TestRun_Map(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-map", lineMap}, strings.NewReader(""), &out))
	assert.Equal(t, "line\n|S|•|G|\nsteps: 2\n", out.String())
}

func TestRun_FileAndStdin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.txt")
	require.NoError(t, os.WriteFile(path, []byte(lineMap+"\n"), 0o600))

	var fromFile, fromStdin bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-file", path}, strings.NewReader(""), &fromFile))
	require.NoError(t, run(context.Background(), nil, strings.NewReader(lineMap), &fromStdin))
	assert.Equal(t, fromFile.String(), fromStdin.String())
}

func TestRun_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-json", "-map", lineMap}, strings.NewReader(""), &out))

	var got struct {
		Name      string
		Reachable bool
		Length    int
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "line", got.Name)
	assert.True(t, got.Reachable)
	assert.Equal(t, 2, got.Length)
}

func TestRun_TimeoutFlag(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-timeout", "1s", "-map", lineMap}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "steps: 2")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := run(ctx, []string{"-timeout", "1s", "-map", lineMap}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRun_Unreachable(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-map", "3.1.0.x:,s1.,r1.,f1."}, strings.NewReader(""), &out))
	assert.Contains(t, out.String(), "unreachable (stage 0)")
}

func TestRun_Errors(t *testing.T) {
	cases := map[string][]string{
		"BadMap":      {"-map", "garbage"},
		"MapAndFile":  {"-map", lineMap, "-file", "x"},
		"ViewAndJSON": {"-view", "-json", "-map", lineMap},
		"MissingFile": {"-file", filepath.Join(t.TempDir(), "absent")},
		"UnknownFlag": {"-nope"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, run(context.Background(), args, strings.NewReader(""), &bytes.Buffer{}))
		})
	}
}
