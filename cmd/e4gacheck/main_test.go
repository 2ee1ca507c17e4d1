// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/e4ga/oracle"
)

func execute(t *testing.T, cfg envConfig, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(cfg, &out, &errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestLoadEnv(t *testing.T) {
	cfg, err := loadEnv(map[string]string{
		"E4GA_SEED":            "42",
		"E4GA_ITERATION_SCALE": "0.5",
		"E4GA_PARALLELISM":     "3",
		"E4GA_FORMAT":          "yaml",
	})
	require.NoError(t, err)
	require.Equal(t, envConfig{Seed: 42, IterationScale: 0.5, Parallelism: 3, Format: "yaml"}, cfg)

	cfg, err = loadEnv(map[string]string{})
	require.NoError(t, err)
	require.Equal(t, defaultEnvConfig(), cfg)

	_, err = loadEnv(map[string]string{"E4GA_SEED": "not-a-number"})
	require.ErrorContains(t, err, "parse env")
}

func TestRun_TextReport(t *testing.T) {
	out, errOut, err := execute(t, defaultEnvConfig(),
		"--seed", "7", "--scale", "0.05",
		"--check", "additive-inverse", "--check", "parse-roundtrip",
	)
	require.NoError(t, err)
	assert.Contains(t, out, "PASS additive-inverse")
	assert.Contains(t, out, "PASS parse-roundtrip")
	assert.Contains(t, out, "seed 7, scale 0.05: 2/2 passed")
	assert.Empty(t, errOut)
}

func TestRun_YAMLFromEnvDefault(t *testing.T) {
	cfg := defaultEnvConfig()
	cfg.Format = formatYAML
	cfg.Seed = 11
	out, _, err := execute(t, cfg, "--scale", "0.05", "--check", "metric-ground-truth")
	require.NoError(t, err)

	var rep oracle.Report
	require.NoError(t, yaml.Unmarshal([]byte(out), &rep))
	require.Equal(t, int64(11), rep.Seed)
	require.Len(t, rep.Results, 1)
	require.True(t, rep.Results[0].Passed)
}

func TestRun_UsageErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"format", []string{"--format", "xml"}, "unknown format"},
		{"scale", []string{"--scale", "0"}, "scale must be in"},
		{"parallel", []string{"--parallel", "-1"}, "parallel must be"},
		{"check", []string{"--check", "bogus"}, "unknown check"},
		{"positional", []string{"extra"}, "unknown command"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := execute(t, defaultEnvConfig(), tc.args...)
			require.ErrorContains(t, err, tc.want)
			require.NotErrorIs(t, err, errChecksFailed)
		})
	}
}

func TestRun_VerboseLogsToErrOut(t *testing.T) {
	_, errOut, err := execute(t, defaultEnvConfig(), "-v", "--scale", "0.05", "--check", "increment-decrement")
	require.NoError(t, err)
	assert.Contains(t, errOut, "oracle run started")
}

func TestEmitReport_FailedCheck(t *testing.T) {
	rep := &oracle.Report{
		Seed:           5,
		IterationScale: 1,
		Results: []oracle.Result{
			{Name: "gp-associativity", Description: "(ab)c = a(bc)", Passed: true, Deviation: 1e-15, Tolerance: 1e-12, Iterations: 10},
			{Name: "unit-norm", Description: "|unit(a)| = 1", Deviation: 0.25, Tolerance: 1e-12, Iterations: 10, Detail: "grade 2"},
		},
	}
	var out, errOut bytes.Buffer
	err := emitReport(rep, formatText, &out, &errOut)
	require.ErrorIs(t, err, errChecksFailed)
	assert.Contains(t, err.Error(), "1 of 2")

	lines := strings.Split(strings.TrimSpace(errOut.String()), "\n")
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "FAIL unit-norm:"), lines[0])
	assert.Contains(t, out.String(), "1/2 passed")
}

func TestEmitReport_AllPassed(t *testing.T) {
	rep := &oracle.Report{Seed: 1, IterationScale: 1, Results: []oracle.Result{
		{Name: "metric-ground-truth", Passed: true, Tolerance: 1e-12, Iterations: 1},
	}}
	var out, errOut bytes.Buffer
	require.NoError(t, emitReport(rep, formatYAML, &out, &errOut))
	assert.Empty(t, errOut.String())
	assert.Contains(t, out.String(), "metric-ground-truth")
}
