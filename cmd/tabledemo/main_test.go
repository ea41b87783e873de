package main

import (
	"bytes"
	"testing"

	"github.com/g-m-twostay/chain-table/Maps/IntTable"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xyproto/env/v2"
)

// setenv sets an environment variable for the test and reloads env's cached copy of the environment.
func setenv(t *testing.T, key, value string) {
	t.Helper()
	t.Setenv(key, value)
	env.Load()
}

func TestRun(t *testing.T) {
	setenv(t, "CHAINTABLE_CAPACITY", "8")
	var buf bytes.Buffer
	require.NoError(t, run(defaultOptions(), &buf))
	assert.Equal(t, `Hash table after insertions:
Bucket 0: NULL
Bucket 1: (10, 100) <-> NULL
Bucket 2: (20, 200) <-> NULL
Bucket 3: NULL
Bucket 4: (30, 300) <-> NULL
Bucket 5: (40, 400) <-> NULL
Bucket 6: NULL
Bucket 7: (50, 500) <-> NULL

Hash table after removing key 30:
Bucket 0: NULL
Bucket 1: (10, 100) <-> NULL
Bucket 2: (20, 200) <-> NULL
Bucket 3: NULL
Bucket 4: NULL
Bucket 5: (40, 400) <-> NULL
Bucket 6: NULL
Bucket 7: (50, 500) <-> NULL

Value for key 40: 400
`, buf.String())
}

func TestRun_SmallTableGrows(t *testing.T) {
	opts := defaultOptions()
	opts.Capacity = 2
	var buf bytes.Buffer
	require.NoError(t, run(opts, &buf))
	assert.Contains(t, buf.String(), "Bucket 7:")
	assert.NotContains(t, buf.String(), "Bucket 8:")
	assert.Contains(t, buf.String(), "Value for key 40: 400")
}

func TestRun_BadConfig(t *testing.T) {
	opts := defaultOptions()
	opts.ShrinkAt = 0.9
	err := run(opts, &bytes.Buffer{})
	assert.ErrorIs(t, err, IntTable.ErrThreshold)
}

func TestDefaultOptions_Env(t *testing.T) {
	setenv(t, "CHAINTABLE_CAPACITY", "32")
	setenv(t, "CHAINTABLE_LOGLEVEL", "debug")
	opts := defaultOptions()
	assert.Equal(t, uint(32), opts.Capacity)
	assert.Equal(t, "debug", opts.LogLevel)

	setenv(t, "CHAINTABLE_CAPACITY", "-4")
	assert.Zero(t, defaultOptions().Capacity)

	setenv(t, "CHAINTABLE_CAPACITY", "16")
	assert.Equal(t, uint(16), defaultOptions().Capacity)
}

func TestSetupLogging(t *testing.T) {
	assert.NoError(t, setupLogging("warning"))
	assert.Error(t, setupLogging("loud"))
}
