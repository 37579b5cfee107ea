// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"critical": zapcore.DPanicLevel,
		"CRITICAL": zapcore.DPanicLevel,
		"error":    zapcore.ErrorLevel,
		"Warn":     zapcore.WarnLevel,
		"info":     zapcore.InfoLevel,
		"DEBUG":    zapcore.DebugLevel,
		" debug ":  zapcore.DebugLevel,
		"warning":  zapcore.InfoLevel,
		"verbose":  zapcore.InfoLevel,
		"":         zapcore.InfoLevel,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLogLevel(in), in)
	}
}

func TestLoadSettingsFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "")
		t.Setenv(EnvBucketDeletionDelay, "")
		s, err := LoadSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, zapcore.InfoLevel, s.LogLevel)
		assert.Equal(t, 60*time.Second, s.BucketDeletionDelay)
	})

	t.Run("Explicit values", func(t *testing.T) {
		t.Setenv(EnvLogLevel, "Error")
		t.Setenv(EnvBucketDeletionDelay, "5s")
		s, err := LoadSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, zapcore.ErrorLevel, s.LogLevel)
		assert.Equal(t, 5*time.Second, s.BucketDeletionDelay)
	})

	t.Run("Zero delay", func(t *testing.T) {
		t.Setenv(EnvBucketDeletionDelay, "0s")
		s, err := LoadSettingsFromEnv()
		require.NoError(t, err)
		assert.Equal(t, time.Duration(0), s.BucketDeletionDelay)
	})

	t.Run("Malformed delay", func(t *testing.T) {
		t.Setenv(EnvBucketDeletionDelay, "a minute")
		_, err := LoadSettingsFromEnv()
		assert.ErrorContains(t, err, EnvBucketDeletionDelay)
	})

	t.Run("Negative delay", func(t *testing.T) {
		t.Setenv(EnvBucketDeletionDelay, "-1s")
		_, err := LoadSettingsFromEnv()
		assert.ErrorContains(t, err, "must not be negative")
	})
}

func TestNewLogger(t *testing.T) {
	logger, err := NewLogger(zapcore.WarnLevel)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}
