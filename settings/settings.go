// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

// Package settings reads process wide configuration from the Lambda
// environment and builds the logger shared by all invocations.
package settings

import (
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EnvLogLevel            = "LOG_LEVEL"
	EnvBucketDeletionDelay = "BUCKET_DELETION_DELAY"

	DefaultBucketDeletionDelay = 60 * time.Second
)

type Settings struct {
	LogLevel zapcore.Level
	// Wait applied before bucket content is erased.
	BucketDeletionDelay time.Duration
}

// ParseLogLevel maps critical, error, warn, info and debug (in any case) to
// zap levels. Anything else yields info.
func ParseLogLevel(s string) zapcore.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "critical":
		return zapcore.DPanicLevel
	case "error":
		return zapcore.ErrorLevel
	case "warn":
		return zapcore.WarnLevel
	case "debug":
		return zapcore.DebugLevel
	default:
		return zapcore.InfoLevel
	}
}

func LoadSettingsFromEnv() (*Settings, error) {
	s := &Settings{
		LogLevel:            ParseLogLevel(os.Getenv(EnvLogLevel)),
		BucketDeletionDelay: DefaultBucketDeletionDelay,
	}
	if v, ok := os.LookupEnv(EnvBucketDeletionDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid %s", EnvBucketDeletionDelay)
		}
		if d < 0 {
			return nil, errors.Errorf("%s must not be negative: %s", EnvBucketDeletionDelay, v)
		}
		s.BucketDeletionDelay = d
	}
	return s, nil
}

// NewLogger builds a production JSON logger writing at level and above.
func NewLogger(level zapcore.Level) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(level)
	return cfg.Build()
}
