// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package main

import (
	"context"
	"time"

	"github.com/aws-samples/deployment-helper-resource/admin"
	"github.com/aws-samples/deployment-helper-resource/settings"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/config"
	"go.uber.org/zap"
)

var handler cfn.CustomResourceLambdaFunction

func init() {
	s, err := settings.LoadSettingsFromEnv()
	if err != nil {
		panic(err)
	}
	// One logger per process, shared by all invocations.
	logger, err := settings.NewLogger(s.LogLevel)
	if err != nil {
		panic(err)
	}
	logger.Info("Settings loaded", zap.Stringer("LogLevel", s.LogLevel), zap.Duration("BucketDeletionDelay", s.BucketDeletionDelay))
	delay := func() { time.Sleep(s.BucketDeletionDelay) }

	handler = cfn.LambdaWrap(func(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
		defer logger.Sync()
		cfg, err := config.LoadDefaultConfig(ctx)
		if err != nil {
			return "", nil, err
		}
		h := admin.NewHandler(admin.NewAwsClientFactory(cfg), delay, logger)
		return h.Handle(ctx, event)
	})
}

func main() {
	lambda.Start(handler)
}
