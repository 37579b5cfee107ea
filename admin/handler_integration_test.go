// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

//go:build integration

package admin

import (
	"context"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestIntegration(t *testing.T) {
	dnsName := os.Getenv("HOSTED_ZONE_NAME")
	if dnsName == "" {
		panic("Missing environment variable: HOSTED_ZONE_NAME")
	}
	roleArn := os.Getenv("DESTINATION_ROLE_ARN")
	if roleArn == "" {
		panic("Missing environment variable: DESTINATION_ROLE_ARN")
	}
	streamArn := os.Getenv("DATA_STREAM_ARN")
	if streamArn == "" {
		panic("Missing environment variable: DATA_STREAM_ARN")
	}
	bucket := os.Getenv("BUCKET_NAME")
	if bucket == "" {
		panic("Missing environment variable: BUCKET_NAME")
	}
	account := os.Getenv("SPOKE_ACCOUNT")
	if account == "" {
		panic("Missing environment variable: SPOKE_ACCOUNT")
	}

	d := runHandler(t, cfn.RequestCreate, "Custom::GetHostedZoneId", map[string]interface{}{"DnsName": dnsName})
	assert.NotEmpty(t, d[PropHostedZoneID])

	destination := map[string]interface{}{
		"Regions":         []string{},
		"DestinationName": "integration-test",
		"RoleArn":         roleArn,
		"DataStreamArn":   streamArn,
		"SpokeAccounts":   []string{account},
	}
	runHandler(t, cfn.RequestCreate, "Custom::CloudWatchDestination", destination)
	runHandler(t, cfn.RequestUpdate, "Custom::CloudWatchDestination", destination)
	runHandler(t, cfn.RequestDelete, "Custom::CloudWatchDestination", destination)
	runHandler(t, cfn.RequestDelete, "Custom::CloudWatchDestination", destination)

	runHandler(t, cfn.RequestDelete, "Custom::DeleteBucketContent", map[string]interface{}{"BucketName": bucket})
}

func runHandler(t *testing.T, requestType cfn.RequestType, resourceType string, properties map[string]interface{}) map[string]interface{} {
	ctx := context.TODO()
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		panic(err)
	}
	logger, _ := zap.NewDevelopment()
	handler := NewHandler(NewAwsClientFactory(cfg), func() {}, logger)
	properties["ServiceToken"] = "token"
	rid, d, err := handler.Handle(ctx, cfn.Event{
		RequestType:        requestType,
		ResourceType:       resourceType,
		LogicalResourceID:  "IntegrationTest",
		StackID:            "integration-test",
		ResourceProperties: properties,
	})
	assert.Equal(t, "IntegrationTest", rid)
	assert.Nil(t, err)
	logger.Sugar().Infow("Handler Completed", "Operation", requestType, "ResourceType", resourceType, "PhysicalResourceID", rid)
	return d
}
