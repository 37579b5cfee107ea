// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ClientFactory hands out service clients. CloudWatch Logs clients are
// bound to the region they are requested for.
type ClientFactory interface {
	S3() S3Client
	EC2() EC2Client
	Route53() Route53Client
	CloudWatchLogs(region string) CloudWatchLogsClient
}

// AwsClientFactory creates SDK clients from a shared aws.Config. Clients
// for the home region are created once; regional CloudWatch Logs clients
// are cached per region.
type AwsClientFactory struct {
	cfg     aws.Config
	s3      *s3.Client
	ec2     *ec2.Client
	route53 *route53.Client
	logs    map[string]*cloudwatchlogs.Client
}

func (f *AwsClientFactory) S3() S3Client {
	return f.s3
}

func (f *AwsClientFactory) EC2() EC2Client {
	return f.ec2
}

func (f *AwsClientFactory) Route53() Route53Client {
	return f.route53
}

func (f *AwsClientFactory) CloudWatchLogs(region string) CloudWatchLogsClient {
	if c, ok := f.logs[region]; ok {
		return c
	}
	c := cloudwatchlogs.NewFromConfig(f.cfg, func(o *cloudwatchlogs.Options) {
		o.Region = region
	})
	f.logs[region] = c
	return c
}

func NewAwsClientFactory(cfg aws.Config) *AwsClientFactory {
	return &AwsClientFactory{
		cfg:     cfg,
		s3:      s3.NewFromConfig(cfg),
		ec2:     ec2.NewFromConfig(cfg),
		route53: route53.NewFromConfig(cfg),
		logs:    make(map[string]*cloudwatchlogs.Client),
	}
}
