// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"testing"

	"github.com/aws-samples/deployment-helper-resource/admin/mocks"

	"github.com/golang/mock/gomock"
	"go.uber.org/zap"
)

// mockClientFactory returns a dedicated mock per service and, for CloudWatch
// Logs, per region. Regions not passed to newMockClientFactory get a mock
// without expectations, so any call to them fails the test.
type mockClientFactory struct {
	ctrl    *gomock.Controller
	s3      *mocks.MockS3Client
	ec2     *mocks.MockEC2Client
	route53 *mocks.MockRoute53Client
	logs    map[string]*mocks.MockCloudWatchLogsClient
}

func newMockClientFactory(ctrl *gomock.Controller, regions ...string) *mockClientFactory {
	f := &mockClientFactory{
		ctrl:    ctrl,
		s3:      mocks.NewMockS3Client(ctrl),
		ec2:     mocks.NewMockEC2Client(ctrl),
		route53: mocks.NewMockRoute53Client(ctrl),
		logs:    make(map[string]*mocks.MockCloudWatchLogsClient),
	}
	for _, r := range regions {
		f.logs[r] = mocks.NewMockCloudWatchLogsClient(ctrl)
	}
	return f
}

func (f *mockClientFactory) S3() S3Client {
	return f.s3
}

func (f *mockClientFactory) EC2() EC2Client {
	return f.ec2
}

func (f *mockClientFactory) Route53() Route53Client {
	return f.route53
}

func (f *mockClientFactory) CloudWatchLogs(region string) CloudWatchLogsClient {
	if _, ok := f.logs[region]; !ok {
		f.logs[region] = mocks.NewMockCloudWatchLogsClient(f.ctrl)
	}
	return f.logs[region]
}

func newTestLogger(t *testing.T) *zap.Logger {
	logger, err := zap.NewDevelopment()
	if err != nil {
		t.Fatal(err)
	}
	return logger
}
