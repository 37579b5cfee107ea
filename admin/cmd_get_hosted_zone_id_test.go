// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"
	"testing"

	"github.com/aws-samples/deployment-helper-resource/admin/mocks"
	tt "github.com/aws-samples/deployment-helper-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	r53types "github.com/aws/aws-sdk-go-v2/service/route53/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestCmdGetHostedZoneID(t *testing.T) {
	type testCase struct {
		name    string
		dnsName string
		zones   []r53types.HostedZone
		output  map[string]interface{}
		err     string
	}
	cases := []testCase{
		{
			name:    "Single match",
			dnsName: "example.com",
			zones: []r53types.HostedZone{
				{Id: aws.String("/hostedzone/Z0123456789ABC"), Name: aws.String("example.com.")},
			},
			output: map[string]interface{}{PropHostedZoneID: "Z0123456789ABC"},
		},
		{
			name:    "First of several matches",
			dnsName: "Example.com.",
			zones: []r53types.HostedZone{
				{Id: aws.String("/hostedzone/ZPRIVATE"), Name: aws.String("example.com.")},
				{Id: aws.String("/hostedzone/ZPUBLIC"), Name: aws.String("example.com.")},
				{Id: aws.String("/hostedzone/ZOTHER"), Name: aws.String("example.net.")},
			},
			output: map[string]interface{}{PropHostedZoneID: "ZPRIVATE"},
		},
		{
			name:    "Only later zones listed",
			dnsName: "example.com",
			zones: []r53types.HostedZone{
				{Id: aws.String("/hostedzone/ZOTHER"), Name: aws.String("example.net.")},
			},
			err: "no hosted zone found for example.com",
		},
		{
			name:    "No zones",
			dnsName: "example.com",
			err:     "no hosted zone found for example.com",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			client := mocks.NewMockRoute53Client(ctrl)
			client.EXPECT().ListHostedZonesByName(gomock.Any(), &route53.ListHostedZonesByNameInput{
				DNSName: aws.String(c.dnsName),
			}).Return(&route53.ListHostedZonesByNameOutput{HostedZones: c.zones}, nil)

			cmd := newCmdGetHostedZoneID(client, newTestLogger(t))
			props, err := cmd.Run(context.TODO(), cfn.RequestCreate, &tt.HostedZoneInfo{DnsName: c.dnsName})
			if c.err != "" {
				assert.EqualError(t, err, c.err)
				assert.Nil(t, props)
				return
			}
			assert.Nil(t, err)
			assert.Equal(t, c.output, props)
		})
	}
}

func TestCmdGetHostedZoneIDOnDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockRoute53Client(ctrl)

	cmd := newCmdGetHostedZoneID(client, newTestLogger(t))
	props, err := cmd.Run(context.TODO(), cfn.RequestDelete, &tt.HostedZoneInfo{DnsName: "example.com"})
	assert.Nil(t, err)
	assert.Empty(t, props)
}
