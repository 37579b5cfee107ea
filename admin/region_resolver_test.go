// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/aws-samples/deployment-helper-resource/admin/mocks"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestRegionResolver(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockEC2Client(ctrl)
	client.EXPECT().DescribeRegions(gomock.Any(), &ec2.DescribeRegionsInput{}).Return(&ec2.DescribeRegionsOutput{
		Regions: []ec2types.Region{
			{RegionName: aws.String("us-east-1")},
			{RegionName: aws.String("ap-northeast-3")},
			{RegionName: aws.String("eu-west-1")},
			{},
		},
	}, nil)

	regions, err := newRegionResolver(client).Resolve(context.TODO())
	assert.Nil(t, err)
	assert.Equal(t, []string{"us-east-1", "eu-west-1"}, regions)
	assert.NotContains(t, regions, ExcludedRegion)
}

func TestRegionResolverError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	client := mocks.NewMockEC2Client(ctrl)
	client.EXPECT().DescribeRegions(gomock.Any(), gomock.Any()).Return(nil, errors.New("denied"))

	regions, err := newRegionResolver(client).Resolve(context.TODO())
	assert.EqualError(t, err, "denied")
	assert.Nil(t, regions)
}
