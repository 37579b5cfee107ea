// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

//go:generate mockgen -source=region_resolver.go -destination=mocks/mock_region_resolver.go -package=mocks

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	ec2types "github.com/aws/aws-sdk-go-v2/service/ec2/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"
)

type RegionResolverService interface {
	Resolve(ctx context.Context) ([]string, error)
}

// CloudWatch Logs destinations are never managed in this region.
const ExcludedRegion = "ap-northeast-3"

type regionResolver struct {
	ec2Client EC2Client
}

func newRegionResolver(ec2Client EC2Client) *regionResolver {
	return &regionResolver{
		ec2Client: ec2Client,
	}
}

// Resolve returns the regions enabled for the account, as reported by EC2,
// without ExcludedRegion.
func (r *regionResolver) Resolve(ctx context.Context) ([]string, error) {
	out, err := r.ec2Client.DescribeRegions(ctx, &ec2.DescribeRegionsInput{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return lo.FilterMap(out.Regions, func(region ec2types.Region, _ int) (string, bool) {
		name := aws.ToString(region.RegionName)
		return name, name != "" && name != ExcludedRegion
	}), nil
}
