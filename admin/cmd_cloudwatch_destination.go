// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"

	"github.com/aws-samples/deployment-helper-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs"
	cwltypes "github.com/aws/aws-sdk-go-v2/service/cloudwatchlogs/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

type cmdCloudWatchDestination struct {
	regionResolver RegionResolverService
	clientFactory  ClientFactory
	logger         *zap.Logger
}

func newCmdCloudWatchDestination(regionResolver RegionResolverService, clientFactory ClientFactory, logger *zap.Logger) *cmdCloudWatchDestination {
	return &cmdCloudWatchDestination{
		regionResolver: regionResolver,
		clientFactory:  clientFactory,
		logger:         logger,
	}
}

// Run keeps a destination named info.DestinationName in every enabled
// region. old carries the previous properties on update and may be nil.
// Regions are processed one at a time and the first error aborts the run;
// regions already processed keep their new state.
func (a *cmdCloudWatchDestination) Run(ctx context.Context, requestType cfn.RequestType, info, old *types.DestinationInfo) error {
	allRegions, err := a.regionResolver.Resolve(ctx)
	if err != nil {
		return errors.WithStack(err)
	}
	allRegions = lo.Without(allRegions, ExcludedRegion)
	a.logger.Sugar().Debugw("Resolved regions", "Regions", allRegions)

	switch requestType {
	case cfn.RequestCreate, cfn.RequestUpdate:
		regions := targetRegions(info.Regions, allRegions)
		if !coversAllRegions(regions, allRegions) {
			a.logger.Sugar().Debugw("Skip destination reconciliation, regions do not cover every enabled region",
				"DestinationName", info.DestinationName, "Regions", regions)
			return nil
		}
		// Requested regions only gate the run; writes go to enabled regions.
		if err := a.deleteDestinations(ctx, info.DestinationName, allRegions); err != nil {
			return err
		}
		if err := a.createDestinations(ctx, info, allRegions); err != nil {
			return err
		}
		if requestType == cfn.RequestUpdate && old != nil && old.DestinationName != "" && old.DestinationName != info.DestinationName {
			a.logger.Sugar().Infow("Destination renamed", "OldDestinationName", old.DestinationName, "DestinationName", info.DestinationName)
			return a.deleteDestinations(ctx, old.DestinationName, allRegions)
		}
	case cfn.RequestDelete:
		return a.deleteDestinations(ctx, info.DestinationName, allRegions)
	}
	return nil
}

func (a *cmdCloudWatchDestination) deleteDestinations(ctx context.Context, name string, regions []string) error {
	for _, r := range regions {
		client := a.clientFactory.CloudWatchLogs(r)
		a.logger.Sugar().Infow("Start Operation", "Name", "DeleteDestination", "DestinationName", name, "Region", r)
		_, err := client.DeleteDestination(ctx, &cloudwatchlogs.DeleteDestinationInput{
			DestinationName: aws.String(name),
		})
		if err != nil {
			var nf *cwltypes.ResourceNotFoundException
			if !errors.As(err, &nf) {
				return errors.Wrapf(err, "delete destination %s in %s", name, r)
			}
			a.logger.Sugar().Debugw("Retry Handled", "Operation", "DeleteDestination", "DestinationName", name, "Region", r)
		}
	}
	return nil
}

func (a *cmdCloudWatchDestination) createDestinations(ctx context.Context, info *types.DestinationInfo, regions []string) error {
	for _, r := range regions {
		client := a.clientFactory.CloudWatchLogs(r)
		a.logger.Sugar().Infow("Start Operation", "Name", "PutDestination", "DestinationName", info.DestinationName, "Region", r)
		out, err := client.PutDestination(ctx, &cloudwatchlogs.PutDestinationInput{
			DestinationName: aws.String(info.DestinationName),
			TargetArn:       aws.String(info.DataStreamArn),
			RoleArn:         aws.String(info.RoleArn),
		})
		if err != nil {
			return errors.Wrapf(err, "put destination %s in %s", info.DestinationName, r)
		}
		if out.Destination == nil || out.Destination.Arn == nil {
			return errors.Errorf("put destination %s in %s returned no ARN", info.DestinationName, r)
		}
		policy, err := destinationAccessPolicy(info.SpokeAccounts, *out.Destination.Arn)
		if err != nil {
			return errors.WithStack(err)
		}
		a.logger.Sugar().Infow("Start Operation", "Name", "PutDestinationPolicy", "DestinationName", info.DestinationName, "Region", r)
		_, err = client.PutDestinationPolicy(ctx, &cloudwatchlogs.PutDestinationPolicyInput{
			DestinationName: aws.String(info.DestinationName),
			AccessPolicy:    aws.String(policy),
		})
		if err != nil {
			return errors.Wrapf(err, "put destination policy %s in %s", info.DestinationName, r)
		}
	}
	return nil
}
