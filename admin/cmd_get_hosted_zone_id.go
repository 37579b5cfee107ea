// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"

	"github.com/aws-samples/deployment-helper-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/route53"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const PropHostedZoneID string = "HostedZoneId"

type cmdGetHostedZoneID struct {
	route53Client Route53Client
	logger        *zap.Logger
}

func newCmdGetHostedZoneID(route53Client Route53Client, logger *zap.Logger) *cmdGetHostedZoneID {
	return &cmdGetHostedZoneID{
		route53Client: route53Client,
		logger:        logger,
	}
}

// Run looks up the hosted zone named info.DnsName and returns its ID
// without the /hostedzone/ prefix. When several zones share the name the
// first one listed by Route53 wins. Nothing is done on delete.
func (a *cmdGetHostedZoneID) Run(ctx context.Context, requestType cfn.RequestType, info *types.HostedZoneInfo) (map[string]interface{}, error) {
	props := make(map[string]interface{})
	if requestType == cfn.RequestDelete {
		return props, nil
	}
	a.logger.Sugar().Infow("Start Operation", "Name", "ListHostedZonesByName", "DnsName", info.DnsName)
	out, err := a.route53Client.ListHostedZonesByName(ctx, &route53.ListHostedZonesByNameInput{
		DNSName: aws.String(info.DnsName),
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	// Listing starts at DNSName and continues in name order, so later
	// entries may belong to other zones.
	for _, z := range out.HostedZones {
		if !sameDNSName(aws.ToString(z.Name), info.DnsName) {
			continue
		}
		id := bareHostedZoneID(aws.ToString(z.Id))
		a.logger.Sugar().Debugw("Hosted zone resolved", "DnsName", info.DnsName, "HostedZoneId", id)
		props[PropHostedZoneID] = id
		return props, nil
	}
	return nil, errors.Errorf("no hosted zone found for %s", info.DnsName)
}
