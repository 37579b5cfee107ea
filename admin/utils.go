// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

const (
	policyVersion         = "2012-10-17"
	subscribeStatementSid = "AllowSpokesSubscribe"
	subscribeFilterAction = "logs:PutSubscriptionFilter"
)

type policyPrincipal struct {
	AWS []string `json:"AWS"`
}

type policyStatement struct {
	Sid       string          `json:"Sid"`
	Effect    string          `json:"Effect"`
	Principal policyPrincipal `json:"Principal"`
	Action    string          `json:"Action"`
	Resource  string          `json:"Resource"`
}

type policyDocument struct {
	Version   string            `json:"Version"`
	Statement []policyStatement `json:"Statement"`
}

// Access policy allowing spokeAccounts to subscribe log groups to the
// destination identified by destinationArn.
func destinationAccessPolicy(spokeAccounts []string, destinationArn string) (string, error) {
	doc := policyDocument{
		Version: policyVersion,
		Statement: []policyStatement{
			{
				Sid:       subscribeStatementSid,
				Effect:    "Allow",
				Principal: policyPrincipal{AWS: spokeAccounts},
				Action:    subscribeFilterAction,
				Resource:  destinationArn,
			},
		},
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// Regions a destination is written to: the requested ones, or every
// enabled region when none are requested.
func targetRegions(requested, all []string) []string {
	if len(requested) > 0 {
		return requested
	}
	return all
}

// Destinations are only reconciled when the target covers every enabled
// region.
func coversAllRegions(target, all []string) bool {
	return lo.Every(target, all)
}

// Route53 reports zone IDs as /hostedzone/<id>.
func bareHostedZoneID(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Zone names compare case-insensitively and without the trailing root dot.
func sameDNSName(a, b string) bool {
	return strings.EqualFold(strings.TrimSuffix(a, "."), strings.TrimSuffix(b, "."))
}

// CloudFormation needs a physical resource ID even on failure. The logical
// ID is echoed back; a random one is used when the event carries none.
func physicalResourceID(logicalResourceID string) string {
	if logicalResourceID == "" {
		return uuid.NewString()
	}
	return logicalResourceID
}
