// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const hostedZoneInfoSchema string = `
{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Properties of Custom::GetHostedZoneId.",
	"type": "object",
	"required": ["ServiceToken", "DnsName"],
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the deployment helper Lambda function."
		},
		"DnsName": {
			"type": "string",
			"minLength": 1,
			"description": "DNS name of the hosted zone, e.g. example.com."
		}
	}
}
`

type HostedZoneInfo struct {
	DnsName string
}

func NewHostedZoneInfo(props map[string]interface{}) (*HostedZoneInfo, error) {
	var hi HostedZoneInfo
	if err := decodeProperties(hostedZoneInfoSchema, props, &hi); err != nil {
		return nil, err
	}
	return &hi, nil
}
