// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const destinationInfoSchema string = `
{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Properties of Custom::CloudWatchDestination. A CloudWatch Logs destination with the same name is maintained in every region.",
	"type": "object",
	"required": ["ServiceToken", "DestinationName", "RoleArn", "DataStreamArn", "SpokeAccounts"],
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the deployment helper Lambda function."
		},
		"Regions": {
			"type": "array",
			"description": "Regions to provision. Destinations are only written when this list is empty or covers every enabled region.",
			"items": {
				"type": "string"
			}
		},
		"DestinationName": {
			"type": "string",
			"minLength": 1,
			"description": "Name of the CloudWatch Logs destination."
		},
		"RoleArn": {
			"type": "string",
			"minLength": 1,
			"description": "ARN of the IAM role CloudWatch Logs assumes to put records into the data stream."
		},
		"DataStreamArn": {
			"type": "string",
			"minLength": 1,
			"description": "ARN of the Kinesis data stream backing the destination."
		},
		"SpokeAccounts": {
			"type": "array",
			"minItems": 1,
			"description": "Account IDs allowed to subscribe log groups to the destination.",
			"items": {
				"type": "string"
			}
		}
	}
}
`

// Deleting a destination only needs its name.
const destinationDeleteInfoSchema string = `
{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Properties of Custom::CloudWatchDestination read on delete.",
	"type": "object",
	"required": ["DestinationName"],
	"properties": {
		"DestinationName": {
			"type": "string",
			"minLength": 1,
			"description": "Name of the CloudWatch Logs destination."
		}
	}
}
`

type DestinationInfo struct {
	Regions         []string
	DestinationName string
	RoleArn         string
	DataStreamArn   string
	SpokeAccounts   []string
}

func NewDestinationInfo(props map[string]interface{}) (*DestinationInfo, error) {
	var di DestinationInfo
	if err := decodeProperties(destinationInfoSchema, props, &di); err != nil {
		return nil, err
	}
	return &di, nil
}

// NewDestinationDeleteInfo reads the properties of a delete request. Only
// DestinationName is checked against the schema.
func NewDestinationDeleteInfo(props map[string]interface{}) (*DestinationInfo, error) {
	var di DestinationInfo
	if err := decodeProperties(destinationDeleteInfoSchema, props, &di); err != nil {
		return nil, err
	}
	return &di, nil
}
