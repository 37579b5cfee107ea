// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

const bucketContentInfoSchema string = `
{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"description": "Properties of Custom::DeleteBucketContent. The bucket is emptied when the resource is deleted.",
	"type": "object",
	"required": ["ServiceToken", "BucketName"],
	"properties": {
		"ServiceToken": {
			"type": "string",
			"description": "ARN of the deployment helper Lambda function."
		},
		"BucketName": {
			"type": "string",
			"minLength": 1,
			"description": "Name of the bucket whose object versions and delete markers are removed on delete."
		}
	}
}
`

type BucketContentInfo struct {
	BucketName string
}

func NewBucketContentInfo(props map[string]interface{}) (*BucketContentInfo, error) {
	var bi BucketContentInfo
	if err := decodeProperties(bucketContentInfoSchema, props, &bi); err != nil {
		return nil, err
	}
	return &bi, nil
}
