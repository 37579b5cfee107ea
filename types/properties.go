// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package types

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// ResourceType selects the command that handles a custom resource.
type ResourceType string

const (
	ResourceTypeDeleteBucketContent   ResourceType = "Custom::DeleteBucketContent"
	ResourceTypeCloudWatchDestination ResourceType = "Custom::CloudWatchDestination"
	ResourceTypeGetHostedZoneID       ResourceType = "Custom::GetHostedZoneId"
)

// decodeProperties validates props against schema and, when valid,
// unmarshals them into out.
func decodeProperties(schema string, props map[string]interface{}, out interface{}) error {
	buf, err := json.Marshal(props)
	if err != nil {
		return err
	}
	schemaLoader := gojsonschema.NewStringLoader(schema)
	documentLoader := gojsonschema.NewBytesLoader(buf)
	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return err
	}
	if !result.Valid() {
		msgs := make([]string, len(result.Errors()))
		for i, e := range result.Errors() {
			msgs[i] = e.String()
		}
		return errors.New(strings.Join(msgs, " "))
	}
	return json.Unmarshal(buf, out)
}
