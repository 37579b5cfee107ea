// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"

	"github.com/aws-samples/deployment-helper-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	s3types "github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DeleteObjects accepts at most 1000 keys per request.
const maxDeleteObjects = 1000

type cmdDeleteBucketContent struct {
	s3Client   S3Client
	fixedDelay func()
	logger     *zap.Logger
}

func newCmdDeleteBucketContent(s3Client S3Client, fixedDelay func(), logger *zap.Logger) *cmdDeleteBucketContent {
	return &cmdDeleteBucketContent{
		s3Client:   s3Client,
		fixedDelay: fixedDelay,
		logger:     logger,
	}
}

// Run removes every object version and delete marker from the bucket when
// the resource is deleted. Other request types are ignored.
func (a *cmdDeleteBucketContent) Run(ctx context.Context, requestType cfn.RequestType, info *types.BucketContentInfo) error {
	a.logger.Sugar().Debugw("Bucket content request", "Bucket", info.BucketName, "RequestType", requestType)
	if requestType != cfn.RequestDelete {
		return nil
	}

	// Let in-flight writes settle before erasing.
	a.fixedDelay()

	var keyMarker, versionIDMarker *string
	deleted := 0
	for {
		a.logger.Sugar().Debugw("Start Operation", "Name", "ListObjectVersions", "Bucket", info.BucketName)
		page, err := a.s3Client.ListObjectVersions(ctx, &s3.ListObjectVersionsInput{
			Bucket:          aws.String(info.BucketName),
			KeyMarker:       keyMarker,
			VersionIdMarker: versionIDMarker,
		})
		if err != nil {
			return errors.WithStack(err)
		}

		ids := make([]s3types.ObjectIdentifier, 0, len(page.Versions)+len(page.DeleteMarkers))
		for _, v := range page.Versions {
			ids = append(ids, s3types.ObjectIdentifier{Key: v.Key, VersionId: v.VersionId})
		}
		for _, m := range page.DeleteMarkers {
			ids = append(ids, s3types.ObjectIdentifier{Key: m.Key, VersionId: m.VersionId})
		}
		for _, batch := range lo.Chunk(ids, maxDeleteObjects) {
			if err := a.deleteObjects(ctx, info.BucketName, batch); err != nil {
				return err
			}
			deleted += len(batch)
		}

		if !aws.ToBool(page.IsTruncated) {
			break
		}
		keyMarker = page.NextKeyMarker
		versionIDMarker = page.NextVersionIdMarker
	}
	a.logger.Sugar().Infow("Bucket content deleted", "Bucket", info.BucketName, "Deleted", deleted)
	return nil
}

func (a *cmdDeleteBucketContent) deleteObjects(ctx context.Context, bucket string, ids []s3types.ObjectIdentifier) error {
	a.logger.Sugar().Infow("Start Operation", "Name", "DeleteObjects", "Bucket", bucket, "Count", len(ids))
	out, err := a.s3Client.DeleteObjects(ctx, &s3.DeleteObjectsInput{
		Bucket: aws.String(bucket),
		Delete: &s3types.Delete{
			Objects: ids,
			Quiet:   aws.Bool(true),
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}
	if len(out.Errors) > 0 {
		e := out.Errors[0]
		return errors.Errorf("failed to delete %d objects from %s, first error on %s: %s %s",
			len(out.Errors), bucket, aws.ToString(e.Key), aws.ToString(e.Code), aws.ToString(e.Message))
	}
	return nil
}
