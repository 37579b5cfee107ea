// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: MIT-0

package admin

import (
	"context"

	"github.com/aws-samples/deployment-helper-resource/types"

	"github.com/aws/aws-lambda-go/cfn"
	"github.com/aws/smithy-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Handler implements CloudFormation custom resource extension interface.
type Handler struct {
	clientFactory ClientFactory
	fixedDelay    func()
	logger        *zap.Logger
}

// Entrypoint for handling custom resources managed by this extension.
// Resource types without an implementation succeed without doing anything.
func (h *Handler) Handle(ctx context.Context, event cfn.Event) (string, map[string]interface{}, error) {
	var props map[string]interface{}
	var err error
	rid := physicalResourceID(event.LogicalResourceID)

	// Prepare logger with contextual information
	logger := h.requestLogger(&event)
	logger.Info("Start", zap.Any("ResourceProperties", event.ResourceProperties), zap.Any("OldResourceProperties", event.OldResourceProperties))

	switch types.ResourceType(event.ResourceType) {
	case types.ResourceTypeDeleteBucketContent:
		err = h.deleteBucketContent(ctx, event, logger)
	case types.ResourceTypeCloudWatchDestination:
		err = h.cloudWatchDestination(ctx, event, logger)
	case types.ResourceTypeGetHostedZoneID:
		props, err = h.getHostedZoneID(ctx, event, logger)
	default:
		logger.Warn("No implementation for resource type")
	}
	if err != nil {
		return rid, nil, h.logAndEchoError(err, logger)
	}
	return rid, props, nil
}

func (h *Handler) logAndEchoError(err error, logger *zap.Logger) error {
	logger.Error("Failed to process request", zap.Error(err))
	// Log more information if this is an error cause by an AWS SDK operation
	var oerr *smithy.OperationError
	if errors.As(err, &oerr) {
		logger.Error("Smithy Operation Error",
			zap.String("Service", oerr.Service()),
			zap.String("Operation", oerr.Operation()),
			zap.NamedError("Cause", oerr.Unwrap()))
	}
	return err
}

func (h *Handler) deleteBucketContent(ctx context.Context, event cfn.Event, logger *zap.Logger) error {
	info, err := types.NewBucketContentInfo(event.ResourceProperties)
	if err != nil {
		return errors.WithStack(err)
	}
	cmd := newCmdDeleteBucketContent(h.clientFactory.S3(), h.fixedDelay, logger)
	return cmd.Run(ctx, event.RequestType, info)
}

func (h *Handler) cloudWatchDestination(ctx context.Context, event cfn.Event, logger *zap.Logger) error {
	newInfo := types.NewDestinationInfo
	if event.RequestType == cfn.RequestDelete {
		// Rollback deletes carry the properties that failed on create.
		newInfo = types.NewDestinationDeleteInfo
	}
	info, err := newInfo(event.ResourceProperties)
	if err != nil {
		return errors.WithStack(err)
	}
	var old *types.DestinationInfo
	if event.RequestType == cfn.RequestUpdate && len(event.OldResourceProperties) > 0 {
		old, err = types.NewDestinationInfo(event.OldResourceProperties)
		if err != nil {
			// Previous properties are only used to clean up after a rename.
			logger.Warn("Ignoring invalid OldResourceProperties", zap.Error(err))
			old = nil
		}
	}
	regionResolver := newRegionResolver(h.clientFactory.EC2())
	cmd := newCmdCloudWatchDestination(regionResolver, h.clientFactory, logger)
	return cmd.Run(ctx, event.RequestType, info, old)
}

func (h *Handler) getHostedZoneID(ctx context.Context, event cfn.Event, logger *zap.Logger) (map[string]interface{}, error) {
	if event.RequestType == cfn.RequestDelete {
		return make(map[string]interface{}), nil
	}
	info, err := types.NewHostedZoneInfo(event.ResourceProperties)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	cmd := newCmdGetHostedZoneID(h.clientFactory.Route53(), logger)
	return cmd.Run(ctx, event.RequestType, info)
}

func (h *Handler) requestLogger(event *cfn.Event) *zap.Logger {
	return h.logger.With(
		zap.String("StackID", event.StackID),
		zap.String("LogicalResourceID", event.LogicalResourceID),
		zap.String("PhysicalResourceID", event.PhysicalResourceID),
		zap.String("RequestID", event.RequestID),
		zap.String("ResourceType", event.ResourceType),
		zap.String("RequestType", string(event.RequestType)),
	)
}

// NewHandler creates a Handler. fixedDelay runs before bucket content is
// erased.
func NewHandler(clientFactory ClientFactory, fixedDelay func(), logger *zap.Logger) *Handler {
	return &Handler{
		clientFactory: clientFactory,
		fixedDelay:    fixedDelay,
		logger:        logger,
	}
}
