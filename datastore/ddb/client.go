/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package ddb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	sdk "github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ClientConfig holds the settings needed to construct a DynamoDB client.
// Endpoint is optional and points the client at a local DynamoDB when set.
type ClientConfig struct {
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
}

// NewClient initializes a DynamoDB client. Static credentials are used
// when provided; otherwise the default AWS credential chain applies.
func NewClient(ctx context.Context, cfg ClientConfig) (*sdk.Client, error) {
	if cfg.Region == "" {
		return nil, fmt.Errorf("aws region is required")
	}

	loadOptions := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if cfg.AccessKey != "" || cfg.SecretKey != "" {
		loadOptions = append(loadOptions, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, loadOptions...)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	var opts []func(*sdk.Options)
	if cfg.Endpoint != "" {
		opts = append(opts, func(o *sdk.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return sdk.NewFromConfig(awsCfg, opts...), nil
}
