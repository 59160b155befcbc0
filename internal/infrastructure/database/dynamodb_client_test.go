package database

import (
	"context"
	"testing"

	"paint_estimator/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAWSConfig(t *testing.T) {
	var cfg config.Config
	cfg.AWS.Region = "eu-west-2"
	cfg.AWS.AccessKeyID = "local"
	cfg.AWS.SecretAccessKey = "local"

	awsCfg, err := NewAWSConfig(context.Background(), cfg)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-2", awsCfg.Region)

	creds, err := awsCfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "local", creds.AccessKeyID)
}

func TestConnectDynamoDB(t *testing.T) {
	var cfg config.Config
	cfg.AWS.Region = "us-east-1"
	cfg.AWS.AccessKeyID = "local"
	cfg.AWS.SecretAccessKey = "local"
	cfg.AWS.DynamoDBEndpoint = "http://localhost:8000"

	client, err := ConnectDynamoDB(context.Background(), cfg)
	require.NoError(t, err)
	require.NotNil(t, client)
	assert.Equal(t, "http://localhost:8000", *client.Options().BaseEndpoint)
}
