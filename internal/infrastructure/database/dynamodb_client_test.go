package database

import (
	"context"
	"testing"

	"mpesa_c2b/internal/infrastructure/config"
)

func TestNewDynamoDBClient(t *testing.T) {
	client, err := NewDynamoDBClient(context.Background(), config.DynamoDBConfig{
		Region:          "us-east-1",
		Endpoint:        "http://localhost:8000",
		AccessKeyID:     "local",
		SecretAccessKey: "local",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	opts := client.Options()
	if opts.Region != "us-east-1" {
		t.Fatalf("unexpected region %q", opts.Region)
	}
	if opts.BaseEndpoint == nil || *opts.BaseEndpoint != "http://localhost:8000" {
		t.Fatalf("unexpected endpoint %v", opts.BaseEndpoint)
	}
}
