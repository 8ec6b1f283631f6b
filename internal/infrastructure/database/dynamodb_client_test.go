package database

import (
	"context"
	"testing"

	"stuff3d_checkout/internal/infrastructure/config"
)

func TestNewDynamoDBConfig(t *testing.T) {
	tests := []struct {
		name       string
		cfg        config.DynamoDBConfig
		wantRegion string
		wantKey    string
	}{
		{name: "defaults", cfg: config.DynamoDBConfig{}, wantRegion: "us-east-1", wantKey: "local"},
		{name: "explicit", cfg: config.DynamoDBConfig{Region: "sa-east-1", AccessKeyID: "AKIA", SecretAccessKey: "s", Endpoint: "http://localhost:8000"}, wantRegion: "sa-east-1", wantKey: "AKIA"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			awsCfg, err := NewDynamoDBConfig(context.Background(), tt.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if awsCfg.Region != tt.wantRegion {
				t.Fatalf("expected region %s, got %s", tt.wantRegion, awsCfg.Region)
			}
			creds, err := awsCfg.Credentials.Retrieve(context.Background())
			if err != nil {
				t.Fatalf("unexpected credentials error: %v", err)
			}
			if creds.AccessKeyID != tt.wantKey {
				t.Fatalf("expected key %s, got %s", tt.wantKey, creds.AccessKeyID)
			}
		})
	}
}
