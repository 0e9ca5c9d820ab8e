/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package config loads tablestore settings from a YAML file with
// environment overrides. A .env file, when present, is loaded first so
// local development matches the deployed environment shape.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/suparena/tablestore/errors"
)

// AWS holds the DynamoDB connection settings. Endpoint is only set when
// targeting DynamoDB Local.
type AWS struct {
	Region    string `yaml:"region" json:"region"`
	Endpoint  string `yaml:"endpoint,omitempty" json:"endpoint,omitempty"`
	AccessKey string `yaml:"accessKey,omitempty" json:"accessKey,omitempty"`
	SecretKey string `yaml:"secretKey,omitempty" json:"secretKey,omitempty"`
}

// Wait bounds the table activation poll loop.
type Wait struct {
	MaxAttempts int           `yaml:"maxAttempts" json:"maxAttempts"`
	Interval    time.Duration `yaml:"interval" json:"interval"`
}

// UnmarshalYAML accepts the interval as a Go duration string ("2s").
// Fields left out of the YAML keep their current values.
func (w *Wait) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		MaxAttempts int    `yaml:"maxAttempts"`
		Interval    string `yaml:"interval"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	if raw.MaxAttempts != 0 {
		w.MaxAttempts = raw.MaxAttempts
	}
	if raw.Interval != "" {
		d, err := time.ParseDuration(raw.Interval)
		if err != nil {
			return fmt.Errorf("invalid wait interval %q: %w", raw.Interval, err)
		}
		w.Interval = d
	}
	return nil
}

// Config is the root tablestore configuration.
type Config struct {
	AWS AWS `yaml:"aws" json:"aws"`

	// Entities names the registered schemas to manage. Every entry must
	// match a name in the schema registry.
	Entities []string `yaml:"entities" json:"entities"`

	// DDLEnabled gates destructive operations: when false, Shutdown
	// leaves tables in place.
	DDLEnabled bool `yaml:"ddlEnabled" json:"ddlEnabled"`

	Wait Wait `yaml:"wait" json:"wait"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	return &Config{
		AWS:  AWS{Region: "us-east-1"},
		Wait: Wait{MaxAttempts: 60, Interval: 2 * time.Second},
	}
}

// Load reads the YAML file at path, then applies environment overrides.
// An empty path skips the file and loads defaults plus environment.
func Load(path string) (*Config, error) {
	// Ignore a missing .env; it is a local development convenience.
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv("AWS_REGION"); v != "" {
		c.AWS.Region = v
	}
	if v := os.Getenv("AWS_DDB_ENDPOINT"); v != "" {
		c.AWS.Endpoint = v
	}
	if v := os.Getenv("AWS_ACCESS_KEY"); v != "" {
		c.AWS.AccessKey = v
	}
	if v := os.Getenv("AWS_SECRET_KEY"); v != "" {
		c.AWS.SecretKey = v
	}
	if v := os.Getenv("TABLESTORE_DDL_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			c.DDLEnabled = enabled
		}
	}
	if v := os.Getenv("TABLESTORE_WAIT_MAX_ATTEMPTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Wait.MaxAttempts = n
		}
	}
	if v := os.Getenv("TABLESTORE_WAIT_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			c.Wait.Interval = d
		}
	}
}

// Validate checks the configuration for values the lifecycle manager
// cannot work with.
func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return errors.NewValidationError("aws.region", "region is required")
	}
	if len(c.Entities) == 0 {
		return errors.NewValidationError("entities", "at least one entity must be configured")
	}
	if c.Wait.MaxAttempts < 1 {
		return errors.NewValidationError("wait.maxAttempts", "must be at least 1")
	}
	if c.Wait.Interval <= 0 {
		return errors.NewValidationError("wait.interval", "must be positive")
	}
	return nil
}
