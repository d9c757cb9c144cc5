// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package config

import (
	"os"
	"time"

	"github.com/go-core-stack/core/utils"
	"gopkg.in/yaml.v2"
)

const (
	// Environment variable for the admin API endpoint
	endpointEnv = "AUTH_ADMIN_ENDPOINT"

	// default admin API endpoint for base development scenarios
	defaultEndpoint = "http://localhost:8090"

	// Environment variable for the api key id
	apiKeyIdEnv = "AUTH_ADMIN_API_KEY_ID"

	// Environment variable for the api key secret
	apiKeySecretEnv = "AUTH_ADMIN_API_KEY_SECRET"

	// default timeout for API calls, in seconds
	defaultTimeoutSeconds = 30
)

// api key credentials used for signing outgoing requests
type ApiKey struct {
	Id     string `yaml:"id,omitempty"`
	Secret string `yaml:"secret,omitempty"`
}

// Client config struct
type ClientConfig struct {
	// endpoint of the auth platform admin API
	Endpoint string `yaml:"endpoint,omitempty"`

	// static bearer token, used only when no api key is configured
	Token string `yaml:"token,omitempty"`

	// api key credentials for signed requests
	ApiKey *ApiKey `yaml:"apiKey,omitempty"`

	// skip TLS verification, typically for development environments
	// connecting to an internal deployment
	InsecureSkipVerify *bool `yaml:"insecureSkipVerify,omitempty"`

	// timeout for API calls, in seconds
	TimeoutSeconds int `yaml:"timeoutSeconds,omitempty"`
}

// get admin API endpoint, falling back to the environment variable
// and thereafter the default development endpoint when unset
func (c *ClientConfig) GetEndpoint() string {
	if c.Endpoint != "" {
		return c.Endpoint
	}
	val, found := os.LookupEnv(endpointEnv)
	if !found {
		// return default value if not found
		return defaultEndpoint
	}
	return val
}

// get api key credentials, falling back to the environment variables
// when not present in the config file. returns nil when no api key is
// available at all, in which case the bearer token is used instead
func (c *ClientConfig) GetApiKey() *ApiKey {
	if c.ApiKey != nil {
		return c.ApiKey
	}
	id, found := os.LookupEnv(apiKeyIdEnv)
	if !found {
		return nil
	}
	secret, found := os.LookupEnv(apiKeySecretEnv)
	if !found {
		return nil
	}
	return &ApiKey{
		Id:     id,
		Secret: secret,
	}
}

// reports whether TLS verification should be skipped for the endpoint
func (c *ClientConfig) SkipTlsVerify() bool {
	return utils.PBool(c.InsecureSkipVerify)
}

// get the timeout to be applied on individual API calls
func (c *ClientConfig) GetTimeout() time.Duration {
	if c.TimeoutSeconds > 0 {
		return time.Duration(c.TimeoutSeconds) * time.Second
	}
	return defaultTimeoutSeconds * time.Second
}

// Parse YAML Config file from the provided config file path
// returns pointer to config structure and error if failed to
// generate the config struct.
// This also ensures handling scenarios when no config file
// is provided
func ParseConfig(filePath string) (*ClientConfig, error) {
	config := &ClientConfig{}
	// Process config file if file path is provided
	if filePath != "" {
		// open the provided config file
		file, err := os.Open(filePath)
		if err != nil {
			return nil, err
		}
		// ensure that we close the file before returning from
		// here, following constructs of release the unused
		// resources for garbage collector to kick in
		defer func() {
			_ = file.Close()
		}()

		// Get a new Yaml decoder
		decoder := yaml.NewDecoder(file)
		// decode the provided yaml config from the config file
		if err := decoder.Decode(config); err != nil {
			return nil, err
		}
	}

	return config, nil
}
