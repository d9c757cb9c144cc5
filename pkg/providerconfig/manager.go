// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"context"
	"encoding/json"

	"github.com/go-core-stack/core/errors"

	"github.com/go-core-stack/auth-admin/pkg/client"
)

const (
	// resource collection for inbound SAML federation providers
	samlConfigPath = "/api/auth/v2/inboundSamlConfigs"

	// resource collection for inbound OIDC federation providers
	oidcConfigPath = "/api/auth/v2/oauthIdpConfigs"
)

// Manager exposes the provider config operations of the admin API,
// binding the typed models and request builders to the underlying
// http client
type Manager struct {
	client *client.Client
}

// NewManager creates a provider config manager working against the
// given API client
func NewManager(c *client.Client) *Manager {
	return &Manager{
		client: c,
	}
}

// CreateSamlProviderConfig registers a new inbound SAML federation
// provider with the attributes accumulated in the given request and
// returns the resulting config as reported by the API
func (m *Manager) CreateSamlProviderConfig(ctx context.Context, req *SamlProviderCreateRequest) (*SamlProviderConfig, error) {
	if req.providerID == "" {
		return nil, errors.Wrapf(errors.InvalidArgument, "provider id must be specified on a create request")
	}
	info := client.NewPostRequest(samlConfigPath, req.Properties())
	info.SetQueryParam("inboundSamlConfigId", req.providerID)

	resp, err := m.client.Do(ctx, info)
	if err != nil {
		return nil, err
	}

	config := &SamlProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// GetSamlProviderConfig fetches the SAML provider config identified
// by the given provider id
func (m *Manager) GetSamlProviderConfig(ctx context.Context, providerID string) (*SamlProviderConfig, error) {
	if err := checkProviderID(providerID, SamlProviderIDPrefix); err != nil {
		return nil, err
	}

	resp, err := m.client.Do(ctx, client.NewGetRequest(samlConfigPath+"/"+providerID))
	if err != nil {
		return nil, err
	}

	config := &SamlProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// UpdateSamlProviderConfig updates an existing SAML provider config
// with the attributes accumulated in the given request, only the
// fields named in the generated update mask are touched
func (m *Manager) UpdateSamlProviderConfig(ctx context.Context, req *SamlProviderUpdateRequest) (*SamlProviderConfig, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	info := client.NewPatchRequest(samlConfigPath+"/"+req.providerID, req.Properties())
	info.SetQueryParam("updateMask", req.Properties().UpdateMask())

	resp, err := m.client.Do(ctx, info)
	if err != nil {
		return nil, err
	}

	config := &SamlProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// DeleteSamlProviderConfig removes the SAML provider config
// identified by the given provider id
func (m *Manager) DeleteSamlProviderConfig(ctx context.Context, providerID string) error {
	if err := checkProviderID(providerID, SamlProviderIDPrefix); err != nil {
		return err
	}
	_, err := m.client.Do(ctx, client.NewDeleteRequest(samlConfigPath+"/"+providerID))
	return err
}

// CreateOidcProviderConfig registers a new inbound OIDC federation
// provider with the attributes accumulated in the given request
func (m *Manager) CreateOidcProviderConfig(ctx context.Context, req *OidcProviderCreateRequest) (*OidcProviderConfig, error) {
	if req.providerID == "" {
		return nil, errors.Wrapf(errors.InvalidArgument, "provider id must be specified on a create request")
	}
	info := client.NewPostRequest(oidcConfigPath, req.Properties())
	info.SetQueryParam("oauthIdpConfigId", req.providerID)

	resp, err := m.client.Do(ctx, info)
	if err != nil {
		return nil, err
	}

	config := &OidcProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// GetOidcProviderConfig fetches the OIDC provider config identified
// by the given provider id
func (m *Manager) GetOidcProviderConfig(ctx context.Context, providerID string) (*OidcProviderConfig, error) {
	if err := checkProviderID(providerID, OidcProviderIDPrefix); err != nil {
		return nil, err
	}

	resp, err := m.client.Do(ctx, client.NewGetRequest(oidcConfigPath+"/"+providerID))
	if err != nil {
		return nil, err
	}

	config := &OidcProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// UpdateOidcProviderConfig updates an existing OIDC provider config
// with the attributes accumulated in the given request
func (m *Manager) UpdateOidcProviderConfig(ctx context.Context, req *OidcProviderUpdateRequest) (*OidcProviderConfig, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}
	info := client.NewPatchRequest(oidcConfigPath+"/"+req.providerID, req.Properties())
	info.SetQueryParam("updateMask", req.Properties().UpdateMask())

	resp, err := m.client.Do(ctx, info)
	if err != nil {
		return nil, err
	}

	config := &OidcProviderConfig{}
	if err := json.Unmarshal(resp.Body, config); err != nil {
		return nil, err
	}
	return config, nil
}

// DeleteOidcProviderConfig removes the OIDC provider config
// identified by the given provider id
func (m *Manager) DeleteOidcProviderConfig(ctx context.Context, providerID string) error {
	if err := checkProviderID(providerID, OidcProviderIDPrefix); err != nil {
		return err
	}
	_, err := m.client.Do(ctx, client.NewDeleteRequest(oidcConfigPath+"/"+providerID))
	return err
}
