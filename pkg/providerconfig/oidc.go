// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"encoding/json"
	"strings"

	"github.com/go-core-stack/core/errors"
)

// wire representation of a complete OIDC provider config resource,
// unlike the SAML variant the protocol fields are reported flat
type oidcProviderConfigWire struct {
	Name        string `json:"name,omitempty"`
	DisplayName string `json:"displayName,omitempty"`
	Enabled     bool   `json:"enabled,omitempty"`
	ClientID    string `json:"clientId,omitempty"`
	Issuer      string `json:"issuer,omitempty"`
}

// OidcProviderConfig holds metadata associated with an inbound OIDC
// federation provider as reported by the provider config API.
//
// instances are immutable once decoded and are safe to be shared
// across concurrent readers
type OidcProviderConfig struct {
	wire oidcProviderConfigWire
}

func (c *OidcProviderConfig) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.wire)
}

// ProviderID returns the provider id, derived from the trailing path
// segment of the resource name reported by the API
func (c *OidcProviderConfig) ProviderID() string {
	parts := strings.Split(c.wire.Name, "/")
	return parts[len(parts)-1]
}

// DisplayName returns the descriptive name of the provider
func (c *OidcProviderConfig) DisplayName() string {
	return c.wire.DisplayName
}

// Enabled reports whether the provider is enabled for sign-in
func (c *OidcProviderConfig) Enabled() bool {
	return c.wire.Enabled
}

// ClientID returns the client id registered with the OIDC provider
func (c *OidcProviderConfig) ClientID() string {
	return c.wire.ClientID
}

// Issuer returns the issuer url of the OIDC provider
func (c *OidcProviderConfig) Issuer() string {
	return c.wire.Issuer
}

// OidcProviderCreateRequest accumulates the attributes for registering
// a new inbound OIDC federation provider. setters validate before
// inserting into the request payload, same contract as the SAML
// create request
type OidcProviderCreateRequest struct {
	providerID string
	properties Properties
}

// NewOidcProviderCreateRequest creates an empty create request for an
// inbound OIDC federation provider
func NewOidcProviderCreateRequest() *OidcProviderCreateRequest {
	return &OidcProviderCreateRequest{
		properties: Properties{},
	}
}

// SetProviderID sets the id for the new provider, required to carry
// the "oidc." prefix
func (r *OidcProviderCreateRequest) SetProviderID(id string) error {
	err := checkProviderID(id, OidcProviderIDPrefix)
	if err != nil {
		return err
	}
	r.providerID = id
	return nil
}

// SetDisplayName sets the descriptive name for the new provider
func (r *OidcProviderCreateRequest) SetDisplayName(name string) error {
	err := checkNonEmpty("display name", name)
	if err != nil {
		return err
	}
	r.properties["displayName"] = name
	return nil
}

// SetEnabled marks whether the new provider is enabled for sign-in
func (r *OidcProviderCreateRequest) SetEnabled(enabled bool) {
	r.properties["enabled"] = enabled
}

// SetClientID sets the client id registered with the OIDC provider
func (r *OidcProviderCreateRequest) SetClientID(clientID string) error {
	err := checkNonEmpty("client id", clientID)
	if err != nil {
		return err
	}
	r.properties["clientId"] = clientID
	return nil
}

// SetIssuer sets the issuer url of the OIDC provider
func (r *OidcProviderCreateRequest) SetIssuer(issuer string) error {
	err := checkURL("issuer", issuer)
	if err != nil {
		return err
	}
	r.properties["issuer"] = issuer
	return nil
}

// ProviderID returns the provider id set on the request
func (r *OidcProviderCreateRequest) ProviderID() string {
	return r.providerID
}

// Properties exposes the accumulated request payload for serialization
func (r *OidcProviderCreateRequest) Properties() Properties {
	return r.properties
}

// OidcProviderUpdateRequest accumulates the attributes to be updated
// on an existing inbound OIDC federation provider
type OidcProviderUpdateRequest struct {
	providerID string
	properties Properties
}

// NewOidcProviderUpdateRequest creates an update request for the OIDC
// provider identified by the given id
func NewOidcProviderUpdateRequest(providerID string) (*OidcProviderUpdateRequest, error) {
	err := checkProviderID(providerID, OidcProviderIDPrefix)
	if err != nil {
		return nil, err
	}
	return &OidcProviderUpdateRequest{
		providerID: providerID,
		properties: Properties{},
	}, nil
}

// SetDisplayName updates the descriptive name of the provider, an
// empty value clears the currently configured name
func (r *OidcProviderUpdateRequest) SetDisplayName(name string) {
	r.properties["displayName"] = name
}

// SetEnabled updates whether the provider is enabled for sign-in
func (r *OidcProviderUpdateRequest) SetEnabled(enabled bool) {
	r.properties["enabled"] = enabled
}

// SetClientID updates the client id registered with the OIDC provider
func (r *OidcProviderUpdateRequest) SetClientID(clientID string) error {
	err := checkNonEmpty("client id", clientID)
	if err != nil {
		return err
	}
	r.properties["clientId"] = clientID
	return nil
}

// SetIssuer updates the issuer url of the OIDC provider
func (r *OidcProviderUpdateRequest) SetIssuer(issuer string) error {
	err := checkURL("issuer", issuer)
	if err != nil {
		return err
	}
	r.properties["issuer"] = issuer
	return nil
}

// ProviderID returns the provider id the update is targeted at
func (r *OidcProviderUpdateRequest) ProviderID() string {
	return r.providerID
}

// Properties exposes the accumulated update payload for serialization
func (r *OidcProviderUpdateRequest) Properties() Properties {
	return r.properties
}

// validates that the update request carries at least one property
func (r *OidcProviderUpdateRequest) validate() error {
	if len(r.properties) == 0 {
		return errors.Wrapf(errors.InvalidArgument, "update request must have at least one property set")
	}
	return nil
}
