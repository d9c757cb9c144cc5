// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"encoding/json"
	"strings"

	"github.com/go-core-stack/core/errors"
)

// wire representation of a single IDP certificate record
type samlIdpCertificate struct {
	X509Certificate string `json:"x509Certificate,omitempty"`
}

// wire representation of the IDP side of a SAML provider config
type samlIdpConfig struct {
	IdpEntityID     string               `json:"idpEntityId,omitempty"`
	SsoURL          string               `json:"ssoUrl,omitempty"`
	IdpCertificates []samlIdpCertificate `json:"idpCertificates,omitempty"`
}

// wire representation of the SP side of a SAML provider config
// note the wire keys spEntityId and callbackUri differ from the
// accessor names exposed to the consumers
type samlSpConfig struct {
	SpEntityID  string `json:"spEntityId,omitempty"`
	CallbackURI string `json:"callbackUri,omitempty"`
}

// wire representation of a complete SAML provider config resource as
// reported by the provider config API
type samlProviderConfigWire struct {
	Name        string         `json:"name,omitempty"`
	DisplayName string         `json:"displayName,omitempty"`
	Enabled     bool           `json:"enabled,omitempty"`
	IdpConfig   *samlIdpConfig `json:"idpConfig,omitempty"`
	SpConfig    *samlSpConfig  `json:"spConfig,omitempty"`
}

// SamlProviderConfig holds metadata associated with an inbound SAML
// federation provider as reported by the provider config API.
//
// instances are immutable once decoded and are safe to be shared
// across concurrent readers. no validation is performed on read, a
// document with missing nested objects yields zero valued accessors
type SamlProviderConfig struct {
	wire samlProviderConfigWire
}

func (c *SamlProviderConfig) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &c.wire)
}

// ProviderID returns the provider id, derived from the trailing path
// segment of the resource name reported by the API
func (c *SamlProviderConfig) ProviderID() string {
	parts := strings.Split(c.wire.Name, "/")
	return parts[len(parts)-1]
}

// DisplayName returns the descriptive name of the provider
func (c *SamlProviderConfig) DisplayName() string {
	return c.wire.DisplayName
}

// Enabled reports whether the provider is enabled for sign-in
func (c *SamlProviderConfig) Enabled() bool {
	return c.wire.Enabled
}

// IdpEntityID returns the entity id of the identity provider issuing
// the SAML assertions
func (c *SamlProviderConfig) IdpEntityID() string {
	if c.wire.IdpConfig == nil {
		return ""
	}
	return c.wire.IdpConfig.IdpEntityID
}

// SsoURL returns the sign-on url of the identity provider
func (c *SamlProviderConfig) SsoURL() string {
	if c.wire.IdpConfig == nil {
		return ""
	}
	return c.wire.IdpConfig.SsoURL
}

// X509Certificates returns the certificates used to verify signed
// assertions of the provider, in the order reported by the API
func (c *SamlProviderConfig) X509Certificates() []string {
	if c.wire.IdpConfig == nil {
		return nil
	}
	var certificates []string
	for _, cert := range c.wire.IdpConfig.IdpCertificates {
		certificates = append(certificates, cert.X509Certificate)
	}
	return certificates
}

// RpEntityID returns the entity id of the relying party consuming the
// SAML assertions, reported on the wire as spConfig.spEntityId
func (c *SamlProviderConfig) RpEntityID() string {
	if c.wire.SpConfig == nil {
		return ""
	}
	return c.wire.SpConfig.SpEntityID
}

// CallbackURL returns the callback url of the relying party, reported
// on the wire as spConfig.callbackUri
func (c *SamlProviderConfig) CallbackURL() string {
	if c.wire.SpConfig == nil {
		return ""
	}
	return c.wire.SpConfig.CallbackURI
}

// SamlProviderCreateRequest accumulates the attributes for registering
// a new inbound SAML federation provider. every setter validates its
// input before inserting into the request payload, returning an
// InvalidArgument error and leaving the payload untouched on a
// validation failure. the request stays usable after a failed call.
//
// the request is meant to be built up by a single owner and then
// handed over to the Manager for serialization and dispatch, it is not
// designed for concurrent mutation
type SamlProviderCreateRequest struct {
	providerID string
	properties Properties
}

// NewSamlProviderCreateRequest creates an empty create request for an
// inbound SAML federation provider
func NewSamlProviderCreateRequest() *SamlProviderCreateRequest {
	return &SamlProviderCreateRequest{
		properties: Properties{},
	}
}

// SetProviderID sets the id for the new provider, the id is part of
// the resource path rather than the request payload and is required to
// carry the "saml." prefix
func (r *SamlProviderCreateRequest) SetProviderID(id string) error {
	err := checkProviderID(id, SamlProviderIDPrefix)
	if err != nil {
		return err
	}
	r.providerID = id
	return nil
}

// SetDisplayName sets the descriptive name for the new provider
func (r *SamlProviderCreateRequest) SetDisplayName(name string) error {
	err := checkNonEmpty("display name", name)
	if err != nil {
		return err
	}
	r.properties["displayName"] = name
	return nil
}

// SetEnabled marks whether the new provider is enabled for sign-in
func (r *SamlProviderCreateRequest) SetEnabled(enabled bool) {
	r.properties["enabled"] = enabled
}

// SetIdpEntityID sets the IDP entity id for the new provider
func (r *SamlProviderCreateRequest) SetIdpEntityID(idpEntityID string) error {
	err := checkNonEmpty("IDP entity id", idpEntityID)
	if err != nil {
		return err
	}
	r.properties.nestedMap("idpConfig")["idpEntityId"] = idpEntityID
	return nil
}

// SetSsoURL sets the SSO url for the new provider
func (r *SamlProviderCreateRequest) SetSsoURL(ssoURL string) error {
	err := checkURL("SSO url", ssoURL)
	if err != nil {
		return err
	}
	r.properties.nestedMap("idpConfig")["ssoUrl"] = ssoURL
	return nil
}

// AddX509Certificate adds an x509 certificate to the new provider,
// certificates are retained in the order they are added
func (r *SamlProviderCreateRequest) AddX509Certificate(certificate string) error {
	err := checkNonEmpty("x509 certificate", certificate)
	if err != nil {
		return err
	}
	idpConfig := r.properties.nestedMap("idpConfig")
	appendNestedList(idpConfig, "idpCertificates", map[string]any{
		"x509Certificate": certificate,
	})
	return nil
}

// SetRpEntityID sets the RP entity id for the new provider, sent on
// the wire as spConfig.spEntityId
func (r *SamlProviderCreateRequest) SetRpEntityID(rpEntityID string) error {
	err := checkNonEmpty("RP entity id", rpEntityID)
	if err != nil {
		return err
	}
	r.properties.nestedMap("spConfig")["spEntityId"] = rpEntityID
	return nil
}

// SetCallbackURL sets the callback url for the new provider, sent on
// the wire as spConfig.callbackUri
func (r *SamlProviderCreateRequest) SetCallbackURL(callbackURL string) error {
	err := checkURL("callback url", callbackURL)
	if err != nil {
		return err
	}
	r.properties.nestedMap("spConfig")["callbackUri"] = callbackURL
	return nil
}

// ProviderID returns the provider id set on the request
func (r *SamlProviderCreateRequest) ProviderID() string {
	return r.providerID
}

// Properties exposes the accumulated request payload for serialization
func (r *SamlProviderCreateRequest) Properties() Properties {
	return r.properties
}

// SamlProviderUpdateRequest accumulates the attributes to be updated
// on an existing inbound SAML federation provider. unlike the create
// request, display name and enabled flag may be cleared, everything
// else retains the create time validation rules
type SamlProviderUpdateRequest struct {
	providerID string
	properties Properties
}

// NewSamlProviderUpdateRequest creates an update request for the SAML
// provider identified by the given id
func NewSamlProviderUpdateRequest(providerID string) (*SamlProviderUpdateRequest, error) {
	err := checkProviderID(providerID, SamlProviderIDPrefix)
	if err != nil {
		return nil, err
	}
	return &SamlProviderUpdateRequest{
		providerID: providerID,
		properties: Properties{},
	}, nil
}

// SetDisplayName updates the descriptive name of the provider, an
// empty value clears the currently configured name
func (r *SamlProviderUpdateRequest) SetDisplayName(name string) {
	r.properties["displayName"] = name
}

// SetEnabled updates whether the provider is enabled for sign-in
func (r *SamlProviderUpdateRequest) SetEnabled(enabled bool) {
	r.properties["enabled"] = enabled
}

// SetIdpEntityID updates the IDP entity id of the provider
func (r *SamlProviderUpdateRequest) SetIdpEntityID(idpEntityID string) error {
	err := checkNonEmpty("IDP entity id", idpEntityID)
	if err != nil {
		return err
	}
	r.properties.nestedMap("idpConfig")["idpEntityId"] = idpEntityID
	return nil
}

// SetSsoURL updates the SSO url of the provider
func (r *SamlProviderUpdateRequest) SetSsoURL(ssoURL string) error {
	err := checkURL("SSO url", ssoURL)
	if err != nil {
		return err
	}
	r.properties.nestedMap("idpConfig")["ssoUrl"] = ssoURL
	return nil
}

// AddX509Certificate adds an x509 certificate to the update payload,
// the resulting certificate list replaces the configured one as a
// whole on the server side
func (r *SamlProviderUpdateRequest) AddX509Certificate(certificate string) error {
	err := checkNonEmpty("x509 certificate", certificate)
	if err != nil {
		return err
	}
	idpConfig := r.properties.nestedMap("idpConfig")
	appendNestedList(idpConfig, "idpCertificates", map[string]any{
		"x509Certificate": certificate,
	})
	return nil
}

// SetRpEntityID updates the RP entity id of the provider
func (r *SamlProviderUpdateRequest) SetRpEntityID(rpEntityID string) error {
	err := checkNonEmpty("RP entity id", rpEntityID)
	if err != nil {
		return err
	}
	r.properties.nestedMap("spConfig")["spEntityId"] = rpEntityID
	return nil
}

// SetCallbackURL updates the callback url of the provider
func (r *SamlProviderUpdateRequest) SetCallbackURL(callbackURL string) error {
	err := checkURL("callback url", callbackURL)
	if err != nil {
		return err
	}
	r.properties.nestedMap("spConfig")["callbackUri"] = callbackURL
	return nil
}

// ProviderID returns the provider id the update is targeted at
func (r *SamlProviderUpdateRequest) ProviderID() string {
	return r.providerID
}

// Properties exposes the accumulated update payload for serialization
func (r *SamlProviderUpdateRequest) Properties() Properties {
	return r.properties
}

// validates that the update request carries at least one property,
// the API rejects an update with an empty mask
func (r *SamlProviderUpdateRequest) validate() error {
	if len(r.properties) == 0 {
		return errors.Wrapf(errors.InvalidArgument, "update request must have at least one property set")
	}
	return nil
}
