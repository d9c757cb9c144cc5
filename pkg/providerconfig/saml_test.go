// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"encoding/json"
	"reflect"
	"testing"
)

const samlConfigJson = `{
  "name": "projects/projectId/inboundSamlConfigs/saml.provider-id",
  "displayName": "DISPLAY_NAME",
  "enabled": true,
  "idpConfig": {
    "idpEntityId": "IDP_ENTITY_ID",
    "ssoUrl": "https://example.com/login",
    "idpCertificates": [
      { "x509Certificate": "certificate1" },
      { "x509Certificate": "certificate2" }
    ]
  },
  "spConfig": {
    "spEntityId": "RP_ENTITY_ID",
    "callbackUri": "https://projectId.firebaseapp.com/__/auth/handler"
  }
}`

func Test_SamlProviderConfigDecode(t *testing.T) {
	config := &SamlProviderConfig{}
	err := json.Unmarshal([]byte(samlConfigJson), config)
	if err != nil {
		t.Errorf("failed to decode saml provider config document: %s", err)
		return
	}

	if config.ProviderID() != "saml.provider-id" {
		t.Errorf("expected provider id saml.provider-id, got %q", config.ProviderID())
	}
	if config.DisplayName() != "DISPLAY_NAME" {
		t.Errorf("expected display name DISPLAY_NAME, got %q", config.DisplayName())
	}
	if !config.Enabled() {
		t.Errorf("expected provider to be enabled")
	}
	if config.IdpEntityID() != "IDP_ENTITY_ID" {
		t.Errorf("expected idp entity id IDP_ENTITY_ID, got %q", config.IdpEntityID())
	}
	if config.SsoURL() != "https://example.com/login" {
		t.Errorf("expected sso url https://example.com/login, got %q", config.SsoURL())
	}
	certificates := config.X509Certificates()
	if !reflect.DeepEqual(certificates, []string{"certificate1", "certificate2"}) {
		t.Errorf("expected certificates in input order, got %v", certificates)
	}
	if config.RpEntityID() != "RP_ENTITY_ID" {
		t.Errorf("expected rp entity id RP_ENTITY_ID, got %q", config.RpEntityID())
	}
	if config.CallbackURL() != "https://projectId.firebaseapp.com/__/auth/handler" {
		t.Errorf("expected callback url https://projectId.firebaseapp.com/__/auth/handler, got %q", config.CallbackURL())
	}
}

func Test_SamlProviderConfigDecodeMissingNestedObjects(t *testing.T) {
	// read path is lenient, a document without the nested idp and sp
	// objects must decode to zero valued accessors without failing
	config := &SamlProviderConfig{}
	err := json.Unmarshal([]byte(`{"name": "projects/p/inboundSamlConfigs/saml.bare", "enabled": false}`), config)
	if err != nil {
		t.Errorf("failed to decode partial saml provider config: %s", err)
		return
	}

	if config.ProviderID() != "saml.bare" {
		t.Errorf("expected provider id saml.bare, got %q", config.ProviderID())
	}
	if config.IdpEntityID() != "" || config.SsoURL() != "" {
		t.Errorf("expected empty idp accessors, got %q and %q", config.IdpEntityID(), config.SsoURL())
	}
	if config.X509Certificates() != nil {
		t.Errorf("expected no certificates, got %v", config.X509Certificates())
	}
	if config.RpEntityID() != "" || config.CallbackURL() != "" {
		t.Errorf("expected empty sp accessors, got %q and %q", config.RpEntityID(), config.CallbackURL())
	}
}

func buildSamlCreateRequest(t *testing.T) *SamlProviderCreateRequest {
	req := NewSamlProviderCreateRequest()
	steps := []struct {
		name string
		call func() error
	}{
		{"provider id", func() error { return req.SetProviderID("saml.provider-id") }},
		{"display name", func() error { return req.SetDisplayName("DISPLAY_NAME") }},
		{"idp entity id", func() error { return req.SetIdpEntityID("IDP_ENTITY_ID") }},
		{"sso url", func() error { return req.SetSsoURL("https://example.com/login") }},
		{"certificate1", func() error { return req.AddX509Certificate("certificate1") }},
		{"certificate2", func() error { return req.AddX509Certificate("certificate2") }},
		{"rp entity id", func() error { return req.SetRpEntityID("RP_ENTITY_ID") }},
		{"callback url", func() error { return req.SetCallbackURL("https://projectId.firebaseapp.com/__/auth/handler") }},
	}
	for _, step := range steps {
		if err := step.call(); err != nil {
			t.Errorf("failed to set %s: %s", step.name, err)
		}
	}
	req.SetEnabled(false)
	return req
}

func Test_SamlCreateRequest(t *testing.T) {
	req := buildSamlCreateRequest(t)

	if req.ProviderID() != "saml.provider-id" {
		t.Errorf("expected provider id saml.provider-id, got %q", req.ProviderID())
	}

	properties := req.Properties()
	if len(properties) != 4 {
		t.Errorf("expected 4 top level properties, got %d: %v", len(properties), properties)
	}
	if properties["displayName"] != "DISPLAY_NAME" {
		t.Errorf("expected display name DISPLAY_NAME, got %v", properties["displayName"])
	}
	if properties["enabled"] != false {
		t.Errorf("expected enabled false, got %v", properties["enabled"])
	}

	idpConfig, ok := properties["idpConfig"].(map[string]any)
	if !ok {
		t.Errorf("expected idpConfig nested map, got %v", properties["idpConfig"])
		return
	}
	if len(idpConfig) != 3 {
		t.Errorf("expected 3 keys in idpConfig, got %d: %v", len(idpConfig), idpConfig)
	}
	if idpConfig["idpEntityId"] != "IDP_ENTITY_ID" {
		t.Errorf("expected idp entity id IDP_ENTITY_ID, got %v", idpConfig["idpEntityId"])
	}
	if idpConfig["ssoUrl"] != "https://example.com/login" {
		t.Errorf("expected sso url https://example.com/login, got %v", idpConfig["ssoUrl"])
	}

	certificates, ok := idpConfig["idpCertificates"].([]any)
	if !ok {
		t.Errorf("expected idpCertificates list, got %v", idpConfig["idpCertificates"])
		return
	}
	expected := []any{
		map[string]any{"x509Certificate": "certificate1"},
		map[string]any{"x509Certificate": "certificate2"},
	}
	if !reflect.DeepEqual(certificates, expected) {
		t.Errorf("expected certificates in insertion order, got %v", certificates)
	}

	spConfig, ok := properties["spConfig"].(map[string]any)
	if !ok {
		t.Errorf("expected spConfig nested map, got %v", properties["spConfig"])
		return
	}
	if len(spConfig) != 2 {
		t.Errorf("expected 2 keys in spConfig, got %d: %v", len(spConfig), spConfig)
	}
	if spConfig["spEntityId"] != "RP_ENTITY_ID" {
		t.Errorf("expected sp entity id RP_ENTITY_ID, got %v", spConfig["spEntityId"])
	}
	if spConfig["callbackUri"] != "https://projectId.firebaseapp.com/__/auth/handler" {
		t.Errorf("expected callback uri, got %v", spConfig["callbackUri"])
	}
}

func Test_SamlCreateRequestInvalidInputs(t *testing.T) {
	req := buildSamlCreateRequest(t)
	// snapshot the serialized payload before the failing calls, any
	// failed setter must leave the accumulated payload untouched
	before, err := json.Marshal(req.Properties())
	if err != nil {
		t.Errorf("failed to snapshot request properties: %s", err)
		return
	}

	failures := []struct {
		name string
		call func() error
	}{
		{"empty provider id", func() error { return req.SetProviderID("") }},
		{"wrong prefix provider id", func() error { return req.SetProviderID("oidc.provider-id") }},
		{"empty display name", func() error { return req.SetDisplayName("") }},
		{"empty idp entity id", func() error { return req.SetIdpEntityID("") }},
		{"empty sso url", func() error { return req.SetSsoURL("") }},
		{"malformed sso url", func() error { return req.SetSsoURL("not a valid url") }},
		{"empty certificate", func() error { return req.AddX509Certificate("") }},
		{"empty rp entity id", func() error { return req.SetRpEntityID("") }},
		{"empty callback url", func() error { return req.SetCallbackURL("") }},
		{"malformed callback url", func() error { return req.SetCallbackURL("not a valid url") }},
	}

	for _, failure := range failures {
		err := failure.call()
		if err == nil {
			t.Errorf("%s: expected invalid argument error, got none", failure.name)
			continue
		}
		after, _ := json.Marshal(req.Properties())
		if string(before) != string(after) {
			t.Errorf("%s: request payload mutated by failed setter", failure.name)
		}
	}

	// builder must stay usable after failed calls
	if err := req.SetDisplayName("NEW_NAME"); err != nil {
		t.Errorf("builder unusable after failed setter: %s", err)
	}
}

func Test_SamlCreateRequestNestedReuse(t *testing.T) {
	// two setters targeting the same nested object must land in a
	// single shared map rather than two separate ones
	req := NewSamlProviderCreateRequest()
	if err := req.SetIdpEntityID("IDP_ENTITY_ID"); err != nil {
		t.Errorf("failed to set idp entity id: %s", err)
		return
	}
	if err := req.SetSsoURL("https://example.com/login"); err != nil {
		t.Errorf("failed to set sso url: %s", err)
		return
	}

	properties := req.Properties()
	if len(properties) != 1 {
		t.Errorf("expected a single top level idpConfig, got %v", properties)
		return
	}
	idpConfig, ok := properties["idpConfig"].(map[string]any)
	if !ok || len(idpConfig) != 2 {
		t.Errorf("expected idpConfig holding both keys, got %v", properties["idpConfig"])
	}
}

func Test_SamlUpdateRequest(t *testing.T) {
	req, err := NewSamlProviderUpdateRequest("saml.provider-id")
	if err != nil {
		t.Errorf("failed to create update request: %s", err)
		return
	}

	req.SetDisplayName("")
	req.SetEnabled(true)
	if err := req.SetIdpEntityID("IDP_ENTITY_ID"); err != nil {
		t.Errorf("failed to set idp entity id: %s", err)
	}
	if err := req.SetSsoURL("https://example.com/login"); err != nil {
		t.Errorf("failed to set sso url: %s", err)
	}
	if err := req.AddX509Certificate("certificate1"); err != nil {
		t.Errorf("failed to add certificate: %s", err)
	}
	if err := req.SetRpEntityID("RP_ENTITY_ID"); err != nil {
		t.Errorf("failed to set rp entity id: %s", err)
	}

	// cleared display name still participates in the update mask
	mask := req.Properties().UpdateMask()
	expected := "displayName,enabled,idpConfig.idpCertificates,idpConfig.idpEntityId,idpConfig.ssoUrl,spConfig.spEntityId"
	if mask != expected {
		t.Errorf("expected update mask %q, got %q", expected, mask)
	}

	if req.Properties()["displayName"] != "" {
		t.Errorf("expected cleared display name in payload, got %v", req.Properties()["displayName"])
	}
}

func Test_SamlUpdateRequestInvalidProviderID(t *testing.T) {
	_, err := NewSamlProviderUpdateRequest("oidc.provider-id")
	if err == nil {
		t.Errorf("expected invalid argument error for wrong prefix, got none")
	}
	_, err = NewSamlProviderUpdateRequest("")
	if err == nil {
		t.Errorf("expected invalid argument error for empty provider id, got none")
	}
}

func Test_SamlUpdateRequestEmpty(t *testing.T) {
	req, err := NewSamlProviderUpdateRequest("saml.provider-id")
	if err != nil {
		t.Errorf("failed to create update request: %s", err)
		return
	}
	if err := req.validate(); err == nil {
		t.Errorf("expected error validating update request without properties")
	}
}
