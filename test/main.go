// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package main

import (
	"context"
	"log"
	"os"

	"github.com/go-core-stack/auth-admin/pkg/client"
	"github.com/go-core-stack/auth-admin/pkg/config"
	"github.com/go-core-stack/auth-admin/pkg/providerconfig"
)

func getConfigFile() string {
	val, found := os.LookupEnv("AUTH_ADMIN_CONFIG")
	if !found {
		return ""
	}
	return val
}

// manual smoke exercise of the provider config operations against a
// live endpoint, credentials and endpoint are picked from the config
// file or environment
func main() {
	conf, err := config.ParseConfig(getConfigFile())
	if err != nil {
		log.Panicf("failed to parse client config: %s", err)
	}

	mgr := providerconfig.NewManager(client.New(conf))
	ctx := context.Background()

	req := providerconfig.NewSamlProviderCreateRequest()
	steps := []func() error{
		func() error { return req.SetProviderID("saml.smoke-test") },
		func() error { return req.SetDisplayName("Smoke Test Provider") },
		func() error { return req.SetIdpEntityID("https://idp.example.com/entity") },
		func() error { return req.SetSsoURL("https://idp.example.com/sso") },
		func() error { return req.AddX509Certificate("certificate1") },
		func() error { return req.SetRpEntityID("https://rp.example.com/entity") },
		func() error { return req.SetCallbackURL("https://rp.example.com/__/auth/handler") },
	}
	for _, step := range steps {
		if err := step(); err != nil {
			log.Panicf("failed to build create request: %s", err)
		}
	}
	req.SetEnabled(true)

	created, err := mgr.CreateSamlProviderConfig(ctx, req)
	if err != nil {
		log.Panicf("failed to create saml provider config: %s", err)
	}
	log.Printf("created provider %s (%s)", created.ProviderID(), created.DisplayName())

	fetched, err := mgr.GetSamlProviderConfig(ctx, created.ProviderID())
	if err != nil {
		log.Panicf("failed to get saml provider config: %s", err)
	}
	log.Printf("fetched provider %s, sso url %s", fetched.ProviderID(), fetched.SsoURL())

	update, err := providerconfig.NewSamlProviderUpdateRequest(created.ProviderID())
	if err != nil {
		log.Panicf("failed to create update request: %s", err)
	}
	update.SetEnabled(false)
	updated, err := mgr.UpdateSamlProviderConfig(ctx, update)
	if err != nil {
		log.Panicf("failed to update saml provider config: %s", err)
	}
	log.Printf("updated provider %s, enabled %v", updated.ProviderID(), updated.Enabled())

	err = mgr.DeleteSamlProviderConfig(ctx, created.ProviderID())
	if err != nil {
		log.Panicf("failed to delete saml provider config: %s", err)
	}
	log.Printf("deleted provider %s", created.ProviderID())
}
