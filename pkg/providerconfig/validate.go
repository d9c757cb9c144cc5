// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package providerconfig

import (
	"net/url"
	"strings"

	"github.com/go-core-stack/core/errors"
)

const (
	// provider id prefix for inbound SAML federation providers
	SamlProviderIDPrefix = "saml."

	// provider id prefix for inbound OIDC federation providers
	OidcProviderIDPrefix = "oidc."
)

// validates that the given field carries a non empty value
func checkNonEmpty(field, value string) error {
	if value == "" {
		return errors.Wrapf(errors.InvalidArgument, "%s must not be empty", field)
	}
	return nil
}

// validates that the given field carries a well formed absolute url,
// the API rejects relative or schemeless references for any of the
// endpoint fields
func checkURL(field, value string) error {
	if err := checkNonEmpty(field, value); err != nil {
		return err
	}
	parsed, err := url.Parse(value)
	if err != nil || !parsed.IsAbs() || parsed.Host == "" {
		return errors.Wrapf(errors.InvalidArgument, "%s is a malformed url: %q", field, value)
	}
	return nil
}

// validates a provider id against the prefix reserved for the specific
// federation protocol. the generic non empty check always applies, the
// prefix check extends it rather than replacing it
func checkProviderID(id, prefix string) error {
	if err := checkNonEmpty("provider id", id); err != nil {
		return err
	}
	if !strings.HasPrefix(id, prefix) {
		return errors.Wrapf(errors.InvalidArgument, "invalid %s provider id: %s", strings.TrimSuffix(prefix, "."), id)
	}
	return nil
}
