// Copyright © 2025 Prabhjot Singh Sethi, All Rights reserved
// Author: Prabhjot Singh Sethi <prabhjot.sethi@gmail.com>

package client

import (
	"net/http"

	"github.com/go-core-stack/core/errors"
)

// maps a non 2xx API response to the platform error kinds, keeping the
// server reported message available to the caller. anything we do not
// recognize explicitly lands as Unknown
func wrapStatusError(status int, body []byte) error {
	msg := string(body)
	if msg == "" {
		msg = http.StatusText(status)
	}
	switch status {
	case http.StatusBadRequest:
		return errors.Wrapf(errors.InvalidArgument, "%s", msg)
	case http.StatusUnauthorized, http.StatusForbidden:
		return errors.Wrapf(errors.Unauthorized, "%s", msg)
	case http.StatusNotFound:
		return errors.Wrapf(errors.NotFound, "%s", msg)
	case http.StatusConflict:
		return errors.Wrapf(errors.AlreadyExists, "%s", msg)
	}
	return errors.Wrapf(errors.Unknown, "unexpected status %d: %s", status, msg)
}
