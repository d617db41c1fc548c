package docs

import (
	goerrors "github.com/goliatone/go-errors"
)

const configInvalidCode = "DOCS_CONFIG_INVALID"

// wrapConfigError surfaces wiring-time configuration failures with a stable
// category and text code so hosts can map them onto startup diagnostics.
func wrapConfigError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "docs config validation failed").
		WithTextCode(configInvalidCode)
}
