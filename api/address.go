package api

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// CheckAddress validates that the value is a hex encoded Ethereum address. An
// empty value is reported as a *RequiredError.
func CheckAddress(operation, name, value string) error {
	if err := Require(operation, StringParam(name, value)); err != nil {
		return err
	}
	if !common.IsHexAddress(value) {
		return fmt.Errorf("%w: %s: '%s' is not an ethereum address", ErrInvalidParam, operation, name)
	}
	return nil
}

