/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package command

import (
	"errors"
	"fmt"
	"strings"

	"github.com/suparena/primer/internal/config"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// JammedFlagValidator verifies that the arg following a flag does not begin
// with '--'.
func JammedFlagValidator(value any) error {
	if s, ok := value.(string); ok && strings.HasPrefix(s, "--") {
		return errors.New("must not begin with '--'")
	}
	return nil
}

func BackendValidator(value any) error {
	cfg := config.Defaults()
	cfg.Store.Backend, _ = value.(string)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("must be one of %v", []string{
			config.BackendMemory, config.BackendDisk, config.BackendSQLite, config.BackendDynamoDB,
		})
	}
	return nil
}

func NonNegativeValidator(value any) error {
	if n, ok := value.(int); ok && n < 0 {
		return errors.New("must not be negative")
	}
	return nil
}
