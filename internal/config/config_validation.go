// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

var structValidator = validator.New(validator.WithRequiredStructEnabled())

type validationGroup struct {
	value any
	err   error
}

// validate checks that the final merged [StructuredConfig] satisfies all
// server invariants before it is used at startup. Groups are checked in a
// fixed order and the first failing group is reported.
func (cfg *StructuredConfig) validate() error {
	return validateGroups(
		validationGroup{cfg.Agent, ErrInvalidAgentConfigs},
		validationGroup{cfg.Catalog, ErrInvalidCatalogConfigs},
		validationGroup{cfg.Storage.DB, ErrInvalidStorageConfigs},
		validationGroup{cfg.Server, ErrInvalidServerConfigs},
		validationGroup{cfg.App, ErrInvalidAppConfigs},
	)
}

func (cfg *ClientConfig) validate() error {
	return validateGroups(
		validationGroup{cfg.Adapter, ErrInvalidAdapterConfigs},
	)
}

func validateGroups(groups ...validationGroup) error {
	for _, g := range groups {
		if err := structValidator.Struct(g.value); err != nil {
			return fmt.Errorf("%w: %w", g.err, err)
		}
	}

	return nil
}
