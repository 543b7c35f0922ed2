// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the ENVJSON_* variables. Each group of
// [StructuredConfig] reads its own prefix: ENVJSON_ for the resolver,
// ENVJSON_OUTPUT_, ENVJSON_WATCH_ and ENVJSON_LOG_ for the rest, while
// ENVJSON_CONFIG names the settings file. Unset variables leave their fields
// zero so that lower layers show through the merge.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}
	return nil
}
