package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Top-level YAML config key names used for shallow merge.
const (
	keyServer  = "server"
	keyStore   = "store"
	keyVendor  = "vendor"
	keyLoyalty = "loyalty"
	keyLogging = "logging"
	keyOutput  = "output"
)

// ShallowMergeYAML loads a YAML file and merges its top-level keys onto
// target. A key present in the overlay replaces the whole section; absent
// keys leave the target untouched. Unknown keys are ignored.
func ShallowMergeYAML(target *Config, overlayPath string) error {
	if target == nil {
		return errors.New("nil target *Config in ShallowMergeYAML")
	}

	data, err := os.ReadFile(overlayPath)
	if err != nil {
		return fmt.Errorf("reading overlay file %s: %w", overlayPath, err)
	}

	var overlay map[string]yaml.Node
	if err = yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing overlay YAML from %s: %w", overlayPath, err)
	}

	for key, node := range overlay {
		if err = mergeSection(target, key, &node); err != nil {
			return fmt.Errorf("applying overlay section %q: %w", key, err)
		}
	}
	return nil
}

// mergeSection decodes node into a fresh zero value so the section is
// replaced rather than field-merged.
func mergeSection(target *Config, key string, node *yaml.Node) error {
	switch key {
	case keyServer:
		var v ServerConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Server = v
	case keyStore:
		var v StoreConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Store = v
	case keyVendor:
		var v VendorConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Vendor = v
	case keyLoyalty:
		var v LoyaltyConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Loyalty = v
	case keyLogging:
		var v LoggingConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Logging = v
	case keyOutput:
		var v OutputConfig
		if err := node.Decode(&v); err != nil {
			return err
		}
		target.Output = v
	}
	return nil
}
