package config

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/marmos91/aclwire/internal/logger"
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/platform"
	"github.com/marmos91/aclwire/pkg/acl/translate"
)

// PlatformConfig is a user-defined platform table definition as it
// appears in the configuration file:
//
//	platforms:
//	  - name: myos
//	    brand: nfs4
//	    perms:
//	      - canonical: 0x1
//	        native: 0x20
type PlatformConfig struct {
	Name    string       `mapstructure:"name"`
	Brand   string       `mapstructure:"brand"`
	Perms   []PairConfig `mapstructure:"perms"`
	TagType []PairConfig `mapstructure:"tag_type"`
	Flags   []PairConfig `mapstructure:"flags"`
}

// PairConfig is one canonical/native bit pairing.
type PairConfig struct {
	Canonical uint32 `mapstructure:"canonical"`
	Native    uint32 `mapstructure:"native"`
}

// RegisterPlatforms decodes every user-defined platform section and
// registers it alongside the shipped platforms.
//
// Each definition is built once here to surface malformed tables
// (duplicate or multi-bit pairs) at startup rather than at first use.
func RegisterPlatforms(cfg *Config) error {
	for i, section := range cfg.Platforms {
		var pc PlatformConfig
		if err := mapstructure.Decode(section, &pc); err != nil {
			return fmt.Errorf("platforms[%d]: %w", i, err)
		}

		def, err := buildDefinition(pc)
		if err != nil {
			return fmt.Errorf("platforms[%d]: %w", i, err)
		}

		if err := platform.Register(def); err != nil {
			return fmt.Errorf("platforms[%d]: %w", i, err)
		}

		logger.Debug("Registered platform %q (%d permission, %d tag/type, %d flag pairs)",
			def.Name, len(def.Perms), len(def.TagType), len(def.Flags))
	}

	return nil
}

// buildDefinition converts a decoded section into a platform
// definition and verifies its tables construct cleanly.
func buildDefinition(pc PlatformConfig) (*platform.Definition, error) {
	if pc.Name == "" {
		return nil, fmt.Errorf("platform definition requires a name")
	}

	var brand acl.Brand
	switch pc.Brand {
	case "posix":
		brand = acl.BrandPosix
	case "nfs4":
		brand = acl.BrandNfs4
	default:
		return nil, fmt.Errorf("platform %q: brand must be posix or nfs4, got %q", pc.Name, pc.Brand)
	}

	def := &platform.Definition{
		Name:    pc.Name,
		Brand:   brand,
		Perms:   toPairs(pc.Perms),
		TagType: toPairs(pc.TagType),
		Flags:   toPairs(pc.Flags),
	}

	if _, err := def.Build(); err != nil {
		return nil, err
	}

	return def, nil
}

func toPairs(pairs []PairConfig) []translate.Pair {
	out := make([]translate.Pair, 0, len(pairs))
	for _, p := range pairs {
		out = append(out, translate.Pair{Canonical: p.Canonical, Native: p.Native})
	}
	return out
}
