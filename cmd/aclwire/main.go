// Command aclwire encodes, decodes and translates transport-neutral
// ACL blobs.
//
// It is a thin collaborator around the codec packages: platform tables
// are built once at startup (a malformed table aborts the process),
// then a single ACL is processed from stdin. Modes:
//
//	encode     read native entries (YAML, source platform bits) and
//	           print the canonical wire blob as hex
//	decode     read a hex wire blob and print the canonical form
//	translate  read a hex wire blob and print the target platform's
//	           native bits
package main

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/marmos91/aclwire/internal/logger"
	"github.com/marmos91/aclwire/pkg/acl"
	"github.com/marmos91/aclwire/pkg/acl/platform"
	"github.com/marmos91/aclwire/pkg/acl/translate"
	"github.com/marmos91/aclwire/pkg/acl/wire"
	"github.com/marmos91/aclwire/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to configuration file")
	mode := flag.String("mode", "decode", "encode, decode or translate")
	flag.Parse()

	if err := run(*configPath, *mode); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

func run(configPath, mode string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	logger.SetLevel(cfg.Logging.Level)

	// User-defined platforms first, so source/target can reference them.
	if err := config.RegisterPlatforms(cfg); err != nil {
		return fmt.Errorf("register platforms: %w", err)
	}

	source, err := platform.Lookup(cfg.Translator.Source)
	if err != nil {
		return err
	}
	target, err := platform.Lookup(cfg.Translator.Target)
	if err != nil {
		return err
	}

	// Table construction must halt startup on a malformed definition.
	sourceTables, err := source.Build()
	if err != nil {
		return err
	}
	targetTables, err := target.Build()
	if err != nil {
		return err
	}
	logger.Debug("Built translation tables for %q and %q", source.Name, target.Name)

	switch mode {
	case "encode":
		return encodeNative(os.Stdin, source, sourceTables)
	case "decode", "translate":
	default:
		return fmt.Errorf("unknown mode %q (want encode, decode or translate)", mode)
	}

	a, err := readWireACL(os.Stdin)
	if err != nil {
		return err
	}
	logger.Info("Decoded %s ACL with %d entries", a.Type, len(a.Aces))

	if mode == "decode" {
		return printCanonical(a)
	}
	return printTranslated(a, target, targetTables, cfg.Translator.OnUnmapped)
}

// nativeInput is the YAML shape accepted by encode mode: one ACL in
// the source platform's native bit groups.
type nativeInput struct {
	ACLType string `yaml:"acl_type"`
	Entries []struct {
		Perms     uint32 `yaml:"perms"`
		TagType   uint32 `yaml:"tag_type"`
		Flags     uint32 `yaml:"flags"`
		Principal string `yaml:"principal"`
	} `yaml:"entries"`
}

// encodeNative reads native entries, translates them through the
// source platform's tables and prints the canonical wire blob as hex.
func encodeNative(r io.Reader, source *platform.Definition, tables *translate.Tables) error {
	raw, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var in nativeInput
	if err := yaml.Unmarshal(raw, &in); err != nil {
		return fmt.Errorf("parse native entries: %w", err)
	}

	var aclType acl.Type
	switch in.ACLType {
	case "access":
		aclType = acl.TypeAccess
	case "default":
		aclType = acl.TypeDefault
	case "nfs4":
		aclType = acl.TypeNfs4
	default:
		return fmt.Errorf("unknown acl_type %q (want access, default or nfs4)", in.ACLType)
	}
	if aclType.Brand() != source.Brand {
		return fmt.Errorf("acl_type %s does not match platform %s brand %s",
			in.ACLType, source.Name, source.Brand)
	}

	natives := make([]translate.NativeAce, 0, len(in.Entries))
	for _, e := range in.Entries {
		natives = append(natives, translate.NativeAce{
			Perms:     e.Perms,
			TagType:   e.TagType,
			Flags:     e.Flags,
			Principal: e.Principal,
		})
	}

	a, err := translate.TranslateACL(tables, aclType, natives)
	if err != nil {
		return fmt.Errorf("translate from %s: %w", source.Name, err)
	}

	data, err := wire.Encode(a)
	if err != nil {
		return fmt.Errorf("encode ACL blob: %w", err)
	}

	_, err = fmt.Println(hex.EncodeToString(data))
	return err
}

// readWireACL reads a hex-encoded canonical ACL blob and decodes it.
func readWireACL(r io.Reader) (*acl.ACL, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimSpace(string(raw)))
	if err != nil {
		return nil, fmt.Errorf("input is not valid hex: %w", err)
	}

	a, err := wire.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode ACL blob: %w", err)
	}
	return a, nil
}

// canonicalEntry is the YAML view of one canonical ACE.
type canonicalEntry struct {
	Bits        string `yaml:"bits"`
	Tag         string `yaml:"tag"`
	Type        string `yaml:"type"`
	Permissions string `yaml:"permissions"`
	Flags       string `yaml:"flags"`
	Principal   string `yaml:"principal,omitempty"`
}

func printCanonical(a *acl.ACL) error {
	type doc struct {
		ACLType string           `yaml:"acl_type"`
		Brand   string           `yaml:"brand"`
		Entries []canonicalEntry `yaml:"entries"`
	}

	out := doc{ACLType: a.Type.String(), Brand: a.Brand().String()}
	for _, ace := range a.Aces {
		out.Entries = append(out.Entries, canonicalEntry{
			Bits:        fmt.Sprintf("0x%08x", ace.Bits()),
			Tag:         ace.Tag.String(),
			Type:        ace.Type.String(),
			Permissions: ace.Perms.String(),
			Flags:       ace.Flags.String(),
			Principal:   ace.Principal,
		})
	}

	return writeYAML(out)
}

// nativeEntry is the YAML view of one translated native ACE.
type nativeEntry struct {
	Perms     string `yaml:"perms"`
	TagType   string `yaml:"tag_type"`
	Flags     string `yaml:"flags"`
	Principal string `yaml:"principal,omitempty"`
	Unmapped  string `yaml:"unmapped,omitempty"`
}

func printTranslated(a *acl.ACL, target *platform.Definition, tables *translate.Tables, policy string) error {
	type doc struct {
		Platform string        `yaml:"platform"`
		ACLType  string        `yaml:"acl_type"`
		Entries  []nativeEntry `yaml:"entries"`
	}

	out := doc{Platform: target.Name, ACLType: a.Type.String()}

	if policy == "reject" {
		natives, err := translate.DecodeACL(tables, a)
		if err != nil {
			return fmt.Errorf("translate to %s: %w", target.Name, err)
		}
		for _, n := range natives {
			out.Entries = append(out.Entries, nativeEntry{
				Perms:     fmt.Sprintf("0x%08x", n.Perms),
				TagType:   fmt.Sprintf("0x%08x", n.TagType),
				Flags:     fmt.Sprintf("0x%08x", n.Flags),
				Principal: n.Principal,
			})
		}
		return writeYAML(out)
	}

	// warn/strip: the lossy path must be explicit. Per-group primitives
	// expose the residue so it can be reported instead of vanishing.
	for i, ace := range a.Aces {
		perms, unPerms := tables.Perms.DecodeCanonicalToNative(uint32(ace.Perms))
		tagType, unTagType := tables.TagType.DecodeCanonicalToNative(uint32(ace.Tag) | uint32(ace.Type))
		flags, unFlags := tables.Flags.DecodeCanonicalToNative(uint32(ace.Flags))

		unmapped := unPerms | unTagType | unFlags
		if unmapped != 0 && policy == "warn" {
			logger.Warn("entry %d: dropping unmapped canonical bits 0x%08x for platform %s",
				i, unmapped, target.Name)
		}

		entry := nativeEntry{
			Perms:     fmt.Sprintf("0x%08x", perms),
			TagType:   fmt.Sprintf("0x%08x", tagType),
			Flags:     fmt.Sprintf("0x%08x", flags),
			Principal: ace.Principal,
		}
		if unmapped != 0 {
			entry.Unmapped = fmt.Sprintf("0x%08x", unmapped)
		}
		out.Entries = append(out.Entries, entry)
	}

	return writeYAML(out)
}

func writeYAML(v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	_, err = os.Stdout.Write(data)
	return err
}
