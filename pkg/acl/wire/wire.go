// Package wire encodes canonical ACLs for transport.
//
// Wire format:
//
//	byte 0      brand
//	byte 1      ACL type discriminator
//	bytes 2..   XDR: entry count (uint32), then per entry the 32-bit
//	            canonical ACE word followed by the principal as an XDR
//	            string
//
// All integers are big-endian. The principal encoding here is the XDR
// string convention; transports with their own identity scheme can
// send empty principals and attach identities out of band.
package wire

import (
	"bytes"
	"fmt"

	xdr "github.com/rasky/go-xdr/xdr2"

	"github.com/marmos91/aclwire/pkg/acl"
)

// wireEntry is one ACE as laid out on the wire.
type wireEntry struct {
	Bits      uint32
	Principal string
}

// wireBody is the XDR-encoded remainder after the two discriminator
// bytes. The slice carries its own uint32 count.
type wireBody struct {
	Entries []wireEntry
}

// Encode serializes a canonical ACL.
//
// Every entry is validated against the layout and against the ACL's
// brand before anything is written: an ACL that cannot be represented
// faithfully is an error, never a partial blob.
func Encode(a *acl.ACL) ([]byte, error) {
	if a.Type == acl.TypeUnknown {
		return nil, fmt.Errorf("cannot encode ACL with unknown type")
	}

	brand := a.Brand()
	body := wireBody{Entries: make([]wireEntry, 0, len(a.Aces))}

	for i, ace := range a.Aces {
		bits := ace.Bits()
		if err := acl.Validate(bits); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := acl.ValidateForBrand(ace, brand); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		body.Entries = append(body.Entries, wireEntry{Bits: bits, Principal: ace.Principal})
	}

	buf := new(bytes.Buffer)
	buf.WriteByte(byte(brand))
	buf.WriteByte(byte(a.Type))

	if _, err := xdr.Marshal(buf, body); err != nil {
		return nil, fmt.Errorf("marshal ACL body: %w", err)
	}

	return buf.Bytes(), nil
}

// Decode deserializes a canonical ACL.
//
// Raw words arriving off the wire are never trusted: every ACE is
// validated against the layout and the stated brand before the ACL is
// constructed. Any failure rejects the whole blob with the entry index.
func Decode(data []byte) (*acl.ACL, error) {
	if len(data) < 2 {
		return nil, fmt.Errorf("ACL blob too short: %d bytes", len(data))
	}

	brand := acl.Brand(data[0])
	aclType := acl.Type(data[1])

	if aclType == acl.TypeUnknown || aclType > acl.TypeNfs4 {
		return nil, fmt.Errorf("unknown ACL type discriminator %d", data[1])
	}
	if brand != aclType.Brand() {
		return nil, fmt.Errorf("brand byte %s does not match ACL type %s", brand, aclType)
	}

	var body wireBody
	if _, err := xdr.Unmarshal(bytes.NewReader(data[2:]), &body); err != nil {
		return nil, fmt.Errorf("unmarshal ACL body: %w", err)
	}

	aces := make([]acl.Ace, 0, len(body.Entries))
	for i, entry := range body.Entries {
		ace, err := acl.AceFromBits(brand, entry.Bits, entry.Principal)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if err := acl.ValidateForBrand(ace, brand); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		aces = append(aces, ace)
	}

	return &acl.ACL{Type: aclType, Aces: aces}, nil
}
