// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"sort"

	"github.com/zeebo/blake3"

	"github.com/strata-foundation/strata/lib/codec"
)

// Fingerprint is a 32-byte BLAKE3 digest of a type's canonical
// encoding. Structurally equal types always have equal fingerprints,
// so fingerprints can key caches and detect interface drift between
// compilations without walking type graphs.
type Fingerprint [32]byte

// typeDomainKey is the BLAKE3 keyed-hash domain for type
// fingerprints. Domain separation ensures the same bytes hashed in a
// different context produce a different digest. The value is the
// ASCII encoding of the domain name, zero-padded to 32 bytes, so the
// key is inspectable in hex dumps without sacrificing any
// cryptographic property.
var typeDomainKey = [32]byte{
	's', 't', 'r', 'a', 't', 'a', '.', 't', 'y', 'p', 'e', 's', 'y', 's', '.',
	't', 'y', 'p', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// typeEncoding is the canonical CBOR shape of a type. Object
// properties are sorted by name and union members by their encoded
// bytes before hashing, so the fingerprint is independent of
// construction order, mirroring [Equal]'s order-insensitivity.
type typeEncoding struct {
	Kind            string             `cbor:"kind"`
	Name            string             `cbor:"name,omitempty"`
	Validation      uint8              `cbor:"validation,omitempty"`
	Value           string             `cbor:"value,omitempty"`
	Item            *typeEncoding      `cbor:"item,omitempty"`
	Properties      []propertyEncoding `cbor:"properties,omitempty"`
	Additional      *typeEncoding      `cbor:"additional,omitempty"`
	AdditionalFlags uint8              `cbor:"additionalFlags,omitempty"`
	Members         []codec.RawMessage `cbor:"members,omitempty"`
	Scopes          uint8              `cbor:"scopes,omitempty"`
	Body            *typeEncoding      `cbor:"body,omitempty"`
}

type propertyEncoding struct {
	Name  string        `cbor:"name"`
	Type  *typeEncoding `cbor:"type"`
	Flags uint8         `cbor:"flags"`
}

// FingerprintType computes the canonical fingerprint of t. Panics on a
// nil type, matching the constructors' treatment of nil as a
// programming error.
func FingerprintType(t Type) Fingerprint {
	data, err := codec.Marshal(encodeType(t))
	if err != nil {
		panic("typesys: encoding type for fingerprint: " + err.Error())
	}

	hasher, err := blake3.NewKeyed(typeDomainKey[:])
	if err != nil {
		panic("typesys: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write(data)

	var fingerprint Fingerprint
	copy(fingerprint[:], hasher.Sum(nil))
	return fingerprint
}

// EncodeType returns the canonical CBOR encoding of t, the exact
// bytes [FingerprintType] hashes. Exposed for diagnostic tooling.
func EncodeType(t Type) ([]byte, error) {
	return codec.Marshal(encodeType(t))
}

func encodeType(t Type) *typeEncoding {
	if t == nil {
		panic("typesys: encoding nil type")
	}
	switch typed := t.(type) {
	case *AnyType:
		return &typeEncoding{Kind: "any"}
	case *PrimitiveType:
		return &typeEncoding{Kind: typed.Kind.String(), Validation: uint8(typed.Validation)}
	case *StringLiteralType:
		return &typeEncoding{Kind: "stringLiteral", Value: typed.value}
	case *ArrayType:
		return &typeEncoding{Kind: "array"}
	case *TypedArrayType:
		return &typeEncoding{Kind: "typedArray", Item: encodeType(typed.item)}
	case *ObjectType:
		return encodeObject(typed)
	case *UnionType:
		return encodeUnion(typed)
	case *ScopeReferenceType:
		return &typeEncoding{Kind: "scopeReference", Scopes: uint8(typed.scopes)}
	case *ModuleType:
		return &typeEncoding{
			Kind:   "module",
			Name:   typed.name,
			Scopes: uint8(typed.scope),
			Body:   encodeType(typed.body),
		}
	default:
		panic(fmt.Sprintf("typesys: unencodable type %T", t))
	}
}

func encodeObject(t *ObjectType) *typeEncoding {
	encoding := &typeEncoding{Kind: "object", Name: t.name}

	if len(t.properties) > 0 {
		encoding.Properties = make([]propertyEncoding, len(t.properties))
		for i, prop := range t.properties {
			encoding.Properties[i] = propertyEncoding{
				Name:  prop.Name,
				Type:  encodeType(prop.Type),
				Flags: uint8(prop.Flags),
			}
		}
		sort.Slice(encoding.Properties, func(i, j int) bool {
			return encoding.Properties[i].Name < encoding.Properties[j].Name
		})
	}

	if t.additional != nil {
		encoding.Additional = encodeType(t.additional)
		encoding.AdditionalFlags = uint8(t.additionalFlags)
	}
	return encoding
}

func encodeUnion(t *UnionType) *typeEncoding {
	encoding := &typeEncoding{Kind: "union"}
	if len(t.members) == 0 {
		return encoding
	}

	encoding.Members = make([]codec.RawMessage, len(t.members))
	for i, member := range t.members {
		data, err := codec.Marshal(encodeType(member))
		if err != nil {
			panic("typesys: encoding union member for fingerprint: " + err.Error())
		}
		encoding.Members[i] = data
	}
	// Union membership is a set; sort the encoded members so the
	// fingerprint is independent of member order.
	sort.Slice(encoding.Members, func(i, j int) bool {
		return bytes.Compare(encoding.Members[i], encoding.Members[j]) < 0
	})
	return encoding
}

// FormatFingerprint returns the hex-encoded string representation of a
// fingerprint. This is the canonical format used in CLI output and
// logs.
func FormatFingerprint(fingerprint Fingerprint) string {
	return hex.EncodeToString(fingerprint[:])
}

// ParseFingerprint parses a 64-character hex string into a
// Fingerprint.
func ParseFingerprint(hexString string) (Fingerprint, error) {
	var fingerprint Fingerprint
	decoded, err := hex.DecodeString(hexString)
	if err != nil {
		return fingerprint, fmt.Errorf("parsing type fingerprint: %w", err)
	}
	if len(decoded) != 32 {
		return fingerprint, fmt.Errorf("type fingerprint is %d bytes, want 32", len(decoded))
	}
	copy(fingerprint[:], decoded)
	return fingerprint, nil
}
