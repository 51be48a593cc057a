// Copyright 2026 The Strata Authors
// SPDX-License-Identifier: Apache-2.0

package typesys

// Property is one named property of an [ObjectType]: a name, a value
// type, and the modifier flags that govern how the checker and emitter
// treat it. Properties are constructed during type synthesis and are
// immutable thereafter; each belongs to exactly one object type.
type Property struct {
	// Name is the property name. Names compare ordinally (byte-exact,
	// case-sensitive).
	Name string

	// Type is the property's value type.
	Type Type

	// Flags are the property's modifier bits.
	Flags PropertyFlags
}

// ObjectType is a structural record type: an ordered list of uniquely
// named properties, optionally open to additional properties of a
// uniform type. A nil additional-properties type means the object is
// closed — only the declared names are permitted.
type ObjectType struct {
	name            string
	properties      []Property
	index           map[string]int
	additional      Type
	additionalFlags PropertyFlags
}

// Object is the canonical empty object type, open to values of any
// type. It is what the declared type name "object" resolves to.
var Object = NewOpenObject("object", nil, Any, FlagNone)

// NewObject returns a closed object type with the given display name
// and properties. Property order is preserved as given. Panics if two
// properties share a name (programming error — property names within
// one object type must be unique).
func NewObject(name string, properties []Property) *ObjectType {
	return newObject(name, properties, nil, FlagNone)
}

// NewOpenObject returns an object type that additionally permits
// arbitrary undeclared property names, each conforming to the
// additional type and carrying the additional flags. Panics on
// duplicate property names or a nil additional type.
func NewOpenObject(name string, properties []Property, additional Type, additionalFlags PropertyFlags) *ObjectType {
	if additional == nil {
		panic("typesys: nil additional-properties type for open object " + name)
	}
	return newObject(name, properties, additional, additionalFlags)
}

func newObject(name string, properties []Property, additional Type, additionalFlags PropertyFlags) *ObjectType {
	index := make(map[string]int, len(properties))
	owned := make([]Property, len(properties))
	for i, property := range properties {
		if property.Type == nil {
			panic("typesys: nil type for property " + property.Name + " of object " + name)
		}
		if _, exists := index[property.Name]; exists {
			panic("typesys: duplicate property " + property.Name + " in object " + name)
		}
		index[property.Name] = i
		owned[i] = property
	}
	return &ObjectType{
		name:            name,
		properties:      owned,
		index:           index,
		additional:      additional,
		additionalFlags: additionalFlags,
	}
}

// Name returns the object's display name.
func (t *ObjectType) Name() string { return t.name }

// Properties returns the declared properties in declaration order. The
// returned slice is owned by the type; callers must not modify it.
func (t *ObjectType) Properties() []Property { return t.properties }

// Property returns the declared property with the given name.
func (t *ObjectType) Property(name string) (Property, bool) {
	i, ok := t.index[name]
	if !ok {
		return Property{}, false
	}
	return t.properties[i], true
}

// AdditionalProperties returns the value type permitted for undeclared
// property names, or nil when the object is closed.
func (t *ObjectType) AdditionalProperties() Type { return t.additional }

// AdditionalPropertiesFlags returns the flags applied to undeclared
// properties of an open object. Zero for closed objects.
func (t *ObjectType) AdditionalPropertiesFlags() PropertyFlags { return t.additionalFlags }

// IsOpen reports whether undeclared property names are permitted.
func (t *ObjectType) IsOpen() bool { return t.additional != nil }

// EmittedProperties returns the declared properties that participate in
// template emission, in declaration order: every property not flagged
// [FlagSystemGenerated]. System-generated properties (a resource's id,
// type, and apiVersion) are part of the checked type so authors can
// read them, but the platform supplies their values — the emitter must
// not write them into the compiled template body.
func (t *ObjectType) EmittedProperties() []Property {
	emitted := make([]Property, 0, len(t.properties))
	for _, property := range t.properties {
		if property.Flags.Has(FlagSystemGenerated) {
			continue
		}
		emitted = append(emitted, property)
	}
	return emitted
}

func (*ObjectType) isType() {}
