package guard

import "sort"

// Tag is the canonical lowercase name of a runtime value kind.
type Tag string

// Primary tags name the fundamental value kinds.
const (
	TagString    Tag = "string"
	TagNumber    Tag = "number"
	TagBigInt    Tag = "bigint"
	TagBoolean   Tag = "boolean"
	TagSymbol    Tag = "symbol"
	TagUndefined Tag = "undefined"
	TagObject    Tag = "object"
	TagFunction  Tag = "function"
)

// Unusual tags name composite, literal and special kinds.
const (
	TagNever   Tag = "never"
	TagUnknown Tag = "unknown"
	TagNull    Tag = "null"
	TagTrue    Tag = "true"
	TagFalse   Tag = "false"
	TagArray   Tag = "array"
	TagPromise Tag = "promise"
	TagDate    Tag = "date"
	TagRegExp  Tag = "regexp"
	TagTypeOf  Tag = "typeof"
	TagKeyOf   Tag = "keyof"
	TagClass   Tag = "class"
	TagAny     Tag = "any"
)

var primaryTags = []Tag{
	TagString, TagNumber, TagBigInt, TagBoolean,
	TagSymbol, TagUndefined, TagObject, TagFunction,
}

var unusualTags = []Tag{
	TagNever, TagUnknown, TagNull, TagTrue, TagFalse, TagArray, TagPromise,
	TagDate, TagRegExp, TagTypeOf, TagKeyOf, TagClass, TagAny,
}

// PrimaryTags returns the primary tags in declaration order.
func PrimaryTags() []Tag {
	return append([]Tag(nil), primaryTags...)
}

// UnusualTags returns the unusual tags in declaration order.
func UnusualTags() []Tag {
	return append([]Tag(nil), unusualTags...)
}

// IsBuiltin reports whether name is one of the built-in tags.
func IsBuiltin(name string) bool {
	for _, t := range primaryTags {
		if string(t) == name {
			return true
		}
	}
	for _, t := range unusualTags {
		if string(t) == name {
			return true
		}
	}
	return false
}

func sortTags(tags []Tag) []Tag {
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
