package guard

// Guard is a total, side-effect free predicate over an arbitrary value.
type Guard func(v any) bool

// primitive matches values whose unboxed kind is tag, or pointers boxing
// such a value.
func primitive(tag Tag) Guard {
	return func(v any) bool {
		return PrimitiveOf(v) == tag || boxedOf(v) == tag
	}
}

var (
	isString   = primitive(TagString)
	isNumber   = primitive(TagNumber)
	isBigInt   = primitive(TagBigInt)
	isBoolean  = primitive(TagBoolean)
	isSymbol   = primitive(TagSymbol)
	isFunction = primitive(TagFunction)
)

// IsString reports whether v is a string or a pointer to one.
func IsString(v any) bool { return isString(v) }

// IsNumber reports whether v is an integer, a float, a json.Number or a
// pointer to one of those.
func IsNumber(v any) bool { return isNumber(v) }

// IsBigInt reports whether v is a big.Int or *big.Int.
func IsBigInt(v any) bool { return isBigInt(v) }

// IsBoolean reports whether v is a bool or a pointer to one.
func IsBoolean(v any) bool { return isBoolean(v) }

// IsSymbol reports whether v is a Symbol.
func IsSymbol(v any) bool { return isSymbol(v) }

// IsUndefined reports whether v is the nil interface. Typed nils are null,
// not undefined.
func IsUndefined(v any) bool { return v == nil }

// IsObject reports whether v is a non-null, non-scalar value: maps,
// structs, arrays, dates, promises and boxed scalars.
func IsObject(v any) bool {
	return PrimitiveOf(v) == TagObject && !IsNull(v)
}

// IsFunction reports whether v is a non-nil func.
func IsFunction(v any) bool { return isFunction(v) }

// Primary returns the guards of the fundamental value kinds.
func Primary() map[Tag]Guard {
	return map[Tag]Guard{
		TagString:    IsString,
		TagNumber:    IsNumber,
		TagBigInt:    IsBigInt,
		TagBoolean:   IsBoolean,
		TagSymbol:    IsSymbol,
		TagUndefined: IsUndefined,
		TagObject:    IsObject,
		TagFunction:  IsFunction,
	}
}
