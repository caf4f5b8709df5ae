package schema

// HDF5 type-classification codes from S-100 Part 10c feature information
// tables. The "datatype" component of a feature information row names one of
// these classes; fillValue, lower and upper are stored as strings but carry
// the classified type.
//
// Reference: S-100 Edition 4.0.0 Table 10c-8 (datatype component).
const (
	H5TNoClass      = "H5T_NO_CLASS"
	H5TInteger      = "H5T_INTEGER"
	H5TFloat        = "H5T_FLOAT"
	H5TNativeFloat  = "H5T_NATIVE_FLOAT"
	H5TTime         = "H5T_TIME"
	H5TString       = "H5T_STRING"
	H5TBitfield     = "H5T_BITFIELD"
	H5TOpaque       = "H5T_OPAQUE"
	H5TCompound     = "H5T_COMPOUND"
	H5TReference    = "H5T_REFERENCE"
	H5TEnum         = "H5T_ENUM"
	H5TVarLen       = "H5T_VLEN"
	H5TArray        = "H5T_ARRAY"
	H5TNativeInt8   = "H5T_NATIVE_INT8"
	H5TNativeUint8  = "H5T_NATIVE_UINT8"
	H5TNativeInt16  = "H5T_NATIVE_INT16"
	H5TNativeUint16 = "H5T_NATIVE_UINT16"
	H5TNativeInt32  = "H5T_NATIVE_INT32"
	H5TNativeUint32 = "H5T_NATIVE_UINT32"
	H5TNativeInt64  = "H5T_NATIVE_INT64"
	H5TNativeUint64 = "H5T_NATIVE_UINT64"
	H5TCString      = "H5T_C_S1"
)

// typeClasses maps every classification code to the logical kind used when
// coercing a range attribute (fillValue/lower/upper). Unlisted or unhandled
// classes fall back to string.
var typeClasses = map[string]Kind{
	H5TInteger:      KindInt,
	H5TNativeInt8:   KindInt,
	H5TNativeUint8:  KindInt,
	H5TNativeInt16:  KindInt,
	H5TNativeUint16: KindInt,
	H5TNativeInt32:  KindInt,
	H5TNativeUint32: KindInt,
	H5TNativeInt64:  KindInt,
	H5TNativeUint64: KindInt,
	H5TFloat:        KindFloat,
	H5TNativeFloat:  KindFloat,
	H5TString:       KindString,
	H5TCString:      KindString,
}

// ClassifyTypeCode maps an HDF5 type-classification code to the logical
// kind of the range attributes it governs. Codes with no numeric
// interpretation (opaque, compound, reference and so on) classify as
// string, as does an empty or unknown code.
func ClassifyTypeCode(code string) Kind {
	if k, ok := typeClasses[code]; ok {
		return k
	}
	return KindString
}
