package db

type ObjectType uint8

const (
	StringType ObjectType = iota
	HashType
	SetType
)

func (t ObjectType) String() string {
	switch t {
	case StringType:
		return "string"
	case HashType:
		return "hash"
	case SetType:
		return "set"
	default:
		return "none"
	}
}

type EncodingType int

const (
	EncodingRaw      EncodingType = iota // plain Go string
	EncodingFlatMap                      // growable flatmap.Map
	EncodingFlatSet                      // growable flatmap.Set
	EncodingConstMap                     // fixed flatmap.ConstantMap
	EncodingConstSet                     // fixed flatmap.ConstantSet
)

func (e EncodingType) String() string {
	switch e {
	case EncodingRaw:
		return "raw"
	case EncodingFlatMap:
		return "flatmap"
	case EncodingFlatSet:
		return "flatset"
	case EncodingConstMap:
		return "constmap"
	case EncodingConstSet:
		return "constset"
	default:
		return "unknown"
	}
}

// Fixed reports whether the encoding has an immutable key set.
func (e EncodingType) Fixed() bool {
	return e == EncodingConstMap || e == EncodingConstSet
}
