package querylang

// FieldKind enumerates the field names a field_clause may address
// (spec.md §4.3, exhaustive field-name list).
type FieldKind int

const (
	FieldName FieldKind = iota
	FieldOracleText
	FieldTypeLine
	FieldManaCost
	FieldManaValue
	FieldPower
	FieldToughness
	FieldLoyalty
	FieldDefense
	FieldColors
	FieldColorIdentity
	FieldRarity
	FieldSet
	FieldSetType
	FieldCollectorNumber
	FieldArtist
	FieldLanguage
	FieldFrameYear
	FieldReleaseYear
	FieldReleaseDate
	FieldFormatLegality
	FieldLayout
	FieldGames
	FieldBorder
	FieldStamp
	FieldFlavor
	FieldIs
)

// fieldSynonyms maps every accepted spelling (case-insensitive, matched
// lowercased) to its FieldKind.
var fieldSynonyms = map[string]FieldKind{
	"n": FieldName, "name": FieldName,
	"o": FieldOracleText, "oracle": FieldOracleText,
	"t": FieldTypeLine, "type": FieldTypeLine,
	"m": FieldManaCost, "mana": FieldManaCost,
	"mv": FieldManaValue, "cmc": FieldManaValue, "manavalue": FieldManaValue,
	"pow": FieldPower, "power": FieldPower,
	"tou": FieldToughness, "toughness": FieldToughness,
	"loy": FieldLoyalty, "loyalty": FieldLoyalty,
	"def": FieldDefense, "defense": FieldDefense,
	"c": FieldColors, "color": FieldColors,
	"id": FieldColorIdentity, "identity": FieldColorIdentity,
	"r": FieldRarity, "rarity": FieldRarity,
	"s": FieldSet, "set": FieldSet, "e": FieldSet, "edition": FieldSet,
	"st": FieldSetType, "settype": FieldSetType,
	"cn": FieldCollectorNumber, "number": FieldCollectorNumber,
	"a": FieldArtist, "artist": FieldArtist,
	"lang": FieldLanguage,
	"frame": FieldFrameYear,
	"year":  FieldReleaseYear,
	"date":  FieldReleaseDate,
	"f": FieldFormatLegality, "format": FieldFormatLegality, "legal": FieldFormatLegality,
	"layout": FieldLayout,
	"game":   FieldGames,
	"border": FieldBorder,
	"stamp":  FieldStamp,
	"ft":     FieldFlavor, "flavor": FieldFlavor,
	"is": FieldIs,
}

// printingOnlyFields forces printing-level scope when mentioned in a query
// (spec.md §4.4 "Scope selection"). Rarity is printing-only only when used
// in exact mode alongside set, which is already subsumed by set's own
// printing-only status, so it is intentionally omitted here.
var printingOnlyFields = map[FieldKind]bool{
	FieldSet:             true,
	FieldSetType:         true,
	FieldCollectorNumber: true,
	FieldArtist:          true,
	FieldLanguage:        true,
	FieldFrameYear:       true,
	FieldReleaseYear:     true,
	FieldReleaseDate:     true,
}

// Operator is one of the field-clause comparison operators.
type Operator int

const (
	OpColon Operator = iota
	OpEqual
	OpNotEqual
	OpLess
	OpLessEqual
	OpGreater
	OpGreaterEqual
)

var operatorsBySymbol = map[string]Operator{
	":":  OpColon,
	"=":  OpEqual,
	"!=": OpNotEqual,
	"<":  OpLess,
	"<=": OpLessEqual,
	">":  OpGreater,
	">=": OpGreaterEqual,
}
