// Package card defines the printing/oracle data model shared by every
// component of the query core: the lexer's field table, the evaluator's
// predicates, the fuzzy index, and the deck validator all operate on the
// Card type defined here.
package card

import (
	"time"

	"github.com/google/uuid"
)

// Layout is a closed enum of Scryfall-style card layouts.
type Layout string

const (
	LayoutNormal       Layout = "normal"
	LayoutTransform    Layout = "transform"
	LayoutModalDFC     Layout = "modal_dfc"
	LayoutSplit        Layout = "split"
	LayoutFlip         Layout = "flip"
	LayoutAdventure    Layout = "adventure"
	LayoutMeld         Layout = "meld"
	LayoutSaga         Layout = "saga"
	LayoutArtSeries    Layout = "art_series"
	LayoutToken        Layout = "token"
	LayoutDoubleFacedT Layout = "double_faced_token"
	LayoutEmblem       Layout = "emblem"
	LayoutPlane        Layout = "plane"
	LayoutScheme       Layout = "scheme"
	LayoutVanguard     Layout = "vanguard"
	LayoutCase         Layout = "case"
	LayoutClass        Layout = "class"
	LayoutAugment      Layout = "augment"
	LayoutHost         Layout = "host"
	LayoutReversible   Layout = "reversible_card"
)

// Rarity is a closed enum with a fixed total order used by rarity
// comparisons (common < uncommon < rare < mythic; special/bonus sort as
// mythic per spec).
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityMythic   Rarity = "mythic"
	RaritySpecial  Rarity = "special"
	RarityBonus    Rarity = "bonus"
)

// Order returns the ordinal used for rarity comparison operators.
// special and bonus compare as mythic, per spec.md §4.4.
func (r Rarity) Order() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityMythic, RaritySpecial, RarityBonus:
		return 3
	default:
		return -1
	}
}

// Color is one of the five pips plus colorless.
type Color byte

const (
	White      Color = 'W'
	Blue       Color = 'U'
	Black      Color = 'B'
	Red        Color = 'R'
	Green      Color = 'G'
	Colorless  Color = 'C'
)

// ColorSet is a small, comparable set of Color values.
type ColorSet map[Color]struct{}

// NewColorSet builds a ColorSet from individual colors.
func NewColorSet(colors ...Color) ColorSet {
	s := make(ColorSet, len(colors))
	for _, c := range colors {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether c is a member of the set.
func (s ColorSet) Has(c Color) bool {
	_, ok := s[c]
	return ok
}

// IsEmpty reports the colorless set.
func (s ColorSet) IsEmpty() bool { return len(s) == 0 }

// Subset reports whether every color in s is also in other.
func (s ColorSet) Subset(other ColorSet) bool {
	for c := range s {
		if !other.Has(c) {
			return false
		}
	}
	return true
}

// Equal reports set equality.
func (s ColorSet) Equal(other ColorSet) bool {
	if len(s) != len(other) {
		return false
	}
	return s.Subset(other)
}

// Legality is the per-format legality status of a card.
type Legality string

const (
	Legal      Legality = "legal"
	NotLegal   Legality = "not_legal"
	Banned     Legality = "banned"
	Restricted Legality = "restricted"
)

// Game is a medium a printing exists in.
type Game string

const (
	GamePaper Game = "paper"
	GameMTGO  Game = "mtgo"
	GameArena Game = "arena"
)

// Face describes one face of a multi-faced card (transform, split, MDFC,
// adventure, flip, meld). Single-faced cards have no faces.
type Face struct {
	Name       string
	ManaCost   string
	TypeLine   string
	OracleText string
	Power      string
	Toughness  string
	Loyalty    string
	Defense    string
	Colors     ColorSet
}

// RelatedCard names another printing linked to this one (token, meld part,
// meld result, combo piece) — used by meld/token predicates in querylang
// and by deck validator lookups.
type RelatedCard struct {
	ID        uuid.UUID
	Name      string
	Component string // token | meld_part | meld_result | combo_piece
}

// Card is a single printing. Oracle-level aggregation is performed by
// Corpus (corpus.go in this package), not by this type.
type Card struct {
	ID       uuid.UUID // printing id
	OracleID uuid.UUID

	Name       string
	Layout     Layout
	Set        string
	CollectorNumber string
	ManaCost   string
	ManaValue  float64
	Colors     ColorSet
	ColorIdentity ColorSet
	TypeLine   string
	OracleText string

	Power     string
	Toughness string
	Loyalty   string
	Defense   string

	Rarity        Rarity
	BorderColor   string
	SecurityStamp string
	Frame         string
	FrameYear     int
	ReleasedAt    time.Time
	Lang          string
	Games         []Game
	Legalities    map[string]Legality
	Keywords      []string
	Artist        string
	Watermark     string
	FlavorText    string

	FullArt   bool
	Digital   bool
	HasImage  bool
	Promo     bool
	PromoTypes []string
	Reprint   bool
	Variation bool
	VariationOf *uuid.UUID
	Reserved  bool
	GameChanger bool

	ArenaID       *int
	MTGOID        *int
	MTGOFoilID    *int
	MultiverseIDs []int
	Finishes      []string
	EDHRecRank    *int

	Faces    []Face
	AllParts []RelatedCard
}

// IsEnglish reports the language predicate used by the canonical selection
// scoring function.
func (c *Card) IsEnglish() bool { return c.Lang == "en" }
