package deck

// Config parameterizes the generic rule functions for one preset.
type Config struct {
	LegalityField string

	MinDeckSize   int // mainboard + commander minimum, 0 = no minimum
	ExactDeckSize int // exact total required, 0 = no exact requirement
	SideboardSize int // maximum sideboard size

	Singleton bool

	RequiresCommander     bool
	PlaneswalkerCommander bool // Oathbreaker: commander must be a planeswalker
	PauperCommander       bool // commander must be an uncommon printing, not legendary
	SignatureSpellCount   int  // Oathbreaker: exact mainboard-adjacent signature spell count

	MaxCopies int // 0 = use the singleton/4-of default for this preset
}

// Preset is a named rule set plus its configuration.
type Preset struct {
	Rules  []string
	Config Config
}

const (
	ruleLegalityStatus   = "legality.status"
	ruleDeckSizeMin      = "quantity.min-deck-size"
	ruleDeckSizeExact    = "quantity.exact-deck-size"
	ruleSideboardSize    = "quantity.sideboard-size"
	ruleCopyLimit        = "quantity.copy-limit"
	ruleCommanderPresent = "structure.commander-present"
	ruleCommanderLegal   = "structure.commander-legendary"
	rulePauperCommander  = "structure.commander-uncommon"
	ruleColorIdentity    = "identity.color-identity"
	ruleCompanion        = "structure.companion"
	rulePartner          = "structure.partner-pairing"
	ruleSignatureSpell   = "structure.signature-spell-count"
)

var constructedRules = []string{ruleLegalityStatus, ruleDeckSizeMin, ruleSideboardSize, ruleCopyLimit, ruleCompanion}

var commanderRules = []string{
	ruleLegalityStatus, ruleDeckSizeExact, ruleCopyLimit,
	ruleCommanderPresent, ruleCommanderLegal, ruleColorIdentity, rulePartner, ruleCompanion,
}

// pauperCommanderRules is commanderRules with the legendary-commander rule
// swapped for the uncommon-printing commander rule.
var pauperCommanderRules = []string{
	ruleLegalityStatus, ruleDeckSizeExact, ruleCopyLimit,
	ruleCommanderPresent, rulePauperCommander, ruleColorIdentity, rulePartner, ruleCompanion,
}

// gladiatorRules is the Arena singleton-constructed shape: no commander, no
// sideboard, a fixed 100-card singleton deck.
var gladiatorRules = []string{ruleLegalityStatus, ruleDeckSizeExact, ruleCopyLimit}

// Presets is the closed format table from spec.md §4.7.
var Presets = map[string]Preset{
	"standard": {Rules: constructedRules, Config: Config{LegalityField: "standard", MinDeckSize: 60, SideboardSize: 15}},
	"pioneer":  {Rules: constructedRules, Config: Config{LegalityField: "pioneer", MinDeckSize: 60, SideboardSize: 15}},
	"modern":   {Rules: constructedRules, Config: Config{LegalityField: "modern", MinDeckSize: 60, SideboardSize: 15}},
	"legacy":   {Rules: constructedRules, Config: Config{LegalityField: "legacy", MinDeckSize: 60, SideboardSize: 15}},
	"vintage":  {Rules: constructedRules, Config: Config{LegalityField: "vintage", MinDeckSize: 60, SideboardSize: 15}},
	"pauper":   {Rules: constructedRules, Config: Config{LegalityField: "pauper", MinDeckSize: 60, SideboardSize: 15}},

	"old_school": {Rules: constructedRules, Config: Config{LegalityField: "oldschool", MinDeckSize: 60, SideboardSize: 15}},
	"premodern":  {Rules: constructedRules, Config: Config{LegalityField: "premodern", MinDeckSize: 60, SideboardSize: 15}},

	"historic":  {Rules: constructedRules, Config: Config{LegalityField: "historic", MinDeckSize: 60, SideboardSize: 15}},
	"alchemy":   {Rules: constructedRules, Config: Config{LegalityField: "alchemy", MinDeckSize: 60, SideboardSize: 15}},
	"explorer":  {Rules: constructedRules, Config: Config{LegalityField: "explorer", MinDeckSize: 60, SideboardSize: 15}},
	"timeless":  {Rules: constructedRules, Config: Config{LegalityField: "timeless", MinDeckSize: 60, SideboardSize: 15}},
	"gladiator": {Rules: gladiatorRules, Config: Config{LegalityField: "gladiator", ExactDeckSize: 100, Singleton: true}},

	"standard_brawl": {Rules: commanderRules, Config: Config{LegalityField: "standardbrawl", ExactDeckSize: 60, Singleton: true, RequiresCommander: true}},
	"brawl":          {Rules: commanderRules, Config: Config{LegalityField: "brawl", ExactDeckSize: 100, Singleton: true, RequiresCommander: true}},
	"historic_brawl": {Rules: commanderRules, Config: Config{LegalityField: "historicbrawl", ExactDeckSize: 100, Singleton: true, RequiresCommander: true}},

	"commander": {Rules: commanderRules, Config: Config{LegalityField: "commander", ExactDeckSize: 100, Singleton: true, RequiresCommander: true}},
	"duel":      {Rules: commanderRules, Config: Config{LegalityField: "duel", ExactDeckSize: 100, Singleton: true, RequiresCommander: true}},
	"pauper_commander": {
		Rules:  pauperCommanderRules,
		Config: Config{LegalityField: "paupercommander", ExactDeckSize: 100, Singleton: true, RequiresCommander: true, PauperCommander: true},
	},
	"oathbreaker": {
		Rules: append(append([]string{}, commanderRules...), ruleSignatureSpell),
		Config: Config{
			LegalityField: "oathbreaker", ExactDeckSize: 60, Singleton: true,
			RequiresCommander: true, PlaneswalkerCommander: true, SignatureSpellCount: 1,
		},
	},

	"draft":         {Rules: []string{ruleDeckSizeMin}, Config: Config{MinDeckSize: 40}},
	"sealed":        {Rules: []string{ruleDeckSizeMin}, Config: Config{MinDeckSize: 40}},
	"kitchen_table": {Rules: nil, Config: Config{}},
}
