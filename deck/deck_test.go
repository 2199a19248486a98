package deck

import (
	"testing"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
)

type fixture struct {
	byPrinting map[uuid.UUID]*card.Card
}

func newFixture() *fixture { return &fixture{byPrinting: map[uuid.UUID]*card.Card{}} }

func (f *fixture) add(c *card.Card) *card.Card {
	f.byPrinting[c.ID] = c
	return c
}

func (f *fixture) byPrintingFn(id uuid.UUID) *card.Card { return f.byPrinting[id] }
func (f *fixture) byOracleFn(oracleID uuid.UUID) *card.Card {
	for _, c := range f.byPrinting {
		if c.OracleID == oracleID {
			return c
		}
	}
	return nil
}
func (f *fixture) printingsFn(oracleID uuid.UUID) []uuid.UUID {
	var out []uuid.UUID
	for id, c := range f.byPrinting {
		if c.OracleID == oracleID {
			out = append(out, id)
		}
	}
	return out
}

func newCard(name, typeLine string, mv float64, legal map[string]card.Legality) *card.Card {
	return &card.Card{
		ID: uuid.New(), OracleID: uuid.New(), Name: name, TypeLine: typeLine,
		ManaValue: mv, Legalities: legal, ColorIdentity: card.ColorSet{},
	}
}

func TestValidateConstructedTooFewCards(t *testing.T) {
	fx := newFixture()
	bolt := fx.add(newCard("Lightning Bolt", "Instant", 1, map[string]card.Legality{"modern": card.Legal}))

	d := Deck{Format: "modern", Cards: []Card{{PrintingID: bolt.ID, OracleID: bolt.OracleID, Section: SectionMainboard, Quantity: 4}}}
	res, err := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Valid {
		t.Fatal("expected invalid deck for too few cards")
	}
	if len(res.ByRule[ruleDeckSizeMin]) == 0 {
		t.Fatal("expected a deck-size violation")
	}
}

func TestValidateCopyLimitExceeded(t *testing.T) {
	fx := newFixture()
	bolt := fx.add(newCard("Lightning Bolt", "Instant", 1, map[string]card.Legality{"modern": card.Legal}))

	d := Deck{Format: "modern", Cards: []Card{{PrintingID: bolt.ID, OracleID: bolt.OracleID, Section: SectionMainboard, Quantity: 5}}}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if len(res.ByRule[ruleCopyLimit]) == 0 {
		t.Fatal("expected a copy-limit violation for 5 copies")
	}
}

func TestValidateBasicLandsUncapped(t *testing.T) {
	fx := newFixture()
	forest := fx.add(newCard("Forest", "Basic Land — Forest", 0, nil))

	d := Deck{Format: "modern", Cards: []Card{{PrintingID: forest.ID, OracleID: forest.OracleID, Section: SectionMainboard, Quantity: 20}}}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if len(res.ByRule[ruleCopyLimit]) != 0 {
		t.Fatal("basic lands must never trigger the copy-limit rule")
	}
}

func TestValidateCommanderMissing(t *testing.T) {
	fx := newFixture()
	d := Deck{Format: "commander", Cards: nil}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if res.Valid {
		t.Fatal("expected invalid deck with no commander")
	}
}

func TestValidateCommanderMustBeLegendaryCreature(t *testing.T) {
	fx := newFixture()
	bear := fx.add(newCard("Bear", "Creature — Bear", 2, map[string]card.Legality{"commander": card.Legal}))

	d := Deck{Format: "commander", Cards: []Card{{PrintingID: bear.ID, OracleID: bear.OracleID, Section: SectionCommander, Quantity: 1}}}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if len(res.ByRule[ruleCommanderLegal]) == 0 {
		t.Fatal("expected a commander-legality violation for a non-legendary creature")
	}
}

func TestValidateColorIdentityOutOfBounds(t *testing.T) {
	fx := newFixture()
	commander := fx.add(&card.Card{
		ID: uuid.New(), OracleID: uuid.New(), Name: "Commander", TypeLine: "Legendary Creature — Human",
		ColorIdentity: card.NewColorSet(card.Red), Legalities: map[string]card.Legality{"commander": card.Legal},
	})
	offColor := fx.add(&card.Card{
		ID: uuid.New(), OracleID: uuid.New(), Name: "Off Color", TypeLine: "Instant",
		ColorIdentity: card.NewColorSet(card.Blue), Legalities: map[string]card.Legality{"commander": card.Legal},
	})

	d := Deck{Format: "commander", Cards: []Card{
		{PrintingID: commander.ID, OracleID: commander.OracleID, Section: SectionCommander, Quantity: 1},
		{PrintingID: offColor.ID, OracleID: offColor.OracleID, Section: SectionMainboard, Quantity: 1},
	}}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if len(res.ByRule[ruleColorIdentity]) == 0 {
		t.Fatal("expected a color-identity violation for the off-color card")
	}
}

func TestValidateSingletonCommanderDeck(t *testing.T) {
	fx := newFixture()
	commander := fx.add(&card.Card{
		ID: uuid.New(), OracleID: uuid.New(), Name: "Commander", TypeLine: "Legendary Creature — Human",
		ColorIdentity: card.NewColorSet(card.Red), Legalities: map[string]card.Legality{"commander": card.Legal},
	})
	entries := []Card{{PrintingID: commander.ID, OracleID: commander.OracleID, Section: SectionCommander, Quantity: 1}}
	for i := 0; i < 99; i++ {
		c := fx.add(newCard("Mountain Spell", "Instant", 1, map[string]card.Legality{"commander": card.Legal}))
		c.ColorIdentity = card.NewColorSet(card.Red)
		entries = append(entries, Card{PrintingID: c.ID, OracleID: c.OracleID, Section: SectionMainboard, Quantity: 1})
	}

	d := Deck{Format: "commander", Cards: entries}
	res, _ := Validate(d, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if !res.Valid {
		t.Fatalf("expected a valid 100-card singleton commander deck, got violations: %+v", res.Violations)
	}
}

func TestValidateUnknownPreset(t *testing.T) {
	fx := newFixture()
	_, err := Validate(Deck{Format: "not-a-real-format"}, fx.byPrintingFn, fx.byOracleFn, fx.printingsFn, Options{})
	if err == nil {
		t.Fatal("expected an error for an unknown format preset")
	}
}

func TestCopyCapForNamedException(t *testing.T) {
	rats := &card.Card{Name: "Relentless Rats", OracleText: "Whenever you cast this spell, you may reveal... You may have any number of cards named Relentless Rats in your deck."}
	if cap := copyCapFor(rats, 4); cap != -1 {
		t.Fatalf("expected unlimited cap for a named-exception card, got %d", cap)
	}
}

func TestPairingLegalGenericPartners(t *testing.T) {
	a := &card.Card{Name: "A", OracleText: "Partner"}
	b := &card.Card{Name: "B", OracleText: "Partner"}
	if !pairingLegal(a, b) {
		t.Fatal("expected two generic-partner commanders to be a legal pairing")
	}
}

func TestPairingLegalPartnerWithNamed(t *testing.T) {
	a := &card.Card{Name: "A", OracleText: "Partner with B"}
	b := &card.Card{Name: "B", OracleText: ""}
	if !pairingLegal(a, b) {
		t.Fatal("expected a named partner-with pairing to be legal")
	}
}
