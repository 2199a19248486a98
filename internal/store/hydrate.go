package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tenlands/cardbinder/card"
)

const hydrateSQL = `
SELECT id, oracle_id, name, layout, set_code, collector_number, mana_cost, mana_value,
	colors, color_identity, type_line, oracle_text, power, toughness, loyalty, defense,
	rarity, border_color, security_stamp, frame, frame_year, released_at, lang, games,
	legalities, keywords, artist, watermark, flavor_text, full_art, digital, has_image,
	promo, promo_types, reprint, variation, variation_of, reserved, game_changer,
	arena_id, mtgo_id, mtgo_foil_id, multiverse_ids, finishes, edhrec_rank, faces, all_parts
FROM printings
`

// Hydrate reads every staged printing back into card.Card values, mirroring
// the teacher's buildMagicCardFromDB hydration step. The returned slice is
// handed directly to card.NewCorpus.
func Hydrate(ctx context.Context, db *sql.DB) ([]*card.Card, error) {
	rows, err := db.QueryContext(ctx, hydrateSQL)
	if err != nil {
		return nil, fmt.Errorf("querying staged printings: %w", err)
	}
	defer rows.Close()

	var out []*card.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning staged printing: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating staged printings: %w", err)
	}
	return out, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCard(r scanner) (*card.Card, error) {
	var (
		id, oracleID                                  string
		name, layout, set, collector, manaCost         string
		manaValue                                      float64
		colorsJSON, identityJSON                       string
		typeLine, oracleText                           string
		power, toughness, loyalty, defense             string
		rarity, border, stamp, frame                   string
		frameYear                                      int
		releasedAt, lang                                string
		gamesJSON, legalitiesJSON, keywordsJSON         string
		artist, watermark, flavor                      string
		fullArt, digital, hasImage                     bool
		promo                                           bool
		promoTypesJSON                                  string
		reprint, variation                              bool
		variationOf                                     sql.NullString
		reserved, gameChanger                           bool
		arenaID, mtgoID, mtgoFoilID, edhrecRank         sql.NullInt64
		multiverseJSON, finishesJSON                    string
		facesJSON, allPartsJSON                         string
	)

	if err := r.Scan(
		&id, &oracleID, &name, &layout, &set, &collector, &manaCost, &manaValue,
		&colorsJSON, &identityJSON, &typeLine, &oracleText, &power, &toughness, &loyalty, &defense,
		&rarity, &border, &stamp, &frame, &frameYear, &releasedAt, &lang, &gamesJSON,
		&legalitiesJSON, &keywordsJSON, &artist, &watermark, &flavor, &fullArt, &digital, &hasImage,
		&promo, &promoTypesJSON, &reprint, &variation, &variationOf, &reserved, &gameChanger,
		&arenaID, &mtgoID, &mtgoFoilID, &multiverseJSON, &finishesJSON, &edhrecRank, &facesJSON, &allPartsJSON,
	); err != nil {
		return nil, err
	}

	printingID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("parsing printing id %q: %w", id, err)
	}
	oracleUUID, err := uuid.Parse(oracleID)
	if err != nil {
		return nil, fmt.Errorf("parsing oracle id %q: %w", oracleID, err)
	}

	var colorStrs, identityStrs, gameStrs, keywords, promoTypes, finishes []string
	var multiverseIDs []int
	legalitiesRaw := map[string]string{}
	var wireFaces []WireFace
	var wireParts []WireRelatedCard

	_ = json.Unmarshal([]byte(colorsJSON), &colorStrs)
	_ = json.Unmarshal([]byte(identityJSON), &identityStrs)
	_ = json.Unmarshal([]byte(gamesJSON), &gameStrs)
	_ = json.Unmarshal([]byte(legalitiesJSON), &legalitiesRaw)
	_ = json.Unmarshal([]byte(keywordsJSON), &keywords)
	_ = json.Unmarshal([]byte(promoTypesJSON), &promoTypes)
	_ = json.Unmarshal([]byte(multiverseJSON), &multiverseIDs)
	_ = json.Unmarshal([]byte(finishesJSON), &finishes)
	_ = json.Unmarshal([]byte(facesJSON), &wireFaces)
	_ = json.Unmarshal([]byte(allPartsJSON), &wireParts)

	legalities := make(map[string]card.Legality, len(legalitiesRaw))
	for k, v := range legalitiesRaw {
		legalities[k] = card.Legality(v)
	}

	games := make([]card.Game, 0, len(gameStrs))
	for _, g := range gameStrs {
		games = append(games, card.Game(g))
	}

	faces := make([]card.Face, 0, len(wireFaces))
	for _, f := range wireFaces {
		faces = append(faces, card.Face{
			Name: f.Name, ManaCost: f.ManaCost, TypeLine: f.TypeLine, OracleText: f.OracleText,
			Power: f.Power, Toughness: f.Toughness, Loyalty: f.Loyalty, Defense: f.Defense,
			Colors: stringsToColorSet(f.Colors),
		})
	}

	allParts := make([]card.RelatedCard, 0, len(wireParts))
	for _, p := range wireParts {
		partID, err := uuid.Parse(p.ID)
		if err != nil {
			continue
		}
		allParts = append(allParts, card.RelatedCard{ID: partID, Name: p.Name, Component: p.Component})
	}

	var released time.Time
	if releasedAt != "" {
		released, _ = time.Parse("2006-01-02", releasedAt)
	}

	var variationOfPtr *uuid.UUID
	if variationOf.Valid {
		if v, err := uuid.Parse(variationOf.String); err == nil {
			variationOfPtr = &v
		}
	}

	return &card.Card{
		ID:              printingID,
		OracleID:        oracleUUID,
		Name:            name,
		Layout:          card.Layout(layout),
		Set:             set,
		CollectorNumber: collector,
		ManaCost:        manaCost,
		ManaValue:       manaValue,
		Colors:          stringsToColorSet(colorStrs),
		ColorIdentity:   stringsToColorSet(identityStrs),
		TypeLine:        typeLine,
		OracleText:      oracleText,
		Power:           power,
		Toughness:       toughness,
		Loyalty:         loyalty,
		Defense:         defense,
		Rarity:          card.Rarity(rarity),
		BorderColor:     border,
		SecurityStamp:   stamp,
		Frame:           frame,
		FrameYear:       frameYear,
		ReleasedAt:      released,
		Lang:            lang,
		Games:           games,
		Legalities:      legalities,
		Keywords:        keywords,
		Artist:          artist,
		Watermark:       watermark,
		FlavorText:      flavor,
		FullArt:         fullArt,
		Digital:         digital,
		HasImage:        hasImage,
		Promo:           promo,
		PromoTypes:      promoTypes,
		Reprint:         reprint,
		Variation:       variation,
		VariationOf:     variationOfPtr,
		Reserved:        reserved,
		GameChanger:     gameChanger,
		ArenaID:         nullIntToPtr(arenaID),
		MTGOID:          nullIntToPtr(mtgoID),
		MTGOFoilID:      nullIntToPtr(mtgoFoilID),
		MultiverseIDs:   multiverseIDs,
		Finishes:        finishes,
		EDHRecRank:      nullIntToPtr(edhrecRank),
		Faces:           faces,
		AllParts:        allParts,
	}, nil
}

func stringsToColorSet(ss []string) card.ColorSet {
	set := make(card.ColorSet, len(ss))
	for _, s := range ss {
		if len(s) == 1 {
			set[card.Color(s[0])] = struct{}{}
		}
	}
	return set
}

func nullIntToPtr(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}
