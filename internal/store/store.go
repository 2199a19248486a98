// Package store stages raw corpus chunks into an in-memory SQLite database
// and hydrates them back into card.Card values. The database exists only
// to dedup printings by id across chunks during the one-time corpus build
// (grounded in the teacher's UpsertCard/UpsertPrinting pattern in
// state.go/card.go); it is discarded once Hydrate returns.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// Open creates a fresh in-memory SQLite database and applies the staging
// schema. The returned *sql.DB dies with the process, matching spec.md's
// "no corpus persistence across process restarts" non-goal.
func Open(ctx context.Context) (*sql.DB, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening staging database: %w", err)
	}
	if _, err := db.ExecContext(ctx, embeddedSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying staging schema: %w", err)
	}
	return db, nil
}

// Stage decodes each chunk as a JSON array of WireCard and upserts every
// printing into db. A malformed chunk is reported as an error naming its
// index; callers that want to skip-and-log instead (spec.md §7 "malformed
// chunk skipped") can call StageOne per chunk themselves.
func Stage(ctx context.Context, db *sql.DB, chunks [][]byte) (int, error) {
	total := 0
	for i, chunk := range chunks {
		n, err := StageOne(ctx, db, chunk)
		if err != nil {
			return total, fmt.Errorf("staging chunk %d: %w", i, err)
		}
		total += n
	}
	return total, nil
}

// StageOne decodes and upserts a single chunk, returning how many
// printings it contained.
func StageOne(ctx context.Context, db *sql.DB, chunk []byte) (int, error) {
	var cards []WireCard
	if err := json.Unmarshal(chunk, &cards); err != nil {
		return 0, fmt.Errorf("decoding chunk: %w", err)
	}
	for _, c := range cards {
		if err := UpsertPrinting(ctx, db, c); err != nil {
			return 0, fmt.Errorf("upserting printing %s: %w", c.ID, err)
		}
	}
	return len(cards), nil
}

const upsertPrintingSQL = `
INSERT INTO printings (
	id, oracle_id, name, layout, set_code, collector_number, mana_cost, mana_value,
	colors, color_identity, type_line, oracle_text, power, toughness, loyalty, defense,
	rarity, border_color, security_stamp, frame, frame_year, released_at, lang, games,
	legalities, keywords, artist, watermark, flavor_text, full_art, digital, has_image,
	promo, promo_types, reprint, variation, variation_of, reserved, game_changer,
	arena_id, mtgo_id, mtgo_foil_id, multiverse_ids, finishes, edhrec_rank, faces, all_parts
) VALUES (
	?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?,
	?, ?, ?, ?, ?, ?, ?, ?
)
ON CONFLICT(id) DO UPDATE SET
	oracle_id=excluded.oracle_id, name=excluded.name, layout=excluded.layout,
	set_code=excluded.set_code, collector_number=excluded.collector_number,
	mana_cost=excluded.mana_cost, mana_value=excluded.mana_value, colors=excluded.colors,
	color_identity=excluded.color_identity, type_line=excluded.type_line,
	oracle_text=excluded.oracle_text, power=excluded.power, toughness=excluded.toughness,
	loyalty=excluded.loyalty, defense=excluded.defense, rarity=excluded.rarity,
	border_color=excluded.border_color, security_stamp=excluded.security_stamp,
	frame=excluded.frame, frame_year=excluded.frame_year, released_at=excluded.released_at,
	lang=excluded.lang, games=excluded.games, legalities=excluded.legalities,
	keywords=excluded.keywords, artist=excluded.artist, watermark=excluded.watermark,
	flavor_text=excluded.flavor_text, full_art=excluded.full_art, digital=excluded.digital,
	has_image=excluded.has_image, promo=excluded.promo, promo_types=excluded.promo_types,
	reprint=excluded.reprint, variation=excluded.variation, variation_of=excluded.variation_of,
	reserved=excluded.reserved, game_changer=excluded.game_changer, arena_id=excluded.arena_id,
	mtgo_id=excluded.mtgo_id, mtgo_foil_id=excluded.mtgo_foil_id,
	multiverse_ids=excluded.multiverse_ids, finishes=excluded.finishes,
	edhrec_rank=excluded.edhrec_rank, faces=excluded.faces, all_parts=excluded.all_parts
`

// UpsertPrinting inserts or replaces one printing row, matching the
// teacher's UpsertPrinting shape: discrete scalars pass through directly,
// arrays/maps are JSON-encoded, and nullable pointer fields use sql.Null*.
func UpsertPrinting(ctx context.Context, db *sql.DB, c WireCard) error {
	_, err := db.ExecContext(ctx, upsertPrintingSQL,
		c.ID, c.OracleID, c.Name, c.Layout, c.Set, c.CollectorNumber, c.ManaCost, c.ManaValue,
		mustJSON(c.Colors), mustJSON(c.ColorIdentity), c.TypeLine, c.OracleText,
		c.Power, c.Toughness, c.Loyalty, c.Defense,
		c.Rarity, c.BorderColor, c.SecurityStamp, c.Frame, c.FrameYear, c.ReleasedAt, c.Lang, mustJSON(c.Games),
		mustJSON(c.Legalities), mustJSON(c.Keywords), c.Artist, c.Watermark, c.FlavorText,
		c.FullArt, c.Digital, c.HasImage,
		c.Promo, mustJSON(c.PromoTypes), c.Reprint, c.Variation, ptrToNullString(c.VariationOf), c.Reserved, c.GameChanger,
		ptrToNullInt(c.ArenaID), ptrToNullInt(c.MTGOID), ptrToNullInt(c.MTGOFoilID),
		mustJSON(c.MultiverseIDs), mustJSON(c.Finishes), ptrToNullInt(c.EDHRecRank),
		mustJSON(c.CardFaces), mustJSON(c.AllParts),
	)
	if err != nil {
		return fmt.Errorf("exec upsert printing: %w", err)
	}
	return nil
}

func mustJSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "null"
	}
	return string(b)
}

func ptrToNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func ptrToNullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}
