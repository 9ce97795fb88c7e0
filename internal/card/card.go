// Copyright (c) 2026 Cardex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package card implements the monster trading card catalogue.

It owns the read-only query surface of the service: the reference domains that
define every valid criteria value, the interpreters that turn untrusted query
strings into compiled store filters, and the HTTP handlers exposing them.

# Core Responsibility

  - Reference Data: Immutable monster/type/grade/bucket domains.
  - Search: Single-field permissive lookup with fuzzy name matching.
  - Screen: Multi-field strict-enumeration filtering with pagination and sort.

The package never mutates card records. All persistence access goes through
the [Repository] contract.
*/
package card

import "time"

// # Card Domain

// Card is the persisted catalogue entity as stored by the record store.
type Card struct {
	ID         string    `json:"id"`
	Monster    string    `json:"monster"`
	Type       string    `json:"type"`
	Card       string    `json:"card"`
	Year       int       `json:"year"`
	Grade      float64   `json:"grade"`
	Image      string    `json:"image"`
	AuctionURL *string   `json:"auctionUrl"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"-"`
	UpdatedAt  time.Time `json:"-"`
}

// Info is the outward-facing projection of a [Card].
//
// It exposes exactly the eight domain fields; the record identifier and
// system timestamps never leave the service.
type Info struct {
	Monster    string  `json:"monster"`
	Type       string  `json:"type"`
	Card       string  `json:"card"`
	Year       int     `json:"year"`
	Grade      float64 `json:"grade"`
	Image      string  `json:"image"`
	AuctionURL *string `json:"auctionUrl"`
	Price      float64 `json:"price"`
}

// Info returns the public projection of the card.
func (c *Card) Info() Info {
	return Info{
		Monster:    c.Monster,
		Type:       c.Type,
		Card:       c.Card,
		Year:       c.Year,
		Grade:      c.Grade,
		Image:      c.Image,
		AuctionURL: c.AuctionURL,
		Price:      c.Price,
	}
}

// # Reference Domains

// MinYear is the earliest print year a card can carry.
const MinYear = 1990

// SearchableKeys lists the fields accepted by the search endpoint.
var SearchableKeys = []string{"monster", "type", "grade", "year", "card"}

// SortableKeys lists the fields the screen endpoint may sort by.
var SortableKeys = []string{"monster", "type", "grade", "year", "price"}

// Monsters is the canonical, lowercase monster name set.
//
// It is the single source of truth for monster validation and the corpus the
// approximate matcher ranks against.
var Monsters = []string{
	"gravelclaw", "snarlfang", "mudgnasher", "burrowbeast", "howlhorn",
	"stonepelt", "rusthide", "cragtusk", "furback", "stalkmaw",
	"stormjaw", "thundrak", "voltmaw", "cracklash", "skystormer",
	"electroclaw", "zephyron", "shockhorn", "boltgore", "tempestrix",
	"pyroscourge", "glaciator", "volcrag", "emberfang", "frostmaul",
	"terraxyl", "droughtfiend", "thornbrood", "miremaw", "aeroslither",
	"abysskraken", "kelpyrix", "brinefiend", "morathuun", "drownspawn",
	"tidal reaver", "salthorror", "deepfang", "charynth", "leviacrest",
	"ironmaw", "wargrith", "titanox", "cragthul", "ragehorn",
	"blightcrush", "gravemarch", "brutalisk", "mightclad", "smashgul",
	"spellmaw", "arcansoul", "mysthorn", "chronoghul", "glyphshade",
	"hexlurker", "manafiend", "runeborn", "sorcarok", "voidchant",
	"xelvharn", "ygnoth", "dreadwail", "whisperspine", "skinharrow",
	"oozorath", "hollowone", "facelessgrin", "nyxmaw", "grimveil",
	"bonehowler", "corpsemire", "skuldrith", "necroth", "wraithclaw",
	"gravecinder", "cryptgnaw", "ghoulmantle", "mournshade", "rotknight",
	"drakzul", "volgarax", "cindervyre", "frostwyrm", "thal'zuur",
	"stormdrake", "ashglide", "embercoil", "darkwynn", "zephyrosk",
	"fadewalker", "mirrormaw", "veilshard", "phantaziel", "whisperveil",
	"gloomscreech", "mindflicker", "shimmerskin", "obscureon", "dreamsplit",
}

// MonsterTypes is the canonical, lowercase type set.
var MonsterTypes = []string{
	"normal", "thunder", "elemental", "aquatic", "power",
	"magic", "horror", "undead", "dragon", "illusion",
}

// CardGrades is the ordered set of valid grades. It includes 0, so membership
// checks must use index lookups rather than zero-value sentinels.
var CardGrades = []float64{0, 1, 1.5, 2, 3, 4, 5, 6, 7, 8, 9, 10}

// CardYears lists the named year buckets accepted by the screen endpoint.
var CardYears = []string{"-2000", "2000-2010", "2010-2020", "2020+"}

// CardPrices lists the named price buckets accepted by the screen endpoint.
var CardPrices = []string{"<$20", "$20-$50", "$50-$100", "$100-$200", ">$200"}

// # Hint Payload

// Hint is the full reference-domain payload served by /hint-and-criteria.
type Hint struct {
	Monsters         []string  `json:"monsters"`
	MonsterTypes     []string  `json:"monsterTypes"`
	CardGrades       []float64 `json:"cardGrades"`
	CardYears        []string  `json:"cardYears"`
	CardPrices       []string  `json:"cardPrices"`
	SearchableFields []string  `json:"searchableFields"`
	SortableFields   []string  `json:"sortableFields"`
}

// NewHint assembles the reference domains into the hint payload.
func NewHint() Hint {
	return Hint{
		Monsters:         Monsters,
		MonsterTypes:     MonsterTypes,
		CardGrades:       CardGrades,
		CardYears:        CardYears,
		CardPrices:       CardPrices,
		SearchableFields: SearchableKeys,
		SortableFields:   SortableKeys,
	}
}

// # Field Identifiers

// Column-level field names shared by the interpreters and the store gateway.
const (
	FieldMonster = "monster"
	FieldType    = "type"
	FieldCard    = "card"
	FieldYear    = "year"
	FieldGrade   = "grade"
	FieldPrice   = "price"

	// Directive keys: present in screen queries but never part of a filter.
	KeyStart = "start"
	KeyCount = "count"
	KeySort  = "sort"
)
