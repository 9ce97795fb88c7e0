package schema

// CoreCardTable represents the card catalogue table
type CoreCardTable struct {
	Table      string
	ID         string
	Monster    string
	Type       string
	Card       string
	Year       string
	Grade      string
	Image      string
	AuctionURL string
	Price      string
	CreatedAt  string
	UpdatedAt  string
}

// CoreCard is the schema definition for core.card
var CoreCard = CoreCardTable{
	Table:      "core.card",
	ID:         "id",
	Monster:    "monster",
	Type:       "type",
	Card:       "card",
	Year:       "year",
	Grade:      "grade",
	Image:      "image",
	AuctionURL: "auctionurl",
	Price:      "price",
	CreatedAt:  "createdat",
	UpdatedAt:  "updatedat",
}

// ProjectionColumns lists the outward-facing columns in selection order.
func (t CoreCardTable) ProjectionColumns() []string {
	return []string{t.Monster, t.Type, t.Card, t.Year, t.Grade, t.Image, t.AuctionURL, t.Price}
}
