package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const BeerCollection = "beer"

// Beer is the stored form of a beer. UPC is not unique.
type Beer struct {
	ID               string          `json:"id" bson:"_id"`
	BeerName         string          `json:"beerName" bson:"beerName"`
	BeerStyle        string          `json:"beerStyle" bson:"beerStyle"`
	Upc              string          `json:"upc" bson:"upc"`
	Price            decimal.Decimal `json:"price" bson:"price"`
	QuantityOnHand   int             `json:"quantityOnHand" bson:"quantityOnHand"`
	CreatedDate      time.Time       `json:"createdDate" bson:"createdDate"`
	LastModifiedDate time.Time       `json:"lastModifiedDate" bson:"lastModifiedDate"`
}

func (b Beer) DocumentID() string {
	return b.ID
}

func (b Beer) WithDocumentID(id string) Beer {
	b.ID = id
	return b
}
