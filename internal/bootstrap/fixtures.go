package bootstrap

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tuanvumaihuynh/brewery/internal/model"
)

// Two beers share UPC 12356; UPCs are not unique.
func beerFixtures(now time.Time) []model.Beer {
	return []model.Beer{
		{
			BeerName:         "Galaxy Cat",
			BeerStyle:        "Pale Ale",
			Upc:              "12356",
			Price:            decimal.RequireFromString("12.99"),
			QuantityOnHand:   122,
			CreatedDate:      now,
			LastModifiedDate: now,
		},
		{
			BeerName:         "Crank",
			BeerStyle:        "Pale Ale",
			Upc:              "12356222",
			Price:            decimal.RequireFromString("11.99"),
			QuantityOnHand:   392,
			CreatedDate:      now,
			LastModifiedDate: now,
		},
		{
			BeerName:         "Sunshine City",
			BeerStyle:        "IPA",
			Upc:              "12356",
			Price:            decimal.RequireFromString("13.99"),
			QuantityOnHand:   144,
			CreatedDate:      now,
			LastModifiedDate: now,
		},
	}
}

func customerFixtures(now time.Time) []model.Customer {
	names := []string{"Good Customer", "Average Customer", "Bad Customer"}

	customers := make([]model.Customer, 0, len(names))
	for _, name := range names {
		customers = append(customers, model.Customer{
			CustomerName:     name,
			CreatedDate:      now,
			LastModifiedDate: now,
		})
	}
	return customers
}
