package mongodb_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/tuanvumaihuynh/brewery/internal/storage/mongodb"
)

type priced struct {
	Price decimal.Decimal `bson:"price"`
}

func TestDecimalCodec(t *testing.T) {
	reg := mongodb.NewRegistry()

	t.Run("Should round trip as decimal128", func(t *testing.T) {
		in := priced{Price: decimal.RequireFromString("12.99")}

		raw, err := bson.MarshalWithRegistry(reg, in)
		require.NoError(t, err)

		val := bson.Raw(raw).Lookup("price")
		_, ok := val.Decimal128OK()
		assert.True(t, ok, "price should be stored as decimal128")

		var out priced
		require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
		assert.True(t, in.Price.Equal(out.Price))
	})

	t.Run("Should decode legacy numeric representations", func(t *testing.T) {
		tests := []struct {
			name string
			doc  bson.D
			want string
		}{
			{name: "double", doc: bson.D{{Key: "price", Value: 11.5}}, want: "11.5"},
			{name: "int32", doc: bson.D{{Key: "price", Value: int32(7)}}, want: "7"},
			{name: "string", doc: bson.D{{Key: "price", Value: "13.99"}}, want: "13.99"},
			{name: "decimal128", doc: bson.D{{Key: "price", Value: mustDecimal128(t, "12.50")}}, want: "12.5"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				raw, err := bson.Marshal(tt.doc)
				require.NoError(t, err)

				var out priced
				require.NoError(t, bson.UnmarshalWithRegistry(reg, raw, &out))
				assert.Equal(t, tt.want, out.Price.String())
			})
		}
	})
}

func mustDecimal128(t *testing.T, s string) primitive.Decimal128 {
	t.Helper()
	d, err := primitive.ParseDecimal128(s)
	require.NoError(t, err)
	return d
}
