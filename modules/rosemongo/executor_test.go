package rosemongo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/isaymatato/roseredis"
	"github.com/isaymatato/roseredis/modules/rosemongo"
)

func TestExecutor(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("merges replies in order", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(2)}),
			mtest.CreateCursorResponse(0, "shop.customers", mtest.FirstBatch, bson.D{
				{Key: "customer_id", Value: "C975310"},
				{Key: "first_name", Value: "Sandra"},
			}),
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(7)}),
		)

		c := roseredis.NewClient(rosemongo.New(mt.DB), roseredis.WithLogger(nil))
		res, err := c.Multi().
			Command(rosemongo.Insert("orders", "stats.inserted", bson.D{{Key: "sku", Value: "A"}}, bson.D{{Key: "sku", Value: "B"}})).
			Command(rosemongo.FindOne("customers", bson.D{{Key: "customer_id", Value: "C975310"}}, "customer")).
			Command(rosemongo.CountDocuments("orders", bson.D{}, "stats.orders")).
			Exec(context.Background())
		require.NoError(mt, err)

		v, ok := res.Lookup("stats.inserted")
		require.True(mt, ok)
		require.Equal(mt, int64(2), v)

		v, ok = res.Lookup("customer.first_name")
		require.True(mt, ok)
		require.Equal(mt, "Sandra", v)

		v, _ = res.Lookup("stats.orders")
		require.Equal(mt, int64(7), v)
	})

	mt.Run("command error fails the batch", func(mt *mtest.T) {
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "n", Value: int32(1)}),
			mtest.CreateCommandErrorResponse(mtest.CommandError{
				Code:    2,
				Name:    "BadValue",
				Message: "bad query",
			}),
		)

		c := roseredis.NewClient(rosemongo.New(mt.DB), roseredis.WithLogger(nil))
		res, err := c.Multi().
			Command(rosemongo.CountDocuments("orders", bson.D{}, "n")).
			Command(rosemongo.CountDocuments("orders", bson.D{{Key: "$bad", Value: 1}}, "n")).
			Exec(context.Background())

		var execErr roseredis.ExecutorError
		require.ErrorAs(mt, err, &execErr)
		require.Nil(mt, res)
	})
}

func TestReplyHelpers(t *testing.T) {
	reply := bson.M{
		"ok": 1,
		"cursor": bson.M{
			"id": int64(0),
			"firstBatch": bson.A{
				bson.M{"name": "a"},
				bson.D{{Key: "name", Value: "b"}},
			},
		},
	}

	batch := rosemongo.FirstBatch(reply)
	require.Len(t, batch, 2)
	require.Equal(t, "b", batch[1]["name"])

	first, ok := rosemongo.First(reply)
	require.True(t, ok)
	require.Equal(t, "a", first["name"])

	_, ok = rosemongo.First(bson.M{"ok": 1})
	require.False(t, ok)

	n, ok := rosemongo.Count(bson.D{{Key: "n", Value: int32(3)}})
	require.True(t, ok)
	require.Equal(t, int64(3), n)
}
