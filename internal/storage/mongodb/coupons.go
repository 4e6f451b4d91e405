package mongodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

// Issue reserves a point on the donor's redemption counter with a conditional
// increment, then stores the coupon. The reservation is released when the
// insert fails so the counter keeps matching the stored coupons.
func (r *couponRepository) Issue(ctx context.Context, c model.Coupon, earned int64) (*model.Coupon, int64, error) {
	coupons := r.storage.collection(couponsCollection)
	counters := r.storage.collection(redemptionsCollection)

	stored, err := coupons.CountDocuments(ctx, bson.M{"donorId": c.DonorID})
	if err != nil {
		return nil, 0, fmt.Errorf("count coupons: %w", err)
	}

	seed := bson.M{"$max": bson.M{"redeemed": stored}}
	if _, err := counters.UpdateOne(ctx, bson.M{"_id": c.DonorID}, seed, options.Update().SetUpsert(true)); err != nil {
		return nil, stored, fmt.Errorf("seed redemption counter: %w", err)
	}

	var counter redemptionCounter
	reserve := counters.FindOneAndUpdate(ctx,
		bson.M{"_id": c.DonorID, "redeemed": bson.M{"$lt": earned}},
		bson.M{"$inc": bson.M{"redeemed": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	)
	if err := reserve.Decode(&counter); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, stored, domainErrors.ErrInsufficientPoints
		}
		return nil, stored, fmt.Errorf("reserve point: %w", err)
	}

	if c.IssuedAt.IsZero() {
		c.IssuedAt = now()
	}
	doc := couponDocument{
		Code:           c.Code,
		DonorID:        c.DonorID,
		RestaurantID:   c.RestaurantID,
		RestaurantName: c.RestaurantName,
		IssuedAt:       c.IssuedAt,
	}
	res, err := coupons.InsertOne(ctx, doc)
	if err != nil {
		r.release(ctx, c.DonorID)
		if mongo.IsDuplicateKeyError(err) {
			return nil, counter.Redeemed - 1, fmt.Errorf("coupon code %s already issued", c.Code)
		}
		return nil, counter.Redeemed - 1, fmt.Errorf("insert coupon: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		c.ID = oid.Hex()
	}
	return &c, counter.Redeemed, nil
}

func (r *couponRepository) release(ctx context.Context, donorID string) {
	_, err := r.storage.collection(redemptionsCollection).UpdateOne(ctx,
		bson.M{"_id": donorID},
		bson.M{"$inc": bson.M{"redeemed": -1}},
	)
	if err != nil && r.storage.logger != nil {
		r.storage.logger.Error("release redemption reservation failed",
			slog.String("donor_id", donorID),
			slog.String("error", err.Error()),
		)
	}
}

func (r *couponRepository) ListByDonor(ctx context.Context, donorID string) ([]model.Coupon, error) {
	opts := options.Find().SetSort(bson.D{{Key: "issuedAt", Value: -1}})
	cursor, err := r.storage.collection(couponsCollection).Find(ctx, bson.M{"donorId": donorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.Coupon
	for cursor.Next(ctx) {
		var doc couponDocument
		if err := cursor.Decode(&doc); err != nil {
			return nil, err
		}
		result = append(result, doc.toModel())
	}
	if err := cursor.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
