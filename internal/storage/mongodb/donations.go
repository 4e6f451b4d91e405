package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

var now = func() time.Time { return time.Now().UTC() }

func (r *donationRepository) coll() *mongo.Collection {
	return r.storage.collection(donationsCollection)
}

func (r *donationRepository) Create(ctx context.Context, d model.Donation) (*model.Donation, error) {
	if d.CreatedAt.IsZero() {
		d.CreatedAt = now()
	}
	res, err := r.coll().InsertOne(ctx, newDonationDocument(d))
	if err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		d.ID = oid.Hex()
	}
	return &d, nil
}

func (r *donationRepository) GetByID(ctx context.Context, id string) (*model.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	var doc donationDocument
	if err := r.coll().FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	d := doc.toModel()
	return &d, nil
}

func (r *donationRepository) ListByDonor(ctx context.Context, donorID string) ([]model.Donation, error) {
	return r.find(ctx, bson.M{"donorId": donorID}, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *donationRepository) ListAvailable(ctx context.Context) ([]model.Donation, error) {
	filter := bson.M{"type": string(model.DonationTypeFood), "status": string(model.DonationStatusAvailable)}
	return r.find(ctx, filter, bson.D{{Key: "createdAt", Value: -1}})
}

func (r *donationRepository) ListAcceptedBy(ctx context.Context, ngoID string, since time.Time) ([]model.Donation, error) {
	filter := bson.M{
		"type":       string(model.DonationTypeFood),
		"status":     string(model.DonationStatusAccepted),
		"acceptedBy": ngoID,
		"acceptedAt": bson.M{"$gte": since},
	}
	return r.find(ctx, filter, bson.D{{Key: "acceptedAt", Value: -1}})
}

func (r *donationRepository) ListOverdue(ctx context.Context, at time.Time) ([]model.Donation, error) {
	filter := bson.M{
		"status":                 string(model.DonationStatusAccepted),
		"expectedCompletionDate": bson.M{"$lt": at},
	}
	return r.find(ctx, filter, bson.D{{Key: "expectedCompletionDate", Value: 1}})
}

func (r *donationRepository) find(ctx context.Context, filter bson.M, sort bson.D) ([]model.Donation, error) {
	cursor, err := r.coll().Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []model.Donation
	for cursor.Next(ctx) {
		var doc donationDocument
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

// transition applies update to the single document matching filter and
// returns the updated document, or mongo.ErrNoDocuments when nothing matched.
func (r *donationRepository) transition(ctx context.Context, filter, update bson.M) (*model.Donation, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc donationDocument
	if err := r.coll().FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return nil, err
	}
	d := doc.toModel()
	return &d, nil
}

func (r *donationRepository) Accept(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	filter := bson.M{
		"_id":    oid,
		"type":   string(model.DonationTypeFood),
		"status": string(model.DonationStatusAvailable),
	}
	update := bson.M{"$set": bson.M{
		"status":                 string(model.DonationStatusAccepted),
		"acceptedBy":             ngoID,
		"acceptedAt":             at,
		"expectedCompletionDate": model.ExpectedCompletion(at),
	}}

	d, err := r.transition(ctx, filter, update)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("accept donation: %w", err)
	}
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}
	return nil, domainErrors.ErrInvalidState
}

func (r *donationRepository) Complete(ctx context.Context, id, ngoID string, at time.Time) (*model.Donation, error) {
	oid, ok := objectID(id)
	if !ok {
		return nil, domainErrors.ErrNotFound
	}

	filter := bson.M{
		"_id":        oid,
		"status":     string(model.DonationStatusAccepted),
		"acceptedBy": ngoID,
	}
	update := bson.M{"$set": bson.M{
		"status":      string(model.DonationStatusCompleted),
		"completedAt": at,
	}}

	d, err := r.transition(ctx, filter, update)
	if err == nil {
		return d, nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("complete donation: %w", err)
	}

	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current.Status != model.DonationStatusAccepted {
		return nil, domainErrors.ErrInvalidState
	}
	return nil, domainErrors.ErrForbidden
}
