package mongodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	domainErrors "github.com/polkiloo/foodbridge/internal/domain/errors"
	"github.com/polkiloo/foodbridge/internal/domain/model"
)

func foodDoc(id primitive.ObjectID, status model.DonationStatus, acceptedBy string) bson.D {
	doc := bson.D{
		{Key: "_id", Value: id},
		{Key: "donorId", Value: "donor-1"},
		{Key: "type", Value: "food"},
		{Key: "amount", Value: int64(0)},
		{Key: "foodItem", Value: "Rice"},
		{Key: "quantity", Value: 2},
		{Key: "address", Value: "Main St"},
		{Key: "status", Value: string(status)},
		{Key: "createdAt", Value: time.Now()},
	}
	if acceptedBy != "" {
		at := time.Now().Add(-time.Hour)
		doc = append(doc,
			bson.E{Key: "acceptedBy", Value: acceptedBy},
			bson.E{Key: "acceptedAt", Value: at},
			bson.E{Key: "expectedCompletionDate", Value: model.ExpectedCompletion(at)},
		)
	}
	return doc
}

func TestDonationRepositoryCreateAndList(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		d, err := repo.Create(context.Background(), model.Donation{DonorID: "donor-1", Type: model.DonationTypeMonetary, Amount: 100})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.ID == "" || d.CreatedAt.IsZero() {
			t.Fatalf("expected id and timestamp, got %+v", d)
		}
	})

	mt.Run("create failure", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "boom"}))
		if _, err := repo.Create(context.Background(), model.Donation{DonorID: "donor-1"}); err == nil {
			t.Fatal("expected error")
		}
	})

	mt.Run("list available", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch,
			foodDoc(primitive.NewObjectID(), model.DonationStatusAvailable, ""),
			foodDoc(primitive.NewObjectID(), model.DonationStatusAvailable, ""),
		))
		list, err := repo.ListAvailable(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 2 || list[0].FoodItem != "Rice" || list[0].Quantity != 2 {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	mt.Run("list accepted by", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch,
			foodDoc(primitive.NewObjectID(), model.DonationStatusAccepted, "ngo-1"),
		))
		list, err := repo.ListAcceptedBy(context.Background(), "ngo-1", time.Now().Add(-24*time.Hour))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(list) != 1 || list[0].AcceptedBy != "ngo-1" || list[0].AcceptedAt == nil {
			t.Fatalf("unexpected list: %+v", list)
		}
	})

	mt.Run("list failure", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 1, Message: "boom"}))
		if _, err := repo.ListByDonor(context.Background(), "donor-1"); err == nil {
			t.Fatal("expected error")
		}
	})
}

func TestDonationRepositoryTransitions(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	at := time.Now().UTC()

	mt.Run("accept wins", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: foodDoc(id, model.DonationStatusAccepted, "ngo-1")}))
		d, err := repo.Accept(context.Background(), id.Hex(), "ngo-1", at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != model.DonationStatusAccepted || d.ExpectedCompletionDate == nil {
			t.Fatalf("unexpected donation: %+v", d)
		}
	})

	mt.Run("accept loses", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch, foodDoc(id, model.DonationStatusAccepted, "ngo-2")),
		)
		if _, err := repo.Accept(context.Background(), id.Hex(), "ngo-1", at); !errors.Is(err, domainErrors.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	mt.Run("accept missing", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch),
		)
		if _, err := repo.Accept(context.Background(), primitive.NewObjectID().Hex(), "ngo-1", at); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})

	mt.Run("complete by other ngo", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch, foodDoc(id, model.DonationStatusAccepted, "ngo-1")),
		)
		if _, err := repo.Complete(context.Background(), id.Hex(), "ngo-2", at); !errors.Is(err, domainErrors.ErrForbidden) {
			t.Fatalf("expected forbidden, got %v", err)
		}
	})

	mt.Run("complete not accepted", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		id := primitive.NewObjectID()
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(),
			mtest.CreateCursorResponse(0, ns(donationsCollection), mtest.FirstBatch, foodDoc(id, model.DonationStatusCompleted, "ngo-1")),
		)
		if _, err := repo.Complete(context.Background(), id.Hex(), "ngo-1", at); !errors.Is(err, domainErrors.ErrInvalidState) {
			t.Fatalf("expected invalid state, got %v", err)
		}
	})

	mt.Run("complete wins", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		id := primitive.NewObjectID()
		doc := append(foodDoc(id, model.DonationStatusCompleted, "ngo-1"), bson.E{Key: "completedAt", Value: at})
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: doc}))
		d, err := repo.Complete(context.Background(), id.Hex(), "ngo-1", at)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Status != model.DonationStatusCompleted || d.CompletedAt == nil {
			t.Fatalf("unexpected donation: %+v", d)
		}
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := newMockStorage(mt).Donations()
		if _, err := repo.Complete(context.Background(), "x", "ngo-1", at); !errors.Is(err, domainErrors.ErrNotFound) {
			t.Fatalf("expected not found, got %v", err)
		}
	})
}
