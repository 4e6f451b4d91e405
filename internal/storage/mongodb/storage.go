package mongodb

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/polkiloo/foodbridge/internal/domain/repository"
)

const defaultDatabase = "foodbridge"

const (
	usersCollection       = "users"
	donationsCollection   = "donations"
	couponsCollection     = "coupons"
	redemptionsCollection = "redemptions"
)

// Storage acts as repository facade backed by MongoDB.
type Storage struct {
	client *mongo.Client
	db     *mongo.Database
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type donationRepository struct {
	storage *Storage
}

type couponRepository struct {
	storage *Storage
}

// New connects to MongoDB, verifies the connection and ensures indexes.
// The database name comes from the URI path and defaults to foodbridge.
func New(ctx context.Context, uri string, logger *slog.Logger) (*Storage, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return nil, fmt.Errorf("parse mongo uri: %w", err)
	}
	name := cs.Database
	if name == "" {
		name = defaultDatabase
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}

	storage := newWithDatabase(client.Database(name), logger)
	if err := storage.HealthCheck(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	if err := storage.ensureIndexes(ctx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	logger.Info("mongo storage ready", slog.String("database", name))
	return storage, nil
}

func newWithDatabase(db *mongo.Database, logger *slog.Logger) *Storage {
	return &Storage{client: db.Client(), db: db, logger: logger}
}

// Close disconnects the client.
func (s *Storage) Close() {
	if s.client == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(ctx); err != nil && s.logger != nil {
		s.logger.Warn("mongo disconnect failed", slog.String("error", err.Error()))
	}
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return s.db.RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Donations() repository.DonationRepository {
	return &donationRepository{storage: s}
}

func (s *Storage) Coupons() repository.CouponRepository {
	return &couponRepository{storage: s}
}

func (s *Storage) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Storage) ensureIndexes(ctx context.Context) error {
	indexes := map[string][]mongo.IndexModel{
		usersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		donationsCollection: {
			{Keys: bson.D{{Key: "donorId", Value: 1}, {Key: "createdAt", Value: -1}}},
			{Keys: bson.D{{Key: "type", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "acceptedBy", Value: 1}, {Key: "acceptedAt", Value: -1}}},
		},
		couponsCollection: {
			{Keys: bson.D{{Key: "code", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "donorId", Value: 1}, {Key: "issuedAt", Value: -1}}},
		},
	}

	for _, name := range []string{usersCollection, donationsCollection, couponsCollection} {
		if _, err := s.collection(name).Indexes().CreateMany(ctx, indexes[name]); err != nil {
			return fmt.Errorf("create %s indexes: %w", name, err)
		}
	}
	return nil
}

// objectID parses a hex id. Malformed ids never match a document.
func objectID(id string) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	return oid, err == nil
}
