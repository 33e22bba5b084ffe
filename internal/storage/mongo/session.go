package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// slotUpdate строит $set/$unset для записи слота.
func slotUpdate(slot models.RefreshSlot) bson.D {
	if slot.Empty() {
		return bson.D{
			{Key: "$set", Value: bson.D{{Key: "refresh_token_hash", Value: ""}}},
			{Key: "$unset", Value: bson.D{{Key: "refresh_expires_at", Value: ""}}},
		}
	}

	return bson.D{{Key: "$set", Value: bson.D{
		{Key: "refresh_token_hash", Value: slot.TokenHash},
		{Key: "refresh_expires_at", Value: toMS(slot.ExpiresAt)},
	}}}
}

func (s *Storage) RefreshSlot(ctx context.Context, id uuid.UUID) (models.RefreshSlot, error) {
	const op = "storage.mongo.RefreshSlot"

	var doc struct {
		Hash string     `bson:"refresh_token_hash"`
		Exp  *time.Time `bson:"refresh_expires_at"`
	}

	opts := options.FindOne().SetProjection(bson.D{
		{Key: "refresh_token_hash", Value: 1},
		{Key: "refresh_expires_at", Value: 1},
	})

	if err := s.users.FindOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, opts).Decode(&doc); err != nil {
		return models.RefreshSlot{}, mapErr(op, err)
	}

	slot := models.RefreshSlot{TokenHash: doc.Hash}
	if doc.Exp != nil {
		slot.ExpiresAt = doc.Exp.UTC()
	}

	return slot, nil
}

func (s *Storage) SetRefreshSlot(ctx context.Context, id uuid.UUID, slot models.RefreshSlot) error {
	const op = "storage.mongo.SetRefreshSlot"

	res, err := s.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, slotUpdate(slot))
	if err != nil {
		return mapErr(op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// SwapRefreshSlot — CAS через фильтр по текущему хэшу: документ обновляется
// атомарно, только если refresh_token_hash всё ещё равен expectedHash.
func (s *Storage) SwapRefreshSlot(ctx context.Context, id uuid.UUID, expectedHash string, next models.RefreshSlot) (bool, error) {
	const op = "storage.mongo.SwapRefreshSlot"

	if expectedHash == "" {
		return false, nil
	}

	filter := bson.D{
		{Key: "_id", Value: id.String()},
		{Key: "refresh_token_hash", Value: expectedHash},
	}

	res, err := s.users.UpdateOne(ctx, filter, slotUpdate(next))
	if err != nil {
		return false, mapErr(op, err)
	}

	if res.MatchedCount == 1 {
		return true, nil
	}

	n, err := s.users.CountDocuments(ctx, bson.D{{Key: "_id", Value: id.String()}})
	if err != nil {
		return false, mapErr(op, err)
	}

	if n == 0 {
		return false, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return false, nil
}

func (s *Storage) ClearExpiredRefreshSlots(ctx context.Context, now time.Time) (int64, error) {
	const op = "storage.mongo.ClearExpiredRefreshSlots"

	filter := bson.D{
		{Key: "refresh_token_hash", Value: bson.D{{Key: "$ne", Value: ""}}},
		{Key: "refresh_expires_at", Value: bson.D{{Key: "$lte", Value: toMS(now)}}},
	}

	res, err := s.users.UpdateMany(ctx, filter, slotUpdate(models.RefreshSlot{}))
	if err != nil {
		return 0, mapErr(op, err)
	}

	return res.ModifiedCount, nil
}
