package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
)

// userDoc — документ коллекции users. _id хранит UUID строкой.
type userDoc struct {
	ID               string     `bson:"_id"`
	Username         string     `bson:"username"`
	UsernameLC       string     `bson:"username_lc"`
	Email            string     `bson:"email"`
	EmailLC          string     `bson:"email_lc"`
	FullName         string     `bson:"full_name"`
	Avatar           string     `bson:"avatar"`
	CoverImage       string     `bson:"cover_image"`
	PasswordHash     string     `bson:"password_hash"`
	RefreshTokenHash string     `bson:"refresh_token_hash"`
	RefreshExpiresAt *time.Time `bson:"refresh_expires_at,omitempty"`
	CreatedAt        time.Time  `bson:"created_at"`
	UpdatedAt        time.Time  `bson:"updated_at"`
}

// MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func fromModel(u *models.User) userDoc {
	return userDoc{
		ID:           u.ID.String(),
		Username:     u.Username,
		UsernameLC:   lower(u.Username),
		Email:        u.Email,
		EmailLC:      lower(u.Email),
		FullName:     u.FullName,
		Avatar:       u.Avatar,
		CoverImage:   u.CoverImage,
		PasswordHash: u.PasswordHash,
		CreatedAt:    toMS(u.CreatedAt),
		UpdatedAt:    toMS(u.UpdatedAt),
	}
}

func (d *userDoc) toModel() (*models.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("bad _id %q: %w", d.ID, err)
	}

	return &models.User{
		Identity: models.Identity{
			ID:         id,
			Username:   d.Username,
			Email:      d.Email,
			FullName:   d.FullName,
			Avatar:     d.Avatar,
			CoverImage: d.CoverImage,
			CreatedAt:  d.CreatedAt,
			UpdatedAt:  d.UpdatedAt,
		},
		PasswordHash: d.PasswordHash,
	}, nil
}

// mapErr приводит ошибки драйвера к доменным ошибкам storage.
func mapErr(op string, err error) error {
	if errors.Is(err, mongodriver.ErrNoDocuments) {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	if mongodriver.IsDuplicateKeyError(err) {
		return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
	}

	return fmt.Errorf("%s: %w", op, err)
}

func (s *Storage) findOne(ctx context.Context, op string, filter bson.D) (*models.User, error) {
	var doc userDoc
	if err := s.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, mapErr(op, err)
	}

	u, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// SaveUser вставляет нового пользователя.
func (s *Storage) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage.mongo.SaveUser"

	if _, err := s.users.InsertOne(ctx, fromModel(user)); err != nil {
		return mapErr(op, err)
	}

	return nil
}

// UserByLogin ищет по username или email без учета регистра.
func (s *Storage) UserByLogin(ctx context.Context, login string) (*models.User, error) {
	const op = "storage.mongo.UserByLogin"

	l := lower(login)
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username_lc", Value: l}},
		bson.D{{Key: "email_lc", Value: l}},
	}}}

	return s.findOne(ctx, op, filter)
}

func (s *Storage) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage.mongo.UserByID"

	return s.findOne(ctx, op, bson.D{{Key: "_id", Value: id.String()}})
}

// updateByID выполняет $set по _id и возвращает ErrNotFound, если документа нет.
func (s *Storage) updateByID(ctx context.Context, op string, id uuid.UUID, set bson.D) error {
	res, err := s.users.UpdateOne(ctx, bson.D{{Key: "_id", Value: id.String()}}, bson.D{{Key: "$set", Value: set}})
	if err != nil {
		return mapErr(op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

func (s *Storage) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	const op = "storage.mongo.UpdatePasswordHash"

	return s.updateByID(ctx, op, id, bson.D{
		{Key: "password_hash", Value: hash},
		{Key: "updated_at", Value: toMS(time.Now())},
	})
}

// UpdateAccount меняет full_name и/или email; пустые значения пропускаются.
func (s *Storage) UpdateAccount(ctx context.Context, id uuid.UUID, fullName, email string) (*models.User, error) {
	const op = "storage.mongo.UpdateAccount"

	set := bson.D{{Key: "updated_at", Value: toMS(time.Now())}}
	if fullName != "" {
		set = append(set, bson.E{Key: "full_name", Value: fullName})
	}
	if email != "" {
		set = append(set,
			bson.E{Key: "email", Value: email},
			bson.E{Key: "email_lc", Value: lower(email)},
		)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc userDoc
	err := s.users.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: id.String()}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&doc)
	if err != nil {
		return nil, mapErr(op, err)
	}

	u, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

func (s *Storage) UpdateAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	const op = "storage.mongo.UpdateAvatar"

	return s.updateByID(ctx, op, id, bson.D{
		{Key: "avatar", Value: avatarURL},
		{Key: "updated_at", Value: toMS(time.Now())},
	})
}

func (s *Storage) UpdateCoverImage(ctx context.Context, id uuid.UUID, coverURL string) error {
	return s.updateByID(ctx, "storage.mongo.UpdateCoverImage", id, bson.D{
		{Key: "cover_image", Value: coverURL},
		{Key: "updated_at", Value: toMS(time.Now())},
	})
}
