package service

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/storage"
	"github.com/pribylovaa/session-service/mocks"
)

func newImagesSvc(t *testing.T) (*Service, *mocks.MockStorage, *mocks.MockImagesStorage) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mocks.NewMockStorage(ctrl)
	im := mocks.NewMockImagesStorage(ctrl)

	svc := build(t, testCfg(), st)
	svc.SetImages(im)

	return svc, st, im
}

func TestImages_Disabled(t *testing.T) {
	t.Parallel()

	svc, _ := newMockSvc(t)

	_, err := svc.ImageUploadURL(context.Background(), uuid.New(), storage.ImageAvatar, "image/png", 10)
	require.ErrorIs(t, err, ErrAvatarsDisabled)

	_, err = svc.ConfirmImage(context.Background(), uuid.New(), storage.ImageCover, "covers/x/y.png")
	require.ErrorIs(t, err, ErrAvatarsDisabled)
}

func TestImageUploadURL(t *testing.T) {
	t.Parallel()

	svc, _, im := newImagesSvc(t)
	uid := uuid.New()

	_, err := svc.ImageUploadURL(context.Background(), uid, storage.ImageAvatar, "", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = svc.ImageUploadURL(context.Background(), uid, storage.ImageKind("banners"), "image/png", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	im.EXPECT().ImageUploadURL(gomock.Any(), uid, storage.ImageAvatar, "image/gif", int64(10)).
		Return(nil, storage.ErrInvalidArgument)
	_, err = svc.ImageUploadURL(context.Background(), uid, storage.ImageAvatar, "image/gif", 10)
	require.ErrorIs(t, err, ErrInvalidArgument)

	want := &storage.UploadInfo{UploadURL: "http://s3/put", Key: "covers/k.png"}
	im.EXPECT().ImageUploadURL(gomock.Any(), uid, storage.ImageCover, "image/png", int64(10)).Return(want, nil)
	got, err := svc.ImageUploadURL(context.Background(), uid, storage.ImageCover, "image/png", 10)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestConfirmImage_AvatarReplacesAndRemovesPrevious(t *testing.T) {
	t.Parallel()

	svc, st, im := newImagesSvc(t)
	u := &models.User{Identity: models.Identity{
		ID:         uuid.New(),
		Avatar:     "http://cdn/old.png",
		CoverImage: "http://cdn/cover.jpg",
	}}
	key := "avatars/" + u.ID.String() + "/new.png"

	gomock.InOrder(
		st.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil),
		im.EXPECT().CheckImageUpload(gomock.Any(), u.ID, storage.ImageAvatar, key).Return("http://cdn/new.png", nil),
		st.EXPECT().UpdateAvatar(gomock.Any(), u.ID, "http://cdn/new.png").Return(nil),
		im.EXPECT().RemoveImage(gomock.Any(), u.ID, storage.ImageAvatar, "http://cdn/old.png").Return(errors.New("s3 hiccup")),
	)

	id, err := svc.ConfirmImage(context.Background(), u.ID, storage.ImageAvatar, key)
	require.NoError(t, err)
	require.Equal(t, "http://cdn/new.png", id.Avatar)
	require.Equal(t, "http://cdn/cover.jpg", id.CoverImage)
}

func TestConfirmImage_CoverWritesCoverField(t *testing.T) {
	t.Parallel()

	svc, st, im := newImagesSvc(t)
	u := &models.User{Identity: models.Identity{
		ID:         uuid.New(),
		Avatar:     "http://cdn/avatar.png",
		CoverImage: "http://cdn/old-cover.jpg",
	}}
	key := "covers/" + u.ID.String() + "/new.jpg"

	gomock.InOrder(
		st.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil),
		im.EXPECT().CheckImageUpload(gomock.Any(), u.ID, storage.ImageCover, key).Return("http://cdn/new-cover.jpg", nil),
		st.EXPECT().UpdateCoverImage(gomock.Any(), u.ID, "http://cdn/new-cover.jpg").Return(nil),
		im.EXPECT().RemoveImage(gomock.Any(), u.ID, storage.ImageCover, "http://cdn/old-cover.jpg").Return(nil),
	)

	id, err := svc.ConfirmImage(context.Background(), u.ID, storage.ImageCover, key)
	require.NoError(t, err)
	require.Equal(t, "http://cdn/new-cover.jpg", id.CoverImage)
	require.Equal(t, "http://cdn/avatar.png", id.Avatar)
}

// Обложка сохраняется в каталоге и видна в CurrentUser.
func TestConfirmImage_CoverVisibleInCurrentUser(t *testing.T) {
	t.Parallel()

	svc, st := newMemSvc(t, testCfg())
	im := mocks.NewMockImagesStorage(gomock.NewController(t))
	svc.SetImages(im)

	u := &models.User{Identity: models.Identity{ID: uuid.New(), Username: "frank", Email: "frank@example.com"}, PasswordHash: "h"}
	require.NoError(t, st.SaveUser(context.Background(), u))

	key := "covers/" + u.ID.String() + "/c.jpg"
	im.EXPECT().CheckImageUpload(gomock.Any(), u.ID, storage.ImageCover, key).Return("http://cdn/"+key, nil)

	_, err := svc.ConfirmImage(context.Background(), u.ID, storage.ImageCover, key)
	require.NoError(t, err)

	got, err := svc.CurrentUser(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "http://cdn/"+key, got.CoverImage)
	require.Empty(t, got.Avatar)
}

func TestConfirmImage_ObjectMissing(t *testing.T) {
	t.Parallel()

	svc, st, im := newImagesSvc(t)
	u := &models.User{Identity: models.Identity{ID: uuid.New()}}

	st.EXPECT().UserByID(gomock.Any(), u.ID).Return(u, nil)
	im.EXPECT().CheckImageUpload(gomock.Any(), u.ID, storage.ImageAvatar, "k").Return("", storage.ErrNotFound)

	_, err := svc.ConfirmImage(context.Background(), u.ID, storage.ImageAvatar, "k")
	require.ErrorIs(t, err, ErrNotFound)
}
