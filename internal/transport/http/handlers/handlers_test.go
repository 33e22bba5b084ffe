package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/session-service/internal/config"
	"github.com/pribylovaa/session-service/internal/models"
	"github.com/pribylovaa/session-service/internal/service"
	"github.com/pribylovaa/session-service/internal/storage"
	"github.com/pribylovaa/session-service/internal/transport/http/middleware"
)

// stubService — ручная заглушка Service: каждый метод делегирует в
// необязательную функцию, незаданные вызовы валят тест.
type stubService struct {
	t *testing.T

	login   func(identifier, pw string) (*models.Session, error)
	refresh func(token string) (*models.Session, error)
	presign func(userID uuid.UUID, kind storage.ImageKind, ct string, n int64) (*storage.UploadInfo, error)
	confirm func(userID uuid.UUID, kind storage.ImageKind, key string) (*models.Identity, error)
}

func (s *stubService) fail(name string) {
	s.t.Helper()
	s.t.Fatalf("unexpected call %s", name)
}

func (s *stubService) Register(context.Context, service.RegisterInput) (*models.Identity, error) {
	s.fail("Register")
	return nil, nil
}

func (s *stubService) Login(_ context.Context, identifier, pw string) (*models.Session, error) {
	if s.login == nil {
		s.fail("Login")
	}
	return s.login(identifier, pw)
}

func (s *stubService) Refresh(_ context.Context, token string) (*models.Session, error) {
	if s.refresh == nil {
		s.fail("Refresh")
	}
	return s.refresh(token)
}

func (s *stubService) Logout(context.Context, uuid.UUID) error {
	s.fail("Logout")
	return nil
}

func (s *stubService) ChangePassword(context.Context, uuid.UUID, string, string) error {
	s.fail("ChangePassword")
	return nil
}

func (s *stubService) CurrentUser(context.Context, uuid.UUID) (*models.Identity, error) {
	s.fail("CurrentUser")
	return nil, nil
}

func (s *stubService) UpdateAccount(context.Context, uuid.UUID, string, string) (*models.Identity, error) {
	s.fail("UpdateAccount")
	return nil, nil
}

func (s *stubService) ImageUploadURL(_ context.Context, userID uuid.UUID, kind storage.ImageKind, ct string, n int64) (*storage.UploadInfo, error) {
	if s.presign == nil {
		s.fail("ImageUploadURL")
	}
	return s.presign(userID, kind, ct, n)
}

func (s *stubService) ConfirmImage(_ context.Context, userID uuid.UUID, kind storage.ImageKind, key string) (*models.Identity, error) {
	if s.confirm == nil {
		s.fail("ConfirmImage")
	}
	return s.confirm(userID, kind, key)
}

type outcomes map[string]int

func (o outcomes) AuthOutcome(operation, outcome string) { o[operation+":"+outcome]++ }

func newReq(method, body string, id *models.Identity) *http.Request {
	req := httptest.NewRequest(method, "/", strings.NewReader(body))
	if id != nil {
		req = req.WithContext(middleware.WithIdentity(req.Context(), id))
	}
	return req
}

func testSession() *models.Session {
	now := time.Now().UTC()
	return &models.Session{
		Tokens: &models.TokenPair{
			AccessToken:      "access-1",
			RefreshToken:     "refresh-1",
			AccessExpiresAt:  now.Add(time.Minute),
			RefreshExpiresAt: now.Add(time.Hour),
		},
		User: models.Identity{ID: uuid.New(), Username: "alice"},
	}
}

func TestLogin_PrefersUsernameAndRecordsOutcome(t *testing.T) {
	var gotIdentifier string
	svc := &stubService{t: t, login: func(identifier, _ string) (*models.Session, error) {
		gotIdentifier = identifier
		return testSession(), nil
	}}
	obs := outcomes{}
	h := New(svc, config.CookieConfig{Insecure: true, Path: "/", SameSite: "strict"}, obs)

	rr := httptest.NewRecorder()
	h.Login(rr, newReq(http.MethodPost, `{"username":"alice","email":"a@example.com","password":"pw"}`, nil))

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "alice", gotIdentifier)
	require.Equal(t, 1, obs["login:ok"])

	for _, c := range rr.Result().Cookies() {
		require.Equal(t, http.SameSiteStrictMode, c.SameSite)
		require.False(t, c.Secure)
		require.True(t, c.HttpOnly)
	}
}

func TestLogin_FailureOutcomeUsesErrorCode(t *testing.T) {
	svc := &stubService{t: t, login: func(string, string) (*models.Session, error) {
		return nil, fmt.Errorf("x: %w", service.ErrInvalidCredentials)
	}}
	obs := outcomes{}
	h := New(svc, config.CookieConfig{}, obs)

	rr := httptest.NewRecorder()
	h.Login(rr, newReq(http.MethodPost, `{"email":"a@example.com","password":"pw"}`, nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, 1, obs["login:invalid_credentials"])
}

func TestRefresh_CookieWinsOverBody(t *testing.T) {
	var got string
	svc := &stubService{t: t, refresh: func(token string) (*models.Session, error) {
		got = token
		return testSession(), nil
	}}
	h := New(svc, config.CookieConfig{}, nil)

	req := newReq(http.MethodPost, `{"refresh_token":"from-body"}`, nil)
	req.AddCookie(&http.Cookie{Name: CookieRefreshToken, Value: "from-cookie"})

	rr := httptest.NewRecorder()
	h.RefreshToken(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "from-cookie", got)
}

func TestRefresh_EmptyRequestIsUnauthenticated(t *testing.T) {
	obs := outcomes{}
	h := New(&stubService{t: t}, config.CookieConfig{}, obs)

	rr := httptest.NewRecorder()
	h.RefreshToken(rr, newReq(http.MethodPost, "", nil))

	require.Equal(t, http.StatusUnauthorized, rr.Code)
	require.Equal(t, 1, obs["refresh:unauthenticated"])
}

func TestProtectedHandlers_WithoutIdentity(t *testing.T) {
	h := New(&stubService{t: t}, config.CookieConfig{}, nil)

	for name, fn := range map[string]http.HandlerFunc{
		"logout":          h.Logout,
		"change_password": h.ChangePassword,
		"current_user":    h.CurrentUser,
		"update_account":  h.UpdateAccount,
		"avatar_presign":  h.AvatarPresign,
		"avatar_confirm":  h.AvatarConfirm,
		"cover_presign":   h.CoverPresign,
		"cover_confirm":   h.CoverConfirm,
	} {
		rr := httptest.NewRecorder()
		fn(rr, newReq(http.MethodPost, "{}", nil))
		require.Equal(t, http.StatusUnauthorized, rr.Code, name)
	}
}

func TestAvatarPresign_MapsUploadInfo(t *testing.T) {
	id := &models.Identity{ID: uuid.New()}
	svc := &stubService{t: t, presign: func(userID uuid.UUID, kind storage.ImageKind, ct string, n int64) (*storage.UploadInfo, error) {
		require.Equal(t, id.ID, userID)
		require.Equal(t, storage.ImageAvatar, kind)
		require.Equal(t, "image/png", ct)
		require.EqualValues(t, 2048, n)
		return &storage.UploadInfo{
			UploadURL:      "http://minio/avatars/x?sig",
			Key:            "avatars/x.png",
			Expires:        10 * time.Minute,
			RequiredHeader: map[string]string{"Content-Type": "image/png"},
		}, nil
	}}
	h := New(svc, config.CookieConfig{}, nil)

	rr := httptest.NewRecorder()
	h.AvatarPresign(rr, newReq(http.MethodPost, `{"content_type":"image/png","content_length":2048}`, id))
	require.Equal(t, http.StatusOK, rr.Code)

	var got imagePresignResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
	require.Equal(t, "avatars/x.png", got.Key)
	require.EqualValues(t, 600, got.ExpiresSeconds)
	require.Equal(t, "image/png", got.RequiredHeader["Content-Type"])
}

func TestAvatarPresign_ValidatesBody(t *testing.T) {
	h := New(&stubService{t: t}, config.CookieConfig{}, nil)
	id := &models.Identity{ID: uuid.New()}

	for _, body := range []string{
		`{"content_type":"image/png","content_length":0}`,
		`{"content_length":10}`,
		`{"content_type":"image/png","content_length":10,"bucket":"x"}`,
	} {
		rr := httptest.NewRecorder()
		h.AvatarPresign(rr, newReq(http.MethodPost, body, id))
		require.Equal(t, http.StatusBadRequest, rr.Code, body)
	}
}

func TestAvatarConfirm_ErrorMapping(t *testing.T) {
	id := &models.Identity{ID: uuid.New()}

	tcs := []struct {
		err  error
		want int
	}{
		{service.ErrNotFound, http.StatusNotFound},
		{service.ErrInvalidArgument, http.StatusBadRequest},
		{service.ErrAvatarsDisabled, http.StatusNotImplemented},
		{fmt.Errorf("minio down"), http.StatusInternalServerError},
	}

	for _, tc := range tcs {
		svc := &stubService{t: t, confirm: func(uuid.UUID, storage.ImageKind, string) (*models.Identity, error) {
			return nil, fmt.Errorf("service.images.ConfirmImage: %w", tc.err)
		}}
		h := New(svc, config.CookieConfig{}, nil)

		rr := httptest.NewRecorder()
		h.AvatarConfirm(rr, newReq(http.MethodPost, `{"key":"avatars/x.png"}`, id))
		require.Equal(t, tc.want, rr.Code, tc.err.Error())
	}
}

func TestCoverHandlers_PassCoverKind(t *testing.T) {
	id := &models.Identity{ID: uuid.New(), Avatar: "http://cdn/a.png"}
	key := "covers/" + id.ID.String() + "/c.jpg"

	svc := &stubService{
		t: t,
		presign: func(_ uuid.UUID, kind storage.ImageKind, _ string, _ int64) (*storage.UploadInfo, error) {
			require.Equal(t, storage.ImageCover, kind)
			return &storage.UploadInfo{UploadURL: "http://minio/put", Key: key}, nil
		},
		confirm: func(_ uuid.UUID, kind storage.ImageKind, got string) (*models.Identity, error) {
			require.Equal(t, storage.ImageCover, kind)
			require.Equal(t, key, got)
			out := *id
			out.CoverImage = "http://cdn/" + got
			return &out, nil
		},
	}
	h := New(svc, config.CookieConfig{}, nil)

	rr := httptest.NewRecorder()
	h.CoverPresign(rr, newReq(http.MethodPost, `{"content_type":"image/jpeg","content_length":10}`, id))
	require.Equal(t, http.StatusOK, rr.Code)

	var presign imagePresignResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &presign))
	require.Equal(t, key, presign.Key)

	rr = httptest.NewRecorder()
	h.CoverConfirm(rr, newReq(http.MethodPost, `{"key":"`+key+`"}`, id))
	require.Equal(t, http.StatusOK, rr.Code)

	var user userResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	require.Equal(t, "http://cdn/"+key, user.CoverImage)
	require.Equal(t, "http://cdn/a.png", user.Avatar)
}

func TestSameSite(t *testing.T) {
	require.Equal(t, http.SameSiteStrictMode, sameSite("Strict"))
	require.Equal(t, http.SameSiteNoneMode, sameSite("none"))
	require.Equal(t, http.SameSiteLaxMode, sameSite("lax"))
	require.Equal(t, http.SameSiteLaxMode, sameSite(""))
}
