package v1handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"matchup/internal/api/handler/v1handler"
	"matchup/internal/auth"
	mockauth "matchup/internal/auth/mock"
	mockhobby "matchup/internal/hobby/mock"
	mockmatch "matchup/internal/match/mock"
	"matchup/internal/message"
	mockmessage "matchup/internal/message/mock"
	"matchup/internal/profile"
	mockprofile "matchup/internal/profile/mock"
	"matchup/pkg/domain"
	"matchup/pkg/serrors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-token"

// staticVerifier accepts testToken for user 1.
type staticVerifier struct{}

func (staticVerifier) Verify(raw string) (domain.UserID, error) {
	if raw != testToken {
		return 0, errors.New("unknown token")
	}

	return 1, nil
}

type routesEnv struct {
	auth      *mockauth.MockAuthenticator
	profiles  *mockprofile.MockProfiles
	hobbies   *mockhobby.MockHobbies
	matcher   *mockmatch.MockMatcher
	messenger *mockmessage.MockMessenger
	router    http.Handler
}

func newRoutesEnv(t *testing.T) routesEnv {
	t.Helper()

	ctrl := gomock.NewController(t)
	env := routesEnv{
		auth:      mockauth.NewMockAuthenticator(ctrl),
		profiles:  mockprofile.NewMockProfiles(ctrl),
		hobbies:   mockhobby.NewMockHobbies(ctrl),
		matcher:   mockmatch.NewMockMatcher(ctrl),
		messenger: mockmessage.NewMockMessenger(ctrl),
	}

	h := v1handler.New(v1handler.Deps{
		Auth:      env.auth,
		Profiles:  env.profiles,
		Hobbies:   env.hobbies,
		Matcher:   env.matcher,
		Messenger: env.messenger,
	})
	r := chi.NewRouter()
	r.Mount("/v1", h.Routes(v1handler.NewSecHandler(staticVerifier{})))
	r.Get("/photos/{key}", h.ServePhoto)
	env.router = r

	return env
}

func (e routesEnv) do(t *testing.T, method, path string, body any, authenticated bool) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rd = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rd = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if authenticated {
		req.Header.Set("Authorization", "Bearer "+testToken)
	}

	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) v1handler.ErrorResponse {
	t.Helper()

	var res v1handler.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))

	return res
}

func validRegistration() map[string]any {
	return map[string]any{
		"login":                 "alice",
		"email":                 "alice@example.com",
		"password":              "Secret1!x",
		"password_confirmation": "Secret1!x",
		"first_name":            "Alice",
		"last_name":             "Liddell",
	}
}

func TestRegister(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		env := newRoutesEnv(t)
		env.auth.EXPECT().Register(gomock.Any(), auth.RegisterInput{
			Login:     "alice",
			Email:     "alice@example.com",
			Password:  "Secret1!x",
			FirstName: "Alice",
			LastName:  "Liddell",
		}).Return(&domain.User{ID: 7, Email: "alice@example.com"}, nil)

		rec := env.do(t, http.MethodPost, "/v1/auth/register", validRegistration(), false)
		require.Equal(t, http.StatusCreated, rec.Code)

		var res v1handler.RegisterResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Equal(t, v1handler.RegisterResponse{UserID: 7, Email: "alice@example.com"}, res)
	})

	passwords := map[string]string{
		"short":      "Se1!",
		"no digit":   "Secret!!x",
		"no upper":   "secret1!x",
		"no lower":   "SECRET1!X",
		"no special": "Secret12x",
	}
	for name, pw := range passwords {
		t.Run("weak password "+name, func(t *testing.T) {
			env := newRoutesEnv(t)
			body := validRegistration()
			body["password"] = pw
			body["password_confirmation"] = pw

			rec := env.do(t, http.MethodPost, "/v1/auth/register", body, false)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Contains(t, decodeError(t, rec).Message, "Password must")
		})
	}

	t.Run("confirmation mismatch", func(t *testing.T) {
		env := newRoutesEnv(t)
		body := validRegistration()
		body["password_confirmation"] = "Other1!xx"

		rec := env.do(t, http.MethodPost, "/v1/auth/register", body, false)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Password confirmation must match password", decodeError(t, rec).Message)
	})

	t.Run("duplicate login", func(t *testing.T) {
		env := newRoutesEnv(t)
		env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(nil, serrors.With(serrors.ErrConflict, "Login already exists"))

		rec := env.do(t, http.MethodPost, "/v1/auth/register", validRegistration(), false)
		require.Equal(t, http.StatusConflict, rec.Code)
		require.Equal(t, v1handler.ErrorResponse{Code: "CONFLICT", Message: "Login already exists"}, decodeError(t, rec))
	})

	t.Run("malformed body", func(t *testing.T) {
		env := newRoutesEnv(t)

		rec := env.do(t, http.MethodPost, "/v1/auth/register", "{", false)
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRegister_FieldLengths(t *testing.T) {
	cases := map[string]string{
		"login":        strings.Repeat("l", 51),
		"email":        strings.Repeat("e", 90) + "@example.com",
		"phone_number": strings.Repeat("1", 21),
		"first_name":   strings.Repeat("f", 51),
		"last_name":    strings.Repeat("l", 51),
	}
	for field, value := range cases {
		t.Run(field, func(t *testing.T) {
			env := newRoutesEnv(t)
			body := validRegistration()
			body[field] = value

			rec := env.do(t, http.MethodPost, "/v1/auth/register", body, false)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, "BAD_REQUEST", decodeError(t, rec).Code)
		})
	}

	t.Run("at the limit", func(t *testing.T) {
		env := newRoutesEnv(t)
		env.auth.EXPECT().Register(gomock.Any(), gomock.Any()).
			Return(&domain.User{ID: 8, Email: "a@example.com"}, nil)
		body := validRegistration()
		body["first_name"] = strings.Repeat("f", 50)
		body["last_name"] = strings.Repeat("l", 50)
		body["phone_number"] = strings.Repeat("1", 20)

		rec := env.do(t, http.MethodPost, "/v1/auth/register", body, false)
		require.Equal(t, http.StatusCreated, rec.Code)
	})
}

func TestEditUser_FieldLengths(t *testing.T) {
	cases := map[string]string{
		"email":        strings.Repeat("e", 90) + "@example.com",
		"phone_number": strings.Repeat("1", 21),
		"first_name":   strings.Repeat("f", 51),
		"last_name":    strings.Repeat("l", 51),
	}
	for field, value := range cases {
		t.Run(field, func(t *testing.T) {
			env := newRoutesEnv(t)

			rec := env.do(t, http.MethodPut, "/v1/user/", map[string]string{field: value}, true)
			require.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func changePasswordBody(current, next, confirmation string) map[string]string {
	return map[string]string{
		"current_password":      current,
		"password":              next,
		"password_confirmation": confirmation,
	}
}

func TestChangePassword(t *testing.T) {
	t.Run("changed", func(t *testing.T) {
		env := newRoutesEnv(t)
		env.auth.EXPECT().ChangePassword(gomock.Any(), domain.UserID(1), "Secret1!x", "Better2@y").Return(nil)

		rec := env.do(t, http.MethodPut, "/v1/auth/password",
			changePasswordBody("Secret1!x", "Better2@y", "Better2@y"), true)
		require.Equal(t, http.StatusOK, rec.Code)

		var res v1handler.DetailResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
		require.Equal(t, "Password changed", res.Detail)
	})

	t.Run("weak password", func(t *testing.T) {
		env := newRoutesEnv(t)

		rec := env.do(t, http.MethodPut, "/v1/auth/password",
			changePasswordBody("Secret1!x", "weakpass", "weakpass"), true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Contains(t, decodeError(t, rec).Message, "Password must")
	})

	t.Run("confirmation mismatch", func(t *testing.T) {
		env := newRoutesEnv(t)

		rec := env.do(t, http.MethodPut, "/v1/auth/password",
			changePasswordBody("Secret1!x", "Better2@y", "Better2@z"), true)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Password confirmation must match password", decodeError(t, rec).Message)
	})

	t.Run("wrong current password", func(t *testing.T) {
		env := newRoutesEnv(t)
		env.auth.EXPECT().ChangePassword(gomock.Any(), domain.UserID(1), "Wrong1!xx", "Better2@y").
			Return(serrors.With(serrors.ErrUnauthorized, "Invalid credentials"))

		rec := env.do(t, http.MethodPut, "/v1/auth/password",
			changePasswordBody("Wrong1!xx", "Better2@y", "Better2@y"), true)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Equal(t, v1handler.ErrorResponse{Code: "UNAUTHORIZED", Message: "Invalid credentials"}, decodeError(t, rec))
	})

	t.Run("requires token", func(t *testing.T) {
		env := newRoutesEnv(t)

		rec := env.do(t, http.MethodPut, "/v1/auth/password",
			changePasswordBody("Secret1!x", "Better2@y", "Better2@y"), false)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestLogin(t *testing.T) {
	env := newRoutesEnv(t)
	env.auth.EXPECT().Login(gomock.Any(), "alice", "Secret1!x").Return(&auth.Token{
		AccessToken: "jwt",
		TokenType:   "bearer",
		ExpiresIn:   time.Hour,
	}, nil)

	rec := env.do(t, http.MethodPost, "/v1/auth/login",
		map[string]string{"login": "alice", "password": "Secret1!x"}, false)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, v1handler.TokenResponse{AccessToken: "jwt", TokenType: "bearer", ExpiresIn: 3600}, res)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	env := newRoutesEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/user/", nil, false)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Equal(t, "Bearer", rec.Header().Get("WWW-Authenticate"))

	req := httptest.NewRequest(http.MethodGet, "/v1/match/matches", nil)
	req.Header.Set("Authorization", "Bearer forged")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetUser(t *testing.T) {
	env := newRoutesEnv(t)
	env.profiles.EXPECT().Get(gomock.Any(), domain.UserID(1)).Return(&domain.User{
		ID:     1,
		Login:  "alice",
		Photos: []domain.Photo{{ID: 3, UserID: 1, URL: "http://localhost/photos/a.png"}},
	}, nil)

	rec := env.do(t, http.MethodGet, "/v1/user/", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `"photo_url":"http://localhost/photos/a.png"`)
	require.NotContains(t, rec.Body.String(), "password")
}

func TestEditUser_PartialFields(t *testing.T) {
	env := newRoutesEnv(t)
	firstName := "Al"
	env.profiles.EXPECT().Edit(gomock.Any(), domain.UserID(1), profile.Edit{FirstName: &firstName}).
		Return(&domain.User{ID: 1, FirstName: "Al"}, nil)

	rec := env.do(t, http.MethodPut, "/v1/user/", map[string]string{"first_name": "Al"}, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUploadPhoto(t *testing.T) {
	env := newRoutesEnv(t)
	env.profiles.EXPECT().AddPhoto(gomock.Any(), domain.UserID(1), gomock.Any()).DoAndReturn(
		func(_ any, _ domain.UserID, r io.Reader) (*domain.Photo, error) {
			raw, err := io.ReadAll(r)
			require.NoError(t, err)
			require.Equal(t, "image-bytes", string(raw))

			return &domain.Photo{ID: 5, UserID: 1, URL: "http://localhost/photos/k.png"}, nil
		})

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("caption", "ignored"))
	fw, err := mw.CreateFormFile("file", "me.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/user/photos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestUploadPhoto_MissingFile(t *testing.T) {
	env := newRoutesEnv(t)

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("caption", "no file"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/v1/user/photos", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+testToken)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServePhoto(t *testing.T) {
	env := newRoutesEnv(t)
	env.profiles.EXPECT().OpenPhoto(gomock.Any(), "k.png").
		Return(io.NopCloser(strings.NewReader("png")), "image/png", nil)

	rec := env.do(t, http.MethodGet, "/photos/k.png", nil, false)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	require.Equal(t, "png", rec.Body.String())
}

func TestInvalidPathIDs(t *testing.T) {
	cases := []struct {
		method  string
		path    string
		message string
	}{
		{http.MethodDelete, "/v1/user/photos/abc", "Invalid photo ID"},
		{http.MethodGet, "/v1/hobbies/0", "Invalid hobby ID"},
		{http.MethodDelete, "/v1/hobbies/-3", "Invalid hobby ID"},
		{http.MethodGet, "/v1/categories/0", "Invalid category ID"},
		{http.MethodPost, "/v1/match/accept/x", "Invalid user ID"},
		{http.MethodGet, "/v1/messages/0", "Invalid message ID"},
		{http.MethodGet, "/v1/messages/conversation/0", "Invalid user ID"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			env := newRoutesEnv(t)

			rec := env.do(t, tc.method, tc.path, nil, true)
			require.Equal(t, http.StatusBadRequest, rec.Code)
			require.Equal(t, v1handler.ErrorResponse{Code: "BAD_REQUEST", Message: tc.message}, decodeError(t, rec))
		})
	}
}

func TestUserHobbies_Add(t *testing.T) {
	env := newRoutesEnv(t)
	env.hobbies.EXPECT().AddUserHobbies(gomock.Any(), domain.UserID(1), []domain.HobbyID{2, 3}).
		Return([]domain.Hobby{{ID: 2}, {ID: 3}}, nil)

	rec := env.do(t, http.MethodPost, "/v1/hobbies/user", []int{2, 3}, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestHobbySearchRouteBeforeID(t *testing.T) {
	env := newRoutesEnv(t)
	env.hobbies.EXPECT().Search(gomock.Any(), "chess").Return([]domain.Hobby{{ID: 1, Name: "Chess"}}, nil)

	rec := env.do(t, http.MethodGet, "/v1/hobbies/search?query=chess", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestCreateCategory_Validation(t *testing.T) {
	env := newRoutesEnv(t)

	rec := env.do(t, http.MethodPost, "/v1/categories/", map[string]string{"name": ""}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "name is required", decodeError(t, rec).Message)
}

func TestAccept(t *testing.T) {
	env := newRoutesEnv(t)
	env.matcher.EXPECT().Accept(gomock.Any(), domain.UserID(1), domain.UserID(2)).Return(true, nil)

	rec := env.do(t, http.MethodPost, "/v1/match/accept/2", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)

	var res v1handler.AcceptResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Matched)
}

func TestBrowse_Limit(t *testing.T) {
	env := newRoutesEnv(t)
	env.matcher.EXPECT().Browse(gomock.Any(), domain.UserID(1), uint(5)).Return(nil, nil)

	rec := env.do(t, http.MethodGet, "/v1/match/browse?limit=5", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())

	rec = env.do(t, http.MethodGet, "/v1/match/browse?limit=-1", nil, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage(t *testing.T) {
	env := newRoutesEnv(t)
	env.messenger.EXPECT().Send(gomock.Any(), domain.UserID(1), message.SendInput{ReceiverID: 2, Text: "hi"}).
		Return(&domain.Message{ID: 1, Text: "hi", SenderID: 1, ReceiverID: 2}, nil)

	rec := env.do(t, http.MethodPost, "/v1/messages/", map[string]any{"receiver_id": 2, "text": "hi"}, true)
	require.Equal(t, http.StatusCreated, rec.Code)
}

func TestUpdateMessage_NoData(t *testing.T) {
	env := newRoutesEnv(t)
	env.messenger.EXPECT().Update(gomock.Any(), domain.MessageID(4), domain.UserID(1), (*string)(nil)).
		Return(nil, serrors.With(serrors.ErrBadRequest, "No update data provided"))

	rec := env.do(t, http.MethodPut, "/v1/messages/4", map[string]any{}, true)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, "No update data provided", decodeError(t, rec).Message)
}

func TestConversation_Paging(t *testing.T) {
	env := newRoutesEnv(t)
	env.messenger.EXPECT().Conversation(gomock.Any(), domain.UserID(1), domain.UserID(2), uint(10), uint(20)).
		Return([]domain.Message{}, nil)

	rec := env.do(t, http.MethodGet, "/v1/messages/conversation/2?skip=10&limit=20", nil, true)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	env := newRoutesEnv(t)

	rec := env.do(t, http.MethodGet, "/v1/nope", nil, true)
	require.Equal(t, http.StatusNotFound, rec.Code)
}
