package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"degrondvraag-be/internal/dto"
	"degrondvraag-be/internal/pkg/serverutils"
	"degrondvraag-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type stubEssayService struct {
	essays map[string]*dto.ShowEssayResponse
}

func (s *stubEssayService) ListPublic(ctx context.Context) ([]*dto.EssayListItem, error) {
	items := make([]*dto.EssayListItem, 0, len(s.essays))
	for slug := range s.essays {
		items = append(items, &dto.EssayListItem{Slug: slug, Navigable: true})
	}
	return items, nil
}

func (s *stubEssayService) Show(ctx context.Context, slug string) (*dto.ShowEssayResponse, error) {
	essay, ok := s.essays[slug]
	if !ok {
		return nil, service.ErrNotAvailable
	}
	return essay, nil
}

func (s *stubEssayService) ListAdmin(ctx context.Context) ([]*dto.AdminEssayItem, error) {
	return nil, nil
}

func (s *stubEssayService) Upsert(ctx context.Context, req *dto.UpsertEssayRequest) (*dto.UpsertEssayResponse, error) {
	return &dto.UpsertEssayResponse{Slug: req.Slug}, nil
}

func (s *stubEssayService) Delete(ctx context.Context, slug string) error { return nil }

func testVisitorToken(t *testing.T) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": uuid.New().String(),
		"role":    "visitor",
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	assert.NoError(t, err)
	return token
}

func newTestApp(register func(r fiber.Router)) *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	register(app.Group("/api"))
	return app
}

func TestEssayShowNotFoundEnvelope(t *testing.T) {
	app := newTestApp(NewEssayController(&stubEssayService{essays: map[string]*dto.ShowEssayResponse{}}).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/essay/v1/onbekend", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope serverutils.BaseResponse[any]
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "artikel niet beschikbaar", envelope.Message)
}

func TestEssayShowSuccessEnvelope(t *testing.T) {
	stub := &stubEssayService{essays: map[string]*dto.ShowEssayResponse{
		"essay": {Slug: "essay", Title: "Titel", BodyHTML: "<p>tekst</p>"},
	}}
	app := newTestApp(NewEssayController(stub).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/essay/v1/essay", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope serverutils.BaseResponse[dto.ShowEssayResponse]
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "essay", envelope.Data.Slug)
}

type stubChatService struct {
	lastRelay     *dto.RelayChatRequest
	lastRelayUser uuid.UUID
}

func (s *stubChatService) Transcript(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error) {
	return &dto.TranscriptResponse{EssaySlug: essaySlug}, nil
}

func (s *stubChatService) Send(ctx context.Context, userId uuid.UUID, essaySlug string, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	return &dto.SendChatResponse{Antwoord: "ok"}, nil
}

func (s *stubChatService) Reset(ctx context.Context, userId uuid.UUID, essaySlug string) (*dto.TranscriptResponse, error) {
	return &dto.TranscriptResponse{EssaySlug: essaySlug}, nil
}

func (s *stubChatService) Relay(ctx context.Context, userId uuid.UUID, req *dto.RelayChatRequest) (*dto.RelayChatResponse, error) {
	s.lastRelay = req
	s.lastRelayUser = userId
	return &dto.RelayChatResponse{Antwoord: "Het essay stelt dat twijfel vooraf gaat."}, nil
}

func (s *stubChatService) ListLogs(ctx context.Context, limit, offset int) ([]*dto.ChatLogItem, error) {
	return nil, nil
}

func TestRelayWireContract(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	stub := &stubChatService{}
	app := newTestApp(NewChatController(stub).RegisterRoutes)

	payload := `{"vraag":"Wat bedoelt de auteur?","essay":"Volledige tekst.","history":[{"role":"assistant","content":"Welkom terug."}]}`
	req := httptest.NewRequest("POST", "/api/chat/v1/relay", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testVisitorToken(t))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// The relay response is the bare wire shape, not the standard envelope.
	body, _ := io.ReadAll(resp.Body)
	var out map[string]string
	assert.NoError(t, json.Unmarshal(body, &out))
	assert.Equal(t, "Het essay stelt dat twijfel vooraf gaat.", out["antwoord"])
	assert.Len(t, out, 1)

	assert.Equal(t, "Wat bedoelt de auteur?", stub.lastRelay.Vraag)
	assert.Len(t, stub.lastRelay.History, 1)
}

func TestRelayRejectsMissingFields(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := newTestApp(NewChatController(&stubChatService{}).RegisterRoutes)

	req := httptest.NewRequest("POST", "/api/chat/v1/relay", strings.NewReader(`{"vraag":"?"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+testVisitorToken(t))

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// The relay accepts posts without any Authorization header and logs them
// under the nil identity.
func TestRelayWithoutToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	stub := &stubChatService{}
	app := newTestApp(NewChatController(stub).RegisterRoutes)

	payload := `{"vraag":"Wat bedoelt de auteur?","essay":"Volledige tekst.","history":[]}`
	req := httptest.NewRequest("POST", "/api/chat/v1/relay", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, uuid.Nil, stub.lastRelayUser)
}

func TestChatRoutesRequireIdentity(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	app := newTestApp(NewChatController(&stubChatService{}).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/chat/v1/essay/transcript", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

type stubCommentService struct {
	created int
}

func (s *stubCommentService) List(ctx context.Context, articleId string) ([]*dto.CommentItem, error) {
	return nil, nil
}

func (s *stubCommentService) Create(ctx context.Context, articleId string, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	s.created++
	return &dto.CreateCommentResponse{Id: uuid.New()}, nil
}

func TestCommentCreateMissingFieldStoresNothing(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cases := []struct {
		name    string
		payload string
	}{
		{"missing name", `{"email":"a@b.nl","text":"mooi stuk"}`},
		{"missing email", `{"name":"Anna","text":"mooi stuk"}`},
		{"missing text", `{"name":"Anna","email":"a@b.nl"}`},
		{"empty text", `{"name":"Anna","email":"a@b.nl","text":""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			stub := &stubCommentService{}
			app := newTestApp(NewCommentController(stub).RegisterRoutes)

			req := httptest.NewRequest("POST", "/api/comment/v1/essay", strings.NewReader(tc.payload))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set("Authorization", "Bearer "+testVisitorToken(t))

			resp, err := app.Test(req)
			assert.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			assert.Zero(t, stub.created)
		})
	}
}

type stubAuthService struct{}

func (stubAuthService) AnonymousSignIn(ctx context.Context) (*dto.SessionResponse, error) {
	return &dto.SessionResponse{UserId: uuid.New(), Role: "visitor", Token: "t"}, nil
}

func (stubAuthService) AdminLogin(ctx context.Context, req *dto.LoginRequest) (*dto.SessionResponse, error) {
	return nil, service.ErrInvalidCredentials
}

// Sign-out is stateless; the endpoint only acknowledges so the client can
// discard its token.
func TestLogoutAcknowledges(t *testing.T) {
	app := newTestApp(NewAuthController(stubAuthService{}).RegisterRoutes)

	resp, err := app.Test(httptest.NewRequest("POST", "/api/auth/v1/logout", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	var envelope serverutils.BaseResponse[any]
	assert.NoError(t, json.Unmarshal(body, &envelope))
	assert.True(t, envelope.Success)
}
