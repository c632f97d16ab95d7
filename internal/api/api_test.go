package api_test

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	"github.com/Jasch-M/asyncmuseum/internal/api"
	"github.com/Jasch-M/asyncmuseum/internal/auth"
	"github.com/Jasch-M/asyncmuseum/internal/config"
	"github.com/Jasch-M/asyncmuseum/internal/database"
	"github.com/Jasch-M/asyncmuseum/internal/kafka"
	"github.com/Jasch-M/asyncmuseum/internal/logger"
	"github.com/Jasch-M/asyncmuseum/internal/metrics"
	"github.com/Jasch-M/asyncmuseum/internal/models"
	"github.com/Jasch-M/asyncmuseum/internal/museum"
)

var testJWT = config.JWTConfig{
	Secret:   "test-secret",
	Issuer:   "http://0.0.0.0:8080/",
	Audience: "http://0.0.0.0:8080/museum",
	TTL:      time.Hour,
}

type testServer struct {
	handler http.Handler
	db      *bun.DB
	metrics *metrics.Metrics
}

// envelope mirrors utils.APIResponse with a raw payload.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func setupServer(t *testing.T, publisher ...museum.ContactPublisher) *testServer {
	t.Helper()

	sqldb, err := sql.Open(sqliteshim.ShimName, "file::memory:")
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	db := bun.NewDB(sqldb, sqlitedialect.New())
	t.Cleanup(func() { db.Close() })
	require.NoError(t, database.CreateSchema(context.Background(), db))

	deps := api.Dependencies{
		DB:        db,
		Tokens:    auth.NewIssuer(testJWT),
		Publisher: kafka.NopPublisher{},
		Logger:    logger.Discard(),
		Metrics:   metrics.New(),
	}
	if len(publisher) > 0 {
		deps.Publisher = publisher[0]
	}

	h := api.NewFromDB(deps)
	return &testServer{
		handler: h.Routes(config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}}),
		db:      db,
		metrics: deps.Metrics,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	var env envelope
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	}
	return rec, env
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v), string(env.Data))
	return v
}

func dinosaurs() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Dinosaurs",
		"description": "Fossils from the Jurassic period",
		"image":       "d.png",
		"category":    "science",
		"featured":    true,
	}
}

func TestHealth(t *testing.T) {
	srv := setupServer(t)

	rec, _ := srv.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"UP"}`, rec.Body.String())
}

func TestHealthReportsDatabaseDown(t *testing.T) {
	srv := setupServer(t)
	require.NoError(t, srv.db.Close())

	rec, _ := srv.do(t, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.JSONEq(t, `{"status":"DOWN"}`, rec.Body.String())
}

func TestCreateExhibit(t *testing.T) {
	srv := setupServer(t)

	body := dinosaurs()
	body["id"] = 424242
	rec, env := srv.do(t, http.MethodPost, "/api/exhibits", body)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.True(t, env.Success)
	exhibit := decodeData[models.Exhibit](t, env)
	assert.Positive(t, exhibit.ID)
	assert.NotEqual(t, int64(424242), exhibit.ID)
	assert.Equal(t, "Dinosaurs", exhibit.Title)
	assert.True(t, exhibit.Featured)
}

func TestExhibitLifecycle(t *testing.T) {
	srv := setupServer(t)

	_, env := srv.do(t, http.MethodPost, "/api/exhibits", dinosaurs())
	created := decodeData[models.Exhibit](t, env)
	path := "/api/exhibits/" + jsonID(created.ID)

	rec, env := srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Dinosaurs", decodeData[models.Exhibit](t, env).Title)

	update := dinosaurs()
	update["title"] = "Dinosaurs Revisited"
	update["featured"] = false
	update["details"] = "Room 4"
	rec, env = srv.do(t, http.MethodPut, path, update)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	updated := decodeData[models.Exhibit](t, env)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Dinosaurs Revisited", updated.Title)

	rec, env = srv.do(t, http.MethodGet, "/api/exhibits", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[[]models.Exhibit](t, env)
	require.Len(t, list, 1)
	assert.False(t, list[0].Featured)
	require.NotNil(t, list[0].Details)
	assert.Equal(t, "Room 4", *list[0].Details)

	rec, _ = srv.do(t, http.MethodPut, path, dinosaurs())
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, env = srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var replaced map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &replaced))
	assert.Nil(t, replaced["details"], "full replace clears omitted details")
	assert.Equal(t, true, replaced["featured"])

	rec, env = srv.do(t, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Exhibit deleted successfully", env.Message)

	rec, env = srv.do(t, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Exhibit not found", env.Message)

	rec, env = srv.do(t, http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Exhibit not found", env.Message)
}

func TestListExhibitsEmptyIsArray(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodGet, "/api/exhibits", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestInvalidIDFormat(t *testing.T) {
	srv := setupServer(t)

	cases := []struct {
		method string
		path   string
		body   interface{}
	}{
		{http.MethodGet, "/api/exhibits/abc", nil},
		{http.MethodPut, "/api/exhibits/-1", dinosaurs()},
		{http.MethodDelete, "/api/events/1.5", nil},
		{http.MethodGet, "/api/events/xyz", nil},
		{http.MethodPut, "/api/contact/nope/read", nil},
	}

	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec, env := srv.do(t, tc.method, tc.path, tc.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Equal(t, "Invalid ID format", env.Message)
		})
	}
}

func TestCreateExhibitValidation(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodPost, "/api/exhibits", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid request body", env.Message)

	body := dinosaurs()
	delete(body, "category")
	rec, env = srv.do(t, http.MethodPost, "/api/exhibits", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "category is required")
}

func TestUpdateMissingEvent(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodPut, "/api/events/999", map[string]interface{}{
		"title":       "Ghost Tour",
		"date":        "2025-10-31",
		"description": "Spooky",
	})

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Event not found", env.Message)
}

func TestEventLifecycle(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodPost, "/api/events", map[string]interface{}{
		"id":          7,
		"title":       "Night at the Museum",
		"date":        "2025-06-14",
		"description": "Late opening",
		"price":       "$25",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var created map[string]interface{}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "2025-06-14", created["date"])
	assert.Equal(t, "$25", created["price"])
	assert.NotContains(t, created, "location")
	assert.NotContains(t, created, "createdAt")

	id := jsonID(int64(created["id"].(float64)))
	rec, env = srv.do(t, http.MethodPut, "/api/events/"+id, map[string]interface{}{
		"title":       "Night at the Museum",
		"date":        "2025-06-21",
		"description": "Late opening, moved",
		"location":    "Main hall",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec, env = srv.do(t, http.MethodGet, "/api/events/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	event := decodeData[models.Event](t, env)
	assert.Equal(t, "2025-06-21", event.Date.String())
	require.NotNil(t, event.Location)
	assert.Nil(t, event.Price, "full replace clears omitted optional fields")

	rec, _ = srv.do(t, http.MethodPut, "/api/events/"+id, map[string]interface{}{
		"title":       "Night at the Museum",
		"date":        "2025-06-21",
		"description": "Late opening, moved",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, env = srv.do(t, http.MethodGet, "/api/events/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	event = decodeData[models.Event](t, env)
	assert.Nil(t, event.Location)
	assert.Nil(t, event.Price)

	rec, env = srv.do(t, http.MethodDelete, "/api/events/"+id, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Event deleted successfully", env.Message)

	rec, _ = srv.do(t, http.MethodDelete, "/api/events/"+id, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEventDateValidation(t *testing.T) {
	srv := setupServer(t)

	for _, date := range []interface{}{"14/06/2025", "2025-13-01", 20250614, nil} {
		body := map[string]interface{}{"title": "Talk", "description": "d", "date": date}
		rec, env := srv.do(t, http.MethodPost, "/api/events", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "date %v", date)
		assert.Equal(t, "Invalid date format, expected YYYY-MM-DD", env.Message)
	}
}

func TestVisitorInfoDefaultsArePersisted(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodGet, "/api/visitor-info", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.JSONEq(t, `{
		"hours": "Monday - Sunday: 9:00 AM - 5:00 PM",
		"admission": {"adult": 15, "child": 8, "senior": 10},
		"location": "123 Museum Street, City, Country",
		"contact": {"phone": "(123) 456-7890", "email": "info@museumofnaturalhistory.com"}
	}`, string(env.Data))

	rec, second := srv.do(t, http.MethodGet, "/api/visitor-info", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(env.Data), string(second.Data))

	count, err := srv.db.NewSelect().Model((*models.VisitorInfoRow)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPutVisitorInfoIsIdempotent(t *testing.T) {
	srv := setupServer(t)
	payload := `{
		"hours": "Tuesday - Sunday: 10:00 AM - 6:00 PM",
		"admission": {"adult": 17.5, "child": 0.1, "senior": 12.25},
		"location": "1 Fossil Way",
		"contact": {"phone": "555-0100", "email": "desk@museum.test"}
	}`

	rec, first := srv.do(t, http.MethodPut, "/api/visitor-info", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	rec, second := srv.do(t, http.MethodPut, "/api/visitor-info", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, string(first.Data), string(second.Data))

	_, stored := srv.do(t, http.MethodGet, "/api/visitor-info", nil)
	assert.JSONEq(t, payload, string(stored.Data))

	count, err := srv.db.NewSelect().Model((*models.VisitorInfoRow)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPutVisitorInfoRejectsUnstorablePrices(t *testing.T) {
	srv := setupServer(t)
	_, before := srv.do(t, http.MethodGet, "/api/visitor-info", nil)

	cases := map[string]string{
		"too many decimals": `{"adult": 15.555, "child": 8, "senior": 10}`,
		"overflow":          `{"adult": 15, "child": 123456789012.5, "senior": 10}`,
		"just too large":    `{"adult": 15, "child": 8, "senior": 100000000}`,
	}
	for name, admission := range cases {
		t.Run(name, func(t *testing.T) {
			payload := `{"hours":"h","location":"l","contact":{"phone":"p","email":"e"},"admission":` + admission + `}`
			rec, env := srv.do(t, http.MethodPut, "/api/visitor-info", payload)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.False(t, env.Success)
			assert.Contains(t, env.Message, "Invalid request body: admission.")
		})
	}

	_, after := srv.do(t, http.MethodGet, "/api/visitor-info", nil)
	assert.JSONEq(t, string(before.Data), string(after.Data))
}

func TestPutVisitorInfoAcceptsTrailingZeros(t *testing.T) {
	srv := setupServer(t)
	payload := `{"hours":"h","location":"l","contact":{"phone":"p","email":"e"},"admission":{"adult":15.500,"child":99999999.99,"senior":0}}`

	rec, env := srv.do(t, http.MethodPut, "/api/visitor-info", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	_, stored := srv.do(t, http.MethodGet, "/api/visitor-info", nil)
	assert.JSONEq(t, string(env.Data), string(stored.Data))
}

func TestPutVisitorInfoRequiresContact(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodPut, "/api/visitor-info", `{"hours":"h","location":"l","admission":{"adult":1,"child":1,"senior":1},"contact":{}}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "contact.phone is required")
}

func TestLogin(t *testing.T) {
	srv := setupServer(t)
	login := map[string]interface{}{
		"token":          "provider-token",
		"email":          "ada@example.com",
		"displayName":    "Ada",
		"providerId":     "google",
		"providerUserId": "g-123",
	}

	rec, env := srv.do(t, http.MethodPost, "/api/auth/login", login)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	first := decodeData[models.AuthResponse](t, env)
	assert.Positive(t, first.User.ID)
	assert.Equal(t, "google", first.User.ProviderID)

	claims, err := auth.NewIssuer(testJWT).Validate(first.Token)
	require.NoError(t, err)
	assert.Equal(t, jsonID(first.User.ID), claims.UserID)
	assert.Equal(t, jwt.ClaimStrings{testJWT.Audience}, claims.Audience)

	delete(login, "displayName")
	rec, env = srv.do(t, http.MethodPost, "/api/auth/login", login)
	require.Equal(t, http.StatusOK, rec.Code)
	second := decodeData[models.AuthResponse](t, env)
	assert.Equal(t, first.User.ID, second.User.ID)
	require.NotNil(t, second.User.DisplayName)
	assert.Equal(t, "Ada", *second.User.DisplayName)

	count, err := srv.db.NewSelect().Model((*models.User)(nil)).Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestLoginRequiresIdentity(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodPost, "/api/auth/login", map[string]string{"token": "t", "email": "a@example.com"})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, env.Message, "providerId is required")
}

func TestCurrentUserAndLogout(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodGet, "/api/auth/user", nil)
	assert.Equal(t, http.StatusNotImplemented, rec.Code)
	assert.False(t, env.Success)
	assert.Equal(t, "Not implemented yet", env.Message)

	rec, env = srv.do(t, http.MethodPost, "/api/auth/logout", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, env.Success)
	assert.Equal(t, "Logged out successfully", env.Message)
	assert.Empty(t, env.Data)
}

type recordingPublisher struct {
	published []models.ContactSubmission
	err       error
}

func (p *recordingPublisher) PublishContactSubmitted(_ context.Context, s models.ContactSubmission) error {
	p.published = append(p.published, s)
	return p.err
}

func TestContactFlow(t *testing.T) {
	publisher := &recordingPublisher{}
	srv := setupServer(t, publisher)

	for _, name := range []string{"Alan", "Grace", "Barbara"} {
		rec, env := srv.do(t, http.MethodPost, "/api/contact", map[string]interface{}{
			"name":    name,
			"email":   "visitor@example.com",
			"subject": "Hello",
			"message": "Lovely museum",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		assert.Equal(t, "Your message has been sent successfully. We'll get back to you soon!", env.Message)
	}
	require.Len(t, publisher.published, 3)

	rec, env := srv.do(t, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeData[[]models.ContactSubmission](t, env)
	require.Len(t, list, 3)
	assert.Equal(t, "Barbara", list[0].Name)
	assert.Equal(t, "Alan", list[2].Name)
	for i := 1; i < len(list); i++ {
		assert.False(t, list[i].SubmittedAt.After(list[i-1].SubmittedAt))
	}
	for _, s := range list {
		assert.False(t, s.IsRead)
	}

	target := list[1]
	rec, env = srv.do(t, http.MethodPut, "/api/contact/"+jsonID(target.ID)+"/read", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marked as read", env.Message)

	_, env = srv.do(t, http.MethodGet, "/api/contact", nil)
	after := decodeData[[]models.ContactSubmission](t, env)
	for _, s := range after {
		if s.ID == target.ID {
			assert.True(t, s.IsRead)
			assert.Equal(t, target.Name, s.Name)
			assert.Equal(t, target.Message, s.Message)
			assert.True(t, target.SubmittedAt.Equal(s.SubmittedAt))
		} else {
			assert.False(t, s.IsRead)
		}
	}

	rec, env = srv.do(t, http.MethodPut, "/api/contact/999/read", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Contact submission not found", env.Message)
}

func TestContactSurvivesPublisherFailure(t *testing.T) {
	srv := setupServer(t, &recordingPublisher{err: errors.New("broker down")})

	rec, env := srv.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name": "Ada", "email": "ada@example.com", "message": "Hi",
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Success)
}

func TestContactHasNoDelete(t *testing.T) {
	srv := setupServer(t)

	rec, env := srv.do(t, http.MethodDelete, "/api/contact/1", nil)

	assert.NotEqual(t, http.StatusOK, rec.Code)
	assert.False(t, env.Success)
}

func TestCORSPreflight(t *testing.T) {
	srv := setupServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/exhibits", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	srv := setupServer(t)
	srv.do(t, http.MethodGet, "/api/exhibits", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	srv.handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "museum_http_requests_total")
}

func jsonID(id int64) string {
	raw, _ := json.Marshal(id)
	return string(raw)
}
