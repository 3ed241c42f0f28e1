package api

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/wildlog/wildlog_api/internal/auth"
	authmocks "github.com/wildlog/wildlog_api/internal/auth/mocks"
	"github.com/wildlog/wildlog_api/internal/config"
	filestoremocks "github.com/wildlog/wildlog_api/internal/filestore/mocks"
	"github.com/wildlog/wildlog_api/internal/logging"
	"github.com/wildlog/wildlog_api/internal/models"
	"github.com/wildlog/wildlog_api/internal/progression"
	storemocks "github.com/wildlog/wildlog_api/internal/store/mocks"
)

const testToken = "access.token"

type testServer struct {
	*Server
	store      *storemocks.Store
	auth       *authmocks.AuthManager
	files      *filestoremocks.FileStore
	progress   *mockProgressService
	recognizer *mockIdentifier
	profileID  uuid.UUID
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	ts := &testServer{
		store:      storemocks.NewStore(t),
		auth:       authmocks.NewAuthManager(t),
		files:      filestoremocks.NewFileStore(t),
		progress:   newMockProgressService(t),
		recognizer: newMockIdentifier(t),
		profileID:  uuid.New(),
	}
	ts.Server = NewServer(config.Config{}, ts.store, ts.files, ts.auth, ts.progress, ts.recognizer, logging.NewNop())
	t.Cleanup(ts.limiter.Stop)

	return ts
}

// authorize expects one token check resolving to the test profile.
func (ts *testServer) authorize() {
	ts.auth.EXPECT().Parse(testToken).Return(&auth.Claims{UserID: ts.profileID.String()}, nil).Once()
}

func (ts *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	ts.router.ServeHTTP(rr, req)
	return rr
}

func authedRequest(method, target string, body io.Reader) *http.Request {
	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Authorization", "Bearer "+testToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}

type multipartFormData struct {
	body        io.Reader
	contentType string
}

func createMultipartFormWithField(t *testing.T, fieldName, filename, contentType string, data []byte) multipartFormData {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreatePart(map[string][]string{
		"Content-Disposition": {`form-data; name="` + fieldName + `"; filename="` + filename + `"`},
		"Content-Type":        {contentType},
	})
	require.NoError(t, err)

	_, err = part.Write(data)
	require.NoError(t, err)

	require.NoError(t, writer.Close())

	return multipartFormData{
		body:        body,
		contentType: writer.FormDataContentType(),
	}
}

func testCatalog() *progression.Catalog {
	return progression.NewCatalog(
		[]models.Species{
			{ID: "red_fox", CommonName: "Red Fox", ScientificName: "Vulpes vulpes", Rarity: "uncommon", Points: 100,
				Location: models.LocationLocal},
		},
		[]progression.Badge{
			{ID: "night_owl", Name: "Night Owl", Reward: 25,
				Condition: progression.TimeWindowCondition{StartHour: 22, EndHour: 4}},
		},
		[]progression.Badge{
			{ID: "swarm_2", Name: "Pair", Reward: 20, Condition: progression.CountCondition{Threshold: 2}},
		},
		[]models.LevelBracket{
			{Ceiling: 100, Level: 1, Title: "Hatchling"},
			{Ceiling: 1 << 62, Level: 2, Title: "Fledgling"},
		},
		nil,
	)
}
