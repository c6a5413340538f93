package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/shadrack-family/family-site-backend/internal/adapter/handler"
	pgRepo "github.com/shadrack-family/family-site-backend/internal/adapter/repository/postgres"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/auth"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/database"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/middleware"
	"github.com/shadrack-family/family-site-backend/internal/infrastructure/server"
	infraStorage "github.com/shadrack-family/family-site-backend/internal/infrastructure/storage"
	"github.com/shadrack-family/family-site-backend/internal/usecase/contact"
	"github.com/shadrack-family/family-site-backend/internal/usecase/event"
	"github.com/shadrack-family/family-site-backend/internal/usecase/gallery"
	"github.com/shadrack-family/family-site-backend/internal/usecase/member"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
)

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	UploadDir  string
	jwtSvc     *auth.JWTService
	httpClient *http.Client
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping e2e test in short mode")
	}

	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgContainer, err := postgres.Run(ctx,
		"postgres:18-alpine",
		postgres.WithDatabase(testDBName),
		postgres.WithUsername(testDBUser),
		postgres.WithPassword(testDBPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)

	err = database.RunMigrations(ctx, pool, getMigrationsPath())
	require.NoError(t, err)

	photoRepo := pgRepo.NewPhotoRepo(pool)
	albumRepo := pgRepo.NewAlbumRepo(pool)
	memberRepo := pgRepo.NewMemberRepo(pool)
	eventRepo := pgRepo.NewEventRepo(pool)
	messageRepo := pgRepo.NewMessageRepo(pool)

	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)

	uploadDir := t.TempDir()
	files, err := infraStorage.NewLocalStorage(uploadDir, "/images/gallery")
	require.NoError(t, err)
	thumbs := infraStorage.NewThumbnailer(files)
	acceptor := gallery.NewAcceptor(files, gallery.AcceptorConfig{
		MaxFiles:     5,
		MaxFileSize:  1 << 20,
		WriteTimeout: 5 * time.Second,
	})

	gallerySvc := gallery.NewService(photoRepo, albumRepo, files, thumbs, acceptor)
	memberSvc := member.NewService(memberRepo)
	eventSvc := event.NewService(eventRepo)
	contactSvc := contact.NewService(messageRepo)

	logger := zap.NewNop()
	router := server.NewRouter(server.RouterConfig{
		GalleryHandler: handler.NewGalleryHandler(gallerySvc),
		MemberHandler:  handler.NewMemberHandler(memberSvc),
		EventHandler:   handler.NewEventHandler(eventSvc),
		ContactHandler: handler.NewContactHandler(contactSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Logger:         logger,
		Environment:    "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		UploadDir: uploadDir,
		jwtSvc:    jwtSvc,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (app *TestApp) cleanup(t *testing.T) {
	t.Helper()

	app.Server.Close()
	app.Pool.Close()

	ctx := context.Background()
	if err := app.Container.Terminate(ctx); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// token mints an access token for a fresh user id, standing in for the admin
// login flow that lives outside this service.
func (app *TestApp) token(t *testing.T) string {
	t.Helper()

	token, _, err := app.jwtSvc.GenerateAccessToken(uuid.New())
	require.NoError(t, err)
	return token
}

func (app *TestApp) request(method, path string, body any, headers map[string]string) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, app.BaseURL+path, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

func (app *TestApp) get(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, headers)
}

func (app *TestApp) post(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPost, path, body, headers)
}

func (app *TestApp) delete(path string, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodDelete, path, nil, headers)
}

type uploadFile struct {
	name        string
	contentType string
	content     []byte
}

// upload posts a multipart batch of jpegs to the gallery upload endpoint.
// Each entry in files maps a filename to its content; fields carries the
// plain form values.
func (app *TestApp) upload(t *testing.T, files map[string][]byte, fields map[string]string, headers map[string]string) (*http.Response, error) {
	t.Helper()

	parts := make([]uploadFile, 0, len(files))
	for name, content := range files {
		parts = append(parts, uploadFile{name: name, contentType: "image/jpeg", content: content})
	}
	return app.uploadWithTypes(t, parts, fields, headers)
}

func (app *TestApp) uploadWithTypes(t *testing.T, files []uploadFile, fields map[string]string, headers map[string]string) (*http.Response, error) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for _, f := range files {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="photos"; filename="`+f.name+`"`)
		h.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, app.BaseURL+"/api/gallery/upload", &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return app.httpClient.Do(req)
}

type envelope struct {
	OK   bool            `json:"ok"`
	Data json.RawMessage `json:"data"`
	Err  *struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

func parseEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.Unmarshal(body, &env), "response body: %s", string(body))
	return env
}

func decodeData(t *testing.T, env envelope, dest any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dest))
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
