package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/handler"
	"github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository/filestore"
	pgRepo "github.com/marcos-nsantos/photo-portfolio/internal/adapter/repository/postgres"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/auth"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/cache"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/database"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/imagemeta"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/middleware"
	"github.com/marcos-nsantos/photo-portfolio/internal/infrastructure/server"
	"github.com/marcos-nsantos/photo-portfolio/internal/pkg/exiftest"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/curation"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/gallery"
	"github.com/marcos-nsantos/photo-portfolio/internal/usecase/manifest"
)

const (
	testDBUser     = "testuser"
	testDBPassword = "testpass"
	testDBName     = "testdb"
	testJWTSecret  = "test-secret-key-for-e2e-tests"
	apiBasePath    = "/api"
)

// testPhoto is one original written into the public dir before generation.
type testPhoto struct {
	name    string
	width   int
	height  int
	modTime time.Time
}

var defaultPhotos = []testPhoto{
	{name: "harbor.jpg", width: 64, height: 48, modTime: time.Date(2023, 5, 1, 9, 0, 0, 0, time.UTC)},
	{name: "sunset.jpg", width: 80, height: 40, modTime: time.Date(2023, 6, 1, 18, 30, 0, 0, time.UTC)},
	{name: "alley.jpg", width: 30, height: 60, modTime: time.Date(2022, 11, 12, 7, 15, 0, 0, time.UTC)},
}

type TestApp struct {
	Server     *httptest.Server
	Pool       *pgxpool.Pool
	Container  testcontainers.Container
	BaseURL    string
	PublicDir  string
	Manifest   *manifest.Service
	JWT        *auth.JWTService
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

	publicDir := t.TempDir()
	originalDir := filepath.Join(publicDir, "photos")
	optimizedDir := filepath.Join(publicDir, "photos-optimized")
	writePhotos(t, originalDir, defaultPhotos)

	logger := zap.NewNop()

	// Stores: postgres is primary, the manifest file is the generated copy.
	photoRepo := pgRepo.NewPhotoRepo(pool)
	fileStore := filestore.NewStore(filepath.Join(publicDir, "photos-manifest.json"), logger)

	extractor := gallery.NewExtractor(imagemeta.NewHeaderReader(), imagemeta.NewExifReader(logger), gallery.ExtractorConfig{
		OriginalDir:    originalDir,
		OriginalPrefix: "/photos",
		Timeout:        5 * time.Second,
	}, logger)
	sources := gallery.DefaultSources{
		OptimizedDir:    optimizedDir,
		OptimizedPrefix: "/photos-optimized",
		OriginalDir:     originalDir,
		OriginalPrefix:  "/photos",
	}

	manifestSvc := manifest.NewService(
		gallery.NewDirectoryResolver(sources, extractor, photoRepo, logger),
		fileStore,
		photoRepo,
		nil,
		manifest.Config{
			PublicDir:    publicDir,
			ManifestPath: fileStore.Path(),
			Dirs: []manifest.Dir{
				{Path: optimizedDir, Prefix: "/photos-optimized"},
				{Path: originalDir, Prefix: "/photos"},
			},
		},
		logger,
	)
	_, err = manifestSvc.Generate(ctx)
	require.NoError(t, err)

	photoCache := cache.NewMemoryPhotoCache(time.Minute)
	jwtSvc := auth.NewJWTService(testJWTSecret, 15*time.Minute)

	gallerySvc := gallery.NewService(gallery.NewDefaultResolver(sources, extractor, photoRepo, logger), photoCache, logger)
	curationSvc := curation.NewService(photoRepo, photoCache, logger)

	router := server.NewRouter(server.RouterConfig{
		PhotoHandler:   handler.NewPhotoHandler(gallerySvc, logger),
		AdminHandler:   handler.NewAdminHandler(curationSvc),
		AuthMiddleware: middleware.NewAuthMiddleware(jwtSvc),
		Static: &server.StaticConfig{
			ManifestFile:    fileStore.Path(),
			OriginalDir:     originalDir,
			OriginalPrefix:  "/photos",
			OptimizedDir:    optimizedDir,
			OptimizedPrefix: "/photos-optimized",
		},
		Logger:      logger,
		Environment: "test",
	})

	ts := httptest.NewServer(router.Engine())

	return &TestApp{
		Server:    ts,
		Pool:      pool,
		Container: pgContainer,
		BaseURL:   ts.URL,
		PublicDir: publicDir,
		Manifest:  manifestSvc,
		JWT:       jwtSvc,
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

func (app *TestApp) adminToken(t *testing.T) string {
	t.Helper()
	token, _, err := app.JWT.GenerateToken(auth.AdminSubject)
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
	return app.request(http.MethodGet, apiBasePath+path, nil, headers)
}

func (app *TestApp) put(path string, body any, headers map[string]string) (*http.Response, error) {
	return app.request(http.MethodPut, apiBasePath+path, body, headers)
}

func (app *TestApp) getRaw(path string) (*http.Response, error) {
	return app.request(http.MethodGet, path, nil, nil)
}

func parseResponse(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	if dest != nil {
		err = json.Unmarshal(body, dest)
		require.NoError(t, err, "response body: %s", string(body))
	}
}

func authHeader(token string) map[string]string {
	return map[string]string{
		"Authorization": "Bearer " + token,
	}
}

func writePhotos(t *testing.T, dir string, photos []testPhoto) {
	t.Helper()
	for _, p := range photos {
		file := exiftest.WriteJPEG(t, dir, p.name, p.width, p.height, nil)
		exiftest.SetModTime(t, file, p.modTime)
	}
}

// getMigrationsPath returns the absolute path to the migrations directory
func getMigrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	testDir := filepath.Dir(filename)
	return filepath.Join(testDir, "..", "..", "migrations")
}
