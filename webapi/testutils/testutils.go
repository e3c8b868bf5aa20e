// Package testutils runs the HTTP application against a disposable Postgres.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amirasaad/txrecords/infra/initializer"
	"github.com/amirasaad/txrecords/pkg/app"
	"github.com/amirasaad/txrecords/pkg/config"
	"github.com/amirasaad/txrecords/webapi"
	"github.com/amirasaad/txrecords/webapi/common"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// E2ETestSuite provides a test suite with a real Postgres database using Testcontainers
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	application *app.App
	app         *fiber.App
	cfg         *config.App
}

// startPostgresContainer starts a Postgres container using Testcontainers
func (s *E2ETestSuite) startPostgresContainer(ctx context.Context) (*tcpostgres.PostgresContainer, error) {
	return tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
}

// SetupSuite starts Postgres, applies the migrations through the regular
// initializer and builds the HTTP application on top of it.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping Postgres end-to-end tests in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(s.T())
	ctx := context.Background()

	pg, err := s.startPostgresContainer(ctx)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.cfg, err = config.Load(".env.test")
	s.Require().NoError(err)
	s.cfg.Store.Backend = config.BackendPostgres
	s.cfg.DB.Url = dsn
	s.cfg.RateLimit.MaxRequests = 10000

	deps, err := initializer.InitializeDependencies(ctx, s.cfg)
	s.Require().NoError(err)

	s.application = app.New(deps, s.cfg)
	s.app = webapi.SetupApp(s.application)
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.application != nil {
		_ = s.application.Shutdown()
	}
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// App returns the application under test.
func (s *E2ETestSuite) App() *fiber.App {
	return s.app
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.app.Test(req, int((10 * time.Second).Milliseconds()))
	s.Require().NoError(err)
	return resp
}

// DecodeData decodes a success envelope and returns its data member.
func (s *E2ETestSuite) DecodeData(resp *http.Response) any {
	defer resp.Body.Close() //nolint: errcheck
	var body common.Response
	s.Require().NoError(json.NewDecoder(resp.Body).Decode(&body))
	return body.Data
}
