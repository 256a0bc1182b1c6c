//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/internhub/intake-backend/internal/adapter/notifier"
	"github.com/internhub/intake-backend/internal/adapter/postgres"
	assignmentrepo "github.com/internhub/intake-backend/internal/adapter/postgres/assignment"
	auditrepo "github.com/internhub/intake-backend/internal/adapter/postgres/audit"
	batchrepo "github.com/internhub/intake-backend/internal/adapter/postgres/batch"
	candidaterepo "github.com/internhub/intake-backend/internal/adapter/postgres/candidate"
	reportrepo "github.com/internhub/intake-backend/internal/adapter/postgres/report"
	requestrepo "github.com/internhub/intake-backend/internal/adapter/postgres/request"
	staffrepo "github.com/internhub/intake-backend/internal/adapter/postgres/staff"
	"github.com/internhub/intake-backend/internal/adapter/postgres/testhelper"
	"github.com/internhub/intake-backend/internal/config"
	"github.com/internhub/intake-backend/internal/service/allocation"
	"github.com/internhub/intake-backend/internal/service/approval"
	"github.com/internhub/intake-backend/internal/service/forwarding"
	"github.com/internhub/intake-backend/internal/service/report"
	"github.com/internhub/intake-backend/internal/transport/rest"
)

// testServer bundles the running HTTP server with the DB pool used to seed
// fixtures directly.
type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
}

// setupTestServer wires the full application stack against a containerized
// PostgreSQL and serves it over httptest.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	txm := postgres.NewTxManager(pool)
	candidates := candidaterepo.New(pool)
	requests := requestrepo.New(pool)
	assignments := assignmentrepo.New(pool)
	batches := batchrepo.New(pool)
	staff := staffrepo.New(pool)
	audit := auditrepo.New(pool)
	reports := reportrepo.New(pool)

	dispatcher := notifier.NewDispatcher(logger, time.Second, notifier.NewLogSender(logger))
	t.Cleanup(dispatcher.Close)

	allocationSvc := allocation.NewService(
		logger, staff, assignments, requests, audit, dispatcher, txm,
		allocation.Capacities{Senior: 2, Regular: 4},
	)
	approvalSvc := approval.NewService(
		logger, candidates, requests, assignments, staff, allocationSvc,
		audit, dispatcher, txm,
	)
	forwardingSvc := forwarding.NewService(
		logger, batches, requests, staff, audit, dispatcher, txm, 50,
	)
	reportSvc := report.NewService(
		logger, reports, assignments, requests, audit, dispatcher, txm,
	)

	router := rest.NewRouter(rest.RouterDeps{
		Log:        logger,
		CORS:       config.CORSConfig{AllowedOrigins: "*"},
		Health:     rest.NewHealthHandler(pool, "e2e"),
		Approval:   rest.NewApprovalHandler(approvalSvc, logger),
		Forwarding: rest.NewForwardingHandler(forwardingSvc, logger),
		Allocation: rest.NewAllocationHandler(allocationSvc, logger),
		Reports:    rest.NewReportHandler(reportSvc, logger),
		Audit:      rest.NewAuditHandler(audit, logger),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
	}
}

// doJSON issues a request with an optional JSON body and actor header and
// decodes the JSON response.
func (ts *testServer) doJSON(t *testing.T, method, path string, actorID uuid.UUID, body any) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if actorID != uuid.Nil {
		req.Header.Set("X-Actor-Id", actorID.String())
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded), "body: %s", raw)
	}
	return resp.StatusCode, decoded
}

func (ts *testServer) post(t *testing.T, path string, actorID uuid.UUID, body any) (int, map[string]any) {
	t.Helper()
	return ts.doJSON(t, http.MethodPost, path, actorID, body)
}

func (ts *testServer) get(t *testing.T, path string, actorID uuid.UUID) (int, map[string]any) {
	t.Helper()
	return ts.doJSON(t, http.MethodGet, path, actorID, nil)
}

// submitApplication posts a fresh application and returns the request and
// candidate IDs.
func (ts *testServer) submitApplication(t *testing.T, departmentID uuid.UUID) (requestID, candidateID string) {
	t.Helper()

	suffix := uuid.New().String()[:8]
	status, body := ts.post(t, "/api/v1/requests", uuid.Nil, map[string]any{
		"fullName":          "Applicant " + suffix,
		"email":             "applicant-" + suffix + "@example.com",
		"applicationNumber": "APP-" + suffix,
		"institution":       "City University",
		"course":            "Computer Science",
		"departmentId":      departmentID.String(),
		"durationWeeks":     12,
	})
	require.Equal(t, http.StatusCreated, status, "body: %v", body)

	request := body["request"].(map[string]any)
	candidate := body["candidate"].(map[string]any)
	return request["id"].(string), candidate["id"].(string)
}
