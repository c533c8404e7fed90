// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/danielhkuo/ballot-box/models"
	"github.com/danielhkuo/ballot-box/testutil"
)

func TestHealthEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	req := httptest.NewRequest("GET", "/", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var info models.ServiceInfo
	testutil.AssertJSON(t, w, &info)
	if info.Version != Version {
		t.Errorf("Expected version %s, got %s", Version, info.Version)
	}
	if info.Message == "" || len(info.Features) == 0 {
		t.Errorf("Expected message and features, got %+v", info)
	}
}

func TestUnknownPath(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/polls", nil)
	w := httptest.NewRecorder()

	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown path, got %d", w.Code)
	}
}

func TestRouteExistence(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	// 400 and 404 from handlers are fine; 405 means the route is missing
	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/auth/token"},

		{"POST", "/voters"},
		{"GET", "/voters"},
		{"GET", "/voters/test-id"},
		{"DELETE", "/voters/test-id"},

		{"POST", "/candidates"},
		{"GET", "/candidates"},
		{"GET", "/candidates/test-id"},
		{"DELETE", "/candidates/test-id"},

		{"POST", "/votes"},
		{"GET", "/votes"},
		{"GET", "/votes/statistics"},
		{"GET", "/votes/verify"},
		{"GET", "/validations/voter-candidate-check/test-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	cfg := testutil.GetTestConfig()
	mux := NewRouter(db, cfg)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"PUT", "/voters"},
		{"PATCH", "/candidates/test-id"},
		{"DELETE", "/votes/statistics"},
		{"GET", "/auth/token"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			w := httptest.NewRecorder()

			mux.ServeHTTP(w, req)

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestVotingFlow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	do := func(method, path string, body interface{}) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, nil))
		return w
	}

	w := do("POST", "/voters", models.RegisterVoterRequest{Name: "Ana", Email: "ana@x.com"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var ana models.Voter
	testutil.AssertJSON(t, w, &ana)

	w = do("POST", "/candidates", models.RegisterCandidateRequest{Name: "Bob"})
	testutil.AssertStatus(t, w, http.StatusCreated)
	var bob models.Candidate
	testutil.AssertJSON(t, w, &bob)

	w = do("POST", "/votes", models.CastVoteRequest{VoterID: ana.ID, CandidateID: bob.ID})
	testutil.AssertStatus(t, w, http.StatusCreated)

	w = do("GET", "/voters/"+ana.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var voter models.Voter
	testutil.AssertJSON(t, w, &voter)
	if !voter.HasVoted {
		t.Error("Expected voter to be marked as voted")
	}

	w = do("GET", "/candidates/"+bob.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var candidate models.Candidate
	testutil.AssertJSON(t, w, &candidate)
	if candidate.VotesCount != 1 {
		t.Errorf("Expected votes_count 1, got %d", candidate.VotesCount)
	}

	w = do("GET", "/votes/statistics", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var stats models.Statistics
	testutil.AssertJSON(t, w, &stats)
	if stats.TotalVotersWhoVoted != 1 || stats.CandidatesStatistics[0].VotePercentage != 100 {
		t.Errorf("unexpected statistics: %+v", stats)
	}

	w = do("GET", "/validations/voter-candidate-check/"+ana.ID, nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var check models.DualRoleCheck
	testutil.AssertJSON(t, w, &check)
	if check.IsAlsoCandidate || !check.CanVote {
		t.Errorf("unexpected check: %+v", check)
	}

	w = do("DELETE", "/voters/"+ana.ID, nil)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = do("DELETE", "/candidates/"+bob.ID, nil)
	testutil.AssertStatus(t, w, http.StatusBadRequest)

	w = do("GET", "/votes/verify", nil)
	testutil.AssertStatus(t, w, http.StatusOK)
	var report models.TallyReport
	testutil.AssertJSON(t, w, &report)
	if !report.Consistent {
		t.Errorf("Expected consistent tallies, got %+v", report)
	}
}

func TestTokenGuard(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("Failed to hash password: %v", err)
	}

	cfg := testutil.GetTestConfig()
	cfg.JWTSecret = testutil.TestJWTSecret
	cfg.AdminPasswordHash = string(hash)
	mux := NewRouter(db, cfg)

	voterBody := models.RegisterVoterRequest{Name: "Ana", Email: "ana@x.com"}

	// Mutating routes reject requests without a token
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/voters", voterBody, nil))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/voters", voterBody, map[string]string{
		"Authorization": "Bearer not-a-token",
	}))
	testutil.AssertStatus(t, w, http.StatusUnauthorized)

	// Reads stay public
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/voters", nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	// Exchange the password for a token
	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/token", models.TokenRequest{Password: "s3cret"}, nil))
	testutil.AssertStatus(t, w, http.StatusOK)

	var token models.TokenResponse
	testutil.AssertJSON(t, w, &token)

	w = httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/voters", voterBody, map[string]string{
		"Authorization": "Bearer " + token.AccessToken,
	}))
	testutil.AssertStatus(t, w, http.StatusCreated)

	if n := testutil.CountRows(t, db, `SELECT COUNT(*) FROM voter`); n != 1 {
		t.Errorf("Expected 1 voter, got %d", n)
	}
}

func TestTokenEndpoint_AuthDisabled(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer db.Close()

	mux := NewRouter(db, testutil.GetTestConfig())

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, testutil.MakeRequest("POST", "/auth/token", models.TokenRequest{Password: "x"}, nil))
	testutil.AssertStatus(t, w, http.StatusNotFound)
}
