package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hackathon-portal/internal/handler"
	"hackathon-portal/internal/model"
	"hackathon-portal/internal/service"
	"hackathon-portal/internal/testutil"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setup(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gdb := testutil.OpenTestDB(t)
	return gdb, handler.Router(gdb, time.Hour)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
}

func TestSignupAndLogin(t *testing.T) {
	_, r := setup(t)

	w := do(t, r, http.MethodPost, "/api/auth/signup", "", model.SignupRequest{
		Email: "dev@test.io", Password: "hunter2hunter2", Name: "Dev",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup status = %d body = %s", w.Code, w.Body.String())
	}
	var signup model.AuthResponse
	decode(t, w, &signup)
	if signup.Token == "" || signup.Role != model.RoleUser {
		t.Fatalf("signup response = %+v", signup)
	}

	// duplicate signup rejected
	w = do(t, r, http.MethodPost, "/api/auth/signup", "", model.SignupRequest{
		Email: "dev@test.io", Password: "hunter2hunter2",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("duplicate signup status = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		Email: "dev@test.io", Password: "hunter2hunter2",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("login status = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/auth/login", "", model.LoginRequest{
		Email: "dev@test.io", Password: "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("bad login status = %d", w.Code)
	}
}

func TestAuthRequired(t *testing.T) {
	_, r := setup(t)
	for _, path := range []string{"/api/profile", "/api/projects", "/api/leaderboard"} {
		w := do(t, r, http.MethodGet, path, "", nil)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("GET %s without token: status = %d, want 401", path, w.Code)
		}
	}
}

func TestLikeToggleEndpoint(t *testing.T) {
	gdb, r := setup(t)

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	liker := testutil.CreateProfile(t, gdb, "liker@test", "Liker")
	project := testutil.CreateProject(t, gdb, owner.ID, "Demo")
	token := testutil.Token(t, liker.ID, liker.Name)

	var resp model.LikeResponse
	w := do(t, r, http.MethodPost, "/api/projects/"+project.ID.String()+"/like", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("like status = %d body = %s", w.Code, w.Body.String())
	}
	decode(t, w, &resp)
	if !resp.Liked || resp.TotalLikes != 1 {
		t.Fatalf("first toggle = %+v", resp)
	}

	w = do(t, r, http.MethodPost, "/api/projects/"+project.ID.String()+"/like", token, nil)
	decode(t, w, &resp)
	if resp.Liked || resp.TotalLikes != 0 {
		t.Fatalf("second toggle = %+v", resp)
	}
}

func TestFeedbackEndpointGating(t *testing.T) {
	gdb, r := setup(t)

	owner := testutil.CreateProfile(t, gdb, "owner@test", "Owner")
	judge := testutil.CreateProfile(t, gdb, "judge@test", "Judge")
	testutil.AssignRole(t, gdb, judge.ID, model.RoleJudge)
	user := testutil.CreateProfile(t, gdb, "user@test", "User")
	project := testutil.CreateProject(t, gdb, owner.ID, "Demo")

	scores := map[string]int{
		service.CriterionInnovation:   8,
		service.CriterionRelevance:    6,
		service.CriterionFeasibility:  7,
		service.CriterionImpact:       9,
		service.CriterionPresentation: 5,
		service.CriterionDiversity:    10,
	}
	path := "/api/projects/" + project.ID.String() + "/feedback"

	// plain users cannot score
	w := do(t, r, http.MethodPut, path, testutil.Token(t, user.ID, user.Name), model.FeedbackRequest{Scores: scores})
	if w.Code != http.StatusForbidden {
		t.Fatalf("save by user: status = %d", w.Code)
	}

	// incomplete scores rejected before any write
	partial := map[string]int{service.CriterionInnovation: 8}
	w = do(t, r, http.MethodPut, path, testutil.Token(t, judge.ID, judge.Name), model.FeedbackRequest{Scores: partial})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("partial save: status = %d", w.Code)
	}

	w = do(t, r, http.MethodPut, path, testutil.Token(t, judge.ID, judge.Name), model.FeedbackRequest{
		Scores: scores, PublicComment: "nice demo", PrivateNote: "shaky backend",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("save by judge: status = %d body = %s", w.Code, w.Body.String())
	}
	var saved model.JudgeFeedback
	decode(t, w, &saved)
	if saved.Average != 7.20 {
		t.Errorf("saved average = %v, want 7.20", saved.Average)
	}

	// public feed is open and anonymized
	w = do(t, r, http.MethodGet, path, testutil.Token(t, user.ID, user.Name), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public feed: status = %d", w.Code)
	}
	var public []model.PublicFeedback
	decode(t, w, &public)
	if len(public) != 1 || public[0].PublicComment != "nice demo" {
		t.Fatalf("public feed = %+v", public)
	}
	if bytes.Contains(w.Body.Bytes(), []byte("shaky backend")) {
		t.Error("private note leaked into public feed")
	}

	// the full feed stays closed to plain users
	adminPath := "/api/admin/projects/" + project.ID.String() + "/feedback"
	w = do(t, r, http.MethodGet, adminPath, testutil.Token(t, user.ID, user.Name), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("full feed for user: status = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, adminPath, testutil.Token(t, judge.ID, judge.Name), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("full feed for judge: status = %d", w.Code)
	}
	var full []model.FullFeedback
	decode(t, w, &full)
	if len(full) != 1 || full[0].PrivateNote != "shaky backend" {
		t.Fatalf("full feed = %+v", full)
	}
}

func TestUpdatesAdminOnly(t *testing.T) {
	gdb, r := setup(t)

	admin := testutil.CreateProfile(t, gdb, "admin@test", "Admin")
	testutil.AssignRole(t, gdb, admin.ID, model.RoleAdmin)
	user := testutil.CreateProfile(t, gdb, "user@test", "User")

	w := do(t, r, http.MethodPost, "/api/updates", testutil.Token(t, user.ID, user.Name),
		model.UpdateRequest{Title: "Lunch is served"})
	if w.Code != http.StatusForbidden {
		t.Fatalf("create update by user: status = %d", w.Code)
	}

	w = do(t, r, http.MethodPost, "/api/updates", testutil.Token(t, admin.ID, admin.Name),
		model.UpdateRequest{Title: "Lunch is served", Body: "Hall B"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create update by admin: status = %d body = %s", w.Code, w.Body.String())
	}

	// everyone can read announcements
	w = do(t, r, http.MethodGet, "/api/updates", testutil.Token(t, user.ID, user.Name), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list updates: status = %d", w.Code)
	}
	var updates []model.Update
	decode(t, w, &updates)
	if len(updates) != 1 || updates[0].Title != "Lunch is served" {
		t.Fatalf("updates = %+v", updates)
	}
}

func TestLeaderboardEndpoints(t *testing.T) {
	gdb, r := setup(t)

	admin := testutil.CreateProfile(t, gdb, "admin@test", "Admin")
	testutil.AssignRole(t, gdb, admin.ID, model.RoleAdmin)
	user := testutil.CreateProfile(t, gdb, "user@test", "User")

	w := do(t, r, http.MethodGet, "/api/admin/leaderboard", testutil.Token(t, user.ID, user.Name), nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("admin leaderboard for user: status = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/admin/leaderboard", testutil.Token(t, admin.ID, admin.Name), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("admin leaderboard: status = %d", w.Code)
	}
	w = do(t, r, http.MethodGet, "/api/leaderboard", testutil.Token(t, user.ID, user.Name), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("public leaderboard: status = %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	_, r := setup(t)
	w := do(t, r, http.MethodGet, "/healthz", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("healthz status = %d", w.Code)
	}
}
