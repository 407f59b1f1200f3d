package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"kambaz-backend/internal/models"
	"kambaz-backend/internal/repository/memory"
	"kambaz-backend/internal/service"
	"kambaz-backend/internal/session"

	"github.com/gin-gonic/gin"
)

type testServer struct {
	engine   *gin.Engine
	sessions *session.MemoryStore
	users    *memory.UserStore
	quizzes  *memory.QuizStore
	attempts *memory.AttemptStore
	modules  *memory.ModuleStore
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := memory.NewUserStore()
	courses := memory.NewCourseStore()
	modules := memory.NewModuleStore()
	assignments := memory.NewAssignmentStore()
	enrollments := memory.NewEnrollmentStore()
	quizzes := memory.NewQuizStore()
	attempts := memory.NewAttemptStore()
	sessions := session.NewMemoryStore()

	router := &Router{
		User:       NewUserHandler(service.NewUserService(users), sessions),
		Course:     NewCourseHandler(service.NewCourseService(courses, enrollments, users)),
		Module:     NewModuleHandler(service.NewModuleService(modules)),
		Assignment: NewAssignmentHandler(service.NewAssignmentService(assignments)),
		Enrollment: NewEnrollmentHandler(service.NewEnrollmentService(enrollments)),
		Quiz:       NewQuizHandler(service.NewQuizService(quizzes, attempts)),
		Attempt:    NewAttemptHandler(service.NewAttemptService(attempts, quizzes)),
	}

	engine := gin.New()
	engine.Use(SessionMiddleware(sessions))
	router.Register(engine)

	return &testServer{
		engine:   engine,
		sessions: sessions,
		users:    users,
		quizzes:  quizzes,
		attempts: attempts,
		modules:  modules,
	}
}

// signedIn opens a session for the user directly against the store and
// returns the cookie token.
func (ts *testServer) signedIn(t *testing.T, user *models.User) string {
	t.Helper()
	token := "token-" + user.ID
	if err := ts.sessions.Save(context.Background(), token, user); err != nil {
		t.Fatalf("saving session: %v", err)
	}
	return token
}

func (ts *testServer) do(method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.AddCookie(&http.Cookie{Name: session.CookieName, Value: token})
	}
	w := httptest.NewRecorder()
	ts.engine.ServeHTTP(w, req)
	return w
}

func seedQuiz(t *testing.T, ts *testServer, quiz *models.Quiz) {
	t.Helper()
	if err := ts.quizzes.Create(context.Background(), quiz); err != nil {
		t.Fatalf("seeding quiz: %v", err)
	}
}

func TestSignupSigninProfileSignout(t *testing.T) {
	ts := newTestServer(t)

	w := ts.do("POST", "/api/users/signup", "", `{"username":"alice","password":"secret","role":"STUDENT"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("signup: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if strings.Contains(w.Body.String(), "secret") {
		t.Error("signup response leaked the password")
	}
	var cookie string
	for _, c := range w.Result().Cookies() {
		if c.Name == session.CookieName {
			cookie = c.Value
		}
	}
	if cookie == "" {
		t.Fatal("signup did not set a session cookie")
	}

	w = ts.do("POST", "/api/users/profile", cookie, "")
	if w.Code != http.StatusOK {
		t.Errorf("profile: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "alice") {
		t.Errorf("profile body missing username: %s", w.Body.String())
	}

	w = ts.do("POST", "/api/users/signin", "", `{"username":"alice","password":"wrong"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("bad signin: expected 401, got %d", w.Code)
	}
	w = ts.do("POST", "/api/users/signin", "", `{"username":"alice","password":"secret"}`)
	if w.Code != http.StatusOK {
		t.Errorf("signin: expected 200, got %d: %s", w.Code, w.Body.String())
	}

	w = ts.do("POST", "/api/users/signout", cookie, "")
	if w.Code != http.StatusOK {
		t.Errorf("signout: expected 200, got %d", w.Code)
	}
	w = ts.do("POST", "/api/users/profile", cookie, "")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("profile after signout: expected 401, got %d", w.Code)
	}
}

func TestSignupRejectsDuplicateUsername(t *testing.T) {
	ts := newTestServer(t)
	if w := ts.do("POST", "/api/users/signup", "", `{"username":"bob","password":"pw"}`); w.Code != http.StatusOK {
		t.Fatalf("first signup: expected 200, got %d", w.Code)
	}
	w := ts.do("POST", "/api/users/signup", "", `{"username":"bob","password":"pw2"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("duplicate signup: expected 400, got %d", w.Code)
	}
}

func TestGetUnpublishedQuizByRole(t *testing.T) {
	ts := newTestServer(t)
	seedQuiz(t, ts, &models.Quiz{ID: "quiz1", Course: "c1", Title: "Draft"})

	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})
	faculty := ts.signedIn(t, &models.User{ID: "f1", Role: models.RoleFaculty})

	if w := ts.do("GET", "/api/courses/quizzes/quiz1", student, ""); w.Code != http.StatusForbidden {
		t.Errorf("student on unpublished quiz: expected 403, got %d", w.Code)
	}
	if w := ts.do("GET", "/api/courses/quizzes/quiz1", faculty, ""); w.Code != http.StatusOK {
		t.Errorf("faculty on unpublished quiz: expected 200, got %d", w.Code)
	}
	if w := ts.do("GET", "/api/courses/quizzes/ghost", faculty, ""); w.Code != http.StatusNotFound {
		t.Errorf("missing quiz: expected 404, got %d", w.Code)
	}
}

func TestQuizListHidesDraftsFromStudents(t *testing.T) {
	ts := newTestServer(t)
	seedQuiz(t, ts, &models.Quiz{ID: "quiz1", Course: "c1", Title: "Live", Published: true})
	seedQuiz(t, ts, &models.Quiz{ID: "quiz2", Course: "c1", Title: "Draft"})

	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})
	w := ts.do("GET", "/api/courses/c1/quizzes", student, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var quizzes []models.Quiz
	if err := json.Unmarshal(w.Body.Bytes(), &quizzes); err != nil {
		t.Fatalf("decoding body: %v", err)
	}
	if len(quizzes) != 1 || quizzes[0].ID != "quiz1" {
		t.Errorf("student should only see the published quiz, got %v", quizzes)
	}
}

func TestTogglePublishFacultyOnly(t *testing.T) {
	ts := newTestServer(t)
	seedQuiz(t, ts, &models.Quiz{ID: "quiz1", Course: "c1"})

	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})
	admin := ts.signedIn(t, &models.User{ID: "a1", Role: models.RoleAdmin})
	faculty := ts.signedIn(t, &models.User{ID: "f1", Role: models.RoleFaculty})

	if w := ts.do("PATCH", "/api/courses/quizzes/quiz1/publish", "", ""); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous publish: expected 401, got %d", w.Code)
	}
	if w := ts.do("PATCH", "/api/courses/quizzes/quiz1/publish", student, ""); w.Code != http.StatusForbidden {
		t.Errorf("student publish: expected 403, got %d", w.Code)
	}
	// Quiz mutation accepts FACULTY only, not ADMIN.
	if w := ts.do("PATCH", "/api/courses/quizzes/quiz1/publish", admin, ""); w.Code != http.StatusForbidden {
		t.Errorf("admin publish: expected 403, got %d", w.Code)
	}
	stored, _ := ts.quizzes.FindByID(context.Background(), "quiz1")
	if stored.Published {
		t.Error("rejected toggles must not flip the published flag")
	}

	if w := ts.do("PATCH", "/api/courses/quizzes/quiz1/publish", faculty, ""); w.Code != http.StatusOK {
		t.Errorf("faculty publish: expected 200, got %d", w.Code)
	}
	stored, _ = ts.quizzes.FindByID(context.Background(), "quiz1")
	if !stored.Published {
		t.Error("faculty toggle should have published the quiz")
	}
}

func TestSubmitAttemptGates(t *testing.T) {
	ts := newTestServer(t)
	seedQuiz(t, ts, &models.Quiz{
		ID: "quiz1", Course: "c1", Published: true, Points: 2, HowManyAttempts: 1,
		Questions: []models.Question{{
			ID: "q1", Type: models.QuestionMultipleChoice, Points: 2,
			Choices: []models.Choice{{ID: "c1", Text: "Yes", IsCorrect: true}},
		}},
	})

	body := `{"answers":[{"questionId":"q1","answer":"c1"}]}`
	if w := ts.do("POST", "/api/courses/quizzes/quiz1/attempts", "", body); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous submit: expected 401, got %d", w.Code)
	}

	faculty := ts.signedIn(t, &models.User{ID: "f1", Role: models.RoleFaculty})
	if w := ts.do("POST", "/api/courses/quizzes/quiz1/attempts", faculty, body); w.Code != http.StatusForbidden {
		t.Errorf("faculty submit: expected 403, got %d", w.Code)
	}

	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})
	w := ts.do("POST", "/api/courses/quizzes/quiz1/attempts", student, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("student submit: expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var attempt models.QuizAttempt
	if err := json.Unmarshal(w.Body.Bytes(), &attempt); err != nil {
		t.Fatalf("decoding attempt: %v", err)
	}
	if attempt.Score != 2 || attempt.AttemptNumber != 1 {
		t.Errorf("expected score 2 on attempt 1, got score %d attempt %d", attempt.Score, attempt.AttemptNumber)
	}

	if w := ts.do("POST", "/api/courses/quizzes/quiz1/attempts", student, body); w.Code != http.StatusForbidden {
		t.Errorf("over-limit submit: expected 403, got %d", w.Code)
	}

	w = ts.do("GET", "/api/courses/quizzes/quiz1/attempts", student, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list attempts: expected 200, got %d", w.Code)
	}
	var attempts []models.QuizAttempt
	if err := json.Unmarshal(w.Body.Bytes(), &attempts); err != nil {
		t.Fatalf("decoding attempts: %v", err)
	}
	if len(attempts) != 1 {
		t.Errorf("expected 1 recorded attempt, got %d", len(attempts))
	}
}

func TestModuleMutationRoleGate(t *testing.T) {
	ts := newTestServer(t)
	body := `{"name":"Week 1"}`

	if w := ts.do("POST", "/api/courses/c1/modules", "", body); w.Code != http.StatusForbidden {
		t.Errorf("anonymous create module: expected 403, got %d", w.Code)
	}
	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})
	if w := ts.do("POST", "/api/courses/c1/modules", student, body); w.Code != http.StatusForbidden {
		t.Errorf("student create module: expected 403, got %d", w.Code)
	}

	// ADMIN passes the module gate, unlike the quiz gate.
	admin := ts.signedIn(t, &models.User{ID: "a1", Role: models.RoleAdmin})
	w := ts.do("POST", "/api/courses/c1/modules", admin, body)
	if w.Code != http.StatusOK {
		t.Fatalf("admin create module: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var module models.Module
	if err := json.Unmarshal(w.Body.Bytes(), &module); err != nil {
		t.Fatalf("decoding module: %v", err)
	}
	if module.ID == "" || module.Course != "c1" {
		t.Errorf("expected a module bound to c1 with an id, got %+v", module)
	}

	faculty := ts.signedIn(t, &models.User{ID: "f1", Role: models.RoleFaculty})
	if w := ts.do("DELETE", "/api/courses/modules/"+module.ID, faculty, ""); w.Code != http.StatusNoContent {
		t.Errorf("faculty delete module: expected 204, got %d", w.Code)
	}
}

func TestCourseCreationRequiresSession(t *testing.T) {
	ts := newTestServer(t)
	body := `{"name":"CS5610"}`

	if w := ts.do("POST", "/api/users/current/courses", "", body); w.Code != http.StatusUnauthorized {
		t.Errorf("anonymous create course: expected 401, got %d", w.Code)
	}

	faculty := ts.signedIn(t, &models.User{ID: "f1", Role: models.RoleFaculty})
	w := ts.do("POST", "/api/users/current/courses", faculty, body)
	if w.Code != http.StatusOK {
		t.Fatalf("create course: expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var course models.Course
	if err := json.Unmarshal(w.Body.Bytes(), &course); err != nil {
		t.Fatalf("decoding course: %v", err)
	}

	// The creator is auto-enrolled, so the course shows up under "current".
	w = ts.do("GET", "/api/users/current/courses", faculty, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list my courses: expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), course.ID) {
		t.Errorf("expected the new course in the creator's course list: %s", w.Body.String())
	}
}

func TestEnrollAndUnenroll(t *testing.T) {
	ts := newTestServer(t)
	student := ts.signedIn(t, &models.User{ID: "s1", Role: models.RoleStudent})

	if w := ts.do("POST", "/api/users/current/courses/c1", student, ""); w.Code != http.StatusOK {
		t.Fatalf("enroll: expected 200, got %d", w.Code)
	}
	w := ts.do("GET", "/api/users/current/courses", student, "")
	if w.Code != http.StatusOK {
		t.Fatalf("list courses: expected 200, got %d", w.Code)
	}

	if w := ts.do("DELETE", "/api/users/current/courses/c1", student, ""); w.Code != http.StatusNoContent {
		t.Errorf("unenroll: expected 204, got %d", w.Code)
	}
}

func TestUserActionFallsThroughToNotFound(t *testing.T) {
	ts := newTestServer(t)
	if w := ts.do("POST", "/api/users/someUserId", "", "{}"); w.Code != http.StatusNotFound {
		t.Errorf("unknown user action: expected 404, got %d", w.Code)
	}
}
