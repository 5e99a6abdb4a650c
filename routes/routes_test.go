package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"hiredai/services"
)

func newTestRouter(t *testing.T, datasetFiles map[string]string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	for name, contents := range datasetFiles {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(contents), 0o644); err != nil {
			t.Fatalf("failed to write dataset: %v", err)
		}
	}
	services.InitContentService(dir, nil)

	router := gin.New()
	api := router.Group("/api")
	{
		api.GET("/health", HealthRouteHandler)
		api.GET("/check-data", CheckDataRouteHandler)
		api.POST("/generate-answer", GenerateAnswerRouteHandler)
		api.POST("/predict-learning-path", PredictLearningPathRouteHandler)
		api.GET("/learning-path/:courseName", LearningPathRouteHandler)
		api.POST("/admin/create-user", CreateUserRouteHandler)
	}
	router.NoRoute(SPAFallbackHandler(filepath.Join(dir, "no-frontend")))
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]any
	if w.Body.Len() > 0 && strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &parsed); err != nil {
			t.Fatalf("invalid JSON response for %s %s: %v", method, path, err)
		}
	}
	return w, parsed
}

func TestPredictLearningPathRawAnswers(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/predict-learning-path",
		`{"q1":"A","q2":"C","q6":"A"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["user_category"] != "Short" {
		t.Errorf("Expected Short, got %v", body["user_category"])
	}
	scores := body["scores"].(map[string]any)
	if scores["Short"].(float64) != 4 {
		t.Errorf("Expected Short score 4, got %v", scores["Short"])
	}
	if body["percentage"].(float64) != 67 {
		t.Errorf("Expected percentage 67, got %v", body["percentage"])
	}
}

func TestPredictLearningPathAssessmentPassThrough(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/predict-learning-path",
		`{"dominantStyle":"Elaborate","scores":{"Short":1,"Elaborate":3,"Realistic":1},"percentage":42}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["user_category"] != "Elaborate" {
		t.Errorf("Expected Elaborate, got %v", body["user_category"])
	}
	// Percentage is recomputed from the score sum, not trusted.
	if body["percentage"].(float64) != 60 {
		t.Errorf("Expected recomputed percentage 60, got %v", body["percentage"])
	}
}

func TestPredictLearningPathEmptyBody(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/predict-learning-path", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("Expected 400, got %d", w.Code)
	}
	if body["error"] != "No answers provided" {
		t.Errorf("Unexpected error body: %v", body)
	}
}

func TestLearningPathFromDataset(t *testing.T) {
	router := newTestRouter(t, map[string]string{
		"golang_basics_learning.csv": "module_id,module_name,difficulty\n" +
			"1,Golang Basics,Beginner\n" +
			"2,Golang Basics,Intermediate\n" +
			"3,Golang Basics,Advanced\n",
	})

	w, body := doJSON(t, router, http.MethodGet, "/api/learning-path/golang-basics?mode=Realistic", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["dataset_filename"] != "golang_basics_learning.csv" {
		t.Errorf("Expected dataset filename, got %v", body["dataset_filename"])
	}
	if body["total_modules"].(float64) != 2 {
		t.Errorf("Expected 2 Realistic modules, got %v", body["total_modules"])
	}
}

func TestLearningPathFallbackContent(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodGet, "/api/learning-path/advanced_react_patterns", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	if body["dataset_filename"] != "embedded_fallback" {
		t.Errorf("Expected embedded_fallback, got %v", body["dataset_filename"])
	}
	if body["learning_mode"] != "Elaborate" {
		t.Errorf("Expected default mode Elaborate, got %v", body["learning_mode"])
	}
	if body["total_modules"].(float64) != 2 {
		t.Errorf("Expected 2 fallback modules, got %v", body["total_modules"])
	}
}

func TestLearningPathUnknownCourse(t *testing.T) {
	router := newTestRouter(t, nil)

	w, _ := doJSON(t, router, http.MethodGet, "/api/learning-path/underwater-basket-weaving", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("Expected 404 for unknown course, got %d", w.Code)
	}
}

func TestLearningPathInvalidMode(t *testing.T) {
	router := newTestRouter(t, nil)

	w, _ := doJSON(t, router, http.MethodGet, "/api/learning-path/advanced_react_patterns?mode=Visual", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for invalid mode, got %d", w.Code)
	}
}

func TestGenerateAnswerLocalFallback(t *testing.T) {
	// No provider credentials configured in tests.
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/generate-answer",
		`{"prompt":"Tell me about a conflict you resolved."}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", w.Code, w.Body.String())
	}
	answer, _ := body["answer"].(string)
	if !strings.Contains(answer, "STAR") {
		t.Errorf("Expected the local STAR tip, got %q", answer)
	}
}

func TestGenerateAnswerRequiresPrompt(t *testing.T) {
	router := newTestRouter(t, nil)

	w, _ := doJSON(t, router, http.MethodPost, "/api/generate-answer", `{}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("Expected 400 for missing prompt, got %d", w.Code)
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter(t, map[string]string{"aws_developer.csv": "module_id\n1\n"})

	w, body := doJSON(t, router, http.MethodGet, "/api/health", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %v", body["status"])
	}
	if body["datasets"].(float64) != 1 {
		t.Errorf("Expected 1 dataset, got %v", body["datasets"])
	}
}

func TestCheckData(t *testing.T) {
	router := newTestRouter(t, map[string]string{"aws_developer.csv": "module_id\n1\n"})

	w, body := doJSON(t, router, http.MethodGet, "/api/check-data", "")
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	files := body["available_datasets"].([]any)
	if len(files) != 1 || files[0] != "aws_developer.csv" {
		t.Errorf("Unexpected listing: %v", files)
	}
	bases := body["base_names"].([]any)
	if len(bases) != 1 || bases[0] != "aws_developer" {
		t.Errorf("Unexpected base names: %v", bases)
	}
}

func TestCreateUserEchoesEmail(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodPost, "/api/admin/create-user",
		`{"email":"dev@example.com","password":"hunter2"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	user := body["user"].(map[string]any)
	if user["email"] != "dev@example.com" {
		t.Errorf("Expected echoed email, got %v", user["email"])
	}
	if body["ok"] != true {
		t.Errorf("Expected ok true, got %v", body["ok"])
	}
}

func TestUnknownAPIRoute(t *testing.T) {
	router := newTestRouter(t, nil)

	w, body := doJSON(t, router, http.MethodGet, "/api/does-not-exist", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("Expected 404, got %d", w.Code)
	}
	if body["error"] != "API endpoint not found" {
		t.Errorf("Unexpected body: %v", body)
	}
}

func TestSPAFallbackWithoutBuild(t *testing.T) {
	router := newTestRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/profile/settings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Frontend build not found") {
		t.Errorf("Expected the no-build message, got %q", w.Body.String())
	}
}

func TestSPAFallbackServesIndex(t *testing.T) {
	gin.SetMode(gin.TestMode)
	dist := t.TempDir()
	if err := os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html>hiredai</html>"), 0o644); err != nil {
		t.Fatalf("failed to write index: %v", err)
	}

	router := gin.New()
	router.NoRoute(SPAFallbackHandler(dist))

	req := httptest.NewRequest(http.MethodGet, "/some/client/route", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "hiredai") {
		t.Errorf("Expected index.html contents, got %q", w.Body.String())
	}
}
