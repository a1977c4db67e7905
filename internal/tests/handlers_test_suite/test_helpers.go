package handlers_test_suite

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync/atomic"

	ai "github.com/prasetyoadi/warung-assistant/internal/ai"
	"github.com/prasetyoadi/warung-assistant/internal/auth"
	cart "github.com/prasetyoadi/warung-assistant/internal/cart"
	api "github.com/prasetyoadi/warung-assistant/internal/http"
	handler "github.com/prasetyoadi/warung-assistant/internal/http/handlers"
	"github.com/prasetyoadi/warung-assistant/internal/models"
	"github.com/prasetyoadi/warung-assistant/internal/repo"
	"golang.org/x/crypto/bcrypt"
)

var (
	token       string
	productRepo *repo.InMemoryProductRepository
	settingRepo *repo.InMemorySettingRepository
	scanLogRepo *repo.InMemoryScanLogRepository
	model       *scriptedModel
)

// scriptedModel stands in for the generative model: a canned reply or error,
// recording the parts it was prompted with.
type scriptedModel struct {
	reply string
	err   error
	parts []ai.Part
}

func (m *scriptedModel) Generate(_ context.Context, parts []ai.Part) (string, error) {
	m.parts = parts
	return m.reply, m.err
}

func init() {
	auth.SetSecret("test-secret")
	setupTestRepos("secret")
	r := api.NewRouter()

	var err error
	token, err = generateToken(r, "admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func setupTestRepos(password string) {
	productRepo = repo.NewInMemoryProductRepository()
	handler.SetProductRepo(productRepo)

	settingRepo = repo.NewInMemorySettingRepository()
	handler.SetSettingRepo(settingRepo)

	scanLogRepo = repo.NewInMemoryScanLogRepository()
	handler.SetScanLogRepo(scanLogRepo)

	userRepo := repo.NewInMemoryUserRepository()
	handler.SetUserRepo(userRepo)

	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	userRepo.CreateUser(models.User{Username: "admin", PasswordHash: string(hash)})

	model = &scriptedModel{}
	handler.SetAIProvider(testAIProvider("test-key"))

	handler.SetCartStore(cart.NewMemoryStore())
}

// testAIProvider routes every resolved model to the shared scriptedModel.
func testAIProvider(defaultKey string) *ai.Provider {
	return ai.NewProvider(settingRepo, defaultKey, "test-model", func(_, _ string) ai.Model { return model })
}

func clearAllProducts() {
	productRepo.Clear()
}

func clearAllSettings() {
	settingRepo.Clear()
}

func clearAllScanLogs() {
	scanLogRepo.Clear()
}

func generateToken(r http.Handler, username, password string) (string, error) {
	payload := handler.UserLogin{Username: username, Password: password}
	body, _ := json.Marshal(payload)

	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp handler.LoginResult
	err := json.NewDecoder(w.Body).Decode(&resp)
	if err != nil {
		return "", fmt.Errorf("token decoding failed: %v", err)
	}
	return resp.Token, nil
}

func createProduct(r http.Handler, p handler.ProductRequest) *httptest.ResponseRecorder {
	body, _ := json.Marshal(p)
	req := httptest.NewRequest(http.MethodPost, "/admin/products", bytes.NewReader(body))
	req.Header.Set("Authorization", "Bearer "+token)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// visitorSeq gives each AI request its own client IP so the per-IP rate
// limiter never throttles the suite.
var visitorSeq atomic.Int64

func aiRequest(r http.Handler, path string, payload any) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	n := visitorSeq.Add(1)
	req.RemoteAddr = fmt.Sprintf("10.9.%d.%d:1234", n/200, n%200)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func multipartCSV(csvContent string, filename string) (*bytes.Buffer, string) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, _ := writer.CreateFormFile("file", filename)
	part.Write([]byte(csvContent))

	writer.Close()
	return &buf, writer.FormDataContentType()
}
