package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/boostithub/portfolio-backend/internal/data/repos"
	"github.com/boostithub/portfolio-backend/internal/domain"
	"github.com/boostithub/portfolio-backend/internal/http/handlers"
	errs "github.com/boostithub/portfolio-backend/internal/platform/errors"
	"github.com/boostithub/portfolio-backend/internal/platform/logger"
	"github.com/boostithub/portfolio-backend/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fakeContentService struct {
	profile    *services.ProfileView
	profileErr error
	skills     []domain.SkillCategory
	skillsErr  error
}

func (f *fakeContentService) GetProfile(ctx context.Context) (*services.ProfileView, error) {
	return f.profile, f.profileErr
}

func (f *fakeContentService) GetSkills(ctx context.Context) ([]domain.SkillCategory, error) {
	return f.skills, f.skillsErr
}

func (f *fakeContentService) GetExperience(ctx context.Context) ([]domain.Experience, error) {
	return nil, nil
}

func (f *fakeContentService) GetProjects(ctx context.Context) ([]domain.Project, error) {
	return nil, nil
}

func (f *fakeContentService) GetTestimonials(ctx context.Context) ([]domain.Testimonial, error) {
	return nil, nil
}

type fakeContactService struct {
	result    *services.SubmitResult
	submitErr error
	inputs    []domain.ContactMessageInput
	rows      []domain.ContactMessage
}

func (f *fakeContactService) Submit(ctx context.Context, in domain.ContactMessageInput) (*services.SubmitResult, error) {
	f.inputs = append(f.inputs, in)
	return f.result, f.submitErr
}

func (f *fakeContactService) ListMessages(ctx context.Context) ([]domain.ContactMessage, error) {
	return f.rows, nil
}

func testRouter(content services.ContentService, contact services.ContactService) *gin.Engine {
	return NewRouter(RouterConfig{
		ContentHandler: handlers.NewContentHandler(content, "Jennifer Lowe Portfolio API", "1.0.0"),
		ContactHandler: handlers.NewContactHandler(contact),
		HealthHandler:  handlers.NewHealthHandler(),
	})
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var decoded map[string]any
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &decoded); err != nil {
			t.Fatalf("decode %s %s response: %v (%s)", method, path, err, rec.Body.String())
		}
	}
	return rec, decoded
}

func TestRootReportsServiceNameAndVersion(t *testing.T) {
	r := testRouter(&fakeContentService{}, &fakeContactService{})
	rec, body := doJSON(t, r, http.MethodGet, "/api/", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	if body["message"] != "Jennifer Lowe Portfolio API" || body["version"] != "1.0.0" {
		t.Fatalf("body: %v", body)
	}
}

func TestHealthcheck(t *testing.T) {
	r := testRouter(&fakeContentService{}, &fakeContactService{})
	rec, _ := doJSON(t, r, http.MethodGet, "/healthcheck", "")
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("status=%d body=%q", rec.Code, rec.Body.String())
	}
}

func TestGetProfileHappyPath(t *testing.T) {
	content := &fakeContentService{profile: &services.ProfileView{
		Name: "Jennifer Ann Lowe",
		About: services.AboutView{
			Title: "About Me",
			Story: []string{"one"},
		},
	}}
	r := testRouter(content, &fakeContactService{})

	rec, body := doJSON(t, r, http.MethodGet, "/api/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d (%s)", rec.Code, rec.Body.String())
	}
	if body["name"] != "Jennifer Ann Lowe" {
		t.Fatalf("name: %v", body["name"])
	}
	if _, hasCamel := body["profileImage"]; !hasCamel {
		t.Fatalf("profileImage key missing: %v", body)
	}
	about, _ := body["about"].(map[string]any)
	if about["title"] != "About Me" {
		t.Fatalf("about: %v", body["about"])
	}
}

func TestGetProfileNotFound(t *testing.T) {
	content := &fakeContentService{profileErr: fmt.Errorf("profile information: %w", errs.ErrNotFound)}
	r := testRouter(content, &fakeContactService{})

	rec, body := doJSON(t, r, http.MethodGet, "/api/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status: %d", rec.Code)
	}
	if body["error"] != "Profile information not found" {
		t.Fatalf("body: %v", body)
	}
}

func TestGetSkillsStoreFailure(t *testing.T) {
	content := &fakeContentService{skillsErr: fmt.Errorf("server selection timeout")}
	r := testRouter(content, &fakeContactService{})

	rec, body := doJSON(t, r, http.MethodGet, "/api/skills", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", rec.Code)
	}
	msg, _ := body["error"].(string)
	if !strings.HasPrefix(msg, "Error fetching skills:") {
		t.Fatalf("error: %q", msg)
	}
}

func TestSubmitContact(t *testing.T) {
	contact := &fakeContactService{result: &services.SubmitResult{
		Success: true,
		Message: "Thank you for your message! I'll get back to you within 24 hours.",
		ID:      "65f0",
	}}
	r := testRouter(&fakeContentService{}, contact)

	payload := `{"name":"Jane Q Public","email":"jane@example.com","subject":"Hi","message":"Hello there","service_type":"General Inquiry"}`
	rec, body := doJSON(t, r, http.MethodPost, "/api/contact", payload)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d (%s)", rec.Code, rec.Body.String())
	}
	if body["success"] != true || body["id"] != "65f0" {
		t.Fatalf("body: %v", body)
	}
	if len(contact.inputs) != 1 || contact.inputs[0].ServiceType != "General Inquiry" {
		t.Fatalf("service inputs: %+v", contact.inputs)
	}
}

func TestSubmitContactRejectsInvalidBody(t *testing.T) {
	contact := &fakeContactService{}
	r := testRouter(&fakeContentService{}, contact)

	cases := []struct {
		name string
		body string
	}{
		{name: "missing_fields", body: `{"name":"Jane"}`},
		{name: "bad_email", body: `{"name":"Jane","email":"not-an-email","subject":"Hi","message":"x","service_type":"General Inquiry"}`},
		{name: "malformed_json", body: `{"name":`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, body := doJSON(t, r, http.MethodPost, "/api/contact", tc.body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status: %d (%s)", rec.Code, rec.Body.String())
			}
			if body["error"] != "invalid_request" {
				t.Fatalf("body: %v", body)
			}
		})
	}
	if len(contact.inputs) != 0 {
		t.Fatalf("service called on invalid input: %+v", contact.inputs)
	}
}

func TestSubmitContactServiceFailure(t *testing.T) {
	contact := &fakeContactService{submitErr: fmt.Errorf("persist contact message: write concern failed")}
	r := testRouter(&fakeContentService{}, contact)

	payload := `{"name":"Jane","email":"jane@example.com","subject":"Hi","message":"x","service_type":"General Inquiry"}`
	rec, body := doJSON(t, r, http.MethodPost, "/api/contact", payload)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status: %d", rec.Code)
	}
	msg, _ := body["error"].(string)
	if !strings.HasPrefix(msg, "Error submitting contact form:") {
		t.Fatalf("error: %q", msg)
	}
}

func TestListMessages(t *testing.T) {
	contact := &fakeContactService{rows: []domain.ContactMessage{{ID: "m-1", Status: domain.ContactStatusNew}}}
	r := testRouter(&fakeContentService{}, contact)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/messages", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: %d", rec.Code)
	}
	var rows []domain.ContactMessage
	if err := json.Unmarshal(rec.Body.Bytes(), &rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != "m-1" {
		t.Fatalf("rows: %+v", rows)
	}
}

func TestNewServerServesConfiguredRoutes(t *testing.T) {
	s := NewServer(RouterConfig{
		ContentHandler: handlers.NewContentHandler(&fakeContentService{}, "Jennifer Lowe Portfolio API", "1.0.0"),
		ContactHandler: handlers.NewContactHandler(&fakeContactService{}),
		HealthHandler:  handlers.NewHealthHandler(),
	})
	if s == nil || s.Engine == nil {
		t.Fatalf("NewServer returned an empty server")
	}

	req := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)
	rec := httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("healthcheck via server: status=%d body=%q", rec.Code, rec.Body.String())
	}

	req = httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec = httptest.NewRecorder()
	s.Engine.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("root via server: status=%d", rec.Code)
	}
}

type memProfileRepo struct{ row *domain.Profile }

func (m *memProfileRepo) Get(ctx context.Context) (*domain.Profile, error) { return m.row, nil }

func (m *memProfileRepo) Insert(ctx context.Context, row *domain.Profile) error {
	m.row = row
	return nil
}

type memAboutRepo struct{ row *domain.AboutSection }

func (m *memAboutRepo) Get(ctx context.Context) (*domain.AboutSection, error) { return m.row, nil }

func (m *memAboutRepo) Insert(ctx context.Context, row *domain.AboutSection) error {
	m.row = row
	return nil
}

type memSkillRepo struct{ rows []domain.SkillCategory }

func (m *memSkillRepo) List(ctx context.Context) ([]domain.SkillCategory, error) {
	return m.rows, nil
}

func (m *memSkillRepo) Insert(ctx context.Context, row *domain.SkillCategory) error {
	m.rows = append(m.rows, *row)
	return nil
}

type memExperienceRepo struct{}

func (memExperienceRepo) List(ctx context.Context) ([]domain.Experience, error) { return nil, nil }

type memProjectRepo struct{}

func (memProjectRepo) ListFeatured(ctx context.Context) ([]domain.Project, error) { return nil, nil }

type memTestimonialRepo struct{}

func (memTestimonialRepo) ListFeatured(ctx context.Context) ([]domain.Testimonial, error) {
	return nil, nil
}

// Profile reads before any seed has run return not-found; after seeding,
// the default content comes back through the real read stack.
func TestProfileEndToEndThroughSeeder(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}

	profiles := &memProfileRepo{}
	about := &memAboutRepo{}
	skills := &memSkillRepo{}
	content := services.NewContentService(
		log, profiles, about, skills,
		memExperienceRepo{}, memProjectRepo{}, memTestimonialRepo{},
		nil, 0,
	)
	r := testRouter(content, &fakeContactService{})

	rec, body := doJSON(t, r, http.MethodGet, "/api/profile", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("before seed: status=%d (%s)", rec.Code, rec.Body.String())
	}
	if body["error"] != "Profile information not found" {
		t.Fatalf("before seed: body=%v", body)
	}

	if err := repos.NewSeeder(log, profiles, about, skills).Run(context.Background()); err != nil {
		t.Fatalf("seed: %v", err)
	}

	rec, body = doJSON(t, r, http.MethodGet, "/api/profile", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("after seed: status=%d (%s)", rec.Code, rec.Body.String())
	}
	if body["name"] != "Jennifer Ann Lowe" {
		t.Fatalf("after seed: name=%v", body["name"])
	}
	aboutView, _ := body["about"].(map[string]any)
	if aboutView["title"] != "About Me" {
		t.Fatalf("after seed: about=%v", body["about"])
	}
}
