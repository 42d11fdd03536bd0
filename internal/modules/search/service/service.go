package service

import (
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"github.com/meilisearch/meilisearch-go"
	"github.com/microcosm-cc/bluemonday"

	"github.com/zaheerabbaspac-hue/PAC/internal/entity"
)

// SearchService keeps the students and notices indexes in sync and issues
// role-scoped tenant tokens so clients can query Meilisearch directly.
type SearchService interface {
	IndexStudent(profile *entity.Profile) error
	DeleteStudent(id string) error
	IndexNotice(notice *entity.Notice) error
	DeleteNotice(id string) error
	GenerateSearchToken(role entity.Role) (string, error)
}

type searchService struct {
	client        meilisearch.ServiceManager
	masterKey     string
	signingKeyUID string
	signingKey    string
	sanitizer     *bluemonday.Policy
}

func NewSearchService(client meilisearch.ServiceManager, masterKey string) SearchService {
	if masterKey == "" {
		log.Println("WARNING: MEILI_MASTER_KEY is not set.")
	}

	s := &searchService{
		client:    client,
		masterKey: masterKey,
		sanitizer: bluemonday.StrictPolicy(),
	}
	s.initIndexes()
	s.initSigningKey()
	return s
}

func (s *searchService) initIndexes() {
	studentFilterable := []any{"class", "section", "status"}
	if _, err := s.client.Index("students").UpdateFilterableAttributes(&studentFilterable); err != nil {
		log.Printf("Failed to update students filterable attributes: %v", err)
	}

	studentSortable := []string{"name", "created_at"}
	if _, err := s.client.Index("students").UpdateSortableAttributes(&studentSortable); err != nil {
		log.Printf("Failed to update students sortable attributes: %v", err)
	}

	noticeFilterable := []any{"audience"}
	if _, err := s.client.Index("notices").UpdateFilterableAttributes(&noticeFilterable); err != nil {
		log.Printf("Failed to update notices filterable attributes: %v", err)
	}

	noticeSortable := []string{"created_at"}
	if _, err := s.client.Index("notices").UpdateSortableAttributes(&noticeSortable); err != nil {
		log.Printf("Failed to update notices sortable attributes: %v", err)
	}

	log.Println("Meilisearch indexes initialized")
}

func (s *searchService) initSigningKey() {
	resp, err := s.client.GetKeys(&meilisearch.KeysQuery{Limit: 20})
	if err != nil {
		log.Printf("Failed to get meilisearch keys: %v", err)
		return
	}

	for _, key := range resp.Results {
		if key.Name == "TenantTokenSigner" {
			s.signingKeyUID = key.UID
			s.signingKey = key.Key
			return
		}
	}

	key, err := s.client.CreateKey(&meilisearch.Key{
		Description: "Key to sign tenant tokens",
		Name:        "TenantTokenSigner",
		Actions:     []string{"search"},
		Indexes:     []string{"students", "notices"},
		ExpiresAt:   time.Now().AddDate(100, 0, 0),
	})
	if err != nil {
		log.Printf("Failed to create signing key: %v", err)
		return
	}

	s.signingKeyUID = key.UID
	s.signingKey = key.Key
	log.Println("Created new Meilisearch signing key")
}

type studentDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Class     string `json:"class"`
	Section   string `json:"section"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
}

type noticeDoc struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	Audience  string `json:"audience"`
	CreatedAt int64  `json:"created_at"`
}

func (s *searchService) cleanForIndex(content string) string {
	content = strings.ReplaceAll(content, "</p>", " ")
	content = strings.ReplaceAll(content, "<br>", " ")
	content = strings.ReplaceAll(content, "</div>", " ")

	cleanText := html.UnescapeString(s.sanitizer.Sanitize(content))
	return strings.Join(strings.Fields(cleanText), " ")
}

func (s *searchService) IndexStudent(profile *entity.Profile) error {
	doc := studentDoc{
		ID:        profile.UserID.String(),
		Name:      profile.Name,
		Email:     profile.Email,
		Class:     profile.Class,
		Section:   profile.Section,
		Status:    string(profile.Status),
		CreatedAt: profile.CreatedAt.Unix(),
	}

	task, err := s.client.Index("students").AddDocuments([]studentDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed student %s, task id: %d", doc.ID, task.TaskUID)
	return nil
}

func (s *searchService) DeleteStudent(id string) error {
	_, err := s.client.Index("students").DeleteDocument(id)
	return err
}

func (s *searchService) IndexNotice(notice *entity.Notice) error {
	doc := noticeDoc{
		ID:        notice.ID.String(),
		Title:     notice.Title,
		Body:      s.cleanForIndex(notice.Body),
		Audience:  notice.Audience,
		CreatedAt: notice.CreatedAt.Unix(),
	}

	task, err := s.client.Index("notices").AddDocuments([]noticeDoc{doc}, strPtr("id"))
	if err != nil {
		return err
	}
	log.Printf("Indexed notice %s, task id: %d", doc.ID, task.TaskUID)
	return nil
}

func (s *searchService) DeleteNotice(id string) error {
	_, err := s.client.Index("notices").DeleteDocument(id)
	return err
}

// GenerateSearchToken scopes what each role can see. Admin tiers search
// everything; teachers additionally see the whole student roster; students
// and parents only see notices addressed to them.
func (s *searchService) GenerateSearchToken(role entity.Role) (string, error) {
	if s.signingKeyUID == "" || s.signingKey == "" {
		return "", fmt.Errorf("signing key not initialized")
	}

	searchRules := map[string]any{}

	switch role {
	case entity.RoleAdmin, entity.RoleSuperAdmin:
		searchRules["students"] = map[string]any{"filter": nil}
		searchRules["notices"] = map[string]any{"filter": nil}
	case entity.RoleTeacher:
		searchRules["students"] = map[string]any{"filter": nil}
		searchRules["notices"] = map[string]any{"filter": "audience IN ['teachers', 'all']"}
	case entity.RoleParent:
		searchRules["notices"] = map[string]any{"filter": "audience IN ['parents', 'all']"}
	case entity.RoleStudent:
		searchRules["notices"] = map[string]any{"filter": "audience IN ['students', 'all']"}
	default:
		return "", fmt.Errorf("no search rules for role %q", role)
	}

	return s.client.GenerateTenantToken(s.signingKeyUID, searchRules, &meilisearch.TenantTokenOptions{
		APIKey:    s.signingKey,
		ExpiresAt: time.Now().Add(24 * time.Hour),
	})
}

func strPtr(s string) *string { return &s }
