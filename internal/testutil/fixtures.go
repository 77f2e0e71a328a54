package testutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// CreateRole inserts a role, reusing an existing one with the same name
func CreateRole(t *testing.T, db *gorm.DB, name string) *domain.Role {
	t.Helper()

	role := &domain.Role{ID: uuid.New(), Name: name}
	if err := db.Where("name = ?", name).FirstOrCreate(role).Error; err != nil {
		t.Fatalf("failed to create role: %v", err)
	}
	return role
}

// AccountBuilder creates test users with their credential using a builder pattern
type AccountBuilder struct {
	name       string
	lastName   string
	email      string
	password   string
	roleName   string
	userActive bool
	credActive bool
}

// NewAccountBuilder creates a new AccountBuilder with default values
func NewAccountBuilder() *AccountBuilder {
	suffix := uuid.New().String()[:8]
	return &AccountBuilder{
		name:       "Test",
		lastName:   "User " + suffix,
		email:      fmt.Sprintf("testuser_%s@example.com", suffix),
		password:   "testpassword123",
		roleName:   "admin",
		userActive: true,
		credActive: true,
	}
}

func (b *AccountBuilder) WithName(name, lastName string) *AccountBuilder {
	b.name = name
	b.lastName = lastName
	return b
}

func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.email = email
	return b
}

func (b *AccountBuilder) WithPassword(password string) *AccountBuilder {
	b.password = password
	return b
}

func (b *AccountBuilder) WithRole(roleName string) *AccountBuilder {
	b.roleName = roleName
	return b
}

func (b *AccountBuilder) WithInactiveUser() *AccountBuilder {
	b.userActive = false
	return b
}

func (b *AccountBuilder) WithInactiveCredential() *AccountBuilder {
	b.credActive = false
	return b
}

// Build creates the user and its credential in the database and returns
// them with the raw password
func (b *AccountBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, *domain.Credential, string) {
	t.Helper()

	role := CreateRole(t, db, b.roleName)

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(b.password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	now := time.Now()
	user := &domain.User{
		ID:        uuid.New(),
		Name:      b.name,
		LastName:  b.lastName,
		Email:     b.email,
		IsActive:  b.userActive,
		RoleID:    role.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	cred := &domain.Credential{
		ID:           uuid.New(),
		Email:        b.email,
		PasswordHash: string(hashedPassword),
		IsActive:     b.credActive,
		UserID:       user.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := db.Create(cred).Error; err != nil {
		t.Fatalf("failed to create credential: %v", err)
	}

	return user, cred, b.password
}

// LoginResponse matches the API login response
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// BuildAndAuthenticate creates an account and logs it in via the API,
// returning the user and a bearer token
func (b *AccountBuilder) BuildAndAuthenticate(t *testing.T, ts *TestServer) (*domain.User, string) {
	t.Helper()

	user, _, rawPassword := b.Build(t, ts.DB.DB)

	reqBody := map[string]string{
		"email":    b.email,
		"password": rawPassword,
	}
	body, _ := json.Marshal(reqBody)

	resp, err := http.Post(ts.APIURL("/auth/login"), "application/json", bytes.NewBuffer(body))
	if err != nil {
		t.Fatalf("failed to log in: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("unexpected status code: %d", resp.StatusCode)
	}

	var loginResp LoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&loginResp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	return user, loginResp.Token
}

// CreateClient inserts a client with generated contact data
func CreateClient(t *testing.T, db *gorm.DB) *domain.Client {
	t.Helper()

	suffix := uuid.New().String()[:8]
	now := time.Now()
	client := &domain.Client{
		ID:        uuid.New(),
		Name:      "Client",
		LastName:  "Test " + suffix,
		DNI:       "1234567890",
		Email:     fmt.Sprintf("client_%s@example.com", suffix),
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := db.Create(client).Error; err != nil {
		t.Fatalf("failed to create client: %v", err)
	}
	return client
}
