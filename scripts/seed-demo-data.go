package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/dcastro/clientadmin/internal/config"
	"github.com/dcastro/clientadmin/internal/domain"
	"github.com/dcastro/clientadmin/internal/password"
	"github.com/dcastro/clientadmin/internal/repository/postgres"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Seeds a running server with demo data. The bootstrap admin is written
// straight to the database (protected routes need a token before any
// user exists); everything after that goes through the API.
//
// Usage: DATABASE_URL=... JWT_SECRET=... TEMP_PASSWORD=... go run scripts/seed-demo-data.go

const (
	apiBase    = "http://localhost:8080/api/v1"
	adminEmail = "admin@clientadmin.local"
)

type loginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type envelope struct {
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

func bootstrapAdmin(cfg *config.Config) error {
	db, err := postgres.NewConnection(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}

	repos := postgres.NewRepositories(db)
	ctx := context.Background()

	if _, err := repos.Credential.GetByEmail(ctx, adminEmail); err == nil {
		fmt.Println("  ✓ Admin already exists, skipping bootstrap")
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("check admin: %w", err)
	}

	role, err := repos.Role.GetByName(ctx, "admin")
	if errors.Is(err, gorm.ErrRecordNotFound) {
		role = &domain.Role{ID: uuid.New(), Name: "admin"}
		if err := repos.Role.Create(ctx, role); err != nil {
			return fmt.Errorf("create admin role: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("lookup admin role: %w", err)
	}

	now := time.Now()
	admin := &domain.User{
		ID:        uuid.New(),
		Name:      "System",
		LastName:  "Administrator",
		Email:     adminEmail,
		IsActive:  true,
		RoleID:    role.ID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repos.User.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	// The admin starts on the temporary password, like any new account.
	hash, err := password.NewHasher().Hash(cfg.TempPassword)
	if err != nil {
		return fmt.Errorf("hash temporary password: %w", err)
	}
	cred := &domain.Credential{
		ID:           uuid.New(),
		Email:        adminEmail,
		PasswordHash: hash,
		IsActive:     true,
		UserID:       admin.ID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := repos.Credential.Create(ctx, cred); err != nil {
		return fmt.Errorf("create admin credential: %w", err)
	}

	fmt.Printf("  ✓ Admin created: %s\n", adminEmail)
	return nil
}

func login(email, pass string) (string, error) {
	body, _ := json.Marshal(map[string]string{"email": email, "password": pass})

	resp, err := http.Post(apiBase+"/auth/login", "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("login failed (%d): %s", resp.StatusCode, string(bodyBytes))
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("decode failed: %w", err)
	}
	return result.Token, nil
}

func post(token, path string, payload any) (json.RawMessage, error) {
	body, _ := json.Marshal(payload)

	req, err := http.NewRequest(http.MethodPost, apiBase+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("%s failed (%d): %s", path, resp.StatusCode, env.Error)
	}
	return env.Data, nil
}

func createID(token, path string, payload any) (string, error) {
	data, err := post(token, path, payload)
	if err != nil {
		return "", err
	}
	var entity struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(data, &entity); err != nil {
		return "", fmt.Errorf("decode entity: %w", err)
	}
	return entity.ID, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Bootstrapping admin account...")
	if err := bootstrapAdmin(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Bootstrap failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nLogging in with the temporary password...")
	token, err := login(adminEmail, cfg.TempPassword)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("  ✓ Logged in")

	fmt.Println("\nCreating roles...")
	roleIDs := map[string]string{}
	for _, name := range []string{"manager", "staff"} {
		id, err := createID(token, "/roles", map[string]string{"name": name})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create role %s: %v\n", name, err)
			os.Exit(1)
		}
		roleIDs[name] = id
		fmt.Printf("  ✓ Role: %s\n", name)
	}

	fmt.Println("\nCreating staff users...")
	staff := []map[string]string{
		{"name": "Maria", "lastName": "Vera", "email": "maria@clientadmin.local", "dni": "0911111111", "role": roleIDs["manager"]},
		{"name": "Jorge", "lastName": "Luna", "email": "jorge@clientadmin.local", "dni": "0922222222", "role": roleIDs["staff"]},
	}
	for _, u := range staff {
		if _, err := post(token, "/users", u); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create user %s: %v\n", u["email"], err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ User: %s %s\n", u["name"], u["lastName"])
	}

	fmt.Println("\nCreating clients and orders...")
	clients := []map[string]string{
		{"name": "Carlos", "lastName": "Reyes", "dni": "0933333333", "email": "carlos@example.com", "phone": "0990000001"},
		{"name": "Elena", "lastName": "Salas", "dni": "0944444444", "email": "elena@example.com", "phone": "0990000002"},
	}
	for i, c := range clients {
		clientID, err := createID(token, "/clients", c)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create client %s: %v\n", c["email"], err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ Client: %s %s\n", c["name"], c["lastName"])

		if _, err := post(token, "/orders", map[string]any{
			"numberOrder": 2000 + i,
			"total":       99.90,
			"client":      clientID,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create order for %s: %v\n", c["email"], err)
			os.Exit(1)
		}
		fmt.Printf("  ✓ Order %d\n", 2000+i)

		if _, err := post(token, "/comments", map[string]any{
			"message": "seeded demo comment",
			"client":  clientID,
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create comment for %s: %v\n", c["email"], err)
			os.Exit(1)
		}
	}

	fmt.Println("\n" + "============================================================")
	fmt.Println("DEMO DATA SEEDED")
	fmt.Println("============================================================")
	fmt.Printf("\nLogin at %s/auth/login\n", apiBase)
	fmt.Printf("  Admin: %s / <TEMP_PASSWORD>\n", adminEmail)
	fmt.Println("  Staff users log in with the temporary password on first use")
}
