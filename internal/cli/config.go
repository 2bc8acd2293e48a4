package cli

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/astralfront/supremacy/internal/api/response"
	"github.com/astralfront/supremacy/internal/client"
)

// Config holds CLI configuration
type Config struct {
	ServerURL string
	ClientID  string
	TokenFile string
	Output    string
	Verbose   bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL: getEnvOrDefault("SUPREMACY_SERVER", "http://localhost:8080"),
		ClientID:  os.Getenv("SUPREMACY_CLIENT_ID"),
		TokenFile: getEnvOrDefault("SUPREMACY_TOKEN_FILE", defaultConfigFile("tokens.json")),
		Output:    "text",
		Verbose:   false,
	}
}

// ResolveClientID returns the configured client id, minting and
// persisting a stable one for this machine on first use
func (c *Config) ResolveClientID() (string, error) {
	if c.ClientID != "" {
		return c.ClientID, nil
	}

	idFile := defaultConfigFile("client_id")
	if data, err := os.ReadFile(idFile); err == nil && len(data) > 0 {
		c.ClientID = string(data)
		return c.ClientID, nil
	}

	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	c.ClientID = "cli-" + hex.EncodeToString(buf)

	if err := os.MkdirAll(filepath.Dir(idFile), 0700); err != nil {
		return "", err
	}
	if err := os.WriteFile(idFile, []byte(c.ClientID), 0600); err != nil {
		return "", err
	}
	return c.ClientID, nil
}

// fileTokenStore persists the token pair as JSON on disk
type fileTokenStore struct {
	path string
}

var _ client.TokenStore = (*fileTokenStore)(nil)

func newFileTokenStore(path string) *fileTokenStore {
	return &fileTokenStore{path: path}
}

// Load reads the stored pair; a missing file means not logged in
func (s *fileTokenStore) Load() (*response.TokenPair, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var pair response.TokenPair
	if err := json.Unmarshal(data, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

// Save writes the pair with owner-only permissions
func (s *fileTokenStore) Save(pair response.TokenPair) error {
	data, err := json.Marshal(pair)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

func defaultConfigFile(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".supremacy", name)
	}
	return filepath.Join(home, ".supremacy", name)
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
