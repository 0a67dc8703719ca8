package config

import (
	"errors"
	"os"
)

// Config is the top-level configuration struct for gardener.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// GitPath is the git executable to invoke. Empty means "git" on PATH.
	GitPath string `mapstructure:"git_path"`
	// BaseDir is the root under which per-run work directories are created.
	BaseDir string `mapstructure:"base_dir"`
	// Branch is the local branch generated histories are built on.
	Branch string `mapstructure:"branch"`
	// Token is the GitHub token. Prefer TokenEnv over putting it in a file.
	Token string `mapstructure:"token"`
	// TokenEnv is the environment variable consulted when Token is empty.
	TokenEnv string `mapstructure:"token_env"`
	// DefaultLanguage is used when no language weights are supplied.
	DefaultLanguage string          `mapstructure:"default_language"`
	Committer       CommitterConfig `mapstructure:"committer"`
}

// CommitterConfig is the identity stamped on generated commits.
type CommitterConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// Sentinel errors for configuration validation.
var (
	// ErrEmptyBranch indicates the branch name is empty.
	ErrEmptyBranch = errors.New("branch must not be empty")
	// ErrEmptyTokenEnv indicates the token environment variable name is empty.
	ErrEmptyTokenEnv = errors.New("token_env must not be empty")
	// ErrEmptyDefaultLanguage indicates the default language is empty.
	ErrEmptyDefaultLanguage = errors.New("default_language must not be empty")
	// ErrNoToken indicates no token is configured or present in the environment.
	ErrNoToken = errors.New("no token configured; set token_env or the token key")
	// ErrNoCommitter indicates the committer identity is incomplete.
	ErrNoCommitter = errors.New("committer.name and committer.email must be set")
)

// Validate checks invariants every command relies on. Committer identity and
// token presence are checked separately because read-only commands do not
// need them.
func (c *Config) Validate() error {
	if c.Branch == "" {
		return ErrEmptyBranch
	}

	if c.TokenEnv == "" {
		return ErrEmptyTokenEnv
	}

	if c.DefaultLanguage == "" {
		return ErrEmptyDefaultLanguage
	}

	return nil
}

// ResolveToken returns the token from config, falling back to the TokenEnv
// environment variable.
func (c *Config) ResolveToken() (string, error) {
	if c.Token != "" {
		return c.Token, nil
	}

	if token := os.Getenv(c.TokenEnv); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}

// RequireCommitter checks that a full commit identity is configured.
func (c *Config) RequireCommitter() error {
	if c.Committer.Name == "" || c.Committer.Email == "" {
		return ErrNoCommitter
	}

	return nil
}
