// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/sheetsplit/pkg/classify"
	"github.com/walteh/sheetsplit/pkg/retry"
)

// Defaults applied by Validate when the corresponding field is unset.
const (
	DefaultWorkers   = 5
	DefaultShareRole = "writer"
)

// DefaultExcludeNames hides the translation table itself from the list of
// documents to migrate.
var DefaultExcludeNames = []string{"*Workout Translations*"}

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 🤝 ShareArgs names the collaborator every created document is shared with
type ShareArgs struct {
	Email string `json:"email" yaml:"email" hcl:"email,optional"`                   // Collaborator account, empty disables sharing
	Role  string `json:"role,omitempty" yaml:"role,omitempty" hcl:"role,optional"` // Permission role, defaults to writer
}

// 🔍 ClassifyArgs overrides the markers used to recognize non-workout sheets
type ClassifyArgs struct {
	TemplateMarker   string   `json:"template_marker,omitempty" yaml:"template_marker,omitempty" hcl:"template_marker,optional"`
	SkipDescriptions []string `json:"skip_descriptions,omitempty" yaml:"skip_descriptions,omitempty" hcl:"skip_descriptions,optional"`
}

// 🔄 RetryArgs overrides the remote-call retry policy
type RetryArgs struct {
	MaxAttempts  int     `json:"max_attempts,omitempty" yaml:"max_attempts,omitempty" hcl:"max_attempts,optional"`
	InitialDelay string  `json:"initial_delay,omitempty" yaml:"initial_delay,omitempty" hcl:"initial_delay,optional"` // e.g. "500ms"
	MaxDelay     string  `json:"max_delay,omitempty" yaml:"max_delay,omitempty" hcl:"max_delay,optional"`             // e.g. "10s"
	Multiplier   float64 `json:"multiplier,omitempty" yaml:"multiplier,omitempty" hcl:"multiplier,optional"`

	initialDelay time.Duration
	maxDelay     time.Duration
}

// 📚 Config represents the complete configuration
type Config struct {
	SourceFolderID     string        `json:"source_folder_id,omitempty" yaml:"source_folder_id,omitempty" hcl:"source_folder_id,optional"`
	DestFolderID       string        `json:"dest_folder_id,omitempty" yaml:"dest_folder_id,omitempty" hcl:"dest_folder_id,optional"`
	TranslationSheetID string        `json:"translation_sheet_id,omitempty" yaml:"translation_sheet_id,omitempty" hcl:"translation_sheet_id,optional"`
	CredentialsFile    string        `json:"credentials_file,omitempty" yaml:"credentials_file,omitempty" hcl:"credentials_file,optional"`
	Workers            int           `json:"workers,omitempty" yaml:"workers,omitempty" hcl:"workers,optional"`
	ExcludeNames       []string      `json:"exclude_names,omitempty" yaml:"exclude_names,omitempty" hcl:"exclude_names,optional"`
	Share              *ShareArgs    `json:"share,omitempty" yaml:"share,omitempty" hcl:"share,block"`
	Classify           *ClassifyArgs `json:"classify,omitempty" yaml:"classify,omitempty" hcl:"classify,block"`
	Retry              *RetryArgs    `json:"retry,omitempty" yaml:"retry,omitempty" hcl:"retry,block"`
}

// 🎯 Load loads the configuration from a file, layers environment overrides
// on top, and validates the result
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	// Read config file
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	// Get parser
	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	// Parse config
	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}

	cfg.ApplyEnv()

	// Validate
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 Default returns a configuration built purely from defaults and the
// environment, for runs without a config file
func Default() (*Config, error) {
	cfg := &Config{}
	cfg.ApplyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

// 📥 ApplyEnv overrides fields from SHEETSPLIT_* environment variables. A
// .env file in the working directory is loaded first if present, so local
// runs can keep folder IDs out of the shell history.
func (cfg *Config) ApplyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("SHEETSPLIT_SOURCE_FOLDER_ID"); v != "" {
		cfg.SourceFolderID = v
	}
	if v := os.Getenv("SHEETSPLIT_DEST_FOLDER_ID"); v != "" {
		cfg.DestFolderID = v
	}
	if v := os.Getenv("SHEETSPLIT_TRANSLATION_SHEET_ID"); v != "" {
		cfg.TranslationSheetID = v
	}
	if v := os.Getenv("SHEETSPLIT_CREDENTIALS_FILE"); v != "" {
		cfg.CredentialsFile = v
	}
	if v := os.Getenv("SHEETSPLIT_SHARE_EMAIL"); v != "" {
		if cfg.Share == nil {
			cfg.Share = &ShareArgs{}
		}
		cfg.Share.Email = v
	}
}

// 🔍 Validate checks the structural fields and fills in defaults. Folder and
// sheet IDs are not checked here: the command layer prompts for missing ones
// and calls ValidateRun once prompting is done.
func (cfg *Config) Validate() error {
	if cfg.Workers < 0 {
		return errors.Errorf("workers must not be negative, got %d", cfg.Workers)
	}
	if cfg.Workers == 0 {
		cfg.Workers = DefaultWorkers
	}

	if len(cfg.ExcludeNames) == 0 {
		cfg.ExcludeNames = DefaultExcludeNames
	}

	if cfg.Share != nil && cfg.Share.Role == "" {
		cfg.Share.Role = DefaultShareRole
	}

	if cfg.Retry != nil {
		if err := cfg.Retry.validate(); err != nil {
			return errors.Errorf("validating retry settings: %w", err)
		}
	}

	return nil
}

// 🔍 ValidateRun checks that everything a migration run needs is present.
// Called after interactive prompting has had its chance to fill the gaps.
func (cfg *Config) ValidateRun() error {
	if cfg.SourceFolderID == "" {
		return errors.Errorf("source_folder_id is required")
	}
	if cfg.DestFolderID == "" {
		return errors.Errorf("dest_folder_id is required")
	}
	if cfg.TranslationSheetID == "" {
		return errors.Errorf("translation_sheet_id is required")
	}
	return nil
}

func (r *RetryArgs) validate() error {
	if r.MaxAttempts < 0 {
		return errors.Errorf("max_attempts must not be negative, got %d", r.MaxAttempts)
	}
	if r.InitialDelay != "" {
		d, err := time.ParseDuration(r.InitialDelay)
		if err != nil {
			return errors.Errorf("parsing initial_delay: %w", err)
		}
		r.initialDelay = d
	}
	if r.MaxDelay != "" {
		d, err := time.ParseDuration(r.MaxDelay)
		if err != nil {
			return errors.Errorf("parsing max_delay: %w", err)
		}
		r.maxDelay = d
	}
	if r.Multiplier < 0 {
		return errors.Errorf("multiplier must not be negative, got %v", r.Multiplier)
	}
	return nil
}

// 🔄 RetryConfig returns the remote-call retry policy, starting from the
// package defaults and applying any configured overrides.
func (cfg *Config) RetryConfig() retry.Config {
	rc := retry.DefaultConfig()
	if cfg.Retry == nil {
		return rc
	}
	if cfg.Retry.MaxAttempts > 0 {
		rc.MaxAttempts = cfg.Retry.MaxAttempts
	}
	if cfg.Retry.initialDelay > 0 {
		rc.InitialDelay = cfg.Retry.initialDelay
	}
	if cfg.Retry.maxDelay > 0 {
		rc.MaxDelay = cfg.Retry.maxDelay
	}
	if cfg.Retry.Multiplier > 0 {
		rc.Multiplier = cfg.Retry.Multiplier
	}
	return rc
}

// 🔍 ClassifyRules returns the record classification rules, configured
// overrides included.
func (cfg *Config) ClassifyRules() classify.Rules {
	rules := classify.DefaultRules()
	if cfg.Classify == nil {
		return rules
	}
	if cfg.Classify.TemplateMarker != "" {
		rules.TemplateMarker = cfg.Classify.TemplateMarker
	}
	if len(cfg.Classify.SkipDescriptions) > 0 {
		rules.SkipDescriptions = cfg.Classify.SkipDescriptions
	}
	return rules
}

// 🤝 ShareEmail returns the collaborator email, or empty when sharing is
// disabled.
func (cfg *Config) ShareEmail() string {
	if cfg.Share == nil {
		return ""
	}
	return cfg.Share.Email
}

// 🤝 ShareRole returns the permission role for shared documents.
func (cfg *Config) ShareRole() string {
	if cfg.Share == nil || cfg.Share.Role == "" {
		return DefaultShareRole
	}
	return cfg.Share.Role
}

// 📝 String returns a string representation of the config
func (cfg *Config) String() string {
	source := cfg.SourceFolderID
	if source == "" {
		source = "<unset>"
	}
	dest := cfg.DestFolderID
	if dest == "" {
		dest = "<unset>"
	}
	return fmt.Sprintf("%s -> %s (workers: %d)", source, dest, cfg.Workers)
}
