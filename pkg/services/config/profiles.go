package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/ini.v1"
)

// Profile is a named reporting endpoint read from a profiles file:
//
//	[staging]
//	endpoint = https://staging.example.com/reports/test-data
//	results_path = payload.results
//	timeout = 30s
type Profile struct {
	Name        string
	Endpoint    string
	ResultsPath string
	Timeout     time.Duration
}

// DefaultProfilesPath is ~/.pnlcfg, or .pnlcfg when the home directory is unknown.
func DefaultProfilesPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".pnlcfg"
	}
	return filepath.Join(home, ".pnlcfg")
}

type Registry interface {
	GetProfiles(ctx context.Context) ([]string, error)
	GetProfile(ctx context.Context, name string) (*Profile, error)
}

type cfgRegistry struct {
	cfg *ini.File
}

func NewRegistry(path string) (Registry, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, err
	}
	return &cfgRegistry{cfg: cfg}, nil
}

func (cr *cfgRegistry) GetProfiles(_ context.Context) ([]string, error) {
	var profiles []string
	for _, section := range cr.cfg.Sections() {
		if len(section.Keys()) > 0 {
			profiles = append(profiles, section.Name())
		}
	}
	return profiles, nil
}

func (cr *cfgRegistry) GetProfile(_ context.Context, name string) (*Profile, error) {
	section, err := cr.cfg.GetSection(name)
	if err != nil {
		return nil, fmt.Errorf("profile %s not found", name)
	}

	endpoint := section.Key("endpoint").String()
	if endpoint == "" {
		return nil, fmt.Errorf("profile %s has no endpoint", name)
	}

	profile := &Profile{
		Name:        name,
		Endpoint:    endpoint,
		ResultsPath: section.Key("results_path").String(),
	}
	if section.HasKey("timeout") {
		timeout, err := section.Key("timeout").Duration()
		if err != nil {
			return nil, fmt.Errorf("profile %s: invalid timeout: %w", name, err)
		}
		profile.Timeout = timeout
	}
	return profile, nil
}
