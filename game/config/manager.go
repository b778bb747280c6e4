package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigNotFound = errors.New("configuration not found")
	ErrInvalidConfig  = errors.New("invalid configuration")
)

var extensions = []string{".yaml", ".yml", ".json"}

// Manager loads presets from a directory and caches them.
type Manager struct {
	configDir string
	logger    zerolog.Logger
	configs   map[string]*Preset
	mu        sync.RWMutex
}

// ValidationResult is the outcome of validating one preset file.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// NewManager creates a manager reading presets from configDir.
func NewManager(configDir string, logger zerolog.Logger) (*Manager, error) {
	info, err := os.Stat(configDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("config directory does not exist: %s", configDir)
		}
		return nil, fmt.Errorf("failed to stat config directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("config path is not a directory: %s", configDir)
	}

	return &Manager{
		configDir: configDir,
		logger:    logger.With().Str("component", "config").Logger(),
		configs:   make(map[string]*Preset),
	}, nil
}

// configID strips a known extension from name.
func configID(name string) string {
	for _, ext := range extensions {
		if strings.HasSuffix(name, ext) {
			return strings.TrimSuffix(name, ext)
		}
	}
	return name
}

// LoadConfig loads a preset by id, with or without its file extension.
func (m *Manager) LoadConfig(name string) (*Preset, error) {
	id := configID(name)

	m.mu.RLock()
	if preset, exists := m.configs[id]; exists {
		m.mu.RUnlock()
		return preset, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if preset, exists := m.configs[id]; exists {
		return preset, nil
	}

	path, err := m.findFile(id)
	if err != nil {
		return nil, err
	}

	preset, err := readPreset(path)
	if err != nil {
		return nil, err
	}

	m.configs[id] = preset
	m.logger.Debug().Str("config_id", id).Str("path", path).Msg("loaded preset")
	return preset, nil
}

func (m *Manager) findFile(id string) (string, error) {
	for _, ext := range extensions {
		path := filepath.Join(m.configDir, id+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", ErrConfigNotFound
}

// readPreset decodes, defaults and validates a preset file.
func readPreset(path string) (*Preset, error) {
	preset, err := decodePreset(path)
	if err != nil {
		return nil, err
	}
	if err := Validate(preset); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return preset, nil
}

// decodePreset reads a preset file and applies defaults without validating.
func decodePreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var preset Preset
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(data, &preset)
	} else {
		err = yaml.Unmarshal(data, &preset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	preset.ApplyDefaults()
	return &preset, nil
}

// presetFiles lists the preset files in the config directory, sorted.
func (m *Manager) presetFiles() ([]string, error) {
	entries, err := os.ReadDir(m.configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read config directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if configID(entry.Name()) != entry.Name() {
			files = append(files, entry.Name())
		}
	}
	sort.Strings(files)
	return files, nil
}

// ListConfigs returns the valid presets in the config directory.
func (m *Manager) ListConfigs() ([]*ConfigInfo, error) {
	files, err := m.presetFiles()
	if err != nil {
		return nil, err
	}

	var configs []*ConfigInfo
	for _, file := range files {
		id := configID(file)
		preset, err := m.LoadConfig(id)
		if err != nil {
			m.logger.Warn().Err(err).Str("file", file).Msg("skipping invalid preset")
			continue
		}

		configs = append(configs, &ConfigInfo{
			Filename:    file,
			ConfigID:    id,
			Name:        preset.Name,
			Description: preset.Description,
			Game:        preset.Game,
			Width:       preset.Width,
		})
	}
	return configs, nil
}

// ValidateAll checks every preset file without caching it.
func (m *Manager) ValidateAll() ([]ValidationResult, error) {
	files, err := m.presetFiles()
	if err != nil {
		return nil, err
	}

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		result := ValidationResult{File: file, Valid: true}

		preset, err := decodePreset(filepath.Join(m.configDir, file))
		if err == nil {
			err = Validate(preset)
		}
		for _, e := range multierr.Errors(err) {
			result.Valid = false
			result.Errors = append(result.Errors, e.Error())
		}
		results = append(results, result)
	}
	return results, nil
}

// GetDefault returns the preset named after kind from the config directory,
// or the built-in preset when there is none.
func (m *Manager) GetDefault(kind Kind) *Preset {
	preset, err := m.LoadConfig(string(kind))
	if err == nil && preset.Game == kind {
		return preset
	}
	if err != nil && !errors.Is(err, ErrConfigNotFound) {
		m.logger.Warn().Err(err).Str("game", string(kind)).Msg("falling back to built-in preset")
	}
	return DefaultPreset(kind)
}

// RefreshCache drops every cached preset.
func (m *Manager) RefreshCache() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs = make(map[string]*Preset)
}

// Builtin serves only the built-in presets. It stands in for a Manager when
// no config directory is available.
type Builtin struct{}

func (Builtin) LoadConfig(name string) (*Preset, error) {
	return nil, ErrConfigNotFound
}

func (Builtin) ListConfigs() ([]*ConfigInfo, error) {
	return nil, nil
}

func (Builtin) GetDefault(kind Kind) *Preset {
	return DefaultPreset(kind)
}
