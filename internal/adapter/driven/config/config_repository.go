package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/diillson/azure-usage-report-go/internal/domain/repository"
	"github.com/diillson/azure-usage-report-go/internal/shared/types"
	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

// ConfigRepositoryImpl implementa o ConfigRepository.
type ConfigRepositoryImpl struct{}

// NewConfigRepository cria uma nova implementação do ConfigRepository.
func NewConfigRepository() repository.ConfigRepository {
	return &ConfigRepositoryImpl{}
}

// LoadConfigFile carrega um arquivo de configuração TOML, YAML ou JSON.
// Caminhos relativos de input_dir e dir são resolvidos a partir do diretório do arquivo.
func (r *ConfigRepositoryImpl) LoadConfigFile(filePath string) (*types.Config, error) {
	fileExtension := strings.ToLower(filepath.Ext(filePath))

	fileInfo, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("error accessing config file: %w", err)
	}

	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%s is a directory, not a file", filePath)
	}

	fileData, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var config types.Config

	switch fileExtension {
	case ".toml":
		if err := toml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing TOML file: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing YAML file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(fileData, &config); err != nil {
			return nil, fmt.Errorf("error parsing JSON file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config file format: %s", fileExtension)
	}

	if err := normalizeConfig(&config, filepath.Dir(filePath)); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", filePath, err)
	}

	return &config, nil
}

// normalizeConfig valida os períodos e ajusta caminhos e listas.
func normalizeConfig(config *types.Config, baseDir string) error {
	for i, p := range config.Periods {
		label := strings.TrimSpace(p.Label)
		file := strings.TrimSpace(p.File)
		if label == "" || file == "" {
			return fmt.Errorf("%w: periods[%d] needs both label and file", types.ErrInvalidPeriod, i)
		}
		config.Periods[i] = types.PeriodConfig{Label: label, File: file}
	}

	if config.InputDir != "" && !filepath.IsAbs(config.InputDir) {
		config.InputDir = filepath.Join(baseDir, config.InputDir)
	}
	if config.Dir != "" && !filepath.IsAbs(config.Dir) {
		config.Dir = filepath.Join(baseDir, config.Dir)
	}

	reportTypes := make([]string, 0, len(config.ReportType))
	for _, rt := range config.ReportType {
		if rt = strings.ToLower(strings.TrimSpace(rt)); rt != "" {
			reportTypes = append(reportTypes, rt)
		}
	}
	config.ReportType = reportTypes

	if config.TopResources < 0 {
		config.TopResources = 0
	}

	return nil
}
