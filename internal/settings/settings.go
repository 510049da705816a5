package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"reflection-generator/internal/diagnostic"
)

// File and directory defaults.
const (
	FileName         = "ReflectionGeneratorConfig.yaml"
	ResourcesDirName = "Resources"
	DefaultConfigDir = "Assets/ReflectionGenerator/Editor/Resources"
	DefaultOutputDir = "Assets/ReflectionGenerator/Editor/Wrappers"

	dirPerm  = 0o755
	filePerm = 0o644
)

// ErrInvalidConfig is returned by Save when validation reports problems.
var ErrInvalidConfig = errors.New("invalid generator config")

// Config controls how accessor names are built and where wrappers go.
type Config struct {
	// RenameFields runs field names through the naming transform.
	RenameFields bool `yaml:"rename_fields"`
	// GetPrefix and GetPostfix surround getter names.
	GetPrefix  string `yaml:"get_prefix"`
	GetPostfix string `yaml:"get_postfix"`
	// SetPrefix and SetPostfix surround setter names.
	SetPrefix  string `yaml:"set_prefix"`
	SetPostfix string `yaml:"set_postfix"`
	// OutputDirectory is where generated wrappers are written.
	OutputDirectory string `yaml:"output_directory"`
}

// Default returns the configuration used when nothing has been saved.
func Default() Config {
	return Config{
		RenameFields:    true,
		GetPrefix:       "Get",
		SetPrefix:       "Set",
		OutputDirectory: DefaultOutputDir,
	}
}

// Validate checks the invariants generation relies on.
func (c Config) Validate() diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	if c.GetPrefix == "" && c.GetPostfix == "" {
		d.AddWarning(diagnostic.CodeEmptyGetAffixes,
			`"Get" method prefix and postfix can't be both empty`, "get_prefix")
	}

	if c.SetPrefix == "" && c.SetPostfix == "" {
		d.AddWarning(diagnostic.CodeEmptySetAffixes,
			`"Set" method prefix and postfix can't be both empty`, "set_prefix")
	}

	if c.OutputDirectory == "" {
		d.AddWarning(diagnostic.CodeEmptyOutputDir,
			"the generated wrappers save directory must be set", "output_directory")
	}

	return d
}

// ValidateConfigDir checks that dir is a usable location for the settings file.
func ValidateConfigDir(dir string) diagnostic.Diagnostics {
	var d diagnostic.Diagnostics

	switch {
	case dir == "":
		d.AddWarning(diagnostic.CodeEmptyConfigDir,
			"the config data save directory must be set", "config_dir")
	case filepath.Base(filepath.Clean(dir)) != ResourcesDirName:
		d.AddWarning(diagnostic.CodeConfigDirLocation,
			fmt.Sprintf("config file should be placed in a %q folder root", ResourcesDirName), dir)
	}

	return d
}

// Path returns the settings file path inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Load reads the settings saved in dir, or returns Default() when there are none.
func Load(dir string) (Config, error) {
	data, err := os.ReadFile(Path(dir))
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	if err != nil {
		return Config{}, fmt.Errorf("failed to read settings file %s: %w", Path(dir), err)
	}

	return Parse(data)
}

// Parse parses YAML settings. Keys absent from data keep their default values.
func Parse(data []byte) (Config, error) {
	cfg := Default()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	return cfg, nil
}

// Marshal serializes settings to YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Check validates cfg together with the directory it would be saved in.
func Check(dir string, cfg Config) diagnostic.Diagnostics {
	d := cfg.Validate()
	d.Merge(ValidateConfigDir(dir))

	return d
}

// Save validates cfg and dir and writes the settings file. Validation
// problems are returned wrapped in ErrInvalidConfig and nothing is written.
func Save(dir string, cfg Config) (string, error) {
	d := Check(dir, cfg)
	if err := d.WarningError(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	data, err := Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	path := Path(dir)
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return "", fmt.Errorf("failed to write settings file %s: %w", path, err)
	}

	return path, nil
}
