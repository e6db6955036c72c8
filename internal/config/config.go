package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/darkron008/Tip-and-hours-Calculator/internal/parser"
)

// AppConfig is the application configuration, loaded from config.toml next
// to the executable.
type AppConfig struct {
	Server     ServerConfig     `toml:"server"`
	Data       DataConfig       `toml:"data"`
	Heuristics HeuristicsConfig `toml:"heuristics"`
	Clock      ClockConfig      `toml:"clock"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig holds storage paths.
type DataConfig struct {
	DataDir string `toml:"data_dir"`
}

// HeuristicsConfig exposes the spreadsheet-shape detection knobs so they can
// be tuned without a rebuild.
type HeuristicsConfig struct {
	// FallbackYear completes year-less date labels ("28-Jun") in
	// transposed sales reports.
	FallbackYear int `toml:"fallback_year"`
}

// ClockConfig names the default timesheet columns, matching the common
// "Employee Name / Clock In Date / Elapsed Hours" export.
type ClockConfig struct {
	EmployeeColumn string `toml:"employee_column"`
	DateColumn     string `toml:"date_column"`
	HoursColumn    string `toml:"hours_column"`
	DateLayout     string `toml:"date_layout"`
}

// LoadConfigInfo carries metadata about how the configuration was loaded.
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8090,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir: "data",
		},
		Heuristics: HeuristicsConfig{
			FallbackYear: parser.DefaultFallbackYear,
		},
		Clock: ClockConfig{
			EmployeeColumn: "Employee Name",
			DateColumn:     "Clock In Date",
			HoursColumn:    "Elapsed Hours",
			DateLayout:     parser.DefaultClockDateLayout,
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}
	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}
	_, ok = serverMap["port"]
	return ok
}

// GetExeDir returns the directory of the running executable.
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo loads config.toml and reports which fields were
// explicitly specified, so CLI flags can respect the file's precedence.
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	configPath := filepath.Join(exeDir, "config.toml")

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	return config, info, nil
}

// LoadConfig loads config.toml from the executable's directory.
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig writes the configuration back to config.toml.
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(filepath.Join(exeDir, "config.toml"), data, 0644)
}

// EnsureDataDir creates the data directory (and its subdirectories) next to
// the executable.
func EnsureDataDir(config *AppConfig) (string, error) {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}

	dataDir := filepath.Join(exeDir, config.Data.DataDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, subdir := range []string{"uploads", "exports"} {
		if err := os.MkdirAll(filepath.Join(dataDir, subdir), 0755); err != nil {
			return "", err
		}
	}

	return dataDir, nil
}
