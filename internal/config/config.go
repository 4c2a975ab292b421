package config

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig configuración de la aplicación
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
}

// ServerConfig configuración del servidor local
type ServerConfig struct {
	Port    int    `toml:"port"`
	DevMode bool   `toml:"dev_mode"`
	WebDir  string `toml:"web_dir"` // directorio de estáticos; vacío = sólo API
}

// DataConfig origen de datos del maestro
type DataConfig struct {
	MasterFile  string `toml:"master_file"`  // ruta fija del libro maestro
	MasterSheet string `toml:"master_sheet"` // hoja esperada; cae a la primera si no existe
}

// LoadConfigInfo metainformación de la carga de configuración
type LoadConfigInfo struct {
	PortSpecified bool
}

// DefaultConfig configuración por defecto
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20250,
			DevMode: false,
			WebDir:  "web",
		},
		Data: DataConfig{
			MasterFile:  "CIERRE TELEFONICA 1.O.xlsx",
			MasterSheet: "MAESTRO",
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

// GetExeDir directorio del ejecutable
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// LoadConfigWithInfo carga config.toml del directorio del ejecutable y
// devuelve metainformación de la carga
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
			// sin archivo de configuración se usan los valores por defecto
			applyEnv(config)
			return config, info, nil
		}
		return nil, info, err
	}

	info.PortSpecified = isPortSpecifiedInToml(data)

	if err := toml.Unmarshal(data, config); err != nil {
		return nil, info, err
	}

	applyEnv(config)
	return config, info, nil
}

// applyEnv variables de entorno que pisan la configuración
func applyEnv(config *AppConfig) {
	if v := os.Getenv("CIERRE_MASTER_XLSX"); v != "" {
		config.Data.MasterFile = v
	}
	if v := os.Getenv("CIERRE_MASTER_SHEET"); v != "" {
		config.Data.MasterSheet = v
	}
}

// LoadConfig carga config.toml del directorio del ejecutable
func LoadConfig() (*AppConfig, error) {
	config, _, err := LoadConfigWithInfo()
	return config, err
}

// SaveConfig guarda la configuración en config.toml
func SaveConfig(config *AppConfig) error {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	configPath := filepath.Join(exeDir, "config.toml")

	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// ResolveMasterPath ruta absoluta del maestro; las rutas relativas se
// resuelven contra el directorio del ejecutable
func ResolveMasterPath(config *AppConfig) string {
	path := config.Data.MasterFile
	if filepath.IsAbs(path) {
		return path
	}
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, path)
}
