package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Policy PolicyConfig `toml:"policy"`
	Excel  ExcelConfig  `toml:"excel"`
	Log    LogConfig    `toml:"log"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// PolicyConfig 兼岗策略配置
type PolicyConfig struct {
	// 兼岗人数上限 = 缺勤人数 - DoubleBookOffset
	DoubleBookOffset int `toml:"double_book_offset"`
}

// ExcelConfig 技能表读写配置
type ExcelConfig struct {
	Sheet     string `toml:"sheet"`      // 为空时读取活动工作表
	OutputDir string `toml:"output_dir"` // 导出结果目录
}

// LogConfig 日志配置
type LogConfig struct {
	Level string `toml:"level"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path          string
	PortSpecified bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Policy: PolicyConfig{
			DoubleBookOffset: 2,
		},
		Excel: ExcelConfig{
			Sheet:     "",
			OutputDir: "exports",
		},
		Log: LogConfig{
			Level: "info",
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

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultPath 默认配置文件路径：可执行文件同目录下的 config.toml
func DefaultPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		// 无法获取可执行文件目录，使用当前目录
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadFile 从指定路径加载配置并返回元信息；文件不存在时返回默认配置
func LoadFile(configPath string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{Path: configPath}
	config := DefaultConfig()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, info, err
		}
		// 配置文件不存在，使用默认配置
	} else {
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	}

	applyEnv(config, &info)
	return config, info, nil
}

// LoadConfigWithInfo 从 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadFile(DefaultPath())
}

// applyEnv 环境变量覆盖
func applyEnv(config *AppConfig, info *LoadConfigInfo) {
	if v := os.Getenv("WA_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil && port > 0 {
			config.Server.Port = port
			info.PortSpecified = true
		}
	}
	if v := os.Getenv("WA_DOUBLE_BOOK_OFFSET"); v != "" {
		if offset, err := strconv.Atoi(v); err == nil {
			config.Policy.DoubleBookOffset = offset
		}
	}
	if v := os.Getenv("WA_LOG_LEVEL"); v != "" {
		config.Log.Level = v
	}
	if v := os.Getenv("WA_EXCEL_SHEET"); v != "" {
		config.Excel.Sheet = v
	}
}

// SaveConfig 保存配置到指定路径
func SaveConfig(configPath string, config *AppConfig) error {
	data, err := toml.Marshal(config)
	if err != nil {
		return err
	}
	return os.WriteFile(configPath, data, 0644)
}

// EnsureOutputDir 确保导出目录存在；相对路径相对于可执行文件目录
func EnsureOutputDir(config *AppConfig) (string, error) {
	dir := config.Excel.OutputDir
	if !filepath.IsAbs(dir) {
		exeDir, err := GetExeDir()
		if err != nil {
			exeDir = "."
		}
		dir = filepath.Join(exeDir, dir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
