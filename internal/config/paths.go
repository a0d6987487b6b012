package config

import (
	"os"
	"path/filepath"
)

// Config file lookup constants.
const (
	ConfigName     = "quizkit"
	ConfigType     = "yaml"
	ConfigDirName  = "config"
	ConfigPathEnv  = "QUIZKIT_CONFIG"
	EnvPrefix      = "QUIZKIT"
	ConfigFileName = ConfigName + ".yml"
)

// SearchPaths returns the directories searched for quizkit.yml.
func SearchPaths(root string) []string {
	if root == "" {
		root = "."
	}
	return []string{root, filepath.Join(root, ConfigDirName)}
}

// ExplicitPath returns the config path named by QUIZKIT_CONFIG, if any.
func ExplicitPath() string {
	return os.Getenv(ConfigPathEnv)
}
