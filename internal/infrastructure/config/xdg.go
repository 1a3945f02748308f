package config

import (
	"os"
	"path/filepath"
)

const appName = "bangr"

// Paths are the per-user locations bangr reads and writes.
type Paths struct {
	ConfigDir string // $XDG_CONFIG_HOME/bangr
	DataDir   string // $XDG_DATA_HOME/bangr
}

// ResolvePaths applies the XDG base directory rules. With ENV=dev both
// directories collapse into ./.dev/bangr.
func ResolvePaths() (Paths, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return Paths{}, err
		}
		dev := filepath.Join(cwd, ".dev", appName)
		return Paths{ConfigDir: dev, DataDir: dev}, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, err
	}
	return Paths{
		ConfigDir: filepath.Join(xdgBase("XDG_CONFIG_HOME", home, ".config"), appName),
		DataDir:   filepath.Join(xdgBase("XDG_DATA_HOME", home, ".local", "share"), appName),
	}, nil
}

func xdgBase(env, home string, fallback ...string) string {
	if dir := os.Getenv(env); filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}

func (p Paths) ConfigFile() string {
	return filepath.Join(p.ConfigDir, "config.toml")
}

// SettingsFile is the default store location for backend.
func (p Paths) SettingsFile(backend SettingsBackend) string {
	name := "settings.sqlite"
	if backend == SettingsBackendBolt {
		name = "settings.bolt"
	}
	return filepath.Join(p.DataDir, name)
}

// Ensure creates both directories.
func (p Paths) Ensure() error {
	for _, dir := range []string{p.ConfigDir, p.DataDir} {
		if err := os.MkdirAll(dir, dirPerm); err != nil {
			return err
		}
	}
	return nil
}
