package cmd

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/kicadtools/sexpedit/kicadsch"
)

// Config is the optional sexpedit.yaml read from the working
// directory. Absence of the file is not an error: every setting then
// keeps its zero value. No command-line flag overrides these settings.
type Config struct {
	// DefaultKicadVersionHint names the hide-token encoding ("6" or
	// "9") to assume when a schematic's own version form doesn't
	// resolve to one, e.g. an unusually old or stripped-down file.
	DefaultKicadVersionHint string `yaml:"default_kicad_version_hint"`
	// PlanDirectories is searched, in order, for a plan file named on
	// the command line that isn't found relative to the working
	// directory.
	PlanDirectories []string `yaml:"plan_directories"`
}

// cfg is the Config loaded once at startup by Execute.
var cfg Config

// LoadConfig reads sexpedit.yaml from dir, returning a zero Config if
// the file does not exist.
func LoadConfig(dir string) (Config, error) {
	path := filepath.Join(dir, "sexpedit.yaml")
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Config{}, nil
	}
	if err != nil {
		return Config{}, err
	}
	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// resolvePlanPath returns path unchanged if it already exists, else
// tries it joined against each of cfg.PlanDirectories in order and
// returns the first that exists. If none exist, path is returned
// unchanged so the caller's own open/read error is the one reported.
func resolvePlanPath(path string) string {
	if _, err := os.Stat(path); err == nil {
		return path
	}
	for _, dir := range cfg.PlanDirectories {
		candidate := filepath.Join(dir, path)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return path
}

// kicadVersionFromHint maps a DefaultKicadVersionHint string to a
// kicadsch.Version, returning VersionUnknown for an empty or
// unrecognized hint.
func kicadVersionFromHint(hint string) kicadsch.Version {
	switch hint {
	case "6":
		return kicadsch.Version6
	case "9":
		return kicadsch.Version9
	default:
		return kicadsch.VersionUnknown
	}
}
