package theme

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnvTheme names the environment variable holding a theme file path.
const EnvTheme = "GOMDHILITE_THEME"

// themeFileNames are the project theme files we search for, in order of
// preference.
//
//nolint:gochecknoglobals // Read-only lookup table.
var themeFileNames = []string{
	".gomdhilite.yaml",
	".gomdhilite.yml",
	"gomdhilite.yaml",
	"gomdhilite.yml",
}

// vcsRootMarkers are directories that indicate a VCS root, where the
// upward project search stops.
//
//nolint:gochecknoglobals // Read-only lookup table.
var vcsRootMarkers = []string{".git", ".hg", ".svn"}

// Discover resolves which theme file to load: the explicit path when
// given, then $GOMDHILITE_THEME, then a project theme found by walking
// up from workDir, then the user config directory. An empty result means
// no theme file exists and the built-in defaults apply.
func Discover(workDir, explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if env := os.Getenv(EnvTheme); env != "" {
		return env, nil
	}

	project, err := findProjectTheme(workDir)
	if err != nil {
		return "", err
	}
	if project != "" {
		return project, nil
	}

	return findUserTheme(), nil
}

// findProjectTheme searches upward from startDir for a project theme
// file. The search stops at a VCS root, the home directory or the
// filesystem root; a theme sitting in the stopping directory itself is
// still found.
func findProjectTheme(startDir string) (string, error) {
	if startDir == "" {
		var err error
		startDir, err = os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	for {
		for _, name := range themeFileNames {
			path := filepath.Join(dir, name)
			if fileExists(path) {
				return path, nil
			}
		}

		if isVCSRoot(dir) || (home != "" && dir == home) {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// findUserTheme returns the user-level theme under the XDG config
// directory, if one exists.
func findUserTheme() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}

	for _, name := range []string{"theme.yaml", "theme.yml"} {
		path := filepath.Join(configHome, "gomdhilite", name)
		if fileExists(path) {
			return path
		}
	}
	return ""
}

func isVCSRoot(dir string) bool {
	for _, marker := range vcsRootMarkers {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.IsDir() {
			return true
		}
	}
	return false
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
