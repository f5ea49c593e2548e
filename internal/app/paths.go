package app

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appDirName  = "runnutri"
	envFileName = "runnutri.env"
)

// DefaultEnvPath is where runnutri looks for its optional dotenv file.
func DefaultEnvPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, appDirName, envFileName), nil
}

// FileExists reports whether path names an existing regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return false, fmt.Errorf("%s is a directory", path)
	}
	return true, nil
}
