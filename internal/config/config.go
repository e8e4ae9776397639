// Package config resolves where helm keeps its deployment files and
// credentials on disk.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shakatoday/helm/internal/deploy"
)

// EnvBasePath overrides the default base directory (~/.helm).
const EnvBasePath = "HELM_BASE_PATH"

const baseDirName = ".helm"

// BaseDir returns the directory holding model_deployments.yaml: the
// HELM_BASE_PATH environment variable when set, ~/.helm otherwise.
func BaseDir() (string, error) {
	if v := os.Getenv(EnvBasePath); v != "" {
		return ExpandPath(v)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, baseDirName), nil
}

// DeploymentsPath returns the path of the deployments file inside base.
func DeploymentsPath(base string) string {
	return filepath.Join(base, deploy.DeploymentsFile)
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	if p == "~" {
		return home, nil
	}
	if strings.HasPrefix(p, "~/") {
		return filepath.Join(home, p[2:]), nil
	}
	// ~user form is not supported.
	return p, nil
}
