package preflight

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckToolsDirectory checks the managed install directory. A missing
// directory passes when its nearest existing parent is writable, because the
// installer creates it on demand.
func CheckToolsDirectory(path string) Result {
	const name = "Tools directory"
	if strings.TrimSpace(path) == "" {
		return Result{Name: name, Detail: "not configured"}
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		parent := nearestExisting(filepath.Dir(path))
		if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, parent, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (created on first install)", path)}
	}
	return CheckDirectoryAccess(name, path)
}

// CheckOutputDirectory verifies that the directory holding outputPath accepts
// new files.
func CheckOutputDirectory(outputPath string) Result {
	return CheckDirectoryAccess("Output directory", filepath.Dir(outputPath))
}

// CheckInstaller reports whether the first word of an install recipe can be
// executed.
func CheckInstaller(_ context.Context, recipe []string) Result {
	const name = "Installer"
	if len(recipe) == 0 || strings.TrimSpace(recipe[0]) == "" {
		return Result{Name: name, Detail: "no install recipe configured"}
	}
	path, err := exec.LookPath(recipe[0])
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s not found on PATH (needed to install goalign)", recipe[0])}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

func nearestExisting(dir string) string {
	for {
		if _, err := os.Stat(dir); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return dir
		}
		dir = parent
	}
}
