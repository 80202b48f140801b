// Package filex holds the small file helpers of the CLI: the local data
// directory and avatar images read from disk.
package filex

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// MaxAvatarSize is the largest avatar image accepted for upload.
const MaxAvatarSize = 2 << 20

// EnsureDir creates dir, relative paths being resolved against the working
// directory, and returns its absolute path.
func EnsureDir(dir string) (string, error) {
	if !filepath.IsAbs(dir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getwd: %w", err)
		}
		dir = filepath.Join(cwd, dir)
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// ReadAvatar reads an image file and sniffs its content type. Files larger
// than MaxAvatarSize and non-image content are rejected.
func ReadAvatar(path string) (data []byte, contentType string, err error) {
	fi, err := os.Stat(path)
	if err != nil {
		return nil, "", fmt.Errorf("stat %s: %w", path, err)
	}
	if fi.IsDir() {
		return nil, "", fmt.Errorf("%s is a directory", path)
	}
	if fi.Size() > MaxAvatarSize {
		return nil, "", fmt.Errorf("%s is %d bytes, the limit is %d", path, fi.Size(), MaxAvatarSize)
	}

	data, err = os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read %s: %w", path, err)
	}
	contentType = http.DetectContentType(data)
	if !strings.HasPrefix(contentType, "image/") {
		return nil, "", fmt.Errorf("%s is not an image (%s)", path, contentType)
	}
	return data, contentType, nil
}
