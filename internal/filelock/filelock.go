// Package filelock serializes snapshot artifact writes across processes and
// makes the writes atomic.
package filelock

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// ArtifactLock guards the snapshot artifact with an advisory file lock, so
// two concurrent runs over the same root cannot interleave their writes.
type ArtifactLock struct {
	fileLock *flock.Flock
	lockPath string
}

// NewArtifactLock creates a lock backed by the sidecar file at lockPath.
func NewArtifactLock(lockPath string) *ArtifactLock {
	return &ArtifactLock{fileLock: flock.New(lockPath), lockPath: lockPath}
}

// Lock blocks until the exclusive lock is held.
func (artifactLock *ArtifactLock) Lock() error {
	if lockError := artifactLock.fileLock.Lock(); lockError != nil {
		return fmt.Errorf("acquiring lock on %s: %w", artifactLock.lockPath, lockError)
	}
	return nil
}

// Unlock releases the lock.
func (artifactLock *ArtifactLock) Unlock() error {
	if unlockError := artifactLock.fileLock.Unlock(); unlockError != nil {
		return fmt.Errorf("releasing lock on %s: %w", artifactLock.lockPath, unlockError)
	}
	return nil
}

// AtomicWrite writes data to targetPath through a temporary file in the same
// directory followed by a rename, so readers never observe a partial
// artifact. The original file is untouched if any step fails.
func AtomicWrite(targetPath string, data []byte) error {
	targetDirectory := filepath.Dir(targetPath)
	temporaryFile, createError := os.CreateTemp(targetDirectory, ".snapshot-*")
	if createError != nil {
		return fmt.Errorf("creating temporary file in %s: %w", targetDirectory, createError)
	}
	temporaryPath := temporaryFile.Name()

	if _, writeError := temporaryFile.Write(data); writeError != nil {
		temporaryFile.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("writing %s: %w", temporaryPath, writeError)
	}
	if chmodError := temporaryFile.Chmod(0o644); chmodError != nil {
		temporaryFile.Close()
		os.Remove(temporaryPath)
		return fmt.Errorf("setting permissions on %s: %w", temporaryPath, chmodError)
	}
	if closeError := temporaryFile.Close(); closeError != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("closing %s: %w", temporaryPath, closeError)
	}
	if renameError := os.Rename(temporaryPath, targetPath); renameError != nil {
		os.Remove(temporaryPath)
		return fmt.Errorf("renaming %s to %s: %w", temporaryPath, targetPath, renameError)
	}
	return nil
}
