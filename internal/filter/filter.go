package filter

import (
	"path"
	"strings"
)

// Config is the immutable visibility policy for one snapshot run. Build it
// once, then share it between the walker and the collector; it is never
// mutated during a walk.
type Config struct {
	ignoredDirectoryNames map[string]struct{}
	ignoredExtensions     map[string]struct{}
	ignoredFileNames      map[string]struct{}
	ignorePatterns        []string
}

// NewConfig assembles a Config from the static denylists and the ordered
// ignore-file patterns. Extensions are stored case-folded; patterns are
// stored with a trailing path separator stripped so directory-style entries
// match either way.
func NewConfig(directoryNames []string, extensions []string, fileNames []string, ignorePatterns []string) *Config {
	configuration := &Config{
		ignoredDirectoryNames: make(map[string]struct{}, len(directoryNames)),
		ignoredExtensions:     make(map[string]struct{}, len(extensions)),
		ignoredFileNames:      make(map[string]struct{}, len(fileNames)),
		ignorePatterns:        make([]string, 0, len(ignorePatterns)),
	}
	for _, directoryName := range directoryNames {
		configuration.ignoredDirectoryNames[directoryName] = struct{}{}
	}
	for _, extensionValue := range extensions {
		configuration.ignoredExtensions[strings.ToLower(extensionValue)] = struct{}{}
	}
	for _, fileName := range fileNames {
		configuration.ignoredFileNames[fileName] = struct{}{}
	}
	for _, patternValue := range ignorePatterns {
		configuration.ignorePatterns = append(configuration.ignorePatterns, strings.TrimSuffix(patternValue, pathSeparator))
	}
	return configuration
}

// ShouldSkip reports whether the entry at relativePath is excluded from the
// snapshot. The first matching check wins: (1) directory name denylist,
// (2) case-folded extension denylist, (3) exact filename denylist,
// (4) ignore patterns against the root-relative path. Directories and files
// share the pattern check, so a skipped directory prunes its whole subtree.
func (configuration *Config) ShouldSkip(relativePath string, isDirectory bool) bool {
	entryName := path.Base(relativePath)

	if isDirectory {
		if _, ignored := configuration.ignoredDirectoryNames[entryName]; ignored {
			return true
		}
		return MatchesAny(relativePath, configuration.ignorePatterns)
	}

	if _, ignored := configuration.ignoredExtensions[strings.ToLower(path.Ext(entryName))]; ignored {
		return true
	}
	if _, ignored := configuration.ignoredFileNames[entryName]; ignored {
		return true
	}
	return MatchesAny(relativePath, configuration.ignorePatterns)
}

// Patterns returns the normalized ignore patterns held by the configuration.
func (configuration *Config) Patterns() []string {
	return configuration.ignorePatterns
}
