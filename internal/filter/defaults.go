package filter

// SourceSnapshotFileName is the artifact written by the source profile.
const SourceSnapshotFileName = "repo_snapshot.txt"

// MarkdownSnapshotFileName is the artifact written by the markdown profile.
const MarkdownSnapshotFileName = "md-snapshot.txt"

// LockFileName is the sidecar used to serialize artifact writes.
const LockFileName = ".snapshot.lock"

// ConfigFileName is the optional per-tree configuration file.
const ConfigFileName = ".snapshot.yaml"

// sourceIgnoredDirectoryNames lists directories the source profile never
// descends into: version control, editor metadata, and build or dependency
// output.
var sourceIgnoredDirectoryNames = []string{
	".git",
	".beads",
	".idea",
	".vscode",
	".gradle",
	".claude",
	"build",
	"dist",
	"node_modules",
	"__pycache__",
	"target",
	"pkg",
	"public",
	".vite",
	"cdk.out",
}

// markdownIgnoredDirectoryNames is the smaller denylist used when gathering
// markdown files only.
var markdownIgnoredDirectoryNames = []string{
	".git",
	".beads",
	".idea",
	".vscode",
	".gradle",
	"build",
	"dist",
	"node_modules",
	"__pycache__",
}

// sourceIgnoredExtensions lists lower-cased extensions of binary or generated
// files that never belong in a snapshot.
var sourceIgnoredExtensions = []string{
	".png", ".jpg", ".jpeg", ".gif", ".bmp", ".webp", ".ico", ".svg",
	".mp3", ".wav", ".ogg", ".flac", ".aac",
	".wasm", ".o", ".so", ".dylib", ".a",
	".zip", ".tar", ".gz", ".br",
	".ttf", ".otf", ".woff", ".woff2",
	".lock",
}

// sourceIgnoredFileNames lists exact file names excluded from the source
// profile: lockfiles, OS metadata, prior snapshot artifacts, and this tool's
// own sidecars.
var sourceIgnoredFileNames = []string{
	"package-lock.json",
	"yarn.lock",
	"system-state.json",
	".DS_Store",
	"Cargo.lock",
	".gitkeep",
	SourceSnapshotFileName,
	MarkdownSnapshotFileName,
	LockFileName,
	ConfigFileName,
}

// NewSourceConfig builds the filter configuration for the source profile,
// appending the supplied ignore-file patterns to the static denylists.
func NewSourceConfig(ignorePatterns []string) *Config {
	return NewConfig(sourceIgnoredDirectoryNames, sourceIgnoredExtensions, sourceIgnoredFileNames, ignorePatterns)
}

// NewMarkdownConfig builds the filter configuration for the markdown profile.
// The markdown profile carries no extension or filename denylists and reads
// no ignore-file.
func NewMarkdownConfig() *Config {
	return NewConfig(markdownIgnoredDirectoryNames, nil, nil, nil)
}
