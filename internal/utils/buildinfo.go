package utils

import "runtime/debug"

// unknownVersion is reported when no build metadata is available.
const unknownVersion = "unknown"

// ApplicationVersion returns the module version recorded in the build
// information, or a placeholder for development builds.
func ApplicationVersion() string {
	buildInformation, buildInformationAvailable := debug.ReadBuildInfo()
	if buildInformationAvailable && buildInformation.Main.Version != "" && buildInformation.Main.Version != "(devel)" {
		return buildInformation.Main.Version
	}
	return unknownVersion
}
