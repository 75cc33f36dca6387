// Package seeds embeds the Risor scripts that populate a fresh catalog.
package seeds

import "embed"

// Default is the path of the standard seed script within FS.
const Default = "default.risor"

// FS holds every .risor file in this directory.
//
//go:embed *.risor
var FS embed.FS
