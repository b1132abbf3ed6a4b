// Package seed embeds the default package catalog shipped with the server.
package seed

import _ "embed"

// Name is the file name of the embedded definition. Its extension selects the decoder.
const Name = "packages.yaml"

// Packages holds the embedded catalog definition
//
//go:embed packages.yaml
var Packages []byte
