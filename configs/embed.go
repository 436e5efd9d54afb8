// Package configs embeds the stock tuning and demo traces so hosts run
// without a config directory.
package configs

import "embed"

// FS holds tuning.yaml and traces/*.json
//
//go:embed tuning.yaml traces/*.json
var FS embed.FS

// Tuning is the name of the stock tuning file inside FS
const Tuning = "tuning.yaml"

// DemoTrace is the name of the bundled input trace inside FS
const DemoTrace = "traces/demo.json"
