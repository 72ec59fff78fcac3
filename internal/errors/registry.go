package errors

import "sort"

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Configuration (T101-T199)

	"T101": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "The given configuration file does not exist or cannot be read.",
		Suggestion: "Check the --config path, or omit it to use tally.json from the working directory.",
	},
	"T102": {
		Category: CategoryConfig,
		Message:  "Configuration parse failed",
		Detail:   "The configuration file is not valid JSON or YAML.",
	},
	"T103": {
		Category: CategoryConfig,
		Message:  "Invalid configuration value",
		Detail:   "A configuration field is out of range or has an unsupported value.",
	},

	// CLI (T201-T299)

	"T201": {
		Category: CategoryCLI,
		Message:  "Invalid flag value",
		Detail:   "A command-line flag has a value outside its allowed range.",
	},
	"T202": {
		Category:   CategoryCLI,
		Message:    "Server failed",
		Detail:     "The HTTP server could not start or stopped with an error.",
		Suggestion: "Check that the address is free, e.g. pick another port with --addr.",
	},

	// Live protocol (T301-T399)

	"T301": {
		Category: CategoryProtocol,
		Message:  "Malformed frame",
		Detail:   "A client frame could not be decoded as a JSON event.",
	},
	"T302": {
		Category: CategoryProtocol,
		Message:  "Unknown event type",
		Detail:   "The client sent an event type the server does not handle.",
	},
	"T303": {
		Category: CategoryProtocol,
		Message:  "Event queue full",
		Detail:   "The session received events faster than it could process them; the event was dropped.",
	},
	"T304": {
		Category: CategoryProtocol,
		Message:  "Handler not found",
		Detail:   "No handler is bound to the hydration ID. The client is probably rendering a stale tree.",
	},

	// Runtime (T401-T499)

	"T401": {
		Category: CategoryRuntime,
		Message:  "Handler panicked",
		Detail:   "An event handler panicked. The panic was recovered and the tree re-rendered.",
	},
	"T402": {
		Category: CategoryRuntime,
		Message:  "Session closed",
		Detail:   "The session was closed before the event could be processed.",
	},
	"T403": {
		Category: CategoryRuntime,
		Message:  "Render failed",
		Detail:   "The component tree could not be rendered to HTML.",
	},
}

// GetAllCodes returns all registered error codes in order.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
