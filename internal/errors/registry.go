package errors

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category   Category
	Message    string
	Detail     string
	Suggestion string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// Runtime errors (E001-E099)

	"E001": {
		Category:   CategoryRuntime,
		Message:    "Computed cell has no sources",
		Detail:     "A computed cell was created without any source cells, so its value can never change.",
		Suggestion: "Pass the cells the compute function reads as sources to NewComputed.",
	},
	"E002": {
		Category:   CategoryRuntime,
		Message:    "Binding released twice",
		Detail:     "Release was called on a binding that had already been released.",
		Suggestion: "Call Release exactly once, or guard it with a sync.Once.",
	},

	// Config errors (E100-E199)

	"E100": {
		Category:   CategoryConfig,
		Message:    "Configuration file not found",
		Detail:     "No simplistic.json was found in the project directory.",
		Suggestion: "Create a simplistic.json, or run with flags instead of a config file.",
	},
	"E101": {
		Category:   CategoryConfig,
		Message:    "Invalid configuration file",
		Detail:     "simplistic.json exists but could not be parsed.",
		Suggestion: "Check that simplistic.json is valid JSON.",
	},
	"E102": {
		Category:   CategoryConfig,
		Message:    "Could not write configuration file",
		Detail:     "Saving simplistic.json failed.",
		Suggestion: "Check directory permissions and available disk space.",
	},

	// Server errors (E200-E299)

	"E200": {
		Category:   CategoryServer,
		Message:    "Server failed to start",
		Detail:     "The demo server could not bind its listen address.",
		Suggestion: "Check that the port is free, or choose another with --port.",
	},
	"E201": {
		Category:   CategoryServer,
		Message:    "Server shutdown failed",
		Detail:     "The server did not shut down cleanly within the shutdown timeout.",
		Suggestion: "Increase the shutdown timeout, or check for stuck sessions.",
	},

	// Demo errors (E300-E399)

	"E300": {
		Category:   CategoryDemo,
		Message:    "Unknown demo",
		Detail:     "The requested demo is not registered.",
		Suggestion: "List registered demos on the index page at /.",
	},
	"E301": {
		Category:   CategoryDemo,
		Message:    "Duplicate demo registration",
		Detail:     "A demo with this name is already registered.",
		Suggestion: "Give each demo a unique name.",
	},
}

// GetAllCodes returns all registered error codes.
func GetAllCodes() []string {
	codes := make([]string, 0, len(registry))
	for code := range registry {
		codes = append(codes, code)
	}
	return codes
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	template, ok := registry[code]
	return template, ok
}

// Register adds a custom error template to the registry.
func Register(code string, template ErrorTemplate) {
	registry[code] = template
}
