package handlers

import (
	"fmt"
	"sort"
)

// Variant selects the response shape of one workshop deployment style
type Variant struct {
	Name    string
	Message string

	// Headers adds the JSON content type and CORS headers to the response
	Headers bool

	// Timestamp adds the current UTC time to the payload
	Timestamp bool

	// Route adds the request method and path to the payload
	Route bool

	// EchoInput adds the whole event to the payload as "input"
	EchoInput bool

	// ParseBody adds the decoded request body as "received_data"
	ParseBody bool

	// LogEvent logs every received event
	LogEvent bool
}

// Workshop variants, in the order they are presented
var (
	Console = Variant{
		Name:      "console",
		Message:   "Hello from Console Lambda!",
		EchoInput: true,
		LogEvent:  true,
	}
	CLI = Variant{
		Name:      "cli",
		Message:   "Hello from CLI Lambda!",
		Timestamp: true,
		EchoInput: true,
		LogEvent:  true,
	}
	CDK = Variant{
		Name:      "cdk",
		Message:   "Hello from CDK Lambda!",
		Headers:   true,
		Timestamp: true,
		Route:     true,
	}
	SAM = Variant{
		Name:      "sam",
		Message:   "Hello from SAM Lambda!",
		Headers:   true,
		Timestamp: true,
		Route:     true,
		ParseBody: true,
	}
)

var variants = map[string]Variant{
	Console.Name: Console,
	CLI.Name:     CLI,
	CDK.Name:     CDK,
	SAM.Name:     SAM,
}

// LookupVariant returns the variant registered under name
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("unknown handler variant %q", name)
	}
	return v, nil
}

// VariantNames lists the registered variant names in sorted order
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
