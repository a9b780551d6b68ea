package domain

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Gradient is an immutable palette entry selected by name. VisualClass and
// PreviewClass are the style hooks a client applies; AccentColor is the hex
// color the renderer uses for headings and washes.
type Gradient struct {
	Name         string `json:"name"`
	VisualClass  string `json:"class"`
	PreviewClass string `json:"preview"`
	AccentColor  string `json:"color"`
}

var defaultGradients = []Gradient{
	{Name: "Grey", VisualClass: "from-[#595e62]/70 via-[#595e62]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#595e62] to-[#eeeeee]", AccentColor: "#595e62"},
	{Name: "Blue", VisualClass: "from-[#13a0e9]/70 via-[#13a0e9]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#13a0e9] to-[#f4fcff]", AccentColor: "#13a0e9"},
	{Name: "Green", VisualClass: "from-[#13e946]/70 via-[#13e946]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#13e946] to-[#f4fff7]", AccentColor: "#13e946"},
	{Name: "Purple", VisualClass: "from-[#4617fa]/70 via-[#4617fa]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#4617fa] to-[#fcfcfd]", AccentColor: "#8b5cf6"},
	{Name: "Yellow", VisualClass: "from-[#f1c100]/70 via-[#f1c100]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#f1c100] to-[#fffdf4]", AccentColor: "#f1c100"},
	{Name: "Orange", VisualClass: "from-[#f18200]/70 via-[#f18200]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#f18200] to-[#fffbf4]", AccentColor: "#f18200"},
	{Name: "Red", VisualClass: "from-[#e92713]/70 via-[#e92713]/40 to-transparent", PreviewClass: "bg-gradient-to-r from-[#e92713] to-[#fff5f4]", AccentColor: "#e92713"},
}

// Gradients returns the palette, either the built-in set or the file named by
// GRADIENTS_JSON_PATH. Entries are returned by value; callers must not assume
// shared identity across calls.
func Gradients() []Gradient {
	path := strings.TrimSpace(os.Getenv("GRADIENTS_JSON_PATH"))
	if path == "" {
		return append([]Gradient(nil), defaultGradients...)
	}
	loaded, err := loadGradientsFromFile(path)
	if err != nil || len(loaded) == 0 {
		return append([]Gradient(nil), defaultGradients...)
	}
	return loaded
}

// LookupGradient resolves a palette entry by name (case-insensitive).
// Unknown names fall back to the first entry so a stale client never breaks
// rendering.
func LookupGradient(name string) Gradient {
	all := Gradients()
	for _, g := range all {
		if strings.EqualFold(g.Name, strings.TrimSpace(name)) {
			return g
		}
	}
	return all[0]
}

func loadGradientsFromFile(jsonPath string) ([]Gradient, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		return nil, fmt.Errorf("read file error: %w", err)
	}
	var gradients []Gradient
	if err := json.Unmarshal(data, &gradients); err != nil {
		return nil, fmt.Errorf("json unmarshal error: %w", err)
	}
	return gradients, nil
}
