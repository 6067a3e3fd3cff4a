package template

// LoadRegistry returns the built-in template registry. Pure and
// deterministic; the same mapping is produced on every call.
func LoadRegistry() map[Language]Template {
	return map[Language]Template{
		LanguageRust: {
			Name:        "rust-starter",
			Language:    LanguageRust,
			Repository:  "https://github.com/forgelabs/rust-starter",
			Description: "Comprehensive Rust starter with CI and project conventions",
			FilesToCustomize: []FileCustomization{
				{
					Path: "Cargo.toml",
					Replacements: []Replacement{
						{Placeholder: "my-project", Value: ValueSource{Kind: ValueProjectName}},
					},
				},
				{
					Path: "README.md",
					Replacements: []Replacement{
						{Placeholder: "yourusername", Value: ValueSource{Kind: ValueAuthorName}},
						{Placeholder: "my-rust-project", Value: ValueSource{Kind: ValueProjectName}},
					},
				},
			},
		},
		LanguageGo: {
			Name:        "go-starter",
			Language:    LanguageGo,
			Repository:  "https://github.com/forgelabs/go-starter",
			Description: "Go project starter with linting and test scaffolding",
			FilesToCustomize: []FileCustomization{
				{
					Path: "go.mod",
					Replacements: []Replacement{
						{
							Placeholder: "github.com/yourusername/my-project",
							Value:       CustomValue("github.com/user/project"),
						},
					},
				},
				{
					Path: "README.md",
					Replacements: []Replacement{
						{Placeholder: "yourusername", Value: ValueSource{Kind: ValueAuthorName}},
						{Placeholder: "my-go-project", Value: ValueSource{Kind: ValueProjectName}},
					},
				},
			},
		},
	}
}
