package config

// DefaultChangelogURL is the page cursorlog scrapes.
const DefaultChangelogURL = "https://www.cursor.com/changelog"

// Defaults returns the default configuration values.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"api_key":       "",
		"changelog_url": DefaultChangelogURL,
		"state_dir":     "~/.cursorlog/state",
		// Anything shorter reads as a false positive from stray numbers.
		"min_description_length": 10,
		// Descriptions starting with these were captured mid-sentence.
		"fragment_prefixes": []string{"of ", "until "},
	}
}

// GetDefaultConfigTemplate returns a commented config file template.
func GetDefaultConfigTemplate() string {
	return `# cursorlog configuration
# Values here are overridden by CURSORLOG_* environment variables.

api_key: ""                           # Firecrawl API key (or CURSORLOG_API_KEY)
changelog_url: https://www.cursor.com/changelog
state_dir: ~/.cursorlog/state         # Directory for the snapshot file
min_description_length: 10            # Shortest extracted description kept
fragment_prefixes:                    # Mid-sentence capture markers, discarded
  - "of "
  - "until "
`
}
