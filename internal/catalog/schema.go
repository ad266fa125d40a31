package catalog

// Config represents the top-level structure of jurisdictions.yaml
type Config struct {
	Jurisdictions []JurisdictionProps `yaml:"jurisdictions"`
}

// JurisdictionProps describes one ported-license jurisdiction.
type JurisdictionProps struct {
	Slug string `yaml:"slug"` // lowercase URL slug, ex: "us"
	Name string `yaml:"name"` // display name, ex: "United States"
}
