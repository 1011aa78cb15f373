package capability

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// profileFile is the YAML document layout for profile files.
type profileFile struct {
	Profiles []Profile `yaml:"profiles"`
}

// ParseProfiles parses capability profiles from YAML data.
//
//	profiles:
//	  - model: DS1054Z-EDU
//	    channels: 4
//	    referenceSlots: 10
//	    bandwidthLimits: [OFF, 20M]
//	    ...
func ParseProfiles(data []byte) ([]Profile, error) {
	var pf profileFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("failed to parse profiles: %w", err)
	}
	for i := range pf.Profiles {
		if err := pf.Profiles[i].validate(); err != nil {
			return nil, err
		}
	}
	return pf.Profiles, nil
}

// LoadProfiles reads capability profiles from a YAML file.
func LoadProfiles(path string) ([]Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseProfiles(data)
}

// validate rejects profiles that would make indexed collections
// unconstructible.
func (p *Profile) validate() error {
	if p.Model == "" {
		return fmt.Errorf("profile has no model name")
	}
	if p.Channels < 1 {
		return fmt.Errorf("profile %s: channels must be >= 1, got %d", p.Model, p.Channels)
	}
	if p.ReferenceSlots < 1 {
		return fmt.Errorf("profile %s: referenceSlots must be >= 1, got %d", p.Model, p.ReferenceSlots)
	}
	return nil
}
