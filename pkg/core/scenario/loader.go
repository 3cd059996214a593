// Package scenario loads assumption sets from human-written files. Scenario
// files are usually HJSON (comments, unquoted keys, optional commas) but
// strict JSON, sloppy JSON, and YAML are accepted too. Validation always runs
// after decode, so a loaded set carries the same guarantees as one built in
// code.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonrepair "github.com/RealAlexandreAI/json-repair"
	hjson "github.com/hjson/hjson-go/v4"
	"gopkg.in/yaml.v2"

	"lbo_valuation/pkg/core/assumption"
)

// Load reads and validates an assumption set from path. The format is chosen
// by extension: .yaml/.yml use YAML, everything else goes through the lenient
// JSON/HJSON chain.
func Load(path string) (*assumption.AssumptionSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("SCENARIO_READ_ERROR: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return Parse(data)
	}
}

// Parse decodes a scenario using multiple strategies, most strict first:
// 1. Standard JSON
// 2. HJSON (comments, unquoted keys and strings)
// 3. JSON repair (trailing commas, unclosed braces) as the last resort
//
// HJSON runs before repair on purpose. Repair is lossy on HJSON input: an
// unquoted string value swallows the following lines into one field, the
// result still decodes, and the zeroed fields fail validation. Keeping repair
// last means it only sees input both stricter decoders rejected.
func Parse(data []byte) (*assumption.AssumptionSet, error) {
	var a assumption.AssumptionSet

	// Try 1: Standard JSON
	if err := json.Unmarshal(data, &a); err == nil {
		return assumption.New(a)
	}

	// Try 2: HJSON
	a = assumption.AssumptionSet{}
	if err := hjson.Unmarshal(data, &a); err == nil {
		return assumption.New(a)
	}

	// Try 3: JSON repair
	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return nil, fmt.Errorf("SCENARIO_PARSE_ERROR: all parsing strategies failed: %v", err)
	}
	a = assumption.AssumptionSet{}
	if err := json.Unmarshal([]byte(repaired), &a); err != nil {
		return nil, fmt.Errorf("SCENARIO_PARSE_ERROR: all parsing strategies failed: %v", err)
	}
	return assumption.New(a)
}

// ParseYAML decodes a YAML scenario and validates it.
func ParseYAML(data []byte) (*assumption.AssumptionSet, error) {
	var a assumption.AssumptionSet
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("SCENARIO_YAML_ERROR: %w", err)
	}
	return assumption.New(a)
}
