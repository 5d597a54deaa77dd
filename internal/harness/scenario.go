package harness

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"

	"github.com/roach88/rovers/internal/engine"
	"github.com/roach88/rovers/internal/parse"
)

//go:embed scenario.cue
var scenarioSchema string

// Scenario defines a robot run and what it must produce.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Policy is "abort" (default) or "skip".
	Policy string `yaml:"policy,omitempty"`

	// RunID fixes the run id. Defaults to testutil.DefaultRunID.
	RunID string `yaml:"run_id,omitempty"`

	// Input holds the raw input lines, grid line first.
	Input []string `yaml:"input"`

	// Expect checks the output lines and the rejecting error code.
	Expect *Expect `yaml:"expect,omitempty"`

	// Assertions validate robots, scents, the trace and the final state.
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Expect specifies the expected output of a run.
type Expect struct {
	// Output lists the expected output lines in order.
	// nil skips the check; an empty list expects no output.
	Output []string `yaml:"output"`

	// Error is the E2xx code the run must reject with. Empty means the run
	// must not reject anything.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates one aspect of a finished run.
type Assertion struct {
	// Type is one of the Assert* constants.
	Type string `yaml:"type"`

	// Robot is the 1-based robot index (robot, trace_count).
	Robot int `yaml:"robot,omitempty"`

	// Status is "active" or "lost" (robot).
	Status string `yaml:"status,omitempty"`

	// Pose is "x y B" (robot).
	Pose string `yaml:"pose,omitempty"`

	// X and Y locate a cell (scent).
	X int `yaml:"x,omitempty"`
	Y int `yaml:"y,omitempty"`

	// Present defaults to true (scent).
	Present *bool `yaml:"present,omitempty"`

	// Kind is a trace event kind (trace_count).
	Kind string `yaml:"kind,omitempty"`

	// Count is the expected number (scent_count, trace_count).
	Count int `yaml:"count,omitempty"`

	// Lost and Robots are expected row counts in the store (final_state).
	Lost   *int `yaml:"lost,omitempty"`
	Robots *int `yaml:"robots,omitempty"`
}

// Assertion type constants.
const (
	AssertRobot      = "robot"
	AssertScent      = "scent"
	AssertScentCount = "scent_count"
	AssertTraceCount = "trace_count"
	AssertFinalState = "final_state"
)

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed, contains
// unknown fields, fails the CUE schema or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := validateSchema(raw); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateSchema checks the decoded document against #Scenario.
func validateSchema(raw map[string]any) error {
	if _, ok := raw["input"]; !ok {
		return fmt.Errorf("input is required")
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(scenarioSchema, cue.Filename("scenario.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Scenario"))
	doc := ctx.Encode(raw)
	if err := doc.Err(); err != nil {
		return fmt.Errorf("encode scenario: %w", err)
	}

	if err := def.Unify(doc).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	return nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if _, err := engine.ParsePolicy(s.Policy); err != nil {
		return err
	}

	if s.Expect == nil && len(s.Assertions) == 0 {
		return fmt.Errorf("expect or assertions is required")
	}

	if s.Expect != nil && s.Expect.Error != "" && !parse.IsKnownCode(s.Expect.Error) {
		return fmt.Errorf("expect.error: unknown code %q", s.Expect.Error)
	}

	for i, assertion := range s.Assertions {
		if err := validateAssertion(i, &assertion); err != nil {
			return err
		}
	}

	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertRobot:
		if a.Robot < 1 {
			return fmt.Errorf("assertions[%d]: robot index is required for robot", index)
		}
		if a.Status == "" && a.Pose == "" {
			return fmt.Errorf("assertions[%d]: status or pose is required for robot", index)
		}
		if a.Pose != "" {
			if _, err := parse.Position(a.Pose); err != nil {
				return fmt.Errorf("assertions[%d]: pose: %w", index, err)
			}
		}
	case AssertScent, AssertScentCount:
	case AssertTraceCount:
		if a.Kind == "" {
			return fmt.Errorf("assertions[%d]: kind is required for trace_count", index)
		}
	case AssertFinalState:
		if a.Lost == nil && a.Robots == nil {
			return fmt.Errorf("assertions[%d]: lost or robots is required for final_state", index)
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown type %q", index, a.Type)
	}

	return nil
}
