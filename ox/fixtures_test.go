package ox

import (
	"context"
	"os"
	"testing"

	"gopkg.in/yaml.v3"
)

type scenario struct {
	Name    string `yaml:"name"`
	Source  string `yaml:"source"`
	Want    string `yaml:"want"`
	WantErr string `yaml:"wantErr"`
}

func TestScenarios(t *testing.T) {
	data, err := os.ReadFile("testdata/scenarios.yaml")
	if err != nil {
		t.Fatalf("read fixtures: %v", err)
	}

	var scenarios []scenario
	if err := yaml.Unmarshal(data, &scenarios); err != nil {
		t.Fatalf("decode fixtures: %v", err)
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			engine := NewEngine(Config{StepQuota: 100000})
			val, err := engine.Execute(context.Background(), sc.Source)

			if sc.WantErr != "" {
				if err == nil {
					t.Fatalf("expected %s, got %s", sc.WantErr, val.String())
				}
				if !IsKind(err, ErrorKind(sc.WantErr)) {
					t.Fatalf("expected %s, got %v", sc.WantErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("execute: %v", err)
			}
			if val.String() != sc.Want {
				t.Fatalf("expected %q, got %q", sc.Want, val.String())
			}
		})
	}
}
