package binding

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/rivet-ui/rivet/pkg/core"
	"github.com/rivet-ui/rivet/pkg/errors"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "rivet.yaml"), []byte(contents), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoadOptionalMissingFile(t *testing.T) {
	cfg, err := LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("LoadOptional on empty dir: %v", err)
	}
	if len(cfg.Conventions) != 0 {
		t.Errorf("missing file yielded %d conventions, want 0", len(cfg.Conventions))
	}
}

func TestLoadOptionalParses(t *testing.T) {
	dir := writeConfig(t, `
conventions:
  TextField:
    property: Placeholder
  Button:
    trigger: OnTap
    observe: OnState
`)
	cfg, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	want := map[string]ConventionConfig{
		"TextField": {Property: "Placeholder"},
		"Button":    {Trigger: "OnTap", Observe: "OnState"},
	}
	if !reflect.DeepEqual(cfg.Conventions, want) {
		t.Errorf("Conventions = %+v, want %+v", cfg.Conventions, want)
	}
}

func TestLoadOptionalMalformed(t *testing.T) {
	dir := writeConfig(t, "conventions: [not a map")
	_, err := LoadOptional(dir)
	if err == nil {
		t.Fatal("LoadOptional accepted malformed yaml")
	}
	var rivetErr *errors.RivetError
	if !stderrors.As(err, &rivetErr) {
		t.Fatalf("error type = %T, want *errors.RivetError", err)
	}
	if rivetErr.Kind != errors.KindConfig {
		t.Errorf("error kind = %v, want %v", rivetErr.Kind, errors.KindConfig)
	}
}

type probeWidget struct {
	core.ControlBase
	Label  string
	OnPoke func()
}

func TestApplyOverrides(t *testing.T) {
	Register(probeWidget{}, Convention{Property: "Label"})

	cfg := &Config{Conventions: map[string]ConventionConfig{
		"probeWidget": {Trigger: "OnPoke"},
		"Zephyr":      {Property: "X"},
		"Aurora":      {Property: "Y"},
	}}

	unknown := cfg.ApplyOverrides()
	if want := []string{"Aurora", "Zephyr"}; !reflect.DeepEqual(unknown, want) {
		t.Errorf("unknown names = %v, want %v", unknown, want)
	}

	convention, ok := For(probeWidget{})
	if !ok {
		t.Fatal("probeWidget lost its registration")
	}
	if convention.Property != "Label" || convention.Trigger != "OnPoke" {
		t.Errorf("merged convention = %+v, want Label property with OnPoke trigger", convention)
	}
}

func TestApplyOverridesEmpty(t *testing.T) {
	if got := (*Config)(nil).ApplyOverrides(); got != nil {
		t.Errorf("nil config overrides = %v, want nil", got)
	}
	if got := (&Config{}).ApplyOverrides(); got != nil {
		t.Errorf("empty config overrides = %v, want nil", got)
	}
}
