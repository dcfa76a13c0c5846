package testing

import (
	"testing"

	"github.com/rivet-ui/rivet/pkg/core"
)

// Tester provides isolated widget testing without a host. It drives the
// same inflate and build phases as a real embedding.
type Tester struct {
	buildOwner *core.BuildOwner
	root       core.Element
}

// NewTester creates a tester. Call Cleanup() when done, or use
// NewTesterWithT() instead.
func NewTester() *Tester {
	return &Tester{
		buildOwner: core.NewBuildOwner(),
	}
}

// NewTesterWithT creates a tester that auto-cleans up via t.Cleanup().
// This is the recommended constructor for tests.
func NewTesterWithT(t *testing.T) *Tester {
	tester := NewTester()
	t.Cleanup(tester.Cleanup)
	return tester
}

// Cleanup unmounts the tree. Must be called if not using NewTesterWithT.
func (t *Tester) Cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// Mount mounts (or remounts) a widget and flushes pending builds.
func (t *Tester) Mount(widget core.Widget) core.Element {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
	t.root = core.Inflate(widget, t.buildOwner)
	if t.root != nil {
		t.root.Mount(nil, nil)
	}
	t.buildOwner.FlushBuild()
	return t.root
}

// Pump flushes scheduled rebuilds.
func (t *Tester) Pump() {
	t.buildOwner.FlushBuild()
}

// Root returns the mounted root element, or nil before Mount.
func (t *Tester) Root() core.Element {
	return t.root
}

// BuildOwner exposes the owner driving rebuilds.
func (t *Tester) BuildOwner() *core.BuildOwner {
	return t.buildOwner
}

// Find evaluates a finder against the mounted tree.
func (t *Tester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}
