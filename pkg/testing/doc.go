// Package testing provides widget-tree test utilities for Rivet.
//
// A [Tester] mounts a widget into a live element tree without a host and
// exposes [Finder] queries over it:
//
//	tester := rivettest.NewTesterWithT(t)
//	tester.Mount(LoginView{})
//	field := tester.Find(rivettest.ByName("Username")).First()
//
// Conventionally imported as rivettest to avoid clashing with the
// standard testing package.
package testing
