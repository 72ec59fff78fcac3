// Package vtest mounts components in a runtime.Root for tests and drives
// them the way the live client does: by clicking hydration IDs and reading
// back the rendered HTML.
//
//	func TestClicks(t *testing.T) {
//	    h := vtest.Mount(t, app)
//	    h.ClickText("+1")
//	    vtest.ExpectContains(t, h.Tree(), "<strong>1</strong>")
//	}
//
// Harnesses are unmounted automatically when the test ends.
package vtest
