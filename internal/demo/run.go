package demo

import (
	"fmt"
	"log/slog"

	"github.com/vango-dev/tally/pkg/runtime"
)

// Result holds the counts after Run.
type Result struct {
	// Levels are the click counts of the chain, outermost level first.
	Levels []int

	// Total is the header's click total.
	Total int

	// Renders is the number of component renders performed.
	Renders int
}

// Run mounts a single-section app, clicks the innermost "+1" button clicks
// times and reports the counts.
func Run(opts Options, clicks int, logger *slog.Logger) (*Result, error) {
	opts.Sections = 1
	app := NewApp(opts)
	depth := app.Options().Depth

	root := runtime.New(runtime.WithLogger(logger))
	root.Mount(app.Component())
	defer root.Unmount()

	for i := 0; i < clicks; i++ {
		button := FindButton(root.Tree(), "click", 1, depth)
		if button == nil {
			return nil, fmt.Errorf("demo: no button at level %d", depth)
		}
		if err := root.Dispatch(button.HID, "click"); err != nil {
			return nil, fmt.Errorf("demo: click %d: %w", i+1, err)
		}
	}

	tree := root.Tree()
	return &Result{
		Levels:  Counts(tree, "clicks", 1),
		Total:   Total(tree, "clicks"),
		Renders: root.Stats().Renders,
	}, nil
}
