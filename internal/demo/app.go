package demo

import (
	"strconv"

	"github.com/vango-dev/tally/pkg/counter"
	"github.com/vango-dev/tally/pkg/reactive"
	"github.com/vango-dev/tally/pkg/vdom"
)

// Options shapes the demo tree.
type Options struct {
	// Sections is the number of independent chains. Defaults to 1.
	Sections int

	// Depth is the number of nested levels per chain. Defaults to 1.
	Depth int

	// Observers are attached to both counters.
	Observers []counter.Observer
}

// App is one instance of the demo. Each live session builds its own.
type App struct {
	opts Options

	// Clicks counts "+1" clicks.
	Clicks *counter.Counter

	// Points counts "+5" clicks in steps of five.
	Points *counter.Counter
}

// NewApp creates a demo app.
func NewApp(opts Options) *App {
	if opts.Sections < 1 {
		opts.Sections = 1
	}
	if opts.Depth < 1 {
		opts.Depth = 1
	}

	clickOpts := []counter.Option{counter.WithName("clicks")}
	pointOpts := []counter.Option{counter.WithName("points")}
	for _, o := range opts.Observers {
		clickOpts = append(clickOpts, counter.WithObserver(o))
		pointOpts = append(pointOpts, counter.WithObserver(o))
	}

	return &App{
		opts:   opts,
		Clicks: counter.New(clickOpts...),
		Points: counter.New(pointOpts...),
	}
}

// Options returns the normalized options.
func (a *App) Options() Options {
	return a.opts
}

// Component returns the root component of the page.
func (a *App) Component() vdom.Component {
	return vdom.Named("demo", func() *vdom.VNode {
		sections := make([]any, 0, a.opts.Sections)
		for i := 1; i <= a.opts.Sections; i++ {
			sections = append(sections, vdom.Keyed(strconv.Itoa(i), a.section(i)))
		}
		return vdom.Div(vdom.Class("tally"),
			a.Clicks.Provider(a.Points.Provider(
				a.header(),
				sections,
			)),
		)
	})
}

func (a *App) header() vdom.Component {
	return vdom.Named("header", func() *vdom.VNode {
		clicks := a.Clicks.Use()
		points := a.Points.Use()
		return vdom.Div(vdom.Class("header"),
			vdom.H1(vdom.Text("tally")),
			vdom.P(
				vdom.Text("Total clicks "),
				vdom.Strong(vdom.Data("role", "total-clicks"), vdom.Textf("%d", clicks.Count)),
				vdom.Text(", points "),
				vdom.Strong(vdom.Data("role", "total-points"), vdom.Textf("%d", points.Count)),
			),
		)
	})
}

// section is a chain with a show/hide toggle.
func (a *App) section(n int) vdom.Component {
	return vdom.Named("section", func() *vdom.VNode {
		visible := reactive.UseSignal(true)
		label := "Hide"
		if !visible.Get() {
			label = "Show"
		}
		return vdom.Section(vdom.Class("section"), vdom.Data("section", n),
			vdom.H2(vdom.Textf("Section %d", n)),
			vdom.Button(
				vdom.Data("section", n),
				vdom.Data("action", "toggle"),
				vdom.OnClick(func() { visible.Set(!visible.Peek()) }),
				vdom.Text(label),
			),
			vdom.If(visible.Get(), a.Chain(n, 1)),
		)
	})
}

// Chain returns levels level..Depth of section n, each nested in the
// previous one's scopes.
func (a *App) Chain(n, level int) *vdom.VNode {
	var inner *vdom.VNode
	if level < a.opts.Depth {
		inner = a.Chain(n, level+1)
	}
	return a.Clicks.Provider(a.Points.Provider(
		vdom.Div(vdom.Class("level"), vdom.Data("level", level),
			a.level(n, level),
			inner,
		),
	))
}

func (a *App) level(n, level int) vdom.Component {
	return vdom.Named("level", func() *vdom.VNode {
		clicks := a.Clicks.Use()
		points := a.Points.Use()
		return vdom.Div(vdom.Class("row"),
			vdom.Span(vdom.Textf("Level %d: ", level)),
			vdom.Strong(
				vdom.Data("role", "clicks"),
				vdom.Data("section", n),
				vdom.Data("level", level),
				vdom.Textf("%d", clicks.Count),
			),
			vdom.Text(" clicks, "),
			vdom.Strong(
				vdom.Data("role", "points"),
				vdom.Data("section", n),
				vdom.Data("level", level),
				vdom.Textf("%d", points.Count),
			),
			vdom.Text(" points "),
			vdom.Button(
				vdom.Data("action", "click"),
				vdom.Data("section", n),
				vdom.Data("level", level),
				vdom.OnClick(func() { clicks.Add() }),
				vdom.Text("+1"),
			),
			vdom.Button(
				vdom.Data("action", "points"),
				vdom.Data("section", n),
				vdom.Data("level", level),
				vdom.OnClick(func() { points.Add(5) }),
				vdom.Text("+5"),
			),
		)
	})
}
