package render

import (
	"bytes"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vango-dev/tally/pkg/vdom"
)

func TestRenderPage(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, Page{
		Title:   "Clicks <demo>",
		Styles:  []string{"body{margin:0}"},
		Body:    vdom.H1(vdom.Text("hi")),
		LiveURL: "/live",
	})
	if err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	for _, want := range []string{
		"<!DOCTYPE html>",
		`<html lang="en">`,
		"<title>Clicks &lt;demo&gt;</title>",
		"<style>body{margin:0}</style>",
		`<div id="tally-root"><h1>hi</h1></div>`,
		`window.__TALLY__={"live":"/live","root":"tally-root"};`,
		"new WebSocket(",
		"</body>\n</html>\n",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("page missing %q\n%s", want, html)
		}
	}
}

func TestRenderPageWithoutLiveURLIsStatic(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, Page{
		Lang:   "de",
		RootID: "app",
		Body:   vdom.Text("x"),
	})
	if err != nil {
		t.Fatal(err)
	}
	html := buf.String()

	if strings.Contains(html, "<script>") {
		t.Error("static page should not include the client script")
	}
	if !strings.Contains(html, `<html lang="de">`) || !strings.Contains(html, `<div id="app">x</div>`) {
		t.Errorf("unexpected page:\n%s", html)
	}
	if strings.Contains(html, "<title>") {
		t.Error("empty title should be omitted")
	}
}

func TestClientSettingsCannotCloseScript(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(RendererConfig{}).RenderPage(&buf, Page{LiveURL: "/live</script><b>"})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "</script><b>") {
		t.Errorf("live URL was not escaped:\n%s", buf.String())
	}
}

func TestStreamingRendererFlushes(t *testing.T) {
	rec := httptest.NewRecorder()
	sr := NewStreamingRenderer(rec, RendererConfig{})
	if err := sr.RenderPage(Page{Title: "t", Body: vdom.P(vdom.Text("streamed")), LiveURL: "/live"}); err != nil {
		t.Fatal(err)
	}

	if !rec.Flushed {
		t.Error("response was not flushed")
	}
	body := rec.Body.String()
	if !strings.Contains(body, "<p>streamed</p>") || !strings.Contains(body, "__TALLY__") {
		t.Errorf("unexpected body:\n%s", body)
	}
}
