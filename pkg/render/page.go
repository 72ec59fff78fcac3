package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vango-dev/tally/pkg/vdom"
)

// DefaultRootID is the id of the element a page's body tree is rendered into
// and that live updates replace.
const DefaultRootID = "tally-root"

// Page contains everything needed to render a complete HTML document.
type Page struct {
	// Title is the document title.
	Title string

	// Lang is the html lang attribute. Defaults to "en".
	Lang string

	// Styles are inline CSS blocks written into the head.
	Styles []string

	// Body is the tree rendered inside the root element.
	Body *vdom.VNode

	// RootID overrides DefaultRootID.
	RootID string

	// LiveURL is the WebSocket path the client script connects to. Without
	// it the page is static.
	LiveURL string
}

func (p Page) lang() string {
	if p.Lang == "" {
		return "en"
	}
	return p.Lang
}

func (p Page) rootID() string {
	if p.RootID == "" {
		return DefaultRootID
	}
	return p.RootID
}

// RenderPage renders a complete HTML document to w.
func (r *Renderer) RenderPage(w io.Writer, page Page) error {
	if err := r.renderOpen(w, page); err != nil {
		return err
	}
	if err := r.renderBody(w, page); err != nil {
		return err
	}
	return r.renderClose(w, page)
}

func (r *Renderer) renderOpen(w io.Writer, page Page) error {
	if _, err := fmt.Fprintf(w, "<!DOCTYPE html>\n<html lang=\"%s\">\n", escapeAttr(page.lang())); err != nil {
		return err
	}
	if _, err := io.WriteString(w, "<head>\n  <meta charset=\"utf-8\">\n"+
		"  <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n"); err != nil {
		return err
	}
	if page.Title != "" {
		if _, err := fmt.Fprintf(w, "  <title>%s</title>\n", escapeHTML(page.Title)); err != nil {
			return err
		}
	}
	for _, style := range page.Styles {
		if _, err := fmt.Fprintf(w, "  <style>%s</style>\n", style); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</head>\n<body>\n")
	return err
}

func (r *Renderer) renderBody(w io.Writer, page Page) error {
	if _, err := fmt.Fprintf(w, `<div id="%s">`, escapeAttr(page.rootID())); err != nil {
		return err
	}
	if err := r.RenderToWriter(w, page.Body); err != nil {
		return err
	}
	_, err := io.WriteString(w, "</div>\n")
	return err
}

func (r *Renderer) renderClose(w io.Writer, page Page) error {
	if page.LiveURL != "" {
		if err := renderClientScript(w, page); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</body>\n</html>\n")
	return err
}

// renderClientScript writes the live client with its settings. json.Marshal
// escapes <, > and & so the values cannot close the script element.
func renderClientScript(w io.Writer, page Page) error {
	settings, err := json.Marshal(map[string]string{
		"live": page.LiveURL,
		"root": page.rootID(),
	})
	if err != nil {
		return fmt.Errorf("render: encode client settings: %w", err)
	}
	_, err = fmt.Fprintf(w, "<script>window.__TALLY__=%s;\n%s</script>\n", settings, clientScript)
	return err
}
