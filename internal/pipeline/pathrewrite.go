package pipeline

import (
	"net/url"
	"path"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// RewriteRelativePaths rewrites relative img[src] and a[href] values so they
// resolve from outputDir the same way they resolved from sourceDir.
// Returns the content unchanged when either directory is empty or both
// are the same.
//
// Left alone: URLs with a scheme, protocol-relative URLs, absolute paths,
// and fragment-only anchors.
func RewriteRelativePaths(htmlContent, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return htmlContent, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return htmlContent, nil
	}

	doc, isFragment, err := parseHTML(htmlContent)
	if err != nil {
		return "", err
	}
	rewriteNode(doc, absSource, absOutput)
	return renderHTML(doc, isFragment)
}

// parseHTML parses either a full document or a body fragment.
func parseHTML(content string) (*html.Node, bool, error) {
	trimmed := strings.ToLower(strings.TrimSpace(content))
	if strings.HasPrefix(trimmed, "<!doctype") || strings.HasPrefix(trimmed, "<html") {
		doc, err := html.Parse(strings.NewReader(content))
		return doc, false, err
	}

	body := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := html.ParseFragment(strings.NewReader(content), body)
	if err != nil {
		return nil, true, err
	}

	container := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		container.AppendChild(n)
	}
	return container, true, nil
}

// renderHTML renders doc back to text; fragments render their children only.
func renderHTML(doc *html.Node, isFragment bool) (string, error) {
	var buf strings.Builder
	if !isFragment {
		if err := html.Render(&buf, doc); err != nil {
			return "", err
		}
		return buf.String(), nil
	}

	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&buf, c); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

func rewriteNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		switch n.DataAtom {
		case atom.Img:
			rewriteAttr(n, "src", sourceDir, outputDir)
		case atom.A:
			rewriteAttr(n, "href", sourceDir, outputDir)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rewriteNode(c, sourceDir, outputDir)
	}
}

func rewriteAttr(n *html.Node, attrName, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName {
			continue
		}
		if rewritten, ok := relocate(attr.Val, sourceDir, outputDir); ok {
			n.Attr[i].Val = rewritten
		}
	}
}

// relocate returns ref re-expressed relative to outputDir, keeping its
// query and fragment. ok is false when ref is not a relative path.
func relocate(ref, sourceDir, outputDir string) (string, bool) {
	if !isRelativePath(ref) {
		return "", false
	}
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return "", false
	}

	target := filepath.Join(sourceDir, filepath.FromSlash(u.Path))
	rel, err := filepath.Rel(outputDir, target)
	if err != nil {
		return "", false
	}

	u.Path = filepath.ToSlash(rel)
	if strings.HasSuffix(ref, "/") && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String(), true
}

// isRelativePath reports whether ref is a relative filesystem reference.
func isRelativePath(ref string) bool {
	if ref == "" || strings.HasPrefix(ref, "#") || strings.HasPrefix(ref, "//") {
		return false
	}
	if u, err := url.Parse(ref); err != nil || u.Scheme != "" {
		return false
	}
	return !path.IsAbs(ref) && !filepath.IsAbs(ref)
}
