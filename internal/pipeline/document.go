package pipeline

import (
	"context"
	"fmt"
	"html"
	"strings"

	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// defaultTitle is used when the fragment has no <h1>.
const defaultTitle = "Document"

// documentTemplate wraps a rendered fragment in a complete HTML5 document.
const documentTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>%s</title>
</head>
<body>
%s
</body>
</html>`

// WrapDocument turns an HTML fragment into a standalone document whose
// title is the text of the fragment's first <h1>.
func WrapDocument(ctx context.Context, fragment string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	title, err := extractTitle(fragment)
	if err != nil {
		return "", fmt.Errorf("extracting title: %w", err)
	}
	return fmt.Sprintf(documentTemplate, html.EscapeString(title), fragment), nil
}

// extractTitle returns the text content of the first <h1>, or defaultTitle.
func extractTitle(fragment string) (string, error) {
	body := &nethtml.Node{
		Type:     nethtml.ElementNode,
		DataAtom: atom.Body,
		Data:     "body",
	}
	nodes, err := nethtml.ParseFragment(strings.NewReader(fragment), body)
	if err != nil {
		return "", err
	}

	for _, n := range nodes {
		if h1 := findFirst(n, atom.H1); h1 != nil {
			if title := strings.Join(strings.Fields(textContent(h1)), " "); title != "" {
				return title, nil
			}
			break
		}
	}
	return defaultTitle, nil
}

// findFirst returns the first element with the given atom in document order.
func findFirst(n *nethtml.Node, a atom.Atom) *nethtml.Node {
	if n.Type == nethtml.ElementNode && n.DataAtom == a {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, a); found != nil {
			return found
		}
	}
	return nil
}

func textContent(n *nethtml.Node) string {
	if n.Type == nethtml.TextNode {
		return n.Data
	}
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		b.WriteString(textContent(c))
	}
	return b.String()
}

// CSSInjector defines the contract for CSS injection into HTML.
type CSSInjector interface {
	InjectCSS(ctx context.Context, htmlContent, cssContent string) string
}

// CSSInjection injects CSS as a <style> block into HTML content.
type CSSInjection struct{}

// InjectCSS inserts a <style> block before </head>, falling back to
// prepending it to the content.
func (s *CSSInjection) InjectCSS(ctx context.Context, htmlContent, cssContent string) string {
	if cssContent == "" {
		return htmlContent
	}

	// Check for cancellation
	if ctx.Err() != nil {
		return htmlContent
	}

	styleBlock := "<style>" + sanitizeCSS(cssContent) + "</style>"
	if idx := strings.Index(strings.ToLower(htmlContent), "</head>"); idx != -1 {
		return htmlContent[:idx] + styleBlock + "\n" + htmlContent[idx:]
	}
	return styleBlock + "\n" + htmlContent
}

// sanitizeCSS escapes </ so the content cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
