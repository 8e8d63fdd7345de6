package pdf

import (
	"html"
	"regexp"
	"strings"
)

// The fpdf HTML writer understands only a small tag set (b, i, u, br,
// center). toBasicHTML reduces the lesson fragment to that subset:
// headings become bold lines, list items become bulleted lines, table
// and definition rows become plain lines. The lesson text itself passes
// through unchanged, which is what keeps the PDF body identical to the
// web page body.

var structuralReplacer = strings.NewReplacer(
	"<h1>", "<b>", "</h1>", "</b><br><br>",
	"<h2>", "<br><b>", "</h2>", "</b><br>",
	"<h3>", "<br><b>", "</h3>", "</b><br>",
	"<strong>", "<b>", "</strong>", "</b>",
	"<em>", "<i>", "</em>", "</i>",
	"<code>", "<i>", "</code>", "</i>",
	"<li>", "- ", "</li>", "<br>",
	"<dt>", "<b>", "</dt>", "</b>: ",
	"</dd>", "<br>",
	"</th><th>", "   ", "</td><td>", "   ",
	"</th></tr>", "<br>", "</td></tr>", "<br>",
	"</p>", "<br><br>",
	"</table>", "<br>", "</ul>", "<br>", "</ol>", "<br>", "</dl>", "<br>",
	"<br/>", "<br>",
)

var allowedTag = map[string]bool{"b": true, "i": true, "u": true, "br": true, "center": true}

var tagPattern = regexp.MustCompile(`(?i)<(/?)([a-z0-9]+)[^>]*>`)

// toBasicHTML converts fragment HTML to the subset the engine renders.
func toBasicHTML(fragment string) string {
	s := structuralReplacer.Replace(fragment)
	s = tagPattern.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagPattern.FindStringSubmatch(tag)
		name := strings.ToLower(m[2])
		if !allowedTag[name] {
			return ""
		}
		return "<" + m[1] + name + ">"
	})
	// The engine writes text verbatim, so decode the entities the
	// template escaper produced.
	s = html.UnescapeString(s)
	// Collapse runs of blank lines left by dropped block tags.
	s = regexp.MustCompile(`(?:<br>\s*){3,}`).ReplaceAllString(s, "<br><br>")
	return strings.TrimSpace(s)
}
