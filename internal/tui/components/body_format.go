package components

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"io"
	"strings"

	"github.com/artpar/yarc/internal/core"
)

// ContentFormat represents the detected format of a response body.
type ContentFormat string

const (
	FormatJSON ContentFormat = "json"
	FormatXML  ContentFormat = "xml"
	FormatText ContentFormat = "text"
)

// DetectContentFormat checks the Content-Type header first, then falls back
// to sniffing the body.
func DetectContentFormat(contentType string, body string) ContentFormat {
	ct := strings.ToLower(contentType)

	switch {
	case strings.Contains(ct, "application/json"),
		strings.Contains(ct, "text/json"),
		strings.Contains(ct, "+json"):
		return FormatJSON
	case strings.Contains(ct, "application/xml"),
		strings.Contains(ct, "text/xml"),
		strings.Contains(ct, "+xml"):
		return FormatXML
	case strings.Contains(ct, "text/html"):
		return FormatText
	}

	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return FormatText
	}
	switch trimmed[0] {
	case '{', '[':
		return FormatJSON
	case '<':
		if strings.HasPrefix(trimmed, "<?xml") && !strings.Contains(strings.ToLower(trimmed), "<html") {
			return FormatXML
		}
	}
	return FormatText
}

// PrettyBody re-indents JSON and XML bodies. Anything that fails to parse
// is returned unchanged.
func PrettyBody(format ContentFormat, body string) string {
	switch format {
	case FormatJSON:
		var out bytes.Buffer
		if err := json.Indent(&out, []byte(body), "", "  "); err != nil {
			return body
		}
		return out.String()
	case FormatXML:
		return indentXML(body)
	default:
		return body
	}
}

// FormatResponse renders resp for the result field with its body
// pretty-printed.
func FormatResponse(resp *core.Response) string {
	var contentType string
	for _, h := range resp.Headers {
		if strings.EqualFold(h.Key, "Content-Type") {
			contentType = h.Value
			break
		}
	}

	pretty := *resp
	body := string(resp.Body)
	pretty.Body = []byte(PrettyBody(DetectContentFormat(contentType, body), body))
	return pretty.Format()
}

func indentXML(content string) string {
	decoder := xml.NewDecoder(strings.NewReader(content))
	var buf bytes.Buffer
	indent := 0

	writeIndent := func() {
		buf.WriteString(strings.Repeat("  ", indent))
	}

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return content
		}

		switch t := token.(type) {
		case xml.StartElement:
			writeIndent()
			buf.WriteString("<" + t.Name.Local)
			for _, attr := range t.Attr {
				buf.WriteString(" " + attr.Name.Local + `="` + attr.Value + `"`)
			}
			buf.WriteString(">\n")
			indent++
		case xml.EndElement:
			indent--
			writeIndent()
			buf.WriteString("</" + t.Name.Local + ">\n")
		case xml.CharData:
			if text := strings.TrimSpace(string(t)); text != "" {
				writeIndent()
				buf.WriteString(text + "\n")
			}
		case xml.Comment:
			writeIndent()
			buf.WriteString("<!--" + string(t) + "-->\n")
		case xml.ProcInst:
			writeIndent()
			buf.WriteString("<?" + t.Target)
			if len(t.Inst) > 0 {
				buf.WriteString(" " + string(t.Inst))
			}
			buf.WriteString("?>\n")
		}
	}

	return strings.TrimSuffix(buf.String(), "\n")
}
