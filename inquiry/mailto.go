package inquiry

import (
	"net/url"
	"strings"

	"github.com/rohanthewiz/serr"
)

const mailtoScheme = "mailto:"

// Message is a decoded mailto hand-off.
type Message struct {
	To      string
	Subject string
	Body    string
}

// componentUnescape maps url.QueryEscape output onto encodeURIComponent:
// spaces become %20 and the marks !'()* stay literal. Mail clients do not
// read '+' as a space.
var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeComponent percent-encodes s like a browser's encodeURIComponent.
func EncodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}

// BuildMailtoURI returns mailto:<to>?subject=<subject>&body=<body> with both
// header values percent-encoded.
func BuildMailtoURI(to, subject, body string) string {
	var sb strings.Builder
	sb.Grow(len(mailtoScheme) + len(to) + len(subject) + len(body) + 16)
	sb.WriteString(mailtoScheme)
	sb.WriteString(to)
	sb.WriteString("?subject=")
	sb.WriteString(EncodeComponent(subject))
	sb.WriteString("&body=")
	sb.WriteString(EncodeComponent(body))
	return sb.String()
}

// ParseMailtoURI decodes a URI produced by BuildMailtoURI.
func ParseMailtoURI(uri string) (Message, error) {
	rest, ok := strings.CutPrefix(uri, mailtoScheme)
	if !ok {
		return Message{}, serr.New("not a mailto URI")
	}

	to, rawQuery, _ := strings.Cut(rest, "?")
	to, err := url.PathUnescape(to)
	if err != nil {
		return Message{}, serr.Wrap(err, "invalid mailto recipient")
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		return Message{}, serr.Wrap(err, "invalid mailto query")
	}

	return Message{
		To:      to,
		Subject: query.Get("subject"),
		Body:    query.Get("body"),
	}, nil
}
