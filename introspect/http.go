package introspect

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"text/template"

	"github.com/dustin/go-humanize"

	"github.com/Philipp01105/manuscrit/formatter"
)

// InvalidJSONText replaces a body that is not valid JSON
const InvalidJSONText = "!! input is not a valid json string !!"

// sectionSep prefixes every section name of an HTTP report
const sectionSep = "----------"

// Exchange is a completed HTTP request, optionally paired with its response
type Exchange interface {
	Method() string
	URL() string
	// Header returns the request headers
	Header() http.Header
	RequestBody() []byte
	// StatusCode is 0 when there is no response
	StatusCode() int
	// Reason is the status text, e.g. "Not Found"
	Reason() string
	ResponseBody() []byte
}

// HTTPOptions controls what FormatHTTP shows
type HTTPOptions struct {
	// Query renders only the request side
	Query bool
	// ShowHeaders includes the request headers
	ShowHeaders bool
}

var httpTemplate = template.Must(template.New("http").Parse(
	`{{.Sep}}{{.Sep}}{{.Sep}}
{{.Sep}}QUERY

{{.Method}} {{.URL}}
{{- if .Headers}}

{{.Sep}}HEADERS

{{.Headers}}
{{- end}}
{{- if .RequestBody}}

{{.Sep}}CONTENT

{{.RequestBody}}
{{- end}}
{{- if .Outcome}}


{{.Sep}}RESPONSE
{{.Outcome}}
{{- if .ResponseBody}}
{{.ResponseBody}}
{{- end}}
{{- end}}


{{.Sep}}{{.Sep}}{{.Sep}}`))

type httpView struct {
	Sep          string
	Method       string
	URL          string
	Headers      string
	RequestBody  string
	Outcome      string
	ResponseBody string
}

// FormatHTTP renders the method, URL, request headers and body and,
// unless opts.Query is set, the outcome and the response body. JSON
// bodies are pretty-printed; bodies that do not parse are replaced with
// InvalidJSONText.
func FormatHTTP(x Exchange, opts HTTPOptions) string {
	view := httpView{
		Sep:         sectionSep,
		Method:      x.Method(),
		URL:         x.URL(),
		RequestBody: jsonBody(x.RequestBody()),
	}

	if opts.ShowHeaders {
		view.Headers = formatter.Autoformat(flattenHeader(x.Header()))
	}

	if !opts.Query {
		view.Outcome = outcome(x)
		view.ResponseBody = jsonBody(x.ResponseBody())
	}

	var buf bytes.Buffer
	if err := httpTemplate.Execute(&buf, view); err != nil {
		return formatter.FormatErrorText
	}
	return buf.String()
}

// OK reports whether the status code is below 400
func OK(x Exchange) bool {
	code := x.StatusCode()
	return code > 0 && code < http.StatusBadRequest
}

func outcome(x Exchange) string {
	size := humanize.Bytes(uint64(len(x.ResponseBody())))
	if OK(x) {
		return fmt.Sprintf("OK : %d (%s)", x.StatusCode(), size)
	}
	return fmt.Sprintf("Error : %d %s (%s)", x.StatusCode(), x.Reason(), size)
}

// jsonBody pretty-prints a JSON body; an empty body renders as nothing
func jsonBody(body []byte) string {
	if len(bytes.TrimSpace(body)) == 0 {
		return ""
	}
	v, err := formatter.DecodeJSON(body)
	if err != nil {
		return InvalidJSONText
	}
	return formatter.Autoformat(v)
}

// flattenHeader joins multi-valued headers so they print one per line
func flattenHeader(h http.Header) map[string]string {
	flat := make(map[string]string, len(h))
	for k, v := range h {
		flat[k] = strings.Join(v, ", ")
	}
	return flat
}

// httpExchange adapts net/http values to Exchange
type httpExchange struct {
	req      *http.Request
	resp     *http.Response
	reqBody  []byte
	respBody []byte
}

// FromResponse adapts a completed response and the request that
// produced it. Both bodies are read and replaced with readers over the
// same bytes so the caller can still consume them.
func FromResponse(resp *http.Response) (Exchange, error) {
	if resp == nil {
		return nil, fmt.Errorf("nil response")
	}

	x := &httpExchange{req: resp.Request, resp: resp}

	var err error
	if resp.Body != nil {
		x.respBody, err = io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read response body: %w", err)
		}
		resp.Body = io.NopCloser(bytes.NewReader(x.respBody))
	}

	if req := resp.Request; req != nil && req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("copy request body: %w", err)
		}
		x.reqBody, err = io.ReadAll(body)
		body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
	}
	return x, nil
}

// FromRequest adapts a request that has no response yet, for use with
// HTTPOptions.Query. The request body is read and restored.
func FromRequest(req *http.Request) (Exchange, error) {
	if req == nil {
		return nil, fmt.Errorf("nil request")
	}

	x := &httpExchange{req: req}
	if req.Body != nil && req.Body != http.NoBody {
		body, err := io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("read request body: %w", err)
		}
		x.reqBody = body
		req.Body = io.NopCloser(bytes.NewReader(body))
	}
	return x, nil
}

func (x *httpExchange) Method() string {
	if x.req == nil {
		return ""
	}
	return x.req.Method
}

func (x *httpExchange) URL() string {
	if x.req == nil || x.req.URL == nil {
		return ""
	}
	return x.req.URL.String()
}

func (x *httpExchange) Header() http.Header {
	if x.req == nil {
		return nil
	}
	return x.req.Header
}

func (x *httpExchange) RequestBody() []byte {
	return x.reqBody
}

func (x *httpExchange) StatusCode() int {
	if x.resp == nil {
		return 0
	}
	return x.resp.StatusCode
}

func (x *httpExchange) Reason() string {
	if x.resp == nil {
		return ""
	}
	reason := strings.TrimSpace(strings.TrimPrefix(x.resp.Status, strconv.Itoa(x.resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(x.resp.StatusCode)
	}
	return reason
}

func (x *httpExchange) ResponseBody() []byte {
	return x.respBody
}
