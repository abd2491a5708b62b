package restyutil

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

func formatHeaders(headers http.Header) string {
	var out strings.Builder
	for k, vals := range headers {
		for _, v := range vals {
			out.WriteString(fmt.Sprintf("%s: %s\n", k, v))
		}
	}
	return strings.TrimSuffix(out.String(), "\n")
}

func formatRequestBody(req *http.Request) string {
	if req == nil || req.GetBody == nil {
		return ""
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Sprintf("failed to get request body: %s", err.Error())
	}
	if body == nil {
		return ""
	}
	readBody, err := io.ReadAll(body)
	if err != nil {
		return fmt.Sprintf("failed to read request body: %s", err.Error())
	}
	return string(readBody)
}

func formatHttpMessage(res *resty.Response) string {
	req := res.Request

	var out strings.Builder
	fmt.Fprintf(&out, "%s %s\n", req.Method, req.URL)
	if req.RawRequest != nil {
		out.WriteString(formatHeaders(req.RawRequest.Header))
		out.WriteString("\n\n")
		out.WriteString(formatRequestBody(req.RawRequest))
		out.WriteString("\n\n")
	}
	fmt.Fprintf(&out, "%s\n", res.Status())
	out.WriteString(formatHeaders(res.Header()))
	out.WriteString("\n\n")
	out.Write(res.Body())
	return out.String()
}
