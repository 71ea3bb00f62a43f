package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"outreach-api/pkg/lambda"
)

const (
	contentTypeJSON = "application/json"
	contentTypeText = "text/plain; charset=utf-8"
)

// jsonResponse serializes v. Successful responses carry the permissive
// cross-origin header so browser callers on any origin can read them.
func jsonResponse(status int, v interface{}, allowCORS bool) *lambda.Response {
	body, err := json.Marshal(v)
	if err != nil {
		return &lambda.Response{
			StatusCode: http.StatusInternalServerError,
			Headers:    map[string]string{"Content-Type": contentTypeJSON},
			Body:       []byte(`{"error":"Internal server error"}`),
		}
	}
	return rawJSONResponse(status, body, allowCORS)
}

func rawJSONResponse(status int, body []byte, allowCORS bool) *lambda.Response {
	headers := map[string]string{"Content-Type": contentTypeJSON}
	if allowCORS {
		headers["Access-Control-Allow-Origin"] = "*"
	}
	return &lambda.Response{
		StatusCode: status,
		Headers:    headers,
		Body:       body,
	}
}

func textResponse(status int, text string) *lambda.Response {
	return &lambda.Response{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": contentTypeText},
		Body:       []byte(text),
	}
}

// writeResponse renders a transport-neutral response through gin
func writeResponse(c *gin.Context, resp *lambda.Response) {
	for key, value := range resp.Headers {
		c.Header(key, value)
	}
	c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
}
