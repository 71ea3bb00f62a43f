package lambda

import (
	"context"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
)

func TestFromAPIGateway(t *testing.T) {
	t.Run("PlainBody", func(t *testing.T) {
		event := events.APIGatewayProxyRequest{
			HTTPMethod:            "post",
			Path:                  "/.netlify/functions/track-engagement",
			QueryStringParameters: map[string]string{"address": "1 Main St"},
			Body:                  `{"district":4}`,
		}
		event.RequestContext.RequestID = "req-1"

		req := FromAPIGateway(event)

		if req.Method != http.MethodPost {
			t.Errorf("Expected upper-cased method, got %s", req.Method)
		}
		if string(req.Body) != `{"district":4}` {
			t.Errorf("Unexpected body %s", req.Body)
		}
		if req.Query("address") != "1 Main St" {
			t.Errorf("Unexpected address %q", req.Query("address"))
		}
		if req.RequestID != "req-1" {
			t.Errorf("Unexpected request ID %q", req.RequestID)
		}
	})

	t.Run("Base64Body", func(t *testing.T) {
		req := FromAPIGateway(events.APIGatewayProxyRequest{
			HTTPMethod:      http.MethodPost,
			Body:            base64.StdEncoding.EncodeToString([]byte(`{"stance":"support"}`)),
			IsBase64Encoded: true,
		})

		if string(req.Body) != `{"stance":"support"}` {
			t.Errorf("Expected decoded body, got %s", req.Body)
		}
	})

	t.Run("NoQuery", func(t *testing.T) {
		req := FromAPIGateway(events.APIGatewayProxyRequest{HTTPMethod: http.MethodGet})

		if req.Query("address") != "" {
			t.Error("Expected empty address")
		}
	})
}

func TestResponse_ToAPIGateway(t *testing.T) {
	resp := &Response{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       []byte(`{"status":"tracked"}`),
	}

	out := resp.ToAPIGateway()

	if out.StatusCode != http.StatusOK || out.Body != `{"status":"tracked"}` {
		t.Errorf("Unexpected response %+v", out)
	}
	if out.Headers["Content-Type"] != "application/json" {
		t.Errorf("Headers not carried over")
	}

	if InternalError().StatusCode != http.StatusInternalServerError {
		t.Error("InternalError should be a 500")
	}
}

func TestConnectionManager_Cleanup(t *testing.T) {
	cm := &ConnectionManager{}

	if err := cm.Cleanup(); err != nil {
		t.Errorf("Cleanup of empty manager failed: %v", err)
	}

	t.Setenv("TRACKING_BACKEND", "")
	t.Setenv("SUPABASE_URL", "")
	t.Setenv("SUPABASE_ANON_KEY", "")

	first, err := cm.GetContainer(context.Background())
	if err != nil {
		t.Fatalf("GetContainer failed: %v", err)
	}
	again, _ := cm.GetContainer(context.Background())
	if first != again {
		t.Error("Expected the container to be reused across calls")
	}

	cm.Shutdown()

	if cm.initialized || cm.container != nil || cm.config != nil {
		t.Error("Expected Shutdown to reset the manager")
	}
}
