package supabase

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"outreach-api/internal/models"
	"outreach-api/internal/repositories"
)

func TestNewEngagementRepository_RequiresCredentials(t *testing.T) {
	if _, err := NewEngagementRepository("", "key", "sb36_engagement", nil, nil); !errors.Is(err, repositories.ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured without url, got %v", err)
	}
	if _, err := NewEngagementRepository("https://x.supabase.co", "", "sb36_engagement", nil, nil); !errors.Is(err, repositories.ErrNotConfigured) {
		t.Errorf("Expected ErrNotConfigured without key, got %v", err)
	}
}

func TestEngagementRepository_Insert(t *testing.T) {
	ctx := context.Background()
	action := "email"

	t.Run("PostsRow", func(t *testing.T) {
		var (
			gotPath   string
			gotHeader http.Header
			gotBody   map[string]interface{}
		)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotHeader = r.Header.Clone()
			body, _ := io.ReadAll(r.Body)
			json.Unmarshal(body, &gotBody)
			w.WriteHeader(http.StatusCreated)
		}))
		defer server.Close()

		repo, err := NewEngagementRepository(server.URL+"/", "anon-key", "sb36_engagement", server.Client(), nil)
		if err != nil {
			t.Fatalf("NewEngagementRepository failed: %v", err)
		}
		defer repo.Close()

		row := (&models.EngagementEvent{District: 7, ActionType: &action}).ToRow()
		if err := repo.Insert(ctx, row); err != nil {
			t.Fatalf("Insert failed: %v", err)
		}

		if gotPath != "/rest/v1/sb36_engagement" {
			t.Errorf("Unexpected path %s", gotPath)
		}
		if gotHeader.Get("apikey") != "anon-key" {
			t.Errorf("Missing apikey header")
		}
		if gotHeader.Get("Authorization") != "Bearer anon-key" {
			t.Errorf("Unexpected Authorization header %q", gotHeader.Get("Authorization"))
		}
		if gotHeader.Get("Prefer") != "return=minimal" {
			t.Errorf("Unexpected Prefer header %q", gotHeader.Get("Prefer"))
		}

		if gotBody["district"] != float64(7) {
			t.Errorf("Expected district 7, got %v", gotBody["district"])
		}
		if gotBody["bill_number"] != models.DefaultBillNumber {
			t.Errorf("Expected default bill number, got %v", gotBody["bill_number"])
		}
		if gotBody["action_type"] != "email" {
			t.Errorf("Expected action_type email, got %v", gotBody["action_type"])
		}
		if _, present := gotBody["agency"]; present {
			t.Error("Absent optional columns should be omitted")
		}
	})

	t.Run("ReportsPostgrestMessage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"code":"42P01","details":null,"hint":null,"message":"relation \"public.sb36_engagement\" does not exist"}`))
		}))
		defer server.Close()

		repo, err := NewEngagementRepository(server.URL, "anon-key", "sb36_engagement", server.Client(), nil)
		if err != nil {
			t.Fatalf("NewEngagementRepository failed: %v", err)
		}

		err = repo.Insert(ctx, (&models.EngagementEvent{}).ToRow())
		if err == nil {
			t.Fatal("Expected insert error")
		}
		if err.Error() != `relation "public.sb36_engagement" does not exist` {
			t.Errorf("Unexpected error message %q", err.Error())
		}
		if !errors.Is(err, repositories.ErrInsert) {
			t.Errorf("Expected error to wrap ErrInsert")
		}
	})

	t.Run("NonJSONErrorBody", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		repo, _ := NewEngagementRepository(server.URL, "anon-key", "sb36_engagement", server.Client(), nil)

		err := repo.Insert(ctx, (&models.EngagementEvent{}).ToRow())
		if err == nil || err.Error() != "supabase returned status 503: upstream down" {
			t.Errorf("Unexpected error %v", err)
		}
	})
}

func TestEngagementRepository_InsertTruncatedErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Length", "100")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("partial"))
	}))
	defer server.Close()

	repo, err := NewEngagementRepository(server.URL, "anon-key", "sb36_engagement", server.Client(), nil)
	if err != nil {
		t.Fatalf("NewEngagementRepository failed: %v", err)
	}

	err = repo.Insert(context.Background(), (&models.EngagementEvent{}).ToRow())
	if err == nil {
		t.Fatal("Expected insert error")
	}
	if !strings.HasPrefix(err.Error(), "supabase returned status 500") {
		t.Errorf("Unexpected message %q", err.Error())
	}
	if !strings.Contains(err.Error(), "reading response body") {
		t.Errorf("Expected read failure in message, got %q", err.Error())
	}
}
