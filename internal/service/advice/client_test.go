package advice

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jardinverde/gardenia/internal/entity"
)

func adviceServer(t *testing.T, status int, reply string, capture *generateRequest) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if capture != nil {
			if err := json.NewDecoder(r.Body).Decode(capture); err != nil {
				t.Errorf("decode request: %v", err)
			}
		}
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{"parts": []map[string]any{{"text": reply}}}},
			},
		})
	}))
}

func TestAskReturnsModelReply(t *testing.T) {
	var got generateRequest
	srv := adviceServer(t, http.StatusOK, "Riega menos la monstera.", &got)
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", WithBaseURL(srv.URL))
	products := []entity.Product{
		{Name: "Monstera", Category: "Plantas", Price: 15000, Visible: true},
		{Name: "Oculto", Category: "Plantas", Price: 1, Visible: false},
	}

	reply := c.Ask(context.Background(), "hojas amarillas", products)
	if reply != "Riega menos la monstera." {
		t.Fatalf("unexpected reply: %q", reply)
	}

	if got.SystemInstruction == nil || len(got.SystemInstruction.Parts) == 0 {
		t.Fatal("system instruction missing from request")
	}
	instruction := got.SystemInstruction.Parts[0].Text
	if !strings.Contains(instruction, "Monstera") {
		t.Error("visible product missing from catalog context")
	}
	if strings.Contains(instruction, "Oculto") {
		t.Error("hidden product leaked into catalog context")
	}
	if len(got.Contents) != 1 || got.Contents[0].Parts[0].Text != "hojas amarillas" {
		t.Errorf("question not forwarded: %+v", got.Contents)
	}
}

func TestAskDegradesToApology(t *testing.T) {
	srv := adviceServer(t, http.StatusInternalServerError, "", nil)
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", WithBaseURL(srv.URL))
	if reply := c.Ask(context.Background(), "hola", nil); reply != Apology {
		t.Errorf("provider failure must degrade to the apology, got %q", reply)
	}
}

func TestAskWithoutAPIKey(t *testing.T) {
	c := NewClient(http.DefaultClient, "")
	if reply := c.Ask(context.Background(), "hola", nil); reply != Apology {
		t.Errorf("missing key must degrade to the apology, got %q", reply)
	}
}

func TestAskEmptyCandidateList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"candidates": []any{}})
	}))
	defer srv.Close()

	c := NewClient(srv.Client(), "test-key", WithBaseURL(srv.URL))
	if reply := c.Ask(context.Background(), "hola", nil); reply != Apology {
		t.Errorf("empty candidates must degrade to the apology, got %q", reply)
	}
}
