package vision

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/eleven-am/streetscene/internal/environment"
	"google.golang.org/genai"
)

func TestConfig_Kind(t *testing.T) {
	if (Config{}).Kind() != BackendGemini {
		t.Error("expected gemini when no openrouter model is set")
	}
	if (Config{OpenRouterModel: "m"}).Kind() != BackendOpenRouter {
		t.Error("expected openrouter when model is set")
	}
}

func TestNewBackend_MissingCredential(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"gemini", Config{}},
		{"openrouter", Config{OpenRouterModel: "qwen/qwen2.5-vl", GeminiAPIKey: "g"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend, err := NewBackend(context.Background(), tt.cfg)
			if !errors.Is(err, ErrMissingCredential) {
				t.Fatalf("expected ErrMissingCredential, got %v", err)
			}
			if backend != nil {
				t.Error("backend should be nil")
			}
		})
	}
}

func TestNewBackend_OpenRouterWinsOverGemini(t *testing.T) {
	backend, err := NewBackend(context.Background(), Config{
		GeminiAPIKey:     "g",
		OpenRouterAPIKey: "o",
		OpenRouterModel:  "m",
	})
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if backend.Kind() != BackendOpenRouter {
		t.Errorf("expected openrouter, got %s", backend.Kind())
	}
}

func TestNewOpenRouterClient_Defaults(t *testing.T) {
	client := NewOpenRouterClient(Config{OpenRouterAPIKey: "k", OpenRouterModel: "m"})
	if client.url != DefaultOpenRouterURL {
		t.Errorf("expected default url, got %s", client.url)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("expected 60s timeout, got %v", client.httpClient.Timeout)
	}
}

func TestOpenRouterClient_Generate(t *testing.T) {
	image := []byte{0xff, 0xd8, 0xff}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("unexpected Authorization header %q", got)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Error("expected Content-Type application/json")
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("failed to decode request: %v", err)
		}
		if req.Model != "test-model" {
			t.Errorf("expected model test-model, got %s", req.Model)
		}
		if len(req.Messages) != 1 || req.Messages[0].Role != "user" {
			t.Fatalf("unexpected messages %+v", req.Messages)
		}
		parts := req.Messages[0].Content
		if len(parts) != 2 || parts[0].Type != "text" || parts[1].Type != "image_url" {
			t.Fatalf("unexpected content parts %+v", parts)
		}
		if parts[0].Text != "describe" {
			t.Errorf("unexpected prompt %q", parts[0].Text)
		}
		wantURL := "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(image)
		if parts[1].ImageURL == nil || parts[1].ImageURL.URL != wantURL {
			t.Errorf("unexpected image url %+v", parts[1].ImageURL)
		}

		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"A quiet street."}}]}`))
	}))
	defer server.Close()

	client := NewOpenRouterClient(Config{
		OpenRouterAPIKey: "secret",
		OpenRouterModel:  "test-model",
		OpenRouterURL:    server.URL,
	})

	text, err := client.Generate(context.Background(), "describe", image)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "A quiet street." {
		t.Errorf("unexpected text %q", text)
	}
}

func TestOpenRouterClient_StatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte("rate limited"))
	}))
	defer server.Close()

	client := NewOpenRouterClient(Config{OpenRouterAPIKey: "k", OpenRouterModel: "m", OpenRouterURL: server.URL})
	_, err := client.Generate(context.Background(), "p", []byte{1})

	var statusErr *StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected *StatusError, got %v", err)
	}
	if statusErr.StatusCode != http.StatusTooManyRequests {
		t.Errorf("expected 429, got %d", statusErr.StatusCode)
	}
	if statusErr.Body != "rate limited" {
		t.Errorf("unexpected body %q", statusErr.Body)
	}
}

func TestOpenRouterClient_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	client := NewOpenRouterClient(Config{OpenRouterAPIKey: "k", OpenRouterModel: "m", OpenRouterURL: server.URL})
	if _, err := client.Generate(context.Background(), "p", []byte{1}); err == nil {
		t.Fatal("expected error for empty choices")
	}
}

func TestOpenRouterClient_NoImage(t *testing.T) {
	client := NewOpenRouterClient(Config{OpenRouterAPIKey: "k", OpenRouterModel: "m"})
	if _, err := client.Generate(context.Background(), "p", nil); err == nil {
		t.Fatal("expected error for empty image")
	}
}

func TestGeminiClientConfig_Timeout(t *testing.T) {
	cc := geminiClientConfig(Config{GeminiAPIKey: "g"})
	if cc.HTTPClient != nil {
		t.Errorf("expected SDK default http client, got %+v", cc.HTTPClient)
	}

	cc = geminiClientConfig(Config{GeminiAPIKey: "g", Timeout: 5 * time.Second})
	if cc.HTTPClient == nil || cc.HTTPClient.Timeout != 5*time.Second {
		t.Errorf("expected 5s http client, got %+v", cc.HTTPClient)
	}
	if cc.Backend != genai.BackendGeminiAPI || cc.APIKey != "g" {
		t.Errorf("unexpected client config %+v", cc)
	}
}

func TestGeminiClient_Generate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(r.URL.Path, "gemini-test:generateContent") {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("x-goog-api-key"); got != "g-key" {
			t.Errorf("unexpected api key header %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"Tree-lined avenue."}]}}]}`))
	}))
	defer server.Close()

	backend, err := NewBackend(context.Background(), Config{
		GeminiAPIKey:  "g-key",
		GeminiModel:   "gemini-test",
		GeminiBaseURL: server.URL,
	})
	if err != nil {
		t.Fatalf("NewBackend failed: %v", err)
	}
	if backend.Kind() != BackendGemini {
		t.Fatalf("expected gemini backend, got %s", backend.Kind())
	}

	text, err := backend.Generate(context.Background(), "describe", []byte{0xff, 0xd8})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if text != "Tree-lined avenue." {
		t.Errorf("unexpected text %q", text)
	}
}

type recordingBackend struct {
	prompt string
	text   string
	err    error
}

func (b *recordingBackend) Kind() BackendKind { return BackendGemini }

func (b *recordingBackend) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	b.prompt = prompt
	return b.text, b.err
}

func TestCaptioner_Caption(t *testing.T) {
	backend := &recordingBackend{text: "  raw caption  "}
	captioner := NewCaptioner(backend, nil)

	env := environment.Context{Weather: "Snow", TimeOfDay: "evening"}
	text, err := captioner.Caption(context.Background(), []byte{1}, env)
	if err != nil {
		t.Fatalf("Caption failed: %v", err)
	}
	if text != "  raw caption  " {
		t.Errorf("caption should be returned unmodified, got %q", text)
	}
	if backend.prompt != BuildPrompt(env.Summary(), "evening") {
		t.Errorf("unexpected prompt %q", backend.prompt)
	}
}

func TestCaptioner_PropagatesError(t *testing.T) {
	want := errors.New("boom")
	captioner := NewCaptioner(&recordingBackend{err: want}, nil)
	if _, err := captioner.Caption(context.Background(), []byte{1}, environment.Context{}); !errors.Is(err, want) {
		t.Fatalf("expected backend error, got %v", err)
	}
}
