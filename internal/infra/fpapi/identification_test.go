package fpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"fpdemo/internal/domain"
)

func identificationTestClient(serverURL string, cfg IdentificationConfig) *IdentificationClient {
	domainOnly := serverURL[len("http://"):]
	cfg.Region = domain.CustomRegion(domainOnly)
	return NewIdentificationClient(newPlaintextTransport(), cfg)
}

func TestIdentify_Success(t *testing.T) {
	var gotPayload identifyPayload
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("api_key")
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"v": "2",
			"requestId": "req-1",
			"visitorId": "visitor-1",
			"visitorFound": true,
			"confidence": 0.97
		}`))
	}))
	defer server.Close()

	client := identificationTestClient(server.URL, IdentificationConfig{
		PublicKey:              "pk-test",
		ExtendedResponseFormat: true,
	})

	result, err := client.Identify(context.Background())
	if err != nil {
		t.Fatalf("identify: %v", err)
	}
	if gotQuery != "pk-test" {
		t.Fatalf("expected api_key query pk-test, got %q", gotQuery)
	}
	if !gotPayload.ExtendedResult {
		t.Fatalf("expected extendedResult true in payload")
	}
	if result.RequestID != "req-1" || result.VisitorID != "visitor-1" {
		t.Fatalf("unexpected result %+v", result)
	}
	if result.Confidence != 0.97 {
		t.Fatalf("expected confidence 0.97, got %f", result.Confidence)
	}
}

func TestIdentify_APIErrorEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":"TokenNotFound","message":"token not found"}}`))
	}))
	defer server.Close()

	client := identificationTestClient(server.URL, IdentificationConfig{PublicKey: "pk-bad"})
	_, err := client.Identify(context.Background())

	var idErr *domain.IdentificationError
	if !errors.As(err, &idErr) {
		t.Fatalf("expected IdentificationError, got %v", err)
	}
	if idErr.Kind != domain.IdentificationAPIFailure {
		t.Fatalf("expected api failure, got %s", idErr.Kind)
	}
	if idErr.Code != domain.CodeTokenNotFound {
		t.Fatalf("expected TokenNotFound, got %s", idErr.Code)
	}
}

func TestIdentify_ConnectionFailureIsNetworkKind(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // refuse connections

	client := identificationTestClient(server.URL, IdentificationConfig{PublicKey: "pk"})
	_, err := client.Identify(context.Background())

	var idErr *domain.IdentificationError
	if !errors.As(err, &idErr) || idErr.Kind != domain.IdentificationNetworkFailure {
		t.Fatalf("expected network failure, got %v", err)
	}
}

func TestIdentify_MissingKeyFailsFast(t *testing.T) {
	client := NewIdentificationClient(NewTransport(0), IdentificationConfig{})
	_, err := client.Identify(context.Background())

	var idErr *domain.IdentificationError
	if !errors.As(err, &idErr) || idErr.Kind != domain.IdentificationOtherFailure {
		t.Fatalf("expected other failure for missing key, got %v", err)
	}
}

func TestSetLocationCollectionEnabled(t *testing.T) {
	var gotPayload identifyPayload
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotPayload)
		w.Write([]byte(`{"v":"2","requestId":"req-1","visitorId":"v"}`))
	}))
	defer server.Close()

	client := identificationTestClient(server.URL, IdentificationConfig{
		PublicKey:               "pk",
		AllowLocationCollection: true,
	})
	client.SetLocationCollectionEnabled(false)

	if _, err := client.Identify(context.Background()); err != nil {
		t.Fatalf("identify: %v", err)
	}
	if gotPayload.AllowLocation {
		t.Fatalf("expected allowLocation false after toggle")
	}
}
