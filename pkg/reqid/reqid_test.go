package reqid_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecofinds/ecofinds/pkg/reqid"
)

func TestNewIsUnique(t *testing.T) {
	a, b := reqid.New(), reqid.New()
	if len(a) != 32 {
		t.Errorf("len = %d, want 32", len(a))
	}
	if a == b {
		t.Error("two generated ids should differ")
	}
}

func TestMiddlewareGeneratesID(t *testing.T) {
	var inCtx string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = reqid.FromCtx(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if inCtx == "" {
		t.Fatal("expected a request id in the context")
	}
	if got := rec.Header().Get(reqid.Header); got != inCtx {
		t.Errorf("header %q, want %q", got, inCtx)
	}
}

func TestMiddlewareReusesUpstreamID(t *testing.T) {
	var inCtx string
	h := reqid.Middleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		inCtx = reqid.FromCtx(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(reqid.Header, "proxy-assigned")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if inCtx != "proxy-assigned" {
		t.Errorf("ctx id = %q, want proxy-assigned", inCtx)
	}
}
