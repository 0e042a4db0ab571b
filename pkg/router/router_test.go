package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecofinds/ecofinds/pkg/router"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRouteURL(t *testing.T) {
	r := router.New()
	r.Get("/products/{id}", "products.show", ok)

	url, err := r.URL("products.show", map[string]string{"id": "42"})
	if err != nil {
		t.Fatalf("URL: %v", err)
	}
	if url != "/products/42" {
		t.Errorf("got %q, want /products/42", url)
	}

	if _, err := r.URL("products.show", nil); err == nil {
		t.Error("expected error for missing params")
	}
	if _, err := r.URL("nope", nil); err == nil {
		t.Error("expected error for unknown route")
	}
}

func TestGroupPrefixAndParam(t *testing.T) {
	r := router.New()
	api := r.Group("/api")

	var got string
	api.Get("/products/{id}", "products.show", func(w http.ResponseWriter, req *http.Request) {
		got = router.Param(req, "id")
		w.WriteHeader(http.StatusOK)
	})

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/products/7")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	if got != "7" {
		t.Errorf("param id = %q, want 7", got)
	}
}

func TestGroupMiddlewareApplies(t *testing.T) {
	r := router.New()

	var order []string
	mw := func(label string) router.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, label)
				next.ServeHTTP(w, req)
			})
		}
	}

	outer := r.Group("/api", mw("outer"))
	inner := outer.Group("/v1", mw("inner"))
	inner.Get("/ping", "ping", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/v1/ping")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	resp.Body.Close()

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("middleware order = %v, want [outer inner]", order)
	}
}

func TestRoutesListing(t *testing.T) {
	r := router.New()
	r.Post("/b", "route.b", ok)
	r.Get("/a", "route.a", ok)

	infos := r.Routes()
	if len(infos) != 2 {
		t.Fatalf("got %d routes, want 2", len(infos))
	}
	// Sorted by path.
	if infos[0].Path != "/a" || infos[1].Path != "/b" {
		t.Errorf("unexpected order: %+v", infos)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	r := router.New()
	r.Get("/only-get", "only.get", ok)

	srv := httptest.NewServer(r.Handler())
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/only-get", "application/json", nil)
	if err != nil {
		t.Fatalf("POST: %v", err)
	}
	resp.Body.Close()

	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}
