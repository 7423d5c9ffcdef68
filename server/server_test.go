package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pbanos/id3"
	"github.com/pbanos/id3/dataset"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func trainedClassifier(t *testing.T) *id3.Classifier {
	c := id3.NewClassifier(nil)
	err := c.Train(&dataset.Table{
		Header: []string{"outlook", "windy", "play"},
		Rows: [][]string{
			{"sunny", "false", "no"},
			{"sunny", "true", "no"},
			{"overcast", "false", "yes"},
			{"rain", "false", "yes"},
			{"rain", "true", "no"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func do(s *Server, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func TestClassify(t *testing.T) {
	s := New(trainedClassifier(t), nil, "")
	body := `{"rows":[["sunny","false"],["overcast","true"]],"samples":[{"outlook":"rain","windy":"true"},{"windy":"false"}]}`
	w := do(s, http.MethodPost, "/classify", body, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200 but got %d: %s", w.Code, w.Body.String())
	}
	var resp classifyResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	// The last sample has no outlook, an unseen value at the root.
	expected := []string{"no", "yes", "no", "no"}
	if !reflect.DeepEqual(resp.Classes, expected) {
		t.Errorf("expected %v but got %v", expected, resp.Classes)
	}
}

func TestClassifyErrors(t *testing.T) {
	s := New(trainedClassifier(t), nil, "secret")
	if w := do(s, http.MethodPost, "/classify", `{"rows":[]}`, nil); w.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401 without API key but got %d", w.Code)
	}
	key := map[string]string{"X-API-Key": "secret"}
	if w := do(s, http.MethodPost, "/classify", `{"rows":`, key); w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for malformed body but got %d", w.Code)
	}
	if w := do(s, http.MethodPost, "/classify", `{"rows":[["sunny"]]}`, key); w.Code != http.StatusBadRequest {
		t.Errorf("expected status 400 for short row but got %d", w.Code)
	}
	untrained := New(id3.NewClassifier(nil), nil, "")
	if w := do(untrained, http.MethodPost, "/classify", `{"rows":[["sunny","false"]]}`, nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 for untrained classifier but got %d", w.Code)
	}
	if w := do(untrained, http.MethodGet, "/tree", "", nil); w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503 for untrained tree but got %d", w.Code)
	}
}

func TestTreeRoutes(t *testing.T) {
	c := trainedClassifier(t)
	s := New(c, nil, "")
	text, err := c.Render()
	if err != nil {
		t.Fatal(err)
	}
	w := do(s, http.MethodGet, "/tree", "", nil)
	if w.Code != http.StatusOK || w.Body.String() != text {
		t.Errorf("expected status 200 with\n%s\nbut got %d with\n%s", text, w.Code, w.Body.String())
	}
	w = do(s, http.MethodGet, "/tree.dot", "", nil)
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "digraph") {
		t.Errorf("expected DOT digraph but got %d with\n%s", w.Code, w.Body.String())
	}
}

func TestHealth(t *testing.T) {
	for _, c := range []struct {
		classifier *id3.Classifier
		trained    bool
	}{
		{trainedClassifier(t), true},
		{id3.NewClassifier(nil), false},
	} {
		w := do(New(c.classifier, nil, ""), http.MethodGet, "/healthz", "", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected status 200 but got %d", w.Code)
		}
		var resp struct {
			Trained bool `json:"trained"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatal(err)
		}
		if resp.Trained != c.trained {
			t.Errorf("expected trained %v but got %v", c.trained, resp.Trained)
		}
	}
}
