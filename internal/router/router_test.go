package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-care-journal/internal/router"
)

func TestHTTP_EndToEnd_PetAndDiary(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// 1) Crear mascota (pipeline completo con stubs locales)
	createPet(t, ts.URL, "pet-1")

	// 2) Perfil creado: avatar fijo + notas con íconos del set
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/pet-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d body=%s", st, string(body))
		}
		var resp struct {
			ImageName string `json:"image_name"`
			CareNotes []struct {
				Icon string `json:"icon"`
			} `json:"care_notes"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.ImageName != "avatar.jpg" {
			t.Fatalf("expected image_name avatar.jpg, got %q", resp.ImageName)
		}
		if len(resp.CareNotes) == 0 {
			t.Fatalf("expected generated care notes")
		}
	}

	// 3) Crear el diario del día
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/pet-1/diaries/2026-08-27", map[string]any{
			"category":     "dog",
			"birth_date":   "2023-04-01",
			"picture_name": "today.jpg",
			"weather":      "sunny",
			"temperature":  "24",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create diary, got %d body=%s", st, string(body))
		}
	}

	// 4) El diario nace sin reacción ni comentario
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/pet-1/diaries/2026-08-27", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get diary, got %d body=%s", st, string(body))
		}
		var resp struct {
			Reacted bool   `json:"reacted"`
			Comment string `json:"comment"`
			Advice  string `json:"advice"`
			Tasks   []any  `json:"tasks"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Reacted || resp.Comment != "" {
			t.Fatalf("new diary must start unreacted and without comment, body=%s", string(body))
		}
		if resp.Advice == "" || len(resp.Tasks) == 0 {
			t.Fatalf("expected generated advice and tasks, body=%s", string(body))
		}
	}

	// 5) Reaccionar y comentar
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/pet-1/diaries/2026-08-27", map[string]any{
			"reacted": true,
			"comment": "gran día",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update diary, got %d body=%s", st, string(body))
		}
		var resp struct {
			Reacted bool   `json:"reacted"`
			Comment string `json:"comment"`
		}
		_ = json.Unmarshal(body, &resp)
		if !resp.Reacted || resp.Comment != "gran día" {
			t.Fatalf("diary update not applied, body=%s", string(body))
		}
	}
}

func TestHTTP_Chat_Flow(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	// Mascota inexistente => 400
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/ghost/chat", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for missing pet, got %d", st)
		}
	}

	createPet(t, ts.URL, "pet-1")

	// Sin conversación todavía => 404
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/pet-1/chat", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 for empty history, got %d", st)
		}
	}

	// Un turno completo
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/pet-1/chat", map[string]any{
			"content": "¿cuánto ejercicio necesita?",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 chat turn, got %d body=%s", st, string(body))
		}
		var resp struct {
			Role    string `json:"role"`
			Content string `json:"content"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Role != "assistant" || resp.Content == "" {
			t.Fatalf("expected assistant reply, body=%s", string(body))
		}
	}

	// El historial guarda usuario y asistente en orden
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/pet-1/chat", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 history, got %d body=%s", st, string(body))
		}
		var resp struct {
			Messages []struct {
				Role string `json:"role"`
			} `json:"messages"`
		}
		_ = json.Unmarshal(body, &resp)
		if len(resp.Messages) != 2 || resp.Messages[0].Role != "user" || resp.Messages[1].Role != "assistant" {
			t.Fatalf("unexpected history, body=%s", string(body))
		}
	}
}

func TestHTTP_PresignedURL(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "POST", "/images/presigned-url", map[string]any{
		"method":    "put",
		"pet_id":    "pet-1",
		"file_name": "today.jpg",
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 presign, got %d body=%s", st, string(body))
	}
	var resp struct {
		URL string `json:"url"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.URL == "" {
		t.Fatalf("expected a url, body=%s", string(body))
	}

	// método inválido => 400
	st, _ = doReq(t, ts.URL, "POST", "/images/presigned-url", map[string]any{
		"method":    "delete",
		"pet_id":    "pet-1",
		"file_name": "today.jpg",
	})
	if st != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad method, got %d", st)
	}
}

func TestHTTP_Users_CRUD(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	{
		st, body := doReq(t, ts.URL, "POST", "/users/user-1", map[string]any{
			"pet_id":    "pet-1",
			"user_name": "Lucía",
			"user_role": "parent",
			"password":  "s3cret",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create user, got %d body=%s", st, string(body))
		}
		// La contraseña nunca sale
		if bytes.Contains(body, []byte("s3cret")) {
			t.Fatalf("password must not appear in responses, body=%s", string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "PUT", "/users/user-1", map[string]any{
			"user_name": "Lucía M",
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 update user, got %d body=%s", st, string(body))
		}
	}

	{
		st, body := doReq(t, ts.URL, "GET", "/users/user-1", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get user, got %d body=%s", st, string(body))
		}
		var resp struct {
			UserName string `json:"user_name"`
			UserRole string `json:"user_role"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.UserName != "Lucía M" || resp.UserRole != "parent" {
			t.Fatalf("unexpected user, body=%s", string(body))
		}
	}

	// rol inválido => 400
	{
		st, _ := doReq(t, ts.URL, "POST", "/users/user-2", map[string]any{
			"pet_id":    "pet-1",
			"user_name": "Ana",
			"user_role": "admin",
			"password":  "pw",
		})
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown role, got %d", st)
		}
	}
}

func createPet(t *testing.T, baseURL, petID string) {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets/"+petID, map[string]any{
		"name":         "Milo",
		"category":     "dog",
		"birth_date":   "2023-04-01",
		"gender":       "male",
		"picture_name": "original.jpg",
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, reader)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, b
}
