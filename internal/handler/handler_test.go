package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"swipe-service/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoRequest struct {
	ID        string `params:"id" validate:"required"`
	Name      string `json:"name" validate:"required,min=1,max=5"`
	SessionID string `reqHeader:"X-Session-ID"`
}

type echoResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SessionID string `json:"session_id"`
}

type echoHandler struct {
	status int
	err    error
}

func (h *echoHandler) Handle(fbrCtx *fiber.Ctx, ctx context.Context, req *echoRequest) (*echoResponse, int, error) {
	if h.err != nil {
		return nil, h.status, h.err
	}
	return &echoResponse{ID: req.ID, Name: req.Name, SessionID: req.SessionID}, h.status, nil
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string, headers map[string]string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func TestHandleWithFiber(t *testing.T) {
	app := fiber.New()
	app.Post("/echo/:id", HandleWithFiber[echoRequest, echoResponse](&echoHandler{status: fiber.StatusCreated}))

	status, body := doJSON(t, app, fiber.MethodPost, "/echo/abc", `{"name":"bob"}`, map[string]string{SessionHeader: "s1"})
	assert.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, "abc", body["id"])
	assert.Equal(t, "bob", body["name"])
	assert.Equal(t, "s1", body["session_id"])

	status, body = doJSON(t, app, fiber.MethodPost, "/echo/abc", `{"name":"too-long-name"}`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "validation failed", body["error"])

	status, _ = doJSON(t, app, fiber.MethodPost, "/echo/abc", `{"name":`, nil)
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestHandleWithFiber_Error(t *testing.T) {
	app := fiber.New()
	app.Post("/echo/:id", HandleWithFiber[echoRequest, echoResponse](&echoHandler{status: fiber.StatusNotFound, err: errors.New("room not found")}))

	status, body := doJSON(t, app, fiber.MethodPost, "/echo/abc", `{"name":"bob"}`, nil)
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "room not found", body["error"])
}

func TestSessionID_CopiedOutOfRequestBuffers(t *testing.T) {
	// default zero-copy mode: header and query values alias reused request memory
	app := fiber.New()

	var kept []string
	app.Get("/sid", func(c *fiber.Ctx) error {
		kept = append(kept, SessionID(c))
		return c.SendStatus(fiber.StatusNoContent)
	})

	var want []string
	for i := 0; i < 20; i++ {
		path := "/sid"
		session := fmt.Sprintf("header-%02d", i)
		req := httptest.NewRequest(fiber.MethodGet, path, nil)
		if i%2 == 0 {
			req.Header.Set(SessionHeader, session)
		} else {
			session = fmt.Sprintf("query-%02d", i)
			req = httptest.NewRequest(fiber.MethodGet, path+"?session_id="+session, nil)
		}
		want = append(want, session)

		resp, err := app.Test(req)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	assert.Equal(t, want, kept)
}

func TestSessionID(t *testing.T) {
	app := fiber.New()
	app.Get("/sid", func(c *fiber.Ctx) error { return c.SendString(SessionID(c)) })

	req := httptest.NewRequest(fiber.MethodGet, "/sid?session_id=from-query", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	raw, _ := io.ReadAll(resp.Body)
	assert.Equal(t, "from-query", string(raw))

	req = httptest.NewRequest(fiber.MethodGet, "/sid?session_id=from-query", nil)
	req.Header.Set(SessionHeader, "from-header")
	resp, err = app.Test(req)
	require.NoError(t, err)
	raw, _ = io.ReadAll(resp.Body)
	assert.Equal(t, "from-header", string(raw))
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{
		RequestsPerMinute:      1,
		Burst:                  3,
		SwipeRequestsPerMinute: 1,
		SwipeBurst:             1,
	})

	app := fiber.New()
	app.Use(rl.Middleware())
	app.Get("/swipe", rl.GroupMiddleware(LimitGroupSwipes), func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	app.Get("/other", func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })

	get := func(path string) int {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, nil))
		require.NoError(t, err)
		return resp.StatusCode
	}

	assert.Equal(t, fiber.StatusOK, get("/swipe"))
	assert.Equal(t, fiber.StatusTooManyRequests, get("/swipe"))
	assert.Equal(t, fiber.StatusOK, get("/other"))
	assert.Equal(t, fiber.StatusTooManyRequests, get("/other"))
}

func TestRateLimiter_Unlimited(t *testing.T) {
	rl := NewRateLimiter(config.RateLimitConfig{})
	for range 100 {
		assert.True(t, rl.globalLimiter.Allow())
	}
	assert.True(t, rl.getOrCreateGroupLimiter(LimitGroupSwipes).Allow())
	assert.Nil(t, rl.getOrCreateGroupLimiter("unknown"))
}
