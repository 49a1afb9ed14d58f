package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/benbeisheim/ponychess-backend/internal/model"
	"github.com/benbeisheim/ponychess-backend/internal/service"
	"github.com/gofiber/fiber/v2"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	gameService := service.NewGameService(service.NewGameManager(0, 0))
	return NewApp(gameService, AppOptions{AllowOrigins: "*"})
}

func doRequest(t *testing.T, app *fiber.App, method, path, body string) (int, []byte) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	return resp.StatusCode, data
}

func createGame(t *testing.T, app *fiber.App, body string) string {
	t.Helper()
	status, data := doRequest(t, app, http.MethodPost, "/api/game", body)
	if status != fiber.StatusCreated {
		t.Fatalf("create status = %d, body %s", status, data)
	}
	var resp struct {
		GameID string `json:"game_id"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode create: %v", err)
	}
	return resp.GameID
}

func decodeState(t *testing.T, data []byte) model.GameState {
	t.Helper()
	var state model.GameState
	if err := json.Unmarshal(data, &state); err != nil {
		t.Fatalf("decode state %s: %v", data, err)
	}
	return state
}

func TestMoveAndUndoOverHTTP(t *testing.T) {
	app := newTestApp(t)
	gameID := createGame(t, app, "")

	status, data := doRequest(t, app, http.MethodPost, "/api/game/"+gameID+"/move", `{"from":"e2","to":"e4"}`)
	if status != fiber.StatusOK {
		t.Fatalf("move status = %d, body %s", status, data)
	}
	state := decodeState(t, data)
	if state.ToMove != model.Black || state.Status != model.Playing {
		t.Fatalf("state = %+v", state)
	}
	if p := state.Board[4][4]; p == nil || p.Type != model.Pawn {
		t.Fatalf("e4 = %+v, want pawn", p)
	}

	status, data = doRequest(t, app, http.MethodPost, "/api/game/"+gameID+"/undo", "")
	if status != fiber.StatusOK {
		t.Fatalf("undo status = %d, body %s", status, data)
	}
	if state := decodeState(t, data); state.Setup != model.StartSetup {
		t.Fatalf("setup after undo = %q", state.Setup)
	}
}

func TestLegalMovesEndpoint(t *testing.T) {
	app := newTestApp(t)
	gameID := createGame(t, app, `{"setup":"7k/8/8/8/8/8/8/R7 w -"}`)

	status, data := doRequest(t, app, http.MethodGet, "/api/game/"+gameID+"/moves/a1", "")
	if status != fiber.StatusOK {
		t.Fatalf("status = %d, body %s", status, data)
	}
	var resp struct {
		Moves []string `json:"moves"`
	}
	if err := json.Unmarshal(data, &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	found := map[string]bool{}
	for _, m := range resp.Moves {
		found[m] = true
	}
	if !found["b3"] || !found["c2"] || len(resp.Moves) != 16 {
		t.Fatalf("moves = %v", resp.Moves)
	}

	status, data = doRequest(t, app, http.MethodGet, "/api/game/"+gameID+"/moves/h8?analysis=true", "")
	if status != fiber.StatusOK || !strings.Contains(string(data), "g8") {
		t.Fatalf("analysis status = %d, body %s", status, data)
	}
}

func TestPromotionEndpoint(t *testing.T) {
	app := newTestApp(t)
	gameID := createGame(t, app, `{"setup":"4k3/P7/8/8/8/8/8/4K3 w -"}`)

	status, data := doRequest(t, app, http.MethodGet, "/api/game/"+gameID+"/promotion?from=a7&to=a8", "")
	if status != fiber.StatusOK || !strings.Contains(string(data), `"needsPromotion":true`) {
		t.Fatalf("status = %d, body %s", status, data)
	}

	status, data = doRequest(t, app, http.MethodPost, "/api/game/"+gameID+"/move", `{"from":"a7","to":"a8","promotion":"knight"}`)
	if status != fiber.StatusOK {
		t.Fatalf("move status = %d, body %s", status, data)
	}
	if p := decodeState(t, data).Board[0][0]; p == nil || p.Type != model.Knight {
		t.Fatalf("a8 = %+v, want knight", p)
	}
}

func TestErrorStatusCodes(t *testing.T) {
	app := newTestApp(t)
	gameID := createGame(t, app, "")

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{name: "UnknownGame", method: http.MethodGet, path: "/api/game/missing", want: fiber.StatusNotFound},
		{name: "IllegalMove", method: http.MethodPost, path: "/api/game/" + gameID + "/move", body: `{"from":"e2","to":"e5"}`, want: fiber.StatusUnprocessableEntity},
		{name: "WrongTurn", method: http.MethodPost, path: "/api/game/" + gameID + "/move", body: `{"from":"e7","to":"e5"}`, want: fiber.StatusUnprocessableEntity},
		{name: "BadSquare", method: http.MethodPost, path: "/api/game/" + gameID + "/move", body: `{"from":"e9","to":"e5"}`, want: fiber.StatusBadRequest},
		{name: "BadPromotionName", method: http.MethodPost, path: "/api/game/" + gameID + "/move", body: `{"from":"e2","to":"e4","promotion":"dragon"}`, want: fiber.StatusBadRequest},
		{name: "EmptyUndo", method: http.MethodPost, path: "/api/game/" + gameID + "/undo", want: fiber.StatusUnprocessableEntity},
		{name: "MalformedLoad", method: http.MethodPost, path: "/api/game/" + gameID + "/load", body: `{"setup":"8/8/8/8/8/8/8/7x w"}`, want: fiber.StatusBadRequest},
		{name: "MalformedCreate", method: http.MethodPost, path: "/api/game", body: `{"setup":"8/8 w"}`, want: fiber.StatusBadRequest},
		{name: "SocketWithoutUpgrade", method: http.MethodGet, path: "/ws/game/" + gameID, want: fiber.StatusUpgradeRequired},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			status, data := doRequest(t, app, tt.method, tt.path, tt.body)
			if status != tt.want {
				t.Fatalf("status = %d, want %d, body %s", status, tt.want, data)
			}
		})
	}
}

func TestResetLoadAndDelete(t *testing.T) {
	app := newTestApp(t)
	gameID := createGame(t, app, "")

	status, data := doRequest(t, app, http.MethodPost, "/api/game/"+gameID+"/load", `{"setup":"k7/P7/1K6/8/8/8/8/8 b -"}`)
	if status != fiber.StatusOK {
		t.Fatalf("load status = %d, body %s", status, data)
	}
	if state := decodeState(t, data); state.Status != model.Stalemate {
		t.Fatalf("status = %s, want stalemate", state.Status)
	}

	status, data = doRequest(t, app, http.MethodPost, "/api/game/"+gameID+"/reset", "")
	if status != fiber.StatusOK || decodeState(t, data).Setup != model.StartSetup {
		t.Fatalf("reset status = %d, body %s", status, data)
	}

	if status, _ := doRequest(t, app, http.MethodDelete, "/api/game/"+gameID, ""); status != fiber.StatusNoContent {
		t.Fatalf("delete status = %d", status)
	}
	if status, _ := doRequest(t, app, http.MethodGet, "/api/game/"+gameID, ""); status != fiber.StatusNotFound {
		t.Fatalf("get after delete status = %d", status)
	}
}
