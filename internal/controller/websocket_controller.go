package controller

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/benbeisheim/ponychess-backend/internal/model"
	"github.com/benbeisheim/ponychess-backend/internal/service"
	"github.com/benbeisheim/ponychess-backend/internal/ws"
	"github.com/gofiber/websocket/v2"
)

type WebSocketController struct {
	gameService *service.GameService
}

func NewWebSocketController(gameService *service.GameService) *WebSocketController {
	return &WebSocketController{
		gameService: gameService,
	}
}

// HandleConnection serves one client. Every request is answered on the same
// connection with the resulting game state or an error; nothing is pushed
// to other connections.
func (wsc *WebSocketController) HandleConnection(c *websocket.Conn) {
	gameID, _ := c.Locals("wsGameID").(string)
	if gameID == "" {
		gameID = c.Params("gameId")
	}

	state, err := wsc.gameService.GetGameState(gameID)
	if err != nil {
		log.Printf("ws %s: %v", gameID, err)
		wsc.sendError(c, err)
		c.Close()
		return
	}
	if err := wsc.sendState(c, state); err != nil {
		log.Printf("ws %s: write error: %v", gameID, err)
		return
	}

	for {
		messageType, message, err := c.ReadMessage()
		if err != nil {
			log.Printf("ws %s: read error: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg ws.Message
		if err := json.Unmarshal(message, &msg); err != nil {
			wsc.sendError(c, fmt.Errorf("parse error: %w", err))
			continue
		}

		state, err := wsc.handleMessage(gameID, msg)
		if err != nil {
			wsc.sendError(c, err)
			continue
		}
		if err := wsc.sendState(c, state); err != nil {
			log.Printf("ws %s: write error: %v", gameID, err)
			break
		}
	}
}

func (wsc *WebSocketController) handleMessage(gameID string, msg ws.Message) (model.GameState, error) {
	switch msg.Type {
	case ws.MessageTypeMove:
		var move model.WSMove
		if err := json.Unmarshal(msg.Payload, &move); err != nil {
			return model.GameState{}, err
		}
		return wsc.gameService.HandleMove(gameID, move)
	case ws.MessageTypeUndo:
		return wsc.gameService.Undo(gameID)
	case ws.MessageTypeReset:
		return wsc.gameService.Reset(gameID)
	case ws.MessageTypeLoad:
		var load ws.LoadPayload
		if err := json.Unmarshal(msg.Payload, &load); err != nil {
			return model.GameState{}, err
		}
		return wsc.gameService.LoadSetup(gameID, load.Setup)
	case ws.MessageTypeGameState:
		return wsc.gameService.GetGameState(gameID)
	default:
		return model.GameState{}, fmt.Errorf("unknown message type: %s", msg.Type)
	}
}

func (wsc *WebSocketController) sendState(c *websocket.Conn, state model.GameState) error {
	payload, err := json.Marshal(state)
	if err != nil {
		return err
	}
	return c.WriteJSON(ws.Message{
		Type:    ws.MessageTypeGameState,
		Payload: payload,
	})
}

func (wsc *WebSocketController) sendError(c *websocket.Conn, cause error) {
	payload, err := json.Marshal(ws.ErrorPayload{Error: cause.Error()})
	if err != nil {
		return
	}
	if err := c.WriteJSON(ws.Message{Type: ws.MessageTypeError, Payload: payload}); err != nil {
		log.Printf("ws: failed to send error: %v", err)
	}
}
