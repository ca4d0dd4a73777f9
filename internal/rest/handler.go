package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/lib/pq"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/eventlink/chat-service/internal/api"
	"github.com/eventlink/chat-service/internal/config"
	"github.com/eventlink/chat-service/internal/model"
	"github.com/eventlink/chat-service/internal/pkg/room"
	"github.com/eventlink/chat-service/internal/pkg/tx"
)

type Handler struct {
	repository DBRepo
	authorizer AccessAuthorizer
	notifier   Notifier
	validator  Validator
}

func New(
	repo DBRepo,
	authorizer AccessAuthorizer,
	notifier Notifier,
	validator Validator,
) *Handler {
	return &Handler{
		repository: repo,
		authorizer: authorizer,
		notifier:   notifier,
		validator:  validator,
	}
}

func AttachRoutes(router chi.Router, handler *Handler) {
	router.Post("/api/chat/private/messages", handler.SendPrivateMessage)
	router.Get("/api/chat/private/{user_id}/messages", handler.GetPrivateHistory)
	router.Post("/api/chat/private/{user_id}/read", handler.MarkPrivateRead)
	router.Post("/api/chat/events/{event_id}/messages", handler.SendEventMessage)
	router.Get("/api/chat/events/{event_id}/messages", handler.GetEventHistory)
	router.Post("/api/chat/events/{event_id}/read", handler.MarkEventRead)
}

func (h *Handler) SendPrivateMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendPrivateMessage")

	var req api.SendPrivateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateSendPrivateMessage(&req, senderID); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	receiverID := uuid.MustParse(req.ReceiverId)
	message := model.Message{
		ID:         uuid.New(),
		RoomID:     room.Private(senderID, req.ReceiverId),
		RoomType:   model.PrivateRoomType,
		SenderID:   uuid.MustParse(senderID),
		ReceiverID: &receiverID,
		Content:    req.Content,
		ReadBy:     pq.StringArray{},
	}

	err := tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.SaveMessage(ctx, &message)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		h.writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	// best-effort fan-out, decoupled from the response
	notifyCtx := context.WithoutCancel(r.Context())
	go func() {
		if err := h.notifier.NotifyPrivate(notifyCtx, &message); err != nil {
			logger.Error(fmt.Sprintf("failed to dispatch chat notification: %v", err))
		}
	}()

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
		RoomId:    message.RoomID,
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetPrivateHistory(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetPrivateHistory")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	otherUserID := chi.URLParam(r, "user_id")
	if _, err := uuid.Parse(otherUserID); err != nil {
		logger.Error(fmt.Sprintf("invalid user id: %v", err))
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	roomID := room.Private(callerID, otherUserID)
	if err := h.authorizer.AuthorizePrivate(callerID, roomID); err != nil {
		logger.Error(fmt.Sprintf("caller is not a room participant: %v", err))
		h.writeError(w, "caller is not a room participant", http.StatusForbidden)
		return
	}

	messages, err := h.repository.GetRoomMessages(r.Context(), roomID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetHistoryResponse{Messages: messagesToAPI(messages)}, http.StatusOK)
}

func (h *Handler) MarkPrivateRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkPrivateRead")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	otherUserID := chi.URLParam(r, "user_id")
	if _, err := uuid.Parse(otherUserID); err != nil {
		logger.Error(fmt.Sprintf("invalid user id: %v", err))
		h.writeError(w, "invalid user id", http.StatusBadRequest)
		return
	}

	roomID := room.Private(callerID, otherUserID)
	if err := h.repository.MarkPrivateRead(r.Context(), roomID, callerID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark messages read: %v", err))
		h.writeError(w, "failed to mark messages read", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.AckResponse{Success: true}, http.StatusOK)
}

func (h *Handler) SendEventMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("SendEventMessage")

	var req api.SendEventMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	eventID := chi.URLParam(r, "event_id")
	eventUUID, err := uuid.Parse(eventID)
	if err != nil {
		logger.Error(fmt.Sprintf("invalid event id: %v", err))
		h.writeError(w, "invalid event id", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateSendEventMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	eventInfo, err := h.authorizer.AuthorizeEvent(r.Context(), senderID, eventID)
	if err != nil {
		h.writeAuthorizationError(w, logger, err)
		return
	}

	message := model.Message{
		ID:       uuid.New(),
		RoomID:   room.Event(eventID),
		RoomType: model.EventRoomType,
		SenderID: uuid.MustParse(senderID),
		EventID:  &eventUUID,
		Content:  req.Content,
		ReadBy:   pq.StringArray{},
	}

	err = tx.TxExecute(r.Context(), func(ctx context.Context) error {
		return h.repository.SaveMessage(ctx, &message)
	})
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		h.writeError(w, "failed to send message", http.StatusInternalServerError)
		return
	}

	notifyCtx := context.WithoutCancel(r.Context())
	go func() {
		if err := h.notifier.NotifyEvent(notifyCtx, &message, eventInfo); err != nil {
			logger.Error(fmt.Sprintf("failed to dispatch event notifications: %v", err))
		}
	}()

	response := api.SendMessageResponse{
		MessageId: message.ID.String(),
		RoomId:    message.RoomID,
		SentAt:    message.SentAt.Format(time.RFC3339),
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetEventHistory(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetEventHistory")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	eventID := chi.URLParam(r, "event_id")
	if _, err := uuid.Parse(eventID); err != nil {
		logger.Error(fmt.Sprintf("invalid event id: %v", err))
		h.writeError(w, "invalid event id", http.StatusBadRequest)
		return
	}

	if _, err := h.authorizer.AuthorizeEvent(r.Context(), callerID, eventID); err != nil {
		h.writeAuthorizationError(w, logger, err)
		return
	}

	messages, err := h.repository.GetRoomMessages(r.Context(), room.Event(eventID))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, "failed to fetch messages", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.GetHistoryResponse{Messages: messagesToAPI(messages)}, http.StatusOK)
}

func (h *Handler) MarkEventRead(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("MarkEventRead")

	callerID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get caller ID")
		h.writeError(w, "failed to get caller ID", http.StatusInternalServerError)
		return
	}

	eventID := chi.URLParam(r, "event_id")
	if _, err := uuid.Parse(eventID); err != nil {
		logger.Error(fmt.Sprintf("invalid event id: %v", err))
		h.writeError(w, "invalid event id", http.StatusBadRequest)
		return
	}

	if _, err := h.authorizer.AuthorizeEvent(r.Context(), callerID, eventID); err != nil {
		h.writeAuthorizationError(w, logger, err)
		return
	}

	if err := h.repository.MarkRoomRead(r.Context(), room.Event(eventID), callerID); err != nil {
		logger.Error(fmt.Sprintf("failed to mark messages read: %v", err))
		h.writeError(w, "failed to mark messages read", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, api.AckResponse{Success: true}, http.StatusOK)
}

// ----------------------------- helpers -----------------------------

func messagesToAPI(messages *model.MessageList) []api.Message {
	apiMessages := make([]api.Message, len(*messages))
	for i, msg := range *messages {
		var receiverID *string
		if msg.ReceiverID != nil {
			id := msg.ReceiverID.String()
			receiverID = &id
		}

		var eventID *string
		if msg.EventID != nil {
			id := msg.EventID.String()
			eventID = &id
		}

		readBy := []string(msg.ReadBy)
		if readBy == nil {
			readBy = []string{}
		}

		apiMessages[i] = api.Message{
			Id:         msg.ID.String(),
			RoomId:     msg.RoomID,
			RoomType:   msg.RoomType,
			SenderId:   msg.SenderID.String(),
			ReceiverId: receiverID,
			EventId:    eventID,
			Content:    msg.Content,
			ReadBy:     readBy,
			SentAt:     msg.SentAt.Format(time.RFC3339),
		}
	}
	return apiMessages
}

func (h *Handler) writeAuthorizationError(w http.ResponseWriter, logger logger_lib.LoggerInterface, err error) {
	switch {
	case errors.Is(err, model.ErrEventNotFound):
		logger.Error("event not found")
		h.writeError(w, "event not found", http.StatusNotFound)
	case errors.Is(err, model.ErrNotAMember):
		logger.Error("caller is not a participant of the event")
		h.writeError(w, "you are not a participant of this event", http.StatusForbidden)
	default:
		logger.Error(fmt.Sprintf("failed to authorize caller: %v", err))
		h.writeError(w, "failed to authorize caller", http.StatusInternalServerError)
	}
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
