package chat

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/samber/lo"

	"pet-adoption/internal/domain/identity"
	"pet-adoption/internal/platform/httpx"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/threads", func(tr chi.Router) {
		tr.Post("/", resolveThreadHandler(svc))
		tr.Get("/", inboxHandler(svc))

		tr.Get("/{threadID}", getThreadHandler(svc))
		tr.Get("/{threadID}/messages", listMessagesHandler(svc))
		tr.Post("/{threadID}/messages", sendMessageHandler(svc))
	})
}

// resolveThreadRequest: pet_id (contactar al dueño) o participant_id directo.
type resolveThreadRequest struct {
	PetID         string `json:"pet_id"`
	ParticipantID string `json:"participant_id"`
	DisplayName   string `json:"display_name"`
	ImageRef      string `json:"image_ref"`
}

type ParticipantResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	ImageRef    string `json:"image_ref"`
}

type ThreadResponse struct {
	ID           string                `json:"id"`
	Participants []ParticipantResponse `json:"participants"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

type InboxEntryResponse struct {
	Thread ThreadResponse      `json:"thread"`
	Other  ParticipantResponse `json:"other"`
}

type sendMessageRequest struct {
	Kind    string `json:"kind" enums:"text,image"`
	Payload string `json:"payload"`
}

type MessageResponse struct {
	ID        string        `json:"id"`
	ThreadID  string        `json:"thread_id"`
	SenderID  string        `json:"sender_id"`
	Kind      MessageKind   `json:"kind"`
	Payload   string        `json:"payload"`
	Status    MessageStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
}

// resolveThreadHandler godoc
// @Summary Abrir conversación
// @Description Resuelve (o crea) el thread entre el usuario y otro participante. Con pet_id se usa el dueño de la mascota. Llamar dos veces devuelve el mismo thread.
// @Tags chat
// @Accept json
// @Produce json
// @Param X-Debug-User-ID header string false "Solo en modo dev, email del usuario"
// @Param payload body resolveThreadRequest true "pet_id o participant_id"
// @Success 201 {object} ThreadResponse "creado"
// @Success 200 {object} ThreadResponse "ya existía"
// @Failure 400 {string} string "invalid input"
// @Failure 401 {string} string "unauthorized"
// @Failure 404 {string} string "pet not found"
// @Router /threads [post]
func resolveThreadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req resolveThreadRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		var (
			t       Thread
			created bool
			err     error
		)
		if strings.TrimSpace(req.PetID) != "" {
			t, created, err = svc.ContactOwner(r.Context(), actor, req.PetID)
		} else {
			t, created, err = svc.ResolveThread(r.Context(), actor, identity.Identity{
				ID:          req.ParticipantID,
				DisplayName: req.DisplayName,
				ImageRef:    req.ImageRef,
			})
		}
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}

		status := http.StatusOK
		if created {
			status = http.StatusCreated
		}
		httpx.WriteJSON(w, status, toThreadResponse(t))
	}
}

func inboxHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		entries, err := svc.Inbox(r.Context(), actor)
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, lo.Map(entries, func(e InboxEntry, _ int) InboxEntryResponse {
			return InboxEntryResponse{Thread: toThreadResponse(e.Thread), Other: toParticipantResponse(e.Other)}
		}))
	}
}

func getThreadHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		t, err := svc.GetThread(r.Context(), actor, threadParam(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, toThreadResponse(t))
	}
}

func listMessagesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}
		items, err := svc.Messages(r.Context(), actor, threadParam(r))
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, lo.Map(items, func(m Message, _ int) MessageResponse {
			return toMessageResponse(m)
		}))
	}
}

// sendMessageHandler godoc
// @Summary Enviar mensaje
// @Tags chat
// @Accept json
// @Produce json
// @Param threadID path string true "Thread ID"
// @Param payload body sendMessageRequest true "kind=text|image"
// @Success 201 {object} MessageResponse
// @Failure 400 {string} string "invalid input"
// @Failure 403 {string} string "forbidden"
// @Router /threads/{threadID}/messages [post]
func sendMessageHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := httpx.RequireIdentity(w, r)
		if !ok {
			return
		}

		var req sendMessageRequest
		if !httpx.DecodeJSON(w, r, &req) {
			return
		}

		m, err := svc.SendMessage(r.Context(), actor, threadParam(r), SendInput{Kind: req.Kind, Payload: req.Payload})
		if err != nil {
			httpx.WriteError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusCreated, toMessageResponse(m))
	}
}

// threadParam: chi enruta sobre RawPath cuando existe, así que el id puede venir escapado.
func threadParam(r *http.Request) string {
	raw := chi.URLParam(r, "threadID")
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}

func toParticipantResponse(p Participant) ParticipantResponse {
	return ParticipantResponse{ID: p.ID, DisplayName: p.DisplayName, ImageRef: p.ImageRef}
}

func toThreadResponse(t Thread) ThreadResponse {
	return ThreadResponse{
		ID: t.ID,
		Participants: []ParticipantResponse{
			toParticipantResponse(t.Participants[0]),
			toParticipantResponse(t.Participants[1]),
		},
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toMessageResponse(m Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ThreadID:  m.ThreadID,
		SenderID:  m.SenderID,
		Kind:      m.Kind,
		Payload:   m.Payload,
		Status:    m.Status,
		CreatedAt: m.CreatedAt,
	}
}
