package telegram

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/idanyas/amdrates/config"
)

// Handler answers one normalized command with the reply text.
type Handler func(text string) string

// Bot connects the chat transport to the query facade.
type Bot struct {
	client  *Client
	handler Handler
}

func NewBot(client *Client, handler Handler) *Bot {
	return &Bot{client: client, handler: handler}
}

// pollTimeout is the long-poll hold in seconds.
const pollTimeout = 25

// RunPolling consumes updates until the context is cancelled. Any leftover
// webhook is dropped first; the API refuses to serve both modes at once.
func (b *Bot) RunPolling(ctx context.Context) error {
	if err := b.client.DeleteWebhook(ctx); err != nil {
		return fmt.Errorf("drop stale webhook: %w", err)
	}
	var offset int64
	for {
		updates, err := b.client.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			log.Warn().Err(err).Msg("poll failed, backing off")
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(3 * time.Second):
			}
			continue
		}
		for _, u := range updates {
			if u.UpdateID >= offset {
				offset = u.UpdateID + 1
			}
			b.dispatch(ctx, u)
		}
	}
}

func (b *Bot) dispatch(ctx context.Context, u Update) {
	if u.Message == nil || u.Message.Text == "" {
		return
	}
	reply := b.handler(normalizeCommand(u.Message.Text))
	if reply == "" {
		return
	}
	if err := b.client.SendMessage(ctx, u.Message.Chat.ID, reply); err != nil {
		log.Warn().Err(err).Int64("chat", u.Message.Chat.ID).Msg("send failed")
	}
}

// normalizeCommand strips the transport decoration: the leading slash and
// the @botname mention group clients append to the command word.
func normalizeCommand(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "/")
	cmd, rest, hasArgs := strings.Cut(text, " ")
	if at := strings.Index(cmd, "@"); at > 0 {
		cmd = cmd[:at]
	}
	if hasArgs {
		return cmd + " " + rest
	}
	return cmd
}

// RunWebhook registers the public URL with the API and serves pushed
// updates, plus the metrics scrape endpoint when one is given. The update
// path embeds the bot token so strangers cannot post fake updates.
func (b *Bot) RunWebhook(ctx context.Context, wh config.WebhookConfig, metricsHandler http.Handler) error {
	r := mux.NewRouter()
	r.HandleFunc("/"+b.client.token, b.handleUpdate).Methods(http.MethodPost)
	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler).Methods(http.MethodGet)
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", wh.Port),
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	publicURL := fmt.Sprintf("https://%s:%d/%s", wh.Host, wh.Port, b.client.token)
	if err := b.client.SetWebhook(ctx, publicURL); err != nil {
		return fmt.Errorf("set webhook: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		if wh.Cert != "" {
			// The key is expected next to the cert: server.pem / server.key.
			key := strings.TrimSuffix(wh.Cert, ".pem") + ".key"
			errCh <- srv.ListenAndServeTLS(wh.Cert, key)
			return
		}
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (b *Bot) handleUpdate(w http.ResponseWriter, r *http.Request) {
	var u Update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		http.Error(w, "bad update", http.StatusBadRequest)
		return
	}
	b.dispatch(r.Context(), u)
	w.WriteHeader(http.StatusOK)
}
