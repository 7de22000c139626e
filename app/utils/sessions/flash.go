package sessions

import (
	"log"
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	flashCookieName = "restomenu-flash"

	successFlashKey = "success"
	errorFlashKey   = "error"
)

// FlashStore carries one-shot success/error messages across the
// redirect-after-post flow of the admin forms.
type FlashStore struct {
	store *sessions.CookieStore
}

func NewFlashStore(keyPairs ...[]byte) *FlashStore {
	store := sessions.NewCookieStore(keyPairs...)
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   300,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &FlashStore{store: store}
}

func (f *FlashStore) Success(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, successFlashKey, message)
}

func (f *FlashStore) Error(w http.ResponseWriter, r *http.Request, message string) {
	f.add(w, r, errorFlashKey, message)
}

func (f *FlashStore) add(w http.ResponseWriter, r *http.Request, key, message string) {
	session, err := f.store.Get(r, flashCookieName)
	if err != nil {
		log.Printf("FlashStore: error getting session: %v", err)
	}
	if session == nil {
		return
	}
	session.AddFlash(message, key)
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error saving flash: %v", err)
	}
}

// Pop drains and returns the pending messages, clearing them from the
// cookie in the same response.
func (f *FlashStore) Pop(w http.ResponseWriter, r *http.Request) (successes, errors []string) {
	session, err := f.store.Get(r, flashCookieName)
	if err != nil || session == nil {
		return nil, nil
	}
	for _, v := range session.Flashes(successFlashKey) {
		if s, ok := v.(string); ok {
			successes = append(successes, s)
		}
	}
	for _, v := range session.Flashes(errorFlashKey) {
		if s, ok := v.(string); ok {
			errors = append(errors, s)
		}
	}
	if err := session.Save(r, w); err != nil {
		log.Printf("FlashStore: error clearing flashes: %v", err)
	}
	return successes, errors
}
