package flash

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yigit/cadastro/internal/pkg/apperrors"
)

func newTestStore() *Store {
	return NewStore(Config{
		Secret:     "test-secret",
		CookieName: "flash",
		TTL:        time.Minute,
	})
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	store := newTestStore()
	msg := Message{Name: "Ana", Known: true, Category: CategoryWarning, Text: "Estudante já existe na base de dados!"}

	token, err := store.Encode(msg)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	got, err := store.Decode(token)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if *got != msg {
		t.Fatalf("expected %+v, got %+v", msg, *got)
	}
}

func TestDecodeRejectsForeignSecretAndExpiry(t *testing.T) {
	store := newTestStore()
	token, err := store.Encode(Message{Name: "Ana"})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	other := NewStore(Config{Secret: "other-secret", CookieName: "flash", TTL: time.Minute})
	if _, err := other.Decode(token); !errors.Is(err, apperrors.ErrFlashInvalid) {
		t.Fatalf("expected ErrFlashInvalid for foreign secret, got %v", err)
	}

	store.now = func() time.Time { return time.Now().Add(2 * time.Minute) }
	if _, err := store.Decode(token); !errors.Is(err, apperrors.ErrFlashInvalid) {
		t.Fatalf("expected ErrFlashInvalid for expired token, got %v", err)
	}
}

func TestSetThenPopClearsCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore()

	setRec := httptest.NewRecorder()
	setCtx, _ := gin.CreateTestContext(setRec)
	setCtx.Request = httptest.NewRequest(http.MethodPost, "/alunos", nil)
	if err := store.Set(setCtx, Message{Name: "Ana", Category: CategorySuccess}); err != nil {
		t.Fatalf("set: %v", err)
	}
	cookies := setRec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != "flash" || !cookies[0].HttpOnly {
		t.Fatalf("expected one http-only flash cookie, got %+v", cookies)
	}

	popRec := httptest.NewRecorder()
	popCtx, _ := gin.CreateTestContext(popRec)
	popCtx.Request = httptest.NewRequest(http.MethodGet, "/alunos", nil)
	popCtx.Request.AddCookie(cookies[0])

	msg, err := store.Pop(popCtx)
	if err != nil {
		t.Fatalf("pop: %v", err)
	}
	if msg == nil || msg.Name != "Ana" || msg.Known {
		t.Fatalf("unexpected message %+v", msg)
	}
	cleared := popRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge >= 0 {
		t.Fatalf("expected flash cookie to be cleared, got %+v", cleared)
	}
}

func TestPopWithoutCookieLeavesResponseUntouched(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := newTestStore()

	rec := httptest.NewRecorder()
	ctx, _ := gin.CreateTestContext(rec)
	ctx.Request = httptest.NewRequest(http.MethodGet, "/alunos", nil)

	msg, err := store.Pop(ctx)
	if err != nil || msg != nil {
		t.Fatalf("expected no message and no error, got %+v %v", msg, err)
	}
	if len(rec.Result().Cookies()) != 0 {
		t.Fatalf("expected no Set-Cookie header")
	}
}
