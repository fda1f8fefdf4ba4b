package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"room-booking/internal/data/entity"
	"room-booking/internal/dto/request"
	"room-booking/internal/dto/response"

	"go.uber.org/zap"
)

func TestBootstrapWithoutToken(t *testing.T) {
	fx := newFixture()
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, ok, err := svc.Bootstrap(context.Background())
	if err != nil || ok {
		t.Fatalf("expected no session, got ok=%v err=%v", ok, err)
	}

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Authenticated || status.Redirect != RouteLogin {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestBootstrapReadsCenter(t *testing.T) {
	tests := []struct {
		name     string
		userData string
		want     string
	}{
		{name: "string center", userData: `{"centerId":"c1"}`, want: "c1"},
		{name: "numeric center", userData: `{"centerId":7}`, want: "7"},
		{name: "garbled", userData: `{not json`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := newFixture()
			fx.session.Set(context.Background(), entity.SessionKeyAccessToken, "t1")
			fx.session.Set(context.Background(), entity.SessionKeyUserData, tt.userData)
			svc := NewSessionService(fx.repo, zap.NewNop())

			session, ok, err := svc.Bootstrap(context.Background())
			if err != nil || !ok {
				t.Fatalf("expected session, got ok=%v err=%v", ok, err)
			}
			if session.AccessToken != "t1" || session.CenterID != tt.want {
				t.Fatalf("unexpected session %+v", session)
			}
		})
	}
}

func TestLoginStoresSession(t *testing.T) {
	fx := newFixture()
	fx.auth.res = &response.RemoteLoginResponse{
		Token: "t2",
		User:  json.RawMessage(`{"centerId":"c9","name":"Ada"}`),
	}
	svc := NewSessionService(fx.repo, zap.NewNop())

	res, err := svc.Login(context.Background(), &request.LoginRequest{Email: "  Ada@Example.com ", Password: "secret1"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if !res.Authenticated || res.CenterID != "c9" || res.Redirect != RouteIndex {
		t.Fatalf("unexpected response %+v", res)
	}

	if fx.auth.got.Email != "ada@example.com" || !fx.auth.got.Remember {
		t.Fatalf("unexpected remote request %+v", fx.auth.got)
	}
	if v, _, _ := fx.session.Get(context.Background(), entity.SessionKeyAccessToken); v != "t2" {
		t.Fatalf("expected stored token, got %q", v)
	}
	if v, _, _ := fx.session.Get(context.Background(), entity.SessionKeyUserData); !strings.Contains(v, "c9") {
		t.Fatalf("expected stored user data, got %q", v)
	}
}

func TestBootstrapUnreadableTokenIsLoggedOut(t *testing.T) {
	fx := newFixture()
	fx.repo.Session = failingSession{err: errors.New("cannot open sealed value")}
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, ok, err := svc.Bootstrap(context.Background())
	if err != nil || ok {
		t.Fatalf("expected logged out, got ok=%v err=%v", ok, err)
	}

	status, err := svc.Status(context.Background())
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if status.Authenticated || status.Redirect != RouteLogin {
		t.Fatalf("expected login redirect, got %+v", status)
	}
}

func TestLoginTrimsEmailBeforeValidation(t *testing.T) {
	for _, email := range []string{" Ada@X.com ", " ada@x.com", "Ada@X.com "} {
		t.Run(email, func(t *testing.T) {
			fx := newFixture()
			fx.auth.res = &response.RemoteLoginResponse{AccessToken: "t1"}
			svc := NewSessionService(fx.repo, zap.NewNop())

			if _, err := svc.Login(context.Background(), &request.LoginRequest{Email: email, Password: "secret1"}); err != nil {
				t.Fatalf("login: %v", err)
			}
			if fx.auth.got.Email != "ada@x.com" {
				t.Fatalf("expected normalized email, got %q", fx.auth.got.Email)
			}
		})
	}
}

func TestLoginValidation(t *testing.T) {
	fx := newFixture()
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "nope", Password: "123"})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if ve.Fields["email"] == "" || ve.Fields["password"] == "" {
		t.Fatalf("expected email and password errors, got %v", ve.Fields)
	}
	if fx.auth.got != nil {
		t.Fatal("expected no remote call")
	}
}

func TestLoginRejected(t *testing.T) {
	fx := newFixture()
	fx.auth.err = statusErr(401)
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	if !IsLoginRejected(err) {
		t.Fatalf("expected ErrLoginRejected, got %v", err)
	}
	if !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected server message in %q", err.Error())
	}
}

func TestLoginWithoutToken(t *testing.T) {
	fx := newFixture()
	fx.auth.res = &response.RemoteLoginResponse{}
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	if !errors.Is(err, ErrNoAccessToken) {
		t.Fatalf("expected ErrNoAccessToken, got %v", err)
	}
}

func TestLoginNetworkFailure(t *testing.T) {
	fx := newFixture()
	fx.auth.err = errNetwork
	svc := NewSessionService(fx.repo, zap.NewNop())

	_, err := svc.Login(context.Background(), &request.LoginRequest{Email: "ada@example.com", Password: "secret1"})
	var te *TransportError
	if !errors.As(err, &te) || !te.IsNetwork() {
		t.Fatalf("expected network TransportError, got %v", err)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	fx := newFixture()
	fx.session.Set(context.Background(), entity.SessionKeyAccessToken, "t1")
	fx.session.Set(context.Background(), entity.SessionKeyUserData, `{"centerId":"c1"}`)
	svc := NewSessionService(fx.repo, zap.NewNop())

	if err := svc.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, ok, _ := svc.Bootstrap(context.Background()); ok {
		t.Fatal("expected session to be gone")
	}
	if _, ok, _ := fx.session.Get(context.Background(), entity.SessionKeyUserData); ok {
		t.Fatal("expected user data to be gone")
	}
}
