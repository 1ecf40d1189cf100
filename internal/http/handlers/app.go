package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"donatehub/internal/adapter/repo"
	"donatehub/internal/auth"
	"donatehub/internal/domain"
	"donatehub/internal/infra"
	"donatehub/internal/ledger"
	"donatehub/internal/middleware"
	"donatehub/internal/reports"
)

// App bundles the handler dependencies: the SQL runner for ad-hoc reads,
// repositories, the donation ledger and the aggregation service.
type App struct {
	SQL       infra.SQLExecutor
	Logger    zerolog.Logger
	Tokens    *auth.Tokens
	Users     *repo.UserRepository
	Campaigns *repo.CampaignRepository
	Ledger    *ledger.Service
	Reports   *reports.Service
}

func NewApp(db infra.DB, logger zerolog.Logger, tokens *auth.Tokens) *App {
	return &App{
		SQL:       db,
		Logger:    logger,
		Tokens:    tokens,
		Users:     repo.NewUserRepository(db),
		Campaigns: repo.NewCampaignRepository(db),
		Ledger:    ledger.NewService(db, logger),
		Reports:   reports.NewService(db, logger),
	}
}

// envelope is the uniform response shape for every endpoint.
type envelope struct {
	StatusCode int    `json:"statusCode"`
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
}

func (a *App) json(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(envelope{
		StatusCode: code,
		Success:    code < 400,
		Message:    message,
		Data:       data,
	})
}

// fail translates a domain error into its HTTP status. Internal failures
// are logged and masked with a generic message.
func (a *App) fail(w http.ResponseWriter, r *http.Request, err error) {
	code := domain.HTTPStatus(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		a.Logger.Error().Err(err).
			Str("request_id", middleware.RequestIDFromContext(r.Context())).
			Str("path", r.URL.Path).
			Msg("request failed")
		msg = "internal server error"
	}
	a.json(w, code, msg, nil)
}

// principal returns the authenticated principal. The auth middleware
// guarantees it is present on protected routes.
func (a *App) principal(r *http.Request) domain.Principal {
	p, _ := middleware.PrincipalFromContext(r.Context())
	return p
}

func decode(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidation("invalid request payload")
	}
	return nil
}
