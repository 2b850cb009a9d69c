package router

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	apimiddleware "guessr/internal/delivery/api/middleware"
	"guessr/internal/delivery/api/response"
	"guessr/internal/delivery/api/router/handler"
	"guessr/internal/delivery/api/validator"
	"guessr/internal/domain/entity"
	domainerrors "guessr/internal/domain/errors"
	"guessr/internal/domain/service"
	mockService "guessr/internal/mocks/service"
	mockUsecase "guessr/internal/mocks/usecase"
	"guessr/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type apiFixture struct {
	e       *echo.Echo
	game    *mockUsecase.MockGameUsecase
	ranking *mockUsecase.MockRankingUsecase
	player  *mockUsecase.MockPlayerUsecase
	tokens  *mockService.MockTokenService
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f := &apiFixture{
		e:       echo.New(),
		game:    mockUsecase.NewMockGameUsecase(t),
		ranking: mockUsecase.NewMockRankingUsecase(t),
		player:  mockUsecase.NewMockPlayerUsecase(t),
		tokens:  mockService.NewMockTokenService(t),
	}
	f.e.HTTPErrorHandler = apimiddleware.NewErrorMiddleware(logger).HandleHTTPError
	f.e.Validator = validator.New()

	NewRouter(RouterParams{
		GameHandler:    handler.NewGameHandler(handler.GameHandlerParams{GameUC: f.game, Logger: logger}),
		RankingHandler: handler.NewRankingHandler(handler.RankingHandlerParams{RankingUC: f.ranking, Logger: logger}),
		PlayerHandler:  handler.NewPlayerHandler(handler.PlayerHandlerParams{PlayerUC: f.player, Logger: logger}),
		AuthMiddleware: apimiddleware.NewAuthMiddleware(f.tokens),
	}).RegisterRoutes(f.e)

	return f
}

func (f *apiFixture) do(method, path, body string, header ...string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

type envelope struct {
	Data  json.RawMessage     `json:"data"`
	Error *response.ErrorInfo `json:"error"`
	Meta  *response.MetaInfo  `json:"meta"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())

	return env
}

func TestRouter_Health(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, string(decode(t, rec).Data))
}

func TestRouter_StartSession_Anonymous(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()

	f.game.EXPECT().
		StartSession(mock.Anything, usecase.StartSessionInput{RoundCount: 3}).
		Return(&usecase.SessionView{SessionID: sessionID, TotalRounds: 3}, nil)

	rec := f.do(http.MethodPost, "/api/v1/sessions", `{"round_count":3}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var view usecase.SessionView
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &view))
	assert.Equal(t, sessionID, view.SessionID)
	assert.Equal(t, 3, view.TotalRounds)
}

func TestRouter_StartSession_EmptyBody(t *testing.T) {
	f := newAPIFixture(t)

	f.game.EXPECT().
		StartSession(mock.Anything, usecase.StartSessionInput{}).
		Return(&usecase.SessionView{SessionID: uuid.New()}, nil)

	rec := f.do(http.MethodPost, "/api/v1/sessions", "")
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_StartSession_OwnerFromToken(t *testing.T) {
	f := newAPIFixture(t)
	userID := uuid.New()

	f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: userID}, nil)
	f.game.EXPECT().
		StartSession(mock.Anything, mock.MatchedBy(func(in usecase.StartSessionInput) bool {
			return in.UserID != nil && *in.UserID == userID
		})).
		Return(&usecase.SessionView{SessionID: uuid.New(), UserID: &userID}, nil)

	rec := f.do(http.MethodPost, "/api/v1/sessions", `{}`, echo.HeaderAuthorization, "Bearer good-token")
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func TestRouter_StartSession_Rejected(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		token    string
		setup    func(f *apiFixture)
		wantCode int
		wantErr  string
	}{
		{
			name:  "token for another player",
			body:  `{"user_id":"` + uuid.NewString() + `"}`,
			token: "good-token",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: uuid.New()}, nil)
			},
			wantCode: http.StatusForbidden,
			wantErr:  domainerrors.CodeForbidden,
		},
		{
			name:  "expired token",
			body:  `{}`,
			token: "stale-token",
			setup: func(f *apiFixture) {
				f.tokens.EXPECT().ValidateToken("stale-token").Return(nil, errors.New("token has expired"))
			},
			wantCode: http.StatusUnauthorized,
			wantErr:  "INVALID_TOKEN",
		},
		{
			name:     "negative round count",
			body:     `{"round_count":-1}`,
			wantCode: http.StatusBadRequest,
			wantErr:  domainerrors.CodeValidationFailed,
		},
		{
			name:     "malformed body",
			body:     `{"round_count":`,
			wantCode: http.StatusBadRequest,
			wantErr:  domainerrors.CodeValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			var header []string
			if tt.token != "" {
				header = []string{echo.HeaderAuthorization, "Bearer " + tt.token}
			}

			rec := f.do(http.MethodPost, "/api/v1/sessions", tt.body, header...)
			assert.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErr, env.Error.Code)
		})
	}
}

func TestRouter_SubmitGuess(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()
	distance := 12.5

	f.game.EXPECT().
		SubmitGuess(mock.Anything, mock.MatchedBy(func(in usecase.SubmitGuessInput) bool {
			return in.SessionID == sessionID &&
				in.Guess == entity.Coordinate{Lat: 36.5, Lng: 138.25} &&
				in.Round != nil && *in.Round == 2 &&
				in.TimeSpent != nil && *in.TimeSpent == 14.5
		})).
		Return(&usecase.RoundResult{Distance: &distance, Score: 4988, CurrentRound: 3, TotalRounds: 5}, nil)

	rec := f.do(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/guesses",
		`{"lat":36.5,"lng":138.25,"round":2,"time_spent":14.5}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result usecase.RoundResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.Equal(t, 4988, result.Score)
	assert.InDelta(t, 12.5, *result.Distance, 1e-9)
}

func TestRouter_SubmitGuess_ZeroCoordinatesAreValid(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()

	f.game.EXPECT().
		SubmitGuess(mock.Anything, mock.MatchedBy(func(in usecase.SubmitGuessInput) bool {
			return in.Guess == entity.Coordinate{} && in.Round == nil
		})).
		Return(nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("guess is outside the playable area"), "invalid guess"))

	rec := f.do(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/guesses", `{"lat":0,"lng":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
	assert.Equal(t, "guess is outside the playable area", env.Error.Details)
}

func TestRouter_SubmitGuess_MissingField(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/guesses", `{"lat":36.5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decode(t, rec)
	assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
	assert.Equal(t, "lng: required", env.Error.Details)
}

func TestRouter_SubmitGuess_ErrorMapping(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    int
		wantErrCode string
	}{
		{
			name:        "completed session",
			err:         errors.Wrap(domainerrors.ErrGameAlreadyComplete, "session is completed"),
			wantCode:    http.StatusConflict,
			wantErrCode: domainerrors.CodeGameAlreadyComplete,
		},
		{
			name:        "unknown session",
			err:         errors.Wrap(domainerrors.ErrSessionNotFound, "no such session"),
			wantCode:    http.StatusNotFound,
			wantErrCode: domainerrors.CodeSessionNotFound,
		},
		{
			name:        "storage down",
			err:         domainerrors.NewStorageUnavailableError(errors.New("dial tcp: i/o timeout"), "find session"),
			wantCode:    http.StatusServiceUnavailable,
			wantErrCode: domainerrors.CodeStorageUnavailable,
		},
		{
			name:        "unclassified",
			err:         errors.New("boom"),
			wantCode:    http.StatusInternalServerError,
			wantErrCode: domainerrors.CodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)
			f.game.EXPECT().SubmitGuess(mock.Anything, mock.Anything).Return(nil, tt.err)

			rec := f.do(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/guesses", `{"lat":36.5,"lng":138.25}`)
			assert.Equal(t, tt.wantCode, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantErrCode, env.Error.Code)
			if tt.wantCode >= http.StatusInternalServerError {
				assert.Nil(t, env.Error.Details)
				assert.NotContains(t, rec.Body.String(), "dial tcp")
			}
		})
	}
}

func TestRouter_MalformedSessionID(t *testing.T) {
	f := newAPIFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.CodeSessionNotFound, decode(t, rec).Error.Code)
}

func TestRouter_TimeExpired(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()

	f.game.EXPECT().
		TimeExpired(mock.Anything, usecase.TimeExpiredInput{SessionID: sessionID, Round: 0}).
		Return(&usecase.RoundResult{IsTimeUp: true, CurrentRound: 1, TotalRounds: 5}, nil)

	rec := f.do(http.MethodPost, "/api/v1/sessions/"+sessionID.String()+"/time-expired", `{"round":0}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var result usecase.RoundResult
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &result))
	assert.True(t, result.IsTimeUp)
	assert.Nil(t, result.Distance)
}

func TestRouter_TimeExpired_RequiresRound(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantDetails string
	}{
		{name: "empty body", body: "", wantDetails: "round: required"},
		{name: "no round", body: `{"time_spent":60}`, wantDetails: "round: required"},
		{name: "negative round", body: `{"round":-1}`, wantDetails: "round: gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAPIFixture(t)

			rec := f.do(http.MethodPost, "/api/v1/sessions/"+uuid.NewString()+"/time-expired", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			env := decode(t, rec)
			require.NotNil(t, env.Error)
			assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
			assert.Equal(t, tt.wantDetails, env.Error.Details)
		})
	}
}

func TestRouter_GetSessionAndResults(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()

	f.game.EXPECT().GetSession(mock.Anything, sessionID).
		Return(&usecase.SessionView{SessionID: sessionID, Status: entity.SessionStatusPlaying}, nil)
	f.game.EXPECT().GetResults(mock.Anything, sessionID).
		Return(&usecase.SessionResults{SessionID: sessionID, TotalScore: 12000, Rounds: []*usecase.RoundDetail{}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/sessions/"+sessionID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/results", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var results usecase.SessionResults
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &results))
	assert.Equal(t, 12000, results.TotalScore)
}

func TestRouter_ResultQRCode(t *testing.T) {
	f := newAPIFixture(t)
	sessionID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.game.EXPECT().ResultQRCode(mock.Anything, sessionID).Return(png, nil)

	rec := f.do(http.MethodGet, "/api/v1/sessions/"+sessionID.String()+"/results/qr", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestRouter_DailyRankings(t *testing.T) {
	f := newAPIFixture(t)

	f.ranking.EXPECT().DailyRankings(mock.Anything, "2026-10-16", 5).
		Return(&usecase.DailyRanking{Date: "2026-10-16", Entries: []*entity.DailyRank{}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/rankings/daily?date=2026-10-16&limit=5", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2026-10-16","entries":[]}`, string(decode(t, rec).Data))
}

func TestRouter_Rankings_InvalidLimit(t *testing.T) {
	f := newAPIFixture(t)

	for _, path := range []string{
		"/api/v1/rankings/daily?limit=ten",
		"/api/v1/rankings/weekly?limit=ten",
		"/api/v1/rankings/all-time?limit=1.5",
	} {
		rec := f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code, path)
		assert.Equal(t, domainerrors.CodeValidationFailed, decode(t, rec).Error.Code, path)
	}
}

func TestRouter_RankingsAndStats(t *testing.T) {
	f := newAPIFixture(t)

	f.ranking.EXPECT().WeeklyRankings(mock.Anything, 0).
		Return(&usecase.WeeklyRanking{WeekStart: "2026-10-10", Entries: []*entity.WeeklyRank{}}, nil)
	f.ranking.EXPECT().AllTimeRankings(mock.Anything, 20).Return([]*entity.AllTimeRank{{Rank: 1, BestScore: 25000}}, nil)
	f.ranking.EXPECT().TodayStats(mock.Anything).Return(&entity.TodayStats{Date: "2026-10-17", TotalGames: 4}, nil)
	f.ranking.EXPECT().GlobalStats(mock.Anything).Return(&entity.GlobalStats{TotalPlayers: 2, TotalGames: 4}, nil)

	for _, path := range []string{
		"/api/v1/rankings/weekly",
		"/api/v1/rankings/all-time?limit=20",
		"/api/v1/rankings/today",
		"/api/v1/stats/global",
	} {
		rec := f.do(http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, rec.Code, path)
	}
}

func TestRouter_CreatePlayer(t *testing.T) {
	f := newAPIFixture(t)
	player := &entity.User{ID: uuid.New(), Name: "たろう"}

	f.player.EXPECT().CreatePlayer(mock.Anything, usecase.CreatePlayerInput{Name: "たろう"}).
		Return(&usecase.PlayerOutput{Player: player, AccessToken: "signed"}, nil)

	rec := f.do(http.MethodPost, "/api/v1/players", `{"name":"たろう"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var out usecase.PlayerOutput
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "signed", out.AccessToken)
	assert.Equal(t, player.ID, out.Player.ID)
}

func TestRouter_UpdatePlayer(t *testing.T) {
	playerID := uuid.New()
	path := "/api/v1/players/" + playerID.String()

	t.Run("requires a token", func(t *testing.T) {
		f := newAPIFixture(t)

		rec := f.do(http.MethodPatch, path, `{"name":"renamed"}`)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "MISSING_TOKEN", decode(t, rec).Error.Code)
	})

	t.Run("renames with the token subject as actor", func(t *testing.T) {
		f := newAPIFixture(t)

		f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: playerID}, nil)
		f.player.EXPECT().
			UpdatePlayer(mock.Anything, mock.MatchedBy(func(in usecase.UpdatePlayerInput) bool {
				return in.ActorID == playerID && in.PlayerID == playerID &&
					in.Name != nil && *in.Name == "renamed" && in.Avatar == nil
			})).
			Return(&entity.User{ID: playerID, Name: "renamed"}, nil)

		rec := f.do(http.MethodPatch, path, `{"name":"renamed"}`, echo.HeaderAuthorization, "Bearer good-token")
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("forbidden for another player", func(t *testing.T) {
		f := newAPIFixture(t)
		actorID := uuid.New()

		f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: actorID}, nil)
		f.player.EXPECT().
			UpdatePlayer(mock.Anything, mock.Anything).
			Return(nil, errors.Wrap(domainerrors.ErrForbidden, "cannot rename another player"))

		rec := f.do(http.MethodPatch, path, `{"name":"renamed"}`, echo.HeaderAuthorization, "Bearer good-token")
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, domainerrors.CodeForbidden, decode(t, rec).Error.Code)
	})

	t.Run("sets the avatar", func(t *testing.T) {
		f := newAPIFixture(t)
		avatar := "https://img.example/me.png"

		f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: playerID}, nil)
		f.player.EXPECT().
			UpdatePlayer(mock.Anything, mock.MatchedBy(func(in usecase.UpdatePlayerInput) bool {
				return in.PlayerID == playerID && in.Name == nil &&
					in.Avatar != nil && *in.Avatar == avatar
			})).
			Return(&entity.User{ID: playerID, Name: "guest", Avatar: avatar}, nil)

		rec := f.do(http.MethodPatch, path, `{"avatar":"`+avatar+`"}`, echo.HeaderAuthorization, "Bearer good-token")
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		var user entity.User
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &user))
		assert.Equal(t, avatar, user.Avatar)
	})

	t.Run("rejects an avatar that is not a url", func(t *testing.T) {
		f := newAPIFixture(t)

		f.tokens.EXPECT().ValidateToken("good-token").Return(&service.Claims{UserID: playerID}, nil)

		rec := f.do(http.MethodPatch, path, `{"avatar":"smiley"}`, echo.HeaderAuthorization, "Bearer good-token")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, domainerrors.CodeValidationFailed, env.Error.Code)
		assert.Equal(t, "avatar: url", env.Error.Details)
	})
}

func TestRouter_PlayerStats(t *testing.T) {
	f := newAPIFixture(t)
	playerID := uuid.New()

	f.player.EXPECT().GetPlayer(mock.Anything, playerID).Return(&entity.User{ID: playerID}, nil)
	f.player.EXPECT().GetPlayerStats(mock.Anything, playerID).
		Return(&entity.PlayerStats{User: &entity.User{ID: playerID}, RecentGames: []*entity.RankingEntry{}, AllTimeRank: 2}, nil)

	rec := f.do(http.MethodGet, "/api/v1/players/"+playerID.String(), "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = f.do(http.MethodGet, "/api/v1/players/"+playerID.String()+"/stats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var stats entity.PlayerStats
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &stats))
	assert.Equal(t, 2, stats.AllTimeRank)

	rec = f.do(http.MethodGet, "/api/v1/players/nope/stats", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, domainerrors.CodeUserNotFound, decode(t, rec).Error.Code)
}
