package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/brunofarias/zapboard/internal/constants"
	"github.com/brunofarias/zapboard/internal/database"
	"github.com/brunofarias/zapboard/internal/middleware"
	"github.com/brunofarias/zapboard/internal/models"
	"github.com/brunofarias/zapboard/internal/repository"
	"github.com/brunofarias/zapboard/internal/services"
	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// recordingSender captures outbound messages for assertions.
type recordingSender struct {
	sent []string
}

func (s *recordingSender) Send(_ context.Context, phoneNumber, _ string) services.SendResult {
	s.sent = append(s.sent, phoneNumber)
	return services.SendResult{Success: true, MessageID: "wamid.test"}
}

type apiTestEnv struct {
	db      *gorm.DB
	router  *gin.Engine
	sender  *recordingSender
	cookies []*http.Cookie
	user    models.User
}

func setupAPITestEnv(t *testing.T) *apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Board{},
		&models.Column{},
		&models.Card{},
		&models.Contact{},
		&models.NotificationTemplate{},
		&models.ActivityLog{},
		&models.CardActivity{},
	)
	require.NoError(t, err)

	database.SetDB(db)

	userRepo := repository.NewUserRepository(db)
	boardRepo := repository.NewBoardRepository(db)
	columnRepo := repository.NewColumnRepository(db)
	cardRepo := repository.NewCardRepository(db)
	contactRepo := repository.NewContactRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	activityRepo := repository.NewActivityRepository(db)

	sender := &recordingSender{}

	authService := services.NewAuthService(userRepo)
	boardService := services.NewBoardService(boardRepo)
	columnService := services.NewColumnService(columnRepo, boardRepo)
	notificationService := services.NewNotificationService(templateRepo, activityRepo, sender)
	cardService := services.NewCardService(cardRepo, columnRepo, contactRepo, activityRepo, notificationService)
	contactService := services.NewContactService(contactRepo, cardRepo)
	templateService := services.NewTemplateService(templateRepo, columnRepo, boardRepo)
	activityService := services.NewActivityService(activityRepo, boardRepo, cardRepo)

	authHandler := NewAuthHandler(authService)
	boardHandler := NewBoardHandler(boardService)
	columnHandler := NewColumnHandler(columnService)
	cardHandler := NewCardHandler(cardService)
	contactHandler := NewContactHandler(contactService)
	templateHandler := NewTemplateHandler(templateService)
	whatsAppHandler := NewWhatsAppHandler(cardService, notificationService)
	activityHandler := NewActivityHandler(activityService)

	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionName, store))

	api := r.Group("/api")
	api.POST("/auth/signup", authHandler.Signup)
	api.POST("/auth/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.RequireAuth())
	{
		protected.GET("/boards", boardHandler.ListBoards)
		protected.POST("/boards", boardHandler.CreateBoard)
		protected.GET("/boards/:id", boardHandler.GetBoard)
		protected.PUT("/boards/:id", boardHandler.UpdateBoard)
		protected.DELETE("/boards/:id", boardHandler.DeleteBoard)
		protected.GET("/boards/:id/templates", templateHandler.ListForBoard)
		protected.POST("/columns", columnHandler.CreateColumn)
		protected.PATCH("/columns/:id", columnHandler.UpdateColumn)
		protected.DELETE("/columns/:id", columnHandler.DeleteColumn)
		protected.GET("/columns/:id/template", templateHandler.GetTemplate)
		protected.POST("/columns/:id/template", templateHandler.CreateTemplate)
		protected.PUT("/columns/:id/template", templateHandler.UpsertTemplate)
		protected.POST("/cards", cardHandler.CreateCard)
		protected.GET("/cards/:id", cardHandler.GetCard)
		protected.PATCH("/cards/:id", cardHandler.UpdateCard)
		protected.DELETE("/cards/:id", cardHandler.DeleteCard)
		protected.GET("/contacts", contactHandler.ListContacts)
		protected.POST("/contacts", contactHandler.CreateContact)
		protected.POST("/whatsapp/notify", whatsAppHandler.Notify)
		protected.POST("/whatsapp/test", whatsAppHandler.Test)
		protected.GET("/activity-logs", activityHandler.ListLogs)
	}

	env := &apiTestEnv{db: db, router: r, sender: sender}

	user, err := authService.Signup(services.SignupInput{
		Email:    "dona@example.com",
		Name:     "Dona",
		Password: "supersecret",
	})
	require.NoError(t, err)
	env.user = *user

	w := env.do(t, http.MethodPost, "/api/auth/login", map[string]any{
		"email":    "dona@example.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, w.Code)
	env.cookies = w.Result().Cookies()

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return env
}

// do performs a JSON request carrying the session cookies.
func (env *apiTestEnv) do(t *testing.T, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	for _, c := range env.cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func (env *apiTestEnv) decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestAPI_RequiresAuthentication(t *testing.T) {
	env := setupAPITestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api/boards", nil)
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAPI_BoardLifecycle(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/boards", map[string]any{
		"title":       "Vendas",
		"description": "Funil de vendas",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var board models.Board
	env.decode(t, w, &board)
	require.Equal(t, "Vendas", board.Title)
	require.Len(t, board.Columns, 3)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/boards/%d", board.ID), map[string]any{
		"title": "Vendas 2026",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Board
	env.decode(t, w, &updated)
	require.Equal(t, "Vendas 2026", updated.Title)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestAPI_CardMoveTriggersNotification(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/boards", map[string]any{"title": "Fluxo"})
	require.Equal(t, http.StatusCreated, w.Code)
	var board models.Board
	env.decode(t, w, &board)

	src := board.Columns[0]
	dst := board.Columns[1]

	w = env.do(t, http.MethodPost, "/api/contacts", map[string]any{
		"name":            "Maria",
		"whatsapp_number": "+55 (11) 99999-8888",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var contact struct {
		ID uint64 `json:"id"`
	}
	env.decode(t, w, &contact)

	w = env.do(t, http.MethodPut, fmt.Sprintf("/api/columns/%d/template", dst.ID), map[string]any{
		"template":  "Olá {{contact_name}}, {{card_title}} avançou!",
		"is_active": true,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/api/cards", map[string]any{
		"content":    "Proposta",
		"column_id":  src.ID,
		"contact_id": contact.ID,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var card models.Card
	env.decode(t, w, &card)

	w = env.do(t, http.MethodPatch, fmt.Sprintf("/api/cards/%d", card.ID), map[string]any{
		"column_id": dst.ID,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var moved models.Card
	env.decode(t, w, &moved)
	require.Equal(t, dst.ID, moved.ColumnID)

	require.Equal(t, []string{"+5511999998888"}, env.sender.sent)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/activity-logs?board_id=%d", board.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var logsResponse struct {
		Logs []models.ActivityLog `json:"logs"`
	}
	env.decode(t, w, &logsResponse)

	types := make(map[models.ActivityType]int)
	for _, entry := range logsResponse.Logs {
		types[entry.Type]++
	}
	require.Equal(t, 1, types[models.ActivityCardCreated])
	require.Equal(t, 1, types[models.ActivityCardMoved])
	require.Equal(t, 1, types[models.ActivityNotificationSent])
}

func TestAPI_TemplateEndpoints(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/boards", map[string]any{"title": "Modelos"})
	require.Equal(t, http.StatusCreated, w.Code)
	var board models.Board
	env.decode(t, w, &board)
	column := board.Columns[0]

	// No template yet: a starter suggestion comes back
	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/columns/%d/template", column.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var suggestion struct {
		Template string `json:"template"`
		Exists   bool   `json:"exists"`
	}
	env.decode(t, w, &suggestion)
	require.False(t, suggestion.Exists)
	require.Contains(t, suggestion.Template, "{{card_title}}")

	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/columns/%d/template", column.ID), map[string]any{
		"template": "Primeiro modelo",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Duplicate create is rejected
	w = env.do(t, http.MethodPost, fmt.Sprintf("/api/columns/%d/template", column.ID), map[string]any{
		"template": "Outro modelo",
	})
	require.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/boards/%d/templates", board.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var listing struct {
		Templates []services.ColumnTemplate `json:"templates"`
	}
	env.decode(t, w, &listing)
	require.Len(t, listing.Templates, 3)
	require.Equal(t, "Primeiro modelo", listing.Templates[0].Template)
}

func TestAPI_WhatsAppTestSend(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/whatsapp/test", map[string]any{
		"template":     "Teste {{nome}}",
		"phone_number": "+5511999998888",
		"variables":    map[string]any{"nome": "Maria"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	env.decode(t, w, &response)
	require.True(t, response.Success)
	require.Equal(t, "Teste Maria", response.Message)

	w = env.do(t, http.MethodPost, "/api/whatsapp/test", map[string]any{
		"template":     "Teste",
		"phone_number": "11999998888",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPI_ForeignBoardIsHidden(t *testing.T) {
	env := setupAPITestEnv(t)

	w := env.do(t, http.MethodPost, "/api/boards", map[string]any{"title": "Privado"})
	require.Equal(t, http.StatusCreated, w.Code)
	var board models.Board
	env.decode(t, w, &board)

	// Second account
	w = env.do(t, http.MethodPost, "/api/auth/signup", map[string]any{
		"email":    "intrusa@example.com",
		"name":     "Intrusa",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	env.cookies = w.Result().Cookies()

	w = env.do(t, http.MethodGet, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/boards/%d", board.ID), nil)
	require.Equal(t, http.StatusNotFound, w.Code)
}
