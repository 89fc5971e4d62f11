package bet

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"betsim/database"
	"betsim/middlewares"
	"betsim/models"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type PlaceBetSuite struct {
	suite.Suite
	app   *fiber.App
	user  *models.User
	game  *models.Game
	token string
}

func TestPlaceBetSuite(t *testing.T) {
	suite.Run(t, new(PlaceBetSuite))
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (s *PlaceBetSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	s.Require().NoError(err)

	sqlDB, err := db.DB()
	s.Require().NoError(err)
	sqlDB.SetMaxOpenConns(1)

	s.Require().NoError(database.Migrate(db))
	database.DB = db

	s.user = &models.User{
		Email:    "bettor@example.com",
		Username: "bettor",
		Bankroll: decimal.RequireFromString("1000.00"),
	}
	s.Require().NoError(db.Create(s.user).Error)

	session := &models.Session{UserID: s.user.ID, ExpiresAt: time.Now().Add(time.Hour)}
	s.Require().NoError(db.Create(session).Error)
	s.token = session.SID

	spread := decimal.RequireFromString("-3.5")
	total := decimal.RequireFromString("225.5")
	s.game = &models.Game{
		HomeTeam: "Lakers", AwayTeam: "Warriors", Sport: "NBA",
		GameTime: time.Now().Add(4 * time.Hour), Status: models.GameUpcoming,
		HomeSpread: &spread, TotalPoints: &total,
		HomeMoneyline: -150, AwayMoneyline: 130,
	}
	s.Require().NoError(db.Create(s.game).Error)

	s.app = fiber.New()
	s.app.Post("/bets", middlewares.SessionAuth, Place)
}

func (s *PlaceBetSuite) post(body string) (*http.Response, *envelope) {
	req := httptest.NewRequest(http.MethodPost, "/bets", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Session-Token", s.token)

	resp, err := s.app.Test(req)
	s.Require().NoError(err)

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	var env envelope
	s.Require().NoError(json.Unmarshal(raw, &env))
	return resp, &env
}

func (s *PlaceBetSuite) body(gameID uint, betType, side, amount string) string {
	b, _ := json.Marshal(fiber.Map{
		"gameId":  gameID,
		"betType": betType,
		"side":    side,
		"amount":  amount,
	})
	return string(b)
}

func (s *PlaceBetSuite) TestRejectsBelowMinimum() {
	resp, env := s.post(s.body(s.game.ID, models.BetTypeSpread, models.SideHome, "5.00"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Minimum bet amount is $10", env.Message)
}

func (s *PlaceBetSuite) TestRejectsOverBankrollCap() {
	resp, env := s.post(s.body(s.game.ID, models.BetTypeSpread, models.SideHome, "250.00"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Bet amount exceeds 20% of bankroll", env.Message)
}

func (s *PlaceBetSuite) TestRejectsPropBets() {
	resp, env := s.post(s.body(s.game.ID, models.BetTypeProp, models.SideHome, "50.00"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Prop bets are not supported", env.Message)
}

func (s *PlaceBetSuite) TestRejectsUnknownGame() {
	resp, _ := s.post(s.body(99999, models.BetTypeSpread, models.SideHome, "50.00"))
	s.Equal(http.StatusNotFound, resp.StatusCode)
}

func (s *PlaceBetSuite) TestRejectsFinishedGame() {
	s.Require().NoError(database.DB.Model(s.game).Update("status", models.GameFinished).Error)

	resp, env := s.post(s.body(s.game.ID, models.BetTypeSpread, models.SideHome, "50.00"))
	s.Equal(http.StatusBadRequest, resp.StatusCode)
	s.Equal("Game is not open for betting", env.Message)
}

func (s *PlaceBetSuite) TestRequiresSession() {
	req := httptest.NewRequest(http.MethodPost, "/bets",
		strings.NewReader(s.body(s.game.ID, models.BetTypeSpread, models.SideHome, "50.00")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.app.Test(req)
	s.Require().NoError(err)
	s.Equal(http.StatusUnauthorized, resp.StatusCode)
}

func (s *PlaceBetSuite) TestPlacesBetAndDebitsBankroll() {
	resp, env := s.post(s.body(s.game.ID, models.BetTypeSpread, models.SideHome, "150.00"))
	s.Equal(http.StatusOK, resp.StatusCode)
	s.True(env.Success)

	var bet models.Bet
	s.Require().NoError(database.DB.Where("user_id = ?", s.user.ID).First(&bet).Error)
	s.Equal(models.BetPending, bet.Status)
	s.Equal("Lakers -3.5", bet.Pick)
	s.Require().NotNil(bet.Line)
	s.Equal("-3.5", bet.Line.StringFixed(1))
	s.Equal(-110, bet.Odds)
	s.Nil(bet.Payout)

	var user models.User
	s.Require().NoError(database.DB.First(&user, s.user.ID).Error)
	s.Equal("850.00", user.Bankroll.StringFixed(2))

	var entry models.BankrollEntry
	s.Require().NoError(database.DB.Where("user_id = ? AND entry_type = ?",
		s.user.ID, models.LedgerBetPlaced).First(&entry).Error)
	s.Equal("-150.00", entry.Amount.StringFixed(2))
	s.Equal("850.00", entry.BalanceAfter.StringFixed(2))
	s.Require().NotNil(entry.BetID)
	s.Equal(bet.ID, *entry.BetID)
}

func (s *PlaceBetSuite) TestGeneratesTotalPickString() {
	resp, _ := s.post(s.body(s.game.ID, models.BetTypeTotal, models.SideOver, "100.00"))
	s.Equal(http.StatusOK, resp.StatusCode)

	var bet models.Bet
	s.Require().NoError(database.DB.Where("user_id = ?", s.user.ID).First(&bet).Error)
	s.Equal("Over 225.5", bet.Pick)
}
