package flows

import (
	"errors"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"planning-bot/internal/app/service"
	"planning-bot/internal/delivery/telegram/keyboards"
	"planning-bot/internal/delivery/telegram/middleware"
	"planning-bot/internal/delivery/telegram/session"
	"planning-bot/internal/domain"
)

var (
	ErrNeedShop = errors.New("choisissez d'abord une boutique : /shop NOM")
	ErrNeedWeek = errors.New("choisissez d'abord une semaine : /week")
)

// Env is what the flows share with the command handlers.
type Env struct {
	Planning *service.PlanningService
	Shops    *service.ShopService
	Sessions *session.Store
}

// userErrors are reported to the chat as they are; anything else is a
// storage failure and only logged.
var userErrors = []error{
	ErrNeedShop, ErrNeedWeek,
	service.ErrNoShop, service.ErrNoEmployee, service.ErrNoDay,
	service.ErrNoSourceEmployee, service.ErrNoTargetEmployee,
	service.ErrNothingCopied, service.ErrEmptyWeek, service.ErrNothingToPaste,
	service.ErrNoTargetDays, service.ErrNoStagedPaste,
	domain.ErrUnknownDay, domain.ErrUnknownSlot, domain.ErrInvalidWeek, domain.ErrNotMonday,
	domain.ErrEmptyName, domain.ErrDuplicateShop, domain.ErrDuplicateEmployee,
	domain.ErrShopNotFound, domain.ErrEmployeeNotFound,
}

func IsUserError(err error) bool {
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Reply sends msg, or the feedback for err.
func Reply(c telebot.Context, msg string, err error) error {
	if err != nil {
		if IsUserError(err) {
			return middleware.EditOrSend(c, "⚠ "+err.Error())
		}
		fields := logrus.Fields{}
		if chat := c.Chat(); chat != nil {
			fields["chat"] = chat.ID
		}
		logrus.WithFields(fields).WithError(err).Error("planning operation failed")
		return c.Send("Erreur interne, réessayez plus tard.")
	}
	return middleware.EditOrSend(c, msg)
}

func (e *Env) Session(c telebot.Context) *session.Session {
	return e.Sessions.Get(c.Chat().ID)
}

// Scope returns the session once a shop and a week are selected.
func (e *Env) Scope(c telebot.Context) (*session.Session, error) {
	s := e.Session(c)
	if s.Shop == "" {
		return s, ErrNeedShop
	}
	if s.Week == "" {
		return s, ErrNeedWeek
	}
	return s, nil
}

// ShowGrid renders the grid of the session cursor.
func (e *Env) ShowGrid(c telebot.Context, s *session.Session) error {
	employees, err := e.Shops.GetEmployees(s.Shop)
	if err != nil {
		return Reply(c, "", err)
	}
	p, err := e.Planning.Load(s.Shop, s.Week)
	if err != nil {
		return Reply(c, "", err)
	}
	s.Employee(employees)
	title, markup := keyboards.BuildGridKeyboard(keyboards.GridView{
		Shop:        s.Shop,
		Week:        s.Week,
		Day:         s.Day,
		Employees:   employees,
		EmployeeIdx: s.EmployeeIdx,
		Planning:    p,
		Deriver:     e.Planning.Deriver,
	})
	return middleware.EditOrSend(c, title, markup)
}
