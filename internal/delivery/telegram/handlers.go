package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"

	"planning-bot/internal/app/service"
	"planning-bot/internal/delivery/telegram/flows"
	"planning-bot/internal/delivery/telegram/middleware"
	"planning-bot/internal/delivery/telegram/router"
	"planning-bot/internal/delivery/telegram/views"
	"planning-bot/internal/domain"
	"planning-bot/pkg/calendar"
)

const helpText = `Planning hebdomadaire par demi-heure.

/shop NOM : choisir (ou créer) une boutique
/shops : lister les boutiques
/employee NOM : ajouter un employé
/employees : lister les employés
/remove NOM : retirer un employé
/resetemployees : vider la liste des employés
/week [AAAA-MM-JJ|prev|next] : choisir la semaine
/weeks : semaines enregistrées
/grid : afficher la grille
/hours : cumul hebdomadaire
/recap [NOM] : récapitulatif d'un employé
/shoprecap [JOUR] : récapitulatif de la boutique
/mode tous | individuel NOM | employe SOURCE [> CIBLE]
/copy JOUR : copier un jour
/paste JOUR[,JOUR] [CIBLE] : coller
/copyweek [AAAA-MM-JJ] : copier une semaine enregistrée
/pasteweek : coller la semaine copiée
/clear : réinitialiser la semaine
/export : exporter la semaine en JSON`

type Handler struct {
	Bot      *telebot.Bot
	Env      *flows.Env
	Async    *service.AsyncService
	Calendar *calendar.CalendarController
	Router   *router.CallbackRouter
}

func NewHandler(bot *telebot.Bot, env *flows.Env, async *service.AsyncService) *Handler {
	h := &Handler{
		Bot:      bot,
		Env:      env,
		Async:    async,
		Calendar: &calendar.CalendarController{},
		Router:   router.New(),
	}
	h.Calendar.OnWeek = env.OnCalendarWeek
	h.Router.CalDelegate = h.Calendar.HandleCallback
	return h
}

func (h *Handler) Register() {
	h.Bot.Use(middleware.LogErrors, middleware.Serialize(h.Async))

	h.Bot.Handle("/start", h.handleStart)
	h.Bot.Handle("/help", h.handleStart)
	h.Bot.Handle("/shops", h.handleShops)
	h.Bot.Handle("/shop", h.handleShop)
	h.Bot.Handle("/employee", h.handleAddEmployee)
	h.Bot.Handle("/employees", h.handleEmployees)
	h.Bot.Handle("/remove", h.handleRemoveEmployee)
	h.Bot.Handle("/resetemployees", h.handleResetEmployees)
	h.Bot.Handle("/week", h.handleWeek)
	h.Bot.Handle("/weeks", h.handleWeeks)
	h.Bot.Handle("/grid", h.handleGrid)
	h.Bot.Handle("/hours", h.handleHours)
	h.Bot.Handle("/recap", h.handleRecap)
	h.Bot.Handle("/shoprecap", h.handleShopRecap)
	h.Bot.Handle("/mode", h.handleMode)
	h.Bot.Handle("/copy", h.handleCopy)
	h.Bot.Handle("/paste", h.handlePaste)
	h.Bot.Handle("/copyweek", h.handleCopyWeek)
	h.Bot.Handle("/pasteweek", h.handlePasteWeek)
	h.Bot.Handle("/clear", h.handleClear)
	h.Bot.Handle("/export", h.handleExport)

	flows.RegisterGrid(h.Router, h.Env)
	flows.RegisterWeeks(h.Router, h.Env)
	flows.RegisterConfirmations(h.Router, h.Env)
	h.Router.Attach(h.Bot)
}

func payload(c telebot.Context) string {
	if m := c.Message(); m != nil {
		return strings.TrimSpace(m.Payload)
	}
	return ""
}

func (h *Handler) handleStart(c telebot.Context) error {
	return c.Send(helpText)
}

func (h *Handler) handleShops(c telebot.Context) error {
	shops, err := h.Env.Shops.GetAllShops()
	if err != nil {
		return flows.Reply(c, "", err)
	}
	if len(shops) == 0 {
		return c.Send("Aucune boutique. Créez-en une avec /shop NOM.")
	}
	return c.Send("Boutiques :\n" + strings.Join(shops, "\n"))
}

func (h *Handler) handleShop(c telebot.Context) error {
	name, err := h.Env.Shops.SelectShop(payload(c))
	if err != nil {
		return flows.Reply(c, "", err)
	}
	s := h.Env.Session(c)
	s.SelectShop(name)
	logrus.WithFields(logrus.Fields{"chat": c.Chat().ID, "shop": name}).Info("shop selected")
	if s.Week == "" {
		s.SelectWeek(domain.WeekOf(time.Now()))
	}
	return h.Env.ShowGrid(c, s)
}

func (h *Handler) handleAddEmployee(c telebot.Context) error {
	s := h.Env.Session(c)
	if s.Shop == "" {
		return flows.Reply(c, "", flows.ErrNeedShop)
	}
	name, err := h.Env.Shops.AddEmployee(s.Shop, payload(c))
	return flows.Reply(c, name+" ajouté à "+s.Shop, err)
}

func (h *Handler) handleEmployees(c telebot.Context) error {
	s := h.Env.Session(c)
	if s.Shop == "" {
		return flows.Reply(c, "", flows.ErrNeedShop)
	}
	employees, err := h.Env.Shops.GetEmployees(s.Shop)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	if len(employees) == 0 {
		return c.Send("Aucun employé. Ajoutez-en avec /employee NOM.")
	}
	return c.Send("Employés de " + s.Shop + " :\n" + strings.Join(employees, "\n"))
}

func (h *Handler) handleRemoveEmployee(c telebot.Context) error {
	s := h.Env.Session(c)
	if s.Shop == "" {
		return flows.Reply(c, "", flows.ErrNeedShop)
	}
	name := domain.NormalizeName(payload(c))
	err := h.Env.Shops.RemoveEmployee(s.Shop, name)
	return flows.Reply(c, name+" retiré de "+s.Shop, err)
}

func (h *Handler) handleResetEmployees(c telebot.Context) error {
	s := h.Env.Session(c)
	if s.Shop == "" {
		return flows.Reply(c, "", flows.ErrNeedShop)
	}
	s.EmployeeIdx = 0
	err := h.Env.Shops.ResetEmployees(s.Shop)
	return flows.Reply(c, "Liste des employés vidée.", err)
}

// parseDate accepts ISO dates and the dd/mm/yyyy form.
func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "02/01/2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", domain.ErrInvalidWeek, s)
}

func (h *Handler) handleWeek(c telebot.Context) error {
	s := h.Env.Session(c)
	arg := strings.ToLower(payload(c))
	switch {
	case arg == "":
		return h.Calendar.ShowCalendar(c)
	case (arg == "prev" || arg == "next") && s.Week == "":
		return flows.Reply(c, "", flows.ErrNeedWeek)
	case arg == "prev":
		return h.Env.SelectWeek(c, s.Week.Prev())
	case arg == "next":
		return h.Env.SelectWeek(c, s.Week.Next())
	}
	t, err := parseDate(arg)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	return h.Env.SelectWeek(c, domain.WeekOf(t))
}

func (h *Handler) handleWeeks(c telebot.Context) error {
	return h.Env.ShowWeeks(c, "Semaines enregistrées :", flows.ActionSwitchWeek, false)
}

func (h *Handler) handleGrid(c telebot.Context) error {
	s, err := h.Env.Scope(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	return h.Env.ShowGrid(c, s)
}

// scopeData loads what every recap needs.
func (h *Handler) scopeData(c telebot.Context) ([]string, domain.Planning, error) {
	s, err := h.Env.Scope(c)
	if err != nil {
		return nil, nil, err
	}
	employees, err := h.Env.Shops.GetEmployees(s.Shop)
	if err != nil {
		return nil, nil, err
	}
	p, err := h.Env.Planning.Load(s.Shop, s.Week)
	if err != nil {
		return nil, nil, err
	}
	return employees, p, nil
}

func (h *Handler) handleHours(c telebot.Context) error {
	employees, p, err := h.scopeData(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	s := h.Env.Session(c)
	text := fmt.Sprintf("<b>Cumul horaire</b> %s, semaine du %s\n", s.Shop, s.Week) +
		views.HoursTable(employees, p, h.Env.Planning.Deriver)
	return c.Send(text, telebot.ModeHTML)
}

func (h *Handler) handleRecap(c telebot.Context) error {
	employees, p, err := h.scopeData(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	s := h.Env.Session(c)
	employee := domain.NormalizeName(payload(c))
	if employee == "" {
		var ok bool
		if employee, ok = s.Employee(employees); !ok {
			return flows.Reply(c, "", service.ErrNoEmployee)
		}
	}
	d := h.Env.Planning.Deriver
	text := views.EmployeeRecap(s.Shop, s.Week, employee, d.WeeklySchedule(p, employee), d.WeeklyHours(p, employee))
	return c.Send(text, telebot.ModeHTML)
}

func (h *Handler) handleShopRecap(c telebot.Context) error {
	employees, p, err := h.scopeData(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	s := h.Env.Session(c)
	d := h.Env.Planning.Deriver
	if arg := payload(c); arg != "" {
		day, err := domain.ParseDay(arg)
		if err != nil {
			return flows.Reply(c, "", err)
		}
		text := views.DayRecap(s.Shop, s.Week, day, d.ShopDailySchedule(p, employees, day))
		return c.Send(text, telebot.ModeHTML)
	}
	text := views.ShopRecap(s.Shop, s.Week, employees, p, d, d.ShopWeeklySchedule(p, employees))
	return c.Send(text, telebot.ModeHTML)
}

var errModeUsage = errors.New("usage : /mode tous | individuel NOM | employe SOURCE [> CIBLE]")

// parseMode reads "tous", "individuel NOM" or "employe SOURCE > CIBLE".
// Names may contain spaces; ">" separates source from target.
func parseMode(arg string) (domain.CopyMode, error) {
	kind, rest, _ := strings.Cut(strings.TrimSpace(arg), " ")
	rest = strings.TrimSpace(rest)
	switch strings.ToLower(kind) {
	case "tous", "all":
		return domain.AllEmployees(), nil
	case "individuel", "individual":
		if rest == "" {
			return domain.CopyMode{}, service.ErrNoSourceEmployee
		}
		return domain.Individual(rest), nil
	case "employe", "employé", "e2e":
		source, target, _ := strings.Cut(rest, ">")
		source = strings.TrimSpace(source)
		if source == "" {
			return domain.CopyMode{}, service.ErrNoSourceEmployee
		}
		return domain.EmployeeToEmployee(source, strings.TrimSpace(target)), nil
	}
	return domain.CopyMode{}, errModeUsage
}

func (h *Handler) handleMode(c telebot.Context) error {
	s := h.Env.Session(c)
	arg := payload(c)
	if arg == "" {
		return c.Send("Mode de copie : " + s.Clipboard.Mode().Describe())
	}
	mode, err := parseMode(arg)
	if errors.Is(err, errModeUsage) {
		return c.Send(errModeUsage.Error())
	}
	if err == nil {
		err = s.Clipboard.SetMode(mode)
	}
	return flows.Reply(c, "Mode de copie : "+s.Clipboard.Mode().Describe(), err)
}

func (h *Handler) handleCopy(c telebot.Context) error {
	s, err := h.Env.Scope(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	day := s.Day
	if arg := payload(c); arg != "" {
		if day, err = domain.ParseDay(arg); err != nil {
			return flows.Reply(c, "", err)
		}
	}
	msg, err := h.Env.Planning.CopyDay(s.Clipboard, s.Shop, s.Week, day)
	return flows.Reply(c, msg, err)
}

// parsePasteArgs reads "JOUR[,JOUR...] [CIBLE]". Days may be separated by
// commas, spaces or both; the first word that is not a day starts the
// target employee.
func parsePasteArgs(arg string) ([]domain.Day, string, error) {
	var days []domain.Day
	words := strings.Fields(arg)
	for i, w := range words {
		var parsed []domain.Day
		isDays := true
		for _, part := range strings.Split(w, ",") {
			if part == "" {
				continue
			}
			d, err := domain.ParseDay(part)
			if err != nil {
				isDays = false
				break
			}
			parsed = append(parsed, d)
		}
		if !isDays {
			if len(days) == 0 || strings.Contains(w, ",") {
				return nil, "", fmt.Errorf("%w: %q", domain.ErrUnknownDay, w)
			}
			return days, strings.Join(words[i:], " "), nil
		}
		days = append(days, parsed...)
	}
	return days, "", nil
}

func (h *Handler) handlePaste(c telebot.Context) error {
	s, err := h.Env.Scope(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	days, target, err := parsePasteArgs(payload(c))
	if err != nil {
		return flows.Reply(c, "", err)
	}
	msg, err := h.Env.Planning.PasteDays(s.Clipboard, s.Shop, s.Week, days, target)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	if err := c.Send(msg); err != nil {
		return err
	}
	return h.Env.ShowGrid(c, s)
}

func (h *Handler) handleCopyWeek(c telebot.Context) error {
	arg := payload(c)
	if arg == "" {
		return h.Env.ShowWeeks(c, "Semaine à copier :", flows.ActionCopyWeek, true)
	}
	t, err := parseDate(arg)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	return h.Env.CopyWeek(c, domain.WeekOf(t))
}

func (h *Handler) handlePasteWeek(c telebot.Context) error {
	return h.Env.AskPasteWeek(c)
}

func (h *Handler) handleClear(c telebot.Context) error {
	return h.Env.AskClear(c)
}

// handleExport sends the week in the flat "Day_Slot_Employee" form.
func (h *Handler) handleExport(c telebot.Context) error {
	s, err := h.Env.Scope(c)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	p, err := h.Env.Planning.Load(s.Shop, s.Week)
	if err != nil {
		return flows.Reply(c, "", err)
	}
	data, err := json.MarshalIndent(p.LegacyMap(), "", "  ")
	if err != nil {
		return flows.Reply(c, "", err)
	}
	doc := &telebot.Document{
		File:     telebot.FromReader(bytes.NewReader(data)),
		FileName: domain.RecordKey(s.Shop, s.Week) + ".json",
		Caption:  fmt.Sprintf("%s, semaine du %s (%d créneaux)", s.Shop, s.Week, p.Len()),
	}
	return c.Send(doc)
}
