// Package web is the HTTP adapter: a small HTML UI plus a JSON API,
// both thin wrappers over the store and the reminder engine.
package web

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TronJG/telegram-bot/internal/config"
	"github.com/TronJG/telegram-bot/internal/dates"
	"github.com/TronJG/telegram-bot/internal/domain"
	"github.com/TronJG/telegram-bot/internal/reminder"
	"github.com/TronJG/telegram-bot/internal/store"
)

type Server struct {
	store  *store.Store
	engine *reminder.Engine
	cfg    config.Config
	log    *zap.SugaredLogger
	router *gin.Engine
}

func New(st *store.Store, engine *reminder.Engine, cfg config.Config, log *zap.SugaredLogger) *Server {
	s := &Server{store: st, engine: engine, cfg: cfg, log: log}

	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(pageTemplates())

	r.GET("/", s.index)
	r.GET("/phone/:number", s.phoneDetail)
	r.POST("/add_phone", s.addPhone)
	r.POST("/add_account", s.addAccount)

	r.GET("/api/phones", s.apiPhones)
	r.GET("/api/upcoming_renewals", s.apiUpcomingRenewals)
	r.POST("/api/check", s.apiCheck)

	s.router = r
	return s
}

// Router exposes the handler so main owns the http.Server lifecycle.
func (s *Server) Router() http.Handler {
	return s.router
}

type accountView struct {
	Name        string `json:"name"`
	RenewalDate string `json:"renewal_date"`
}

type phoneView struct {
	Number      string        `json:"-"`
	RenewalDate string        `json:"renewal_date"`
	Accounts    []accountView `json:"accounts"`
}

func toView(p domain.PhoneRecord) phoneView {
	v := phoneView{
		Number:      p.Number,
		RenewalDate: dates.Format(p.RenewalDate),
		Accounts:    make([]accountView, 0, len(p.Accounts)),
	}
	for _, a := range p.Accounts {
		v.Accounts = append(v.Accounts, accountView{Name: a.Name, RenewalDate: dates.Format(a.RenewalDate)})
	}
	return v
}

func (s *Server) index(c *gin.Context) {
	phones := s.store.ListPhones()
	views := make([]phoneView, 0, len(phones))
	for _, p := range phones {
		views = append(views, toView(p))
	}
	c.HTML(http.StatusOK, "index", gin.H{
		"Phones":      views,
		"MaxAccounts": s.cfg.MaxAccountsPerNumber,
		"Msg":         c.Query("msg"),
	})
}

func (s *Server) phoneDetail(c *gin.Context) {
	number := c.Param("number")
	p, exists := s.store.GetPhone(number)
	if !exists {
		redirectMsg(c, "/", "Số điện thoại không tồn tại")
		return
	}
	c.HTML(http.StatusOK, "phone", gin.H{
		"Phone":       toView(p),
		"MaxAccounts": s.cfg.MaxAccountsPerNumber,
		"Msg":         c.Query("msg"),
	})
}

func (s *Server) addPhone(c *gin.Context) {
	number := c.PostForm("phone_number")
	dateStr := c.PostForm("renewal_date")

	if !domain.ValidPhoneNumber(number) {
		redirectMsg(c, "/", "Số điện thoại không hợp lệ")
		return
	}
	renewal, err := dates.Parse(dateStr)
	if err != nil {
		redirectMsg(c, "/", "Định dạng ngày không hợp lệ. Vui lòng sử dụng định dạng DD/MM/YYYY")
		return
	}

	res := s.store.AddPhone(c.Request.Context(), number, renewal)
	if !res.OK {
		redirectMsg(c, "/", reasonText(res.Reason, number, "", s.cfg.MaxAccountsPerNumber))
		return
	}
	redirectMsg(c, "/", "Đã thêm số điện thoại "+number+" với ngày gia hạn "+dateStr)
}

func (s *Server) addAccount(c *gin.Context) {
	number := c.PostForm("phone_number")
	name := c.PostForm("account_name")
	dateStr := c.PostForm("renewal_date")

	if _, exists := s.store.GetPhone(number); !exists {
		redirectMsg(c, "/", "Số điện thoại "+number+" không tồn tại")
		return
	}
	renewal, err := dates.Parse(dateStr)
	if err != nil {
		redirectMsg(c, "/phone/"+number, "Định dạng ngày không hợp lệ. Vui lòng sử dụng định dạng DD/MM/YYYY")
		return
	}

	res := s.store.AddAccount(c.Request.Context(), number, name, renewal)
	if !res.OK {
		redirectMsg(c, "/phone/"+number, reasonText(res.Reason, number, name, s.cfg.MaxAccountsPerNumber))
		return
	}
	redirectMsg(c, "/phone/"+number, "Đã thêm tài khoản "+name+" cho số điện thoại "+number)
}

func (s *Server) apiPhones(c *gin.Context) {
	out := make(map[string]phoneView)
	for number, p := range s.store.AllPhones() {
		out[number] = toView(p)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) apiUpcomingRenewals(c *gin.Context) {
	days := s.cfg.ReminderDaysBefore
	if q := c.Query("days"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be a non-negative number"})
			return
		}
		days = n
	}

	items := s.store.UpcomingRenewals(days)
	out := make([]gin.H, 0, len(items))
	for _, item := range items {
		entry := gin.H{
			"type":         string(item.Kind),
			"phone_number": item.PhoneNumber,
			"renewal_date": dates.Format(item.RenewalDate),
		}
		if item.Kind == domain.ItemAccount {
			entry["account_name"] = item.AccountName
		}
		out = append(out, entry)
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) apiCheck(c *gin.Context) {
	s.engine.RunManualCheck(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func redirectMsg(c *gin.Context, path, msg string) {
	c.Redirect(http.StatusSeeOther, path+"?msg="+url.QueryEscape(msg))
}
