package handler

import (
	"net/http"

	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo-contrib/pprof"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/samber/do"

	"github.com/jfk9unit/caninecompanionapp/internal/services"
)

type Config struct {
	Container *do.Injector
	Mode      string
	Origins   []string
}

func New(cfg *Config) (http.Handler, error) {
	r := echo.New()
	r.Pre(middleware.RemoveTrailingSlash())
	if cfg.Mode == "debug" {
		r.Debug = true
		pprof.Register(r)
	}

	r.JSONSerializer = httpx.SegmentJSONSerializer{}
	r.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339}\t${method}\t${uri}\t${status}\t${latency_human}\n",
	}))
	r.Use(middleware.Recover())

	r.GET("", func(c echo.Context) error {
		return c.String(http.StatusOK, "🐕")
	})

	routesAPIv1 := r.Group("/api/v1")
	{
		authentication, err := do.Invoke[*services.Authentication](cfg.Container)
		if err != nil {
			return nil, err
		}
		cors := middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     cfg.Origins,
			AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
			AllowCredentials: true,
			MaxAge:           60 * 60,
		})

		routesAPIv1.Use(cors)
		routesAPIv1.Use(Authn(authentication)) // Authn will NOT terminate unauthenticated request.
		routesAPIv1.GET("", Hello)

		u := groupUser{cfg.Container}
		routesAPIv1.GET("/user/me", u.Me)

		d := groupDaily{cfg.Container}
		routesAPIv1.GET("/rewards/daily", d.Status)
		routesAPIv1.POST("/rewards/daily/claim", d.Claim)

		ch := groupChallenge{cfg.Container}
		routesAPIv1.GET("/challenges/weekly", ch.GetWeeklyChallenges)
		routesAPIv1.POST("/challenges/:id/claim", ch.Claim)

		l := groupLeaderboard{cfg.Container}
		routesAPIv1.GET("/leaderboard/:mode", l.GetLeaderboard)
		routesAPIv1.GET("/leaderboard/:mode/me", l.GetMyRank)

		t := groupTournament{cfg.Container}
		routesAPIv1.GET("/tournament/current", t.GetCurrent)

		a := groupAchievement{cfg.Container}
		routesAPIv1.GET("/achievements", a.List)
		routesAPIv1.POST("/achievements/:id/share", a.Share)
	}

	return r, nil
}

func Hello(c echo.Context) error {
	return httpx.RestAbort(c, "hello world", nil)
}
