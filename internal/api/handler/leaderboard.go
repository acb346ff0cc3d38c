package handler

import (
	"strconv"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"github.com/jfk9unit/caninecompanionapp/internal/models"
	"github.com/jfk9unit/caninecompanionapp/internal/services"
)

type groupLeaderboard struct {
	container *do.Injector
}

func (gr *groupLeaderboard) GetLeaderboard(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	mode := models.ScoringMode(c.Param("mode"))
	// Absent or malformed limits parse to 0 and defer to the configured board size.
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	leaderboard, err := serviceLeaderboard.GetLeaderboard(ctx, mode, user.ID, limit)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, leaderboard, nil)
}

func (gr *groupLeaderboard) GetMyRank(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceLeaderboard, err := do.Invoke[*services.ServiceLeaderboard](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	mode := models.ScoringMode(c.Param("mode"))
	rank, err := serviceLeaderboard.MyRank(ctx, user, mode)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, rank, nil)
}
