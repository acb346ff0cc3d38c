package handler

import (
	"errors"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"github.com/jfk9unit/caninecompanionapp/internal/services"
)

type groupAchievement struct {
	container *do.Injector
}

func (gr *groupAchievement) List(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceAchievement, err := do.Invoke[*services.ServiceAchievement](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	achievements, err := serviceAchievement.List(ctx, user.ID)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, achievements, nil)
}

func (gr *groupAchievement) Share(c echo.Context) error {
	ctx := c.Request().Context()

	achievementID := c.Param("id")
	if achievementID == "" || achievementID == "undefined" {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("achievement id is required"), errorx.Invalid))
	}

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceAchievement, err := do.Invoke[*services.ServiceAchievement](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	achievement, err := serviceAchievement.MarkShared(ctx, user.ID, achievementID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, achievement, nil)
}
