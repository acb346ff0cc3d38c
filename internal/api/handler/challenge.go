package handler

import (
	"errors"

	"github.com/hiendaovinh/toolkit/pkg/errorx"
	"github.com/hiendaovinh/toolkit/pkg/httpx-echo"
	"github.com/labstack/echo/v4"
	"github.com/samber/do"

	"github.com/jfk9unit/caninecompanionapp/internal/services"
)

type groupChallenge struct {
	container *do.Injector
}

func (gr *groupChallenge) GetWeeklyChallenges(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	challenges, err := serviceChallenge.GetWeeklyProgress(ctx, user.ID)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	return httpx.RestAbort(c, challenges, nil)
}

func (gr *groupChallenge) Claim(c echo.Context) error {
	ctx := c.Request().Context()

	challengeID := c.Param("id")
	if challengeID == "" || challengeID == "undefined" {
		return httpx.RestAbort(c, nil, errorx.Wrap(errors.New("challenge id is required"), errorx.Invalid))
	}

	user, err := ResolveValidUser(ctx, gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	serviceChallenge, err := do.Invoke[*services.ServiceChallenge](gr.container)
	if err != nil {
		return httpx.RestAbort(c, nil, errorx.Wrap(err, errorx.Service))
	}

	result, err := serviceChallenge.Claim(ctx, user, challengeID)
	if err != nil {
		return httpx.RestAbort(c, nil, err)
	}

	return httpx.RestAbort(c, result, nil)
}
