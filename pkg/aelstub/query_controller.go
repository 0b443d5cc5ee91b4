package aelstub

import (
	"errors"
	"net/http"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/labstack/echo/v4"
)

type QueryController struct {
	stor CatalogStor
}

func NewQueryController(stor CatalogStor) *QueryController {
	return &QueryController{stor: stor}
}

func (c *QueryController) GetROM(ctx echo.Context) error {
	rom, err := c.stor.GetROM(ctx.QueryParam(aelapi.ParamID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, rom)
}

func (c *QueryController) ListCollectionROMs(ctx echo.Context) error {
	roms, err := c.stor.ListCollectionROMs(ctx.QueryParam(aelapi.ParamID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, roms)
}

func (c *QueryController) ListCollectionLaunchers(ctx echo.Context) error {
	launchers, err := c.stor.ListCollectionLaunchers(ctx.QueryParam(aelapi.ParamID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, launchers)
}

func (c *QueryController) GetROMLauncherSettings(ctx echo.Context) error {
	settings, err := c.stor.GetROMLauncherSettings(ctx.QueryParam(aelapi.ParamID), ctx.QueryParam(aelapi.ParamLauncherID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, settings)
}

func (c *QueryController) GetCollectionLauncherSettings(ctx echo.Context) error {
	settings, err := c.stor.GetCollectionLauncherSettings(ctx.QueryParam(aelapi.ParamID), ctx.QueryParam(aelapi.ParamLauncherID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, settings)
}

func (c *QueryController) GetCollectionScannerSettings(ctx echo.Context) error {
	settings, err := c.stor.GetCollectionScannerSettings(ctx.QueryParam(aelapi.ParamID), ctx.QueryParam(aelapi.ParamScannerID))
	if err != nil {
		return toHTTPError(err)
	}

	return ctx.JSON(http.StatusOK, settings)
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, ErrInvalidROM):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
