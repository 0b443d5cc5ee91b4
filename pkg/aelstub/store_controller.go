package aelstub

import (
	"net/http"

	"github.com/ael-launcher/catalog/pkg/aelmodel"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/ael-launcher/catalog/pkg/decoder"
	"github.com/apex/log"
	"github.com/labstack/echo/v4"
)

type StoreController struct {
	stor CatalogStor
	log  *log.Entry
}

func NewStoreController(stor CatalogStor, logger *log.Entry) *StoreController {
	if logger == nil {
		logger = clog.UsingCtx(clog.StubCtx)
	}

	return &StoreController{stor: stor, log: logger}
}

func (c *StoreController) StoreLauncherSettings(ctx echo.Context) error {
	req, err := bindPayload[aelmodel.LauncherSettings](ctx)
	if err != nil {
		return err
	}

	if req.LauncherID == "" || (req.ROMID == "") == (req.ROMCollectionID == "") {
		return echo.NewHTTPError(http.StatusBadRequest, "launcher_id and exactly one of rom_id or romcollection_id are required")
	}

	if err := c.stor.SaveLauncherSettings(req); err != nil {
		return toHTTPError(err)
	}

	c.log.WithField("launcher_id", req.LauncherID).Info("stored launcher settings")
	return ctx.JSON(http.StatusOK, map[string]any{"stored": 1})
}

func (c *StoreController) StoreScannerSettings(ctx echo.Context) error {
	req, err := bindPayload[aelmodel.ScannerSettings](ctx)
	if err != nil {
		return err
	}

	if req.ROMCollectionID == "" || req.ScannerID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "romcollection_id and scanner_id are required")
	}

	if err := c.stor.SaveScannerSettings(req); err != nil {
		return toHTTPError(err)
	}

	c.log.WithField("scanner_id", req.ScannerID).Info("stored scanner settings")
	return ctx.JSON(http.StatusOK, map[string]any{"stored": 1})
}

func (c *StoreController) StoreScannedROMs(ctx echo.Context) error {
	req, err := bindPayload[aelmodel.ScannedROMs](ctx)
	if err != nil {
		return err
	}

	if req.ROMCollectionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "romcollection_id is required")
	}

	for _, rom := range req.ROMs {
		if req.ScannerID == "" || rom == nil {
			continue
		}

		if _, ok := rom[aelmodel.FieldScannedByID]; !ok {
			rom[aelmodel.FieldScannedByID] = req.ScannerID
		}
	}

	romIDs, err := c.stor.AddROMs(req.ROMCollectionID, req.ROMs)
	if err != nil {
		return toHTTPError(err)
	}

	c.log.WithField("romcollection_id", req.ROMCollectionID).WithField("count", len(romIDs)).Info("stored scanned roms")
	return ctx.JSON(http.StatusOK, map[string]any{"rom_ids": romIDs})
}

func (c *StoreController) StoreDeadROMs(ctx echo.Context) error {
	req, err := bindPayload[aelmodel.DeadROMs](ctx)
	if err != nil {
		return err
	}

	if req.ROMCollectionID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "romcollection_id is required")
	}

	if err := c.stor.RemoveROMs(req.ROMCollectionID, req.ROMIDs); err != nil {
		return toHTTPError(err)
	}

	c.log.WithField("romcollection_id", req.ROMCollectionID).WithField("count", len(req.ROMIDs)).Info("removed dead roms")
	return ctx.JSON(http.StatusOK, map[string]any{"stored": len(req.ROMIDs)})
}

func (c *StoreController) StoreScrapedROM(ctx echo.Context) error {
	var rom map[string]any
	if err := ctx.Bind(&rom); err != nil {
		return err
	}

	if err := c.stor.UpdateROM(rom); err != nil {
		return toHTTPError(err)
	}

	c.log.WithField("rom_id", romIDOf(rom)).Info("stored scraped rom")
	return ctx.JSON(http.StatusOK, map[string]any{"stored": 1})
}

func (c *StoreController) StoreScrapedROMs(ctx echo.Context) error {
	req, err := bindPayload[aelmodel.ScrapedROMs](ctx)
	if err != nil {
		return err
	}

	for _, rom := range req.ROMs {
		if err := c.stor.UpdateROM(rom); err != nil {
			return toHTTPError(err)
		}
	}

	c.log.WithField("count", len(req.ROMs)).Info("stored scraped roms")
	return ctx.JSON(http.StatusOK, map[string]any{"stored": len(req.ROMs)})
}

// bindPayload reads the request body as a JSON mapping and decodes it into T. Unknown
// keys are ignored, a value of the wrong type is a 400.
func bindPayload[T any](ctx echo.Context) (T, error) {
	var (
		raw     map[string]any
		payload T
	)

	if err := ctx.Bind(&raw); err != nil {
		return payload, err
	}

	payload, err := decoder.DecodeMap[T](raw)
	if err != nil {
		return payload, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	return payload, nil
}
