package aelstub

import (
	"context"
	"net/http"

	"github.com/ael-launcher/catalog/pkg/aelapi"
	"github.com/ael-launcher/catalog/pkg/clog"
	"github.com/apex/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Server is a stand-in for the catalog server. It answers every route the wire client
// uses from a CatalogStor, which makes it suitable both for tests and for running a
// launcher against without the real catalog.
type Server struct {
	e    *echo.Echo
	stor CatalogStor
	log  *log.Entry
}

func NewServer(stor CatalogStor, logger *log.Entry) *Server {
	if logger == nil {
		logger = clog.UsingCtx(clog.StubCtx)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())

	s := &Server{e: e, stor: stor, log: logger}
	s.setupRoutes()

	return s
}

func (s *Server) setupRoutes() {
	queryController := NewQueryController(s.stor)
	s.e.GET(aelapi.QueryROMPath, queryController.GetROM)
	s.e.GET(aelapi.QueryCollectionROMsPath, queryController.ListCollectionROMs)
	s.e.GET(aelapi.QueryCollectionLaunchersPath, queryController.ListCollectionLaunchers)
	s.e.GET(aelapi.QueryROMLauncherSettingsPath, queryController.GetROMLauncherSettings)
	s.e.GET(aelapi.QueryCollectionLauncherSettingsPath, queryController.GetCollectionLauncherSettings)
	s.e.GET(aelapi.QueryCollectionScannerSettingsPath, queryController.GetCollectionScannerSettings)

	storeController := NewStoreController(s.stor, s.log)
	s.e.POST(aelapi.StoreLauncherSettingsPath, storeController.StoreLauncherSettings)
	s.e.POST(aelapi.StoreScannerSettingsPath, storeController.StoreScannerSettings)
	s.e.POST(aelapi.StoreScannedROMsPath, storeController.StoreScannedROMs)
	s.e.POST(aelapi.StoreDeadROMsPath, storeController.StoreDeadROMs)
	s.e.POST(aelapi.StoreScrapedROMPath, storeController.StoreScrapedROM)
	s.e.POST(aelapi.StoreScrapedROMsPath, storeController.StoreScrapedROMs)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.e.ServeHTTP(w, r)
}

func (s *Server) Start(address string) error {
	s.log.Infof("Stub catalog listening on %s", address)
	return s.e.Start(address)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}
