package aelapi

// Catalog server routes.
const (
	QueryROMPath                        = "/query/rom/"
	QueryCollectionROMsPath             = "/query/romcollection/roms/"
	QueryCollectionLaunchersPath        = "/query/romcollection/launchers/"
	QueryROMLauncherSettingsPath        = "/query/rom/launcher/settings/"
	QueryCollectionLauncherSettingsPath = "/query/romcollection/launcher/settings/"
	QueryCollectionScannerSettingsPath  = "/query/romcollection/scanner/settings/"

	StoreLauncherSettingsPath = "/store/launcher/"
	StoreScannerSettingsPath  = "/store/scanner/"
	StoreScannedROMsPath      = "/store/roms/added"
	StoreDeadROMsPath         = "/store/roms/dead"
	StoreScrapedROMPath       = "/store/rom/updated"
	StoreScrapedROMsPath      = "/store/roms/updated"
)

// Query parameter names.
const (
	ParamID         = "id"
	ParamLauncherID = "launcher_id"
	ParamScannerID  = "scanner_id"
)
