package aelmodel

// Entity is the capability set shared by every catalog record. Callers that only deal
// with generic metadata can work against Entity without knowing whether they hold a
// *MetaData or a *ROM.
type Entity interface {
	GetID() (string, bool)
	GetData() map[string]any
	GetCustomAttribute(key string, defaultValue any) any
	SetCustomAttribute(key string, value any)

	GetName() (string, bool)
	SetName(name string)
	GetReleaseYear() (string, bool)
	SetReleaseYear(year string)
	GetGenre() (string, bool)
	SetGenre(genre string)
	GetDeveloper() (string, bool)
	SetDeveloper(developer string)
	GetRating() (int, bool, error)
	SetRating(rating any)
	GetPlot() (string, bool)
	SetPlot(plot string)
	GetNumberOfPlayers() (string, bool)
	SetNumberOfPlayers(amount string)
	GetESRBRating() (string, bool)
	SetESRBRating(esrb string)

	HasAsset(assetKind string) bool
	HasAssetCompat(assetKind string) (bool, error)
	GetAsset(assetKind string) (string, bool)
	SetAsset(assetKind, assetPath string)
}

var (
	_ Entity = (*MetaData)(nil)
	_ Entity = (*ROM)(nil)
)
