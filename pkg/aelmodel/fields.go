package aelmodel

// Keys of the recognized fields in a ROM's entity data.
const (
	FieldID          = "id"
	FieldName        = "m_name"
	FieldYear        = "m_year"
	FieldGenre       = "m_genre"
	FieldDeveloper   = "m_developer"
	FieldRating      = "m_rating"
	FieldPlot        = "m_plot"
	FieldNPlayers    = "m_nplayers"
	FieldESRB        = "m_esrb"
	FieldPlatform    = "platform"
	FieldFilename    = "filename"
	FieldScannedByID = "scanned_by_id"
	FieldAssets      = "assets"
	FieldAssetPaths  = "asset_paths"
)

// RecognizedFields is the stable field-name table for a ROM, in canonical template order.
var RecognizedFields = []string{
	FieldID,
	FieldName,
	FieldYear,
	FieldGenre,
	FieldDeveloper,
	FieldRating,
	FieldPlot,
	FieldNPlayers,
	FieldESRB,
	FieldPlatform,
	FieldFilename,
	FieldScannedByID,
	FieldAssets,
	FieldAssetPaths,
}

func isRecognizedField(key string) bool {
	for _, f := range RecognizedFields {
		if f == key {
			return true
		}
	}

	return false
}
