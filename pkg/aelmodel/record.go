package aelmodel

// ROMRecord is a typed snapshot of a ROM. Recognized fields are pointers so "not sent"
// and "sent empty" stay distinguishable; everything else lands in Extra.
type ROMRecord struct {
	ID              *string           `json:"id,omitempty"`
	Name            *string           `json:"m_name,omitempty"`
	Year            *string           `json:"m_year,omitempty"`
	Genre           *string           `json:"m_genre,omitempty"`
	Developer       *string           `json:"m_developer,omitempty"`
	Rating          *int              `json:"m_rating,omitempty"`
	Plot            *string           `json:"m_plot,omitempty"`
	NumberOfPlayers *string           `json:"m_nplayers,omitempty"`
	ESRB            *string           `json:"m_esrb,omitempty"`
	Platform        *string           `json:"platform,omitempty"`
	Filename        *string           `json:"filename,omitempty"`
	ScannedByID     *string           `json:"scanned_by_id,omitempty"`
	Assets          map[string]string `json:"assets,omitempty"`
	AssetPaths      map[string]string `json:"asset_paths,omitempty"`
	Extra           map[string]any    `json:"-"`
}

// Record builds the typed view of the ROM. A rating that is blank or can't be read is
// left nil; use GetRating when the difference matters.
func (r *ROM) Record() ROMRecord {
	rec := ROMRecord{
		ID:              r.optionalText(FieldID),
		Name:            r.optionalText(FieldName),
		Year:            r.optionalText(FieldYear),
		Genre:           r.optionalText(FieldGenre),
		Developer:       r.optionalText(FieldDeveloper),
		Plot:            r.optionalText(FieldPlot),
		NumberOfPlayers: r.optionalText(FieldNPlayers),
		ESRB:            r.optionalText(FieldESRB),
		Platform:        r.optionalText(FieldPlatform),
		Filename:        r.optionalText(FieldFilename),
		ScannedByID:     r.optionalText(FieldScannedByID),
		Assets:          r.textMap(FieldAssets),
		AssetPaths:      r.textMap(FieldAssetPaths),
	}

	if rating, ok, err := r.GetRating(); err == nil && ok {
		rec.Rating = &rating
	}

	for k, v := range r.entityData {
		if isRecognizedField(k) {
			continue
		}

		if rec.Extra == nil {
			rec.Extra = make(map[string]any)
		}
		rec.Extra[k] = v
	}

	return rec
}

func (r *ROM) optionalText(key string) *string {
	s, ok := r.text(key)
	if !ok {
		return nil
	}

	return &s
}

func (r *ROM) textMap(key string) map[string]string {
	nested, ok := r.nestedMap(key)
	if !ok {
		return nil
	}

	out := make(map[string]string, len(nested))
	for k, v := range nested {
		if s, ok := toText(v); ok {
			out[k] = s
		}
	}

	return out
}
