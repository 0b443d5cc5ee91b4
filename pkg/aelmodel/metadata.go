package aelmodel

import (
	"encoding/json"
	"fmt"
)

// MetaData is a catalog record backed by the attribute mapping the server sends. The
// mapping is kept as-is, so fields this package does not know about survive a
// fetch/modify/store cycle untouched.
//
// Getters report absence as ok == false. The rating getter is the exception, see
// GetRating.
type MetaData struct {
	entityData map[string]any
}

// NewMetaData wraps entityData without copying it. A nil mapping starts an empty entity.
func NewMetaData(entityData map[string]any) *MetaData {
	if entityData == nil {
		entityData = make(map[string]any)
	}

	return &MetaData{entityData: entityData}
}

// GetID returns the identity of the entity. A template entity has an empty, but
// present, identity.
func (m *MetaData) GetID() (string, bool) {
	return m.text(FieldID)
}

// GetData returns the backing mapping. This is what gets posted to the catalog when the
// entity is stored.
func (m *MetaData) GetData() map[string]any {
	return m.data()
}

func (m *MetaData) GetCustomAttribute(key string, defaultValue any) any {
	if v, ok := m.entityData[key]; ok {
		return v
	}

	return defaultValue
}

func (m *MetaData) SetCustomAttribute(key string, value any) {
	m.data()[key] = value
}

func (m *MetaData) GetName() (string, bool) {
	return m.text(FieldName)
}

func (m *MetaData) SetName(name string) {
	m.data()[FieldName] = name
}

func (m *MetaData) GetReleaseYear() (string, bool) {
	return m.text(FieldYear)
}

func (m *MetaData) SetReleaseYear(year string) {
	m.data()[FieldYear] = year
}

func (m *MetaData) GetGenre() (string, bool) {
	return m.text(FieldGenre)
}

func (m *MetaData) SetGenre(genre string) {
	m.data()[FieldGenre] = genre
}

func (m *MetaData) GetDeveloper() (string, bool) {
	return m.text(FieldDeveloper)
}

func (m *MetaData) SetDeveloper(developer string) {
	m.data()[FieldDeveloper] = developer
}

// GetRating reads m_rating as an integer. Unlike the other getters it expects the key to
// exist: an entity without m_rating at all returns ErrMissingField. Servers always send
// the key (the ROM template includes it), so its absence points at a payload that did
// not come from the catalog. A present but blank value ("", 0 or null) is "no value".
func (m *MetaData) GetRating() (int, bool, error) {
	v, ok := m.entityData[FieldRating]
	if !ok {
		return 0, false, fmt.Errorf("%w: %s", ErrMissingField, FieldRating)
	}

	if isBlank(v) {
		return 0, false, nil
	}

	rating, err := toInt(v)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", FieldRating, err)
	}

	return rating, true, nil
}

// SetRating stores rating as an integer. Values that don't convert are stored as an
// empty string rather than returning an error.
func (m *MetaData) SetRating(rating any) {
	r, err := toInt(rating)
	if err != nil {
		m.data()[FieldRating] = ""
		return
	}

	m.data()[FieldRating] = r
}

func (m *MetaData) GetPlot() (string, bool) {
	return m.text(FieldPlot)
}

func (m *MetaData) SetPlot(plot string) {
	m.data()[FieldPlot] = plot
}

func (m *MetaData) GetNumberOfPlayers() (string, bool) {
	return m.text(FieldNPlayers)
}

func (m *MetaData) SetNumberOfPlayers(amount string) {
	m.data()[FieldNPlayers] = amount
}

func (m *MetaData) GetESRBRating() (string, bool) {
	return m.text(FieldESRB)
}

func (m *MetaData) SetESRBRating(esrb string) {
	m.data()[FieldESRB] = esrb
}

// HasAsset reports whether an asset of the given kind is recorded in the assets map.
func (m *MetaData) HasAsset(assetKind string) bool {
	assets, ok := m.nestedMap(FieldAssets)
	if !ok {
		return false
	}

	_, found := assets[assetKind]
	return found
}

// HasAssetCompat keeps the membership check as deployed launchers shipped it: the
// condition is inverted, so it returns false for every kind as soon as an assets map is
// present, and fails with ErrMissingField when there is no assets key to look in. Use
// HasAsset for the real answer; this exists so code ported from those launchers keeps
// its observed behavior.
func (m *MetaData) HasAssetCompat(assetKind string) (bool, error) {
	if _, present := m.entityData[FieldAssets]; present {
		return false, nil
	}

	return false, fmt.Errorf("%w: %s (looking up %q)", ErrMissingField, FieldAssets, assetKind)
}

func (m *MetaData) GetAsset(assetKind string) (string, bool) {
	assets, ok := m.nestedMap(FieldAssets)
	if !ok {
		return "", false
	}

	return toText(assets[assetKind])
}

// SetAsset records the path of an asset. The assets map is created when the entity
// doesn't have one yet.
func (m *MetaData) SetAsset(assetKind, assetPath string) {
	m.ensureNestedMap(FieldAssets)[assetKind] = assetPath
}

func (m MetaData) MarshalJSON() ([]byte, error) {
	if m.entityData == nil {
		return []byte("{}"), nil
	}

	return json.Marshal(m.entityData)
}

func (m *MetaData) UnmarshalJSON(b []byte) error {
	var entityData map[string]any
	if err := json.Unmarshal(b, &entityData); err != nil {
		return err
	}

	if entityData == nil {
		entityData = make(map[string]any)
	}

	m.entityData = entityData
	return nil
}

func (m *MetaData) data() map[string]any {
	if m.entityData == nil {
		m.entityData = make(map[string]any)
	}

	return m.entityData
}

func (m *MetaData) text(key string) (string, bool) {
	v, ok := m.entityData[key]
	if !ok {
		return "", false
	}

	return toText(v)
}

// nestedMap returns the mapping stored under key. Maps built by callers as
// map[string]string are converted in place so later writes land in the same map.
func (m *MetaData) nestedMap(key string) (map[string]any, bool) {
	switch v := m.entityData[key].(type) {
	case map[string]any:
		return v, true
	case map[string]string:
		converted := make(map[string]any, len(v))
		for k, s := range v {
			converted[k] = s
		}
		m.entityData[key] = converted
		return converted, true
	default:
		return nil, false
	}
}

func (m *MetaData) ensureNestedMap(key string) map[string]any {
	if nested, ok := m.nestedMap(key); ok {
		return nested
	}

	nested := make(map[string]any)
	m.data()[key] = nested
	return nested
}
