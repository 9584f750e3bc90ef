package permission

import (
	"encoding/json"
	"sort"
)

// Blob is the permissions payload of a custom role.
//
// The canonical shape, and the only one ever written, is a JSON object
// mapping section code to a sorted set of permission codes. Two legacy
// shapes still exist in stored rows and are accepted on read: a flat
// array of permission codes, and section -> {action: bool}.
type Blob struct {
	// Sections holds the canonical section -> codes mapping.
	Sections map[string][]string

	// Flat holds codes from the legacy flat-array shape. Populated only
	// when a legacy row is read; never written back.
	Flat []string
}

// blob shapes as found in the database
type blobShape int

const (
	shapeSections blobShape = iota
	shapeFlat
)

// Shape reports which persisted shape the blob was decoded from.
func (b Blob) Shape() blobShape {
	if b.Flat != nil {
		return shapeFlat
	}
	return shapeSections
}

// IsLegacyFlat reports whether the blob came from the legacy flat-array shape.
func (b Blob) IsLegacyFlat() bool {
	return b.Shape() == shapeFlat
}

func (b *Blob) UnmarshalJSON(data []byte) error {
	// Legacy shape: flat array of permission codes.
	var flat []string
	if err := json.Unmarshal(data, &flat); err == nil {
		b.Flat = flat
		b.Sections = nil
		return nil
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	sections := make(map[string][]string, len(raw))
	for key, value := range raw {
		section := NormalizeSectionCode(key)

		var codes []string
		if err := json.Unmarshal(value, &codes); err == nil {
			sections[section] = append(sections[section], codes...)
			continue
		}

		// Legacy shape: section -> {action: bool}. Only actions set to
		// true grant anything.
		var actions map[string]bool
		if err := json.Unmarshal(value, &actions); err != nil {
			return err
		}
		for action, granted := range actions {
			if granted {
				sections[section] = append(sections[section], action)
			}
		}
	}

	b.Flat = nil
	b.Sections = sections
	return nil
}

// MarshalJSON always emits the canonical section -> sorted codes shape.
// A blob read from the legacy flat array marshals back as a flat array
// since its codes carry no section information.
func (b Blob) MarshalJSON() ([]byte, error) {
	if b.Flat != nil {
		flat := dedupeSorted(b.Flat)
		return json.Marshal(flat)
	}

	canonical := make(map[string][]string, len(b.Sections))
	for section, codes := range b.Sections {
		canonical[section] = dedupeSorted(codes)
	}
	return json.Marshal(canonical)
}

// Flatten returns every granted permission code in the blob, regardless
// of which persisted shape it came from, sorted and deduplicated.
func (b Blob) Flatten() []string {
	var all []string
	all = append(all, b.Flat...)
	for _, codes := range b.Sections {
		all = append(all, codes...)
	}
	return dedupeSorted(all)
}

// IsEmpty reports whether the blob grants nothing.
func (b Blob) IsEmpty() bool {
	return len(b.Flat) == 0 && len(b.Sections) == 0
}

func dedupeSorted(codes []string) []string {
	seen := make(map[string]struct{}, len(codes))
	result := make([]string, 0, len(codes))
	for _, code := range codes {
		if _, ok := seen[code]; ok {
			continue
		}
		seen[code] = struct{}{}
		result = append(result, code)
	}
	sort.Strings(result)
	return result
}
