package printcolor

import (
	"encoding/json"
	"fmt"

	"github.com/brandquad/printcolor/colorutils"
)

// JsonScan decodes JSON held in a string or byte slice into b. A nil source
// leaves b untouched, a JSON null decodes as an empty object.
func JsonScan[T any](src interface{}, b T) error {
	switch v := src.(type) {
	case []byte:
		if string(v) == "null" {
			v = []byte("{}")
		}
		return json.Unmarshal(v, b)
	case string:
		return json.Unmarshal([]byte(v), b)
	case nil:
		return nil
	default:
		return fmt.Errorf("cannot convert %T", src)
	}
}

// ParseColorList reads a JSON array of {"c","m","y","k"} objects. Missing
// channels are 0.
func ParseColorList(src interface{}) ([]colorutils.CMYK, error) {
	var colors []colorutils.CMYK
	if err := JsonScan(src, &colors); err != nil {
		return nil, fmt.Errorf("%w: colors list: %w", ErrInvalidFormat, err)
	}
	return colors, nil
}
