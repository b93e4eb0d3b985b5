package printcolor

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

const ReportVersion = "1"

// Report wraps the result of one operation for output or storage.
type Report struct {
	Version   string          `json:"version"`
	ID        string          `json:"id"`
	Timestamp string          `json:"timestamp"`
	Operation string          `json:"operation"`
	Result    json.RawMessage `json:"result"`
}

// NewReport stamps result with a fresh id and the current time.
func NewReport(operation string, result any) (*Report, error) {
	buff, err := json.Marshal(result)
	if err != nil {
		return nil, err
	}
	return &Report{
		Version:   ReportVersion,
		ID:        uuid.New().String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Operation: operation,
		Result:    buff,
	}, nil
}

// Decode unmarshals the wrapped result into v.
func (r *Report) Decode(v any) error {
	return json.Unmarshal(r.Result, v)
}

func (r *Report) Scan(src interface{}) error {
	return JsonScan(src, r)
}

func (r Report) Value() (driver.Value, error) {
	return json.Marshal(r)
}
