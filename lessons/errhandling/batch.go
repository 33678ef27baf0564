package errhandling

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/robbyt/go-pyprimer/internal/helpers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
)

// Record is a cleaned up input row.
type Record struct {
	Name  string
	Age   int
	Score float64
}

// BatchResult holds the records that converted and, separately, why the others did
// not.
type BatchResult struct {
	Records  []Record
	Failures []RecordError
}

// Err joins every failure, or returns nil when all records converted.
func (r BatchResult) Err() error {
	errz := make([]error, len(r.Failures))
	for i := range r.Failures {
		errz[i] = &r.Failures[i]
	}
	return errors.Join(errz...)
}

// ProcessRecords converts raw rows into Records. A bad row is recorded as a failure
// with its index and does not stop the rest. If ctx is cancelled, each unprocessed
// row is reported as a failure with the context error.
func ProcessRecords(ctx context.Context, logger *slog.Logger, records []map[string]any) BatchResult {
	if logger == nil {
		logger = slog.New(helpers.NopHandler())
	}
	logger = logger.WithGroup("ProcessRecords")

	var res BatchResult
	for i, raw := range records {
		if err := ctx.Err(); err != nil {
			res.Failures = append(res.Failures, RecordError{Index: i, Reason: err})
			continue
		}

		rec, err := convertRecord(raw)
		if err != nil {
			logger.DebugContext(ctx, "record rejected", "index", i, "error", err)
			res.Failures = append(res.Failures, RecordError{Index: i, Reason: err})
			continue
		}
		res.Records = append(res.Records, rec)
	}

	logger.InfoContext(ctx, "batch processed",
		"ok", len(res.Records),
		"failed", len(res.Failures))
	return res
}

func convertRecord(raw map[string]any) (Record, error) {
	var rec Record

	name, err := field(raw, "name")
	if err != nil {
		return rec, err
	}
	s, ok := name.(string)
	if !ok {
		return rec, fmt.Errorf("%w: name must be a string, got %s", errkind.ErrType, typeName(name))
	}
	rec.Name = s

	age, err := field(raw, "age")
	if err != nil {
		return rec, err
	}
	if rec.Age, err = toInt(age); err != nil {
		return rec, err
	}

	score, err := field(raw, "score")
	if err != nil {
		return rec, err
	}
	if rec.Score, err = toFloat(score); err != nil {
		return rec, err
	}

	return rec, nil
}

func field(raw map[string]any, key string) (any, error) {
	v, ok := raw[key]
	if !ok {
		return nil, fmt.Errorf("%w: '%s'", errkind.ErrKey, key)
	}
	return v, nil
}

// toInt converts like int(): strings are parsed, floats truncated. NaN, infinities
// and floats beyond the int range are rejected.
func toInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case float64:
		switch {
		case math.IsNaN(n):
			return 0, fmt.Errorf("%w: cannot convert float NaN to integer", errkind.ErrValue)
		case math.IsInf(n, 0):
			return 0, fmt.Errorf("%w: cannot convert float infinity to integer", errkind.ErrValue)
		case n >= math.MaxInt64 || n < math.MinInt64:
			return 0, fmt.Errorf("%w: %g is out of integer range", errkind.ErrValue, n)
		}
		return int(n), nil
	case string:
		return ParseInt(n)
	default:
		return 0, fmt.Errorf("%w: int() argument must be a string or a number, not %s",
			errkind.ErrType, typeName(v))
	}
}

// toFloat converts like float(). Decimal strings only; overflowing text becomes
// ±Inf the way float("1e400") does.
func toFloat(v any) (float64, error) {
	switch n := v.(type) {
	case int:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case float64:
		return n, nil
	case string:
		text := strings.TrimSpace(n)
		if isHexFloat(text) {
			return 0, fmt.Errorf("%w: could not convert string to float: %q", errkind.ErrValue, n)
		}
		f, err := strconv.ParseFloat(text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%w: could not convert string to float: %q", errkind.ErrValue, n)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: float() argument must be a string or a number, not %s",
			errkind.ErrType, typeName(v))
	}
}

func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
