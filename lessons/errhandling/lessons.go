package errhandling

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/robbyt/go-pyprimer/internal/helpers"
	"github.com/robbyt/go-pyprimer/lessons/errkind"
	"github.com/robbyt/go-pyprimer/lessons/fileio"
)

// Divide returns a / b. Operands must be numbers.
func Divide(a, b any) (float64, error) {
	x, okA := number(a)
	y, okB := number(b)
	if !okA || !okB {
		return 0, fmt.Errorf("%w: unsupported operand types for /: %s and %s",
			errkind.ErrType, typeName(a), typeName(b))
	}
	if y == 0 {
		return 0, fmt.Errorf("%w: %v / %v", errkind.ErrZeroDivision, a, b)
	}
	return x / y, nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

func typeName(v any) string {
	switch v.(type) {
	case string:
		return "str"
	case int, int64:
		return "int"
	case float64:
		return "float"
	case nil:
		return "NoneType"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// ParseInt converts a base 10 string to an int.
func ParseInt(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%w: invalid literal for int() with base 10: %q", errkind.ErrValue, s)
	}
	return n, nil
}

// SetAge validates an age.
func SetAge(v any) (int, error) {
	age, ok := v.(int)
	if !ok {
		return 0, fmt.Errorf("%w: Age must be an integer", errkind.ErrType)
	}
	if age < 0 {
		return 0, fmt.Errorf("%w: Age must be positive", errkind.ErrValue)
	}
	if age > 150 {
		return 0, fmt.Errorf("%w: Age seems unrealistic", errkind.ErrValue)
	}
	return age, nil
}

// Account is a balance that refuses to go negative.
type Account struct {
	balance int
}

func NewAccount(balance int) *Account {
	return &Account{balance: balance}
}

func (a *Account) Balance() int {
	return a.balance
}

// Withdraw takes amount from the balance and returns what is left.
func (a *Account) Withdraw(amount int) (int, error) {
	if amount > a.balance {
		return a.balance, &InsufficientFundsError{Balance: a.balance, Amount: amount}
	}
	a.balance -= amount
	return a.balance, nil
}

// ValidateEmail checks the shape of an address and returns it lower cased.
func ValidateEmail(email string) (string, error) {
	e := strings.TrimSpace(email)
	local, domain, ok := strings.Cut(e, "@")
	switch {
	case e == "":
		return "", &InvalidEmailError{Email: email, Reason: "empty"}
	case !ok:
		return "", &InvalidEmailError{Email: email, Reason: "missing @"}
	case strings.Contains(domain, "@"):
		return "", &InvalidEmailError{Email: email, Reason: "more than one @"}
	case local == "":
		return "", &InvalidEmailError{Email: email, Reason: "missing name before @"}
	case !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, "."):
		return "", &InvalidEmailError{Email: email, Reason: "invalid domain"}
	}
	return strings.ToLower(e), nil
}

// ReadFileSafely reads path and reports whether it succeeded. A missing file is
// logged and yields an empty string.
func ReadFileSafely(logger *slog.Logger, path string) (string, bool) {
	if logger == nil {
		logger = slog.New(helpers.NopHandler())
	}
	logger = logger.With("path", path)

	var content string
	err := Block{
		Body: func() error {
			var err error
			content, err = fileio.ReadText(path)
			return err
		},
		Handlers: []Handler{{
			Kinds: []error{errkind.ErrNotFound},
			Handle: func(err error) error {
				logger.Warn("file not found", "error", err)
				return err
			},
		}, {
			Handle: func(err error) error {
				logger.Error("file could not be read", "error", err)
				return err
			},
		}},
		Else: func() error {
			logger.Info("file read", "characters", len([]rune(content)))
			return nil
		},
		Finally: func() {
			logger.Debug("done attempting to read file")
		},
	}.Run()
	if err != nil {
		return "", false
	}
	return content, true
}

// SafeJSONLoad returns the JSON object in path, or an empty map if the file is
// missing, malformed or not an object.
func SafeJSONLoad(path string) map[string]any {
	v, err := fileio.LoadValue(path)
	if err != nil {
		return map[string]any{}
	}
	m, ok := v.(map[string]any)
	if !ok {
		return map[string]any{}
	}
	return m
}
